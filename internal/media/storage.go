package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/barber-pos/internal/config"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

// Storage recebe a foto do produto/barbeiro (JPEG ou PNG), reduz para
// a largura máxima, recodifica em webp e sobe para o S3.
type Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

const (
	maxWidth    = 1024
	webpQuality = 85
)

func NewStorage(cfg *config.Config) *Storage {
	if cfg.S3Bucket == "" || cfg.AWSAccessKeyID == "" {
		return &Storage{} // uploads desabilitados
	}

	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: awscreds.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretKey,
			"",
		),
	})

	return &Storage{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: cfg.S3PublicBaseURL,
	}
}

func (s *Storage) Enabled() bool {
	return s.client != nil
}

// Upload devolve a URL pública da imagem gravada.
func (s *Storage) Upload(ctx context.Context, prefix string, r io.Reader) (string, error) {
	if !s.Enabled() {
		return "", httperr.ErrBusiness("uploads_disabled")
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	objectKey := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put: %w", err)
	}

	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, objectKey), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, objectKey), nil
}

func shrink(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
