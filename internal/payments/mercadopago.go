package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// LinkGenerator cria o link de pagamento (preferência do Mercado
// Pago) de uma ordem, para o cliente pagar por QR/URL no balcão.
type LinkGenerator struct {
	client preference.Client
}

func NewLinkGenerator(accessToken string) (*LinkGenerator, error) {
	if accessToken == "" {
		return &LinkGenerator{}, nil // pagamentos online desabilitados
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &LinkGenerator{client: preference.NewClient(cfg)}, nil
}

func (g *LinkGenerator) Enabled() bool {
	return g.client != nil
}

func (g *LinkGenerator) PaymentLink(ctx context.Context, order *models.Order) (string, error) {
	if !g.Enabled() {
		return "", httperr.ErrBusiness("payments_disabled")
	}

	items := make([]preference.ItemRequest, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, preference.ItemRequest{
			ID:        fmt.Sprintf("%d", it.ProductID),
			Title:     it.Product.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	pref, err := g.client.Create(ctx, preference.Request{
		Items:             items,
		ExternalReference: order.Number,
	})
	if err != nil {
		return "", fmt.Errorf("mercadopago preference: %w", err)
	}

	return pref.InitPoint, nil
}
