package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// AvailabilityCache guarda a resposta da listagem pública de horários
// por (barbeiro, data). TTL curto: qualquer mutação na agenda do dia
// também invalida a chave, o TTL só cobre o que escapar.
type AvailabilityCache struct {
	client *redis.Client
	log    zerolog.Logger
	ttl    time.Duration
}

const availabilityTTL = 60 * time.Second

func NewAvailabilityCache(addr, password string, log zerolog.Logger) *AvailabilityCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Cache indisponível não derruba o serviço; as consultas só
		// ficam mais caras.
		log.Warn().Err(err).Msg("redis unavailable, availability cache disabled")
		return &AvailabilityCache{log: log, ttl: availabilityTTL}
	}

	return &AvailabilityCache{client: client, log: log, ttl: availabilityTTL}
}

func key(barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date)
}

func (c *AvailabilityCache) Get(ctx context.Context, barberID uint, date string) ([]string, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(barberID, date)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("availability cache get failed")
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, barberID uint, date string, slots []string) {
	if c.client == nil {
		return
	}

	b, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(barberID, date), b, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache set failed")
	}
}

// Invalidate remove a chave do dia de um barbeiro após qualquer
// mutação que mexa na agenda (agendamento, ordem walk-in).
func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, key(barberID, date)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("availability cache invalidate failed")
	}
}
