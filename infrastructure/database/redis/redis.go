package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
)

// NewClient abre a conexão com o Redis usado pelo chat (pub/sub de eventos
// entre instâncias e chaves de presença).
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
