package realtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

func newTestHub(t *testing.T) (*Hub, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewHub(&config.Config{}, client, nil), server
}

func TestHub_Publish_RedisIndisponivel(t *testing.T) {
	t.Run("Fallback local entrega quando há espaço no buffer", func(t *testing.T) {
		hub, server := newTestHub(t)
		server.Close()

		hub.Publish(&domain.ChatEvent{Type: domain.ChatEventMessageCreated, ChannelID: 1})

		assert.Len(t, hub.broadcast, 1)
	})

	t.Run("Buffer cheio - Publish não pode bloquear o handler", func(t *testing.T) {
		hub, server := newTestHub(t)
		server.Close()

		for i := 0; i < cap(hub.broadcast); i++ {
			hub.broadcast <- []byte("{}")
		}

		done := make(chan struct{})
		go func() {
			hub.Publish(&domain.ChatEvent{Type: domain.ChatEventMessageCreated, ChannelID: 1})
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Publish bloqueou com o buffer de broadcast cheio")
		}

		// Evento descartado, nada além do que já estava no buffer
		assert.Len(t, hub.broadcast, cap(hub.broadcast))
	})
}

func TestHub_OnlineUserIDs(t *testing.T) {
	t.Run("Deve listar somente as chaves de presença", func(t *testing.T) {
		hub, server := newTestHub(t)

		assert.NoError(t, server.Set("chat:presence:7", "1"))
		assert.NoError(t, server.Set("chat:presence:12", "1"))
		assert.NoError(t, server.Set("outro:prefixo:3", "1"))

		ids, err := hub.OnlineUserIDs(context.Background())

		assert.NoError(t, err)
		assert.ElementsMatch(t, []int{7, 12}, ids)
	})

	t.Run("Keyspace maior que uma página de SCAN", func(t *testing.T) {
		hub, server := newTestHub(t)

		for i := 1; i <= 250; i++ {
			assert.NoError(t, server.Set(fmt.Sprintf("chat:presence:%d", i), "1"))
		}

		ids, err := hub.OnlineUserIDs(context.Background())

		assert.NoError(t, err)
		assert.Len(t, ids, 250)
	})

	t.Run("Redis indisponível - deve propagar o erro", func(t *testing.T) {
		hub, server := newTestHub(t)
		server.Close()

		ids, err := hub.OnlineUserIDs(context.Background())

		assert.Error(t, err)
		assert.Nil(t, ids)
	})
}
