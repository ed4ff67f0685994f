package realtime

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/metrics"
)

const (
	// Canal Redis compartilhado entre as instâncias da API.
	eventsChannel = "chat:events"

	presenceKeyPrefix = "chat:presence:"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Hub mantém os clientes WebSocket conectados nesta instância e faz o
// fan-out dos eventos de chat. Eventos publicados localmente passam pelo
// Redis, então chegam também aos clientes conectados em outras instâncias.
type Hub struct {
	cfg     *config.Config
	redis   *redis.Client
	metrics *metrics.Metrics

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub cria o hub de tempo real. Run precisa ser chamado em uma goroutine
// antes de aceitar conexões.
func NewHub(cfg *config.Config, redisClient *redis.Client, m *metrics.Metrics) *Hub {
	return &Hub{
		cfg:        cfg,
		redis:      redisClient,
		metrics:    m,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

// Publish implementa collaborating.EventPublisher: serializa o evento e o
// publica no Redis para alcançar todas as instâncias, inclusive esta.
func (h *Hub) Publish(event *domain.ChatEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Error("realtime: erro ao serializar evento de chat")
		return
	}

	if err := h.redis.Publish(context.Background(), eventsChannel, payload).Err(); err != nil {
		logrus.WithError(err).Warn("realtime: erro ao publicar evento no Redis; entregando só localmente")

		// Envio não bloqueante: o handler HTTP não pode ficar preso
		// esperando o loop do hub drenar o buffer.
		select {
		case h.broadcast <- payload:
		default:
			logrus.Warn("realtime: buffer de broadcast cheio; evento descartado")
		}
		return
	}

	if h.metrics != nil {
		h.metrics.RecordChatEvent(string(event.Type))
	}
}

// Run processa registros, desconexões e eventos até o contexto encerrar.
func (h *Hub) Run(ctx context.Context) {
	pubsub := h.redis.Subscribe(ctx, eventsChannel)
	defer pubsub.Close()

	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.dropClient(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			h.touchPresence(ctx, client.userID)
			if h.metrics != nil {
				h.metrics.ChatClientsGauge.Inc()
			}

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.dropClient(client)
			}

		case message, ok := <-messages:
			if !ok {
				logrus.Warn("realtime: assinatura do Redis encerrada")
				return
			}
			h.fanOut([]byte(message.Payload))

		case payload := <-h.broadcast:
			h.fanOut(payload)
		}
	}
}

// fanOut entrega o payload a todos os clientes locais. Cliente com a fila de
// envio cheia é derrubado para não travar o hub.
func (h *Hub) fanOut(payload []byte) {
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			h.dropClient(client)
		}
	}
}

func (h *Hub) dropClient(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.clearPresence(context.Background(), client.userID)
	if h.metrics != nil {
		h.metrics.ChatClientsGauge.Dec()
	}
}

// touchPresence renova a chave de presença do usuário com TTL. A chave expira
// sozinha se a instância morrer sem limpar.
func (h *Hub) touchPresence(ctx context.Context, userID int) {
	ttl := time.Duration(h.cfg.Chat.PresenceTTLSecs) * time.Second
	if ttl <= 0 {
		ttl = 60 * time.Second
	}

	key := fmt.Sprintf("%s%d", presenceKeyPrefix, userID)
	if err := h.redis.Set(ctx, key, time.Now().Unix(), ttl).Err(); err != nil {
		logrus.WithError(err).Warn("realtime: erro ao renovar presença no Redis")
	}
}

func (h *Hub) clearPresence(ctx context.Context, userID int) {
	key := fmt.Sprintf("%s%d", presenceKeyPrefix, userID)
	if err := h.redis.Del(ctx, key).Err(); err != nil {
		logrus.WithError(err).Warn("realtime: erro ao limpar presença no Redis")
	}
}

// OnlineUserIDs lista os usuários com chave de presença viva em qualquer
// instância.
func (h *Hub) OnlineUserIDs(ctx context.Context) ([]int, error) {
	ids := make([]int, 0, 16)

	// SCAN em vez de KEYS para não bloquear o Redis em keyspaces grandes.
	iter := h.redis.Scan(ctx, 0, presenceKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		var id int
		if _, err := fmt.Sscanf(iter.Val(), presenceKeyPrefix+"%d", &id); err == nil {
			ids = append(ids, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
