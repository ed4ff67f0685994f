package collaborating

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// EventPublisher recebe os eventos de chat para fan-out aos clientes
// conectados. A implementação fica em internal/realtime.
type EventPublisher interface {
	Publish(event *domain.ChatEvent)
}

// Collaborator define a interface do chat consumida pelos handlers.
type Collaborator interface {
	ListChannels() ([]*domain.ChatChannel, error)
	CreateChannel(name, topic string, userID int) (*domain.ChatChannel, error)

	// GetChannelMessages devolve uma página de mensagens do canal em ordem
	// decrescente de criação, com as reações agregadas.
	GetChannelMessages(channelPublicID, cursor string, limit int) (*domain.ChatMessagePage, error)
	GetThread(messagePublicID string) ([]*domain.ChatMessage, error)

	PostMessage(channelPublicID string, parentPublicID *string, userID int, body string) (*domain.ChatMessage, error)
	EditMessage(messagePublicID string, userID int, body string) (*domain.ChatMessage, error)

	AddReaction(messagePublicID string, userID int, emoji string) error
	RemoveReaction(messagePublicID string, userID int, emoji string) error
}

type Service struct {
	chatRepository repository.ChatRepository
	publisher      EventPublisher
}

// NewService cria uma nova instância do serviço de chat
func NewService(chatRepo repository.ChatRepository, publisher EventPublisher) Collaborator {
	return &Service{
		chatRepository: chatRepo,
		publisher:      publisher,
	}
}

func (s *Service) ListChannels() ([]*domain.ChatChannel, error) {
	return s.chatRepository.ListChannels()
}

func (s *Service) CreateChannel(name, topic string, userID int) (*domain.ChatChannel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("o nome do canal é obrigatório")
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do canal: %w", err)
	}

	channel := &domain.ChatChannel{
		PublicID:  publicID,
		Name:      name,
		Topic:     strings.TrimSpace(topic),
		CreatedBy: userID,
	}

	return s.chatRepository.CreateChannel(channel)
}

func (s *Service) GetChannelMessages(channelPublicID, cursor string, limit int) (*domain.ChatMessagePage, error) {
	channel, err := s.chatRepository.GetChannelByPublicID(channelPublicID)
	if err != nil {
		return nil, err
	}

	if channel == nil {
		return nil, fmt.Errorf("canal não encontrado: %s", channelPublicID)
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	before, err := decodeCursor(cursor)
	if err != nil {
		return nil, err
	}

	messages, err := s.chatRepository.ListMessages(channel.ID, before, limit)
	if err != nil {
		return nil, err
	}

	if err := s.attachReactions(messages); err != nil {
		logrus.WithError(err).WithField("channel_id", channel.ID).Warn("Erro ao agregar reações das mensagens")
	}

	page := &domain.ChatMessagePage{Messages: messages}
	if len(messages) == limit {
		last := messages[len(messages)-1]
		page.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}

	return page, nil
}

func (s *Service) GetThread(messagePublicID string) ([]*domain.ChatMessage, error) {
	parent, err := s.chatRepository.GetMessageByPublicID(messagePublicID)
	if err != nil {
		return nil, err
	}

	if parent == nil {
		return nil, fmt.Errorf("mensagem não encontrada: %s", messagePublicID)
	}

	replies, err := s.chatRepository.ListThread(parent.ID)
	if err != nil {
		return nil, err
	}

	thread := append([]*domain.ChatMessage{parent}, replies...)
	if err := s.attachReactions(thread); err != nil {
		logrus.WithError(err).WithField("message_id", parent.ID).Warn("Erro ao agregar reações da thread")
	}

	return thread, nil
}

func (s *Service) PostMessage(channelPublicID string, parentPublicID *string, userID int, body string) (*domain.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("o corpo da mensagem é obrigatório")
	}

	channel, err := s.chatRepository.GetChannelByPublicID(channelPublicID)
	if err != nil {
		return nil, err
	}

	if channel == nil {
		return nil, fmt.Errorf("canal não encontrado: %s", channelPublicID)
	}

	var parentID *int64
	if parentPublicID != nil && *parentPublicID != "" {
		parent, err := s.chatRepository.GetMessageByPublicID(*parentPublicID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("mensagem pai não encontrada: %s", *parentPublicID)
		}
		if parent.ChannelID != channel.ID {
			return nil, fmt.Errorf("a mensagem pai pertence a outro canal")
		}
		// Threads têm um nível só: responder a uma resposta pendura na raiz
		if parent.ParentID != nil {
			parentID = parent.ParentID
		} else {
			parentID = &parent.ID
		}
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da mensagem: %w", err)
	}

	message := &domain.ChatMessage{
		PublicID:  publicID,
		ChannelID: channel.ID,
		ParentID:  parentID,
		UserID:    userID,
		Body:      body,
	}

	created, err := s.chatRepository.CreateMessage(message)
	if err != nil {
		return nil, err
	}
	created.Reactions = []domain.ReactionCount{}

	s.publish(&domain.ChatEvent{
		Type:      domain.ChatEventMessageCreated,
		ChannelID: channel.ID,
		Message:   created,
	})

	return created, nil
}

func (s *Service) EditMessage(messagePublicID string, userID int, body string) (*domain.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("o corpo da mensagem é obrigatório")
	}

	message, err := s.chatRepository.GetMessageByPublicID(messagePublicID)
	if err != nil {
		return nil, err
	}

	if message == nil {
		return nil, fmt.Errorf("mensagem não encontrada: %s", messagePublicID)
	}

	if message.UserID != userID {
		return nil, fmt.Errorf("somente o autor pode editar a mensagem")
	}

	editedAt, err := s.chatRepository.UpdateMessageBody(message.ID, body)
	if err != nil {
		return nil, err
	}

	message.Body = body
	message.EditedAt = editedAt

	s.publish(&domain.ChatEvent{
		Type:      domain.ChatEventMessageEdited,
		ChannelID: message.ChannelID,
		Message:   message,
	})

	return message, nil
}

func (s *Service) AddReaction(messagePublicID string, userID int, emoji string) error {
	message, reaction, err := s.buildReaction(messagePublicID, userID, emoji)
	if err != nil {
		return err
	}

	if err := s.chatRepository.AddReaction(reaction); err != nil {
		return err
	}

	s.publish(&domain.ChatEvent{
		Type:      domain.ChatEventReactionAdded,
		ChannelID: message.ChannelID,
		Reaction:  reaction,
	})

	return nil
}

func (s *Service) RemoveReaction(messagePublicID string, userID int, emoji string) error {
	message, reaction, err := s.buildReaction(messagePublicID, userID, emoji)
	if err != nil {
		return err
	}

	if err := s.chatRepository.RemoveReaction(reaction); err != nil {
		return err
	}

	s.publish(&domain.ChatEvent{
		Type:      domain.ChatEventReactionRemoved,
		ChannelID: message.ChannelID,
		Reaction:  reaction,
	})

	return nil
}

func (s *Service) buildReaction(messagePublicID string, userID int, emoji string) (*domain.ChatMessage, *domain.ChatReaction, error) {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return nil, nil, fmt.Errorf("o emoji da reação é obrigatório")
	}

	message, err := s.chatRepository.GetMessageByPublicID(messagePublicID)
	if err != nil {
		return nil, nil, err
	}

	if message == nil {
		return nil, nil, fmt.Errorf("mensagem não encontrada: %s", messagePublicID)
	}

	return message, &domain.ChatReaction{
		MessageID: message.ID,
		UserID:    userID,
		Emoji:     emoji,
	}, nil
}

func (s *Service) attachReactions(messages []*domain.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}

	reactions, err := s.chatRepository.GetReactions(ids)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if counts, ok := reactions[message.ID]; ok {
			message.Reactions = counts
		} else {
			message.Reactions = []domain.ReactionCount{}
		}
	}

	return nil
}

func (s *Service) publish(event *domain.ChatEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(event)
}

// encodeCursor serializa a posição de keyset como
// base64("<created_at RFC3339Nano>|<id>").
func encodeCursor(createdAt time.Time, id int64) string {
	raw := createdAt.Format(time.RFC3339Nano) + "|" + strconv.FormatInt(id, 10)
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (*repository.MessageCursor, error) {
	if cursor == "" {
		return nil, nil
	}

	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("cursor de paginação inválido")
	}

	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("cursor de paginação inválido")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return nil, fmt.Errorf("cursor de paginação inválido")
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cursor de paginação inválido")
	}

	return &repository.MessageCursor{CreatedAt: createdAt, ID: id}, nil
}
