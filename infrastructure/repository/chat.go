package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	chatChannelsTable = "chat_channels ch"
	chatMessagesTable = "chat_messages m"

	chatMessageColumns = `m.id, m.public_id, m.channel_id, m.parent_id, m.user_id,
		COALESCE(u.name || ' ' || u.lastname, '') AS user_name,
		m.body,
		(SELECT COUNT(*) FROM chat_messages r WHERE r.parent_id = m.id) AS reply_count,
		m.created_at, m.edited_at`
)

type ChatRepository interface {
	ListChannels() ([]*domain.ChatChannel, error)
	GetChannelByPublicID(publicID string) (*domain.ChatChannel, error)
	CreateChannel(channel *domain.ChatChannel) (*domain.ChatChannel, error)
	ListMessages(channelID int64, before *MessageCursor, limit int) ([]*domain.ChatMessage, error)
	ListThread(parentID int64) ([]*domain.ChatMessage, error)
	GetMessageByPublicID(publicID string) (*domain.ChatMessage, error)
	CreateMessage(message *domain.ChatMessage) (*domain.ChatMessage, error)
	UpdateMessageBody(id int64, body string) (*time.Time, error)
	AddReaction(reaction *domain.ChatReaction) error
	RemoveReaction(reaction *domain.ChatReaction) error
	GetReactions(messageIDs []int64) (map[int64][]domain.ReactionCount, error)
}

// MessageCursor é a posição de paginação por keyset: mensagens estritamente
// anteriores a (CreatedAt, ID) na ordem decrescente.
type MessageCursor struct {
	CreatedAt time.Time
	ID        int64
}

type chatRepository struct {
	conn *postgres.Connection
}

func NewChatRepository(conn *postgres.Connection) ChatRepository {
	return &chatRepository{
		conn: conn,
	}
}

func (r *chatRepository) ListChannels() ([]*domain.ChatChannel, error) {
	query, args, err := squirrel.
		Select("ch.id, ch.public_id, ch.name, ch.topic, ch.created_by, ch.created_at").
		From(chatChannelsTable).
		OrderBy("ch.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	channels := make([]*domain.ChatChannel, 0)
	for rows.Next() {
		channel := &domain.ChatChannel{}
		err := rows.Scan(
			&channel.ID,
			&channel.PublicID,
			&channel.Name,
			&channel.Topic,
			&channel.CreatedBy,
			&channel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear canal: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *chatRepository) GetChannelByPublicID(publicID string) (*domain.ChatChannel, error) {
	query, args, err := squirrel.
		Select("ch.id, ch.public_id, ch.name, ch.topic, ch.created_by, ch.created_at").
		From(chatChannelsTable).
		Where(squirrel.Eq{"ch.public_id": publicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	channel := &domain.ChatChannel{}
	err = r.conn.QueryRow(query, args...).Scan(
		&channel.ID,
		&channel.PublicID,
		&channel.Name,
		&channel.Topic,
		&channel.CreatedBy,
		&channel.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear canal: %w", err)
	}

	return channel, nil
}

func (r *chatRepository) CreateChannel(channel *domain.ChatChannel) (*domain.ChatChannel, error) {
	query := squirrel.StatementBuilder.
		Insert("chat_channels").
		Columns("public_id", "name", "topic", "created_by").
		Values(channel.PublicID, channel.Name, channel.Topic, channel.CreatedBy).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&channel.ID, &channel.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, fmt.Errorf("canal com nome duplicado: %w", err)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return channel, nil
}

// ListMessages retorna mensagens raiz do canal em ordem decrescente de
// criação. O cursor aplica keyset por (created_at, id) para que a paginação
// permaneça estável mesmo com novas mensagens chegando.
func (r *chatRepository) ListMessages(channelID int64, before *MessageCursor, limit int) ([]*domain.ChatMessage, error) {
	builder := squirrel.
		Select(chatMessageColumns).
		From(chatMessagesTable).
		LeftJoin("users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.channel_id": channelID}).
		Where("m.parent_id IS NULL").
		OrderBy("m.created_at DESC", "m.id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if before != nil {
		builder = builder.Where("(m.created_at, m.id) < (?, ?)", before.CreatedAt, before.ID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMessages(query, args...)
}

func (r *chatRepository) ListThread(parentID int64) ([]*domain.ChatMessage, error) {
	query, args, err := squirrel.
		Select(chatMessageColumns).
		From(chatMessagesTable).
		LeftJoin("users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.parent_id": parentID}).
		OrderBy("m.created_at ASC", "m.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMessages(query, args...)
}

func (r *chatRepository) GetMessageByPublicID(publicID string) (*domain.ChatMessage, error) {
	query, args, err := squirrel.
		Select(chatMessageColumns).
		From(chatMessagesTable).
		LeftJoin("users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.public_id": publicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	messages, err := r.queryMessages(query, args...)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}

	return messages[0], nil
}

func (r *chatRepository) CreateMessage(message *domain.ChatMessage) (*domain.ChatMessage, error) {
	query := squirrel.StatementBuilder.
		Insert("chat_messages").
		Columns("public_id", "channel_id", "parent_id", "user_id", "body").
		Values(
			message.PublicID,
			message.ChannelID,
			message.ParentID,
			message.UserID,
			message.Body,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&message.ID, &message.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return message, nil
}

func (r *chatRepository) UpdateMessageBody(id int64, body string) (*time.Time, error) {
	query, args, err := squirrel.
		Update("chat_messages").
		Set("body", body).
		Set("edited_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING edited_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var editedAt time.Time
	if err := r.conn.QueryRow(query, args...).Scan(&editedAt); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return &editedAt, nil
}

func (r *chatRepository) AddReaction(reaction *domain.ChatReaction) error {
	query := squirrel.StatementBuilder.
		Insert("chat_reactions").
		Columns("message_id", "user_id", "emoji").
		Values(reaction.MessageID, reaction.UserID, reaction.Emoji).
		Suffix("ON CONFLICT (message_id, user_id, emoji) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *chatRepository) RemoveReaction(reaction *domain.ChatReaction) error {
	query, args, err := squirrel.
		Delete("chat_reactions").
		Where(squirrel.Eq{
			"message_id": reaction.MessageID,
			"user_id":    reaction.UserID,
			"emoji":      reaction.Emoji,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *chatRepository) GetReactions(messageIDs []int64) (map[int64][]domain.ReactionCount, error) {
	if len(messageIDs) == 0 {
		return map[int64][]domain.ReactionCount{}, nil
	}

	query, args, err := squirrel.
		Select("message_id, emoji, COUNT(*) AS total, ARRAY_AGG(user_id ORDER BY created_at) AS user_ids").
		From("chat_reactions").
		Where(squirrel.Eq{"message_id": messageIDs}).
		GroupBy("message_id", "emoji").
		OrderBy("message_id ASC", "emoji ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.ReactionCount)
	for rows.Next() {
		var messageID int64
		var emoji string
		var count int
		var userIDs pq.Int64Array

		if err := rows.Scan(&messageID, &emoji, &count, &userIDs); err != nil {
			return nil, fmt.Errorf("erro ao escanear reação: %w", err)
		}

		ids := make([]int, 0, len(userIDs))
		for _, id := range userIDs {
			ids = append(ids, int(id))
		}

		result[messageID] = append(result[messageID], domain.ReactionCount{
			Emoji:   emoji,
			Count:   count,
			UserIDs: ids,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *chatRepository) queryMessages(query string, args ...interface{}) ([]*domain.ChatMessage, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		message := &domain.ChatMessage{}
		err := rows.Scan(
			&message.ID,
			&message.PublicID,
			&message.ChannelID,
			&message.ParentID,
			&message.UserID,
			&message.UserName,
			&message.Body,
			&message.ReplyCount,
			&message.CreatedAt,
			&message.EditedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear mensagem: %w", err)
		}
		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return messages, nil
}
