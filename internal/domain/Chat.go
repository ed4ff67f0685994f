package domain

import "time"

// ChatChannel é um canal de conversa da equipe.
type ChatChannel struct {
	ID        int64     `json:"id"`
	PublicID  string    `json:"public_id"`
	Name      string    `json:"name"`
	Topic     string    `json:"topic"`
	CreatedBy int       `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage é uma mensagem de canal. Mensagens com ParentID formam uma
// thread sob a mensagem raiz.
type ChatMessage struct {
	ID         int64           `json:"id"`
	PublicID   string          `json:"public_id"`
	ChannelID  int64           `json:"channel_id"`
	ParentID   *int64          `json:"parent_id"`
	UserID     int             `json:"user_id"`
	UserName   string          `json:"user_name"`
	Body       string          `json:"body"`
	ReplyCount int             `json:"reply_count"`
	Reactions  []ReactionCount `json:"reactions"`
	CreatedAt  time.Time       `json:"created_at"`
	EditedAt   *time.Time      `json:"edited_at"`
}

// ReactionCount agrega as reações de uma mensagem por emoji.
type ReactionCount struct {
	Emoji   string `json:"emoji"`
	Count   int    `json:"count"`
	UserIDs []int  `json:"user_ids"`
}

type ChatReaction struct {
	MessageID int64     `json:"message_id"`
	UserID    int       `json:"user_id"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessagePage é uma página de mensagens em ordem decrescente de criação.
// NextCursor vazio indica que não há páginas anteriores.
type ChatMessagePage struct {
	Messages   []*ChatMessage `json:"messages"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

type ChatEventType string

const (
	ChatEventMessageCreated  ChatEventType = "message.created"
	ChatEventMessageEdited   ChatEventType = "message.edited"
	ChatEventReactionAdded   ChatEventType = "reaction.added"
	ChatEventReactionRemoved ChatEventType = "reaction.removed"
)

// ChatEvent é o envelope publicado para os clientes conectados via WebSocket.
type ChatEvent struct {
	Type      ChatEventType `json:"type"`
	ChannelID int64         `json:"channel_id"`
	Message   *ChatMessage  `json:"message,omitempty"`
	Reaction  *ChatReaction `json:"reaction,omitempty"`
}
