package collaborating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakePublisher captura os eventos publicados durante os testes.
type fakePublisher struct {
	events []*domain.ChatEvent
}

func (p *fakePublisher) Publish(event *domain.ChatEvent) {
	p.events = append(p.events, event)
}

func TestService_CreateChannel(t *testing.T) {
	t.Run("Deve criar canal com nome e tópico normalizados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		chatRepo.EXPECT().CreateChannel(gomock.Any()).DoAndReturn(func(c *domain.ChatChannel) (*domain.ChatChannel, error) {
			assert.NotEmpty(t, c.PublicID)
			assert.Equal(t, "geral", c.Name)
			assert.Equal(t, "Avisos da agência", c.Topic)
			assert.Equal(t, 7, c.CreatedBy)
			return c, nil
		})

		service := NewService(chatRepo, nil)

		channel, err := service.CreateChannel("  geral  ", "  Avisos da agência ", 7)

		assert.NoError(t, err)
		assert.Equal(t, "geral", channel.Name)
	})

	t.Run("Nome vazio - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		service := NewService(chatRepo, nil)

		channel, err := service.CreateChannel("   ", "", 7)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "obrigatório")
		assert.Nil(t, channel)
	})
}

func TestService_GetChannelMessages(t *testing.T) {
	channel := &domain.ChatChannel{ID: 10, PublicID: "ch-1", Name: "geral"}

	t.Run("Página cheia - deve devolver cursor para a próxima página", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)

		createdAt := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
		messages := []*domain.ChatMessage{
			{ID: 5, PublicID: "msg-5", ChannelID: 10, CreatedAt: createdAt.Add(2 * time.Minute)},
			{ID: 4, PublicID: "msg-4", ChannelID: 10, CreatedAt: createdAt},
		}

		chatRepo.EXPECT().GetChannelByPublicID("ch-1").Return(channel, nil)
		chatRepo.EXPECT().ListMessages(int64(10), nil, 2).Return(messages, nil)
		chatRepo.EXPECT().GetReactions([]int64{5, 4}).Return(map[int64][]domain.ReactionCount{
			5: {{Emoji: "👍", Count: 2, UserIDs: []int{1, 2}}},
		}, nil)

		service := NewService(chatRepo, nil)

		page, err := service.GetChannelMessages("ch-1", "", 2)

		assert.NoError(t, err)
		assert.Len(t, page.Messages, 2)
		assert.NotEmpty(t, page.NextCursor)

		// Reações agregadas por mensagem; sem reação vira lista vazia
		assert.Len(t, page.Messages[0].Reactions, 1)
		assert.Equal(t, "👍", page.Messages[0].Reactions[0].Emoji)
		assert.Empty(t, page.Messages[1].Reactions)
		assert.NotNil(t, page.Messages[1].Reactions)
	})

	t.Run("Página incompleta - cursor seguinte deve ficar vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)

		messages := []*domain.ChatMessage{
			{ID: 3, PublicID: "msg-3", ChannelID: 10, CreatedAt: time.Now()},
		}

		chatRepo.EXPECT().GetChannelByPublicID("ch-1").Return(channel, nil)
		chatRepo.EXPECT().ListMessages(int64(10), nil, 50).Return(messages, nil)
		chatRepo.EXPECT().GetReactions([]int64{3}).Return(nil, nil)

		service := NewService(chatRepo, nil)

		// limite não informado cai no padrão de 50
		page, err := service.GetChannelMessages("ch-1", "", 0)

		assert.NoError(t, err)
		assert.Len(t, page.Messages, 1)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("Cursor devolvido deve ser aceito na página seguinte", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)

		createdAt := time.Date(2025, 4, 1, 12, 0, 0, 123456789, time.UTC)
		firstPage := []*domain.ChatMessage{
			{ID: 9, PublicID: "msg-9", ChannelID: 10, CreatedAt: createdAt},
		}

		chatRepo.EXPECT().GetChannelByPublicID("ch-1").Return(channel, nil).Times(2)
		chatRepo.EXPECT().ListMessages(int64(10), nil, 1).Return(firstPage, nil)
		chatRepo.EXPECT().GetReactions([]int64{9}).Return(nil, nil)

		// A segunda chamada recebe exatamente a posição da última mensagem
		chatRepo.EXPECT().
			ListMessages(int64(10), &repository.MessageCursor{CreatedAt: createdAt, ID: 9}, 1).
			Return(nil, nil)

		service := NewService(chatRepo, nil)

		page, err := service.GetChannelMessages("ch-1", "", 1)
		assert.NoError(t, err)
		assert.NotEmpty(t, page.NextCursor)

		next, err := service.GetChannelMessages("ch-1", page.NextCursor, 1)
		assert.NoError(t, err)
		assert.Empty(t, next.Messages)
	})

	t.Run("Cursor malformado - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		chatRepo.EXPECT().GetChannelByPublicID("ch-1").Return(channel, nil)

		service := NewService(chatRepo, nil)

		page, err := service.GetChannelMessages("ch-1", "###not-base64###", 10)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cursor de paginação inválido")
		assert.Nil(t, page)
	})

	t.Run("Canal não encontrado - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		chatRepo.EXPECT().GetChannelByPublicID("ch-404").Return(nil, nil)

		service := NewService(chatRepo, nil)

		page, err := service.GetChannelMessages("ch-404", "", 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "canal não encontrado")
		assert.Nil(t, page)
	})
}

func TestService_PostMessage(t *testing.T) {
	channel := &domain.ChatChannel{ID: 10, PublicID: "ch-1"}

	t.Run("Mensagem raiz - deve criar e publicar o evento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		publisher := &fakePublisher{}

		chatRepo.EXPECT().GetChannelByPublicID("ch-1").Return(channel, nil)
		chatRepo.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(m *domain.ChatMessage) (*domain.ChatMessage, error) {
			assert.NotEmpty(t, m.PublicID)
			assert.Equal(t, int64(10), m.ChannelID)
			assert.Nil(t, m.ParentID)
			assert.Equal(t, "bom dia equipe", m.Body)
			m.ID = 42
			return m, nil
		})

		service := NewService(chatRepo, publisher)

		message, err := service.PostMessage("ch-1", nil, 7, "  bom dia equipe  ")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), message.ID)
		assert.NotNil(t, message.Reactions)

		assert.Len(t, publisher.events, 1)
		assert.Equal(t, domain.ChatEventMessageCreated, publisher.events[0].Type)
		assert.Equal(t, int64(10), publisher.events[0].ChannelID)
	})

	t.Run("Resposta a uma resposta - deve pendurar na raiz da thread", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)

		rootID := int64(100)
		reply := &domain.ChatMessage{ID: 101, PublicID: "msg-reply", ChannelID: 10, ParentID: &rootID}

		parentPublicID := "msg-reply"
		chatRepo.EXPECT().GetChannelByPublicID("ch-1").Return(channel, nil)
		chatRepo.EXPECT().GetMessageByPublicID("msg-reply").Return(reply, nil)
		chatRepo.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(m *domain.ChatMessage) (*domain.ChatMessage, error) {
			assert.NotNil(t, m.ParentID)
			assert.Equal(t, rootID, *m.ParentID)
			return m, nil
		})

		service := NewService(chatRepo, nil)

		_, err := service.PostMessage("ch-1", &parentPublicID, 7, "respondendo a thread")
		assert.NoError(t, err)
	})

	t.Run("Mensagem pai de outro canal - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)

		parentPublicID := "msg-x"
		chatRepo.EXPECT().GetChannelByPublicID("ch-1").Return(channel, nil)
		chatRepo.EXPECT().GetMessageByPublicID("msg-x").Return(&domain.ChatMessage{ID: 55, ChannelID: 99}, nil)

		service := NewService(chatRepo, nil)

		message, err := service.PostMessage("ch-1", &parentPublicID, 7, "oi")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "outro canal")
		assert.Nil(t, message)
	})

	t.Run("Corpo vazio - deve recusar antes de consultar o canal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		service := NewService(chatRepo, nil)

		message, err := service.PostMessage("ch-1", nil, 7, "   ")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "obrigatório")
		assert.Nil(t, message)
	})
}

func TestService_EditMessage(t *testing.T) {
	t.Run("Autor edita a própria mensagem - deve atualizar e publicar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		publisher := &fakePublisher{}

		editedAt := time.Now()
		chatRepo.EXPECT().GetMessageByPublicID("msg-1").Return(&domain.ChatMessage{
			ID:        42,
			PublicID:  "msg-1",
			ChannelID: 10,
			UserID:    7,
			Body:      "texto antigo",
		}, nil)
		chatRepo.EXPECT().UpdateMessageBody(int64(42), "texto novo").Return(&editedAt, nil)

		service := NewService(chatRepo, publisher)

		message, err := service.EditMessage("msg-1", 7, "texto novo")

		assert.NoError(t, err)
		assert.Equal(t, "texto novo", message.Body)
		assert.Equal(t, &editedAt, message.EditedAt)

		assert.Len(t, publisher.events, 1)
		assert.Equal(t, domain.ChatEventMessageEdited, publisher.events[0].Type)
	})

	t.Run("Outro usuário tenta editar - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		chatRepo.EXPECT().GetMessageByPublicID("msg-1").Return(&domain.ChatMessage{
			ID:     42,
			UserID: 7,
		}, nil)

		service := NewService(chatRepo, nil)

		message, err := service.EditMessage("msg-1", 8, "invasão")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "somente o autor")
		assert.Nil(t, message)
	})
}

func TestService_Reactions(t *testing.T) {
	message := &domain.ChatMessage{ID: 42, PublicID: "msg-1", ChannelID: 10}

	t.Run("Adicionar reação - deve gravar e publicar o evento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		publisher := &fakePublisher{}

		chatRepo.EXPECT().GetMessageByPublicID("msg-1").Return(message, nil)
		chatRepo.EXPECT().AddReaction(&domain.ChatReaction{MessageID: 42, UserID: 7, Emoji: "🚀"}).Return(nil)

		service := NewService(chatRepo, publisher)

		assert.NoError(t, service.AddReaction("msg-1", 7, " 🚀 "))
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, domain.ChatEventReactionAdded, publisher.events[0].Type)
	})

	t.Run("Remover reação - deve publicar o evento de remoção", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		publisher := &fakePublisher{}

		chatRepo.EXPECT().GetMessageByPublicID("msg-1").Return(message, nil)
		chatRepo.EXPECT().RemoveReaction(&domain.ChatReaction{MessageID: 42, UserID: 7, Emoji: "🚀"}).Return(nil)

		service := NewService(chatRepo, publisher)

		assert.NoError(t, service.RemoveReaction("msg-1", 7, "🚀"))
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, domain.ChatEventReactionRemoved, publisher.events[0].Type)
	})

	t.Run("Emoji vazio - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		service := NewService(chatRepo, nil)

		err := service.AddReaction("msg-1", 7, "  ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "obrigatório")
	})

	t.Run("Mensagem não encontrada - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		chatRepo.EXPECT().GetMessageByPublicID("msg-404").Return(nil, nil)

		service := NewService(chatRepo, nil)

		err := service.AddReaction("msg-404", 7, "🚀")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mensagem não encontrada")
	})
}

func TestService_GetThread(t *testing.T) {
	t.Run("Thread deve vir com a raiz seguida das respostas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)

		rootID := int64(100)
		root := &domain.ChatMessage{ID: rootID, PublicID: "msg-root", ChannelID: 10}
		replies := []*domain.ChatMessage{
			{ID: 101, PublicID: "msg-a", ChannelID: 10, ParentID: &rootID},
			{ID: 102, PublicID: "msg-b", ChannelID: 10, ParentID: &rootID},
		}

		chatRepo.EXPECT().GetMessageByPublicID("msg-root").Return(root, nil)
		chatRepo.EXPECT().ListThread(rootID).Return(replies, nil)
		chatRepo.EXPECT().GetReactions([]int64{100, 101, 102}).Return(nil, nil)

		service := NewService(chatRepo, nil)

		thread, err := service.GetThread("msg-root")

		assert.NoError(t, err)
		assert.Len(t, thread, 3)
		assert.Equal(t, "msg-root", thread[0].PublicID)
		assert.Equal(t, "msg-a", thread[1].PublicID)
		assert.Equal(t, "msg-b", thread[2].PublicID)
	})

	t.Run("Mensagem não encontrada - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chatRepo := mocks.NewMockChatRepository(ctrl)
		chatRepo.EXPECT().GetMessageByPublicID("msg-404").Return(nil, nil)

		service := NewService(chatRepo, nil)

		thread, err := service.GetThread("msg-404")
		assert.Error(t, err)
		assert.Nil(t, thread)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 4, 1, 12, 0, 0, 987654321, time.UTC)

	cursor := encodeCursor(createdAt, 42)
	decoded, err := decodeCursor(cursor)

	assert.NoError(t, err)
	assert.True(t, decoded.CreatedAt.Equal(createdAt))
	assert.Equal(t, int64(42), decoded.ID)
}

func TestDecodeCursor_Invalido(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "Base64 inválido", cursor: "###"},
		{name: "Sem separador", cursor: "MjAyNS0wNC0wMVQxMjowMDowMFo"},
		{name: "Data inválida", cursor: "bm90LWEtZGF0ZXw0Mg=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := decodeCursor(tt.cursor)
			assert.Error(t, err)
			assert.Nil(t, decoded)
		})
	}
}

func TestDecodeCursor_Vazio(t *testing.T) {
	decoded, err := decodeCursor("")
	assert.NoError(t, err)
	assert.Nil(t, decoded)
}
