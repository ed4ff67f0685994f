package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/realtime"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/collaborating"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/agency-dashboard-api/pkg/middleware"
)

type CreateChannelRequest struct {
	Name  string `json:"name"`
	Topic string `json:"topic"`
}

type PostMessageRequest struct {
	Body     string  `json:"body"`
	ParentID *string `json:"parent_id"`
}

type EditMessageRequest struct {
	Body string `json:"body"`
}

type ReactionRequest struct {
	Emoji string `json:"emoji"`
}

func ListChannels(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		channels, err := service.ListChannels()
		if err != nil {
			logrus.Error("Error listing chat channels:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar canais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(channels); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateChannel(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request CreateChannelRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		channel, err := service.CreateChannel(request.Name, request.Topic, userClaims.UserID)
		if err != nil {
			logrus.Error("Error creating chat channel:", err)

			if strings.Contains(err.Error(), "obrigatório") {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar canal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(channel); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetChannelMessages devolve uma página de mensagens do canal, da mais
// recente para a mais antiga, com cursor opaco de continuação.
func GetChannelMessages(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do canal é obrigatório", nil)
			return
		}

		cursor := r.URL.Query().Get("cursor")

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		page, err := service.GetChannelMessages(id, cursor, limit)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"channel_id": id,
				"error":      err.Error(),
			}).Error("chat: erro ao listar mensagens do canal")

			switch {
			case strings.Contains(err.Error(), "não encontrado"):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

			case strings.Contains(err.Error(), "cursor"):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar mensagens", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(page); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetThread devolve a mensagem raiz e as respostas de uma thread
func GetThread(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da mensagem é obrigatório", nil)
			return
		}

		messages, err := service.GetThread(id)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"message_id": id,
				"error":      err.Error(),
			}).Error("chat: erro ao buscar thread")

			if strings.Contains(err.Error(), "não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar thread", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(messages); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func PostMessage(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do canal é obrigatório", nil)
			return
		}

		var request PostMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		message, err := service.PostMessage(id, request.ParentID, userClaims.UserID, request.Body)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"channel_id": id,
				"user_id":    userClaims.UserID,
				"error":      err.Error(),
			}).Error("chat: erro ao enviar mensagem")

			switch {
			case strings.Contains(err.Error(), "não encontrad"):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

			case strings.Contains(err.Error(), "obrigatório"), strings.Contains(err.Error(), "outro canal"):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao enviar mensagem", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(message); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// EditMessage permite que o autor altere o corpo de uma mensagem
func EditMessage(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da mensagem é obrigatório", nil)
			return
		}

		var request EditMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		message, err := service.EditMessage(id, userClaims.UserID, request.Body)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"message_id": id,
				"user_id":    userClaims.UserID,
				"error":      err.Error(),
			}).Error("chat: erro ao editar mensagem")

			switch {
			case strings.Contains(err.Error(), "não encontrada"):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

			case strings.Contains(err.Error(), "somente o autor"):
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

			case strings.Contains(err.Error(), "obrigatório"):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao editar mensagem", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(message); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func AddReaction(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da mensagem é obrigatório", nil)
			return
		}

		var request ReactionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.AddReaction(id, userClaims.UserID, request.Emoji); err != nil {
			logrus.WithFields(logrus.Fields{
				"message_id": id,
				"user_id":    userClaims.UserID,
				"error":      err.Error(),
			}).Error("chat: erro ao adicionar reação")

			writeReactionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Reação adicionada com sucesso",
		})
	})
}

func RemoveReaction(service collaborating.Collaborator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		emoji := params.ByName("emoji")

		if id == "" || emoji == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da mensagem e emoji são obrigatórios", nil)
			return
		}

		if err := service.RemoveReaction(id, userClaims.UserID, emoji); err != nil {
			logrus.WithFields(logrus.Fields{
				"message_id": id,
				"user_id":    userClaims.UserID,
				"error":      err.Error(),
			}).Error("chat: erro ao remover reação")

			writeReactionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeReactionError(w http.ResponseWriter, err error) {
	switch {
	case strings.Contains(err.Error(), "não encontrada"):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case strings.Contains(err.Error(), "obrigatório"):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar reação", nil)
	}
}

// GetPresence lista os usuários com presença ativa em qualquer instância
func GetPresence(hub *realtime.Hub) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDs, err := hub.OnlineUserIDs(r.Context())
		if err != nil {
			logrus.WithError(err).Error("chat: erro ao consultar presença")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Erro ao consultar presença", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"online_user_ids": userIDs,
		})
	})
}

// ChatWebSocket faz o upgrade da conexão para WebSocket e entrega os eventos
// de chat em tempo real ao usuário autenticado.
func ChatWebSocket(hub *realtime.Hub) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		hub.ServeWS(w, r, userClaims.UserID)
	})
}
