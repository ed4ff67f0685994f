package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/oauth"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
)

// OAuthAuthorize redireciona o navegador para a tela de autorização da
// plataforma, com o account_id assinado dentro do state.
func OAuthAuthorize(service oauth.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider := domain.Provider(httprouter.ParamsFromContext(r.Context()).ByName("provider"))

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
			return
		}

		authURL, err := service.BuildAuthorizationURL(provider, accountID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"provider":   provider,
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("oauth: erro ao montar URL de autorização")

			writeOAuthError(w, err)
			return
		}

		http.Redirect(w, r, authURL, http.StatusFound)
	})
}

// OAuthCallback recebe o redirect da plataforma, valida o state e troca o
// código de autorização pelos tokens da conta.
func OAuthCallback(service oauth.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider := domain.Provider(httprouter.ParamsFromContext(r.Context()).ByName("provider"))

		state := r.URL.Query().Get("state")
		code := r.URL.Query().Get("code")

		connection, err := service.HandleCallback(provider, state, code)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"provider": provider,
				"error":    err.Error(),
			}).Error("oauth: erro no callback de autorização")

			writeOAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Conta conectada com sucesso",
			"provider":   connection.Provider,
			"account_id": connection.AccountID,
			"status":     connection.Status,
			"expires_at": connection.ExpiresAt,
		})
	})
}

func writeOAuthError(w http.ResponseWriter, err error) {
	var oauthErr *oauth.OAuthError
	if errors.As(err, &oauthErr) {
		apiErrors.WriteError(w, oauthErr.Code, oauthErr.Message, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro no fluxo de conexão OAuth", nil)
}
