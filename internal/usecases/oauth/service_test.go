package oauth

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService() *Service {
	return &Service{
		cfg: &config.Config{
			Auth: config.Auth{Secret: "segredo-de-teste"},
			Meta: config.ProviderApp{AppID: "meta-app", AppSecret: "meta-secret"},
			OAuth: config.OAuth{
				RedirectBaseURL: "https://painel.exemplo.com.br",
				StateTTLMinutes: 10,
			},
		},
	}
}

func TestSignState_RoundTrip(t *testing.T) {
	service := newTestService()

	state := service.signState("acc-123", time.Now())

	accountID, err := service.verifyState(state)

	assert.NoError(t, err)
	assert.Equal(t, "acc-123", accountID)
}

func TestVerifyState(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name  string
		state func() string
	}{
		{
			name:  "State que não é base64",
			state: func() string { return "###" },
		},
		{
			name:  "Payload sem as três partes",
			state: func() string { return "YWNjLTEyMw==" }, // base64("acc-123")
		},
		{
			name: "Assinatura de outro segredo",
			state: func() string {
				other := &Service{cfg: &config.Config{
					Auth:  config.Auth{Secret: "outro-segredo"},
					OAuth: config.OAuth{StateTTLMinutes: 10},
				}}
				return other.signState("acc-123", time.Now())
			},
		},
		{
			name: "State adulterado após a assinatura",
			state: func() string {
				valid := service.signState("acc-123", time.Now())
				raw, _ := base64.URLEncoding.DecodeString(valid)
				tampered := strings.Replace(string(raw), "acc-123", "acc-999", 1)
				return base64.URLEncoding.EncodeToString([]byte(tampered))
			},
		},
		{
			name: "State expirado",
			state: func() string {
				return service.signState("acc-123", time.Now().Add(-1*time.Hour))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountID, err := service.verifyState(tt.state())

			assert.Error(t, err)
			assert.Empty(t, accountID)

			oauthErr, ok := err.(*OAuthError)
			assert.True(t, ok)
			assert.Equal(t, apiErrors.ErrInvalidOAuthState, oauthErr.Code)
		})
	}
}

func TestBuildAuthorizationURL(t *testing.T) {
	t.Run("Deve montar a URL de autorização com state assinado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		accountRepo.EXPECT().GetAccountByID("acc-123").Return(&domain.AdAccount{ID: "acc-123"}, nil)

		service := newTestService()
		service.accountRepository = accountRepo

		rawURL, err := service.BuildAuthorizationURL(domain.ProviderMeta, "acc-123")

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(rawURL, "https://www.facebook.com/"))

		parsed, err := url.Parse(rawURL)
		assert.NoError(t, err)

		query := parsed.Query()
		assert.Equal(t, "meta-app", query.Get("client_id"))
		assert.Equal(t, "code", query.Get("response_type"))
		assert.Equal(t, "https://painel.exemplo.com.br/v1/oauth/meta/callback", query.Get("redirect_uri"))

		// O state devolvido valida contra o mesmo segredo
		accountID, err := service.verifyState(query.Get("state"))
		assert.NoError(t, err)
		assert.Equal(t, "acc-123", accountID)
	})

	t.Run("Conta não encontrada - deve retornar erro tipado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		accountRepo.EXPECT().GetAccountByID("acc-404").Return(nil, nil)

		service := newTestService()
		service.accountRepository = accountRepo

		rawURL, err := service.BuildAuthorizationURL(domain.ProviderMeta, "acc-404")

		assert.Error(t, err)
		assert.Empty(t, rawURL)

		oauthErr, ok := err.(*OAuthError)
		assert.True(t, ok)
		assert.Equal(t, apiErrors.ErrResourceNotFound, oauthErr.Code)
	})

	t.Run("Plataforma desconhecida - deve recusar", func(t *testing.T) {
		service := newTestService()

		rawURL, err := service.BuildAuthorizationURL(domain.Provider("orkut"), "acc-123")

		assert.Error(t, err)
		assert.Empty(t, rawURL)

		oauthErr, ok := err.(*OAuthError)
		assert.True(t, ok)
		assert.Equal(t, apiErrors.ErrProviderUnsupported, oauthErr.Code)
	})
}

func TestHandleCallback_CodigoAusente(t *testing.T) {
	service := newTestService()

	state := service.signState("acc-123", time.Now())

	connection, err := service.HandleCallback(domain.ProviderMeta, state, "")

	assert.Error(t, err)
	assert.Nil(t, connection)

	oauthErr, ok := err.(*OAuthError)
	assert.True(t, ok)
	assert.Equal(t, apiErrors.ErrInvalidRequest, oauthErr.Code)
}
