package oauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
)

// endpoints de autorização e troca de token por plataforma.
type providerEndpoints struct {
	AuthorizeURL string
	TokenURL     string
	Scope        string
}

var endpoints = map[domain.Provider]providerEndpoints{
	domain.ProviderMeta: {
		AuthorizeURL: "https://www.facebook.com/v22.0/dialog/oauth",
		TokenURL:     "https://graph.facebook.com/v22.0/oauth/access_token",
		Scope:        "ads_read,business_management",
	},
	domain.ProviderGoogle: {
		AuthorizeURL: "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL:     "https://oauth2.googleapis.com/token",
		Scope:        "https://www.googleapis.com/auth/adwords",
	},
	domain.ProviderTikTok: {
		AuthorizeURL: "https://business-api.tiktok.com/portal/auth",
		TokenURL:     "https://business-api.tiktok.com/open_api/v1.3/oauth2/access_token/",
		Scope:        "ads.read",
	},
	domain.ProviderLinkedIn: {
		AuthorizeURL: "https://www.linkedin.com/oauth/v2/authorization",
		TokenURL:     "https://www.linkedin.com/oauth/v2/accessToken",
		Scope:        "r_ads,r_ads_reporting",
	},
}

// Connector define o fluxo de conexão OAuth consumido pelos handlers.
type Connector interface {
	// BuildAuthorizationURL monta a URL de redirect para a plataforma, com o
	// account_id assinado dentro do state.
	BuildAuthorizationURL(provider domain.Provider, accountID string) (string, error)

	// HandleCallback valida o state, troca o código por tokens e persiste a
	// conexão da conta.
	HandleCallback(provider domain.Provider, state, code string) (*domain.ProviderConnection, error)
}

type Service struct {
	cfg                  *config.Config
	accountRepository    repository.AccountRepository
	connectionRepository repository.ProviderConnectionRepository
}

// NewService cria uma nova instância do serviço de OAuth
func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	connectionRepo repository.ProviderConnectionRepository,
) Connector {
	return &Service{
		cfg:                  cfg,
		accountRepository:    accountRepo,
		connectionRepository: connectionRepo,
	}
}

func (s *Service) BuildAuthorizationURL(provider domain.Provider, accountID string) (string, error) {
	endpoint, ok := endpoints[provider]
	if !ok {
		return "", &OAuthError{Code: apiErrors.ErrProviderUnsupported, Message: fmt.Sprintf("plataforma não suportada: %s", provider)}
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", &OAuthError{Code: apiErrors.ErrResourceNotFound, Message: fmt.Sprintf("conta não encontrada: %s", accountID)}
	}

	app := s.providerApp(provider)

	params := url.Values{}
	params.Set("client_id", app.AppID)
	params.Set("redirect_uri", s.redirectURI(provider))
	params.Set("response_type", "code")
	params.Set("scope", endpoint.Scope)
	params.Set("state", s.signState(accountID, time.Now()))

	return endpoint.AuthorizeURL + "?" + params.Encode(), nil
}

func (s *Service) HandleCallback(provider domain.Provider, state, code string) (*domain.ProviderConnection, error) {
	endpoint, ok := endpoints[provider]
	if !ok {
		return nil, &OAuthError{Code: apiErrors.ErrProviderUnsupported, Message: fmt.Sprintf("plataforma não suportada: %s", provider)}
	}

	accountID, err := s.verifyState(state)
	if err != nil {
		return nil, err
	}

	if code == "" {
		return nil, &OAuthError{Code: apiErrors.ErrInvalidRequest, Message: "código de autorização ausente"}
	}

	token, err := s.exchangeCode(provider, endpoint, code)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"provider":   provider,
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("oauth: failed to exchange authorization code")
		return nil, &OAuthError{Code: apiErrors.ErrTokenExchange, Message: "falha na troca do código por token"}
	}

	connection := &domain.ProviderConnection{
		AccountID:    accountID,
		Provider:     provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Scope:        token.Scope,
		ExpiresAt:    time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
		Status:       domain.ConnectionStatusActive,
	}

	if err := s.connectionRepository.SaveOrUpdate(connection); err != nil {
		return nil, err
	}

	return connection, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

func (s *Service) exchangeCode(provider domain.Provider, endpoint providerEndpoints, code string) (*tokenResponse, error) {
	app := s.providerApp(provider)

	form := url.Values{}
	form.Set("client_id", app.AppID)
	form.Set("client_secret", app.AppSecret)
	form.Set("redirect_uri", s.redirectURI(provider))
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	resp, err := http.PostForm(endpoint.TokenURL, form)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar o endpoint de token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("endpoint de token retornou status %d: %s", resp.StatusCode, string(body))
	}

	token := &tokenResponse{}
	if err := json.Unmarshal(body, token); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("resposta de token sem access_token")
	}

	return token, nil
}

// signState gera o state assinado com HMAC-SHA256:
// base64url("<account_id>|<unix>|<mac>").
func (s *Service) signState(accountID string, issuedAt time.Time) string {
	payload := accountID + "|" + strconv.FormatInt(issuedAt.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(s.cfg.Auth.Secret))
	mac.Write([]byte(payload))
	signed := payload + "|" + hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(signed))
}

func (s *Service) verifyState(state string) (string, error) {
	invalid := &OAuthError{Code: apiErrors.ErrInvalidOAuthState, Message: "state do redirect inválido"}

	raw, err := base64.URLEncoding.DecodeString(state)
	if err != nil {
		return "", invalid
	}

	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return "", invalid
	}

	accountID, issued, signature := parts[0], parts[1], parts[2]

	mac := hmac.New(sha256.New, []byte(s.cfg.Auth.Secret))
	mac.Write([]byte(accountID + "|" + issued))
	if !hmac.Equal([]byte(hex.EncodeToString(mac.Sum(nil))), []byte(signature)) {
		return "", invalid
	}

	issuedUnix, err := strconv.ParseInt(issued, 10, 64)
	if err != nil {
		return "", invalid
	}

	ttl := time.Duration(s.cfg.OAuth.StateTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if time.Since(time.Unix(issuedUnix, 0)) > ttl {
		return "", &OAuthError{Code: apiErrors.ErrInvalidOAuthState, Message: "state do redirect expirado"}
	}

	return accountID, nil
}

func (s *Service) redirectURI(provider domain.Provider) string {
	return fmt.Sprintf("%s/v1/oauth/%s/callback", s.cfg.OAuth.RedirectBaseURL, provider)
}

func (s *Service) providerApp(provider domain.Provider) config.ProviderApp {
	switch provider {
	case domain.ProviderGoogle:
		return s.cfg.Google
	case domain.ProviderTikTok:
		return s.cfg.TikTok
	case domain.ProviderLinkedIn:
		return s.cfg.LinkedIn
	default:
		return s.cfg.Meta
	}
}

// OAuthError carrega o código de API do erro para o handler.
type OAuthError struct {
	Code    string
	Message string
}

func (e *OAuthError) Error() string {
	return e.Message
}
