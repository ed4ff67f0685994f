package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Meta            ProviderApp     `mapstructure:",squash"`
	Google          ProviderApp     `mapstructure:"-"`
	TikTok          ProviderApp     `mapstructure:"-"`
	LinkedIn        ProviderApp     `mapstructure:"-"`
	OAuth           OAuth           `mapstructure:",squash"`
	InsightSync     InsightSync     `mapstructure:",squash"`
	InvoiceOverdue  InvoiceOverdue  `mapstructure:",squash"`
	Chat            Chat            `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// ProviderApp são as credenciais de aplicativo de uma plataforma de anúncios.
type ProviderApp struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type OAuth struct {
	RedirectBaseURL string `mapstructure:"oauth_redirect_base_url"`
	StateTTLMinutes int    `mapstructure:"oauth_state_ttl_minutes"`
}

type InsightSync struct {
	CronSchedule        string `mapstructure:"insight_sync_cron"`
	LookbackDays        int    `mapstructure:"insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"insight_sync_enabled"`
}

type InvoiceOverdue struct {
	CronSchedule string `mapstructure:"invoice_overdue_cron"`
	Enabled      bool   `mapstructure:"invoice_overdue_enabled"`
}

type Chat struct {
	PageSize        int `mapstructure:"chat_page_size"`
	PresenceTTLSecs int `mapstructure:"chat_presence_ttl_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/agency")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("GOOGLE_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_VERSION", "v17")
	viper.SetDefault("GOOGLE_APP_ID", "your_app_id")
	viper.SetDefault("GOOGLE_APP_SECRET", "your_app_secret")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api")
	viper.SetDefault("TIKTOK_VERSION", "v1.3")
	viper.SetDefault("TIKTOK_APP_ID", "your_app_id")
	viper.SetDefault("TIKTOK_APP_SECRET", "your_app_secret")

	viper.SetDefault("LINKEDIN_BASE_URL", "https://api.linkedin.com/rest")
	viper.SetDefault("LINKEDIN_VERSION", "202405")
	viper.SetDefault("LINKEDIN_APP_ID", "your_app_id")
	viper.SetDefault("LINKEDIN_APP_SECRET", "your_app_secret")

	viper.SetDefault("OAUTH_REDIRECT_BASE_URL", "http://localhost:8000")
	viper.SetDefault("OAUTH_STATE_TTL_MINUTES", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para sincronização de insights dos providers
	viper.SetDefault("INSIGHT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("INSIGHT_SYNC_ENABLED", false)

	viper.SetDefault("INVOICE_OVERDUE_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("INVOICE_OVERDUE_ENABLED", true)

	viper.SetDefault("CHAT_PAGE_SIZE", 50)
	viper.SetDefault("CHAT_PRESENCE_TTL_SECONDS", 60)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	// O squash do viper não comporta o mesmo struct com prefixos diferentes,
	// então os demais providers são lidos direto das chaves.
	config.Google = providerAppFromEnv("google")
	config.TikTok = providerAppFromEnv("tiktok")
	config.LinkedIn = providerAppFromEnv("linkedin")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func providerAppFromEnv(prefix string) ProviderApp {
	app := ProviderApp{
		BaseURL:   viper.GetString(prefix + "_base_url"),
		Version:   viper.GetString(prefix + "_version"),
		AppID:     viper.GetString(prefix + "_app_id"),
		AppSecret: viper.GetString(prefix + "_app_secret"),
	}
	app.URL = fmt.Sprintf("%s/%s", app.BaseURL, app.Version)
	return app
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
