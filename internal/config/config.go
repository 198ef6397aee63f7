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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Stripe       Stripe       `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
	Mail         Mail         `mapstructure:",squash"`
	Forecast     Forecast     `mapstructure:",squash"`
	ForecastSync ForecastSync `mapstructure:",squash"`
	Metrics      Metrics      `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
	BaseURL   string `mapstructure:"render_base_url"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
	Environment string `mapstructure:"app_env"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Stripe struct {
	SecretKey      string `mapstructure:"stripe_secret_key"`
	WebhookSecret  string `mapstructure:"stripe_webhook_secret"`
	MonthlyPriceID string `mapstructure:"stripe_monthly_price_id"`
	YearlyPriceID  string `mapstructure:"stripe_yearly_price_id"`
}

type Storage struct {
	BaseDir   string `mapstructure:"storage_base_dir"`
	PublicURL string `mapstructure:"storage_public_url"`
}

type Report struct {
	FontPath     string `mapstructure:"report_font_path"`
	BoldFontPath string `mapstructure:"report_bold_font_path"`
}

type Mail struct {
	Enabled  bool   `mapstructure:"mail_enabled"`
	Host     string `mapstructure:"mail_host"`
	Port     int    `mapstructure:"mail_port"`
	User     string `mapstructure:"mail_user"`
	Password string `mapstructure:"mail_password"`
	From     string `mapstructure:"mail_from"`
}

type Forecast struct {
	LookbackDays       int `mapstructure:"forecast_lookback_days"`
	WindowSize         int `mapstructure:"forecast_window_size"`
	HorizonDays        int `mapstructure:"forecast_horizon_days"`
	ReorderThreshold   int `mapstructure:"forecast_reorder_threshold_days"`
	ReorderAverageDays int `mapstructure:"forecast_reorder_average_days"`
}

type ForecastSync struct {
	CronSchedule string `mapstructure:"forecast_sync_cron"`
	Enabled      bool   `mapstructure:"forecast_sync_enabled"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytico?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true) // Aplica as migrações do goose ao iniciar

	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("RENDER_BASE_URL", "https://api.render.com/v1")

	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("STRIPE_MONTHLY_PRICE_ID", "")
	viper.SetDefault("STRIPE_YEARLY_PRICE_ID", "")

	// Diretório de uploads e relatórios e o prefixo das URLs devolvidas
	viper.SetDefault("STORAGE_BASE_DIR", "./data")
	viper.SetDefault("STORAGE_PUBLIC_URL", "http://localhost:8000/files")

	viper.SetDefault("REPORT_FONT_PATH", "./fonts/DejaVuSans.ttf")
	viper.SetDefault("REPORT_BOLD_FONT_PATH", "./fonts/DejaVuSans-Bold.ttf")

	viper.SetDefault("MAIL_ENABLED", false)
	viper.SetDefault("MAIL_HOST", "localhost")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_USER", "")
	viper.SetDefault("MAIL_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "relatorios@analytico.app")

	viper.SetDefault("FORECAST_LOOKBACK_DAYS", 30)         // Janela de vendas usada na previsão
	viper.SetDefault("FORECAST_WINDOW_SIZE", 7)            // Pontos da média móvel
	viper.SetDefault("FORECAST_HORIZON_DAYS", 7)           // Dias projetados
	viper.SetDefault("FORECAST_REORDER_THRESHOLD_DAYS", 7) // Dias restantes abaixo dos quais sugerimos reposição
	viper.SetDefault("FORECAST_REORDER_AVERAGE_DAYS", 30)  // Divisor fixo da média diária

	viper.SetDefault("FORECAST_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("FORECAST_SYNC_ENABLED", false)    // Regeneração agendada das previsões

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)
		secrets, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter secrets do Render")
			return nil, err
		}
		config.applySecrets(secrets)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// applySecrets preenche apenas os campos que não vieram do ambiente
func (c *Config) applySecrets(secrets map[string]string) {
	if v, ok := secrets["stripe_secret_key"]; ok && c.Stripe.SecretKey == "" {
		c.Stripe.SecretKey = v
	}
	if v, ok := secrets["stripe_webhook_secret"]; ok && c.Stripe.WebhookSecret == "" {
		c.Stripe.WebhookSecret = v
	}
	if v, ok := secrets["secret_key"]; ok && c.SecretKey == "" {
		c.SecretKey = v
	}
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
