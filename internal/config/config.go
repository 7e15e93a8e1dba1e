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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	SalesFeed   SalesFeed   `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Pacing      Pacing      `mapstructure:",squash"`
	Categories  Categories  `mapstructure:",squash"`
	GoalRanking GoalRanking `mapstructure:",squash"`
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

// SalesFeed configura a API de vendas do fornecedor
type SalesFeed struct {
	URL            string        `mapstructure:"salesfeed_url"`
	Endpoint       string        `mapstructure:"salesfeed_endpoint"`
	AccessToken    string        `mapstructure:"salesfeed_access_token"`
	Timeout        time.Duration `mapstructure:"salesfeed_timeout"`
	MaxRetries     int           `mapstructure:"salesfeed_max_retries"`
	InitialBackoff time.Duration `mapstructure:"salesfeed_initial_backoff"`
	MaxBackoff     time.Duration `mapstructure:"salesfeed_max_backoff"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Pacing struct {
	Timezone string `mapstructure:"pacing_timezone"`
	// TodayAbsencePolicy: exclude (padrão) ou include
	TodayAbsencePolicy string `mapstructure:"pacing_today_absence_policy"`
}

// Categories sobrescreve a tabela de apelidos de categoria
type Categories struct {
	GroupCodes    string `mapstructure:"category_group_codes"`
	LedgerAliases string `mapstructure:"category_ledger_aliases"`
	Store         string `mapstructure:"category_store_set"`
	Individual    string `mapstructure:"category_individual_set"`
}

type GoalRanking struct {
	CronSchedule      string `mapstructure:"goal_ranking_cron"`
	SyncEnabled       bool   `mapstructure:"goal_ranking_sync_enabled"`
	MaxConcurrentJobs int    `mapstructure:"goal_ranking_max_concurrent_jobs"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metas?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("SALESFEED_URL", "https://api.vendas.example.com/v1")
	viper.SetDefault("SALESFEED_ENDPOINT", "vendas/funcionarios")
	viper.SetDefault("SALESFEED_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("SALESFEED_TIMEOUT", "15s")                     // Timeout por tentativa
	viper.SetDefault("SALESFEED_MAX_RETRIES", 3)                     // Tentativas extras após a primeira
	viper.SetDefault("SALESFEED_INITIAL_BACKOFF", "500ms")
	viper.SetDefault("SALESFEED_MAX_BACKOFF", "5s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")

	viper.SetDefault("PACING_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("PACING_TODAY_ABSENCE_POLICY", "exclude")

	// Vazio mantém a tabela padrão de categorias
	viper.SetDefault("CATEGORY_GROUP_CODES", "")
	viper.SetDefault("CATEGORY_LEDGER_ALIASES", "")
	viper.SetDefault("CATEGORY_STORE_SET", "")
	viper.SetDefault("CATEGORY_INDIVIDUAL_SET", "")

	viper.SetDefault("GOAL_RANKING_CRON", "*/30 8-22 * * *") // A cada 30 minutos durante o expediente
	viper.SetDefault("GOAL_RANKING_SYNC_ENABLED", false)     // Habilitar ranking de lojas
	viper.SetDefault("GOAL_RANKING_MAX_CONCURRENT_JOBS", 3)  // 3 lojas em paralelo

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
