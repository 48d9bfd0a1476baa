package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Analytics      Analytics      `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	RateLimit      RateLimit      `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Analytics aponta para os endpoints de dados consolidados por mês
type Analytics struct {
	CurrentURL     string `mapstructure:"analytics_current_url"`
	PreviousURL    string `mapstructure:"analytics_previous_url"`
	TimeoutSeconds int    `mapstructure:"analytics_timeout_seconds"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
	LoadOnStart  bool   `mapstructure:"dataset_refresh_load_on_start"`
}

type RateLimit struct {
	RequestsPerMinute int  `mapstructure:"rate_limit_requests_per_minute"`
	Enabled           bool `mapstructure:"rate_limit_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("ANALYTICS_CURRENT_URL", "http://localhost:3000/api/analise_campanhas")
	viper.SetDefault("ANALYTICS_PREVIOUS_URL", "http://localhost:3000/api/analise_campanhas_2024")
	viper.SetDefault("ANALYTICS_TIMEOUT_SECONDS", 0) // Sem limite

	viper.SetDefault("DATASET_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)
	viper.SetDefault("DATASET_REFRESH_LOAD_ON_START", true)

	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_MINUTE", 120)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
