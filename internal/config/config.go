package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App  App  `mapstructure:",squash"`
	Axon Axon `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Axon struct {
	BaseURL        string        `mapstructure:"axon_base_url"`
	APIKey         string        `mapstructure:"axon_api_key"`
	ReportType     string        `mapstructure:"axon_report_type"`
	TimeoutSeconds int           `mapstructure:"axon_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("AXON_BASE_URL", "https://r.applovin.com/report")
	viper.SetDefault("AXON_API_KEY", "") // Normalmente informado via --api-key
	viper.SetDefault("AXON_REPORT_TYPE", "advertiser")
	viper.SetDefault("AXON_TIMEOUT_SECONDS", 30)

	viper.SetDefault("LOG_LEVEL", "info")
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
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "falha ao carregar a configuração")
	}

	if config.Axon.TimeoutSeconds <= 0 {
		config.Axon.TimeoutSeconds = 30
	}
	config.Axon.Timeout = time.Duration(config.Axon.TimeoutSeconds) * time.Second

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar algumas localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
