package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App    `mapstructure:",squash"`
	Server    Server `mapstructure:",squash"`
	Warm      Warm   `mapstructure:",squash"`
	Auth      Auth   `mapstructure:",squash"`
	SecretKey string `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Warm agrupa as configurações de acesso à API da WARM (monitoramento de airplay)
type Warm struct {
	BaseURL string `mapstructure:"warm_base_url"`
	// Token pré-emitido pelo dashboard da WARM; quando presente, dispensa a troca de credenciais
	Token string `mapstructure:"warm_api_token"`
	// Credenciais de fallback para a troca via /auth/exchange
	Email    string `mapstructure:"warm_api_email"`
	Password string `mapstructure:"warm_api_password"`
	// País padrão das consultas
	CountryCode string `mapstructure:"warm_country_code"`
	// Timeout explícito das chamadas HTTP (o original confiava no default do cliente)
	RequestTimeout time.Duration `mapstructure:"warm_request_timeout"`
	// Modo mock: substitui o cliente real por dados sintéticos
	MockMode            bool    `mapstructure:"warm_mock_mode"`
	MockPlayProbability float64 `mapstructure:"warm_mock_play_probability"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("WARM_BASE_URL", "https://public-api.warmmusic.net/api/v1")
	viper.SetDefault("WARM_API_TOKEN", "")
	viper.SetDefault("WARM_API_EMAIL", "promo@totalaudiopromo.com")
	viper.SetDefault("WARM_API_PASSWORD", "")
	viper.SetDefault("WARM_COUNTRY_CODE", "GB")
	viper.SetDefault("WARM_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("WARM_MOCK_MODE", false)
	viper.SetDefault("WARM_MOCK_PLAY_PROBABILITY", 0.4) // chance de o mock retornar plays

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("SECRET_KEY", "your_secret_key")

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

	if config.Warm.RequestTimeout <= 0 {
		config.Warm.RequestTimeout = 30 * time.Second
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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
