package config

import (
	"time"

	"github.com/spf13/viper"
)

type MessageTransport string

const (
	LogTransport   MessageTransport = "LOG"
	KafkaTransport MessageTransport = "KAFKA"
)

const DefaultAPIURL = "https://api.telegram.org"

type Config struct {
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIURL   string `mapstructure:"TELEGRAM_API_URL"`
	BotMetricsPort   int    `mapstructure:"BOT_METRICS_PORT"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`

	PollTimeout        int           `mapstructure:"POLL_TIMEOUT"`
	PollLimit          int           `mapstructure:"POLL_LIMIT"`
	PollAllowedUpdates []string      `mapstructure:"POLL_ALLOWED_UPDATES"`
	PollRetryDelay     time.Duration `mapstructure:"POLL_RETRY_DELAY"`

	WebhookURL            string `mapstructure:"WEBHOOK_URL"`
	WebhookCertificate    string `mapstructure:"WEBHOOK_CERTIFICATE"`
	WebhookMaxConnections int    `mapstructure:"WEBHOOK_MAX_CONNECTIONS"`
	DeleteWebhookOnStart  bool   `mapstructure:"DELETE_WEBHOOK_ON_START"`

	KafkaBrokers     string           `mapstructure:"KAFKA_BROKERS"`
	MessageTransport MessageTransport `mapstructure:"MESSAGE_TRANSPORT"`
	TopicUpdates     string           `mapstructure:"TOPIC_UPDATES"`

	MaxIdleConns        int           `mapstructure:"MAX_IDLE_CONNS"`
	IdleConnTimeout     time.Duration `mapstructure:"IDLE_CONN_TIMEOUT"`
	TLSHandshakeTimeout time.Duration `mapstructure:"TLS_HANDSHAKE_TIMEOUT"`
	MaxRedirects        int           `mapstructure:"MAX_REDIRECTS"`

	CBEnabled                  bool          `mapstructure:"CB_ENABLED"`
	CBSlidingWindowSize        int           `mapstructure:"CB_SLIDING_WINDOW_SIZE"`
	CBMinimumRequiredCalls     int           `mapstructure:"CB_MINIMUM_REQUIRED_CALLS"`
	CBFailureRateThreshold     int           `mapstructure:"CB_FAILURE_RATE_THRESHOLD"`
	CBPermittedCallsInHalfOpen int           `mapstructure:"CB_PERMITTED_CALLS_IN_HALF_OPEN"`
	CBWaitDurationInOpenState  time.Duration `mapstructure:"CB_WAIT_DURATION_IN_OPEN_STATE"`
}

func LoadConfig() *Config {
	setDefaults()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return getDefaultConfig()
	}

	return config
}

func setDefaults() {
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_API_URL", DefaultAPIURL)
	viper.SetDefault("BOT_METRICS_PORT", 9094)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("POLL_TIMEOUT", 30)
	viper.SetDefault("POLL_LIMIT", 100)
	viper.SetDefault("POLL_ALLOWED_UPDATES", []string{})
	viper.SetDefault("POLL_RETRY_DELAY", "5s")

	viper.SetDefault("WEBHOOK_URL", "")
	viper.SetDefault("WEBHOOK_CERTIFICATE", "")
	viper.SetDefault("WEBHOOK_MAX_CONNECTIONS", 40)
	viper.SetDefault("DELETE_WEBHOOK_ON_START", true)

	viper.SetDefault("KAFKA_BROKERS", "kafka:9092")
	viper.SetDefault("MESSAGE_TRANSPORT", string(LogTransport))
	viper.SetDefault("TOPIC_UPDATES", "telegram-updates")

	viper.SetDefault("MAX_IDLE_CONNS", 10)
	viper.SetDefault("IDLE_CONN_TIMEOUT", "90s")
	viper.SetDefault("TLS_HANDSHAKE_TIMEOUT", "10s")
	viper.SetDefault("MAX_REDIRECTS", 10)

	viper.SetDefault("CB_ENABLED", false)
	viper.SetDefault("CB_SLIDING_WINDOW_SIZE", 10)
	viper.SetDefault("CB_MINIMUM_REQUIRED_CALLS", 5)
	viper.SetDefault("CB_FAILURE_RATE_THRESHOLD", 50)
	viper.SetDefault("CB_PERMITTED_CALLS_IN_HALF_OPEN", 2)
	viper.SetDefault("CB_WAIT_DURATION_IN_OPEN_STATE", "10s")
}

func getDefaultConfig() *Config {
	return &Config{
		TelegramAPIURL: DefaultAPIURL,
		BotMetricsPort: 9094,
		LogLevel:       "info",

		PollTimeout:    30,
		PollLimit:      100,
		PollRetryDelay: 5 * time.Second,

		WebhookMaxConnections: 40,
		DeleteWebhookOnStart:  true,

		KafkaBrokers:     "kafka:9092",
		MessageTransport: LogTransport,
		TopicUpdates:     "telegram-updates",

		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxRedirects:        10,

		CBEnabled:                  false,
		CBSlidingWindowSize:        10,
		CBMinimumRequiredCalls:     5,
		CBFailureRateThreshold:     50,
		CBPermittedCallsInHalfOpen: 2,
		CBWaitDurationInOpenState:  10 * time.Second,
	}
}

// Default возвращает конфигурацию по умолчанию без чтения окружения.
func Default() *Config {
	return getDefaultConfig()
}
