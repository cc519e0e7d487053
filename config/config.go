package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPass     string
	EmailTo       string
	WhatsAppPhone string

	AllowedOrigins []string

	RateLimitWindow  time.Duration
	RateLimitMax     int
	RateLimitSweepAt int

	MinFillTime time.Duration

	RabbitMQURL     string
	OrderExchange   string
	OrderQueue      string
	DeadLetterQueue string
	MaxPriority     int
}

func LoadConfig() *Config {
	return &Config{
		EmailHost:     getEnv("EMAIL_HOST", ""),
		EmailPort:     getEnvInt("EMAIL_PORT", 587),
		EmailUser:     getEnv("EMAIL_USER", ""),
		EmailPass:     getEnvFromFile("EMAIL_PASS_FILE", "EMAIL_PASS", ""),
		EmailTo:       getEnv("EMAIL_TO", ""),
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "15719103088"),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"sabordeemociones.com",
			"www.sabordeemociones.com",
			"localhost:3000",
			"localhost",
			"127.0.0.1:3000",
			"127.0.0.1",
		}),

		RateLimitWindow:  getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:     getEnvInt("RATE_LIMIT_MAX", 5),
		RateLimitSweepAt: getEnvInt("RATE_LIMIT_SWEEP_AT", 1000),

		MinFillTime: getEnvDuration("MIN_FILL_TIME", 3*time.Second),

		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		OrderExchange:   getEnv("ORDER_EXCHANGE", "orders_exchange"),
		OrderQueue:      getEnv("ORDER_QUEUE", "orders_queue"),
		DeadLetterQueue: getEnv("DEAD_LETTER_QUEUE", "dead_letter_queue"),
		MaxPriority:     10,
	}
}

// EmailReady reports whether every setting needed to dispatch order emails
// is present. Dispatch fails with a configuration error otherwise.
func (c *Config) EmailReady() bool {
	return c.EmailHost != "" && c.EmailPort != 0 && c.EmailUser != "" && c.EmailPass != "" && c.EmailTo != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFromFile(fileKey, envKey, defaultValue string) string {
	if filePath := os.Getenv(fileKey); filePath != "" {
		if content, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, defaultValue)
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
