package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type MailerConfig struct {
	APIKey    string
	FromName  string
	FromEmail string
}

type Config struct {
	Port        string
	Database    DatabaseConfig
	RedisURL    string
	RabbitMQURL string
	JWTSecret   string
	Mailer      MailerConfig
}

// Load reads configuration from the environment. A .env file is applied
// first when present. Database settings are required; Redis, RabbitMQ,
// MailerSend and the token secret are optional and disable their feature
// when unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		RedisURL:    os.Getenv("REDIS_URL"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Mailer: MailerConfig{
			APIKey:    os.Getenv("MAILERSEND_API_KEY"),
			FromName:  getEnvOrDefault("MAILERSEND_FROM_NAME", "TicketBari"),
			FromEmail: os.Getenv("MAILERSEND_EMAIL"),
		},
	}

	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return nil, fmt.Errorf("DB_USER and DB_NAME environment variables are required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
