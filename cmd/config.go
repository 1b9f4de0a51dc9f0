package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NotifierLog   = "log"
	NotifierMail  = "mail"
	NotifierRedis = "redis"
)

type Config struct {
	HTTPPort    string
	ServiceName string
	LogLevel    string
	LogFormat   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	Notifier          string
	MailAPIURL        string
	MailAPIKey        string
	MailFrom          string
	MailTimeout       time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisStream       string
	RedisStreamMaxLen int64

	PurchaseSupportMailbox string
	SalesSupportMailbox    string
	SupervisorMailbox      string
	AccountsMailbox        string

	DeliveryOrderRetrySpec string
	InvoiceOverdueSpec     string
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first when present; variables already set take precedence.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:    getEnvOrDefault("HTTP_PORT", "8080"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "procurement"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "json"),

		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBUser:     getEnvOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvOrDefault("DB_NAME", "procurement"),
		DBSslMode:  getEnvOrDefault("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		Notifier:          getEnvOrDefault("NOTIFIER", NotifierLog),
		MailAPIURL:        os.Getenv("MAIL_API_URL"),
		MailAPIKey:        os.Getenv("MAIL_API_KEY"),
		MailFrom:          getEnvOrDefault("MAIL_FROM", "no-reply@procurement.local"),
		MailTimeout:       getDurationOrDefault("MAIL_TIMEOUT", 10*time.Second),
		RedisAddr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getIntOrDefault("REDIS_DB", 0),
		RedisStream:       getEnvOrDefault("REDIS_STREAM", "procurement:notifications"),
		RedisStreamMaxLen: int64(getIntOrDefault("REDIS_STREAM_MAXLEN", 10000)),

		PurchaseSupportMailbox: os.Getenv("MAILBOX_PURCHASE_SUPPORT"),
		SalesSupportMailbox:    os.Getenv("MAILBOX_SALES_SUPPORT"),
		SupervisorMailbox:      os.Getenv("MAILBOX_SUPERVISOR"),
		AccountsMailbox:        os.Getenv("MAILBOX_ACCOUNTS"),

		DeliveryOrderRetrySpec: os.Getenv("DELIVERY_ORDER_RETRY_SPEC"),
		InvoiceOverdueSpec:     os.Getenv("INVOICE_OVERDUE_SPEC"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all required configuration is present.
func (c Config) Validate() error {
	var problems []error
	if c.DBPassword == "" {
		problems = append(problems, errors.New("DB_PASSWORD is required"))
	}
	if len(c.JWTSecret) < 32 {
		problems = append(problems, errors.New("JWT_SECRET must be at least 32 bytes"))
	}
	if _, err := strconv.Atoi(c.DBPort); err != nil {
		problems = append(problems, fmt.Errorf("invalid DB_PORT: %w", err))
	}
	switch c.Notifier {
	case NotifierLog, NotifierRedis:
	case NotifierMail:
		if c.MailAPIURL == "" {
			problems = append(problems, errors.New("MAIL_API_URL is required for the mail notifier"))
		}
	default:
		problems = append(problems, fmt.Errorf("unknown NOTIFIER %q", c.Notifier))
	}
	return errors.Join(problems...)
}

// DSN returns the database connection string.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   c.DBName,
	}
	query := dsn.Query()
	query.Add("sslmode", c.DBSslMode)
	dsn.RawQuery = query.Encode()
	return dsn.String()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
