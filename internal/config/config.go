package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port       string
	BasePath   string
	LogLevel   string
	ExportsDir string
	TempDir    string
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AuthConfig holds JWT settings
type AuthConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// RabbitMQConfig holds broker connection settings
type RabbitMQConfig struct {
	Host  string
	Port  string
	User  string
	Pass  string
	Queue string
}

// URL builds the AMQP connection URL (guest user automatically uses / vhost)
func (c *RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.User, c.Pass, c.Host, c.Port)
}

// RedisConfig holds the optional Redis URL used for the automation run lock
type RedisConfig struct {
	URL     string
	LockTTL time.Duration
}

// SchedulerConfig holds background worker intervals
type SchedulerConfig struct {
	AutomationInterval time.Duration
	DispatchInterval   time.Duration
	TokenCleanup       time.Duration
	ActivityCleanup    time.Duration
	ActivityRetention  int // days
}

// GetServerConfig returns server configuration from environment variables
func GetServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:       getEnv("PORT", "8080"),
		BasePath:   getEnv("BASE_PATH", "/autocontent-api"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		ExportsDir: getEnv("EXPORTS_DIR", "exports"),
		TempDir:    getEnv("TEMP_DIR", "temp"),
	}
}

// GetDatabaseConfig returns database configuration from environment variables
func GetDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", ""),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// Valid reports whether all required connection fields are set
func (c *DatabaseConfig) Valid() bool {
	return c.Host != "" && c.Port != "" && c.User != "" && c.Password != "" && c.Name != ""
}

// GetAuthConfig returns JWT configuration from environment variables
func GetAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:       getEnv("JWT_SECRET", "default-secret-key-change-in-production"),
		AccessTokenTTL:  getEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: getEnvAsDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
	}
}

// GetRabbitMQConfig returns RabbitMQ configuration from environment variables
func GetRabbitMQConfig() *RabbitMQConfig {
	return &RabbitMQConfig{
		Host:  getEnv("RABBITMQ_HOST", "localhost"),
		Port:  getEnv("RABBITMQ_PORT", "5672"),
		User:  getEnv("RABBITMQ_USER", "guest"),
		Pass:  getEnv("RABBITMQ_PASS", "guest"),
		Queue: getEnv("RABBITMQ_AUTOMATION_QUEUE", "automation_runs"),
	}
}

// GetRedisConfig returns Redis configuration; an empty URL disables Redis
func GetRedisConfig() *RedisConfig {
	return &RedisConfig{
		URL:     getEnv("REDIS_URL", ""),
		LockTTL: getEnvAsDuration("AUTOMATION_LOCK_TTL", 10*time.Minute),
	}
}

// GetSchedulerConfig returns background worker intervals
func GetSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		AutomationInterval: getEnvAsDuration("SCHEDULER_INTERVAL", time.Minute),
		DispatchInterval:   getEnvAsDuration("DISPATCH_INTERVAL", 30*time.Second),
		TokenCleanup:       getEnvAsDuration("TOKEN_CLEANUP_INTERVAL", 24*time.Hour),
		ActivityCleanup:    getEnvAsDuration("ACTIVITY_CLEANUP_INTERVAL", 6*time.Hour),
		ActivityRetention:  getEnvAsInt("ACTIVITY_RETENTION_DAYS", 30),
	}
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if raw := getEnv(key, ""); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			return parsed
		}
	}
	return defaultValue
}
