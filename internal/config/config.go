package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds JWT signing settings.
type AuthConfig struct {
	JWTSecret        string
	TokenExpiryHours int
}

// InferenceConfig holds the external AI model endpoints.
// The model backends are separate deployments; this API only calls them over HTTP.
type InferenceConfig struct {
	TBEndpoint         string
	LungCancerEndpoint string
	TimeoutSec         int
}

// RAGConfig holds the external RAG chat endpoint settings.
type RAGConfig struct {
	EndpointURL    string
	SyncTimeoutSec int
	JobTimeoutSec  int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Auth      AuthConfig
	Inference InferenceConfig
	RAG       RAGConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			TokenExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
		Inference: InferenceConfig{
			TBEndpoint:         getEnv("TB_MODEL_ENDPOINT", ""),
			LungCancerEndpoint: getEnv("LUNG_CANCER_MODEL_ENDPOINT", ""),
			TimeoutSec:         getEnvInt("MODEL_TIMEOUT_SEC", 60),
		},
		RAG: RAGConfig{
			EndpointURL:    getEnv("RAG_ENDPOINT_URL", ""),
			SyncTimeoutSec: getEnvInt("RAG_SYNC_TIMEOUT_SEC", 50),
			JobTimeoutSec:  getEnvInt("RAG_JOB_TIMEOUT_SEC", 600),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
