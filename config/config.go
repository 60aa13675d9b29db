package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Storage StorageConfig
	Backup  BackupConfig
	App     AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// ContentConfig selects the content backend: "local" keeps everything in a
// single JSON document on disk, "postgres" uses the relational store.
type ContentConfig struct {
	Backend  string
	DataFile string
	DB       DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig selects the credential backend: "local" is the file-backed admin
// account with redis sessions, "firebase" delegates to the identity provider.
type AuthConfig struct {
	Backend         string
	CredentialsFile string
	FirebaseCreds   string
}

type StorageConfig struct {
	Bucket    string
	Region    string
	PublicURL string
	LocalDir  string
}

type BackupConfig struct {
	Dir string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "*"),
		},
		Content: ContentConfig{
			Backend:  getEnv("CONTENT_BACKEND", "local"),
			DataFile: getEnv("DATA_FILE", "data/portfolio_data.json"),
			DB: DatabaseConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnvAsInt("DB_PORT", 5432),
				User:     getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", ""),
				Name:     getEnv("DB_NAME", "portfolio"),
			},
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			Backend:         getEnv("AUTH_BACKEND", "local"),
			CredentialsFile: getEnv("AUTH_CREDENTIALS_FILE", "data/portfolio_auth.json"),
			FirebaseCreds:   getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Storage: StorageConfig{
			Bucket:    getEnv("S3_BUCKET", ""),
			Region:    getEnv("S3_REGION", "eu-central-1"),
			PublicURL: getEnv("S3_PUBLIC_URL", ""),
			LocalDir:  getEnv("UPLOADS_DIR", "data/uploads"),
		},
		Backup: BackupConfig{
			Dir: getEnv("BACKUP_DIR", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Content.Backend {
	case "local", "postgres":
	default:
		return fmt.Errorf("CONTENT_BACKEND must be local or postgres, got %q", c.Content.Backend)
	}

	switch c.Auth.Backend {
	case "local":
	case "firebase":
		if c.Auth.FirebaseCreds == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required for firebase auth")
		}
	default:
		return fmt.Errorf("AUTH_BACKEND must be local or firebase, got %q", c.Auth.Backend)
	}

	if c.Content.Backend == "postgres" && c.Content.DB.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	return nil
}

func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitEnv(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
