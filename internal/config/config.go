package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// BaseURL is used to build absolute links in outgoing emails.
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`

	Database struct {
		Dialect string `yaml:"dialect"` // postgres, mysql
		DSN     string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base for images
		Bucket    string `yaml:"bucket"`     // for S3-compatible storage
		Endpoint  string `yaml:"endpoint"`   // for S3-compatible storage
		AccessKey string `yaml:"access_key"` // for S3-compatible storage
		SecretKey string `yaml:"secret_key"` // for S3-compatible storage
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // bytes
		AllowedTypes []string `yaml:"allowed_types"` // MIME types
	} `yaml:"upload"`
}

// Load reads configuration from config.yaml, letting environment
// variables (optionally via .env) override the sensitive values.
func Load() (*Config, error) {
	// Missing .env is fine; values may come from the real environment.
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		log.Printf("config file %s not found, using environment only", configPath)
	} else {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DB_DIALECT"); v != "" {
		cfg.Database.Dialect = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("EMAIL_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		cfg.Email.SMTPPort, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.SMTPUsername = v
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		cfg.Email.SMTPPassword = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:3000"
	}
	if cfg.Database.Dialect == "" {
		cfg.Database.Dialect = "postgres"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 30
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./public/uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}
}
