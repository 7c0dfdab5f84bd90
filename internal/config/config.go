package config

import (
	"fmt"
	"os"
)

type Config struct {
	GinMode string
	GinPort string

	JWTSecretKey string
	AdminEmail   string
	FrontendURL  string

	StoreDriver string // "json" or "mysql"
	DataFile    string
	MySQLDSN    string

	UploadDriver string // "local" or "cloudinary"
	UploadDir    string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	PayPalClientID string
	PayPalSecret   string
	PayPalAPIBase  string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() (*Config, error) {

	getEnv := func(key string, required bool) (string, error) {
		value := os.Getenv(key)
		if value == "" && required {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg := &Config{}
	var err error

	cfg.GinMode = os.Getenv("GIN_MODE")
	if cfg.GinMode == "" {
		cfg.GinMode = "debug"
	}
	cfg.GinPort = os.Getenv("GIN_PORT")
	if cfg.GinPort == "" {
		cfg.GinPort = "5000"
	}

	if cfg.JWTSecretKey, err = getEnv("JWT_SECRET_KEY", true); err != nil {
		return nil, err
	}
	if cfg.AdminEmail, err = getEnv("ADMIN_EMAIL", true); err != nil {
		return nil, err
	}
	cfg.FrontendURL = os.Getenv("FRONTEND_URL")

	cfg.StoreDriver = os.Getenv("STORE_DRIVER")
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = "json"
	}
	cfg.DataFile = os.Getenv("DATA_FILE")
	if cfg.DataFile == "" {
		cfg.DataFile = "payments.json"
	}
	if cfg.StoreDriver == "mysql" {
		if cfg.MySQLDSN, err = getEnv("MYSQL_DSN", true); err != nil {
			return nil, err
		}
	}

	cfg.UploadDriver = os.Getenv("UPLOAD_DRIVER")
	if cfg.UploadDriver == "" {
		cfg.UploadDriver = "local"
	}
	cfg.UploadDir = os.Getenv("UPLOAD_DIR")
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.UploadDriver == "cloudinary" {
		if cfg.CloudinaryCloudName, err = getEnv("CLOUDINARY_CLOUD_NAME", true); err != nil {
			return nil, err
		}
		if cfg.CloudinaryAPIKey, err = getEnv("CLOUDINARY_API_KEY", true); err != nil {
			return nil, err
		}
		if cfg.CloudinaryAPISecret, err = getEnv("CLOUDINARY_API_SECRET", true); err != nil {
			return nil, err
		}
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort = os.Getenv("SMTP_PORT")
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	cfg.PayPalClientID = os.Getenv("PAYPAL_CLIENT_ID")
	cfg.PayPalSecret = os.Getenv("PAYPAL_SECRET")
	cfg.PayPalAPIBase = os.Getenv("PAYPAL_API_BASE")
	if cfg.PayPalAPIBase == "" {
		cfg.PayPalAPIBase = "https://api-m.paypal.com"
	}

	return cfg, nil
}
