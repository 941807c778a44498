package main

import (
	"log"
	"os"
	"strconv"
)

// Config is read from the environment; a .env file in the working
// directory is loaded first by godotenv.
type Config struct {
	Port         string
	DatabasePath string
	ContentFile  string

	// Contact mail relay. Messages are only relayed when SMTPUser and
	// SMTPPass are both set.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string

	AdminUsername string
	AdminPassword string

	// TypedSpeed scales every typed-text delay; 0.5 animates twice as fast.
	TypedSpeed float64
}

func loadConfig() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DatabasePath:  getenv("DATABASE_PATH", "portfolio.db"),
		ContentFile:   getenv("CONTENT_FILE", "content.yaml"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		ToEmail:       os.Getenv("TO_EMAIL"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		TypedSpeed:    1,
	}

	if v := os.Getenv("TYPED_SPEED"); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil || speed <= 0 {
			log.Printf("Ignoring invalid TYPED_SPEED %q", v)
		} else {
			cfg.TypedSpeed = speed
		}
	}
	return cfg
}

func (c Config) smtpConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
