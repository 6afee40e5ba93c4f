package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	PromptStoreMemory   = "memory"
	PromptStorePostgres = "postgres"
)

type Config struct {
	Port string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	HubSpotAPIKey  string
	HubSpotBaseURL string

	PasswordHash string

	PromptStore string
	DatabaseURL string

	RabbitMQURL string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
	MailTo   string

	AllowedOrigins []string
}

// Load lê os arquivos .env (o último vence) e depois o ambiente.
func Load(files ...string) *Config {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Overload(file); err != nil {
			log.Printf("⚠️ Config: não foi possível carregar %s: %v", file, err)
		}
	}

	mailPort, err := strconv.Atoi(GetEnvWithDefault("MAIL_PORT", "587"))
	if err != nil {
		log.Printf("⚠️ Config: MAIL_PORT inválido, usando 587")
		mailPort = 587
	}

	cfg := &Config{
		Port:           GetEnvWithDefault("PORT", "8080"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		HubSpotAPIKey:  os.Getenv("HUBSPOT_API_KEY"),
		HubSpotBaseURL: os.Getenv("HUBSPOT_BASE_URL"),
		PasswordHash:   strings.ToLower(strings.TrimSpace(os.Getenv("PASSWORD_HASH"))),
		PromptStore:    strings.ToLower(GetEnvWithDefault("PROMPT_STORE", PromptStoreMemory)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		MailHost:       os.Getenv("MAIL_HOST"),
		MailPort:       mailPort,
		MailUser:       os.Getenv("MAIL_USER"),
		MailPass:       os.Getenv("MAIL_PASS"),
		MailFrom:       GetEnvWithDefault("MAIL_FROM", "nao-responda@ligue-outreach.local"),
		MailTo:         os.Getenv("MAIL_TO"),
		AllowedOrigins: splitList(GetEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	// placeholders de exemplo contam como ausentes
	if cfg.HubSpotAPIKey == "your-hubspot-api-key-here" {
		cfg.HubSpotAPIKey = ""
	}

	return cfg
}

func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

func (c *Config) HubSpotConfigured() bool {
	return c.HubSpotAPIKey != ""
}

func (c *Config) MailConfigured() bool {
	return c.MailHost != "" && c.MailTo != ""
}

func (c *Config) UsePostgres() bool {
	return c.PromptStore == PromptStorePostgres && c.DatabaseURL != ""
}

// GetEnvWithDefault returns an environment variable value or a default if not set
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
