// Package config loads service configuration from the environment. A .env
// file in the working directory is honoured when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	ShopifyStoreURL string
	ShopifyAPIToken string

	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIMaxTokens int
}

// Load reads configuration from the environment. Credentials have no
// defaults: a missing required variable is a startup error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		ShopifyStoreURL: os.Getenv("SHOPIFY_STORE_URL"),
		ShopifyAPIToken: os.Getenv("SHOPIFY_API_TOKEN"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIMaxTokens: getEnvInt("OPENAI_MAX_TOKENS", 150),
	}

	for name, value := range map[string]string{
		"SHOPIFY_STORE_URL": cfg.ShopifyStoreURL,
		"SHOPIFY_API_TOKEN": cfg.ShopifyAPIToken,
		"OPENAI_API_KEY":    cfg.OpenAIAPIKey,
	} {
		if value == "" {
			return nil, fmt.Errorf("config: required environment variable %s is not set", name)
		}
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
