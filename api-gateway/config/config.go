package config

import (
	"os"
	"time"
)

// UpstreamConfig holds configuration for the backend API
type UpstreamConfig struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Upstream UpstreamConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Upstream: UpstreamConfig{
			Name:        "starwars-api",
			BaseURL:     getEnv("API_SERVICE_URL", "http://localhost:8080"),
			Timeout:     30 * time.Second,
			HealthCheck: "/health",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
