// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	JWT       JWTConfig
	Assistant AssistantConfig
	Session   SessionConfig
	Documents DocumentsConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// AssistantConfig holds remote prediction endpoint settings
type AssistantConfig struct {
	URL    string
	APIKey string
}

// SessionConfig holds durable session storage settings
type SessionConfig struct {
	FilePath   string
	LoginDelay time.Duration
}

// DocumentsConfig holds document dashboard settings
type DocumentsConfig struct {
	PollInterval    time.Duration
	ProcessingDelay time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Remote prediction endpoint configuration
	assistantURL := os.Getenv("ASSISTANT_URL")
	if assistantURL == "" {
		return nil, fmt.Errorf("ASSISTANT_URL is required")
	}
	cfg.Assistant.URL = assistantURL

	cfg.Assistant.APIKey = os.Getenv("ASSISTANT_API_KEY") // optional

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	// Access token expiry (default: 1 hour)
	accessExpiryStr := os.Getenv("JWT_ACCESS_TOKEN_EXPIRY")
	if accessExpiryStr == "" {
		accessExpiryStr = "1h"
	}
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY: %w", err)
	}
	cfg.JWT.AccessTokenExpiry = accessExpiry

	// Session storage configuration
	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = "session.json" // default
	}
	cfg.Session.FilePath = sessionFile

	// Simulated auth latency (default: 800ms, mimics a real auth call)
	loginDelayStr := os.Getenv("LOGIN_DELAY")
	if loginDelayStr == "" {
		loginDelayStr = "800ms"
	}
	loginDelay, err := time.ParseDuration(loginDelayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_DELAY: %w", err)
	}
	cfg.Session.LoginDelay = loginDelay

	// Document status poll interval (default: 2s)
	pollIntervalStr := os.Getenv("DOCUMENT_POLL_INTERVAL")
	if pollIntervalStr == "" {
		pollIntervalStr = "2s"
	}
	pollInterval, err := time.ParseDuration(pollIntervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DOCUMENT_POLL_INTERVAL: %w", err)
	}
	cfg.Documents.PollInterval = pollInterval

	// Simulated document processing delay (default: 5s)
	processingDelayStr := os.Getenv("DOCUMENT_PROCESSING_DELAY")
	if processingDelayStr == "" {
		processingDelayStr = "5s"
	}
	processingDelay, err := time.ParseDuration(processingDelayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DOCUMENT_PROCESSING_DELAY: %w", err)
	}
	cfg.Documents.ProcessingDelay = processingDelay

	return cfg, nil
}
