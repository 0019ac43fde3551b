// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// Hosted backend credentials. When either is empty every data operation
	// runs in demo mode: reads serve seed data, writes are skipped.
	BackendURL     string `env:"PDS_BACKEND_URL"`
	BackendAnonKey string `env:"PDS_BACKEND_ANON_KEY"`

	SessionSecret string `env:"PDS_SESSION_SECRET,required"`
	ServerHost    string `env:"PDS_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"PDS_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"PDS_ENV" envDefault:"development"`
	LogLevel      string `env:"PDS_LOG_LEVEL" envDefault:"info"`

	// Event log (local SQLite, also backs the session store)
	EventLogDBPath     string `env:"PDS_EVENTLOG_DB_PATH" envDefault:"./data/peculiar.db"`
	EventRetentionDays int    `env:"PDS_EVENT_RETENTION_DAYS" envDefault:"90"`

	// Upload configuration
	MaxUploadSize int64 `env:"PDS_MAX_UPLOAD_SIZE" envDefault:"20971520"` // 20MB

	// Demo-mode admin credentials (bcrypt hash). Only consulted when the
	// backend is not configured, since the hosted backend owns real auth.
	DemoAdminEmail        string `env:"PDS_DEMO_ADMIN_EMAIL" envDefault:"admin@example.com"`
	DemoAdminPasswordHash string `env:"PDS_DEMO_ADMIN_PASSWORD_HASH"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// BackendConfigured returns true if the hosted backend credentials are present.
// This is the single input to the facade's configuration gate.
func (c Config) BackendConfigured() bool {
	return c.BackendURL != "" && c.BackendAnonKey != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("PDS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("PDS_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("PDS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
