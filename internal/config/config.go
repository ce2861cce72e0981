// Copyright (c) 2026 BrandBiography <hello@brandbiography.io>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Storage paths
	DataDir    string // directory holding the per-collection JSON files
	UploadsDir string // directory holding uploaded images

	// Admin authentication
	AdminPassword     string // plaintext secret, compared constant-time
	AdminPasswordHash string // optional bcrypt hash; takes precedence when set

	// Valkey (Redis-compatible page cache); caching is disabled when Host is empty
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// CORS allowed origin; "*" allows any origin
	CORSOrigin string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "3000"),
		Env:  envOrDefault("APP_ENV", "development"),

		DataDir:    envOrDefault("DATA_DIR", "data"),
		UploadsDir: envOrDefault("UPLOADS_DIR", "assets/uploads"),

		AdminPassword:     envOrDefault("ADMIN_PASSWORD", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		CORSOrigin: envOrDefault("CORS_ORIGIN", "*"),
	}

	if cfg.Env == "production" {
		if cfg.AdminPassword == "admin" && cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey listen address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled returns true if a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
