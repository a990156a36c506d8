// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is usable. The
// application name is not required here: [StructuredConfig.LoadRequest]
// checks it, so commands that fetch nothing can share the settings.
func (cfg *StructuredConfig) validate() error {
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.Contains(endpoint, "://") {
			endpoint = "http://" + endpoint
		}
		u, err := url.Parse(endpoint)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidEndpoint, cfg.Endpoint)
		}
	}

	if cfg.Auth.Token != "" && cfg.Auth.ClientID != "" {
		return ErrConflictingAuth
	}
	if cfg.Auth.ClientID != "" && (cfg.Auth.TokenURL == "" || cfg.Auth.ClientSecret == "") {
		return ErrInvalidClientCredentials
	}

	if cfg.Request.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, cfg.Request.Timeout)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
		}
	}

	return nil
}

// LogLevel returns the configured level, falling back to warn.
func (cfg *StructuredConfig) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		return zerolog.WarnLevel
	}
	return level
}
