// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level settings container of the CLI. It is
// populated by merging flags, environment variables and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : environment variable name for scalar fields, relative to
//     the global CLOUD_CONFIG_ prefix.
type StructuredConfig struct {
	// Endpoint is the base URL of the config service, optionally with a
	// context path and embedded basic credentials.
	// Env: CLOUD_CONFIG_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Name is the application whose configuration is fetched.
	// Env: CLOUD_CONFIG_NAME
	Name string `env:"NAME"`

	// Profiles are the active profiles, comma separated in the environment.
	// Env: CLOUD_CONFIG_PROFILES
	Profiles []string `env:"PROFILES" envSeparator:","`

	// Label is the optional environment label (branch, tag).
	// Env: CLOUD_CONFIG_LABEL
	Label string `env:"LABEL"`

	// Auth holds the credentials used against the config service.
	Auth Auth `envPrefix:"AUTH_"`

	// Request holds transport settings of the fetch.
	Request Request `envPrefix:"REQUEST_"`

	// Substitution controls ${name} placeholder resolution.
	Substitution Substitution `envPrefix:"SUBSTITUTION_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`
}

// Auth holds credentials. At most one of Token and the client-credentials
// group may be set; basic credentials are used only when neither is.
type Auth struct {
	// Env: CLOUD_CONFIG_AUTH_USER
	User string `env:"USER"`
	// Env: CLOUD_CONFIG_AUTH_PASSWORD
	Password string `env:"PASSWORD"`

	// Token is a static bearer token.
	// Env: CLOUD_CONFIG_AUTH_TOKEN
	Token string `env:"TOKEN"`

	// TokenURL, ClientID, ClientSecret and Scopes configure the OAuth2
	// client-credentials flow.
	// Env: CLOUD_CONFIG_AUTH_TOKEN_URL, CLOUD_CONFIG_AUTH_CLIENT_ID,
	// CLOUD_CONFIG_AUTH_CLIENT_SECRET, CLOUD_CONFIG_AUTH_SCOPES
	TokenURL     string   `env:"TOKEN_URL"`
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES" envSeparator:","`
}

// Request holds transport settings.
type Request struct {
	// Timeout bounds the whole fetch (e.g. "10s").
	// Env: CLOUD_CONFIG_REQUEST_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// InsecureSkipVerify accepts self-signed certificates.
	// Env: CLOUD_CONFIG_REQUEST_INSECURE
	InsecureSkipVerify bool `env:"INSECURE"`

	// Headers are sent with the request, "K1:V1,K2:V2" in the environment.
	// Env: CLOUD_CONFIG_REQUEST_HEADERS
	Headers map[string]string `env:"HEADERS"`
}

// Substitution configures the substitution context.
type Substitution struct {
	// Context maps placeholder names to values, "K1:V1,K2:V2" in the
	// environment.
	// Env: CLOUD_CONFIG_SUBSTITUTION_CONTEXT
	Context map[string]string `env:"CONTEXT"`

	// FromEnv adds every process environment variable to the context.
	// Entries of Context take priority.
	// Env: CLOUD_CONFIG_SUBSTITUTION_FROM_ENV
	FromEnv bool `env:"FROM_ENV"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: CLOUD_CONFIG_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the CLI settings. fs must
// have been set up with [RegisterFlags] and already parsed.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withDefaults().
		build()
}

// LoadRequest converts the settings into a fetch request. It fails with
// [ErrMissingName] if no application name is configured.
func (cfg *StructuredConfig) LoadRequest() (models.LoadRequest, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return models.LoadRequest{}, ErrMissingName
	}

	req := models.LoadRequest{
		Endpoint:           cfg.Endpoint,
		Name:               cfg.Name,
		Profiles:           cfg.Profiles,
		Label:              cfg.Label,
		Token:              cfg.Auth.Token,
		Headers:            cfg.Request.Headers,
		InsecureSkipVerify: cfg.Request.InsecureSkipVerify,
		Timeout:            cfg.Request.Timeout,
		Context:            cfg.substitutionContext(),
	}
	if cfg.Auth.User != "" || cfg.Auth.Password != "" {
		req.Auth = &models.BasicAuth{User: cfg.Auth.User, Password: cfg.Auth.Password}
	}
	if cfg.Auth.ClientID != "" {
		req.ClientCredentials = &models.ClientCredentials{
			TokenURL:     cfg.Auth.TokenURL,
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
			Scopes:       cfg.Auth.Scopes,
		}
	}
	return req, nil
}

func (cfg *StructuredConfig) substitutionContext() map[string]string {
	if !cfg.Substitution.FromEnv {
		return cfg.Substitution.Context
	}

	ctx := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			ctx[k] = v
		}
	}
	for k, v := range cfg.Substitution.Context {
		ctx[k] = v
	}
	return ctx
}
