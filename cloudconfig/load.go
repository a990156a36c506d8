package cloudconfig

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cloud-config/internal/adapter"
	"github.com/MKhiriev/go-cloud-config/internal/logger"
	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/rs/zerolog"
)

// LoadOption customizes [Load].
type LoadOption func(*loadOptions)

type loadOptions struct {
	log        *logger.Logger
	httpClient *http.Client
}

// WithLogger makes Load log through l. By default nothing is logged.
func WithLogger(l zerolog.Logger) LoadOption {
	return func(o *loadOptions) {
		o.log = logger.Wrap(l)
	}
}

// WithHTTPClient sends the request through c. Its transport is cloned before
// request specific TLS settings are applied.
func WithHTTPClient(c *http.Client) LoadOption {
	return func(o *loadOptions) {
		o.httpClient = c
	}
}

// Load fetches the configuration described by req from the config service
// and wraps it in a [Config], applying req.Context as substitution context.
//
// One request is made; failures (transport errors, non-2xx statuses,
// malformed bodies) are returned as is and never retried.
func Load(ctx context.Context, req models.LoadRequest, opts ...LoadOption) (*Config, error) {
	o := loadOptions{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return load(ctx, adapter.NewHTTPConfigAdapter(o.log, adapter.WithHTTPClient(o.httpClient)), req, o.log)
}

func load(ctx context.Context, a adapter.ConfigAdapter, req models.LoadRequest, log *logger.Logger) (*Config, error) {
	data, err := a.Fetch(ctx, req)
	if err != nil {
		log.Error().Err(err).
			Str("name", req.Name).
			Strs("profiles", req.Profiles).
			Str("label", req.Label).
			Msg("load configuration")
		return nil, fmt.Errorf("load configuration %q: %w", req.Name, err)
	}

	cfg, err := New(data, req.Context)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("name", cfg.Name()).
		Strs("profiles", cfg.Profiles()).
		Str("version", cfg.Version()).
		Int("properties", cfg.properties.Len()).
		Msg("configuration loaded")
	return cfg, nil
}
