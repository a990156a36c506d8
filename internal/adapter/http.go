package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-cloud-config/internal/logger"
	"github.com/MKhiriev/go-cloud-config/internal/utils"
	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type httpConfigAdapter struct {
	httpClient *http.Client
	requestID  func() string

	logger *logger.Logger
}

// Option customizes the HTTP adapter.
type Option func(*httpConfigAdapter)

// WithHTTPClient makes the adapter send requests through c instead of a
// default client. Per-request TLS and timeout settings are applied on a copy.
func WithHTTPClient(c *http.Client) Option {
	return func(h *httpConfigAdapter) {
		if c != nil {
			h.httpClient = c
		}
	}
}

// NewHTTPConfigAdapter constructs an HTTP/REST implementation of
// [ConfigAdapter]. Every Fetch builds its own resty client so that concurrent
// loads with different endpoints, credentials or TLS settings share no state.
func NewHTTPConfigAdapter(log *logger.Logger, opts ...Option) ConfigAdapter {
	h := &httpConfigAdapter{
		requestID: utils.NewRequestID,
		logger:    log,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logger.Nop()
	}
	return h
}

// Fetch implements [ConfigAdapter]. It GETs
// <endpoint>/<name>/<profiles>[/<label>] and decodes the response body.
//
// Authentication, in priority order: OAuth2 client credentials, a static
// bearer token, explicit basic auth, basic auth embedded in the endpoint URL.
func (h *httpConfigAdapter) Fetch(ctx context.Context, req models.LoadRequest) (*models.ConfigData, error) {
	dst, err := resolveTarget(req)
	if err != nil {
		return nil, err
	}

	client := h.newClient(req)
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.requestID()
	}
	log := h.logger.With().
		Str("request_id", requestID).
		Str("url", dst.url).
		Logger()

	r := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Request-Id", requestID).
		SetHeaders(req.Headers)

	switch {
	case req.ClientCredentials != nil:
		token, err := exchangeToken(ctx, client.GetClient(), req.ClientCredentials)
		if err != nil {
			return nil, err
		}
		r.SetAuthToken(token)
	case req.Token != "":
		if exp, ok := utils.TokenExpiry(req.Token); ok && exp.Before(time.Now()) {
			log.Warn().Time("expired_at", exp).Msg("bearer token is expired")
		}
		r.SetAuthToken(req.Token)
	case req.Auth != nil && req.Auth.User != "" && req.Auth.Password != "":
		r.SetBasicAuth(req.Auth.User, req.Auth.Password)
	case dst.user != nil:
		pass, _ := dst.user.Password()
		r.SetBasicAuth(dst.user.Username(), pass)
	}

	log.Debug().Msg("fetching configuration")
	resp, err := r.Get(dst.url)
	if err != nil {
		return nil, fmt.Errorf("fetch config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Debug().Int("status", resp.StatusCode()).Err(err).Msg("config service rejected request")
		return nil, err
	}

	data, err := models.DecodeConfigData(resp.Body())
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("version", data.Version).
		Int("sources", len(data.PropertySources)).
		Dur("took", resp.Time()).
		Msg("configuration fetched")
	return data, nil
}

func (h *httpConfigAdapter) newClient(req models.LoadRequest) *resty.Client {
	var client *resty.Client
	if h.httpClient != nil {
		hc := *h.httpClient
		if t, ok := hc.Transport.(*http.Transport); ok {
			hc.Transport = t.Clone()
		}
		client = resty.NewWithClient(&hc)
	} else {
		client = resty.New()
	}

	client.SetLogger(h.logger)

	if req.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in for self-signed servers
	}
	if req.Timeout > 0 {
		client.SetTimeout(req.Timeout)
	}
	return client
}

func exchangeToken(ctx context.Context, hc *http.Client, creds *models.ClientCredentials) (string, error) {
	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.TokenURL,
		Scopes:       creds.Scopes,
	}

	token, err := cfg.Token(context.WithValue(ctx, oauth2.HTTPClient, hc))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	return token.AccessToken, nil
}
