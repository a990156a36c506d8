// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-config/internal/logger"
	"github.com/MKhiriev/go-cloud-config/models"
)

// Request is a recorded config request.
type Request struct {
	Method   string
	Path     string
	Name     string
	Profiles []string
	Label    string
	Header   http.Header
}

type response struct {
	status int
	body   []byte
}

type tokenGrant struct {
	path         string
	clientID     string
	clientSecret string
	accessToken  string
}

// Server is a fake config service. The zero value is not usable, use [New].
type Server struct {
	mu       sync.RWMutex
	apps     map[string]response
	fallback *response
	requests []Request

	contextPath string
	basic       *models.BasicAuth
	bearer      string
	grant       *tokenGrant

	logger *logger.Logger
}

// Option configures a [Server].
type Option func(*Server)

// WithContextPath mounts the config routes under path, e.g. "/config".
func WithContextPath(path string) Option {
	return func(s *Server) {
		s.contextPath = "/" + strings.Trim(path, "/")
		if s.contextPath == "/" {
			s.contextPath = ""
		}
	}
}

// WithBasicAuth requires basic credentials on config requests.
func WithBasicAuth(user, password string) Option {
	return func(s *Server) {
		s.basic = &models.BasicAuth{User: user, Password: password}
	}
}

// WithBearerToken requires "Authorization: Bearer token" on config requests.
func WithBearerToken(token string) Option {
	return func(s *Server) {
		s.bearer = token
	}
}

// WithTokenEndpoint serves an OAuth2 client-credentials token endpoint at path
// that hands out accessToken to the given client. Config requests then
// require that token.
func WithTokenEndpoint(path, clientID, clientSecret, accessToken string) Option {
	return func(s *Server) {
		s.grant = &tokenGrant{
			path:         "/" + strings.Trim(path, "/"),
			clientID:     clientID,
			clientSecret: clientSecret,
			accessToken:  accessToken,
		}
		s.bearer = accessToken
	}
}

// WithLogger sets the server logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty server.
func New(opts ...Option) *Server {
	s := &Server{
		apps:   make(map[string]response),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle serves data for the application name, whatever profiles and label
// are requested.
func (s *Server) Handle(name string, data *models.ConfigData) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal config data for %q: %w", name, err)
	}
	s.HandleRaw(name, http.StatusOK, body)
	return nil
}

// HandleRaw serves body with status for the application name. An empty name
// sets the response for applications without a dedicated one.
func (s *Server) HandleRaw(name string, status int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := response{status: status, body: append([]byte(nil), body...)}
	if name == "" {
		s.fallback = &r
		return
	}
	s.apps[name] = r
}

// Requests returns the config requests received so far.
func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent config request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(r Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.mu.Unlock()
}

func (s *Server) lookup(name string) (response, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.apps[name]; ok {
		return r, true
	}
	if s.fallback != nil {
		return *s.fallback, true
	}
	return response{}, false
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("config server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("config server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("config server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("config server: %w", err)
	}
	s.logger.Info().Msg("config server stopped")
	return nil
}
