package configserver

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cloud-config/internal/logger"
	"github.com/MKhiriev/go-cloud-config/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (s *Server) config(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	name := pathParam(r, "name")
	req := Request{
		Method:   r.Method,
		Path:     r.URL.EscapedPath(),
		Name:     name,
		Profiles: strings.Split(pathParam(r, "profiles"), ","),
		Label:    pathParam(r, "label"),
		Header:   r.Header.Clone(),
	}
	s.record(req)

	resp, ok := s.lookup(name)
	if !ok {
		log.Warn().Str("name", name).Msg(ErrApplicationAbsent.Error())
		http.Error(w, ErrApplicationAbsent.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	if _, err := w.Write(resp.body); err != nil {
		log.Err(err).Msg("write config response")
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		s.oauthError(w, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if r.PostForm.Get("grant_type") != "client_credentials" {
		log.Warn().Str("grant_type", r.PostForm.Get("grant_type")).Msg(ErrUnsupportedGrant.Error())
		s.oauthError(w, http.StatusBadRequest, "unsupported_grant_type", ErrUnsupportedGrant)
		return
	}

	id, secret, ok := r.BasicAuth()
	if !ok {
		id, secret = r.PostForm.Get("client_id"), r.PostForm.Get("client_secret")
	}
	if !equal(id, s.grant.clientID) || !equal(secret, s.grant.clientSecret) {
		log.Warn().Str("client_id", id).Msg(ErrUnknownClient.Error())
		s.oauthError(w, http.StatusUnauthorized, "invalid_client", ErrUnknownClient)
		return
	}

	if _, err := utils.WriteJSON(w, tokenResponse{
		AccessToken: s.grant.accessToken,
		TokenType:   "bearer",
		ExpiresIn:   3600,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("write token response")
	}
}

func (s *Server) oauthError(w http.ResponseWriter, status int, code string, err error) {
	if wErr := utils.WriteOAuthError(w, status, code, err.Error()); wErr != nil {
		s.logger.Err(wErr).Msg("write token error")
	}
}

// pathParam returns the unescaped value of a route parameter. chi matches on
// the raw path, so escaped separators such as %2C are still encoded here.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
