package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cloud-config/models"
)

// target is a resolved request location.
type target struct {
	url  string
	user *url.Userinfo
}

// resolveTarget builds the request URL
//
//	<endpoint>/<name>/<profiles joined by ",">[/<label>]
//
// with every path element escaped as a single URI component. User info found
// in the endpoint is split off and returned separately.
func resolveTarget(req models.LoadRequest) (target, error) {
	if strings.TrimSpace(req.Name) == "" {
		return target{}, ErrMissingName
	}

	endpoint := strings.TrimSpace(req.Endpoint)
	if endpoint == "" {
		endpoint = models.DefaultEndpoint
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return target{}, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return target{}, fmt.Errorf("%w: address must include host and scheme", ErrInvalidEndpoint)
	}

	user := u.User
	base := url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path, RawPath: u.RawPath}

	var b strings.Builder
	b.WriteString(strings.TrimRight(base.String(), "/"))
	b.WriteByte('/')
	b.WriteString(escapeComponent(req.Name))
	b.WriteByte('/')
	b.WriteString(escapeComponent(profilesPath(req.Profiles)))
	if req.Label != "" {
		b.WriteByte('/')
		b.WriteString(escapeComponent(req.Label))
	}

	return target{url: b.String(), user: user}, nil
}

func profilesPath(profiles []string) string {
	kept := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return models.DefaultProfile
	}
	return strings.Join(kept, ",")
}

// escapeComponent escapes s as one URI component: "/" and "," are escaped
// too, and spaces become %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
