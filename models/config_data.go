// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PropertySource is one named, flat key/value mapping contributing to the
// overall configuration (typically one file in the backing repository).
type PropertySource struct {
	// Name identifies the source, e.g. "classpath:/config/app-test.yml".
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Source holds the flat properties of this source in document order.
	Source *Properties `json:"source" yaml:"source"`
}

// ConfigData is the decoded response of the config service for one
// application/profiles/label request.
//
// Name, profiles, label and version are always written back to JSON, so
// encoding a decoded response keeps every field the service sent. A null
// label or version is written as "".
type ConfigData struct {
	// Name is the application name.
	Name string `json:"name" yaml:"name,omitempty"`

	// Profiles lists the profiles included in the response.
	Profiles []string `json:"profiles" yaml:"profiles,omitempty"`

	// Label is the environment label (branch, tag) the properties come from.
	Label string `json:"label" yaml:"label,omitempty"`

	// Version is the commit hash of the properties.
	Version string `json:"version" yaml:"version,omitempty"`

	// State is an opaque backend state marker.
	State string `json:"state,omitempty" yaml:"state,omitempty"`

	// PropertySources is ordered most specific first. Index 0 wins over every
	// later source.
	PropertySources []PropertySource `json:"propertySources" yaml:"propertySources"`
}

type configDataJSON struct {
	Name            string          `json:"name"`
	Profiles        []string        `json:"profiles"`
	Label           string          `json:"label"`
	Version         string          `json:"version"`
	State           string          `json:"state"`
	PropertySources json.RawMessage `json:"propertySources"`
}

// DecodeConfigData decodes a config service response body.
//
// Returns an error wrapping [ErrMalformedResponse] if body is not a JSON
// object, if propertySources is absent or not an array, or if any source
// holds a non-scalar value.
func DecodeConfigData(body []byte) (*ConfigData, error) {
	var raw configDataJSON
	if err := jsonAPI.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	sources := bytes.TrimSpace(raw.PropertySources)
	if len(sources) == 0 || bytes.Equal(sources, []byte("null")) {
		return nil, fmt.Errorf("%w: propertySources is missing", ErrMalformedResponse)
	}
	if sources[0] != '[' {
		return nil, fmt.Errorf("%w: propertySources is not an array", ErrMalformedResponse)
	}

	data := &ConfigData{
		Name:     raw.Name,
		Profiles: raw.Profiles,
		Label:    raw.Label,
		Version:  raw.Version,
		State:    raw.State,
	}
	if err := jsonAPI.Unmarshal(sources, &data.PropertySources); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler with the same validation as
// [DecodeConfigData].
func (d *ConfigData) UnmarshalJSON(b []byte) error {
	data, err := DecodeConfigData(b)
	if err != nil {
		return err
	}
	*d = *data
	return nil
}
