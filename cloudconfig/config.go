// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cloudconfig

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cloud-config/keypath"
	"github.com/MKhiriev/go-cloud-config/merge"
	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/MKhiriev/go-cloud-config/substitution"
	"github.com/MKhiriev/go-cloud-config/tree"
	"github.com/go-viper/mapstructure/v2"
	"github.com/mohae/deepcopy"
)

// Config is an immutable view over one config service response.
//
// Effective properties are resolved once in [New]; every accessor reads that
// snapshot or the raw response and builds fresh output, so a Config is safe
// for concurrent use.
type Config struct {
	raw        *models.ConfigData
	properties *models.Properties
}

// New wraps data. The effective properties are the flat union of all property
// sources where the lowest-index source wins per key. If ctx is non-nil,
// ${name} and ${name:default} placeholders in string values are resolved
// against it once, here.
//
// data is deep-copied, so the caller may keep modifying its own copy.
func New(data *models.ConfigData, ctx map[string]string) (*Config, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: no config data", models.ErrMalformedResponse)
	}

	raw := deepcopy.Copy(data).(*models.ConfigData)
	properties := merge.Flatten(raw.PropertySources)
	return &Config{
		raw:        raw,
		properties: substitution.Apply(properties, ctx),
	}, nil
}

// Name returns the application name of the response.
func (c *Config) Name() string { return c.raw.Name }

// Profiles returns a copy of the profiles of the response.
func (c *Config) Profiles() []string { return append([]string(nil), c.raw.Profiles...) }

// Label returns the environment label of the response.
func (c *Config) Label() string { return c.raw.Label }

// Version returns the commit hash of the response.
func (c *Config) Version() string { return c.raw.Version }

// Get joins the non-empty parts with "." and looks the key up in the
// effective properties. The lookup is exact: a key that only exists as a
// prefix of deeper keys (e.g. "key04" for "key04.key01") is not found.
func (c *Config) Get(parts ...string) (models.Value, bool) {
	return c.properties.Get(keypath.Join(parts...))
}

// Properties returns a copy of the effective properties.
func (c *Config) Properties() *models.Properties {
	return c.properties.Clone()
}

// Raw returns a deep copy of the response the Config was built from.
// Substitution is not applied to it.
func (c *Config) Raw() *models.ConfigData {
	return deepcopy.Copy(c.raw).(*models.ConfigData)
}

// ForEach calls fn for every effective property, each key once, in the order
// keys were first seen across sources. With includeOverridden, fn is instead
// called for every key of every source, most specific source first, so a key
// defined by several sources is delivered once per source; those values are
// the raw ones, without substitution.
func (c *Config) ForEach(fn func(key string, value models.Value), includeOverridden bool) {
	visit := func(k string, v models.Value) bool {
		fn(k, v)
		return true
	}

	if !includeOverridden {
		c.properties.Range(visit)
		return
	}
	for _, src := range c.raw.PropertySources {
		src.Source.Range(visit)
	}
}

// ObjectOption configures [Config.ToObject].
type ObjectOption func(*objectOptions)

type objectOptions struct {
	policy merge.Policy
}

// WithMerge selects how arrays defined by several sources are combined. With
// true, cells from all sources are merged index by index. With false, the
// default, the array of the most specific source replaces the others whole.
func WithMerge(enabled bool) ObjectOption {
	return func(o *objectOptions) {
		if enabled {
			o.policy = merge.Merge
		} else {
			o.policy = merge.Replace
		}
	}
}

// ToObject rebuilds the nested structure encoded in the flat keys, using the
// effective (substituted) values. The tree is built anew on every call.
func (c *Config) ToObject(opts ...ObjectOption) (*tree.Node, error) {
	o := objectOptions{policy: merge.Replace}
	for _, opt := range opts {
		opt(&o)
	}

	keys, err := merge.CollectKeys(c.raw.PropertySources, o.policy)
	if err != nil {
		return nil, fmt.Errorf("collect keys: %w", err)
	}

	root, err := tree.Build(keys, c.properties.Get)
	if err != nil {
		return nil, fmt.Errorf("build object: %w", err)
	}
	return root, nil
}

// Decode materializes the configuration with [Config.ToObject] and binds it
// onto target, which must be a pointer to a struct or map. Fields are matched
// by their `config` tag or, without one, case-insensitively by name. Strings
// are converted to durations, slices (comma separated) and numbers as needed.
func (c *Config) Decode(target any, opts ...ObjectOption) error {
	root, err := c.ToObject(opts...)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		Result:           target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}

	if err = decoder.Decode(root.Interface()); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ToString serializes the raw response as JSON, indented by spaces spaces per
// level; spaces <= 0 gives compact output. Neither substitution nor merging
// affects the result.
func (c *Config) ToString(spaces int) (string, error) {
	var (
		b   []byte
		err error
	)
	if spaces > 0 {
		b, err = json.MarshalIndent(c.raw, "", strings.Repeat(" ", spaces))
	} else {
		b, err = json.Marshal(c.raw)
	}
	if err != nil {
		return "", fmt.Errorf("marshal config data: %w", err)
	}
	return string(b), nil
}

// String implements fmt.Stringer with compact [Config.ToString] output.
func (c *Config) String() string {
	s, err := c.ToString(0)
	if err != nil {
		return fmt.Sprintf("cloudconfig.Config(%s)", err)
	}
	return s
}
