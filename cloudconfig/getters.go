package cloudconfig

import (
	"time"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/spf13/cast"
)

// castable returns the value in a form cast understands. Numbers are passed
// as their text so that cast parses them with full precision.
func (c *Config) castable(key string) (any, bool) {
	v, ok := c.properties.Get(key)
	if !ok || v.IsNull() {
		return nil, false
	}
	if n, isNum := v.Number(); isNum {
		return n.String(), true
	}
	return v.Interface(), true
}

// GetString returns the property at key rendered as a string, or def if the
// key is absent or null.
func (c *Config) GetString(key, def string) string {
	v, ok := c.properties.Get(key)
	if !ok || v.IsNull() {
		return def
	}
	return v.String()
}

// GetInt returns the property at key as an int, or def if the key is absent,
// null or not convertible.
func (c *Config) GetInt(key string, def int) int {
	raw, ok := c.castable(key)
	if !ok {
		return def
	}
	i, err := cast.ToIntE(raw)
	if err != nil {
		return def
	}
	return i
}

// GetFloat64 returns the property at key as a float64, or def if the key is
// absent, null or not convertible.
func (c *Config) GetFloat64(key string, def float64) float64 {
	raw, ok := c.castable(key)
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return def
	}
	return f
}

// GetBool returns the property at key as a bool, or def if the key is absent,
// null or not convertible. Strings such as "true", "1", "f" are accepted.
func (c *Config) GetBool(key string, def bool) bool {
	raw, ok := c.castable(key)
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return def
	}
	return b
}

// GetDuration returns the property at key as a duration, or def if the key
// is absent, null or not convertible. Strings use time.ParseDuration syntax;
// bare numbers are nanoseconds.
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	raw, ok := c.castable(key)
	if !ok {
		return def
	}
	d, err := cast.ToDurationE(raw)
	if err != nil {
		return def
	}
	return d
}

// Lookup is like [Config.Get] for a single, already joined key.
func (c *Config) Lookup(key string) (models.Value, bool) {
	return c.properties.Get(key)
}
