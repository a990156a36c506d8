package cloudconfig

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gettersConfig(t *testing.T) *Config {
	t.Helper()
	return newTestConfig(t, &models.ConfigData{PropertySources: []models.PropertySource{
		source("only",
			models.Prop("name", "billing"),
			models.Prop("port", 8080),
			models.Prop("port.text", "9090"),
			models.Prop("ratio", 0.75),
			models.Prop("enabled", true),
			models.Prop("enabled.text", "false"),
			models.Prop("timeout", "1m30s"),
			models.Prop("nothing", nil),
		),
	}}, nil)
}

func TestConfig_GetString(t *testing.T) {
	cfg := gettersConfig(t)

	assert.Equal(t, "billing", cfg.GetString("name", "def"))
	assert.Equal(t, "8080", cfg.GetString("port", "def"))
	assert.Equal(t, "true", cfg.GetString("enabled", "def"))
	assert.Equal(t, "def", cfg.GetString("nothing", "def"))
	assert.Equal(t, "def", cfg.GetString("missing", "def"))
}

func TestConfig_GetInt(t *testing.T) {
	cfg := gettersConfig(t)

	tests := []struct {
		key  string
		want int
	}{
		{key: "port", want: 8080},
		{key: "port.text", want: 9090},
		{key: "name", want: -1},
		{key: "nothing", want: -1},
		{key: "missing", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.GetInt(tt.key, -1))
		})
	}
}

func TestConfig_GetFloat64(t *testing.T) {
	cfg := gettersConfig(t)

	assert.InDelta(t, 0.75, cfg.GetFloat64("ratio", 0), 1e-9)
	assert.InDelta(t, 8080, cfg.GetFloat64("port", 0), 1e-9)
	assert.InDelta(t, 1.5, cfg.GetFloat64("name", 1.5), 1e-9)
}

func TestConfig_GetBool(t *testing.T) {
	cfg := gettersConfig(t)

	assert.True(t, cfg.GetBool("enabled", false))
	assert.False(t, cfg.GetBool("enabled.text", true))
	assert.True(t, cfg.GetBool("name", true))
	assert.True(t, cfg.GetBool("missing", true))
}

func TestConfig_GetDuration(t *testing.T) {
	cfg := gettersConfig(t)

	assert.Equal(t, 90*time.Second, cfg.GetDuration("timeout", 0))
	assert.Equal(t, 8080*time.Nanosecond, cfg.GetDuration("port", 0))
	assert.Equal(t, time.Second, cfg.GetDuration("name", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("nothing", time.Second))
}

func TestConfig_Lookup(t *testing.T) {
	cfg := gettersConfig(t)

	v, ok := cfg.Lookup("port.text")
	require.True(t, ok)
	assert.Equal(t, models.KindString, v.Kind())

	_, ok = cfg.Lookup("port.missing")
	assert.False(t, ok)
}
