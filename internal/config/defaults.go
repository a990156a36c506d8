package config

import (
	"time"

	"github.com/MKhiriev/go-cloud-config/models"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultLogLevel = "warn"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Endpoint: models.DefaultEndpoint,
		Request: Request{
			Timeout: defaultTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}
