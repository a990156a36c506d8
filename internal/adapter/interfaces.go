// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the config
// service.
//
// The primary abstraction is [ConfigAdapter], which decouples configuration
// loading from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPConfigAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cloud-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/config_adapter_mock.go -package=mock

// ConfigAdapter fetches one configuration document from the config service.
type ConfigAdapter interface {
	// Fetch requests the properties of req.Name for req.Profiles and
	// req.Label and returns the decoded response. Returns an error wrapping
	// [ErrInvalidResponse] for non-2xx statuses and
	// [models.ErrMalformedResponse] if the body cannot be decoded. Nothing is
	// retried.
	Fetch(ctx context.Context, req models.LoadRequest) (*models.ConfigData, error)
}
