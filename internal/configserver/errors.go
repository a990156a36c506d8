// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configserver

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnknownClient     = errors.New("unknown client")
	ErrUnsupportedGrant  = errors.New("unsupported grant type")
	ErrApplicationAbsent = errors.New("no configuration for application")
)
