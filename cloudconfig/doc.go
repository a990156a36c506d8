// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cloudconfig is a client for Spring-Cloud-Config-style configuration
// services.
//
// [Load] fetches the property sources of an application for a set of profiles
// and an optional label, and returns a [Config]. A Config answers flat lookups
// ([Config.Get], [Config.GetString], ...) from the effective properties, where
// the most specific source wins per key, and rebuilds the nested structure
// encoded in keys such as "db.hosts[1].port" on demand ([Config.ToObject],
// [Config.Decode]).
//
//	cfg, err := cloudconfig.Load(ctx, models.LoadRequest{
//		Endpoint: "http://config:8888",
//		Name:     "billing",
//		Profiles: []string{"prod"},
//		Context:  map[string]string{"DB_PASSWORD": os.Getenv("DB_PASSWORD")},
//	})
//	if err != nil {
//		return err
//	}
//	url := cfg.GetString("db.url", "postgres://localhost/billing")
package cloudconfig
