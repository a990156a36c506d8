// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfo carries build-time metadata injected by linker flags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns a BuildInfo with blank values replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: valueOrNA(version),
		Date:    valueOrNA(date),
		Commit:  valueOrNA(commit),
	}
}

// String renders the version line used by the CLI --version flag.
func (b BuildInfo) String() string {
	return b.Version + " (commit: " + b.Commit + ", built: " + b.Date + ")"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
