// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"io"
	"strings"

	"github.com/MKhiriev/go-cloud-config/models"
)

// BuildInfo writes the version block of the CLI.
func BuildInfo(w io.Writer, info models.BuildInfo) error {
	s := newStyles(w)

	var b strings.Builder
	b.WriteString(s.title.Render("cloudconfig"))
	b.WriteString("\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
