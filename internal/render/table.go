// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/charmbracelet/lipgloss"
)

// Row is one line of a property listing.
type Row struct {
	Key    string
	Value  models.Value
	Source string
	// Overridden marks a value hidden by a more specific source.
	Overridden bool
}

// Table writes rows as an aligned key/value/source table under title.
func Table(w io.Writer, title string, rows []Row) error {
	s := newStyles(w)

	keyWidth := lipgloss.Width("KEY")
	valueWidth := lipgloss.Width("VALUE")
	for _, r := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(r.Key))
		valueWidth = max(valueWidth, lipgloss.Width(r.Value.String()))
	}

	var b strings.Builder
	b.WriteString(s.title.Render(title))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%-*s │ %-*s │ %s\n", keyWidth, "KEY", valueWidth, "VALUE", "SOURCE"))
	b.WriteString(strings.Repeat("─", keyWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", valueWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", lipgloss.Width("SOURCE")))
	b.WriteString("\n")

	for _, r := range rows {
		key := pad(s.key.Render(r.Key), r.Key, keyWidth)
		value := pad(s.values[r.Value.Kind()].Render(r.Value.String()), r.Value.String(), valueWidth)
		if r.Overridden {
			key = pad(s.overridden.Render(r.Key), r.Key, keyWidth)
			value = pad(s.overridden.Render(r.Value.String()), r.Value.String(), valueWidth)
		}
		b.WriteString(key)
		b.WriteString(" │ ")
		b.WriteString(value)
		b.WriteString(" │ ")
		b.WriteString(s.source.Render(r.Source))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d properties\n", len(rows)))

	_, err := io.WriteString(w, b.String())
	return err
}

// pad right-pads a styled cell to width using the width of its plain text,
// since escape sequences take no room on screen.
func pad(styled, plain string, width int) string {
	if n := width - lipgloss.Width(plain); n > 0 {
		return styled + strings.Repeat(" ", n)
	}
	return styled
}
