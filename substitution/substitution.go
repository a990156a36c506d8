// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package substitution resolves ${name} and ${name:default} placeholders in
// property values against a caller supplied context.
//
// Grammar, applied left to right without nesting:
//
//	placeholder = "${" name [ ":" default ] "}"
//
// name is a non-empty run of characters other than "}" and ":", and default
// is everything up to the next "}", possibly empty. A placeholder is replaced
// by the context value for name if it is non-empty, otherwise by default if
// the ":" is present (so "${name:}" becomes ""), otherwise it is left as
// written.
package substitution

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-cloud-config/models"
)

var placeholder = regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

// String resolves every placeholder in s.
func String(s string, ctx map[string]string) string {
	matches := placeholder.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		b.WriteString(resolve(s, m, ctx))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func resolve(s string, m []int, ctx map[string]string) string {
	name := s[m[2]:m[3]]
	if v := ctx[name]; v != "" {
		return v
	}
	if m[4] >= 0 {
		return s[m[4]:m[5]]
	}
	return s[m[0]:m[1]]
}

// Substitute resolves placeholders in v if it is a string value and returns
// every other value untouched.
func Substitute(v models.Value, ctx map[string]string) models.Value {
	s, ok := v.Str()
	if !ok {
		return v
	}
	return models.StringValue(String(s, ctx))
}

// Apply returns props with [Substitute] applied to every value. A nil ctx
// returns props itself without scanning it.
func Apply(props *models.Properties, ctx map[string]string) *models.Properties {
	if ctx == nil {
		return props
	}
	out := models.NewProperties(props.Len())
	props.Range(func(k string, v models.Value) bool {
		out.Set(k, Substitute(v, ctx))
		return true
	})
	return out
}
