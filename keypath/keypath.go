// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keypath parses flat property keys such as "key03.key01[1].data"
// into path segments.
//
// The grammar is the one used by Spring-style property sources: "." separates
// object fields and one or more "[n]" groups directly after a field name
// address array cells. There is no escaping, so a literal "." or "[" inside a
// field name cannot be expressed.
package keypath

import (
	"regexp"
	"strconv"
	"strings"
)

var indexedToken = regexp.MustCompile(`^([^\[\]]+)((?:\[[0-9]+\])+)$`)
var indexGroup = regexp.MustCompile(`\[([0-9]+)\]`)

// Segment is one dot-delimited token of a flat key. A segment with Indices
// addresses an array cell (or a cell of a nested array for several indices)
// held by field Name.
type Segment struct {
	Name    string
	Indices []int
}

// Indexed reports whether the segment carries array indices.
func (s Segment) Indexed() bool {
	return len(s.Indices) > 0
}

// String renders the segment back in flat-key form.
func (s Segment) String() string {
	if !s.Indexed() {
		return s.Name
	}
	var b strings.Builder
	b.WriteString(s.Name)
	for _, i := range s.Indices {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}
	return b.String()
}

// Parse splits key on "." and classifies every token. Tokens that look like
// an index group but do not parse (e.g. "a[x]" or an index overflowing int)
// are kept as plain field names.
func Parse(key string) []Segment {
	tokens := strings.Split(key, ".")
	segments := make([]Segment, 0, len(tokens))
	for _, tok := range tokens {
		segments = append(segments, parseToken(tok))
	}
	return segments
}

func parseToken(tok string) Segment {
	m := indexedToken.FindStringSubmatch(tok)
	if m == nil {
		return Segment{Name: tok}
	}

	groups := indexGroup.FindAllStringSubmatch(m[2], -1)
	indices := make([]int, 0, len(groups))
	for _, g := range groups {
		i, err := strconv.Atoi(g[1])
		if err != nil {
			return Segment{Name: tok}
		}
		indices = append(indices, i)
	}

	return Segment{Name: m[1], Indices: indices}
}

// Format is the inverse of [Parse].
func Format(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// BaseName returns the part of key that names the first array it addresses,
// i.e. every segment up to and including the field name of the first indexed
// segment ("a.b[0].c" -> "a.b"). ok is false when key has no indexed segment.
func BaseName(key string) (base string, ok bool) {
	segments := Parse(key)
	for i, s := range segments {
		if !s.Indexed() {
			continue
		}
		names := make([]string, 0, i+1)
		for _, prev := range segments[:i] {
			names = append(names, prev.String())
		}
		names = append(names, s.Name)
		return strings.Join(names, "."), true
	}
	return "", false
}

// Join joins the non-empty parts with ".".
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}
