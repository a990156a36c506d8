// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge resolves an ordered list of property sources into effective
// properties.
//
// Sources are ordered most specific first: the source at index 0 overrides
// every later source.
package merge

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-config/keypath"
	"github.com/MKhiriev/go-cloud-config/models"
)

// Policy decides how arrays defined by several sources are combined when
// materializing a tree.
type Policy uint8

const (
	// Replace keeps, for every array, only the cells defined by the most
	// specific source that defines that array at all.
	Replace Policy = iota
	// Merge keeps every cell defined by any source; the most specific
	// definition of each cell wins.
	Merge
)

func (p Policy) String() string {
	if p == Merge {
		return "merge"
	}
	return "replace"
}

// Flatten folds sources into one flat mapping in which each key holds the
// value of the lowest-index source defining it.
//
// Sources are folded from least to most specific with unconditional
// overwrites. Key order in the result is the order in which keys are first
// seen when scanning sources most specific first.
func Flatten(sources []models.PropertySource) *models.Properties {
	out := models.NewProperties(countKeys(sources))
	for _, key := range unionKeys(sources) {
		out.Set(key, models.Null())
	}
	for i := len(sources) - 1; i >= 0; i-- {
		sources[i].Source.Range(func(k string, v models.Value) bool {
			out.Set(k, v)
			return true
		})
	}
	return out
}

// CollectKeys returns the keys that take part in materialization, each once,
// in first-seen order scanning sources most specific first.
//
// Under [Merge] this is the union of all keys. Under [Replace] keys under an
// array base name (see [keypath.BaseName]) are only taken from the first
// source that defines that array. Under [Replace], a base name that is an
// array in one source and a plain key in another yields
// [ErrArrayPolicyConflict].
func CollectKeys(sources []models.PropertySource, policy Policy) ([]string, error) {
	if policy == Merge {
		return unionKeys(sources), nil
	}

	owner := make(map[string]int)
	plain := make(map[string]int)
	var bases []string
	for i, src := range sources {
		src.Source.Range(func(k string, _ models.Value) bool {
			if base, ok := keypath.BaseName(k); ok {
				if _, seen := owner[base]; !seen {
					owner[base] = i
					bases = append(bases, base)
				}
			} else if _, seen := plain[k]; !seen {
				plain[k] = i
			}
			return true
		})
	}

	for _, base := range bases {
		if j, ok := plain[base]; ok {
			return nil, fmt.Errorf("%w: %q is an array in source %d and a value in source %d", ErrArrayPolicyConflict, base, owner[base], j)
		}
	}

	seen := make(map[string]struct{}, countKeys(sources))
	keys := make([]string, 0, countKeys(sources))
	for i, src := range sources {
		src.Source.Range(func(k string, _ models.Value) bool {
			if base, ok := keypath.BaseName(k); ok && owner[base] != i {
				return true
			}
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
			return true
		})
	}
	return keys, nil
}

func unionKeys(sources []models.PropertySource) []string {
	seen := make(map[string]struct{}, countKeys(sources))
	keys := make([]string, 0, countKeys(sources))
	for _, src := range sources {
		src.Source.Range(func(k string, _ models.Value) bool {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
			return true
		})
	}
	return keys
}

func countKeys(sources []models.PropertySource) int {
	n := 0
	for _, src := range sources {
		n += src.Source.Len()
	}
	return n
}
