// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// jsonAPI decodes numbers as json.Number so that numeric property values keep
// their exact textual form.
var jsonAPI = jsoniter.Config{
	UseNumber:              true,
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
}.Froze()

// Entry is a single flat key/value pair.
type Entry struct {
	Key   string
	Value Value
}

// Prop builds an [Entry] from a plain Go scalar. It panics on unsupported
// types and is meant for fixtures and tests.
func Prop(key string, v any) Entry {
	return Entry{Key: key, Value: MustValue(v)}
}

// Properties is an insertion-ordered flat key/value mapping. Keys keep the
// dotted/bracketed form they were received in.
//
// A nil *Properties is a valid empty mapping for all read methods.
type Properties struct {
	keys   []string
	values map[string]Value
}

// NewProperties returns an empty mapping with room for capacity keys.
func NewProperties(capacity int) *Properties {
	return &Properties{
		keys:   make([]string, 0, capacity),
		values: make(map[string]Value, capacity),
	}
}

// PropertiesOf builds a mapping from entries in the given order. A repeated
// key keeps its first position and its last value.
func PropertiesOf(entries ...Entry) *Properties {
	p := NewProperties(len(entries))
	for _, e := range entries {
		p.Set(e.Key, e.Value)
	}
	return p
}

// Set stores value under key. A new key is appended to the iteration order; an
// existing key keeps its position.
func (p *Properties) Set(key string, value Value) {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Len returns the number of keys.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns a copy of the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Range calls fn for each pair in insertion order until fn returns false.
func (p *Properties) Range(fn func(key string, value Value) bool) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		if !fn(k, p.values[k]) {
			return
		}
	}
}

// Entries returns the pairs in insertion order.
func (p *Properties) Entries() []Entry {
	out := make([]Entry, 0, p.Len())
	p.Range(func(k string, v Value) bool {
		out = append(out, Entry{Key: k, Value: v})
		return true
	})
	return out
}

// Clone returns an independent copy of p.
func (p *Properties) Clone() *Properties {
	out := NewProperties(p.Len())
	p.Range(func(k string, v Value) bool {
		out.Set(k, v)
		return true
	})
	return out
}

// Map returns the pairs as a plain Go map of [Value.Interface] results.
// Ordering is lost.
func (p *Properties) Map() map[string]any {
	out := make(map[string]any, p.Len())
	p.Range(func(k string, v Value) bool {
		out[k] = v.Interface()
		return true
	})
	return out
}

// DeepCopy implements the deepcopy.Interface.
func (p *Properties) DeepCopy() any {
	if p == nil {
		return p
	}
	return p.Clone()
}

// MarshalJSON implements json.Marshaler. Keys are written in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	first := true
	var err error
	p.Range(func(k string, v Value) bool {
		if !first {
			stream.WriteMore()
		}
		first = false

		raw, mErr := v.MarshalJSON()
		if mErr != nil {
			err = mErr
			return false
		}
		stream.WriteObjectField(k)
		stream.WriteRaw(string(raw))
		return true
	})
	if err != nil {
		return nil, err
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// MarshalYAML implements yaml.Marshaler as a mapping in insertion order.
func (p *Properties) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	p.Range(func(k string, v Value) bool {
		val := &yaml.Node{}
		if err = val.Encode(v); err != nil {
			return false
		}
		out.Content = append(out.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, val)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler. The document order of the object
// keys becomes the iteration order. Nested objects or arrays as values are
// rejected with [ErrUnsupportedValue]: nesting must be encoded in the key.
func (p *Properties) UnmarshalJSON(b []byte) error {
	it := jsonAPI.BorrowIterator(b)
	defer jsonAPI.ReturnIterator(it)

	out := NewProperties(8)
	if it.WhatIsNext() == jsoniter.NilValue {
		it.ReadNil()
		*p = *out
		return nil
	}
	if it.WhatIsNext() != jsoniter.ObjectValue {
		return fmt.Errorf("%w: property source must be an object", ErrMalformedResponse)
	}

	var err error
	it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		v, vErr := readValue(it)
		if vErr != nil {
			err = fmt.Errorf("key %q: %w", key, vErr)
			return false
		}
		out.Set(key, v)
		return true
	})
	if err != nil {
		return err
	}
	if it.Error != nil && it.Error != io.EOF {
		return fmt.Errorf("decode property source: %w", it.Error)
	}

	*p = *out
	return nil
}

func readValue(it *jsoniter.Iterator) (Value, error) {
	var v Value
	switch it.WhatIsNext() {
	case jsoniter.NilValue:
		it.ReadNil()
	case jsoniter.StringValue:
		v = StringValue(it.ReadString())
	case jsoniter.NumberValue:
		v = NumberValue(it.ReadNumber())
	case jsoniter.BoolValue:
		v = BoolValue(it.ReadBool())
	case jsoniter.ObjectValue, jsoniter.ArrayValue:
		it.Skip()
		return Value{}, ErrUnsupportedValue
	default:
		return Value{}, fmt.Errorf("%w: invalid json token", ErrMalformedResponse)
	}

	if it.Error != nil && it.Error != io.EOF {
		return Value{}, it.Error
	}
	return v, nil
}
