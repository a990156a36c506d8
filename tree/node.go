// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"strconv"

	"github.com/MKhiriev/go-cloud-config/keypath"
	"github.com/MKhiriev/go-cloud-config/models"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Kind is the shape of a [Node].
type Kind uint8

const (
	// Unset marks an array slot no key has written yet. It is distinct from a
	// leaf holding an explicit null.
	Unset Kind = iota
	// Leaf holds a scalar [models.Value].
	Leaf
	// Object holds named fields in first-insertion order.
	Object
	// Array holds indexed items; gaps are Unset nodes.
	Array
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "value"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return "unset"
	}
}

// Node is one element of a materialized configuration tree.
type Node struct {
	kind   Kind
	value  models.Value
	keys   []string
	fields map[string]*Node
	items  []*Node
}

// Kind returns the shape of n.
func (n *Node) Kind() Kind {
	if n == nil {
		return Unset
	}
	return n.kind
}

// Value returns the scalar held by a leaf.
func (n *Node) Value() (models.Value, bool) {
	if n.Kind() != Leaf {
		return models.Value{}, false
	}
	return n.value, true
}

// Field returns the named field of an object node.
func (n *Node) Field(name string) (*Node, bool) {
	if n.Kind() != Object {
		return nil, false
	}
	c, ok := n.fields[name]
	return c, ok
}

// Fields returns the field names of an object node in insertion order.
func (n *Node) Fields() []string {
	if n.Kind() != Object {
		return nil
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Index returns the i-th item of an array node. Unset slots are returned as
// nodes of kind [Unset].
func (n *Node) Index(i int) (*Node, bool) {
	if n.Kind() != Array || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Len returns the number of fields of an object or items of an array.
func (n *Node) Len() int {
	switch n.Kind() {
	case Object:
		return len(n.keys)
	case Array:
		return len(n.items)
	default:
		return 0
	}
}

// Lookup resolves a flat key such as "key03.key01[1].data" against n.
func (n *Node) Lookup(key string) (*Node, bool) {
	cur := n
	for _, seg := range keypath.Parse(key) {
		next, ok := cur.Field(seg.Name)
		if !ok {
			return nil, false
		}
		for _, i := range seg.Indices {
			if next, ok = next.Index(i); !ok {
				return nil, false
			}
		}
		cur = next
	}
	return cur, true
}

// Interface converts n into plain Go values: map[string]any for objects,
// []any for arrays and [models.Value.Interface] for leaves. Unset slots
// become nil.
func (n *Node) Interface() any {
	switch n.Kind() {
	case Leaf:
		return n.value.Interface()
	case Object:
		out := make(map[string]any, len(n.keys))
		for _, k := range n.keys {
			out[k] = n.fields[k].Interface()
		}
		return out
	case Array:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Walk calls fn for every leaf under n with the leaf's flat key, in tree
// order. Unset slots are skipped. Walking the root of a built tree yields the
// keys it was built from, in canonical form.
func (n *Node) Walk(fn func(key string, v models.Value)) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []keypath.Segment, fn func(string, models.Value)) {
	switch n.Kind() {
	case Leaf:
		fn(keypath.Format(path), n.value)
	case Object:
		for _, k := range n.keys {
			n.fields[k].walk(append(path[:len(path):len(path)], keypath.Segment{Name: k}), fn)
		}
	case Array:
		if len(path) == 0 {
			return
		}
		last := path[len(path)-1]
		for i, item := range n.items {
			indices := append(last.Indices[:len(last.Indices):len(last.Indices)], i)
			next := append(path[:len(path)-1:len(path)-1], keypath.Segment{Name: last.Name, Indices: indices})
			item.walk(next, fn)
		}
	}
}

// MarshalJSON implements json.Marshaler. Object fields keep insertion order;
// unset slots are written as null.
func (n *Node) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	if err := n.writeJSON(stream); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}

	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

func (n *Node) writeJSON(stream *jsoniter.Stream) error {
	switch n.Kind() {
	case Leaf:
		raw, err := n.value.MarshalJSON()
		if err != nil {
			return err
		}
		stream.WriteRaw(string(raw))
	case Object:
		stream.WriteObjectStart()
		for i, k := range n.keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			if err := n.fields[k].writeJSON(stream); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	case Array:
		stream.WriteArrayStart()
		for i, item := range n.items {
			if i > 0 {
				stream.WriteMore()
			}
			if err := item.writeJSON(stream); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteNil()
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping field order.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode(), nil
}

func (n *Node) yamlNode() *yaml.Node {
	switch n.Kind() {
	case Leaf:
		return yamlScalar(n.value)
	case Object:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range n.keys {
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				n.fields[k].yamlNode(),
			)
		}
		return out
	case Array:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.items {
			out.Content = append(out.Content, item.yamlNode())
		}
		return out
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func yamlScalar(v models.Value) *yaml.Node {
	switch v.Kind() {
	case models.KindString:
		s, _ := v.Str()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case models.KindNumber:
		num, _ := v.Number()
		if _, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: num.String()}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: num.String()}
	case models.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v.String()}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
