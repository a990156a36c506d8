// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree rebuilds nested configuration objects from flat property keys.
package tree

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-config/keypath"
	"github.com/MKhiriev/go-cloud-config/models"
)

// MaxArrayIndex is the largest array index accepted in a key. Arrays grow to
// the highest index seen, so this bounds the memory a single key can claim.
const MaxArrayIndex = 1 << 16

// ValueFunc resolves the value of a flat key. ok is false for unknown keys,
// which are skipped.
type ValueFunc func(key string) (v models.Value, ok bool)

// Build materializes keys, in order, into a tree rooted at an object node.
//
// Plain segments descend into objects and indexed segments into arrays, which
// grow on demand with [Unset] slots. A leaf is written only if its slot is
// still unset, so the first key to reach a path wins. Build fails with a
// [*ConflictError] when keys disagree on the shape of a path.
func Build(keys []string, valueOf ValueFunc) (*Node, error) {
	root := &Node{kind: Object}
	for _, key := range keys {
		v, ok := valueOf(key)
		if !ok {
			continue
		}
		if err := insert(root, key, v); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// FromProperties builds a tree from every key of props in insertion order.
func FromProperties(props *models.Properties) (*Node, error) {
	return Build(props.Keys(), props.Get)
}

func insert(root *Node, key string, v models.Value) error {
	segments := keypath.Parse(key)
	cur := root
	for i, seg := range segments {
		last := i == len(segments)-1
		path := keypath.Format(segments[:i+1])

		slot := cur.slot(seg.Name)
		for j, idx := range seg.Indices {
			if idx > MaxArrayIndex {
				return fmt.Errorf("key %q: index %d: %w", key, idx, ErrIndexOutOfRange)
			}
			if err := become(slot, Array, key, prefix(segments[:i], seg, j)); err != nil {
				return err
			}
			slot = slot.item(idx)
		}

		if last {
			return setLeaf(slot, v, key, path)
		}
		if err := become(slot, Object, key, path); err != nil {
			return err
		}
		cur = slot
	}
	return nil
}

// prefix renders the path of seg truncated to its first n indices.
func prefix(parents []keypath.Segment, seg keypath.Segment, n int) string {
	head := append(parents[:len(parents):len(parents)], keypath.Segment{Name: seg.Name, Indices: seg.Indices[:n]})
	return keypath.Format(head)
}

// slot returns the field called name, adding an unset placeholder if absent.
func (n *Node) slot(name string) *Node {
	if c, ok := n.fields[name]; ok {
		return c
	}
	if n.fields == nil {
		n.fields = make(map[string]*Node)
	}
	c := &Node{}
	n.fields[name] = c
	n.keys = append(n.keys, name)
	return c
}

// item returns the i-th array slot, growing the array with unset slots.
func (n *Node) item(i int) *Node {
	for len(n.items) <= i {
		n.items = append(n.items, &Node{})
	}
	return n.items[i]
}

func become(n *Node, want Kind, key, path string) error {
	switch n.kind {
	case want:
		return nil
	case Unset:
		n.kind = want
		return nil
	default:
		return &ConflictError{Key: key, Path: path, Want: want, Got: n.kind}
	}
}

func setLeaf(n *Node, v models.Value, key, path string) error {
	switch n.kind {
	case Unset:
		n.kind = Leaf
		n.value = v
		return nil
	case Leaf:
		return nil
	default:
		return &ConflictError{Key: key, Path: path, Want: Leaf, Got: n.kind}
	}
}
