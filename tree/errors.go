package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict is returned when two keys disagree on the shape of a path,
	// e.g. "a" holds a value while "a.b" needs "a" to be an object.
	ErrConflict = errors.New("conflicting property paths")
	// ErrIndexOutOfRange is returned for array indices above [MaxArrayIndex].
	ErrIndexOutOfRange = errors.New("array index out of range")
)

// ConflictError describes a structural conflict met while building a tree.
type ConflictError struct {
	// Key is the flat key being inserted when the conflict was found.
	Key string
	// Path is the flat path of the conflicting node.
	Path string
	// Want is the shape Key needs at Path, Got is the shape already there.
	Want Kind
	Got  Kind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("key %q: %q is already %s, cannot use it as %s", e.Key, e.Path, article(e.Got), article(e.Want))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

func article(k Kind) string {
	if k == Array || k == Object {
		return "an " + k.String()
	}
	return "a " + k.String()
}
