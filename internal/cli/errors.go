package cli

import "errors"

// ErrKeyNotFound is returned by "get" for keys without an effective value.
var ErrKeyNotFound = errors.New("key not found")
