package merge

import "errors"

// ErrArrayPolicyConflict is returned by [CollectKeys] under [Replace] when a
// base name is an array in one source and a plain value in another, so there
// is no single array definition to keep.
var ErrArrayPolicyConflict = errors.New("array policy conflict")
