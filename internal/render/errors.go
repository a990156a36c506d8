package render

import "errors"

// ErrUnknownFormat is returned for output formats other than JSON and YAML.
var ErrUnknownFormat = errors.New("unknown output format")
