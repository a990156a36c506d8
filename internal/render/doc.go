// Package render formats configuration for terminal output: styled property
// listings, build information and JSON/YAML documents.
package render
