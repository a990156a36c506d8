// Package config assembles the settings of the cloudconfig command line tool.
//
// Settings are collected from several sources in the following priority order
// (the first source holding a non-zero field wins):
//  1. Command-line flags
//  2. Environment variables prefixed with CLOUD_CONFIG_
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig]; [StructuredConfig.LoadRequest]
// turns the result into a [models.LoadRequest].
package config
