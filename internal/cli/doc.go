// Package cli implements the cloudconfig command line tool on top of cobra.
//
// Every command that reads configuration shares the connection flags
// registered by [config.RegisterFlags]; values not given as flags are taken
// from CLOUD_CONFIG_* environment variables.
package cli
