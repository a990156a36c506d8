// Package configserver implements a small HTTP server speaking the config
// service protocol.
//
// It serves fixed responses per application name under
// <context path>/{name}/{profiles}[/{label}], can require basic or bearer
// authentication, can issue OAuth2 client-credentials tokens and records every
// request it receives. It backs the adapter tests and the "serve" command of
// the CLI.
package configserver
