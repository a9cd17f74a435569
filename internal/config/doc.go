// Package config loads the gateway configuration.
//
// [GetStructuredConfig] starts from built-in defaults and overlays, in order,
// environment variables (a .env file may seed them), command-line flags and
// an optional JSON file; a later source wins for every non-zero field. The
// result is validated, but a missing API key is accepted so that the server
// can start and report the problem per request.
package config
