// Package http implements the inbound HTTP surface of the gateway.
//
// Routes are served by a chi router. Every request gets a trace id, an
// access log line and optional gzip compression; routes that reach the
// remote services are refused with 500 while no API key is configured.
// Errors are written as {"detail": "..."}; upstream failures keep the
// upstream status code and body.
package http
