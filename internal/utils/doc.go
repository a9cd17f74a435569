// Package utils provides general-purpose helpers shared by the transport and
// service layers: JSON response writing, the outbound HTTP client, session
// token generation and input normalization.
package utils
