// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the remote
// backend-as-a-service: a PostgREST-style data API and its object storage API.
//
// Every outbound request carries the configured API key in the "apikey" and
// bearer "Authorization" headers together with "Accept: application/json".
// The key never leaves this package: it is not logged and it is not part of
// any error value.
//
// Non-2xx responses are mapped by mapHTTPError into [*UpstreamError], which
// keeps the upstream status code and body so that the inbound layer can
// mirror them. Transport failures wrap [ErrUnavailable].
package adapter

import (
	"context"
)

// DataAdapter talks to the remote REST data API.
type DataAdapter interface {
	// Select issues GET /<table>?<q> and decodes the JSON array into dest.
	Select(ctx context.Context, table string, q *Query, dest any) error

	// Insert issues POST /<table>. When dest is non-nil the inserted rows are
	// requested back ("Prefer: return=representation") and decoded into dest.
	Insert(ctx context.Context, table string, q *Query, body any, dest any) error

	// Update issues PATCH /<table>?<q> with body as the partial row.
	Update(ctx context.Context, table string, q *Query, body any, dest any) error

	// Delete issues DELETE /<table>?<q>. When dest is non-nil the deleted
	// rows are requested back and decoded into dest.
	Delete(ctx context.Context, table string, q *Query, dest any) error
}

// StorageAdapter talks to the remote object storage API.
type StorageAdapter interface {
	// PutObject writes data to <bucket>/<key>, replacing an existing object.
	PutObject(ctx context.Context, bucket, key, contentType string, data []byte) error

	// DeleteObject removes <bucket>/<key>.
	DeleteObject(ctx context.Context, bucket, key string) error

	// PublicURL returns the public URL template for <bucket>/<key>. It does
	// not check that the object exists.
	PublicURL(bucket, key string) string
}

// RemoteAdapter combines both remote APIs behind a single API key.
type RemoteAdapter interface {
	DataAdapter
	StorageAdapter

	// Configured reports whether an API key is available. When it is not,
	// every call returns [ErrNotConfigured] without touching the network.
	Configured() bool
}
