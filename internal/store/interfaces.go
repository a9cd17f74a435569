// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the repositories the service layer reads and writes
// through. Records live in the remote data API; uploaded bytes live in an
// object store (the remote storage API or Google Cloud Storage). Nothing is
// kept in process.
package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/roya-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes rows of the remote "users" table.
type UserRepository interface {
	// FindUserByIdentifier returns at most one user matching the classified
	// identifier, including the stored password hash.
	// Returns [ErrNoUserWasFound] when nothing matches.
	FindUserByIdentifier(ctx context.Context, identifier models.Identifier) (models.User, error)

	// FindUserByID returns the full row for id, including the password hash.
	// Returns [ErrNoUserWasFound] when nothing matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindPublicUserByID returns the public projection for id.
	// Returns [ErrNoUserWasFound] when nothing matches.
	FindPublicUserByID(ctx context.Context, id int64) (models.PublicUser, error)

	// InsertUser inserts a new row and returns its public projection.
	InsertUser(ctx context.Context, user models.NewUser) (models.PublicUser, error)

	// UpdateUser applies patch to the row with id.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) error

	// DeleteUser removes the row with id and returns the removed public rows
	// as reported by the remote data API (possibly none).
	DeleteUser(ctx context.Context, id int64) ([]models.PublicUser, error)
}

// PhotoRepository reads and writes photo metadata.
type PhotoRepository interface {
	// InsertPhoto inserts a metadata row and returns it as stored.
	InsertPhoto(ctx context.Context, photo models.Photo) (models.Photo, error)

	// ListPhotos returns photo rows, narrowed by filter.
	ListPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error)

	// ListImages returns every row of the "images" table verbatim.
	ListImages(ctx context.Context) (json.RawMessage, error)
}

// ObjectStorage stores uploaded bytes.
type ObjectStorage interface {
	// PutObject writes obj under obj.Key and returns its public URL.
	PutObject(ctx context.Context, obj models.Object) (string, error)

	// DeleteObject removes the object stored under key.
	DeleteObject(ctx context.Context, key string) error
}
