// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the request flows of the gateway: identity
// resolution and credential checks, profile maintenance, and photo uploads.
//
// Each flow validates and normalises its input, then issues one or two calls
// through the store repositories. Nothing is cached between requests.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/roya-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users.
type AuthService interface {
	// RegisterUser validates req, hashes the password and inserts the user.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login resolves the identifier and verifies the password. Every
	// authentication failure is reported as [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// CreateToken issues a session token for user. It returns
	// [ErrTokenSigningDisabled] when no sign key is configured.
	CreateToken(ctx context.Context, user models.PublicUser) (models.Token, error)

	// ParseToken verifies a session token and returns it with UserID set.
	// It returns [ErrTokenSigningDisabled] when no sign key is configured and
	// [ErrInvalidToken] for any token that fails verification.
	ParseToken(ctx context.Context, signed string) (models.Token, error)
}

// UserService reads and maintains user profiles.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.PublicUser, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.PublicUser, error)
	DeleteUser(ctx context.Context, userID int64, req models.DeleteUserRequest) ([]models.PublicUser, error)
}

// PhotoService stores uploaded pictures and lists their metadata.
type PhotoService interface {
	// Upload stores the object first and then inserts its metadata row.
	Upload(ctx context.Context, upload models.PhotoUpload) (models.UploadResult, error)
	ListPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error)
	ListImages(ctx context.Context) (json.RawMessage, error)
}
