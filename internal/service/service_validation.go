package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/roya-gateway/internal/validators"
	"github.com/MKhiriev/roya-gateway/models"
)

// AuthValidationService validates requests before they reach the wrapped
// AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService returns a wrapper validating register and login
// requests.
func NewAuthValidationService(validator validators.Validator) *AuthValidationService {
	return &AuthValidationService{validator: validator}
}

// Wrap sets the decorated service.
func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PublicUser{}, fmt.Errorf("invalid register request: %w", err)
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PublicUser{}, fmt.Errorf("invalid login request: %w", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.PublicUser) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, signed string) (models.Token, error) {
	return v.inner.ParseToken(ctx, signed)
}

// UserValidationService validates requests before they reach the wrapped
// UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

// NewUserValidationService returns a wrapper validating profile requests.
func NewUserValidationService(validator validators.Validator) *UserValidationService {
	return &UserValidationService{validator: validator}
}

// Wrap sets the decorated service.
func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) GetProfile(ctx context.Context, userID int64) (models.PublicUser, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.PublicUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PublicUser{}, fmt.Errorf("invalid update request: %w", err)
	}
	return v.inner.UpdateUser(ctx, userID, req)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, userID int64, req models.DeleteUserRequest) ([]models.PublicUser, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("invalid delete request: %w", err)
	}
	return v.inner.DeleteUser(ctx, userID, req)
}

// PhotoValidationService validates uploads before they reach the wrapped
// PhotoService.
type PhotoValidationService struct {
	inner     PhotoService
	validator validators.Validator
}

// NewPhotoValidationService returns a wrapper validating uploads.
func NewPhotoValidationService(validator validators.Validator) *PhotoValidationService {
	return &PhotoValidationService{validator: validator}
}

// Wrap sets the decorated service.
func (v *PhotoValidationService) Wrap(inner PhotoService) PhotoService {
	v.inner = inner
	return v
}

func (v *PhotoValidationService) Upload(ctx context.Context, upload models.PhotoUpload) (models.UploadResult, error) {
	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.UploadResult{}, fmt.Errorf("invalid upload: %w", err)
	}
	return v.inner.Upload(ctx, upload)
}

func (v *PhotoValidationService) ListPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error) {
	return v.inner.ListPhotos(ctx, filter)
}

func (v *PhotoValidationService) ListImages(ctx context.Context) (json.RawMessage, error) {
	return v.inner.ListImages(ctx)
}
