package service

import (
	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/crypto"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/store"
	"github.com/MKhiriev/roya-gateway/internal/validators"
)

type Services struct {
	AuthService  AuthService
	UserService  UserService
	PhotoService PhotoService
}

// NewServices wires every service to the storages. Request validation is
// applied as a wrapper around each service.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, hasher, cfg.App, logger)),
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, hasher, logger)),
		PhotoService: NewPhotoValidationService(validator).
			Wrap(NewPhotoService(storages.PhotoRepository, storages.ObjectStorage, cfg.App.CleanupOrphanedUploads, logger)),
	}
}
