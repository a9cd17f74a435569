package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository  UserRepository
	PhotoRepository PhotoRepository
	ObjectStorage   ObjectStorage

	closers []func() error
}

// NewStorages builds the repositories on top of remote. The object store is
// chosen by cfg.Storage.Backend.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, remote adapter.RemoteAdapter, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	s := &Storages{
		UserRepository:  NewUserRepository(remote, logger),
		PhotoRepository: NewPhotoRepository(remote, logger),
	}

	switch cfg.Storage.Backend {
	case config.StorageBackendGCS:
		objects, closeFn, err := NewGCSObjectStorage(ctx, cfg.Storage.GCS, logger)
		if err != nil {
			return nil, err
		}
		s.ObjectStorage = objects
		s.closers = append(s.closers, closeFn)
	case config.StorageBackendREST, "":
		s.ObjectStorage = NewRESTObjectStorage(remote, cfg.Adapter.Bucket, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return s, nil
}

// Close releases object store clients.
func (s *Storages) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
