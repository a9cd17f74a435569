package store

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/models"
)

// restObjectStorage keeps objects in a bucket of the remote storage API.
type restObjectStorage struct {
	storage adapter.StorageAdapter
	bucket  string
	logger  *logger.Logger
}

// NewRESTObjectStorage constructs an [ObjectStorage] writing to bucket
// through the storage adapter.
func NewRESTObjectStorage(storage adapter.StorageAdapter, bucket string, logger *logger.Logger) ObjectStorage {
	logger.Debug().Str("bucket", bucket).Msg("creating rest object storage")
	return &restObjectStorage{storage: storage, bucket: bucket, logger: logger}
}

// PutObject implements [ObjectStorage].
func (s *restObjectStorage) PutObject(ctx context.Context, obj models.Object) (string, error) {
	log := logger.FromContext(ctx)

	key, err := objectKey(obj.Key)
	if err != nil {
		return "", err
	}

	if err = s.storage.PutObject(ctx, s.bucket, key, obj.ContentType, obj.Data); err != nil {
		log.Err(err).Str("func", "*restObjectStorage.PutObject").Str("key", key).Msg("error storing object")
		return "", err
	}

	return s.storage.PublicURL(s.bucket, key), nil
}

// DeleteObject implements [ObjectStorage].
func (s *restObjectStorage) DeleteObject(ctx context.Context, key string) error {
	key, err := objectKey(key)
	if err != nil {
		return err
	}

	return s.storage.DeleteObject(ctx, s.bucket, key)
}

// objectKey reduces name to its last path element so that uploads cannot
// escape the bucket root.
func objectKey(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return "", ErrInvalidObjectKey
	}

	key := path.Base(name)
	if key == "." || key == "/" || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectKey, name)
	}

	return key, nil
}
