package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/models"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

// gcsObjectStorage keeps objects in a Google Cloud Storage bucket.
type gcsObjectStorage struct {
	client *storage.Client
	bucket string
	logger *logger.Logger
}

// NewGCSObjectStorage constructs an [ObjectStorage] backed by Google Cloud
// Storage. When cfg.CredentialsFile is empty, Application Default Credentials
// are used. Extra client options are appended after the credentials option.
func NewGCSObjectStorage(ctx context.Context, cfg config.GCS, logger *logger.Logger, opts ...option.ClientOption) (ObjectStorage, func() error, error) {
	var clientOpts []option.ClientOption
	if cfg.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating gcs client: %w", err)
	}

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating gcs object storage")

	return &gcsObjectStorage{client: client, bucket: cfg.Bucket, logger: logger}, client.Close, nil
}

// PutObject implements [ObjectStorage].
func (s *gcsObjectStorage) PutObject(ctx context.Context, obj models.Object) (string, error) {
	log := logger.FromContext(ctx)

	key, err := objectKey(obj.Key)
	if err != nil {
		return "", err
	}

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = obj.ContentType
	w.ChunkSize = 0 // single request upload

	if _, err = w.Write(obj.Data); err != nil {
		_ = w.Close()
		log.Err(err).Str("func", "*gcsObjectStorage.PutObject").Str("key", key).Msg("error writing object")
		return "", fmt.Errorf("error writing gcs object: %w", err)
	}

	if err = w.Close(); err != nil {
		log.Err(err).Str("func", "*gcsObjectStorage.PutObject").Str("key", key).Msg("error closing object writer")
		return "", fmt.Errorf("error writing gcs object: %w", err)
	}

	return gcsPublicURL(s.bucket, key), nil
}

// DeleteObject implements [ObjectStorage]. Deleting a missing object is not
// an error.
func (s *gcsObjectStorage) DeleteObject(ctx context.Context, key string) error {
	key, err := objectKey(key)
	if err != nil {
		return err
	}

	err = s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("error deleting gcs object: %w", err)
	}

	return nil
}

func gcsPublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", gcsPublicHost, bucket, url.PathEscape(key))
}
