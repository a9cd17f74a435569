package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/store"
	"github.com/MKhiriev/roya-gateway/models"
)

type photoService struct {
	photoRepository store.PhotoRepository
	objectStorage   store.ObjectStorage

	// cleanupOrphans deletes the stored object when the metadata insert
	// fails.
	cleanupOrphans bool

	logger *logger.Logger
}

// NewPhotoService constructs a PhotoService.
func NewPhotoService(photoRepository store.PhotoRepository, objectStorage store.ObjectStorage, cleanupOrphans bool, logger *logger.Logger) PhotoService {
	return &photoService{
		photoRepository: photoRepository,
		objectStorage:   objectStorage,
		cleanupOrphans:  cleanupOrphans,
		logger:          logger,
	}
}

// Upload stores the object and then records its metadata. The two steps are
// not atomic: unless cleanupOrphans is set, a failed insert leaves the stored
// object in place.
func (p *photoService) Upload(ctx context.Context, upload models.PhotoUpload) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	url, err := p.objectStorage.PutObject(ctx, upload.Object)
	if err != nil {
		log.Err(err).Str("func", "*photoService.Upload").Str("key", upload.Object.Key).Msg("error storing object")
		return models.UploadResult{}, fmt.Errorf("error storing object: %w", err)
	}

	photo := models.Photo{
		Etapa:      upload.Etapa,
		ImgURL:     url,
		Comentario: upload.Comentario,
	}
	if photo.Comentario != nil && *photo.Comentario == "" {
		photo.Comentario = nil
	}

	stored, err := p.photoRepository.InsertPhoto(ctx, photo)
	if err != nil {
		log.Err(err).Str("func", "*photoService.Upload").Str("url", url).Msg("error inserting photo metadata")
		if p.cleanupOrphans {
			p.removeOrphan(ctx, upload.Object.Key)
		}
		return models.UploadResult{}, fmt.Errorf("error inserting photo metadata: %w", err)
	}

	return models.UploadResult{URL: url, Photo: stored}, nil
}

func (p *photoService) removeOrphan(ctx context.Context, key string) {
	log := logger.FromContext(ctx)

	if err := p.objectStorage.DeleteObject(context.WithoutCancel(ctx), key); err != nil {
		log.Err(err).Str("key", key).Msg("error removing orphaned object")
		return
	}

	log.Info().Str("key", key).Msg("orphaned object removed")
}

// ListPhotos returns photo metadata. A stage filter that matches nothing is
// reported as [ErrNoPhotosFound].
func (p *photoService) ListPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error) {
	photos, err := p.photoRepository.ListPhotos(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Etapa != "" && len(photos) == 0 {
		return nil, ErrNoPhotosFound
	}

	return photos, nil
}

// ListImages returns the rows of the images table verbatim.
func (p *photoService) ListImages(ctx context.Context) (json.RawMessage, error) {
	return p.photoRepository.ListImages(ctx)
}
