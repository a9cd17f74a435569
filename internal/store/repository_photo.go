package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/models"
)

const imagesTable = "images"

type photoRepository struct {
	data   adapter.DataAdapter
	logger *logger.Logger
}

// NewPhotoRepository constructs a [PhotoRepository] on top of the data adapter.
func NewPhotoRepository(data adapter.DataAdapter, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating photo repository")
	return &photoRepository{data: data, logger: logger}
}

// InsertPhoto implements [PhotoRepository]. When the remote data API does
// not echo the row back, photo itself is returned.
func (r *photoRepository) InsertPhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	log := logger.FromContext(ctx)

	q := adapter.NewQuery().Select(models.PhotoColumns)

	var rows []models.Photo
	if err := r.data.Insert(ctx, photo.TableName(), q, photo, &rows); err != nil {
		log.Err(err).Str("func", "*photoRepository.InsertPhoto").Msg("error inserting photo")
		return models.Photo{}, err
	}

	if len(rows) == 0 {
		return photo, nil
	}

	return rows[0], nil
}

// ListPhotos implements [PhotoRepository].
func (r *photoRepository) ListPhotos(ctx context.Context, filter models.PhotoFilter) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	q := adapter.NewQuery().Select(models.PhotoColumns)
	if filter.Etapa != "" {
		q.Eq("etapa", filter.Etapa)
	}

	rows := make([]models.Photo, 0)
	if err := r.data.Select(ctx, models.Photo{}.TableName(), q, &rows); err != nil {
		log.Err(err).Str("func", "*photoRepository.ListPhotos").Msg("error listing photos")
		return nil, err
	}

	return rows, nil
}

// ListImages implements [PhotoRepository].
func (r *photoRepository) ListImages(ctx context.Context) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	var raw json.RawMessage
	if err := r.data.Select(ctx, imagesTable, adapter.NewQuery().Select("*"), &raw); err != nil {
		log.Err(err).Str("func", "*photoRepository.ListImages").Msg("error listing images")
		return nil, err
	}

	if len(raw) == 0 {
		raw = json.RawMessage("[]")
	}

	return raw, nil
}
