package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/service"
	"github.com/MKhiriev/roya-gateway/internal/store"
	"github.com/MKhiriev/roya-gateway/internal/validators"
	"github.com/MKhiriev/roya-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

var errFileRequired = &validators.ValidationError{Fields: validators.FieldErrors{"file": "is required"}}

type formFile struct {
	name        string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, file *formFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.name))
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		tr := newTestRouter(t, configured())
		tr.photos.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, upload models.PhotoUpload) (models.UploadResult, error) {
				assert.Equal(t, "floracion", upload.Etapa)
				require.NotNil(t, upload.Comentario)
				assert.Equal(t, "hojas con roya", *upload.Comentario)
				assert.Equal(t, "hoja.png", upload.Object.Key)
				assert.Equal(t, "image/png", upload.Object.ContentType)
				assert.Equal(t, pngHeader, upload.Object.Data)
				return models.UploadResult{
					URL:   "https://x.supabase.co/storage/v1/object/public/images/hoja.png",
					Photo: models.Photo{Etapa: "floracion", ImgURL: "https://x.supabase.co/storage/v1/object/public/images/hoja.png", Comentario: upload.Comentario},
				}, nil
			})

		body, ct := multipartBody(t,
			map[string]string{"etapa": "floracion", "comentario": "hojas con roya"},
			&formFile{name: "hoja.png", contentType: "image/png", data: pngHeader})
		rec := tr.do(http.MethodPost, "/upload", body, "Content-Type", ct)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.UploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "image uploaded", resp.Message)
		assert.Equal(t, "https://x.supabase.co/storage/v1/object/public/images/hoja.png", resp.URL)
		assert.Equal(t, resp.URL, resp.Photo.ImgURL)
	})

	t.Run("content type sniffed and comment omitted", func(t *testing.T) {
		tr := newTestRouter(t, configured())
		tr.photos.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, upload models.PhotoUpload) (models.UploadResult, error) {
				assert.Nil(t, upload.Comentario)
				assert.Equal(t, "image/png", upload.Object.ContentType)
				return models.UploadResult{URL: "u", Photo: models.Photo{Etapa: upload.Etapa, ImgURL: "u"}}, nil
			})

		body, ct := multipartBody(t,
			map[string]string{"etapa": "cosecha"},
			&formFile{name: "hoja.png", contentType: "application/octet-stream", data: pngHeader})
		rec := tr.do(http.MethodPost, "/upload", body, "Content-Type", ct)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing file reaches validation", func(t *testing.T) {
		tr := newTestRouter(t, configured())
		tr.photos.EXPECT().Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, upload models.PhotoUpload) (models.UploadResult, error) {
				assert.Empty(t, upload.Object.Data)
				return models.UploadResult{}, fmt.Errorf("invalid upload: %w", errFileRequired)
			})

		body, ct := multipartBody(t, map[string]string{"etapa": "cosecha"}, nil)
		rec := tr.do(http.MethodPost, "/upload", body, "Content-Type", ct)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"file: is required"}`, rec.Body.String())
	})

	t.Run("not multipart", func(t *testing.T) {
		tr := newTestRouter(t, configured())

		rec := tr.doJSON(http.MethodPost, "/upload", `{"etapa":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"invalid multipart form"}`, rec.Body.String())
	})

	t.Run("too large", func(t *testing.T) {
		tr := newTestRouter(t, Options{RemoteConfigured: true, MaxUploadBytes: 64})

		body, ct := multipartBody(t,
			map[string]string{"etapa": "cosecha"},
			&formFile{name: "big.png", contentType: "image/png", data: bytes.Repeat([]byte{1}, 1024)})
		rec := tr.do(http.MethodPost, "/upload", body, "Content-Type", ct)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"detail":"upload is too large"}`, rec.Body.String())
	})

	t.Run("storage rejects", func(t *testing.T) {
		tr := newTestRouter(t, configured())
		tr.photos.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(models.UploadResult{}, fmt.Errorf("error storing object: %w",
				&adapter.UpstreamError{StatusCode: http.StatusBadRequest, Body: `{"error":"Duplicate","message":"The resource already exists"}`}))

		body, ct := multipartBody(t, map[string]string{"etapa": "cosecha"},
			&formFile{name: "hoja.png", contentType: "image/png", data: pngHeader})
		rec := tr.do(http.MethodPost, "/upload", body, "Content-Type", ct)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "The resource already exists")
	})

	t.Run("bad object key", func(t *testing.T) {
		tr := newTestRouter(t, configured())
		tr.photos.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(models.UploadResult{}, fmt.Errorf("error storing object: %w", store.ErrInvalidObjectKey))

		body, ct := multipartBody(t, map[string]string{"etapa": "cosecha"},
			&formFile{name: "..", contentType: "image/png", data: pngHeader})
		rec := tr.do(http.MethodPost, "/upload", body, "Content-Type", ct)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, store.ErrInvalidObjectKey.Error()), rec.Body.String())
	})
}

func TestImages(t *testing.T) {
	t.Run("verbatim", func(t *testing.T) {
		tr := newTestRouter(t, configured())
		raw := json.RawMessage(`[{"id":1,"url":"a"},{"id":2,"url":"b"}]`)
		tr.photos.EXPECT().ListImages(gomock.Any()).Return(raw, nil)

		rec := tr.do(http.MethodGet, "/images", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, string(raw), rec.Body.String())
	})

	t.Run("upstream error mirrored", func(t *testing.T) {
		tr := newTestRouter(t, configured())
		tr.photos.EXPECT().ListImages(gomock.Any()).
			Return(nil, &adapter.UpstreamError{StatusCode: http.StatusNotFound, Body: `relation "images" does not exist`})

		rec := tr.do(http.MethodGet, "/images", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"relation \"images\" does not exist"}`, rec.Body.String())
	})
}

func TestPhotos(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		filter     models.PhotoFilter
		result     []models.Photo
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all",
			target:     "/photos",
			result:     []models.Photo{{Etapa: "a", ImgURL: "u1"}, {Etapa: "b", ImgURL: "u2", Comentario: strPtr("c")}},
			wantStatus: http.StatusOK,
			wantBody:   `[{"etapa":"a","img_url":"u1"},{"etapa":"b","img_url":"u2","comentario":"c"}]`,
		},
		{
			name:       "empty list",
			target:     "/photos",
			result:     []models.Photo{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "filtered",
			target:     "/photos?etapa=floracion",
			filter:     models.PhotoFilter{Etapa: "floracion"},
			result:     []models.Photo{{Etapa: "floracion", ImgURL: "u"}},
			wantStatus: http.StatusOK,
			wantBody:   `[{"etapa":"floracion","img_url":"u"}]`,
		},
		{
			name:       "filter without matches",
			target:     "/photos?etapa=none",
			filter:     models.PhotoFilter{Etapa: "none"},
			err:        service.ErrNoPhotosFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"no photos found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(t, configured())
			tr.photos.EXPECT().ListPhotos(gomock.Any(), tt.filter).Return(tt.result, tt.err)

			rec := tr.do(http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
