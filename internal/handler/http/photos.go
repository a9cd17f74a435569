package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/roya-gateway/internal/app"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/utils"
	"github.com/MKhiriev/roya-gateway/models"
)

// multipartMemory is the part of an upload kept in memory; the rest spills
// to temporary files.
const multipartMemory = 8 << 20

// upload accepts a multipart form with "etapa", optional "comentario" and
// "file".
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	if err := r.ParseMultipartForm(min(multipartMemory, h.opts.MaxUploadBytes)); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, ErrUploadTooLarge)
			return
		}
		log.Err(err).Msg("invalid multipart form")
		writeError(w, r, ErrInvalidMultipart)
		return
	}
	defer r.MultipartForm.RemoveAll()

	upload := models.PhotoUpload{Etapa: r.FormValue("etapa")}
	if values, ok := r.MultipartForm.Value["comentario"]; ok && len(values) > 0 {
		upload.Comentario = &values[0]
	}

	object, err := readFormObject(r, "file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		log.Err(err).Msg("error reading uploaded file")
		writeError(w, r, ErrInvalidMultipart)
		return
	}
	upload.Object = object

	result, err := h.services.PhotoService.Upload(r.Context(), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("url", result.URL).Int("size", len(object.Data)).Msg(app.MsgImageUploaded)
	utils.WriteJSON(w, models.UploadResponse{
		Message: app.MsgImageUploaded,
		URL:     result.URL,
		Photo:   result.Photo,
	}, http.StatusOK)
}

// readFormObject reads the file part called field. The content type falls
// back to sniffing when the client did not send a specific one.
func readFormObject(r *http.Request, field string) (models.Object, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return models.Object{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Object{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return models.Object{Key: header.Filename, ContentType: contentType, Data: data}, nil
}

func (h *Handler) images(w http.ResponseWriter, r *http.Request) {
	raw, err := h.services.PhotoService.ListImages(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

func (h *Handler) photos(w http.ResponseWriter, r *http.Request) {
	filter := models.PhotoFilter{Etapa: r.URL.Query().Get("etapa")}

	photos, err := h.services.PhotoService.ListPhotos(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, photos, http.StatusOK)
}
