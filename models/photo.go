package models

// PhotoColumns is the fixed projection used when listing photos.
const PhotoColumns = "etapa,img_url,comentario"

// Photo is a row of the remote "photos" table describing an uploaded image.
type Photo struct {
	// Etapa is the crop stage label the picture was taken at.
	Etapa string `json:"etapa"`

	// ImgURL is the public URL of the object in the bucket.
	ImgURL string `json:"img_url"`

	// Comentario is an optional free-text note.
	Comentario *string `json:"comentario,omitempty"`
}

// TableName returns the name of the remote table holding photo metadata.
func (p Photo) TableName() string {
	return "photos"
}

// PhotoFilter narrows GET /photos. An empty Etapa lists every photo.
type PhotoFilter struct {
	Etapa string
}

// Object is a binary payload destined for the object store.
type Object struct {
	// Key is the object name inside the bucket.
	Key         string
	ContentType string
	Data        []byte
}

// PhotoUpload is a validated POST /upload request.
type PhotoUpload struct {
	Etapa      string  `validate:"required,max=100"`
	Comentario *string `validate:"omitempty,max=1000"`
	Object     Object
}

// UploadResult is the outcome of a successful upload.
type UploadResult struct {
	URL   string
	Photo Photo
}
