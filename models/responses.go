package models

// ErrorResponse is the body of every non-2xx response.
// The "detail" key is what the mobile client reads.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse carries a public user record together with a message. It is
// returned by POST /register, POST /login and PATCH /users/{user_id}.
type UserResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// DeleteUserResponse is returned by DELETE /users/{user_id}.
// Deleted is present only when the remote data API returned the removed rows.
type DeleteUserResponse struct {
	Message string       `json:"message"`
	Deleted []PublicUser `json:"deleted,omitempty"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Photo   Photo  `json:"photo"`
}
