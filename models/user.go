package models

import "time"

// PublicUserColumns is the column projection requested from the remote data
// API whenever a user row is returned to a caller. It omits
// password_hash.
const PublicUserColumns = "id,first_name,last_name,email,phonenumber,username,birthday,created_at"

// UserColumns is the projection used when the stored password hash is needed
// for credential verification. Rows fetched with it never leave the service
// layer.
const UserColumns = PublicUserColumns + ",password_hash"

// User is a full row of the remote "users" table.
// It carries the password hash and must never be written to an HTTP response;
// use [User.Public] to obtain the safe representation.
type User struct {
	// ID is the primary key assigned by the remote database.
	ID int64 `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is optional; stored lowercased and trimmed.
	Email *string `json:"email"`

	// PhoneNumber is optional; stored as digits only.
	PhoneNumber *string `json:"phonenumber"`

	Username string `json:"username"`

	// PasswordHash is an encoded argon2id, bcrypt or pbkdf2-sha256 hash.
	PasswordHash string `json:"password_hash"`

	// Birthday is a calendar date in YYYY-MM-DD form.
	Birthday string `json:"birthday"`

	// CreatedAt is set by the remote database on insert.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// PublicUser is the subset of a user row that is safe to return to callers.
type PublicUser struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       *string    `json:"email"`
	PhoneNumber *string    `json:"phonenumber"`
	Username    string     `json:"username"`
	Birthday    string     `json:"birthday"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Public strips credential material from u.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Username:    u.Username,
		Birthday:    u.Birthday,
		CreatedAt:   u.CreatedAt,
	}
}

// NewUser is the insert payload for a user row.
type NewUser struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  *string `json:"phonenumber,omitempty"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"password_hash"`
	Birthday     string  `json:"birthday"`
}

// UserPatch is a partial update of a user row keyed by column name.
// Only the columns present in the map are sent to the remote data API.
type UserPatch map[string]any

// Column names accepted in a [UserPatch].
const (
	ColumnFirstName    = "first_name"
	ColumnLastName     = "last_name"
	ColumnEmail        = "email"
	ColumnPhoneNumber  = "phonenumber"
	ColumnUsername     = "username"
	ColumnBirthday     = "birthday"
	ColumnPasswordHash = "password_hash"
)

// TableName returns the name of the remote table holding users.
func (u User) TableName() string {
	return "users"
}
