package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	FirstName       string  `json:"first_name" validate:"required,max=100"`
	LastName        string  `json:"last_name" validate:"required,max=100"`
	Username        string  `json:"username" validate:"required,max=64"`
	Email           *string `json:"email" validate:"omitempty,trimmed_email"`
	PhoneNumber     *string `json:"phonenumber" validate:"omitempty,max=32"`
	Password        string  `json:"password" validate:"required"`
	ConfirmPassword string  `json:"confirm_password" validate:"required"`
	Birthday        string  `json:"birthday" validate:"required,datetime=2006-01-02"`
}

// LoginRequest is the body of POST /login.
//
// Identifier may be an email, a phone number (digits only) or a username.
// Older clients send the identifier under "email" or "username"; see
// [LoginRequest.ResolvedIdentifier].
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password" validate:"required"`
}

// ResolvedIdentifier returns the first non-empty of Identifier, Email and
// Username.
func (l LoginRequest) ResolvedIdentifier() string {
	switch {
	case l.Identifier != "":
		return l.Identifier
	case l.Email != "":
		return l.Email
	default:
		return l.Username
	}
}

// UpdateUserRequest is the body of PATCH /users/{user_id}.
// Every field is optional; nil and empty values are ignored.
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	Username    *string `json:"username" validate:"omitempty,max=64"`
	Email       *string `json:"email" validate:"omitempty,trimmed_email"`
	PhoneNumber *string `json:"phonenumber" validate:"omitempty,max=32"`
	Birthday    *string `json:"birthday" validate:"omitempty,optional_date"`

	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
	ConfirmPassword *string `json:"confirm_password"`
}

// PasswordChangeRequested reports whether current, new and confirm passwords
// are all present and non-empty.
func (u UpdateUserRequest) PasswordChangeRequested() bool {
	return nonEmpty(u.CurrentPassword) && nonEmpty(u.NewPassword) && nonEmpty(u.ConfirmPassword)
}

// DeleteUserRequest is the body of DELETE /users/{user_id}.
type DeleteUserRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
