package models

// IdentifierKind tells which user column a login identifier is matched against.
type IdentifierKind int

const (
	// IdentifierUsername matches the username column exactly.
	IdentifierUsername IdentifierKind = iota
	// IdentifierEmail matches the email column case-insensitively.
	IdentifierEmail
	// IdentifierPhone matches the phonenumber column exactly.
	IdentifierPhone
)

// Column returns the remote column the kind is looked up by.
func (k IdentifierKind) Column() string {
	switch k {
	case IdentifierEmail:
		return ColumnEmail
	case IdentifierPhone:
		return ColumnPhoneNumber
	default:
		return ColumnUsername
	}
}

// String implements fmt.Stringer.
func (k IdentifierKind) String() string {
	switch k {
	case IdentifierEmail:
		return "email"
	case IdentifierPhone:
		return "phone"
	default:
		return "username"
	}
}

// Identifier is a classified login identifier.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}
