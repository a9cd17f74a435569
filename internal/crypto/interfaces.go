// Package crypto hashes and verifies user passwords.
//
// New hashes are argon2id PHC strings. Verification additionally accepts the
// bcrypt and passlib pbkdf2-sha256 formats found in older rows, so existing
// users keep logging in without a migration.
package crypto

// PasswordHasher hashes new passwords and verifies stored hashes.
//
// Hash layout:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>      (current)
//	$2a$10$<22 char salt><31 char hash>               (bcrypt, $2b$/$2y$ too)
//	$pbkdf2-sha256$<rounds>$<ab64 salt>$<ab64 hash>   (passlib)
type PasswordHasher interface {
	// Hash returns an argon2id PHC string for password using a fresh random
	// salt.
	Hash(password string) (string, error)

	// Verify checks password against the stored hash. It returns nil on a
	// match, [ErrMismatchedPassword] on a mismatch and [ErrUnknownHashFormat]
	// or [ErrMalformedHash] when the stored value cannot be used. Callers
	// should treat every non-nil result as a failed verification.
	Verify(hash, password string) error

	// NeedsRehash reports whether hash was produced by a different scheme or
	// with different parameters than Hash currently uses.
	NeedsRehash(hash string) bool
}
