package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const maxPBKDF2Rounds = 10_000_000

// ab64 is passlib's "adapted base64": the standard alphabet with '.' in place
// of '+' and no padding.
var ab64 = strings.NewReplacer(".", "+")

func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(ab64.Replace(s))
}

// verifyPBKDF2SHA256 checks passlib's $pbkdf2-sha256$<rounds>$<salt>$<checksum>.
func verifyPBKDF2SHA256(hash, password string) error {
	parts := strings.Split(hash, "$")
	if len(parts) != 5 {
		return ErrMalformedHash
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds < 1 || rounds > maxPBKDF2Rounds {
		return ErrMalformedHash
	}

	salt, err := decodeAB64(parts[3])
	if err != nil {
		return ErrMalformedHash
	}

	checksum, err := decodeAB64(parts[4])
	if err != nil || len(checksum) == 0 {
		return ErrMalformedHash
	}

	candidate := pbkdf2.Key([]byte(password), salt, rounds, len(checksum), sha256.New)
	if subtle.ConstantTimeCompare(candidate, checksum) != 1 {
		return ErrMismatchedPassword
	}

	return nil
}
