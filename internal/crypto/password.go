// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	prefixArgon2id = "$argon2id$"
	prefixPBKDF2   = "$pbkdf2-sha256$"
)

// Argon2Params are the argon2id cost parameters encoded in every new hash.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params: 3 iterations, 64 MiB, 4 lanes, 16-byte salt, 32-byte key.
var DefaultArgon2Params = Argon2Params{
	Time:    3,
	Memory:  64 * 1024,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

// Upper bounds accepted when decoding a stored argon2id hash.
const (
	maxArgon2Time    = 16
	maxArgon2Memory  = 512 * 1024
	maxArgon2Threads = 64
	maxArgon2KeyLen  = 128
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	params Argon2Params
	rand   io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] with [DefaultArgon2Params].
func NewPasswordHasher() PasswordHasher {
	return NewPasswordHasherWithParams(DefaultArgon2Params)
}

// NewPasswordHasherWithParams constructs a [PasswordHasher] that hashes with
// params. Verification of stored hashes always uses the parameters encoded in
// the hash itself.
func NewPasswordHasherWithParams(params Argon2Params) PasswordHasher {
	return &passwordHasher{params: params, rand: rand.Reader}
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(hash, password string) error {
	switch {
	case strings.HasPrefix(hash, prefixArgon2id):
		return verifyArgon2id(hash, password)
	case isBcrypt(hash):
		return verifyBcrypt(hash, password)
	case strings.HasPrefix(hash, prefixPBKDF2):
		return verifyPBKDF2SHA256(hash, password)
	default:
		return ErrUnknownHashFormat
	}
}

// NeedsRehash implements [PasswordHasher].
func (h *passwordHasher) NeedsRehash(hash string) bool {
	if !strings.HasPrefix(hash, prefixArgon2id) {
		return true
	}

	decoded, err := decodeArgon2id(hash)
	if err != nil {
		return true
	}

	p := decoded.params
	return p.Time != h.params.Time ||
		p.Memory != h.params.Memory ||
		p.Threads != h.params.Threads ||
		uint32(len(decoded.salt)) != h.params.SaltLen ||
		uint32(len(decoded.key)) != h.params.KeyLen
}

type argon2idHash struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

func decodeArgon2id(hash string) (argon2idHash, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return argon2idHash{}, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return argon2idHash{}, ErrMalformedHash
	}

	var p Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return argon2idHash{}, ErrMalformedHash
	}
	if p.Time == 0 || p.Time > maxArgon2Time ||
		p.Memory == 0 || p.Memory > maxArgon2Memory ||
		p.Threads == 0 || p.Threads > maxArgon2Threads {
		return argon2idHash{}, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return argon2idHash{}, ErrMalformedHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxArgon2KeyLen {
		return argon2idHash{}, ErrMalformedHash
	}

	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))

	return argon2idHash{params: p, salt: salt, key: key}, nil
}

func verifyArgon2id(hash, password string) error {
	decoded, err := decodeArgon2id(hash)
	if err != nil {
		return err
	}

	p := decoded.params
	candidate := argon2.IDKey([]byte(password), decoded.salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	if subtle.ConstantTimeCompare(candidate, decoded.key) != 1 {
		return ErrMismatchedPassword
	}

	return nil
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}

func verifyBcrypt(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatchedPassword
	default:
		return fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
