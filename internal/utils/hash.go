package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used for all password hashing operations.
// Changing them invalidates previously stored hashes, so treat them as
// part of the stored hash format.
const (
	argonMemory      = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonKeyLength   = 32
	argonSaltLength  = 16
)

// HashPassword derives an argon2id hash from the given plain-text password
// using a freshly generated random salt.
//
// The result is encoded as "<base64(salt)>$<base64(hash)>" so that the salt
// travels with the hash and VerifyPassword needs no extra state.
//
// Parameters:
//
//	password - plain-text password to hash
//
// Returns:
//
//	string - encoded salt and hash pair
//	error  - non-nil if the random salt cannot be generated
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret!")
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return encodedSalt + "$" + encodedHash, nil
}

// VerifyPassword reports whether the provided plain-text password matches the
// stored "<base64(salt)>$<base64(hash)>" pair produced by HashPassword.
//
// The comparison uses constant-time equality so the outcome does not leak
// how many hash bytes matched.
//
// Returns an error only when the stored value cannot be decoded; a decodable
// but non-matching password yields (false, nil).
func VerifyPassword(storedHash, password string) (bool, error) {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 2 {
		return false, errors.New("invalid stored password format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, err
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}
