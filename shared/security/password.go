// Package security provides password hashing and verification built on
// argon2id. Hashes are self-describing encoded strings carrying the salt and
// parameters used to produce them.
package security

import (
	"errors"

	"github.com/matthewhartstonge/argon2"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword hashes a plaintext password with argon2id using a fresh random
// salt. Hashing the same password twice yields different encodings.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword checks a plaintext password against an encoded hash using a
// constant-time comparison. A non-matching password returns (false, nil); an
// error is returned only when the hash itself cannot be decoded.
func VerifyPassword(password, encodedHash string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}

	return ok, nil
}
