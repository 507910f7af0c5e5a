package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single place participant passwords are stored and checked.
type Credentials interface {
	Hash(password string) (string, error)
	Matches(stored, supplied string) bool
}

// NewCredentials returns the scheme named by PASSWORD_SCHEME.
func NewCredentials(scheme string) (Credentials, error) {
	switch scheme {
	case "", "plain":
		return PlainCredentials{}, nil
	case "bcrypt":
		return BcryptCredentials{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// PlainCredentials stores passwords as given and compares them exactly.
type PlainCredentials struct{}

func (PlainCredentials) Hash(password string) (string, error) { return password, nil }

func (PlainCredentials) Matches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptCredentials stores bcrypt hashes.
type BcryptCredentials struct {
	Cost int
}

func (c BcryptCredentials) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), c.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (BcryptCredentials) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
