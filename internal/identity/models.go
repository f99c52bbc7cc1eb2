// Package identity implements the identity collaborator: the authoritative
// account directory, session credential verification, and the privileged
// admin capability used by the account deletion flow.
package identity

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kith-app/kith/pkg/domain"
)

// ErrNotFound is returned by stores when no identity matches.
var ErrNotFound = errors.New("identity not found")

// Identity is the authoritative account record.
type Identity struct {
	ID           domain.UserID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HashPassword derives a bcrypt hash for storage as credential metadata.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
