// Package domain holds typed identifiers shared across bounded contexts.
// Typed IDs prevent cross-type assignment at compile time.
package domain

import (
	"github.com/google/uuid"

	derrors "github.com/kith-app/kith/pkg/domain-errors"
)

// UserID identifies one Identity. The same value keys the identity record,
// the user profile row, every owned child record, and the external
// entitlement alias.
type UserID uuid.UUID

// NilUserID is the zero UserID.
var NilUserID = UserID(uuid.Nil)

// NewUserID returns a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID parses s into a UserID. Empty strings, malformed UUIDs, and
// the nil UUID are rejected; this runs at trust boundaries.
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return NilUserID, derrors.New(derrors.CodeInvalidInput, "user ID required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return NilUserID, derrors.New(derrors.CodeInvalidInput, "user ID must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return NilUserID, derrors.New(derrors.CodeInvalidInput, "user ID must not be nil")
	}
	return UserID(parsed), nil
}

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID as its canonical UUID string. Defined types do
// not inherit uuid.UUID's marshalers, so without this the ID would serialize
// as a byte array.
func (id UserID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses a canonical UUID string, applying the same rejections
// as ParseUserID.
func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := ParseUserID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// IsNil reports whether the ID is the zero UUID.
func (id UserID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
