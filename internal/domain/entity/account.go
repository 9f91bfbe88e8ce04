// Package entity holds the garden game's domain types. They carry no persistence tags.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountID is the opaque key assigned once when a credential is created.
// Every per-user category document is stored under the same value.
type AccountID uuid.UUID

// NilAccountID is the zero identifier, never assigned to a stored account.
var NilAccountID = AccountID(uuid.Nil)

// ParseAccountID parses the textual form produced by AccountID.String.
func ParseAccountID(s string) (AccountID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilAccountID, err
	}

	return AccountID(id), nil
}

func (id AccountID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the identifier was never assigned.
func (id AccountID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id AccountID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *AccountID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// NormalizeUsername case-folds a username. Uniqueness is checked on the normalized form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Credential is the login identity of an account.
type Credential struct {
	ID           AccountID
	Username     string // normalized, immutable after creation
	PasswordHash string
	CreatedAt    time.Time
}
