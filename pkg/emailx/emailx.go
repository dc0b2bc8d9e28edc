// Package emailx normalizes and validates email addresses at the service
// boundary so that comparisons elsewhere are simple string equality.
package emailx

import (
	"errors"
	"net/mail"
	"strings"
)

// ErrInvalid reports an address that does not parse as an email.
var ErrInvalid = errors.New("emailx: invalid email address")

// Normalize returns the canonical form of an address: trimmed and
// lowercased. It does not validate; combine with Validate at input
// boundaries.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks that the input is a bare, parseable address
// ("user@example.com", no display name) and returns its normalized form.
func Validate(email string) (string, error) {
	normalized := Normalize(email)
	if normalized == "" {
		return "", ErrInvalid
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil {
		return "", ErrInvalid
	}

	// Reject "Name <user@host>" style input; the stored value must be the
	// bare address.
	if addr.Address != normalized {
		return "", ErrInvalid
	}

	return normalized, nil
}

// Equal reports whether two addresses are the same after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
