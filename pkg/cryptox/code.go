package cryptox

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
)

// Invite codes are 16 characters of Crockford base32 (80 bits of entropy),
// stored and displayed uppercase in dash-separated groups of four:
//
//	K3QT-8WM2-9XNR-04VH
//
// The alphabet omits I, L, O and U so codes survive human transcription.
// Input is accepted case-insensitively, with or without separators.
const (
	codeAlphabet  = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	codeRawLength = 16
	codeGroupSize = 4
	codeRandBytes = 10 // 10 bytes * 8 bits / 5 bits-per-char = 16 chars
)

var codeEncoding = base32.NewEncoding(codeAlphabet).WithPadding(base32.NoPadding)

// ErrBadCode reports input that cannot be a code in any casing or grouping.
var ErrBadCode = errors.New("cryptox: malformed code")

// GenerateCode returns a fresh invite code in canonical grouped form.
func GenerateCode() (string, error) {
	buf := make([]byte, codeRandBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return groupCode(codeEncoding.EncodeToString(buf)), nil
}

// CanonicalCode normalizes user input into the canonical stored form:
// separators stripped, letters uppercased, Crockford aliases folded
// (O -> 0, I/L -> 1), then regrouped. Returns ErrBadCode if the result is
// not a valid code.
func CanonicalCode(input string) (string, error) {
	var b strings.Builder
	b.Grow(codeRawLength)

	for _, r := range strings.ToUpper(strings.TrimSpace(input)) {
		switch r {
		case '-', ' ':
			continue
		case 'O':
			r = '0'
		case 'I', 'L':
			r = '1'
		}
		if !strings.ContainsRune(codeAlphabet, r) {
			return "", ErrBadCode
		}
		b.WriteRune(r)
	}

	raw := b.String()
	if len(raw) != codeRawLength {
		return "", ErrBadCode
	}
	return groupCode(raw), nil
}

func groupCode(raw string) string {
	groups := make([]string, 0, codeRawLength/codeGroupSize)
	for i := 0; i < len(raw); i += codeGroupSize {
		groups = append(groups, raw[i:i+codeGroupSize])
	}
	return strings.Join(groups, "-")
}
