// Package runid generates identifiers for simulation runs. A run ID is a
// UUIDv7 encoded as a 26-character Crockford base32 string, so IDs sort by
// creation time and paste cleanly into filenames and log searches.
package runid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// New returns a fresh run identifier.
func New() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating run id: %w", err)
	}
	return Encode(id), nil
}

// Encode renders a UUID as a 26-character base32 run identifier.
func Encode(id uuid.UUID) string {
	result := make([]byte, 26)

	// Encode the 128 bits big-endian in 5-bit groups, zero-padded at the
	// tail.
	for i := 0; i < 26; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if byteIndex < 16 {
			if bitIndex <= 3 {
				value = (id[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				value = (id[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= id[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}
		result[i] = alphabet[value]
	}

	return string(result)
}

// Validate checks that a run ID is 26 characters of valid base32
// representing at most 128 bits.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("run ID must be exactly 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("run ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
