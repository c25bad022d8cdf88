package primitives

import "github.com/google/uuid"

// ValidateUETR checks that s is a canonical UUID v4 string, the form
// required for block 3 tag 121 (Unique End-to-end Transaction
// Reference).
func ValidateUETR(s string) error {
	id, err := uuid.Parse(s)
	if err != nil || len(s) != 36 {
		return newFormatError("T99", "121", "uetr", "UUID v4", s,
			"UETR must be a canonical UUID")
	}
	if id.Version() != 4 {
		return newFormatError("T99", "121", "uetr", "UUID v4", s,
			"UETR must be a version 4 UUID")
	}
	return nil
}

// NewUETR generates a fresh random UETR, used by sample/fixture
// construction.
func NewUETR() string {
	return uuid.New().String()
}
