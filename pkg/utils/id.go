package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a 32-char hex id (uuid v4 without dashes).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidID reports whether s is a well-formed record id.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
