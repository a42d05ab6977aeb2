package id

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a unique 32-character hex ID (a UUIDv4 without dashes).
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
