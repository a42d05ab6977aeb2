package practicesession

import (
	"fmt"
	"strings"

	"github.com/careerpilot/backend/internal/domain/questionbank"
)

// DefaultLength is the number of questions in a standard session.
const DefaultLength = 6

// SessionConfig holds the parameters a session is built from.
type SessionConfig struct {
	Position string
	Industry string
	Tier     questionbank.DifficultyTier
	Length   int // requested question count; fewer are used when pools run out
}

// DefaultConfig returns a config with the standard length and entry tier.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		Tier:   questionbank.TierEntry,
		Length: DefaultLength,
	}
}

// Validate checks the config and returns an error wrapping
// ErrInvalidConfiguration.
func (c SessionConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Position) == "":
		return fmt.Errorf("%w: position is required", ErrInvalidConfiguration)
	case strings.TrimSpace(c.Industry) == "":
		return fmt.Errorf("%w: industry is required", ErrInvalidConfiguration)
	case c.Length <= 0:
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidConfiguration, c.Length)
	case !c.Tier.Valid():
		return fmt.Errorf("%w: unknown difficulty tier %q", ErrInvalidConfiguration, c.Tier)
	}
	return nil
}
