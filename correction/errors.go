package correction

import (
	"errors"
	"fmt"

	"github.com/mr-c/raptor/internal/stats"
)

var (
	// ErrConfiguration is returned when the parameters do not admit a correction table.
	ErrConfiguration = errors.New("invalid correction configuration")

	// ErrCorruptArtifact is returned when a stored table fails to decode.
	ErrCorruptArtifact = errors.New("corrupt correction artifact")

	// ErrFormatVersion is returned when a stored table was written in another format.
	ErrFormatVersion = errors.New("unsupported correction artifact format")

	// ErrNumericDomain is returned when the false-positive model is evaluated out of range.
	ErrNumericDomain = stats.ErrNumericDomain
)

// ConfigError describes which parameter made the configuration invalid.
//
// It matches ErrConfiguration with errors.Is.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsStale reports whether err marks a stored artifact that should be rebuilt
// rather than trusted: corrupt data or a foreign format version.
func IsStale(err error) bool {
	return errors.Is(err, ErrCorruptArtifact) || errors.Is(err, ErrFormatVersion)
}
