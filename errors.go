package raptor

import (
	"context"
	"errors"
	"fmt"

	"github.com/mr-c/raptor/correction"
)

var (
	// ErrConfiguration is returned when the parameters do not admit a correction table.
	ErrConfiguration = correction.ErrConfiguration

	// ErrCacheRead is returned when an artifact store could not be read.
	// The table can still be computed with caching disabled.
	ErrCacheRead = errors.New("correction cache read failed")

	// ErrCacheWrite is returned together with a valid table when the table
	// could not be persisted.
	ErrCacheWrite = errors.New("correction cache write failed")

	// ErrCorruptArtifact is reported for stored tables that fail to decode.
	ErrCorruptArtifact = correction.ErrCorruptArtifact

	// ErrFormatVersion is reported for stored tables of another format version.
	ErrFormatVersion = correction.ErrFormatVersion
)

// CacheError describes a failed artifact store operation.
//
// The original underlying error can be accessed via errors.Unwrap.
type CacheError struct {
	Op    string
	Key   string
	kind  error
	cause error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.kind, e.Op, e.Key, e.cause)
}

// Is matches the sentinel of the failed operation.
func (e *CacheError) Is(target error) bool { return target == e.kind }

func (e *CacheError) Unwrap() error { return e.cause }

func translateError(op, key string, err error) error {
	if err == nil {
		return nil
	}

	var ce *correction.ConfigError
	if errors.As(err, &ce) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch op {
	case "load":
		return &CacheError{Op: op, Key: key, kind: ErrCacheRead, cause: err}
	case "store":
		return &CacheError{Op: op, Key: key, kind: ErrCacheWrite, cause: err}
	}
	return err
}
