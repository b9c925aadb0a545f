package partialspan

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package. Use errors.Is to test for them;
// ErrInvalidArgument and ErrExporterRejected are typically wrapped with
// additional context via fmt.Errorf("%w: ...", ...).
var (
	// ErrInvalidArgument is returned by NewProcessor when a Config field
	// fails validation.
	ErrInvalidArgument = errors.New("partialspan: invalid argument")

	// ErrExporterRejected is returned (and logged, never propagated to the
	// host SDK) when the configured LogExporter returns an error from Export.
	ErrExporterRejected = errors.New("partialspan: exporter rejected record")

	// ErrAlreadyShutDown is returned by Shutdown when called more than once.
	ErrAlreadyShutDown = errors.New("partialspan: processor already shut down")

	// ErrShutdownIncomplete is returned by Shutdown when the scheduler could
	// not be joined within the requested timeout, the configured LogExporter
	// reported an unclean shutdown, or both.
	ErrShutdownIncomplete = errors.New("partialspan: shutdown did not complete cleanly")
)

// invalidArgument wraps ErrInvalidArgument with the offending field name.
func invalidArgument(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, field, reason)
}
