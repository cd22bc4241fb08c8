package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates no preview could be located or generated.
	ErrNotFound = errors.New("preview not found")

	// ErrInvalidArgument indicates malformed input, such as non-positive
	// target dimensions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfig indicates a malformed configuration value.
	// Configuration errors are fatal and surface to the caller.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPattern indicates a mime type pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid mime type pattern")

	// ErrProviderUnavailable indicates a provider factory failed to
	// materialise its provider. Resolution continues with other candidates.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrGeneratorUnavailable indicates no generator has been wired to the
	// preview service. Resolution queries still work without one.
	ErrGeneratorUnavailable = errors.New("generator unavailable")
)
