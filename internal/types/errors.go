package types

import "errors"

// Sentinel errors for pipeline configuration validation. Using sentinels
// allows callers to match with errors.Is for reliable error handling.
var (
	// ErrInvalidSessionCount is returned when the simulation session count
	// is zero or negative. This is a hard configuration error surfaced
	// before any simulation work starts.
	ErrInvalidSessionCount = errors.New("session count must be >= 1")

	// ErrNilProfile is returned when a simulator is built without a profile.
	ErrNilProfile = errors.New("pattern profile must not be nil")

	// ErrUnknownArtifactKind is returned for an unrecognized kind tag.
	ErrUnknownArtifactKind = errors.New("unknown artifact kind")
)
