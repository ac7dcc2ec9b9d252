package walk

import "errors"

// Sentinel errors. Configuration errors surface from New; the rest surface
// from Advance/PickNext and mean the run is invalid and must be aborted.
var (
	// ErrNilGraph is returned by New for a nil graph.
	ErrNilGraph = errors.New("walk: graph is nil")

	// ErrStartNotFound is returned by New when the start vertex is absent.
	ErrStartNotFound = errors.New("walk: start vertex not found")

	// ErrUnknownPolicy is returned for a policy name or value that does not exist.
	ErrUnknownPolicy = errors.New("walk: unknown policy")

	// ErrInvalidOption is returned by New when an Option received a meaningless value.
	ErrInvalidOption = errors.New("walk: invalid option")

	// ErrNeedStructure is returned by New when a centrality or maximal-entropy
	// policy is requested without WithStructure.
	ErrNeedStructure = errors.New("walk: structural scores required")

	// ErrDegenerateSpectrum signals a non-positive dominant eigenvalue or a zero
	// eigenvector component at the current vertex.
	ErrDegenerateSpectrum = errors.New("walk: degenerate adjacency spectrum")

	// ErrIsolatedVertex is returned when the current vertex has no neighbors.
	ErrIsolatedVertex = errors.New("walk: isolated vertex")

	// ErrInvalidWeight is returned when a policy produced a negative or NaN weight.
	ErrInvalidWeight = errors.New("walk: invalid transition weight")

	// ErrZeroWeight is returned when the neighbor weights sum to zero or overflow.
	ErrZeroWeight = errors.New("walk: transition weights collapse")

	// ErrNoCandidate is returned when the cumulative scan selects no neighbor.
	ErrNoCandidate = errors.New("walk: no neighbor selected")
)
