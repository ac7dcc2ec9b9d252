package builder

// IDFn maps a zero-based vertex index to its vertex ID.
// It must be pure and injective: the same idx always yields the same ID and
// distinct indices yield distinct IDs.
type IDFn func(idx int) int

// OneBasedIDFn numbers vertices 1..n. This is the default.
func OneBasedIDFn(idx int) int { return idx + 1 }

// ZeroBasedIDFn numbers vertices 0..n-1.
func ZeroBasedIDFn(idx int) int { return idx }

// OffsetIDFn numbers vertices base, base+1, ...
// Useful for composing several constructors into one graph without
// overlapping IDs.
func OffsetIDFn(base int) IDFn {
	return func(idx int) int { return base + idx }
}

// WithZeroBasedIDs sets the ID scheme to ZeroBasedIDFn.
func WithZeroBasedIDs() BuilderOption {
	return WithIDScheme(ZeroBasedIDFn)
}

// WithOffsetIDs sets the ID scheme to OffsetIDFn(base).
func WithOffsetIDs(base int) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}
