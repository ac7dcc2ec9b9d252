// Package history implements the bounded recency buffer used by the
// k-history walkers to remember the last few vertices they occupied.
//
// Three eviction policies are supported:
//
//	Plain  always push; duplicates allowed; oldest entry dropped when full.
//	FIFO   push only if absent; oldest dropped when full.
//	LRU    remove the prior occurrence, then push; least recently pushed
//	       dropped when full.
//
// Capacities are small (three by default), so membership is an exact linear
// scan.
package history

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidCapacity is returned by New for a capacity below one.
	ErrInvalidCapacity = errors.New("history: invalid capacity")

	// ErrUnknownPolicy is returned for an unrecognized eviction policy.
	ErrUnknownPolicy = errors.New("history: unknown policy")
)

// Policy selects how Push treats duplicates.
type Policy int

const (
	// Plain is a true FIFO ring that keeps duplicates.
	Plain Policy = iota
	// FIFO suppresses duplicates and evicts by insertion order.
	FIFO
	// LRU refreshes duplicates and evicts by recency.
	LRU
)

var policyNames = [...]string{
	Plain: "plain",
	FIFO:  "fifo",
	LRU:   "lru",
}

// String returns the lower-case policy name.
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

// ParsePolicy maps "plain", "fifo" or "lru" to a Policy.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return Policy(p), nil
		}
	}

	return 0, fmt.Errorf("ParsePolicy(%q): %w", name, ErrUnknownPolicy)
}

// Buffer is a fixed-capacity recency buffer. Items are kept oldest first.
type Buffer struct {
	capacity int
	policy   Policy
	items    []int
}

// New returns an empty Buffer holding at most capacity entries.
//
// Errors:
//   - ErrInvalidCapacity: capacity < 1.
//   - ErrUnknownPolicy: policy is not Plain, FIFO or LRU.
func New(capacity int, policy Policy) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrInvalidCapacity)
	}
	if policy < Plain || policy > LRU {
		return nil, fmt.Errorf("New(policy=%d): %w", int(policy), ErrUnknownPolicy)
	}

	return &Buffer{
		capacity: capacity,
		policy:   policy,
		items:    make([]int, 0, capacity+1),
	}, nil
}

// Push records v according to the buffer's policy.
// Complexity: O(capacity).
func (b *Buffer) Push(v int) {
	switch b.policy {
	case FIFO:
		if b.Contains(v) {
			return
		}
	case LRU:
		if i := slices.Index(b.items, v); i >= 0 {
			b.items = slices.Delete(b.items, i, i+1)
		}
	}
	b.items = append(b.items, v)
	if len(b.items) > b.capacity {
		b.items = slices.Delete(b.items, 0, 1)
	}
}

// Contains reports whether v is currently held.
func (b *Buffer) Contains(v int) bool {
	return slices.Contains(b.items, v)
}

// Len returns the number of entries held.
func (b *Buffer) Len() int { return len(b.items) }

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int { return b.capacity }

// Policy returns the eviction policy.
func (b *Buffer) Policy() Policy { return b.policy }

// Items returns a copy of the entries, oldest first.
func (b *Buffer) Items() []int {
	return slices.Clone(b.items)
}
