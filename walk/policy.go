package walk

import "fmt"

// Policy selects the transition rule of an Agent.
type Policy int

// Policies in the order the comparison driver reports them.
const (
	SRW            Policy = iota // simple: uniform over neighbors
	BiasedRW                     // deg(v)^α
	NBRW                         // non-backtracking
	SARW                         // self-avoiding
	BloomRW                      // avoids vertices the Bloom filter has seen
	VARW                         // vicinity-avoiding
	LZRW                         // lazy
	HybridRW                     // NBRW + VARW + BloomRW
	KHistory                     // avoids the last k vertices (duplicates kept)
	KHistoryFIFO                 // k distinct vertices, FIFO replacement
	KHistoryLRU                  // k distinct vertices, LRU replacement
	EigenvecRW                   // (eigenvector centrality + ε)^α
	ClosenessRW                  // (closeness centrality + ε)^α
	BetweennessRW                // (betweenness centrality + ε)^α
	EccentricityRW               // (eccentricity + ε)^α
	MERW                         // maximal-entropy
)

var policyNames = [...]string{
	SRW:            "SRW",
	BiasedRW:       "BiasedRW",
	NBRW:           "NBRW",
	SARW:           "SARW",
	BloomRW:        "BloomRW",
	VARW:           "VARW",
	LZRW:           "LZRW",
	HybridRW:       "HybridRW",
	KHistory:       "kHistory",
	KHistoryFIFO:   "kHistory_FIFO",
	KHistoryLRU:    "kHistory_LRU",
	EigenvecRW:     "EigenvecRW",
	ClosenessRW:    "ClosenessRW",
	BetweennessRW:  "BetweennessRW",
	EccentricityRW: "EccentricityRW",
	MERW:           "MERW",
}

// Policies returns every policy in declaration order.
func Policies() []Policy {
	out := make([]Policy, len(policyNames))
	for i := range out {
		out[i] = Policy(i)
	}

	return out
}

// ParsePolicy maps a canonical agent name such as "kHistory_LRU" to its Policy.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return Policy(p), nil
		}
	}

	return 0, fmt.Errorf("ParsePolicy(%q): %w", name, ErrUnknownPolicy)
}

// String returns the canonical agent name.
func (p Policy) String() string {
	if !p.valid() {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

func (p Policy) valid() bool { return p >= 0 && int(p) < len(policyNames) }

// UsesAlpha reports whether the bias exponent α enters the weight rule.
func (p Policy) UsesAlpha() bool {
	switch p {
	case SRW, LZRW, MERW:
		return false
	}

	return p.valid()
}

// NeedsStructure reports whether the policy consumes precomputed structural
// scores (centralities or the adjacency spectrum).
func (p Policy) NeedsStructure() bool {
	switch p {
	case EigenvecRW, ClosenessRW, BetweennessRW, EccentricityRW, MERW:
		return true
	}

	return false
}

// usesFilter reports whether MoveTo must insert into the membership filter.
func (p Policy) usesFilter() bool { return p == BloomRW || p == HybridRW }

// usesHistory reports whether MoveTo must push into the history buffer.
func (p Policy) usesHistory() bool {
	return p == KHistory || p == KHistoryFIFO || p == KHistoryLRU
}
