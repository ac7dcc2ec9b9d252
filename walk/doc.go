// Package walk implements random-walk agents that explore a graph until
// every vertex has been visited, recording cover and hitting times.
//
// Every agent advances the same way: weigh each neighbor of the current
// vertex, draw one with probability proportional to its weight, move there.
// A Policy decides the weight:
//
//	SRW, LZRW             1 (LZRW first stays put with probability laziness)
//	BiasedRW              deg(v)^α
//	NBRW                  ε if v is the previous vertex, else deg(v)^α
//	SARW                  ε if v was visited before, else deg(v)^α
//	BloomRW               ε if the Bloom filter reports v, else deg(v)^α
//	VARW                  ε if v is, or neighbors, the previous vertex, else deg(v)^α
//	HybridRW              ε under any NBRW/VARW/BloomRW rule, else deg(v)^α
//	kHistory[_FIFO|_LRU]  ε if v is in the last-k buffer, else deg(v)^α
//	*CentralityRW         (score(v) + ε)^α with scores cached at construction
//	MERW                  ψ₁(v) / (λ₁ ψ₁(u)) from the adjacency spectrum
//
// ε (Epsilon) is small but non-zero, so a walker surrounded by discouraged
// neighbors still moves instead of stalling.
//
// Randomness comes only from the *rand.Rand an agent owns (WithRand or
// WithSeed), so a run is reproducible from its seed and agents can run in
// parallel against a shared read-only graph.
//
// Errors from Advance are fatal for the run: an isolated vertex or weights
// that collapse to zero mean the experiment is invalid, and the agent does
// not retry.
package walk
