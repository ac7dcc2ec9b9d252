package walk

import (
	"fmt"
	"math"
)

// weight returns the unnormalized transition weight u → v under the agent's
// policy. u is always the current vertex. Every rule is spelled out in full
// here rather than layered, so the order of the avoidance checks is explicit.
func (a *Agent) weight(u, v int) (float64, error) {
	switch a.policy {
	case SRW, LZRW:
		return 1, nil

	case BiasedRW:
		return a.degreeBias(v)

	case NBRW:
		if a.isPrev(v) {
			return Epsilon, nil
		}
		return a.degreeBias(v)

	case SARW:
		if a.visits[v] > 0 {
			return Epsilon, nil
		}
		return a.degreeBias(v)

	case BloomRW:
		if a.filter.Query(v) {
			return Epsilon, nil
		}
		return a.degreeBias(v)

	case VARW:
		if a.nearPrev(v) || a.isPrev(v) {
			return Epsilon, nil
		}
		return a.degreeBias(v)

	case HybridRW:
		if a.isPrev(v) || a.nearPrev(v) || a.filter.Query(v) {
			return Epsilon, nil
		}
		return a.degreeBias(v)

	case KHistory, KHistoryFIFO, KHistoryLRU:
		if a.hist.Contains(v) {
			return Epsilon, nil
		}
		return a.degreeBias(v)

	case EigenvecRW, ClosenessRW, BetweennessRW, EccentricityRW:
		return math.Pow(a.scores[v]+Epsilon, a.alpha), nil

	case MERW:
		pu := a.psi[u]
		if pu == 0 {
			return 0, fmt.Errorf("ψ₁(%d)=0: %w", u, ErrDegenerateSpectrum)
		}
		return (1 / a.lambda) * (a.psi[v] / pu), nil
	}

	return 0, fmt.Errorf("weight: %w", ErrUnknownPolicy)
}

// degreeBias returns deg(v)^α.
func (a *Agent) degreeBias(v int) (float64, error) {
	d, err := a.g.Degree(v)
	if err != nil {
		return 0, err
	}

	return math.Pow(float64(d), a.alpha), nil
}

// isPrev reports whether v is the vertex occupied just before the current one.
func (a *Agent) isPrev(v int) bool {
	t, ok := a.PrevVertex(1)

	return ok && t == v
}

// nearPrev reports whether v is adjacent to the previously occupied vertex.
func (a *Agent) nearPrev(v int) bool {
	t, ok := a.PrevVertex(1)

	return ok && a.g.HasEdge(t, v)
}
