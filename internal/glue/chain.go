package glue

// direction orients a growing chain. A rightward search extends the end of
// the chain with reads whose prefix matches the tail read's suffix. A
// leftward search extends the start with reads whose suffix matches the
// head read's prefix.
type direction int

const (
	leftward direction = iota
	rightward
)

// buildChain greedily grows a chain of gluable overlaps out from start,
// removing each glued read from the pool as it goes. At every step the
// longest gluable overlap against the chain's open end wins. The search
// stops when no remaining read is gluable. The caller's pool slice is
// left as it was, removals copy.
func buildChain(start Read, pool []Read, dir direction) []Overlap {
	chain := []Overlap{}
	current := start

	for len(pool) > 0 {
		best, found := bestOverlap(current, pool, dir)
		if !found {
			break
		}

		if dir == rightward {
			chain = append(chain, best)
			current = best.Right
		} else {
			chain = append([]Overlap{best}, chain...)
			current = best.Left
		}

		pool = removeRead(pool, current)
	}

	return chain
}

// bestOverlap scores current against every read in the pool and returns the
// gluable overlap with the greatest length. Ties go to the earlier read in
// pool order, which keeps the greedy walk deterministic.
func bestOverlap(current Read, pool []Read, dir direction) (best Overlap, found bool) {
	for _, candidate := range pool {
		o := Overlap{Left: current, Right: candidate}
		if dir == leftward {
			o = Overlap{Left: candidate, Right: current}
		}
		o.Length = overlapLength(o.Left, o.Right)

		if !o.gluable() {
			continue
		}

		if !found || o.Length > best.Length {
			best = o
			found = true
		}
	}

	return
}

// removeRead returns the pool without the first read equal to r.
func removeRead(pool []Read, r Read) []Read {
	for i, p := range pool {
		if p == r {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}

	return pool
}
