package rankfast

import (
	"context"
	"sync"
)

// pairKey is the canonical identity of an unordered pair of input
// indices, with lo < hi always.
type pairKey struct {
	lo, hi int
}

// canonicalKey maps both argument orders of a pair onto the same key.
// flipped reports that the caller's order was (hi, lo).
func canonicalKey(a, b int) (key pairKey, flipped bool) {
	if a < b {
		return pairKey{lo: a, hi: b}, false
	}
	return pairKey{lo: b, hi: a}, true
}

// cache memoizes resolved comparisons so no unordered pair is ever sent
// to the oracle twice. Entries are never evicted or overwritten; the
// map only grows for the lifetime of one ranking run.
type cache[E any] struct {
	oracle Oracle[E]
	items  []E

	mu sync.Mutex
	// results holds, per canonical pair, whether items[lo] precedes items[hi].
	results map[pairKey]bool
	queries int
}

func newCache[E any](items []E, oracle Oracle[E]) *cache[E] {
	return &cache[E]{
		oracle:  oracle,
		items:   items,
		results: make(map[pairKey]bool),
	}
}

// precedes reports whether items[a] ranks before items[b]. A cached
// pair is answered with no oracle call; an unresolved pair costs
// exactly one. The oracle sees the items in the caller's order, so an
// interactive judge is asked the question the algorithm actually posed.
func (c *cache[E]) precedes(ctx context.Context, a, b int) (bool, error) {
	key, flipped := canonicalKey(a, b)

	c.mu.Lock()
	if loPrecedes, ok := c.results[key]; ok {
		c.mu.Unlock()
		return loPrecedes != flipped, nil
	}
	c.mu.Unlock()

	pref, err := c.oracle.Compare(ctx, c.items[a], c.items[b])
	if err != nil {
		return false, NewOracleError(err, c.items[a], c.items[b])
	}
	if !pref.valid() {
		return false, NewOracleError(ErrNoStrictPreference, c.items[a], c.items[b])
	}
	aPrecedes := pref == PreferA
	loPrecedes := aPrecedes != flipped

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.results[key]; ok {
		// Another resolution of the same pair won the insert. Keep the
		// first stored result; a disagreement means the oracle broke
		// the consistency contract.
		if prev != loPrecedes {
			return false, NewInconsistentComparatorError(c.items[key.lo], c.items[key.hi])
		}
		return aPrecedes, nil
	}
	c.results[key] = loPrecedes
	c.queries++
	return aPrecedes, nil
}

// count returns the number of distinct pairs resolved through the oracle.
func (c *cache[E]) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queries
}
