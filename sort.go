// Package rankfast produces a fully ordered ranking of a set of items
// using as few pairwise comparisons as practical. Comparisons are
// answered by an external Oracle (a human judge, a remote service, or
// an in-memory comparator) and are assumed to be expensive: the package
// sorts with the Ford-Johnson merge-insertion algorithm, caches every
// resolved pair, and never asks the same unordered pair twice.
package rankfast

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// sorter runs the merge-insertion sort over indices into the item
// slice. All recursion levels share the same cache, so a pair resolved
// at any depth is free everywhere else.
type sorter[E any] struct {
	cache   *cache[E]
	workers int
}

// pendEntry is one element awaiting insertion into the main chain.
type pendEntry struct {
	elem int
	// main is the chain element this entry is known to precede, or -1
	// for the unpaired straggler of an odd-sized level.
	main int
}

// sort returns the elements ordered best-first. It recurses on the
// worse element of each pair, then re-inserts the better ones with
// tightly bounded binary searches.
func (s *sorter[E]) sort(ctx context.Context, elems []int) ([]int, error) {
	n := len(elems)
	if n <= 1 {
		return elems, nil
	}

	mains, partnerOf, straggler, err := s.pairUp(ctx, elems)
	if err != nil {
		return nil, err
	}

	sortedMains, err := s.sort(ctx, mains)
	if err != nil {
		return nil, err
	}

	// The partner of the first main precedes it, and the first main
	// precedes every other main, so the partner leads the chain with no
	// further comparisons.
	chain := make([]int, 0, n)
	chain = append(chain, partnerOf[sortedMains[0]])
	chain = append(chain, sortedMains...)

	pend := make([]pendEntry, 0, n-len(chain)+1)
	for _, m := range sortedMains[1:] {
		pend = append(pend, pendEntry{elem: partnerOf[m], main: m})
	}
	if straggler >= 0 {
		pend = append(pend, pendEntry{elem: straggler, main: -1})
	}

	for _, i := range jacobsthalOrder(len(pend)) {
		p := pend[i]
		bound := len(chain)
		if p.main >= 0 {
			bound = slices.Index(chain, p.main)
		}
		pos, err := s.insertPos(ctx, chain[:bound], p.elem)
		if err != nil {
			return nil, err
		}
		chain = slices.Insert(chain, pos, p.elem)
	}

	return chain, nil
}

// pairUp resolves one comparison per adjacent pair of elems. The worse
// element of each pair becomes a main and carries into the recursion;
// the better one is recorded as its partner. An odd-sized level leaves
// the last element as the straggler (-1 when absent).
func (s *sorter[E]) pairUp(ctx context.Context, elems []int) (mains []int, partnerOf map[int]int, straggler int, err error) {
	numPairs := len(elems) / 2
	straggler = -1
	if len(elems)%2 == 1 {
		straggler = elems[len(elems)-1]
	}

	// The pairs are disjoint, so their comparisons are independent of
	// each other and may be resolved concurrently.
	firstPrecedes := make([]bool, numPairs)
	if s.workers > 1 && numPairs > 1 {
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(s.workers)
		for i := 0; i < numPairs; i++ {
			i := i
			group.Go(func() error {
				r, err := s.cache.precedes(groupCtx, elems[2*i], elems[2*i+1])
				if err != nil {
					return err
				}
				firstPrecedes[i] = r
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, nil, -1, err
		}
	} else {
		for i := 0; i < numPairs; i++ {
			r, err := s.cache.precedes(ctx, elems[2*i], elems[2*i+1])
			if err != nil {
				return nil, nil, -1, err
			}
			firstPrecedes[i] = r
		}
	}

	mains = make([]int, 0, numPairs)
	partnerOf = make(map[int]int, numPairs)
	for i := 0; i < numPairs; i++ {
		a, b := elems[2*i], elems[2*i+1]
		if firstPrecedes[i] {
			mains = append(mains, b)
			partnerOf[b] = a
		} else {
			mains = append(mains, a)
			partnerOf[a] = b
		}
	}
	return mains, partnerOf, straggler, nil
}
