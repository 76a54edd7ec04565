package rankfast

import "context"

// insertPos returns the position at which elem belongs within the
// sorted prefix chain. Callers slice the main chain down to the
// tightest bound they can prove (for a pend element, the current
// position of its paired main); the search never probes past it.
// Worst case is ceil(log2(len(chain)+1)) comparisons, and an empty
// prefix resolves to position 0 with none.
func (s *sorter[E]) insertPos(ctx context.Context, chain []int, elem int) (int, error) {
	lo, hi := 0, len(chain)
	for lo < hi {
		mid := lo + (hi-lo)/2
		before, err := s.cache.precedes(ctx, elem, chain[mid])
		if err != nil {
			return 0, err
		}
		if before {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}
