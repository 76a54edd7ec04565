package rankfast

import "context"

// Result holds the outcome of a completed ranking run.
type Result[E comparable] struct {
	// Ranking is the full order, most preferred first.
	Ranking []E
	// Comparisons is the number of distinct oracle queries the run
	// issued. It never exceeds EstimateComparisons(len(Ranking)).
	Comparisons int
}

// Rank produces the full order of items, most preferred first, asking
// the oracle as few questions as possible and no unordered pair twice.
//
// Items must have distinct identities; a duplicate is rejected with a
// DuplicateItemError before any question is asked. Any oracle failure,
// including cancellation of ctx during a question, aborts the run with
// an OracleError and no partial ranking.
//
// With a sequential config (the default) both the ranking and the exact
// sequence of oracle questions are deterministic for a fixed input and
// a consistent oracle. With NumWorkers > 1 the questions of each
// pairing pass may interleave, but the ranking is unchanged.
func Rank[E comparable](ctx context.Context, items []E, oracle Oracle[E], config *Config) (*Result[E], error) {
	cfg := mergeConfig(config)

	if err := checkDuplicates(items); err != nil {
		return nil, err
	}

	n := len(items)
	if n <= 1 {
		ranking := make([]E, 0, n)
		ranking = append(ranking, items...)
		return &Result[E]{Ranking: ranking}, nil
	}

	cache := newCache(items, oracle)
	s := &sorter[E]{cache: cache, workers: cfg.NumWorkers}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	order, err := s.sort(ctx, indices)
	if err != nil {
		return nil, err
	}

	ranking := make([]E, 0, n)
	for _, i := range order {
		ranking = append(ranking, items[i])
	}
	return &Result[E]{Ranking: ranking, Comparisons: cache.count()}, nil
}

// checkDuplicates rejects inputs that carry the same identity twice.
func checkDuplicates[E comparable](items []E) error {
	seen := make(map[E]int, len(items))
	for i, item := range items {
		if first, ok := seen[item]; ok {
			return NewDuplicateItemError(item, first, i)
		}
		seen[item] = i
	}
	return nil
}
