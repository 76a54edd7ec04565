package rankfast

import "context"

// Preference is the strict outcome of a single pairwise comparison.
// There is no "equal" value: the ranking model is a strict total order.
type Preference int

const (
	// PreferA means the first argument ranks before the second.
	PreferA Preference = iota
	// PreferB means the second argument ranks before the first.
	PreferB
)

func (p Preference) String() string {
	switch p {
	case PreferA:
		return "a"
	case PreferB:
		return "b"
	}
	return "invalid"
}

// valid reports whether p is one of the two strict outcomes.
func (p Preference) valid() bool {
	return p == PreferA || p == PreferB
}

// Oracle answers individual pairwise comparison questions. It is the
// expensive external collaborator of a ranking run: a human judge, a
// remote service, or an in-memory comparator in tests.
//
// Compare must report which of a and b ranks first. It is invoked at
// most once per distinct unordered pair for the whole run; results are
// cached and pairs are never re-asked. Compare must be consistent
// (define a strict total order); the ranking is undefined otherwise.
// Returning an error, or a value that is neither PreferA nor PreferB,
// aborts the run.
type Oracle[E any] interface {
	Compare(ctx context.Context, a, b E) (Preference, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc[E any] func(ctx context.Context, a, b E) (Preference, error)

// Compare calls f(ctx, a, b).
func (f OracleFunc[E]) Compare(ctx context.Context, a, b E) (Preference, error) {
	return f(ctx, a, b)
}

// LessOracle builds a deterministic in-memory Oracle from a less
// function. less(a, b) must report whether a ranks before b. The
// returned oracle never fails and never consults ctx; it is mainly
// useful for tests and for ranking with a known comparator.
func LessOracle[E any](less func(a, b E) bool) Oracle[E] {
	return OracleFunc[E](func(_ context.Context, a, b E) (Preference, error) {
		if less(a, b) {
			return PreferA, nil
		}
		return PreferB, nil
	})
}
