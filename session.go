package rankfast

import (
	"context"
	"sync"
)

// Question is a single comparison a Session needs answered: does A rank
// before B, or B before A?
type Question[E comparable] struct {
	A, B E
}

// Session runs a ranking interactively, turning the oracle boundary
// inside out: instead of supplying an Oracle, the caller pulls the next
// Question, obtains an answer out of process (typically from a human),
// and feeds it back with Answer. Questions arrive strictly one at a
// time, in the same deterministic order a sequential Rank would ask
// them, so a recorded answer log can be replayed with Apply to restore
// a session for the same items.
//
// A Session owns a background goroutine for the duration of the run.
// Callers that abandon a session before completion must Close it.
type Session[E comparable] struct {
	cancel    context.CancelFunc
	questions chan Question[E]
	answers   chan Preference
	done      chan struct{}

	mu      sync.Mutex
	pending bool
	current Question[E]
	history []Preference

	result *Result[E]
	err    error
}

// NewSession starts a ranking run over items and returns the session
// driving it. Duplicate identities are rejected before any question is
// produced. The run is bound to ctx: cancelling it aborts the session,
// and the aborted run reports an OracleError wrapping the context's
// error. Sessions always execute sequentially, one outstanding
// question at a time, regardless of config.NumWorkers.
func NewSession[E comparable](ctx context.Context, items []E, config *Config) (*Session[E], error) {
	if err := checkDuplicates(items); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session[E]{
		cancel:    cancel,
		questions: make(chan Question[E]),
		answers:   make(chan Preference),
		done:      make(chan struct{}),
	}

	cfg := mergeConfig(config)
	cfg.NumWorkers = 1

	go func() {
		result, err := Rank(ctx, items, OracleFunc[E](s.ask), cfg)
		s.mu.Lock()
		s.result, s.err = result, err
		s.mu.Unlock()
		close(s.done)
		close(s.questions)
	}()
	return s, nil
}

// ask is the session's oracle: it publishes the question to Next and
// blocks until Answer resolves it or the run is cancelled.
func (s *Session[E]) ask(ctx context.Context, a, b E) (Preference, error) {
	select {
	case s.questions <- Question[E]{A: a, B: b}:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	select {
	case pref := <-s.answers:
		return pref, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Next returns the next question of the run. It blocks until one is
// available, and returns the same question again while it remains
// unanswered. ok is false once the run has finished or failed; the
// outcome is then available from Result.
func (s *Session[E]) Next() (q Question[E], ok bool) {
	s.mu.Lock()
	pending := s.pending
	q = s.current
	s.mu.Unlock()
	if pending {
		select {
		case <-s.done:
			// the run aborted with the question still outstanding
			var zero Question[E]
			return zero, false
		default:
			return q, true
		}
	}

	q, ok = <-s.questions
	if !ok {
		return q, false
	}
	s.mu.Lock()
	s.current, s.pending = q, true
	s.mu.Unlock()
	return q, true
}

// Answer resolves the question most recently returned by Next.
// An invalid preference is rejected without consuming the question, so
// the caller can try again. Answering with no question outstanding
// returns ErrNoPendingQuestion.
func (s *Session[E]) Answer(pref Preference) error {
	if !pref.valid() {
		return ErrNoStrictPreference
	}

	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return ErrNoPendingQuestion
	}
	s.pending = false
	s.history = append(s.history, pref)
	s.mu.Unlock()

	select {
	case s.answers <- pref:
		return nil
	case <-s.done:
		return s.err
	}
}

// Apply replays a recorded answer log, resolving questions in order
// until the log or the run is exhausted. Surplus answers are ignored,
// which makes replaying a complete historical log idempotent.
func (s *Session[E]) Apply(answers []Preference) error {
	for _, pref := range answers {
		if _, ok := s.Next(); !ok {
			return nil
		}
		if err := s.Answer(pref); err != nil {
			return err
		}
	}
	return nil
}

// History returns a copy of the answers given so far, in question
// order. Persist it and feed it to Apply on a fresh session over the
// same items to resume where this one left off.
func (s *Session[E]) History() []Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Preference, len(s.history))
	copy(out, s.history)
	return out
}

// Comparisons returns the number of questions answered so far.
func (s *Session[E]) Comparisons() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Result blocks until the run has completed or failed and returns its
// outcome. It is typically called after Next reports ok=false.
func (s *Session[E]) Result() (*Result[E], error) {
	<-s.done
	return s.result, s.err
}

// Close aborts the run if it is still in flight and waits for the
// session goroutine to exit. Closing a finished session is a no-op.
func (s *Session[E]) Close() {
	s.cancel()
	<-s.done
}
