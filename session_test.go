package rankfast_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/excoffierleonard/rankfast"
)

// driveSession answers every question of s according to trueRank until
// the run completes, returning its result.
func driveSession(t *testing.T, s *rankfast.Session[string], trueRank map[string]int) *rankfast.Result[string] {
	t.Helper()
	for {
		q, ok := s.Next()
		if !ok {
			break
		}
		pref := rankfast.PreferB
		if trueRank[q.A] < trueRank[q.B] {
			pref = rankfast.PreferA
		}
		require.NoError(t, s.Answer(pref))
	}
	result, err := s.Result()
	require.NoError(t, err)
	return result
}

var colorRank = map[string]int{
	"red": 0, "orange": 1, "yellow": 2, "green": 3, "blue": 4, "purple": 5,
}

func colorItems() []string {
	return []string{"blue", "green", "red", "purple", "yellow", "orange"}
}

func TestSessionRanks(t *testing.T) {
	session, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer session.Close()

	result := driveSession(t, session, colorRank)
	require.Equal(t, []string{"red", "orange", "yellow", "green", "blue", "purple"}, result.Ranking)
	require.Equal(t, result.Comparisons, session.Comparisons())
	require.Len(t, session.History(), result.Comparisons)
	require.LessOrEqual(t, result.Comparisons, rankfast.EstimateComparisons(6))
}

func TestSessionNextRepeatsPendingQuestion(t *testing.T) {
	session, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer session.Close()

	q1, ok := session.Next()
	require.True(t, ok)
	q2, ok := session.Next()
	require.True(t, ok)
	require.Equal(t, q1, q2)
}

func TestSessionAnswerWithoutQuestion(t *testing.T) {
	session, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer session.Close()

	err = session.Answer(rankfast.PreferA)
	require.ErrorIs(t, err, rankfast.ErrNoPendingQuestion)
}

func TestSessionRejectsInvalidAnswer(t *testing.T) {
	session, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer session.Close()

	q, ok := session.Next()
	require.True(t, ok)

	err = session.Answer(rankfast.Preference(3))
	require.ErrorIs(t, err, rankfast.ErrNoStrictPreference)

	// the question is still pending and answerable
	again, ok := session.Next()
	require.True(t, ok)
	require.Equal(t, q, again)
	require.NoError(t, session.Answer(rankfast.PreferA))
}

func TestSessionReplay(t *testing.T) {
	first, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer first.Close()
	want := driveSession(t, first, colorRank)
	history := first.History()

	// A fresh session over the same items replays the log to the same
	// ranking with no further questions.
	second, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.Apply(history))

	_, ok := second.Next()
	require.False(t, ok)
	got, err := second.Result()
	require.NoError(t, err)
	require.Equal(t, want.Ranking, got.Ranking)
	require.Equal(t, want.Comparisons, got.Comparisons)
}

func TestSessionPartialReplay(t *testing.T) {
	first, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer first.Close()
	want := driveSession(t, first, colorRank)
	history := first.History()
	require.Greater(t, len(history), 2)

	second, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.Apply(history[:2]))
	require.Equal(t, 2, second.Comparisons())

	got := driveSession(t, second, colorRank)
	require.Equal(t, want.Ranking, got.Ranking)
}

func TestSessionDuplicateItems(t *testing.T) {
	_, err := rankfast.NewSession(context.Background(), []string{"a", "b", "a"}, nil)
	var derr *rankfast.DuplicateItemError
	require.ErrorAs(t, err, &derr)
}

func TestSessionTrivialInputs(t *testing.T) {
	for _, items := range [][]string{nil, {"solo"}} {
		session, err := rankfast.NewSession(context.Background(), items, nil)
		require.NoError(t, err)

		_, ok := session.Next()
		require.False(t, ok)
		result, err := session.Result()
		require.NoError(t, err)
		require.Equal(t, len(items), len(result.Ranking))
		require.Zero(t, result.Comparisons)
		session.Close()
	}
}

func TestSessionClose(t *testing.T) {
	session, err := rankfast.NewSession(context.Background(), colorItems(), nil)
	require.NoError(t, err)

	_, ok := session.Next()
	require.True(t, ok)
	session.Close()

	result, err := session.Result()
	require.Nil(t, result)
	var oerr *rankfast.OracleError
	require.ErrorAs(t, err, &oerr)
	require.True(t, errors.Is(err, context.Canceled))

	_, ok = session.Next()
	require.False(t, ok)
}
