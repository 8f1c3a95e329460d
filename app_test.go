package main

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-assist/internal/config"
	"github.com/robalobadob/wordle-assist/internal/session"
	"github.com/robalobadob/wordle-assist/internal/solver"
)

func testApp(t *testing.T, seed uint64) *app {
	t.Helper()
	cfg := config.Default()
	cfg.Solver.Seed = seed
	a, err := newApp(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestApp_SeededOpenersAreReproducible(t *testing.T) {
	first := func(a *app) []string {
		var out []string
		for i := 0; i < 5; i++ {
			s, err := a.newSession()
			require.NoError(t, err)
			g, err := s.Next()
			require.NoError(t, err)
			out = append(out, g)
		}
		return out
	}
	a, b := testApp(t, 42), testApp(t, 42)
	got := first(a)
	assert.Equal(t, got, first(b))

	opening := a.dict.Head(solver.OpeningPoolSize)
	for _, g := range got {
		assert.Contains(t, opening, g)
	}
}

func TestApp_DailySeedWhenUnset(t *testing.T) {
	a := testApp(t, 0)
	assert.NotZero(t, a.seed)
}

func TestSolveOne(t *testing.T) {
	a := testApp(t, 7)
	res, err := solveOne(a, "those")
	require.NoError(t, err)
	require.NotEmpty(t, res.Guesses)
	assert.LessOrEqual(t, len(res.Guesses), solver.MaxGuesses)
	if res.Solved {
		assert.Equal(t, "those", res.Guesses[len(res.Guesses)-1])
	}

	_, err = solveOne(a, "nope")
	assert.ErrorIs(t, err, solver.ErrInvalidWord)

	_, err = solveOne(a, "zzzzz")
	assert.ErrorIs(t, err, solver.ErrInvalidWord, "answer outside the dictionary")
}

func TestRunBench(t *testing.T) {
	a := testApp(t, 7)
	st, err := runBench(context.Background(), a, 20, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 20, st.games)

	sum := 0
	for _, n := range st.dist {
		sum += n
	}
	assert.Equal(t, st.games, sum)
	if st.solved > 0 {
		assert.GreaterOrEqual(t, st.average(), 1.0)
	}
	assert.Contains(t, st.String(), "solved ")
}

func TestRunBench_Cancelled(t *testing.T) {
	a := testApp(t, 7)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runBench(ctx, a, 5, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBenchStats(t *testing.T) {
	var st benchStats
	st.add(session.Result{Solved: true, Guesses: []string{"a", "b", "c"}})
	st.add(session.Result{Solved: true, Guesses: []string{"a"}})
	st.add(session.Result{Solved: false, Guesses: []string{"a", "b", "c", "d", "e", "f"}})

	assert.Equal(t, 3, st.games)
	assert.Equal(t, 2, st.solved)
	assert.Equal(t, 1, st.dist[0])
	assert.Equal(t, 1, st.dist[1])
	assert.Equal(t, 1, st.dist[3])
	assert.InDelta(t, 2.0, st.average(), 1e-9)
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), config.Default(), "dance", nil, false)
	assert.Error(t, err)
}
