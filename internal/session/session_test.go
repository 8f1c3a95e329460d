package session

import (
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-assist/internal/solver"
)

var dict = []string{"brick", "fruit", "print", "crimp", "trunk", "drink", "wrung", "bring"}

func newSession(words []string, opts ...solver.Option) *Session {
	opts = append([]solver.Option{solver.WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return New(solver.New(words, opts...), zerolog.Nop())
}

func feedback(t *testing.T, s string) Input {
	t.Helper()
	in, err := ParseInput(s)
	require.NoError(t, err)
	require.Equal(t, InputFeedback, in.Kind)
	return in
}

func TestSession_Lifecycle(t *testing.T) {
	s := newSession(dict)
	assert.Equal(t, StateAwaitingFirstGuess, s.State())
	assert.NotEmpty(t, s.ID())
	assert.ErrorIs(t, s.Submit(feedback(t, "bbbbb")), ErrNoGuess)

	g, err := s.Next()
	require.NoError(t, err)
	assert.Contains(t, dict, g)
	assert.Equal(t, StateAwaitingFeedback, s.State())

	again, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, g, again, "Next is stable until feedback arrives")

	require.NoError(t, s.Submit(feedback(t, "ggggg")))
	assert.Equal(t, StateSolved, s.State())
	assert.Equal(t, 1, s.Round())

	_, err = s.Next()
	assert.ErrorIs(t, err, ErrFinished)
	assert.ErrorIs(t, s.Submit(feedback(t, "ggggg")), ErrFinished)
}

func TestSession_WinToken(t *testing.T) {
	s := newSession(dict)
	g, err := s.Next()
	require.NoError(t, err)

	in, err := ParseInput("w")
	require.NoError(t, err)
	require.NoError(t, s.Submit(in))

	assert.Equal(t, StateSolved, s.State())
	v := s.View()
	require.Len(t, v.History, 1)
	assert.Equal(t, Turn{Guess: g, Feedback: "ggggg"}, v.History[0])
}

func TestSession_ChangeWord(t *testing.T) {
	s := newSession(dict)
	orig, err := s.Next()
	require.NoError(t, err)

	err = s.Submit(Input{Kind: InputChange, Word: "Crane"})
	assert.ErrorIs(t, err, solver.ErrInvalidWord)
	assert.Equal(t, orig, s.Guess())

	require.NoError(t, s.Submit(Input{Kind: InputChange, Word: "arose"}))
	assert.Equal(t, "arose", s.Guess())
	assert.Equal(t, 0, s.Round(), "changing the word is not a round")

	require.NoError(t, s.Submit(feedback(t, "bgbbb")))
	v := s.View()
	assert.Equal(t, "arose", v.History[0].Guess)
	assert.Equal(t, "r", v.Required)
	assert.Equal(t, len(dict), v.Candidates)
}

func TestSession_InvalidFeedbackKeepsState(t *testing.T) {
	s := newSession(dict)
	_, err := s.Next()
	require.NoError(t, err)

	err = s.Submit(Input{Kind: InputFeedback})
	assert.ErrorIs(t, err, solver.ErrInvalidFeedback)
	assert.Equal(t, 0, s.Round())
	assert.Equal(t, StateAwaitingFeedback, s.State())
	assert.Equal(t, len(dict), s.View().Candidates)
}

func TestSession_ExhaustedAfterSixRounds(t *testing.T) {
	s := newSession(dict)
	fillers := []string{"zzzzz", "yyyyy", "xxxxx", "vvvvv", "qqqqq", "jjjjj"}

	for i, w := range fillers {
		_, err := s.Next()
		require.NoError(t, err, "round %d", i)
		require.NoError(t, s.Submit(Input{Kind: InputChange, Word: w}))
		require.NoError(t, s.Submit(feedback(t, "bbbbb")))
	}

	assert.Equal(t, StateExhausted, s.State())
	assert.Equal(t, solver.MaxGuesses, s.Round())

	_, err := s.Next()
	assert.ErrorIs(t, err, ErrFinished, "no seventh guess")

	v := s.View()
	assert.Equal(t, len(dict), v.Candidates)
	assert.ElementsMatch(t, dict, v.Remaining)
	assert.Empty(t, v.Guess)
}

func TestSession_NoCandidatesAbandons(t *testing.T) {
	s := newSession([]string{"crane", "crate"})
	_, err := s.Next()
	require.NoError(t, err)
	require.NoError(t, s.Submit(feedback(t, "bbbbb")))

	_, err = s.Next()
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
	assert.Equal(t, StateAbandoned, s.State())
	assert.True(t, s.State().Terminal())
}

func TestSession_Abandon(t *testing.T) {
	s := newSession(dict)
	_, err := s.Next()
	require.NoError(t, err)
	s.Abandon()
	assert.Equal(t, StateAbandoned, s.State())
	_, err = s.Next()
	assert.ErrorIs(t, err, ErrFinished)

	solved := newSession(dict)
	_, err = solved.Next()
	require.NoError(t, err)
	require.NoError(t, solved.Submit(Input{Kind: InputWin}))
	solved.Abandon()
	assert.Equal(t, StateSolved, solved.State(), "terminal states are final")
}

func TestAutoplay(t *testing.T) {
	words := []string{"arose", "those", "horse", "prose"}
	for _, answer := range words {
		t.Run(answer, func(t *testing.T) {
			res, err := Autoplay(newSession(words), answer)
			require.NoError(t, err)
			assert.True(t, res.Solved)
			require.NotEmpty(t, res.Guesses)
			assert.Equal(t, answer, res.Guesses[len(res.Guesses)-1])
			assert.LessOrEqual(t, len(res.Guesses), len(words))
		})
	}
}

func TestParseInput(t *testing.T) {
	cases := []struct {
		line    string
		kind    InputKind
		word    string
		wantErr error
	}{
		{line: "bgyyb", kind: InputFeedback},
		{line: "  ggggg \n", kind: InputFeedback},
		{line: "w", kind: InputWin},
		{line: "c", kind: InputChange},
		{line: "c crane", kind: InputChange, word: "crane"},
		{line: "c CRANE", wantErr: solver.ErrInvalidWord},
		{line: "bgyy", wantErr: solver.ErrInvalidFeedback},
		{line: "bgyyx", wantErr: solver.ErrInvalidFeedback},
		{line: "", wantErr: solver.ErrInvalidFeedback},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			in, err := ParseInput(tc.line)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, in.Kind)
			assert.Equal(t, tc.word, in.Word)
		})
	}
}
