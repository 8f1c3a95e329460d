package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	cases := []struct {
		guess, answer, want string
	}{
		{"crane", "crane", "ggggg"},
		{"geese", "those", "bbbgg"},
		{"arose", "those", "bbggg"},
		{"speed", "abide", "bbyby"},
		{"llama", "hello", "yybbb"},
		{"sassy", "essay", "yygbg"},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"/"+tc.answer, func(t *testing.T) {
			fb, err := Score(tc.guess, tc.answer)
			require.NoError(t, err)
			assert.Equal(t, tc.want, fb.String())
		})
	}
}

func TestScore_RejectsInvalidWords(t *testing.T) {
	_, err := Score("cran", "crane")
	assert.ErrorIs(t, err, ErrInvalidWord)
	_, err = Score("crane", "CRANE")
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestParseFeedback(t *testing.T) {
	fb, err := ParseFeedback("bgyyb")
	require.NoError(t, err)
	assert.Equal(t, Feedback{MarkAbsent, MarkConfirmed, MarkPresent, MarkPresent, MarkAbsent}, fb)
	assert.False(t, fb.AllConfirmed())

	for _, bad := range []string{"", "bgyy", "bgyybb", "BGYYB", "bgxyb", "bg yb"} {
		_, err := ParseFeedback(bad)
		assert.ErrorIs(t, err, ErrInvalidFeedback, bad)
	}
}
