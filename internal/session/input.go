package session

import (
	"strings"

	"github.com/robalobadob/wordle-assist/internal/solver"
)

const (
	winToken    = "w"
	changeToken = "c"
)

// ParseInput parses one line of the player protocol:
//
//	bgyyb    feedback row (b=black/absent, y=yellow/present, g=green/confirmed)
//	w        puzzle solved
//	c        a different word was entered; the caller asks for it
//	c WORD   a different word was entered inline
//
// Surrounding whitespace is ignored; the symbols themselves are case sensitive.
func ParseInput(line string) (Input, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == winToken:
		return Input{Kind: InputWin}, nil
	case line == changeToken:
		return Input{Kind: InputChange}, nil
	case strings.HasPrefix(line, changeToken+" "):
		w := strings.TrimSpace(strings.TrimPrefix(line, changeToken+" "))
		if !solver.ValidWord(w) {
			return Input{}, solver.ErrInvalidWord
		}
		return Input{Kind: InputChange, Word: w}, nil
	}
	fb, err := solver.ParseFeedback(line)
	if err != nil {
		return Input{}, err
	}
	return Input{Kind: InputFeedback, Feedback: fb}, nil
}
