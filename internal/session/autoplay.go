package session

import (
	"github.com/robalobadob/wordle-assist/internal/solver"
)

// Result summarises an autoplayed session.
type Result struct {
	Answer  string
	Guesses []string
	Solved  bool
}

// Autoplay plays s against a known answer, scoring each proposed guess with
// solver.Score, until the session reaches a terminal state.
func Autoplay(s *Session, answer string) (Result, error) {
	res := Result{Answer: answer}
	for !s.State().Terminal() {
		g, err := s.Next()
		if err != nil {
			return res, err
		}
		fb, err := solver.Score(g, answer)
		if err != nil {
			return res, err
		}
		res.Guesses = append(res.Guesses, g)
		if err := s.Submit(Input{Kind: InputFeedback, Feedback: fb}); err != nil {
			return res, err
		}
	}
	res.Solved = s.State() == StateSolved
	return res, nil
}
