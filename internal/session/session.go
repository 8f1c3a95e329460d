// Session drives one puzzle attempt on top of a solver.Solver.
//
// Responsibilities:
//   - Propose a guess per round and accept the player's answer to it.
//   - Track the guess count (0..6) and the terminal outcome.
//   - Build the display View (pattern, required letters, alternates).
//
// State transitions:
//   - Next() on a fresh session moves AwaitingFirstGuess → AwaitingFeedback.
//   - An all-confirmed row or a win signal → Solved.
//   - The 6th non-winning row → Exhausted, after a final narrowing.
//   - Abandon(), or an empty candidate list in Next() → Abandoned.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"slices"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle-assist/internal/solver"
)

const (
	// PreviewSize is how many alternate candidates a View shows.
	PreviewSize = 5
	// RemainingPreview caps the words listed after an exhausted session.
	RemainingPreview = 10
)

type Session struct {
	id      string
	sv      *solver.Solver
	state   State
	round   int    // completed rounds
	guess   string // active guess, empty until Next proposes one
	history []Turn
	log     zerolog.Logger
}

// New wraps sv in a fresh session with a random ID.
func New(sv *solver.Solver, log zerolog.Logger) *Session {
	id := randomID()
	return &Session{
		id:      id,
		sv:      sv,
		state:   StateAwaitingFirstGuess,
		history: []Turn{},
		log:     log.With().Str("session", id).Logger(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Round returns the number of completed rounds (the guess count).
func (s *Session) Round() int { return s.round }

// Guess returns the guess awaiting feedback, or "".
func (s *Session) Guess() string { return s.guess }

// Next returns the guess for the current round, proposing one if needed.
// Calling it again before Submit returns the same guess.
// If the solver runs out of candidates the session is abandoned and
// solver.ErrNoCandidates is returned.
func (s *Session) Next() (string, error) {
	if s.state.Terminal() {
		return "", ErrFinished
	}
	if s.guess != "" {
		return s.guess, nil
	}
	g, err := s.sv.ProposeGuess(s.round)
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			s.state = StateAbandoned
			s.log.Info().Int("round", s.round).Msg("no candidates left, session abandoned")
		}
		return "", err
	}
	s.guess = g
	s.state = StateAwaitingFeedback
	s.log.Debug().Int("round", s.round).Str("guess", g).Int("candidates", s.sv.Count()).Msg("proposed")
	return g, nil
}

// Submit applies one player input to the active guess.
// Invalid input returns an error from the solver package and changes nothing.
func (s *Session) Submit(in Input) error {
	if s.state.Terminal() {
		return ErrFinished
	}
	if s.guess == "" {
		return ErrNoGuess
	}

	switch in.Kind {
	case InputChange:
		if !solver.ValidWord(in.Word) {
			return solver.ErrInvalidWord
		}
		s.log.Debug().Str("from", s.guess).Str("to", in.Word).Msg("guess changed")
		s.guess = in.Word
		return nil

	case InputWin:
		s.sv.Solve()
		s.finishRound(solver.Feedback{
			solver.MarkConfirmed, solver.MarkConfirmed, solver.MarkConfirmed,
			solver.MarkConfirmed, solver.MarkConfirmed,
		})
		return nil

	case InputFeedback:
		if err := s.sv.ApplyFeedback(s.guess, in.Feedback); err != nil {
			return err
		}
		s.finishRound(in.Feedback)
		return nil
	}
	return solver.ErrInvalidFeedback
}

func (s *Session) finishRound(fb solver.Feedback) {
	s.history = append(s.history, Turn{Guess: s.guess, Feedback: fb.String()})
	s.round++
	s.guess = ""

	switch {
	case s.sv.Solved():
		s.state = StateSolved
		s.log.Info().Int("guesses", s.round).Msg("solved")
	case s.round >= solver.MaxGuesses:
		// Fold the last row in so the remaining list reflects it.
		_ = s.sv.Narrow()
		s.state = StateExhausted
		s.log.Info().Int("remaining", s.sv.Count()).Msg("out of guesses")
	default:
		s.state = StateAwaitingFeedback
	}
}

// Abandon ends the session without an outcome.
func (s *Session) Abandon() {
	if !s.state.Terminal() {
		s.state = StateAbandoned
		s.guess = ""
	}
}

// Remaining returns the current candidate list.
func (s *Session) Remaining() []string { return s.sv.Candidates() }

// View builds the display snapshot.
func (s *Session) View() View {
	v := View{
		ID:         s.id,
		State:      s.state,
		Round:      s.round,
		Guess:      s.guess,
		Pattern:    s.sv.Pattern(),
		Required:   s.sv.Required().String(),
		Candidates: s.sv.Count(),
		Alternates: s.sv.Alternates(PreviewSize),
		History:    slices.Clone(s.history),
	}
	if s.state == StateExhausted {
		rem := s.sv.Candidates()
		v.Remaining = rem[:min(RemainingPreview, len(rem))]
	}
	return v
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
