// Core type definitions for a solving session.
// Defines:
//   - State: lifecycle of one puzzle attempt.
//   - Input: one line of player input (feedback row, win, change word).
//   - Turn / View: history entries and the display snapshot.

package session

import (
	"errors"

	"github.com/robalobadob/wordle-assist/internal/solver"
)

var (
	ErrFinished = errors.New("session finished")
	ErrNoGuess  = errors.New("no guess awaiting feedback")
)

// State is the session lifecycle:
//
//	AwaitingFirstGuess → AwaitingFeedback → {AwaitingFeedback, Solved, Exhausted}
//
// Abandoned is reachable from any non-terminal state. No transition leaves a
// terminal state.
type State string

const (
	StateAwaitingFirstGuess State = "awaiting_first_guess"
	StateAwaitingFeedback   State = "awaiting_feedback"
	StateSolved             State = "solved"
	StateExhausted          State = "exhausted"
	StateAbandoned          State = "abandoned"
)

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateSolved || s == StateExhausted || s == StateAbandoned
}

// InputKind tags what the player typed.
type InputKind int

const (
	InputFeedback InputKind = iota // a five-symbol b/y/g row
	InputWin                       // "w": the puzzle was solved
	InputChange                    // "c": a different word was entered
)

// Input is one parsed line of player input.
// For InputChange, Word may be empty until the caller has asked for it.
type Input struct {
	Kind     InputKind
	Feedback solver.Feedback
	Word     string
}

// Turn records one completed round.
type Turn struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"`
}

// View is the display snapshot of a session.
type View struct {
	ID         string   `json:"id"`
	State      State    `json:"state"`
	Round      int      `json:"round"`
	Guess      string   `json:"guess,omitempty"`
	Pattern    string   `json:"pattern"`
	Required   string   `json:"required"`
	Candidates int      `json:"candidates"`
	Alternates []string `json:"alternates"`
	Remaining  []string `json:"remaining,omitempty"`
	History    []Turn   `json:"history"`
}
