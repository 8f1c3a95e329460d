// Core type definitions for the constraint tracker.
// Defines:
//   - Mark / Feedback: one round of player-reported letter results.
//   - Position: the per-slot constraint (confirmed letter or open letter set).
//   - Sentinel errors shared by the solver and its callers.

package solver

import (
	"errors"
	"strings"
)

const (
	// WordLen is the fixed number of letters per word.
	WordLen = 5
	// MaxGuesses is the number of attempts a puzzle allows.
	MaxGuesses = 6
	// OpeningPoolSize is how many leading dictionary entries the first guess is drawn from.
	OpeningPoolSize = 13
	// DefaultLanguage is the tag passed to the frequency oracle.
	DefaultLanguage = "en"
)

var (
	ErrNoCandidates    = errors.New("no words match constraints")
	ErrInvalidFeedback = errors.New("invalid feedback")
	ErrInvalidWord     = errors.New("invalid word")
	ErrSolved          = errors.New("puzzle already solved")
)

// Mark is the result reported for a single letter of a guess.
// The byte values double as the player's input alphabet.
type Mark byte

const (
	MarkAbsent    Mark = 'b' // letter is not in the answer
	MarkPresent   Mark = 'y' // letter is in the answer at another position
	MarkConfirmed Mark = 'g' // letter is correct and in the correct position
)

// Valid reports whether m is one of the three feedback symbols.
func (m Mark) Valid() bool {
	return m == MarkAbsent || m == MarkPresent || m == MarkConfirmed
}

func (m Mark) String() string {
	switch m {
	case MarkAbsent:
		return "absent"
	case MarkPresent:
		return "present"
	case MarkConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// Feedback is one round of marks aligned with the guess by index.
type Feedback [WordLen]Mark

// ParseFeedback converts a player string such as "bgyyb" into Feedback.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != WordLen {
		return fb, ErrInvalidFeedback
	}
	for i := 0; i < WordLen; i++ {
		m := Mark(s[i])
		if !m.Valid() {
			return fb, ErrInvalidFeedback
		}
		fb[i] = m
	}
	return fb, nil
}

// Valid reports whether every mark is a known symbol.
func (fb Feedback) Valid() bool {
	for _, m := range fb {
		if !m.Valid() {
			return false
		}
	}
	return true
}

// AllConfirmed reports a winning row.
func (fb Feedback) AllConfirmed() bool {
	for _, m := range fb {
		if m != MarkConfirmed {
			return false
		}
	}
	return true
}

func (fb Feedback) String() string {
	var b strings.Builder
	for _, m := range fb {
		b.WriteByte(byte(m))
	}
	return b.String()
}

// PositionKind tags which variant a Position holds.
type PositionKind uint8

const (
	PositionOpen PositionKind = iota
	PositionConfirmed
)

// Position is the constraint on one letter slot: either a confirmed letter
// or the set of letters still possible there. Once confirmed, a slot never
// reverts to a set.
type Position struct {
	kind   PositionKind
	letter byte
	open   LetterSet
}

// OpenPosition returns an unconstrained slot (a–z).
func OpenPosition() Position {
	return Position{kind: PositionOpen, open: FullLetterSet()}
}

// ConfirmedPosition returns a slot pinned to l.
func ConfirmedPosition(l byte) Position {
	return Position{kind: PositionConfirmed, letter: l}
}

// Kind returns the variant tag.
func (p Position) Kind() PositionKind { return p.kind }

// Letter returns the confirmed letter and true, or 0 and false for an open slot.
func (p Position) Letter() (byte, bool) {
	if p.kind == PositionConfirmed {
		return p.letter, true
	}
	return 0, false
}

// Open returns a copy of the open set; empty for a confirmed slot.
func (p Position) Open() LetterSet {
	if p.kind == PositionConfirmed {
		return LetterSet{}
	}
	return p.open.Clone()
}

// Allows reports whether l may appear in this slot.
func (p Position) Allows(l byte) bool {
	if p.kind == PositionConfirmed {
		return l == p.letter
	}
	return p.open.Has(l)
}

// String renders the slot as a glob fragment: "r", "[a-z]" or "[bcd]".
func (p Position) String() string {
	if p.kind == PositionConfirmed {
		return string(p.letter)
	}
	if p.open.Full() {
		return "[a-z]"
	}
	return "[" + p.open.String() + "]"
}

func (p Position) clone() Position {
	if p.kind == PositionOpen {
		p.open = p.open.Clone()
	}
	return p
}

// ValidWord reports whether w is exactly WordLen lowercase ASCII letters.
func ValidWord(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !isLetter(w[i]) {
			return false
		}
	}
	return true
}
