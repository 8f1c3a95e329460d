// Constraint tracker and guess ranker for a single Wordle puzzle.
//
// Responsibilities:
//   - Track per-position constraints, the required-letters set and the
//     current candidate list.
//   - Propose the next guess: a random opener on round 0, otherwise the
//     best-ranked surviving candidate.
//   - Fold one round of player feedback into the constraints.
//
// Notes:
//   - The candidate list only ever shrinks. Each narrowing filters the
//     previous list; the dictionary is never rescanned.
//   - Ranking: distinct letters desc, usage frequency desc, dictionary order asc.
//   - A Solver is not safe for concurrent use; callers serialise access.

package solver

import (
	"cmp"
	"fmt"
	"math/bits"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FrequencyOracle reports relative real-world usage of a word in a language.
// Implementations return 0 for unknown words.
type FrequencyOracle interface {
	Frequency(word, lang string) float64
}

// FeedbackOrder selects how a round's marks are folded into the constraints.
type FeedbackOrder int

const (
	// OrderSnapshot applies every confirmed/present mark of a round before any
	// absent mark, so a repeated letter's absent mark never purges a copy the
	// same round proved present. It also caps the letter's count.
	OrderSnapshot FeedbackOrder = iota
	// OrderPositional applies marks strictly left to right. An absent mark for
	// a repeated letter that precedes its present/confirmed mark removes the
	// letter from every open slot.
	OrderPositional
)

// ParseFeedbackOrder maps "snapshot" / "positional" to a FeedbackOrder.
func ParseFeedbackOrder(s string) (FeedbackOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "snapshot":
		return OrderSnapshot, nil
	case "positional":
		return OrderPositional, nil
	}
	return OrderSnapshot, fmt.Errorf("unknown feedback order %q", s)
}

func (o FeedbackOrder) String() string {
	if o == OrderPositional {
		return "positional"
	}
	return "snapshot"
}

// Option configures a Solver.
type Option func(*Solver)

// WithRand sets the source used for the opening draw.
func WithRand(r *rand.Rand) Option { return func(s *Solver) { s.rng = r } }

// WithOracle sets the frequency oracle used as ranking tie-break.
func WithOracle(o FrequencyOracle) Option { return func(s *Solver) { s.oracle = o } }

// WithLanguage sets the language tag passed to the oracle.
func WithLanguage(lang string) Option { return func(s *Solver) { s.lang = lang } }

// WithOpeningPool overrides OpeningPoolSize. Values < 1 are ignored.
func WithOpeningPool(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.openingPool = n
		}
	}
}

// WithFeedbackOrder selects snapshot (default) or positional folding.
func WithFeedbackOrder(o FeedbackOrder) Option { return func(s *Solver) { s.order = o } }

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option { return func(s *Solver) { s.log = l } }

// Solver holds the constraint state for one puzzle.
type Solver struct {
	dictionary []string
	rankOf     map[string]int // dictionary order, final ranking tie-break

	positions  [WordLen]Position
	required   LetterSet
	atLeast    [alphabetSize]int
	atMost     [alphabetSize]int
	candidates []string
	solved     bool

	rng         *rand.Rand
	oracle      FrequencyOracle
	lang        string
	openingPool int
	order       FeedbackOrder
	log         zerolog.Logger
}

// New builds a Solver over dictionary. The slice is copied and never mutated.
func New(dictionary []string, opts ...Option) *Solver {
	s := &Solver{
		dictionary:  slices.Clone(dictionary),
		rankOf:      make(map[string]int, len(dictionary)),
		required:    NewLetterSet(),
		lang:        DefaultLanguage,
		openingPool: OpeningPoolSize,
		log:         zerolog.Nop(),
	}
	for i, w := range s.dictionary {
		if _, dup := s.rankOf[w]; !dup {
			s.rankOf[w] = i
		}
	}
	for i := range s.positions {
		s.positions[i] = OpenPosition()
	}
	for i := range s.atMost {
		s.atMost[i] = WordLen
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	s.candidates = slices.Clone(s.dictionary)
	return s
}

// ProposeGuess returns the guess for round (0-based).
// Round 0 draws uniformly from the opening pool; later rounds narrow the
// candidate list and return its top-ranked word. ErrNoCandidates means the
// constraints are contradictory and the puzzle cannot continue.
func (s *Solver) ProposeGuess(round int) (string, error) {
	if round <= 0 {
		pool := min(s.openingPool, len(s.dictionary))
		if pool == 0 {
			return "", ErrNoCandidates
		}
		guess := s.dictionary[s.rng.IntN(pool)]
		s.log.Debug().Str("guess", guess).Int("pool", pool).Msg("opening guess")
		return guess, nil
	}
	if err := s.Narrow(); err != nil {
		return "", err
	}
	return s.candidates[0], nil
}

// ApplyFeedback folds one round of marks for guess into the constraints and
// narrows the candidate list. Invalid input leaves the state untouched.
// An all-confirmed row marks the puzzle solved and changes nothing else.
func (s *Solver) ApplyFeedback(guess string, fb Feedback) error {
	if s.solved {
		return ErrSolved
	}
	if !ValidWord(guess) {
		return ErrInvalidWord
	}
	if !fb.Valid() {
		return ErrInvalidFeedback
	}
	if fb.AllConfirmed() {
		s.solved = true
		return nil
	}

	switch s.order {
	case OrderPositional:
		for i := 0; i < WordLen; i++ {
			s.applyMark(i, guess[i], fb[i])
		}
	default:
		s.applySnapshot(guess, fb)
	}

	before := len(s.candidates)
	// An empty list surfaces as ErrNoCandidates from the next ProposeGuess.
	_ = s.Narrow()
	s.log.Debug().
		Str("guess", guess).
		Str("feedback", fb.String()).
		Str("pattern", s.Pattern()).
		Int("before", before).
		Int("after", len(s.candidates)).
		Msg("feedback applied")
	return nil
}

// Solve records an out-of-band win.
func (s *Solver) Solve() { s.solved = true }

// Solved reports whether a winning row (or Solve) has been seen.
func (s *Solver) Solved() bool { return s.solved }

func (s *Solver) applyMark(i int, l byte, m Mark) {
	switch m {
	case MarkConfirmed:
		s.positions[i] = ConfirmedPosition(l)
		s.required.Add(l)
	case MarkPresent:
		if s.positions[i].kind == PositionOpen {
			s.positions[i].open.Remove(l)
		}
		s.required.Add(l)
	case MarkAbsent:
		// A repeated letter is marked absent beyond the copies the answer has.
		if s.required.Has(l) {
			return
		}
		for j := range s.positions {
			if s.positions[j].kind == PositionOpen {
				s.positions[j].open.Remove(l)
			}
		}
	}
}

func (s *Solver) applySnapshot(guess string, fb Feedback) {
	var seen, hasAbsent [alphabetSize]int
	for i := 0; i < WordLen; i++ {
		if fb[i] == MarkAbsent {
			hasAbsent[guess[i]-'a']++
			continue
		}
		seen[guess[i]-'a']++
		s.applyMark(i, guess[i], fb[i])
	}
	for i := 0; i < WordLen; i++ {
		if fb[i] == MarkAbsent {
			s.applyMark(i, guess[i], fb[i])
		}
	}
	for c := 0; c < alphabetSize; c++ {
		if seen[c] > s.atLeast[c] {
			s.atLeast[c] = seen[c]
		}
		if hasAbsent[c] > 0 && seen[c] < s.atMost[c] {
			s.atMost[c] = seen[c]
		}
	}
}

// Narrow filters the candidate list against the current constraints and
// re-ranks it. Repeating it without new feedback changes nothing.
func (s *Solver) Narrow() error {
	kept := make([]string, 0, len(s.candidates))
	for _, w := range s.candidates {
		if s.matchesPositions(w) && s.matchesRequired(w) && s.matchesCounts(w) {
			kept = append(kept, w)
		}
	}
	s.rank(kept)
	s.candidates = kept
	if len(kept) == 0 {
		return ErrNoCandidates
	}
	return nil
}

func (s *Solver) matchesPositions(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < WordLen; i++ {
		if !s.positions[i].Allows(w[i]) {
			return false
		}
	}
	return true
}

func (s *Solver) matchesRequired(w string) bool {
	for _, l := range s.required.Letters() {
		if strings.IndexByte(w, l) < 0 {
			return false
		}
	}
	return true
}

func (s *Solver) matchesCounts(w string) bool {
	var n [alphabetSize]int
	for i := 0; i < len(w); i++ {
		if isLetter(w[i]) {
			n[w[i]-'a']++
		}
	}
	for c := 0; c < alphabetSize; c++ {
		if n[c] < s.atLeast[c] || n[c] > s.atMost[c] {
			return false
		}
	}
	return true
}

func (s *Solver) rank(words []string) {
	freq := make(map[string]float64, len(words))
	if s.oracle != nil {
		for _, w := range words {
			freq[w] = s.oracle.Frequency(w, s.lang)
		}
	}
	slices.SortStableFunc(words, func(a, b string) int {
		if c := cmp.Compare(distinctLetters(b), distinctLetters(a)); c != 0 {
			return c
		}
		if c := cmp.Compare(freq[b], freq[a]); c != 0 {
			return c
		}
		return cmp.Compare(s.rankOf[a], s.rankOf[b])
	})
}

func distinctLetters(w string) int {
	var mask uint32
	for i := 0; i < len(w); i++ {
		if isLetter(w[i]) {
			mask |= 1 << (w[i] - 'a')
		}
	}
	return bits.OnesCount32(mask)
}

// ------------------------------- views -------------------------------------

// Candidates returns a copy of the current candidate list in rank order.
func (s *Solver) Candidates() []string { return slices.Clone(s.candidates) }

// Count returns the number of remaining candidates.
func (s *Solver) Count() int { return len(s.candidates) }

// Alternates returns up to n candidates after the top-ranked one.
func (s *Solver) Alternates(n int) []string {
	if len(s.candidates) <= 1 || n <= 0 {
		return []string{}
	}
	end := min(1+n, len(s.candidates))
	return slices.Clone(s.candidates[1:end])
}

// Position returns a copy of slot i's constraint.
func (s *Solver) Position(i int) Position { return s.positions[i].clone() }

// Required returns a copy of the required-letters set.
func (s *Solver) Required() LetterSet { return s.required.Clone() }

// Pattern renders the per-position constraints as a glob, e.g. "[a-z]r[bcd]..".
func (s *Solver) Pattern() string {
	var b strings.Builder
	for _, p := range s.positions {
		b.WriteString(p.String())
	}
	return b.String()
}
