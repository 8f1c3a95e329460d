package solver

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const alphabetSize = 26

// LetterSet is a set of lowercase ASCII letters backed by a 26-bit bitset.
// The zero value is an empty set ready to use.
type LetterSet struct {
	bits *bitset.BitSet
}

// NewLetterSet returns a set holding the given letters. Non-letters are ignored.
func NewLetterSet(letters ...byte) LetterSet {
	s := LetterSet{bits: bitset.New(alphabetSize)}
	for _, l := range letters {
		s.Add(l)
	}
	return s
}

// FullLetterSet returns the set a–z.
func FullLetterSet() LetterSet {
	return LetterSet{bits: bitset.New(alphabetSize).Complement()}
}

// Has reports whether l is in the set.
func (s LetterSet) Has(l byte) bool {
	if s.bits == nil || !isLetter(l) {
		return false
	}
	return s.bits.Test(uint(l - 'a'))
}

// Add inserts l. Non-letters are ignored.
func (s *LetterSet) Add(l byte) {
	if !isLetter(l) {
		return
	}
	if s.bits == nil {
		s.bits = bitset.New(alphabetSize)
	}
	s.bits.Set(uint(l - 'a'))
}

// Remove deletes l if present.
func (s *LetterSet) Remove(l byte) {
	if s.bits == nil || !isLetter(l) {
		return
	}
	s.bits.Clear(uint(l - 'a'))
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Full reports whether every letter a–z is present.
func (s LetterSet) Full() bool { return s.Len() == alphabetSize }

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Len())
	if s.bits == nil {
		return out
	}
	for i, ok := s.bits.NextSet(0); ok && i < alphabetSize; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, byte('a'+i))
	}
	return out
}

// Clone returns an independent copy.
func (s LetterSet) Clone() LetterSet {
	if s.bits == nil {
		return LetterSet{}
	}
	return LetterSet{bits: s.bits.Clone()}
}

// String renders the members as one sorted string, e.g. "aer".
func (s LetterSet) String() string {
	var b strings.Builder
	for _, l := range s.Letters() {
		b.WriteByte(l)
	}
	return b.String()
}

func isLetter(l byte) bool { return l >= 'a' && l <= 'z' }
