package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterSet(t *testing.T) {
	full := FullLetterSet()
	assert.Equal(t, 26, full.Len())
	assert.True(t, full.Full())
	full.Remove('e')
	assert.False(t, full.Has('e'))
	assert.Equal(t, 25, full.Len())

	var zero LetterSet
	assert.False(t, zero.Has('a'))
	zero.Add('q')
	zero.Add('a')
	zero.Add('!')
	assert.Equal(t, "aq", zero.String())

	clone := zero.Clone()
	clone.Remove('a')
	assert.True(t, zero.Has('a'), "clone must not share storage")
}
