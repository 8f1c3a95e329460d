package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	p := OpenPosition()
	assert.Equal(t, "[a-z]", p.String())
	assert.True(t, p.Allows('z'))

	c := ConfirmedPosition('r')
	assert.Equal(t, "r", c.String())
	assert.True(t, c.Allows('r'))
	assert.False(t, c.Allows('s'))
	assert.Equal(t, 0, c.Open().Len())
}
