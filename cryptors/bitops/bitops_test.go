package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var s Set
	assert.False(t, s.GetBit(0))
	assert.Equal(t, 0, s.Count())

	s = s.SetBit(0).SetBit(25).SetBit(12)
	assert.True(t, s.GetBit(0))
	assert.True(t, s.GetBit(12))
	assert.True(t, s.GetBit(25))
	assert.False(t, s.GetBit(1))
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []uint{0, 12, 25}, s.Bits())

	s = s.ClrBit(12)
	assert.False(t, s.GetBit(12))
	assert.Equal(t, []uint{0, 25}, s.Bits())

	// Setting a bit twice changes nothing.
	assert.Equal(t, s, s.SetBit(25))
	assert.Empty(t, Set(0).Bits())
}
