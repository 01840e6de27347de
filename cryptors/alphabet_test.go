package cryptors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/cryptors"
)

func TestFromByte(t *testing.T) {
	for b := uint8(0); b < cryptors.Size; b++ {
		s, err := cryptors.FromByte(b)
		require.NoError(t, err)
		assert.Equal(t, cryptors.Symbol(b), s)
	}

	for _, b := range []uint8{26, 27, 100, 255} {
		_, err := cryptors.FromByte(b)
		assert.ErrorIs(t, err, cryptors.ErrInvalidSymbol, "value %d", b)
	}
}

func TestFromLetter(t *testing.T) {
	tests := []struct {
		name    string
		letter  rune
		want    cryptors.Symbol
		wantErr bool
	}{
		{"first letter", 'A', 0, false},
		{"middle letter", 'M', 12, false},
		{"last letter", 'Z', 25, false},
		{"lower case", 'a', 0, true},
		{"digit", '7', 0, true},
		{"before A", '@', 0, true},
		{"after Z", '[', 0, true},
		{"accented", 'Ä', 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cryptors.FromLetter(tt.letter)
			if tt.wantErr {
				assert.ErrorIs(t, err, cryptors.ErrInvalidSymbol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.letter, got.Letter())
			assert.Equal(t, string(tt.letter), got.String())
		})
	}
}

func TestParseSymbols(t *testing.T) {
	syms, err := cryptors.ParseSymbols("AZB")
	require.NoError(t, err)
	assert.Equal(t, []cryptors.Symbol{0, 25, 1}, syms)

	_, err = cryptors.ParseSymbols("AB C")
	assert.ErrorIs(t, err, cryptors.ErrInvalidSymbol)

	syms, err = cryptors.ParseSymbols("")
	require.NoError(t, err)
	assert.Empty(t, syms)
}

func TestAddSubWrap(t *testing.T) {
	assert.Equal(t, cryptors.Symbol(1), cryptors.Symbol(0).Add(1))
	assert.Equal(t, cryptors.Symbol(0), cryptors.Symbol(25).Add(1))
	assert.Equal(t, cryptors.Symbol(25), cryptors.Symbol(0).Sub(1))
	assert.Equal(t, cryptors.Symbol(3), cryptors.Symbol(3).Add(26))
	assert.Equal(t, cryptors.Symbol(3), cryptors.Symbol(3).Sub(52))
	assert.Equal(t, cryptors.Symbol(21), cryptors.Symbol(0).Add(255))
	assert.Equal(t, cryptors.Symbol(5), cryptors.Symbol(0).Sub(255))

	for i := 0; i < cryptors.Size; i++ {
		s := cryptors.Symbol(i)
		for n := 0; n < 256; n++ {
			got := s.Add(uint8(n))
			assert.Less(t, int(got), cryptors.Size)
			assert.Equal(t, s, got.Sub(uint8(n)))
		}
	}
}
