package plugboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgallie/enigma/cryptors"
)

func sym(r rune) cryptors.Symbol {
	return cryptors.Symbol(r - 'A')
}

func TestEncode(t *testing.T) {
	pb, err := New(Pair{sym('A'), sym('B')}, Pair{sym('C'), sym('D')})
	require.NoError(t, err)

	assert.Equal(t, sym('B'), pb.Encode(sym('A')))
	assert.Equal(t, sym('A'), pb.Encode(sym('B')))
	assert.Equal(t, sym('D'), pb.Encode(sym('C')))
	assert.Equal(t, sym('C'), pb.Encode(sym('D')))
	assert.Equal(t, sym('E'), pb.Encode(sym('E')))
	assert.Equal(t, sym('Z'), pb.Encode(sym('Z')))
}

func TestSelfInverse(t *testing.T) {
	for _, pairs := range []string{"", "AB", "AV BS CG DL FU HZ IN KM OW RX", "AZ BY CX DW EV FU GT HS IR JQ KP LO MN"} {
		t.Run(pairs, func(t *testing.T) {
			pb, err := Parse(pairs)
			require.NoError(t, err)
			for i := 0; i < cryptors.Size; i++ {
				x := cryptors.Symbol(i)
				assert.Equal(t, x, pb.Encode(pb.Encode(x)))
			}
			assert.Equal(t, pairs, pb.String())
		})
	}
}

func TestEmptyIsIdentity(t *testing.T) {
	pb, err := New()
	require.NoError(t, err)
	for i := 0; i < cryptors.Size; i++ {
		assert.Equal(t, cryptors.Symbol(i), pb.Encode(cryptors.Symbol(i)))
	}
	assert.Empty(t, pb.Pairs())
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []Pair
		wantErr error
	}{
		{"letter in two pairs", []Pair{{sym('A'), sym('B')}, {sym('B'), sym('C')}}, cryptors.ErrDuplicatePlug},
		{"same pair twice", []Pair{{sym('A'), sym('B')}, {sym('A'), sym('B')}}, cryptors.ErrDuplicatePlug},
		{"reversed pair", []Pair{{sym('A'), sym('B')}, {sym('B'), sym('A')}}, cryptors.ErrDuplicatePlug},
		{"letter paired with itself", []Pair{{sym('A'), sym('A')}}, cryptors.ErrDuplicatePlug},
		{"out of range", []Pair{{sym('A'), 26}}, cryptors.ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb, err := New(tt.pairs...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, pb)
		})
	}
}

func TestNewRejectsTooManyPairs(t *testing.T) {
	pairs := make([]Pair, MaximumPairs+1)
	for i := range pairs {
		pairs[i] = Pair{cryptors.Symbol(2 * i % cryptors.Size), cryptors.Symbol((2*i + 1) % cryptors.Size)}
	}

	_, err := New(pairs...)
	assert.ErrorIs(t, err, cryptors.ErrDuplicatePlug)
}

func TestParse(t *testing.T) {
	pb, err := Parse("av  bs\tCG")
	require.NoError(t, err)
	assert.Equal(t, []Pair{{sym('A'), sym('V')}, {sym('B'), sym('S')}, {sym('C'), sym('G')}}, pb.Pairs())
	assert.Equal(t, "AV BS CG", pb.String())

	_, err = Parse("AB BC")
	assert.ErrorIs(t, err, cryptors.ErrDuplicatePlug)

	_, err = Parse("ABC")
	assert.ErrorIs(t, err, cryptors.ErrInvalidSymbol)

	_, err = Parse("A1")
	assert.ErrorIs(t, err, cryptors.ErrInvalidSymbol)
}

func TestPairsIsACopy(t *testing.T) {
	pb, err := Parse("AB")
	require.NoError(t, err)
	pairs := pb.Pairs()
	pairs[0] = Pair{sym('Y'), sym('Z')}
	assert.Equal(t, sym('B'), pb.Encode(sym('A')))
}
