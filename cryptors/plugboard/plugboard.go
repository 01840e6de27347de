// plugboard
package plugboard

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

// MaximumPairs is the number of cables that fit on a 26 letter plugboard.
const MaximumPairs = cryptors.Size / 2

// Pair is one plugboard cable; it swaps its two letters.
type Pair [2]cryptors.Symbol

// Plugboard is a set of disjoint letter swaps applied before and after the
// wheels.  Letters without a cable pass through unchanged.
type Plugboard struct {
	pairs []Pair
}

// New creates a Plugboard.  No letter may be used by more than one cable.
func New(pairs ...Pair) (*Plugboard, error) {
	if len(pairs) > MaximumPairs {
		return nil, fmt.Errorf("%w: %d pairs given, at most %d fit", cryptors.ErrDuplicatePlug, len(pairs), MaximumPairs)
	}

	var used bitops.Set
	pb := &Plugboard{pairs: make([]Pair, 0, len(pairs))}

	for _, p := range pairs {
		if p[0] >= cryptors.Size || p[1] >= cryptors.Size {
			return nil, fmt.Errorf("%w: pair %d-%d", cryptors.ErrInvalidSymbol, p[0], p[1])
		}

		if p[0] == p[1] {
			return nil, fmt.Errorf("%w: %s is paired with itself", cryptors.ErrDuplicatePlug, p[0])
		}

		for _, s := range p {
			if used.GetBit(uint(s)) {
				return nil, fmt.Errorf("%w: %s appears in more than one pair", cryptors.ErrDuplicatePlug, s)
			}

			used = used.SetBit(uint(s))
		}

		pb.pairs = append(pb.pairs, p)
	}

	return pb, nil
}

// Parse creates a Plugboard from space separated letter pairs such as
// "AV BS CG".  An empty string gives an empty plugboard.
func Parse(s string) (*Plugboard, error) {
	flds := strings.Fields(strings.ToUpper(s))
	pairs := make([]Pair, 0, len(flds))

	for _, fld := range flds {
		syms, err := cryptors.ParseSymbols(fld)
		if err != nil {
			return nil, err
		}

		if len(syms) != 2 {
			return nil, fmt.Errorf("%w: plugboard pair %q must have two letters", cryptors.ErrInvalidSymbol, fld)
		}

		pairs = append(pairs, Pair{syms[0], syms[1]})
	}

	return New(pairs...)
}

func (pb *Plugboard) Encode(x cryptors.Symbol) cryptors.Symbol {
	for _, p := range pb.pairs {
		switch x {
		case p[0]:
			return p[1]
		case p[1]:
			return p[0]
		}
	}

	return x
}

// Pairs returns a copy of the cables in the order they were given.
func (pb *Plugboard) Pairs() []Pair {
	return append([]Pair(nil), pb.pairs...)
}

func (pb *Plugboard) String() string {
	flds := make([]string, len(pb.pairs))
	for i, p := range pb.pairs {
		flds[i] = p[0].String() + p[1].String()
	}

	return strings.Join(flds, " ")
}
