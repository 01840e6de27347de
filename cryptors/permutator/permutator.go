// permutator project permutator.go
package permutator

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
)

// Permutator is the internal wiring of a wheel: a bijection over the alphabet
// together with its inverse, both fixed at construction.
type Permutator struct {
	outputs [cryptors.Size]cryptors.Symbol // outputs[i] is where contact i is wired to.
	inverts [cryptors.Size]cryptors.Symbol // inverts[outputs[i]] == i
}

// New creates a Permutator from the output of every contact.  It fails if two
// contacts share an output.
func New(outputs [cryptors.Size]cryptors.Symbol) (*Permutator, error) {
	var p Permutator
	var seen bitops.Set

	for i, o := range outputs {
		if o >= cryptors.Size {
			return nil, fmt.Errorf("%w: output %d", cryptors.ErrInvalidSymbol, o)
		}

		if seen.GetBit(uint(o)) {
			return nil, fmt.Errorf("%w: %s is wired from more than one contact", cryptors.ErrNonBijectiveWiring, o)
		}

		seen = seen.SetBit(uint(o))
		p.outputs[i] = o
		p.inverts[o] = cryptors.Symbol(i)
	}

	return &p, nil
}

// FromString creates a Permutator from its 26 letter form, e.g.
// "EKMFLGDQVZNTOWYHXUSPAIBRCJ".
func FromString(s string) (*Permutator, error) {
	syms, err := cryptors.ParseSymbols(s)
	if err != nil {
		return nil, err
	}

	if len(syms) != cryptors.Size {
		return nil, fmt.Errorf("%w: %q has %d letters, want %d", cryptors.ErrNonBijectiveWiring, s, len(syms), cryptors.Size)
	}

	var outputs [cryptors.Size]cryptors.Symbol
	copy(outputs[:], syms)
	return New(outputs)
}

// Forward returns the contact x is wired to.
func (p *Permutator) Forward(x cryptors.Symbol) cryptors.Symbol {
	return p.outputs[x]
}

// Backward returns the contact wired to y.
func (p *Permutator) Backward(y cryptors.Symbol) cryptors.Symbol {
	return p.inverts[y]
}

func (p *Permutator) String() string {
	var output strings.Builder
	for _, o := range p.outputs {
		output.WriteRune(o.Letter())
	}

	return output.String()
}
