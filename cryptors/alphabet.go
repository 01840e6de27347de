// alphabet
package cryptors

import (
	"fmt"
)

// Size is the number of symbols on the keyboard, the lamp board and every
// wheel of the machine.
const Size = 26

// Symbol is one letter of the machine's alphabet held as a residue modulo 26.
// 'A' is 0 and 'Z' is 25.
type Symbol uint8

// FromByte converts a raw value in [0,26) to a Symbol.
func FromByte(b uint8) (Symbol, error) {
	if b >= Size {
		return 0, fmt.Errorf("%w: value %d", ErrInvalidSymbol, b)
	}

	return Symbol(b), nil
}

// FromLetter converts an upper case letter to a Symbol.
func FromLetter(r rune) (Symbol, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("%w: letter %q", ErrInvalidSymbol, r)
	}

	return Symbol(r - 'A'), nil
}

// ParseSymbols converts every character of s to a Symbol.
func ParseSymbols(s string) ([]Symbol, error) {
	syms := make([]Symbol, 0, len(s))

	for _, r := range s {
		sym, err := FromLetter(r)
		if err != nil {
			return nil, err
		}

		syms = append(syms, sym)
	}

	return syms, nil
}

// Add returns s advanced by n places around the alphabet.
func (s Symbol) Add(n uint8) Symbol {
	return Symbol((uint(s) + uint(n)) % Size)
}

// Sub returns s moved back by n places around the alphabet.
func (s Symbol) Sub(n uint8) Symbol {
	return Symbol((uint(s) + Size - uint(n)%Size) % Size)
}

func (s Symbol) Letter() rune {
	return rune('A' + s%Size)
}

func (s Symbol) String() string {
	return string(s.Letter())
}
