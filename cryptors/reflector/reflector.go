// reflector
package reflector

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Reflector sends the signal back through the wheels.  Its wiring pairs every
// contact with a different one, so it has no direction.
type Reflector struct {
	wiring *permutator.Permutator
}

// New creates a Reflector.  The wiring must be its own inverse and must not
// map any contact to itself.
func New(w *permutator.Permutator) (*Reflector, error) {
	for i := 0; i < cryptors.Size; i++ {
		x := cryptors.Symbol(i)
		y := w.Forward(x)
		if y == x {
			return nil, fmt.Errorf("%w: %s is wired to itself", cryptors.ErrNonInvolutiveReflector, x)
		}

		if w.Forward(y) != x {
			return nil, fmt.Errorf("%w: %s goes to %s but %s goes to %s",
				cryptors.ErrNonInvolutiveReflector, x, y, y, w.Forward(y))
		}
	}

	return &Reflector{wiring: w}, nil
}

// FromString creates a Reflector from its 26 letter wiring.
func FromString(s string) (*Reflector, error) {
	w, err := permutator.FromString(s)
	if err != nil {
		return nil, err
	}

	return New(w)
}

func (r *Reflector) Encode(x cryptors.Symbol) cryptors.Symbol {
	return r.wiring.Forward(x)
}

func (r *Reflector) String() string {
	return r.wiring.String()
}
