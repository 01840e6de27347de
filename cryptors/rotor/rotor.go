// rotor
package rotor

import (
	"bytes"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/bitops"
	"github.com/bgallie/enigma/cryptors/permutator"
)

// Rotor is a wired wheel.  The wiring and turnover notches are fixed; the ring
// setting is chosen during key setup and the position advances as keys are
// pressed.
type Rotor struct {
	wiring    permutator.Permutator
	ring      cryptors.Symbol
	current   cryptors.Symbol
	turnovers bitops.Set
}

// New creates a Rotor at position A with ring setting A.  Stepping off any of
// the turnover positions also steps the next wheel to the left.
func New(w *permutator.Permutator, turnovers ...cryptors.Symbol) *Rotor {
	r := Rotor{wiring: *w}
	for _, t := range turnovers {
		r.turnovers = r.turnovers.SetBit(uint(t % cryptors.Size))
	}

	return &r
}

// SetPosition sets the letter shown in the window.
func (r *Rotor) SetPosition(p cryptors.Symbol) {
	r.current = p % cryptors.Size
}

func (r *Rotor) Position() cryptors.Symbol {
	return r.current
}

// SetRing sets the offset of the alphabet ring against the wiring core.  Ring
// setting A (01) is no offset.
func (r *Rotor) SetRing(ring cryptors.Symbol) {
	r.ring = ring % cryptors.Size
}

func (r *Rotor) Ring() cryptors.Symbol {
	return r.ring
}

// Turnovers returns the turnover positions in alphabetical order.
func (r *Rotor) Turnovers() []cryptors.Symbol {
	bits := r.turnovers.Bits()
	res := make([]cryptors.Symbol, len(bits))
	for i, b := range bits {
		res[i] = cryptors.Symbol(b)
	}

	return res
}

// AtTurnover reports whether the wheel currently shows a turnover position.
func (r *Rotor) AtTurnover() bool {
	return r.turnovers.GetBit(uint(r.current))
}

// Turn steps the wheel one position and reports whether the position it left
// was a turnover position, i.e. whether the next wheel must step as well.
func (r *Rotor) Turn() bool {
	turnover := r.AtTurnover()
	r.current = r.current.Add(1)
	return turnover
}

// offset is how far the wiring core is turned against the alphabet.
func (r *Rotor) offset() uint8 {
	return uint8(r.current.Sub(uint8(r.ring)))
}

// Encode passes x through the wheel towards the reflector.
func (r *Rotor) Encode(x cryptors.Symbol) cryptors.Symbol {
	d := r.offset()
	return r.wiring.Forward(x.Add(d)).Sub(d)
}

// Decode passes y through the wheel on the way back from the reflector.
func (r *Rotor) Decode(y cryptors.Symbol) cryptors.Symbol {
	d := r.offset()
	return r.wiring.Backward(y.Add(d)).Sub(d)
}

func (r *Rotor) String() string {
	var output bytes.Buffer
	output.WriteString(fmt.Sprintf("rotor.New(%q", r.wiring.String()))
	for _, t := range r.Turnovers() {
		output.WriteString(fmt.Sprintf(", %q", t.Letter()))
	}

	output.WriteString(fmt.Sprintf(") position %s ring %02d", r.current, int(r.ring)+1))
	return output.String()
}
