// Package machines holds the wheel and reflector wirings of the historical
// Enigma I and M3 machines and builds engines from daily key settings.
//
// Wheel order, ring settings and window positions are given left to right,
// the way they were written on key sheets.
package machines

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/engine"
)

var (
	ErrUnknownPart  = errors.New("unknown machine part")
	ErrInvalidRings = errors.New("invalid ring settings")
)

// RotorSpec is the wiring of a wheel and the window letters at which it
// carries the next wheel along.
type RotorSpec struct {
	Wiring    string
	Turnovers string
}

// Rotors are the wheels of the Enigma I and the Kriegsmarine M3.  Beta and
// Gamma are the thin wheels of the M4; they have no notches.
var Rotors = map[string]RotorSpec{
	"I":     {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q"},
	"II":    {"AJDKSIRUXBLHWTMCQGZNPYFVOE", "E"},
	"III":   {"BDFHJLCPRTXVZNYEIWGAKMUSQO", "V"},
	"IV":    {"ESOVPZJAYQUIRHXLNFTGKDCMWB", "J"},
	"V":     {"VZBRGITYUPSDNHLXAWMJQOFECK", "Z"},
	"VI":    {"JPGVOUMFYQBENHZRDKASXLICTW", "ZM"},
	"VII":   {"NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM"},
	"VIII":  {"FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM"},
	"BETA":  {"LEYJVCNIXWPBQMDRTAKZGFUHOS", ""},
	"GAMMA": {"FSOKANUERHMBTIYCWLQPZXVGJD", ""},
}

// Reflectors (Umkehrwalzen) B and C.
var Reflectors = map[string]string{
	"B": "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C": "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

var rotorOrder = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "BETA", "GAMMA"}

// RotorNames returns the wheel names in catalogue order.
func RotorNames() []string {
	return append([]string(nil), rotorOrder...)
}

// ReflectorNames returns the reflector names in alphabetical order.
func ReflectorNames() []string {
	names := make([]string, 0, len(Reflectors))
	for name := range Reflectors {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// NewRotor creates the named wheel at position A, ring setting 01.
func NewRotor(name string) (*rotor.Rotor, error) {
	spec, ok := Rotors[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: rotor %q", ErrUnknownPart, name)
	}

	w, err := permutator.FromString(spec.Wiring)
	if err != nil {
		return nil, err
	}

	turnovers, err := cryptors.ParseSymbols(spec.Turnovers)
	if err != nil {
		return nil, err
	}

	return rotor.New(w, turnovers...), nil
}

// NewReflector creates the named reflector.
func NewReflector(name string) (*reflector.Reflector, error) {
	wiring, ok := Reflectors[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: reflector %q", ErrUnknownPart, name)
	}

	return reflector.FromString(wiring)
}

// Settings is a complete key for a three wheel machine.
type Settings struct {
	Reflector  string
	Rotors     [engine.NumberOfRotors]string // left to right
	Rings      [engine.NumberOfRotors]int    // 1 to 26, left to right
	Positions  string                        // window letters, left to right
	Plugboard  string                        // e.g. "AV BS CG"
	DoubleStep bool
}

// Build creates an engine set to s.
func Build(s Settings, opts ...engine.Option) (*engine.Engine, error) {
	ref, err := NewReflector(s.Reflector)
	if err != nil {
		return nil, err
	}

	pb, err := plugboard.Parse(s.Plugboard)
	if err != nil {
		return nil, err
	}

	// The engine wants the rightmost wheel first.
	var rotors [engine.NumberOfRotors]*rotor.Rotor
	for i, name := range s.Rotors {
		r, err := NewRotor(name)
		if err != nil {
			return nil, err
		}

		ring := s.Rings[i]
		if ring == 0 {
			ring = 1
		}

		if ring < 1 || ring > cryptors.Size {
			return nil, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidRings, s.Rings[i], cryptors.Size)
		}

		r.SetRing(cryptors.Symbol(ring - 1))
		rotors[engine.Left-i] = r
	}

	if s.DoubleStep {
		opts = append(opts, engine.WithDoubleStepping())
	}

	e := engine.New(rotors, ref, pb, opts...)
	if s.Positions != "" {
		if err := e.SetPositions(strings.ToUpper(s.Positions)); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// ParseRotors splits a wheel order such as "II IV V" into its three names.
func ParseRotors(s string) ([engine.NumberOfRotors]string, error) {
	var names [engine.NumberOfRotors]string
	flds := strings.Fields(strings.ToUpper(s))
	if len(flds) != engine.NumberOfRotors {
		return names, fmt.Errorf("%w: wheel order %q must name %d rotors", ErrUnknownPart, s, engine.NumberOfRotors)
	}

	copy(names[:], flds)
	return names, nil
}

// ParseRings reads ring settings written either as numbers ("02 21 12") or
// as letters ("BUL").
func ParseRings(s string) ([engine.NumberOfRotors]int, error) {
	var rings [engine.NumberOfRotors]int
	flds := strings.Fields(strings.ToUpper(s))

	if len(flds) == 1 && len(flds[0]) == engine.NumberOfRotors {
		if syms, err := cryptors.ParseSymbols(flds[0]); err == nil {
			for i, sym := range syms {
				rings[i] = int(sym) + 1
			}

			return rings, nil
		}
	}

	if len(flds) != engine.NumberOfRotors {
		return rings, fmt.Errorf("%w: %q must give %d rings", ErrInvalidRings, s, engine.NumberOfRotors)
	}

	for i, fld := range flds {
		if sym, err := cryptors.FromLetter([]rune(fld)[0]); err == nil && len(fld) == 1 {
			rings[i] = int(sym) + 1
			continue
		}

		n, err := strconv.Atoi(fld)
		if err != nil || n < 1 || n > cryptors.Size {
			return rings, fmt.Errorf("%w: %q", ErrInvalidRings, fld)
		}

		rings[i] = n
	}

	return rings, nil
}
