// Package engine composes the plugboard, three rotors and the reflector into
// a working rotor cipher machine.
//
// An Engine is not safe for concurrent use: every call to Encode steps the
// rotors.  Use one Engine per message, or hand it to Machine so that a single
// goroutine owns it.
package engine

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
)

// NumberOfRotors is the number of stepping wheels in the machine.
const NumberOfRotors = 3

// Rotor slots, numbered in the order the signal meets them on its way to the
// reflector.
const (
	Right = iota
	Middle
	Left
)

var slotNames = [NumberOfRotors]string{"right", "middle", "left"}

// Engine is a rotor cipher machine.
type Engine struct {
	rotors     [NumberOfRotors]rotor.Rotor
	reflector  *reflector.Reflector
	plugboard  *plugboard.Plugboard
	ground     [NumberOfRotors]cryptors.Symbol // positions restored by Reset
	index      uint64
	doubleStep bool
	logger     zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger that receives turnover events at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDoubleStepping makes the middle wheel step on its own when it shows a
// turnover position, taking the left wheel with it, as the pawls of the
// wartime machines did.
func WithDoubleStepping() Option {
	return func(e *Engine) {
		e.doubleStep = true
	}
}

// New creates an Engine.  The rotors are given rightmost (fastest) first and
// are copied, so later changes to them do not affect the Engine.  A nil
// plugboard is an empty one.
func New(rotors [NumberOfRotors]*rotor.Rotor, ref *reflector.Reflector, pb *plugboard.Plugboard, opts ...Option) *Engine {
	if ref == nil {
		panic("you must give a reflector!")
	}

	if pb == nil {
		pb, _ = plugboard.New()
	}

	e := &Engine{
		reflector: ref,
		plugboard: pb,
		logger:    zerolog.Nop(),
	}

	for i, r := range rotors {
		if r == nil {
			panic(fmt.Sprintf("the %s rotor is missing!", slotNames[i]))
		}

		e.rotors[i] = *r
		e.ground[i] = r.Position()
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// step moves the wheels as a key is pressed.
func (e *Engine) step() {
	if e.doubleStep {
		middle := e.rotors[Middle].AtTurnover()
		if middle {
			e.rotors[Left].Turn()
			e.logger.Trace().Str("rotor", slotNames[Middle]).Msg("double step")
		}

		if middle || e.rotors[Right].AtTurnover() {
			e.rotors[Middle].Turn()
		}

		e.rotors[Right].Turn()
		return
	}

	for i := Right; i < NumberOfRotors; i++ {
		if !e.rotors[i].Turn() {
			break
		}

		e.logger.Trace().
			Str("rotor", slotNames[i]).
			Str("positions", e.Positions()).
			Msg("turnover")
	}
}

// Encode presses the key x and returns the letter that lights up.  The wheels
// step before the signal passes through them.
func (e *Engine) Encode(x cryptors.Symbol) cryptors.Symbol {
	e.step()
	e.index++

	x = e.plugboard.Encode(x)
	for i := Right; i <= Left; i++ {
		x = e.rotors[i].Encode(x)
	}

	x = e.reflector.Encode(x)
	for i := Left; i >= Right; i-- {
		x = e.rotors[i].Decode(x)
	}

	return e.plugboard.Encode(x)
}

// EncodeString encodes every letter of s.  Nothing is encoded unless every
// character of s is a letter from A to Z.
func (e *Engine) EncodeString(s string) (string, error) {
	syms, err := cryptors.ParseSymbols(s)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.Grow(len(syms))
	for _, sym := range syms {
		output.WriteRune(e.Encode(sym).Letter())
	}

	return output.String(), nil
}

// SetPosition sets the window letter of the wheel in slot i.  The new
// position is also the one Reset returns to.
func (e *Engine) SetPosition(i int, p cryptors.Symbol) {
	e.rotors[i].SetPosition(p)
	e.ground[i] = e.rotors[i].Position()
}

// SetPositions sets all three window letters, given left to right as they
// appear on the machine, e.g. "WXC".
func (e *Engine) SetPositions(windows string) error {
	syms, err := cryptors.ParseSymbols(windows)
	if err != nil {
		return err
	}

	if len(syms) != NumberOfRotors {
		return fmt.Errorf("%w: %q must have %d letters", cryptors.ErrInvalidSymbol, windows, NumberOfRotors)
	}

	for i, p := range syms {
		e.SetPosition(Left-i, p)
	}

	return nil
}

// Positions returns the window letters, left to right.
func (e *Engine) Positions() string {
	var output strings.Builder
	for i := Left; i >= Right; i-- {
		output.WriteRune(e.rotors[i].Position().Letter())
	}

	return output.String()
}

// SetRing sets the ring setting of the wheel in slot i.
func (e *Engine) SetRing(i int, ring cryptors.Symbol) {
	e.rotors[i].SetRing(ring)
}

// Rings returns the ring settings, left to right.
func (e *Engine) Rings() [NumberOfRotors]cryptors.Symbol {
	var rings [NumberOfRotors]cryptors.Symbol
	for i := range rings {
		rings[i] = e.rotors[Left-i].Ring()
	}

	return rings
}

// Reset returns the wheels to the positions they had when the Engine was
// created or last set with SetPosition(s).
func (e *Engine) Reset() {
	for i := range e.rotors {
		e.rotors[i].SetPosition(e.ground[i])
	}

	e.index = 0
}

// Index returns the number of keys pressed since the Engine was created or
// last Reset.
func (e *Engine) Index() uint64 {
	return e.index
}

// Machine starts a goroutine that owns the Engine and encodes the blocks sent
// on left.  Send a block with a zero Length to stop it.
func (e *Engine) Machine() (left chan cryptors.Block, right chan cryptors.Block) {
	return cryptors.CreateEncryptMachine(e)
}
