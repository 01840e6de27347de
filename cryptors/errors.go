package cryptors

import "errors"

// Construction errors.  A part that fails validation is never built; encoding
// through valid parts cannot fail.
var (
	ErrInvalidSymbol          = errors.New("invalid symbol")
	ErrNonBijectiveWiring     = errors.New("wiring is not a bijection")
	ErrNonInvolutiveReflector = errors.New("reflector wiring is not a fixed-point-free involution")
	ErrDuplicatePlug          = errors.New("duplicate plugboard pairing")
)
