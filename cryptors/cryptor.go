// cyptor
package cryptors

const (
	// BlockSize is the number of symbols carried by one Block.
	BlockSize = 64
)

// Block is the data processed by an encrypt machine.  It consists of the
// number of symbols to process and the symbols themselves.
type Block struct {
	Length  int8
	Symbols [BlockSize]Symbol
}

// Encoder is implemented by every part of the signal path and by the machine
// that composes them.
type Encoder interface {
	Encode(Symbol) Symbol
}

// Apply encodes the first Length symbols of blk, in order.
func Apply(enc Encoder, blk *Block) *Block {
	for i := 0; i < int(blk.Length); i++ {
		blk.Symbols[i] = enc.Encode(blk.Symbols[i])
	}

	return blk
}

// EncryptMachine starts a goroutine that owns enc and encodes every block
// received on left, sending the result to the returned channel.  A block with
// a Length of zero or less is passed through and stops the machine.
func EncryptMachine(enc Encoder, left chan Block) chan Block {
	right := make(chan Block)
	go func(enc Encoder, left chan Block, right chan Block) {
		for {
			inp := <-left
			if inp.Length <= 0 {
				right <- inp
				break
			}

			Apply(enc, &inp)
			right <- inp
		}
	}(enc, left, right)

	return right
}

// CreateEncryptMachine chains the encoders so that a block sent on left passes
// through each of them in turn before it appears on right.
func CreateEncryptMachine(encs ...Encoder) (left chan Block, right chan Block) {
	if len(encs) == 0 {
		panic("you must give at least one encoder!")
	}

	left = make(chan Block)
	right = EncryptMachine(encs[0], left)

	for _, enc := range encs[1:] {
		right = EncryptMachine(enc, right)
	}

	return
}
