// Package letters turns arbitrary text into the 26 letters a rotor machine
// can type, and lays ciphertext out in the traditional five letter groups.
package letters

import (
	"bufio"
	"io"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func notLetter(r rune) bool {
	return r < 'A' || r > 'Z'
}

// newTransformer decomposes accented letters, drops the accents, upper cases
// what is left and removes everything outside A-Z.
func newTransformer() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(unicode.ToUpper),
		runes.Remove(runes.Predicate(notLetter)),
	)
}

// NewReader returns a reader of the letters in r.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, newTransformer())
}

// Normalize returns the letters in s.
func Normalize(s string) string {
	res, _, err := transform.String(newTransformer(), s)
	if err != nil {
		return ""
	}

	return res
}

// GroupWriter writes letters in groups separated by spaces, starting a new
// line after every line full of groups.
type GroupWriter struct {
	w             *bufio.Writer
	groupSize     int
	groupsPerLine int
	count         int
}

// NewGroupWriter returns a GroupWriter for w.  A groupsPerLine of zero or
// less puts everything on one line.
func NewGroupWriter(w io.Writer, groupSize, groupsPerLine int) *GroupWriter {
	if groupSize <= 0 {
		groupSize = 5
	}

	return &GroupWriter{w: bufio.NewWriter(w), groupSize: groupSize, groupsPerLine: groupsPerLine}
}

func (g *GroupWriter) Write(p []byte) (int, error) {
	for i, b := range p {
		if g.count > 0 && g.count%g.groupSize == 0 {
			sep := byte(' ')
			if g.groupsPerLine > 0 && g.count%(g.groupSize*g.groupsPerLine) == 0 {
				sep = '\n'
			}

			if err := g.w.WriteByte(sep); err != nil {
				return i, err
			}
		}

		if err := g.w.WriteByte(b); err != nil {
			return i, err
		}

		g.count++
	}

	return len(p), nil
}

// Close ends the last line and flushes.  It does not close the underlying
// writer.
func (g *GroupWriter) Close() error {
	if g.count > 0 {
		if err := g.w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return g.w.Flush()
}
