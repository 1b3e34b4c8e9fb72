package collabkit

import "math/rand"

var (
	textSymbols     = []rune{'✋', '✅', '❌', '❎', '⭐'}
	textPictographs = []rune{'🍐', '🏀', '🍗', '🎉'}
)

// TextGenerator produces an unbounded pseudo-random sequence of runes for
// building test strings that exercise length- and byte-size-sensitive code.
// Each rune is drawn independently from a chain of weighted coin flips,
// first match wins: newline (1/5), a two-byte Greek letter (1/8), a
// three-byte symbol (1/10), a four-byte pictograph (1/12), and otherwise a
// lowercase ASCII letter. The flips are evaluated in that exact order, so a
// generator over a seeded rand.Rand reproduces the same sequence every run.
//
// The random source is caller-supplied; TextGenerator keeps no other state
// and is not safe for concurrent use (neither is rand.Rand).
type TextGenerator struct {
	rng *rand.Rand
}

// NewTextGenerator returns a generator drawing from rng.
func NewTextGenerator(rng *rand.Rand) *TextGenerator {
	return &TextGenerator{rng: rng}
}

// Next returns the next rune of the sequence. The sequence is infinite;
// consumers truncate at whatever length they need.
func (g *TextGenerator) Next() rune {
	switch {
	case g.chance(1.0 / 5.0):
		return '\n'
	// two-byte greek letters
	case g.chance(1.0 / 8.0):
		return 'α' + rune(g.rng.Intn(int('ω'-'α')+1))
	// three-byte characters
	case g.chance(1.0 / 10.0):
		return textSymbols[g.rng.Intn(len(textSymbols))]
	// four-byte characters
	case g.chance(1.0 / 12.0):
		return textPictographs[g.rng.Intn(len(textPictographs))]
	// ascii letters
	default:
		return 'a' + rune(g.rng.Intn(26))
	}
}

// Runes returns the next n runes of the sequence.
func (g *TextGenerator) Runes(n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// String returns the next n runes of the sequence as a string.
func (g *TextGenerator) String(n int) string {
	return string(g.Runes(n))
}

func (g *TextGenerator) chance(p float64) bool {
	return g.rng.Float64() < p
}
