package conciseset

import (
	"fmt"
	"strings"
)

// DebugInfo renders the word-by-word structure of s: each word's kind,
// the block range it covers, and its bitmap or run length/position. It
// is meant for test failures and ad-hoc inspection, not for parsing.
func (s *Set) DebugInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "conciseset.Set{size=%d, last=%d, words=%d}\n", s.size, s.last, len(s.words))
	blockStart := 0
	for i, w := range s.words {
		n := blockCount(w)
		switch classifyWord(w) {
		case kindLiteral:
			fmt.Fprintf(&b, "  [%d] LITERAL   blocks=[%d,%d) bitmap=%031b\n", i, blockStart, blockStart+int(n), w&blockMask)
		case kindZeroFill:
			fmt.Fprintf(&b, "  [%d] ZERO_FILL blocks=[%d,%d) count=%d pos=%d\n", i, blockStart, blockStart+int(n), n, positionBit(w))
		case kindOneFill:
			fmt.Fprintf(&b, "  [%d] ONE_FILL  blocks=[%d,%d) count=%d pos=%d\n", i, blockStart, blockStart+int(n), n, positionBit(w))
		}
		blockStart += int(n)
	}
	return b.String()
}

// BitmapCompressionRatio is the ratio of the compressed word vector's bit
// size to the bit size of the equivalent uncompressed bitmap spanning
// [0, last].
func (s *Set) BitmapCompressionRatio() float64 {
	if s.last < 0 {
		return 0
	}
	return float64(len(s.words)*32) / float64(s.last+1)
}

// CollectionCompressionRatio is the ratio of the compressed word vector's
// bit size to the bit size of storing each element as a plain 32-bit
// integer.
func (s *Set) CollectionCompressionRatio() float64 {
	if s.size == 0 {
		return 0
	}
	return float64(len(s.words)*32) / float64(32*s.size)
}
