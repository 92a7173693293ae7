package conciseset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryMergeFillsSamePolarity(t *testing.T) {
	a := makeZeroFill(3, 0)
	c := makeZeroFill(4, 0)
	m, ok := tryMerge(a, c)
	assert.True(t, ok)
	assert.Equal(t, kindZeroFill, classifyWord(m))
	assert.Equal(t, uint32(7), blockCount(m))
}

func TestTryMergeRejectsPositionBit(t *testing.T) {
	a := makeZeroFill(3, 2)
	c := makeZeroFill(4, 0)
	_, ok := tryMerge(a, c)
	assert.False(t, ok)
}

func TestTryMergeLiteralIntoFill(t *testing.T) {
	allZero := makeLiteral(0)
	fill := makeZeroFill(5, 0)
	m, ok := tryMerge(allZero, fill)
	assert.True(t, ok)
	assert.Equal(t, uint32(6), blockCount(m))

	m2, ok := tryMerge(fill, allZero)
	assert.True(t, ok)
	assert.Equal(t, uint32(6), blockCount(m2))
}

func TestTryMergeLiteralDoesNotMergeAcrossPolarity(t *testing.T) {
	allZero := makeLiteral(0)
	oneFill := makeOneFill(5, 0)
	_, ok := tryMerge(allZero, oneFill)
	assert.False(t, ok)
}

func TestWordBuilderAppendMergesAdjacent(t *testing.T) {
	b := &wordBuilder{}
	b.AppendRun(false, 3, 0)
	b.AppendRun(false, 4, 0)
	assert.Len(t, b.Words(), 1)
	assert.Equal(t, uint32(7), blockCount(b.Words()[0]))
}

func TestWordBuilderAppendRunSplitsOverflow(t *testing.T) {
	b := &wordBuilder{}
	b.AppendRun(false, maxRunBlocks+10, 0)
	assert.Len(t, b.Words(), 2)
	assert.Equal(t, uint32(maxRunBlocks), blockCount(b.Words()[0]))
	assert.Equal(t, uint32(10), blockCount(b.Words()[1]))
}

func TestCanonicalizeAroundMergesBothSides(t *testing.T) {
	words := []word{makeZeroFill(3, 0), makeLiteral(0), makeZeroFill(2, 0)}
	words = canonicalizeAround(words, 1)
	assert.Len(t, words, 1)
	assert.Equal(t, uint32(6), blockCount(words[0]))
}
