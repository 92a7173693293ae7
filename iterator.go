package conciseset

import "math/bits"

// Iterator walks the elements of a Set or SubSet in ascending order. It
// is a pull iterator in the style of bufio.Scanner: call HasNext before
// every Next, and stop once HasNext reports false.
//
// An Iterator captures a snapshot of its source's modification counter at
// creation time. Any subsequent mutation of the source is reported as
// ErrConcurrentModification by both HasNext and Next; the iterator does
// not attempt to recover and continue.
type Iterator struct {
	words    []word
	checkMod func() error
	lo, hi   int

	wordIdx   int
	k         uint32
	total     uint32
	nextBlock int
	curBlock  int
	mask      word

	cur   int
	valid bool
}

func newIterator(words []word, lo, hi int, checkMod func() error) *Iterator {
	it := &Iterator{words: words, lo: lo, hi: hi, checkMod: checkMod}
	if len(words) > 0 {
		it.total = blockCount(words[0])
	}
	it.advance()
	return it
}

// loadNextBlock scans forward for the next non-empty block and loads its
// bitmap into it.mask/it.curBlock. It reports false once the word vector
// is exhausted.
func (it *Iterator) loadNextBlock() bool {
	for it.wordIdx < len(it.words) {
		m := literalBitmap(it.words[it.wordIdx], it.k)
		blk := it.nextBlock
		it.k++
		it.nextBlock++
		if it.k >= it.total {
			it.wordIdx++
			it.k = 0
			if it.wordIdx < len(it.words) {
				it.total = blockCount(it.words[it.wordIdx])
			}
		}
		if m != 0 {
			it.mask = m
			it.curBlock = blk
			return true
		}
	}
	return false
}

func (it *Iterator) advance() {
	for {
		if it.mask != 0 {
			bit := bits.TrailingZeros32(uint32(it.mask))
			it.mask &= it.mask - 1
			val := it.curBlock*BlockBits + bit
			if val >= it.hi {
				it.mask = 0
				it.wordIdx = len(it.words)
				it.valid = false
				return
			}
			if val < it.lo {
				continue
			}
			it.cur = val
			it.valid = true
			return
		}
		if !it.loadNextBlock() {
			it.valid = false
			return
		}
	}
}

// HasNext reports whether Next has another element to return.
func (it *Iterator) HasNext() (bool, error) {
	if it.checkMod != nil {
		if err := it.checkMod(); err != nil {
			return false, err
		}
	}
	return it.valid, nil
}

// Next returns the next element in ascending order.
func (it *Iterator) Next() (int, error) {
	if it.checkMod != nil {
		if err := it.checkMod(); err != nil {
			return 0, err
		}
	}
	if !it.valid {
		return 0, ErrNoSuchElement
	}
	v := it.cur
	it.advance()
	return v, nil
}

// ReverseIterator walks the elements of a Set or SubSet in descending
// order; see Iterator for the HasNext/Next pull-iteration contract and
// the concurrent-modification guarantee.
type ReverseIterator struct {
	words       []word
	checkMod    func() error
	lo, hi      int
	blockStarts []int

	wordIdx  int
	k        int
	total    uint32
	blockIdx int
	mask     word

	cur   int
	valid bool
}

func newReverseIterator(words []word, lo, hi int, checkMod func() error) *ReverseIterator {
	starts := make([]int, len(words)+1)
	for i, w := range words {
		starts[i+1] = starts[i] + int(blockCount(w))
	}
	it := &ReverseIterator{words: words, lo: lo, hi: hi, checkMod: checkMod, blockStarts: starts, wordIdx: len(words) - 1}
	if it.wordIdx >= 0 {
		it.total = blockCount(words[it.wordIdx])
		it.k = int(it.total) - 1
	}
	it.advance()
	return it
}

func (it *ReverseIterator) loadPrevBlock() bool {
	for it.wordIdx >= 0 {
		if it.k < 0 {
			it.wordIdx--
			if it.wordIdx < 0 {
				return false
			}
			it.total = blockCount(it.words[it.wordIdx])
			it.k = int(it.total) - 1
			continue
		}
		blk := it.blockStarts[it.wordIdx] + it.k
		m := literalBitmap(it.words[it.wordIdx], uint32(it.k))
		it.k--
		if m != 0 {
			it.mask = m
			it.blockIdx = blk
			return true
		}
	}
	return false
}

func (it *ReverseIterator) advance() {
	for {
		if it.mask != 0 {
			hi := bits.Len32(uint32(it.mask)) - 1
			it.mask &^= word(1) << hi
			val := it.blockIdx*BlockBits + hi
			if val < it.lo {
				it.mask = 0
				it.wordIdx = -1
				it.valid = false
				return
			}
			if val >= it.hi {
				continue
			}
			it.cur = val
			it.valid = true
			return
		}
		if !it.loadPrevBlock() {
			it.valid = false
			return
		}
	}
}

// HasNext reports whether Next has another element to return.
func (it *ReverseIterator) HasNext() (bool, error) {
	if it.checkMod != nil {
		if err := it.checkMod(); err != nil {
			return false, err
		}
	}
	return it.valid, nil
}

// Next returns the next element in descending order.
func (it *ReverseIterator) Next() (int, error) {
	if it.checkMod != nil {
		if err := it.checkMod(); err != nil {
			return 0, err
		}
	}
	if !it.valid {
		return 0, ErrNoSuchElement
	}
	v := it.cur
	it.advance()
	return v, nil
}

func (s *Set) modCheck(snapshot uint64) func() error {
	return func() error {
		if s.modCount != snapshot {
			return ErrConcurrentModification
		}
		return nil
	}
}

// Iterator returns an ascending iterator over s's elements.
func (s *Set) Iterator() *Iterator {
	return newIterator(s.words, 0, s.last+1, s.modCheck(s.modCount))
}

// ReverseIterator returns a descending iterator over s's elements.
func (s *Set) ReverseIterator() *ReverseIterator {
	return newReverseIterator(s.words, 0, s.last+1, s.modCheck(s.modCount))
}

// ToArray returns every element of s in ascending order.
func (s *Set) ToArray() []int {
	return drain(s.Iterator(), s.size)
}

// ToArraySlice appends every element of s, in ascending order, to buf[:0]
// and returns the result.
func (s *Set) ToArraySlice(buf []int) []int {
	buf = buf[:0]
	it := s.Iterator()
	for {
		ok, _ := it.HasNext()
		if !ok {
			break
		}
		v, _ := it.Next()
		buf = append(buf, v)
	}
	return buf
}

func drain(it *Iterator, sizeHint int) []int {
	out := make([]int, 0, sizeHint)
	for {
		ok, _ := it.HasNext()
		if !ok {
			break
		}
		v, _ := it.Next()
		out = append(out, v)
	}
	return out
}
