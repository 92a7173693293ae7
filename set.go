package conciseset

import (
	"fmt"
	"math/bits"
	"sort"
)

// Set is a compressed, ordered, duplicate-free set of integers in
// [0, MaxAllowed], stored as a Concise word vector. The zero value is not
// usable; construct one with New, FromSorted, FromIterator, or Clone.
//
// Set is not safe for concurrent use. Concurrent mutation of the same Set
// is undefined; concurrent mutation of disjoint Sets is safe.
type Set struct {
	words    []word
	size     int
	last     int // -1 when empty
	modCount uint64
}

// New returns an empty Set.
func New() *Set {
	return &Set{last: -1}
}

// FromSorted builds a Set from a strictly ascending, duplicate-free slice
// of elements. It returns ErrOutOfRange if any element is outside
// [0, MaxAllowed], or an error if the input is not strictly ascending.
func FromSorted(elements []int) (*Set, error) {
	b := &wordBuilder{}
	last := -1
	for _, e := range elements {
		if e < 0 || e > MaxAllowed {
			return nil, outOfRange(e)
		}
		if e <= last {
			return nil, fmt.Errorf("conciseset: FromSorted requires strictly ascending input, got %d after %d", e, last)
		}
		last = appendElement(b, last, e)
	}
	return &Set{words: b.Words(), size: len(elements), last: last}, nil
}

// FromIterator drains next (called until it returns ok=false) and builds a
// Set from the values seen, tolerating unsorted or duplicate input (unlike
// FromSorted, which requires an already-ascending stream).
func FromIterator(next func() (int, bool)) (*Set, error) {
	var elems []int
	for {
		v, ok := next()
		if !ok {
			break
		}
		if v < 0 || v > MaxAllowed {
			return nil, outOfRange(v)
		}
		elems = append(elems, v)
	}
	sort.Ints(elems)

	b := &wordBuilder{}
	last := -1
	count := 0
	for _, e := range elems {
		if e == last {
			continue
		}
		last = appendElement(b, last, e)
		count++
	}
	return &Set{words: b.Words(), size: count, last: last}, nil
}

// Clone returns an independent copy of s; mutating the clone never affects
// s and vice versa.
func (s *Set) Clone() *Set {
	words := make([]word, len(s.words))
	copy(words, s.words)
	return &Set{words: words, size: s.size, last: s.last}
}

// appendElement extends a builder's word vector with a new element known
// to be strictly greater than last (the highest element appended so far,
// or -1 if the builder is empty), and returns the new last. Shared by
// FromSorted/FromIterator (building via a free-standing builder) and
// Set.appendTail (building in place over s.words).
func appendElement(b *wordBuilder, last, e int) int {
	block := e / BlockBits
	off := uint32(e % BlockBits)
	lastBlock := -1
	if last >= 0 {
		lastBlock = last / BlockBits
	}
	if block == lastBlock {
		words := b.words
		n := len(words)
		mask := literalBitmap(words[n-1], 0) | (word(1) << off)
		words[n-1] = makeLiteral(mask)
		b.words = canonicalizeAround(words, n-1)
		return e
	}
	gap := block - lastBlock - 1
	if gap > 0 {
		b.AppendRun(false, uint32(gap), 0)
	}
	b.Append(encodeRun(false, 1, off+1))
	return e
}

// appendTail extends the tail of s with element i, which must be > s.last.
func (s *Set) appendTail(i int) {
	b := &wordBuilder{words: s.words}
	appendElement(b, s.last, i)
	s.words = b.words
}

// locate returns the word index covering `block`, the block's offset k
// within that word's run, and the cumulative block count before the word.
// If block lies beyond every word, idx == len(s.words).
func (s *Set) locate(block int) (idx int, k uint32, blockStart int) {
	cum := 0
	for i, w := range s.words {
		bc := int(blockCount(w))
		if block < cum+bc {
			return i, uint32(block - cum), cum
		}
		cum += bc
	}
	return len(s.words), 0, cum
}

// splitRunAt breaks the multi-block run at words[idx] into up to three
// words — a shorter leading run (if k > 0), a LITERAL for block k, and a
// shorter trailing run (if blocks remain after k) — and splices them in
// place of the original word. It returns the updated slice and the index
// of the new LITERAL, which still holds the run's original (unmutated)
// bitmap for that block.
func splitRunAt(words []word, idx int, k uint32) ([]word, int) {
	w := words[idx]
	n := blockCount(w)
	isOne := classifyWord(w) == kindOneFill
	p := positionBit(w)

	var repl []word
	if k > 0 {
		repl = append(repl, encodeRun(isOne, k, p))
	}
	midPos := len(repl)
	repl = append(repl, makeLiteral(literalBitmap(w, k)))
	if rem := n - k - 1; rem > 0 {
		repl = append(repl, encodeRun(isOne, rem, 0))
	}

	tail := append([]word(nil), words[idx+1:]...)
	words = append(words[:idx], repl...)
	words = append(words, tail...)
	return words, idx + midPos
}

// splitAt applies splitRunAt to s.words in place and returns the index of
// the isolated LITERAL.
func (s *Set) splitAt(idx int, k uint32) int {
	words, mid := splitRunAt(s.words, idx, k)
	s.words = words
	return mid
}

// mutateBit sets or clears the bit for element i, which must satisfy
// i <= s.last (the tail fast path in Add handles i > s.last separately).
// It reports whether the membership actually changed.
func (s *Set) mutateBit(i int, value bool) bool {
	block := i / BlockBits
	off := uint32(i % BlockBits)
	idx, k, _ := s.locate(block)
	if idx >= len(s.words) {
		return false
	}
	w := s.words[idx]
	cur := (literalBitmap(w, k)>>off)&1 != 0
	if cur == value {
		return false
	}

	target := idx
	if blockCount(w) > 1 {
		target = s.splitAt(idx, k)
	}
	mask := literalBitmap(s.words[target], 0)
	if value {
		mask |= word(1) << off
	} else {
		mask &^= word(1) << off
	}
	s.words[target] = makeLiteral(mask)
	s.words = canonicalizeAround(s.words, target)
	return true
}

// Add inserts i into s, returning whether the set changed. It fails with
// ErrOutOfRange if i is negative or exceeds MaxAllowed.
func (s *Set) Add(i int) (bool, error) {
	if i < 0 || i > MaxAllowed {
		return false, outOfRange(i)
	}
	if i > s.last {
		s.appendTail(i)
		s.size++
		s.last = i
		s.modCount++
		return true, nil
	}
	changed := s.mutateBit(i, true)
	if changed {
		s.size++
		s.modCount++
	}
	return changed, nil
}

// Remove deletes i from s, returning whether the set changed. It fails
// with ErrOutOfRange if i is negative or exceeds MaxAllowed.
func (s *Set) Remove(i int) (bool, error) {
	if i < 0 || i > MaxAllowed {
		return false, outOfRange(i)
	}
	if i > s.last {
		return false, nil
	}
	changed := s.mutateBit(i, false)
	if changed {
		s.size--
		s.modCount++
		if i == s.last {
			// Clearing the current last element can leave the word
			// vector's tail merged into a gap that now trails past the
			// new last (e.g. a literal clearing into an adjacent
			// zero-fill), the same trailing-content violation combine
			// and Complement guard against.
			s.last = lastOf(s.words)
			s.words = trimTrailing(s.words, s.last)
		}
	}
	return changed, nil
}

// Flip toggles membership of i, returning its new membership state.
func (s *Set) Flip(i int) (bool, error) {
	if i < 0 || i > MaxAllowed {
		return false, outOfRange(i)
	}
	if s.Contains(i) {
		_, err := s.Remove(i)
		return false, err
	}
	_, err := s.Add(i)
	return true, err
}

// Contains reports whether i is a member of s.
func (s *Set) Contains(i int) bool {
	if i < 0 || i > s.last {
		return false
	}
	block := i / BlockBits
	off := uint32(i % BlockBits)
	idx, k, _ := s.locate(block)
	if idx >= len(s.words) {
		return false
	}
	mask := literalBitmap(s.words[idx], k)
	return (mask>>off)&1 != 0
}

// First returns the smallest element, or ErrEmpty if s is empty.
func (s *Set) First() (int, error) {
	if s.last < 0 {
		return 0, ErrEmpty
	}
	blockStart := 0
	for _, w := range s.words {
		n := blockCount(w)
		switch classifyWord(w) {
		case kindLiteral:
			if mask := w & blockMask; mask != 0 {
				return blockStart*BlockBits + bits.TrailingZeros32(uint32(mask)), nil
			}
		case kindOneFill:
			if mask := literalBitmap(w, 0); mask != 0 {
				return blockStart*BlockBits + bits.TrailingZeros32(uint32(mask)), nil
			}
		case kindZeroFill:
			if p := positionBit(w); p != 0 {
				return blockStart*BlockBits + int(p-1), nil
			}
		}
		blockStart += int(n)
	}
	return 0, ErrEmpty
}

// Last returns the largest element, or ErrEmpty if s is empty.
func (s *Set) Last() (int, error) {
	if s.last < 0 {
		return 0, ErrEmpty
	}
	return s.last, nil
}

// lastOf scans a word vector and returns its highest set bit, or -1 if
// every word is empty (used after Remove/Complement, where the cached
// `last` can no longer be trusted and must be recomputed).
func lastOf(words []word) int {
	blockStart := 0
	result := -1
	for _, w := range words {
		n := blockCount(w)
		switch classifyWord(w) {
		case kindLiteral:
			if mask := w & blockMask; mask != 0 {
				result = blockStart*BlockBits + bits.Len32(uint32(mask)) - 1
			}
		case kindOneFill:
			if n > 1 {
				result = (blockStart+int(n)-1)*BlockBits + (BlockBits - 1)
			} else if mask := literalBitmap(w, 0); mask != 0 {
				result = blockStart*BlockBits + bits.Len32(uint32(mask)) - 1
			}
		case kindZeroFill:
			if p := positionBit(w); p != 0 {
				result = blockStart*BlockBits + int(p-1)
			}
		}
		blockStart += int(n)
	}
	return result
}

// runPopcount returns the number of set bits across all n blocks of run w.
func runPopcount(w word, n uint32) int {
	switch classifyWord(w) {
	case kindLiteral:
		return bits.OnesCount32(uint32(w & blockMask))
	case kindZeroFill:
		if positionBit(w) != 0 {
			return 1
		}
		return 0
	default: // kindOneFill
		total := int(n) * BlockBits
		if positionBit(w) != 0 {
			total--
		}
		return total
	}
}

// runPrefixPopcount returns the number of set bits in blocks [0, k) of run
// w, i.e. strictly before block k.
func runPrefixPopcount(w word, k uint32) int {
	if k == 0 {
		return 0
	}
	switch classifyWord(w) {
	case kindZeroFill:
		if positionBit(w) != 0 {
			return 1
		}
		return 0
	case kindOneFill:
		block0 := BlockBits
		if positionBit(w) != 0 {
			block0--
		}
		return block0 + int(k-1)*BlockBits
	default:
		return 0
	}
}

// sizeOf returns the total number of set bits across a word vector.
func sizeOf(words []word) int {
	total := 0
	for _, w := range words {
		total += runPopcount(w, blockCount(w))
	}
	return total
}

// Size returns the number of elements in s.
func (s *Set) Size() int { return s.size }

// IsEmpty reports whether s has no elements.
func (s *Set) IsEmpty() bool { return s.size == 0 }

// Clear removes every element from s.
func (s *Set) Clear() {
	if s.size == 0 {
		return
	}
	s.words = nil
	s.size = 0
	s.last = -1
	s.modCount++
}

// nthSetBit returns the position of the n-th (0-indexed, ascending) set
// bit of a 31-bit mask.
func nthSetBit(mask word, n int) int {
	for i := 0; i < n; i++ {
		mask &= mask - 1
	}
	return bits.TrailingZeros32(uint32(mask))
}

// Get returns the rank-th smallest element (0-indexed). It fails with
// ErrOutOfRange if rank is outside [0, Size()).
func (s *Set) Get(rank int) (int, error) {
	if rank < 0 || rank >= s.size {
		return 0, outOfRange(rank)
	}
	remaining := rank
	blockStart := 0
	for _, w := range s.words {
		n := blockCount(w)
		pc := runPopcount(w, n)
		if remaining < pc {
			switch classifyWord(w) {
			case kindLiteral:
				return blockStart*BlockBits + nthSetBit(w&blockMask, remaining), nil
			case kindZeroFill:
				// pc == 1 here (only the flipped bit qualifies).
				return blockStart*BlockBits + int(positionBit(w)-1), nil
			default: // kindOneFill
				block0 := BlockBits
				hasFlip := positionBit(w) != 0
				if hasFlip {
					block0--
				}
				if remaining < block0 {
					mask := literalBitmap(w, 0)
					return blockStart*BlockBits + nthSetBit(mask, remaining), nil
				}
				rem := remaining - block0
				blk := 1 + rem/BlockBits
				bit := rem % BlockBits
				return (blockStart+int(blk))*BlockBits + bit, nil
			}
		}
		remaining -= pc
		blockStart += int(n)
	}
	return 0, ErrEmpty
}

// IndexOf returns the rank of i (its 0-indexed position in ascending
// order), or (-1, nil) if i is not a member. It fails with ErrOutOfRange
// if i is outside [0, MaxAllowed].
func (s *Set) IndexOf(i int) (int, error) {
	if i < 0 || i > MaxAllowed {
		return -1, outOfRange(i)
	}
	if i > s.last {
		return -1, nil
	}
	block := i / BlockBits
	off := uint32(i % BlockBits)
	rank := 0
	blockStart := 0
	for _, w := range s.words {
		n := blockCount(w)
		if block < blockStart+int(n) {
			k := uint32(block - blockStart)
			mask := literalBitmap(w, k)
			if (mask>>off)&1 == 0 {
				return -1, nil
			}
			rank += runPrefixPopcount(w, k)
			rank += bits.OnesCount32(uint32(mask & (word(1)<<off - 1)))
			return rank, nil
		}
		rank += runPopcount(w, n)
		blockStart += int(n)
	}
	return -1, nil
}

// rangeWords builds the canonical word vector representing exactly the
// contiguous range [from, to), using the block-aware run encoder rather
// than a per-element loop.
func rangeWords(from, to int) []word {
	b := &wordBuilder{}
	if from >= to {
		return nil
	}
	fromBlock := from / BlockBits
	toBlock := (to - 1) / BlockBits

	if fromBlock > 0 {
		b.AppendRun(false, uint32(fromBlock), 0)
	}
	lo := uint32(from % BlockBits)
	if fromBlock == toBlock {
		hi := uint32((to - 1) % BlockBits)
		mask := (blockMask >> (BlockBits - 1 - hi)) &^ (word(1)<<lo - 1)
		b.Append(makeLiteral(mask))
		return b.Words()
	}

	firstMask := blockMask &^ (word(1)<<lo - 1)
	b.Append(makeLiteral(firstMask))
	if mid := toBlock - fromBlock - 1; mid > 0 {
		b.AppendRun(true, uint32(mid), 0)
	}
	hi := uint32((to - 1) % BlockBits)
	lastMask := blockMask >> (BlockBits - 1 - hi)
	b.Append(makeLiteral(lastMask))
	return b.Words()
}

func makeRangeSet(from, to int) *Set {
	words := rangeWords(from, to)
	return &Set{words: words, size: sizeOf(words), last: lastOf(words)}
}

// validateBound reports ErrOutOfRange if the half-open range [from, to)
// is not contained in the legal element domain. The bounds are checked
// even for an empty range (from>=to); an empty range that passes is a
// no-op for ClearRange/FillRange.
func validateBound(from, to int) error {
	if from < 0 {
		return outOfRange(from)
	}
	if to > MaxAllowed+1 {
		return outOfRange(to - 1)
	}
	return nil
}

// ClearRange removes every element in [from, to) from s.
func (s *Set) ClearRange(from, to int) error {
	if err := validateBound(from, to); err != nil {
		return err
	}
	if from >= to {
		return nil
	}
	res := combine(s, makeRangeSet(from, to), opAndNot)
	s.words, s.size, s.last = res.words, res.size, res.last
	s.modCount++
	return nil
}

// FillRange adds every element in [from, to) to s.
func (s *Set) FillRange(from, to int) error {
	if err := validateBound(from, to); err != nil {
		return err
	}
	if from >= to {
		return nil
	}
	res := combine(s, makeRangeSet(from, to), opOr)
	s.words, s.size, s.last = res.words, res.size, res.last
	s.modCount++
	return nil
}

// AddAll mutates s into s ∪ other, returning whether s changed.
func (s *Set) AddAll(other *Set) bool {
	res := combine(s, other, opOr)
	changed := res.size != s.size
	s.words, s.size, s.last = res.words, res.size, res.last
	if changed {
		s.modCount++
	}
	return changed
}

// RemoveAll mutates s into s \ other, returning whether s changed.
func (s *Set) RemoveAll(other *Set) bool {
	res := combine(s, other, opAndNot)
	changed := res.size != s.size
	s.words, s.size, s.last = res.words, res.size, res.last
	if changed {
		s.modCount++
	}
	return changed
}

// RetainAll mutates s into s ∩ other, returning whether s changed.
func (s *Set) RetainAll(other *Set) bool {
	res := combine(s, other, opAnd)
	changed := res.size != s.size
	s.words, s.size, s.last = res.words, res.size, res.last
	if changed {
		s.modCount++
	}
	return changed
}

// ContainsAll reports whether every element of other is also in s.
func (s *Set) ContainsAll(other *Set) bool {
	return IntersectionSize(s, other) == other.size
}

// ContainsAny reports whether s and other share at least one element.
func (s *Set) ContainsAny(other *Set) bool {
	return IntersectionSize(s, other) > 0
}

// ContainsAtLeast reports whether s and other share at least k elements.
func (s *Set) ContainsAtLeast(other *Set, k int) bool {
	return IntersectionSize(s, other) >= k
}
