package conciseset

// tryMerge implements the canonical-form enforcer's rules (spec.md §4.7)
// for a single adjacent pair (a, c), a immediately before c. It returns
// the merged word and true if the pair is losslessly mergeable, or
// (0, false) if the pair must stay separate.
//
// Rules 1-2: two fills of the same polarity with no position bits combine
// into one fill of their summed length.
// Rules 3-4: a constant LITERAL (all-zero / all-one) adjacent to a fill of
// the matching polarity (no position bit) folds into that fill.
// Two adjacent constant LITERALs of the same polarity (all-zero or
// all-one) promote directly to a length-2 fill of that polarity — without
// this, every element-at-a-time construction path that happens to fill an
// entire block one bit at a time would leave two full LITERALs sitting
// next to each other instead of the ONE_FILL/ZERO_FILL a bulk-constructed
// equivalent set produces, breaking byte-equal canonical forms.
// Rule 5 (length-1 fill <-> LITERAL) is enforced structurally: every fill
// this package builds goes through encodeRun, which never emits a length-1
// fill, so there is never a length-1 fill for this function to see.
func tryMerge(a, c word) (word, bool) {
	ka, kc := classifyWord(a), classifyWord(c)

	switch {
	case ka == kindLiteral && isAllZeroLiteral(a) && kc == kindLiteral && isAllZeroLiteral(c):
		return encodeRun(false, 2, 0), true

	case ka == kindLiteral && isAllOneLiteral(a) && kc == kindLiteral && isAllOneLiteral(c):
		return encodeRun(true, 2, 0), true

	case ka == kindZeroFill && kc == kindZeroFill && positionBit(a) == 0 && positionBit(c) == 0:
		total := uint64(blockCount(a)) + uint64(blockCount(c))
		if total <= maxRunBlocks {
			return encodeRun(false, uint32(total), 0), true
		}

	case ka == kindOneFill && kc == kindOneFill && positionBit(a) == 0 && positionBit(c) == 0:
		total := uint64(blockCount(a)) + uint64(blockCount(c))
		if total <= maxRunBlocks {
			return encodeRun(true, uint32(total), 0), true
		}

	case ka == kindLiteral && isAllZeroLiteral(a) && kc == kindZeroFill && positionBit(c) == 0:
		total := uint64(blockCount(c)) + 1
		if total <= maxRunBlocks {
			return encodeRun(false, uint32(total), 0), true
		}

	case ka == kindZeroFill && positionBit(a) == 0 && kc == kindLiteral && isAllZeroLiteral(c):
		total := uint64(blockCount(a)) + 1
		if total <= maxRunBlocks {
			return encodeRun(false, uint32(total), 0), true
		}

	case ka == kindLiteral && isAllOneLiteral(a) && kc == kindOneFill && positionBit(c) == 0:
		total := uint64(blockCount(c)) + 1
		if total <= maxRunBlocks {
			return encodeRun(true, uint32(total), 0), true
		}

	case ka == kindOneFill && positionBit(a) == 0 && kc == kindLiteral && isAllOneLiteral(c):
		total := uint64(blockCount(a)) + 1
		if total <= maxRunBlocks {
			return encodeRun(true, uint32(total), 0), true
		}
	}
	return 0, false
}

// wordBuilder accumulates an append-only, left-to-right canonical word
// vector. Each Append performs one-step canonicalization against the
// builder's current last word (spec.md §4.3: "After each emitted word, the
// output builder performs one-step canonicalization against its previous
// word"). This is the shared output path for the dual-cursor engine, the
// tail-append fast path of element primitives, and bulk construction from a
// sorted stream.
type wordBuilder struct {
	words []word
}

// Append adds w to the builder, merging with the previous word if possible.
// A single merge attempt is sufficient: the vector built so far is already
// canonical, so a newly formed merge word can only ever need to check
// against the one word before it.
func (b *wordBuilder) Append(w word) {
	n := len(b.words)
	if n > 0 {
		if merged, ok := tryMerge(b.words[n-1], w); ok {
			b.words[n-1] = merged
			return
		}
	}
	b.words = append(b.words, w)
}

// AppendRun appends `count` blocks of constant bit setBit, with an optional
// flipped bit in the first block, splitting only if count would overflow a
// single fill word (never happens for counts bounded by the element
// domain, but kept for defensive correctness).
func (b *wordBuilder) AppendRun(setBit bool, count uint32, flipPos uint32) {
	for count > maxRunBlocks {
		b.Append(encodeRun(setBit, maxRunBlocks, flipPos))
		count -= maxRunBlocks
		flipPos = 0
	}
	if count > 0 {
		b.Append(encodeRun(setBit, count, flipPos))
	}
}

func (b *wordBuilder) Words() []word {
	return b.words
}

// canonicalizeAround repairs canonicality around index i after an in-place
// structural edit (a literal replaced, or a fill split into up to three
// words spliced at i). It tries merging (i-1,i) and (i,i+1), repeating
// until no further merge applies; both directions are needed here because,
// unlike wordBuilder.Append, the edit is not append-only.
func canonicalizeAround(words []word, i int) []word {
	for {
		merged := false
		if i > 0 {
			if m, ok := tryMerge(words[i-1], words[i]); ok {
				words[i-1] = m
				words = append(words[:i], words[i+1:]...)
				i--
				merged = true
				continue
			}
		}
		if i+1 < len(words) {
			if m, ok := tryMerge(words[i], words[i+1]); ok {
				words[i] = m
				words = append(words[:i+1], words[i+2:]...)
				merged = true
				continue
			}
		}
		if !merged {
			return words
		}
	}
}
