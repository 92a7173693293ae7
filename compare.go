package conciseset

// CompareTo orders two Sets lexicographically by their ascending element
// sequence: the first differing element decides, and a set that is a
// strict prefix of the other (i.e. runs out first) sorts before it.
func (s *Set) CompareTo(other *Set) int {
	ai := s.Iterator()
	bi := other.Iterator()
	for {
		aok, _ := ai.HasNext()
		bok, _ := bi.HasNext()
		if !aok && !bok {
			return 0
		}
		if !aok {
			return -1
		}
		if !bok {
			return 1
		}
		av, _ := ai.Next()
		bv, _ := bi.Next()
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
}
