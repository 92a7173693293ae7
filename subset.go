package conciseset

// SubSet is a live, non-owning ranged view over [from, to) of a parent
// Set. It never copies the parent's word vector: every read walks the
// parent's words with bounds applied, and every write delegates to the
// parent after clamping or rejecting elements outside the view's range.
// A SubSet observes the parent's mutations immediately, including ones
// made directly on the parent or through a different view.
type SubSet struct {
	parent *Set
	from   int
	to     int
}

// SubSet returns a view over [from, to) of s.
func (s *Set) SubSet(from, to int) *SubSet {
	return &SubSet{parent: s, from: from, to: to}
}

// HeadSet returns a view over [0, to) of s.
func (s *Set) HeadSet(to int) *SubSet {
	return s.SubSet(0, to)
}

// TailSet returns a view over [from, MaxAllowed] of s.
func (s *Set) TailSet(from int) *SubSet {
	return s.SubSet(from, MaxAllowed+1)
}

func (v *SubSet) rangeSet() *Set {
	return makeRangeSet(v.from, v.to)
}

// Add inserts i into the parent set, failing with ErrOutOfBounds if i
// lies outside the view's range.
func (v *SubSet) Add(i int) (bool, error) {
	if i < v.from || i >= v.to {
		return false, outOfBounds(i)
	}
	return v.parent.Add(i)
}

// Remove deletes i from the parent set. Removing an element outside the
// view's range is a no-op, not an error.
func (v *SubSet) Remove(i int) (bool, error) {
	if i < v.from || i >= v.to {
		return false, nil
	}
	return v.parent.Remove(i)
}

// Contains reports whether i is in range and a member of the parent set.
func (v *SubSet) Contains(i int) bool {
	return i >= v.from && i < v.to && v.parent.Contains(i)
}

// Size returns the number of parent elements falling within the view.
func (v *SubSet) Size() int {
	return IntersectionSize(v.parent, v.rangeSet())
}

// IsEmpty reports whether the view contains no elements.
func (v *SubSet) IsEmpty() bool {
	return v.Size() == 0
}

// First returns the smallest element in the view, or ErrEmpty if none.
func (v *SubSet) First() (int, error) {
	it := v.Iterator()
	ok, err := it.HasNext()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrEmpty
	}
	return it.Next()
}

// Last returns the largest element in the view, or ErrEmpty if none.
func (v *SubSet) Last() (int, error) {
	it := v.ReverseIterator()
	ok, err := it.HasNext()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrEmpty
	}
	return it.Next()
}

// Iterator returns an ascending iterator over the view's elements. It
// shares the parent's modification counter, so mutating the parent (or
// any other view over it) invalidates iterators already in flight.
func (v *SubSet) Iterator() *Iterator {
	return newIterator(v.parent.words, v.from, v.to, v.parent.modCheck(v.parent.modCount))
}

// ReverseIterator returns a descending iterator over the view's elements.
func (v *SubSet) ReverseIterator() *ReverseIterator {
	return newReverseIterator(v.parent.words, v.from, v.to, v.parent.modCheck(v.parent.modCount))
}

// ToArray returns every element in the view, in ascending order.
func (v *SubSet) ToArray() []int {
	return drain(v.Iterator(), 0)
}

// Clear removes every element in the view's range from the parent set.
func (v *SubSet) Clear() {
	v.parent.RemoveAll(v.rangeSet())
}

// FillRange adds every element in the view's range to the parent set.
func (v *SubSet) FillRange() {
	_ = v.parent.FillRange(v.from, v.to)
}

// restrict intersects other with the view's range, so a bulk mutation
// through the view can never touch elements outside [from, to).
func (v *SubSet) restrict(other *Set) *Set {
	return Intersection(other, v.rangeSet())
}

// AddAll adds every element of other that falls within the view's range
// to the parent set.
func (v *SubSet) AddAll(other *Set) bool {
	return v.parent.AddAll(v.restrict(other))
}

// RemoveAll removes every element of other that falls within the view's
// range from the parent set.
func (v *SubSet) RemoveAll(other *Set) bool {
	return v.parent.RemoveAll(v.restrict(other))
}

// RetainAll removes every element within the view's range that is not
// also in other, leaving elements outside the range untouched.
func (v *SubSet) RetainAll(other *Set) bool {
	outside := Union(makeRangeSet(0, v.from), makeRangeSet(v.to, MaxAllowed+1))
	keep := Union(other, outside)
	return v.parent.RetainAll(keep)
}

// ContainsAll reports whether every element of other that falls within
// the view's range is present in the parent set.
func (v *SubSet) ContainsAll(other *Set) bool {
	restricted := v.restrict(other)
	return IntersectionSize(v.parent, restricted) == restricted.size
}
