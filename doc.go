// Package conciseset implements a compressed sorted set of non-negative
// integers using the Concise (WAH-derived) word encoding: a sequence of
// 32-bit words, each either a literal 31-bit bitmap or a run-length fill of
// all-zero or all-one blocks carrying at most one flipped bit.
//
// A Set stores its elements in ascending order with no duplicates. Boolean
// set algebra (Union, Intersection, Difference, SymmetricDifference, and
// their cardinality-only counterparts) is driven by a dual-cursor engine
// that walks two word vectors block-by-block without ever decompressing
// either input. See the package-level tests for the canonical-form and
// algebra-law properties this encoding guarantees.
package conciseset
