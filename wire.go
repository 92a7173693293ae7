package conciseset

import (
	"encoding/binary"
	"io"
)

// Dump writes s's word vector to w in an informal little-endian wire
// format: size, last, word count, then each word. The format is not
// versioned and is meant for round-tripping within the same binary, not
// as a stable interchange format.
func (s *Set) Dump(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, int64(s.size)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int64(s.last)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int64(len(s.words))); err != nil {
		return err
	}
	for _, w32 := range s.words {
		if err := binary.Write(w, binary.LittleEndian, w32); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a Set previously written by Dump.
func Load(r io.Reader) (*Set, error) {
	var size, last, n int64
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &last); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	words := make([]word, n)
	for i := range words {
		if err := binary.Read(r, binary.LittleEndian, &words[i]); err != nil {
			return nil, err
		}
	}
	return &Set{words: words, size: int(size), last: int(last)}, nil
}
