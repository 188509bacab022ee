package galaxy

import "unicode/utf16"

// seedInit is the initial hash state before any seed characters are mixed in.
const seedInit uint32 = 1779033703

// SeededSequence is a small non-cryptographic generator producing a
// reproducible stream of values in [0, 1) from a string seed. The same seed
// always yields the same sequence, which keeps layout jitter stable across
// recomputation.
//
// Algorithm (all arithmetic mod 2^32):
//
//	h = 1779033703
//	for each UTF-16 code unit c of seed: h = (h ^ c) * 2654435761
//	next: h = ((h ^ h>>15) * 2246822507) ^ ((h ^ h>>13) * 3266489909)
//	      return (h % 1000) / 1000
type SeededSequence struct {
	h uint32
}

// NewSeededSequence returns a sequence seeded from seed.
func NewSeededSequence(seed string) *SeededSequence {
	h := seedInit
	for _, c := range utf16.Encode([]rune(seed)) {
		h = (h ^ uint32(c)) * 2654435761
	}
	return &SeededSequence{h: h}
}

// Next advances the sequence and returns a value in [0, 1) with a
// resolution of 1/1000.
func (s *SeededSequence) Next() float64 {
	h := s.h
	s.h = ((h ^ h>>15) * 2246822507) ^ ((h ^ h>>13) * 3266489909)
	return float64(s.h%1000) / 1000
}

// Signed returns the next value mapped to [-1, 1).
func (s *SeededSequence) Signed() float64 {
	return s.Next()*2 - 1
}

// idHash is the 31-multiplier string hash used for per-item cosmetic
// variation (planet size jitter).
func idHash(id string) uint32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(id)) {
		h = h*31 + uint32(c)
	}
	return h
}
