// Package bio provides functions related to nucleotide sequences.
package bio

import (
	"strings"
)

// Complement is a map, nucleotide (capital letter) is the key, the
// complementary nucleotide (capital letter) is the value. IUPAC
// ambiguity codes are included.
var Complement = map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'M': 'K', 'R': 'Y', 'W': 'S', 'S': 'W',
	'Y': 'R', 'K': 'M', 'V': 'B', 'H': 'D',
	'D': 'H', 'B': 'V', 'N': 'N',
}

// RevComp returns the reverse complement of a nucleotide sequence:
// the sequence is reversed and every base is replaced by its
// complement. Bytes without a complement are left unchanged.
func RevComp(seq string) string {
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b := seq[len(seq)-1-i]
		if c, ok := Complement[b]; ok {
			b = c
		}
		rc[i] = b
	}
	return string(rc)
}

// IsSelfComplementary tests if a sequence equals its own reverse
// complement. Comparison is performed on the uppercased sequence.
func IsSelfComplementary(seq string) bool {
	seq = strings.ToUpper(seq)
	return seq == RevComp(seq)
}
