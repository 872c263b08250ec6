package format

import "github.com/emeraldtools/savekit/internal/buf"

// Semantic substruct kinds. The on-disk position of each kind is permuted
// per record; see SubstructPos.
const (
	SubGrowth    = 0 // species, held item, experience, friendship
	SubAttacks   = 1 // four moves and their PP
	SubCondition = 2 // effort values and contest stats
	SubMisc      = 3 // pokérus, origins, packed IVs, ribbons
)

const (
	// SubstructSize is the width of one substruct chunk.
	SubstructSize = 12

	// SubstructCount is the number of substructs in a record.
	SubstructCount = 4

	// SubstructRegionSize is the total scrambled region width.
	SubstructRegionSize = SubstructSize * SubstructCount
)

// substructOrder lists, for every value of personality % 24, which substruct
// kind occupies each of the four chunk positions. The table is the complete
// set of permutations of four items in lexicographic order and must match
// the game engine row for row; the interleaving exists purely to frustrate
// save editing.
var substructOrder = [24][SubstructCount]uint8{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1}, {0, 3, 1, 2}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{3, 0, 1, 2}, {3, 0, 2, 1}, {3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// SubstructPos returns the chunk position (0..3) holding substruct kind for
// the given personality.
func SubstructPos(personality uint32, kind int) int {
	row := substructOrder[personality%24]
	for pos, k := range row {
		if int(k) == kind {
			return pos
		}
	}
	// Unreachable: every row is a permutation of 0..3.
	return 0
}

// DecryptSubstructs reverses the XOR scrambling of the 48-byte substruct
// region. Each little-endian 32-bit word is XORed with personality ^ otID;
// the two keys commute, so applying them in either order is equivalent. The
// result is a fresh buffer, enc is left untouched.
func DecryptSubstructs(enc []byte, personality, otID uint32) []byte {
	key := personality ^ otID
	dec := make([]byte, SubstructRegionSize)
	for i := 0; i+4 <= SubstructRegionSize && i+4 <= len(enc); i += 4 {
		w := buf.U32LE(enc[i:]) ^ key
		dec[i] = byte(w)
		dec[i+1] = byte(w >> 8)
		dec[i+2] = byte(w >> 16)
		dec[i+3] = byte(w >> 24)
	}
	return dec
}

// Substruct returns the 12-byte chunk of the requested kind from a decrypted
// substruct region.
func Substruct(dec []byte, personality uint32, kind int) []byte {
	pos := SubstructPos(personality, kind)
	return dec[pos*SubstructSize : (pos+1)*SubstructSize]
}

// SubstructChecksum sums the decrypted region as 16-bit little-endian words.
// The game stores this next to the encrypted data to detect tampering.
func SubstructChecksum(dec []byte) uint16 {
	var sum uint16
	for i := 0; i+2 <= len(dec); i += 2 {
		sum += buf.U16LE(dec[i:])
	}
	return sum
}
