package format

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func validSector(id uint16, counter uint32, fill byte) []byte {
	sec := make([]byte, SectorSize)
	for i := 0; i < SectorDataSize; i++ {
		sec[i] = fill
	}
	foot := SectorSize - SectorFooterSize
	binary.LittleEndian.PutUint16(sec[foot:], id)
	binary.LittleEndian.PutUint16(sec[foot+2:], SectorChecksum(sec[:SectorDataSize]))
	binary.LittleEndian.PutUint32(sec[foot+4:], Signature)
	binary.LittleEndian.PutUint32(sec[foot+8:], counter)
	return sec
}

func TestParseFooterFields(t *testing.T) {
	sec := validSector(3, 0xDEADBEEF, 0x11)

	foot, err := ParseFooter(sec, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(3), foot.ID)
	require.Equal(t, uint32(0xDEADBEEF), foot.Counter)
	require.True(t, foot.SignatureOK())
	require.Equal(t, SectorChecksum(sec[:SectorDataSize]), foot.Checksum)
}

func TestParseFooterOutOfRange(t *testing.T) {
	sec := validSector(0, 1, 0)

	_, err := ParseFooter(sec, 1)
	require.ErrorIs(t, err, ErrTruncated)

	_, err = ParseFooter(sec[:SectorSize-1], 0)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestParseFooterBadSignatureStillParses(t *testing.T) {
	sec := validSector(7, 42, 0)
	binary.LittleEndian.PutUint32(sec[SectorSize-SectorFooterSize+4:], 0x12345678)

	foot, err := ParseFooter(sec, 0)
	require.NoError(t, err)
	require.False(t, foot.SignatureOK())
	require.Equal(t, uint16(7), foot.ID)
	require.Equal(t, uint32(42), foot.Counter)
}

func TestSectorChecksumFormula(t *testing.T) {
	data := make([]byte, SectorDataSize)
	for i := range data {
		data[i] = byte(i * 7)
	}

	// Independent fold: 32-bit wraparound sum of LE words, then 16-bit fold.
	var sum uint32
	for i := 0; i < SectorDataSize; i += 4 {
		sum += binary.LittleEndian.Uint32(data[i:])
	}
	want := uint16((sum >> 16) + (sum & 0xFFFF))

	require.Equal(t, want, SectorChecksum(data))
	require.Equal(t, SectorChecksum(data), SectorChecksum(data), "deterministic")
}

func TestSectorChecksumSensitivity(t *testing.T) {
	data := make([]byte, SectorDataSize)
	base := SectorChecksum(data)

	for _, off := range []int{0, 1, 513, SectorDataSize - 1} {
		flipped := make([]byte, SectorDataSize)
		copy(flipped, data)
		flipped[off] ^= 0x01
		require.NotEqual(t, base, SectorChecksum(flipped), "byte %d", off)
	}
}

func TestSectorChecksumShortBuffer(t *testing.T) {
	require.Equal(t, uint16(0), SectorChecksum(make([]byte, 100)))
}
