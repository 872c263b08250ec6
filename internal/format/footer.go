package format

import (
	"fmt"

	"github.com/emeraldtools/savekit/internal/buf"
)

// Footer is the decoded integrity trailer of one physical sector. A footer is
// parsed even when the signature does not match so callers can surface the
// raw id/counter for diagnostics.
type Footer struct {
	ID       uint16
	Checksum uint16
	Sig      uint32
	Counter  uint32
}

// SignatureOK reports whether the footer carries the save-format magic.
func (f Footer) SignatureOK() bool { return f.Sig == Signature }

// FooterOffset returns the absolute offset of sector index's footer.
func FooterOffset(index int) int {
	return index*SectorSize + SectorSize - SectorFooterSize
}

// ParseFooter decodes the footer of the sector at index from the full save
// buffer. It fails only when the footer range falls outside the buffer.
func ParseFooter(save []byte, index int) (Footer, error) {
	b, ok := buf.Slice(save, FooterOffset(index), SectorFooterSize)
	if !ok {
		return Footer{}, fmt.Errorf("sector %d footer: %w", index, ErrTruncated)
	}
	return Footer{
		ID:       buf.U16LE(b[FooterIDOffset:]),
		Checksum: buf.U16LE(b[FooterChecksumOffset:]),
		Sig:      buf.U32LE(b[FooterSignatureOffset:]),
		Counter:  buf.U32LE(b[FooterCounterOffset:]),
	}, nil
}

// SectorData returns the data region of the sector at index.
func SectorData(save []byte, index int) ([]byte, bool) {
	return buf.Slice(save, index*SectorSize, SectorDataSize)
}

// SectorChecksum computes the integrity checksum over a sector data region:
// the bytes are folded as little-endian 32-bit words into a wrapping 32-bit
// sum, which is then folded to 16 bits as (sum>>16 + sum&0xFFFF) & 0xFFFF.
// The formula matches the game engine bit for bit; it gates every downstream
// parsing step.
func SectorChecksum(data []byte) uint16 {
	if len(data) < SectorDataSize {
		return 0
	}
	var sum uint32
	for i := 0; i+4 <= SectorDataSize; i += 4 {
		sum += buf.U32LE(data[i:])
	}
	return uint16((sum >> 16) + (sum & 0xFFFF))
}
