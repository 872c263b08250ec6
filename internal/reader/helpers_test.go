package reader_test

import (
	"encoding/binary"
	"testing"

	"github.com/emeraldtools/savekit/internal/format"
)

// synthSave returns a zeroed full-size save buffer. No sector carries a valid
// footer until putSector stamps one.
func synthSave() []byte {
	return make([]byte, format.TotalSectors*format.SectorSize)
}

// putSector writes data into the payload region of physical sector index and
// stamps a valid footer (matching checksum and signature) with the given
// logical id and save counter.
func putSector(t *testing.T, save []byte, index int, id uint16, counter uint32, data []byte) {
	t.Helper()
	if len(data) > format.SectorDataSize {
		t.Fatalf("sector payload %d exceeds %d bytes", len(data), format.SectorDataSize)
	}

	base := index * format.SectorSize
	payload := save[base : base+format.SectorDataSize]
	for i := range payload {
		payload[i] = 0
	}
	copy(payload, data)

	foot := base + format.SectorSize - format.SectorFooterSize
	binary.LittleEndian.PutUint16(save[foot+format.FooterIDOffset:], id)
	binary.LittleEndian.PutUint16(save[foot+format.FooterChecksumOffset:], format.SectorChecksum(payload))
	binary.LittleEndian.PutUint32(save[foot+format.FooterSignatureOffset:], format.Signature)
	binary.LittleEndian.PutUint32(save[foot+format.FooterCounterOffset:], counter)
}

// corruptChecksum flips a payload byte after the footer was stamped, leaving
// the stored checksum stale.
func corruptChecksum(save []byte, index int) {
	save[index*format.SectorSize] ^= 0xA5
}

// fillSlot stamps a full 18-sector generation starting at physical index
// start, with logical ids 0..17 in physical order.
func fillSlot(t *testing.T, save []byte, start int, counter uint32) {
	t.Helper()
	for i := 0; i < format.SectorsPerSlot; i++ {
		putSector(t, save, start+i, uint16(i), counter, nil)
	}
}

// quetzalPartyData builds a SaveBlock1 sector-id-1 payload carrying the given
// species ids as decrypted 104-byte party records.
func quetzalPartyData(species ...uint16) []byte {
	data := make([]byte, format.SectorDataSize)
	lay := format.LayoutQuetzal
	for i, sp := range species {
		rec := data[lay.PartyOffset+i*lay.RecordSize:]
		binary.LittleEndian.PutUint32(rec[lay.Personality:], uint32(0x1000+i))
		binary.LittleEndian.PutUint16(rec[lay.Species:], sp)
		rec[lay.Level] = byte(10 + i)
	}
	return data
}
