// Package format houses low-level decoders for the Gen-3 flash save file
// format. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

const (
	// SectorSize is the size of one physical flash sector in bytes. The save
	// file is a flat array of these.
	SectorSize = 4096

	// SectorDataSize is the usable payload at the start of each sector. The
	// remaining bytes up to the footer are unused padding.
	SectorDataSize = 3968

	// SectorFooterSize is the size of the integrity footer in the last bytes
	// of every sector.
	SectorFooterSize = 12

	// Signature is the magic constant every sector footer must carry to be
	// considered part of this save format.
	Signature = 0x08012025

	// TotalSectors is the number of physical sectors in a save file.
	TotalSectors = 32

	// SectorsPerSlot is the number of sectors one save generation spans.
	SectorsPerSlot = 18

	// Slot2Start is the physical index of the first sector of the second
	// slot region. The two regions overlap on sectors 14..17.
	Slot2Start = 14

	// Footer field offsets within the 12-byte footer.
	//
	//	Offset  Size  Description
	//	------  ----  -------------------------------
	//	 0x00    2    Logical sector id
	//	 0x02    2    Checksum of the data region
	//	 0x04    4    Signature (0x08012025)
	//	 0x08    4    Save counter (write generation)
	FooterIDOffset        = 0x00
	FooterChecksumOffset  = 0x02
	FooterSignatureOffset = 0x04
	FooterCounterOffset   = 0x08
)

const (
	// Block1FirstID and Block1SectorCount describe the multi-sector logical
	// block (SaveBlock1) reassembled from sector ids 1..4 in id order.
	Block1FirstID     = 1
	Block1SectorCount = 4

	// Block1Size is the reassembled SaveBlock1 length.
	Block1Size = SectorDataSize * Block1SectorCount

	// Block2ID is the single sector id holding SaveBlock2 (trainer data).
	Block2ID = 0

	// Block2Size is the SaveBlock2 length.
	Block2Size = SectorDataSize

	// CriticalIDMax bounds the low sector-id range (0..CriticalIDMax-1) that
	// every save generation is expected to contain. Missing ids in this range
	// are recoverable from the other slot region.
	CriticalIDMax = 5
)
