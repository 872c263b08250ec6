package format

import (
	"fmt"

	"github.com/emeraldtools/savekit/internal/buf"
)

const (
	// NicknameLen and OTNameLen are the fixed widths of the encoded name
	// fields inside a party record.
	NicknameLen = 10
	OTNameLen   = 7

	// MaxParty is the party slot cap shared by every known layout.
	MaxParty = 6
)

// PartyLayout is an explicit offset table describing where the party lives
// inside SaveBlock1 and how a single record is laid out. All record offsets
// are relative to the record start; -1 marks a field the layout does not
// carry. Keeping the layout as data (rather than a fixed struct overlay)
// lets callers swap between ROM-hack and vanilla schemas.
type PartyLayout struct {
	Name string

	// PartyOffset is the byte offset of the first record inside SaveBlock1.
	// CountOffset is the party-count field, or -1 when the format has none
	// and the decoder relies on the zero-species terminator alone.
	PartyOffset int
	CountOffset int
	RecordSize  int

	Personality int
	OTID        int
	Nickname    int
	OTName      int

	// Encrypted layouts keep growth/attack/condition/misc data in a
	// 48-byte XOR-scrambled substruct region; SubChecksum is the stored
	// checksum of the decrypted words.
	Encrypted       bool
	SubstructOffset int
	SubChecksum     int

	// Plaintext field offsets, -1 under encrypted layouts (the values come
	// out of the substructs instead).
	Species int
	Item    int
	Moves   int
	PP      int
	EVs     int
	IVData  int

	Status    int
	Level     int
	CurrentHP int
	MaxHP     int
	Attack    int
	Defense   int
	Speed     int
	SpAttack  int
	SpDefense int
}

// LayoutQuetzal is the decrypted 104-byte record layout used by the Quetzal
// ROM hack. Offsets validated against a real save; note currentHp sits ahead
// of speciesId in this variant.
var LayoutQuetzal = PartyLayout{
	Name:        "quetzal",
	PartyOffset: 0x6A8,
	CountOffset: -1,
	RecordSize:  104,

	Personality: 0x00,
	OTID:        0x04,
	Nickname:    0x08,
	OTName:      0x14,

	SubstructOffset: -1,
	SubChecksum:     -1,

	Species: 0x28,
	Item:    0x2A,
	Moves:   0x34,
	PP:      0x3C,
	EVs:     0x40,
	IVData:  0x50,

	Status:    -1,
	Level:     0x58,
	CurrentHP: 0x23,
	MaxHP:     0x5A,
	Attack:    0x5C,
	Defense:   0x5E,
	Speed:     0x60,
	SpAttack:  0x62,
	SpDefense: 0x64,
}

// LayoutVanilla is the stock Emerald 100-byte record layout with the
// encrypted substruct region at +0x20.
var LayoutVanilla = PartyLayout{
	Name:        "vanilla",
	PartyOffset: 0x238,
	CountOffset: 0x234,
	RecordSize:  100,

	Personality: 0x00,
	OTID:        0x04,
	Nickname:    0x08,
	OTName:      0x14,

	Encrypted:       true,
	SubstructOffset: 0x20,
	SubChecksum:     0x1C,

	Species: -1,
	Item:    -1,
	Moves:   -1,
	PP:      -1,
	EVs:     -1,
	IVData:  -1,

	Status:    0x50,
	Level:     0x54,
	CurrentHP: 0x56,
	MaxHP:     0x58,
	Attack:    0x5A,
	Defense:   0x5C,
	Speed:     0x5E,
	SpAttack:  0x60,
	SpDefense: 0x62,
}

// LayoutByName resolves a layout by its CLI-facing name.
func LayoutByName(name string) (*PartyLayout, bool) {
	switch name {
	case "", LayoutQuetzal.Name:
		return &LayoutQuetzal, true
	case LayoutVanilla.Name:
		return &LayoutVanilla, true
	}
	return nil, false
}

// Mon is one decoded party record. All fields are copies; a Mon never
// aliases the block it was decoded from.
type Mon struct {
	Personality uint32
	OTID        uint32
	Nickname    [NicknameLen]byte
	OTName      [OTNameLen]byte

	Species uint16
	Item    uint16
	Moves   [4]uint16
	PP      [4]uint8

	// EVs and the unpacked IVs follow the on-disk stat order:
	// HP, Attack, Defense, Speed, Sp.Attack, Sp.Defense.
	EVs    [6]uint8
	IVData uint32

	Experience uint32
	Friendship uint8

	Status    uint32
	Level     uint8
	CurrentHP uint16
	MaxHP     uint16
	Attack    uint16
	Defense   uint16
	Speed     uint16
	SpAttack  uint16
	SpDefense uint16

	// SubChecksumOK is false when an encrypted layout's substruct checksum
	// did not match the decrypted words. Decoding proceeds regardless.
	SubChecksumOK bool

	Raw []byte
}

func recU16(rec []byte, off int) uint16 {
	if off < 0 {
		return 0
	}
	return buf.U16LE(rec[off:])
}

func recU32(rec []byte, off int) uint32 {
	if off < 0 {
		return 0
	}
	return buf.U32LE(rec[off:])
}

func recU8(rec []byte, off int) uint8 {
	if off < 0 || off >= len(rec) {
		return 0
	}
	return rec[off]
}

// DecodeMon decodes one record window according to lay. The window must be
// at least lay.RecordSize bytes.
func DecodeMon(rec []byte, lay *PartyLayout) (Mon, error) {
	if len(rec) < lay.RecordSize {
		return Mon{}, fmt.Errorf("party record: %w", ErrTruncated)
	}
	rec = rec[:lay.RecordSize]

	m := Mon{
		Personality:   recU32(rec, lay.Personality),
		OTID:          recU32(rec, lay.OTID),
		Status:        recU32(rec, lay.Status),
		Level:         recU8(rec, lay.Level),
		CurrentHP:     recU16(rec, lay.CurrentHP),
		MaxHP:         recU16(rec, lay.MaxHP),
		Attack:        recU16(rec, lay.Attack),
		Defense:       recU16(rec, lay.Defense),
		Speed:         recU16(rec, lay.Speed),
		SpAttack:      recU16(rec, lay.SpAttack),
		SpDefense:     recU16(rec, lay.SpDefense),
		SubChecksumOK: true,
	}
	copy(m.Nickname[:], rec[lay.Nickname:])
	copy(m.OTName[:], rec[lay.OTName:])

	if lay.Encrypted {
		enc, ok := buf.Slice(rec, lay.SubstructOffset, SubstructRegionSize)
		if !ok {
			return Mon{}, fmt.Errorf("party record substructs: %w", ErrBadLayout)
		}
		dec := DecryptSubstructs(enc, m.Personality, m.OTID)
		m.SubChecksumOK = SubstructChecksum(dec) == recU16(rec, lay.SubChecksum)

		growth := Substruct(dec, m.Personality, SubGrowth)
		m.Species = buf.U16LE(growth)
		m.Item = buf.U16LE(growth[2:])
		m.Experience = buf.U32LE(growth[4:])
		m.Friendship = growth[9]

		attacks := Substruct(dec, m.Personality, SubAttacks)
		for i := range m.Moves {
			m.Moves[i] = buf.U16LE(attacks[i*2:])
			m.PP[i] = attacks[8+i]
		}

		cond := Substruct(dec, m.Personality, SubCondition)
		copy(m.EVs[:], cond[:6])

		misc := Substruct(dec, m.Personality, SubMisc)
		m.IVData = buf.U32LE(misc[4:])
	} else {
		m.Species = recU16(rec, lay.Species)
		m.Item = recU16(rec, lay.Item)
		for i := range m.Moves {
			m.Moves[i] = recU16(rec, lay.Moves+i*2)
			m.PP[i] = recU8(rec, lay.PP+i)
		}
		for i := range m.EVs {
			m.EVs[i] = recU8(rec, lay.EVs+i)
		}
		m.IVData = recU32(rec, lay.IVData)
	}

	m.Raw = make([]byte, lay.RecordSize)
	copy(m.Raw, rec)
	return m, nil
}
