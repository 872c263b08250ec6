package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO        ErrKind = iota // source file missing or unreadable
	ErrKindFormat                   // buffer too small to carry any footer
	ErrKindStructure                // a required logical block cannot be assembled
	ErrKindNotFound                 // missing sector id or record
	ErrKindState                    // invalid operation for current state (e.g., closed)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrNotSave indicates the buffer is too small to hold a single sector.
	ErrNotSave = &Error{Kind: ErrKindFormat, Msg: "not a flash save (buffer smaller than one sector)"}
	// ErrBlock1Missing indicates none of the SaveBlock1 sector ids were mapped.
	ErrBlock1Missing = &Error{Kind: ErrKindStructure, Msg: "no SaveBlock1 sectors found"}
	// ErrBlock2Missing indicates the SaveBlock2 sector id was not mapped.
	ErrBlock2Missing = &Error{Kind: ErrKindStructure, Msg: "SaveBlock2 sector (id 0) not found"}
	// ErrClosed indicates an operation on a closed reader.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "reader is closed"}
)

// -----------------------------------------------------------------------------
// Slots & Sectors
// -----------------------------------------------------------------------------

// Slot names one of the two redundant save regions, or automatic selection
// by save counter.
type Slot int

const (
	SlotAuto Slot = iota // pick by highest counter (slot 2 wins ties)
	Slot1                // force sectors 0..17
	Slot2                // force sectors 14..31
)

func (s Slot) String() string {
	switch s {
	case SlotAuto:
		return "auto"
	case Slot1:
		return "slot1"
	case Slot2:
		return "slot2"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// SectorInfo describes one physical sector's footer as seen on disk. ID is -1
// when the footer range fell outside the file.
type SectorInfo struct {
	Index    int    `json:"index"`
	ID       int    `json:"id"`
	Checksum uint16 `json:"checksum"`
	Counter  uint32 `json:"counter"`
	Valid    bool   `json:"valid"`
}

// SaveInfo summarizes slot selection for a parsed file.
type SaveInfo struct {
	FileSize int64 `json:"file_size"`

	// ActiveSlot is the selected region; ActiveSlotStart its first physical
	// sector index (0 or 14).
	ActiveSlot      Slot   `json:"-"`
	ActiveSlotName  string `json:"active_slot"`
	ActiveSlotStart int    `json:"active_slot_start"`
	Forced          bool   `json:"forced"`

	// Slot1Counter and Slot2Counter are the max counters among each region's
	// valid sectors (0 when none).
	Slot1Counter uint32 `json:"slot1_counter"`
	Slot2Counter uint32 `json:"slot2_counter"`

	ValidSectors  int    `json:"valid_sectors"`
	MappedSectors int    `json:"mapped_sectors"`
	Layout        string `json:"layout"`
}

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// OpenOptions controls save opening behavior.
type OpenOptions struct {
	// Slot forces the active region instead of counter-based selection.
	// SlotAuto (the zero value) picks the region with the highest save
	// counter, slot 2 winning ties. Forcing a slot also enables cross-slot
	// recovery of missing critical sectors.
	Slot Slot

	// Layout selects the party record schema by name ("quetzal", "vanilla").
	// Empty selects the default (quetzal).
	Layout string

	// CollectDiagnostics enables passive diagnostic collection during
	// parsing. Per-sector anomalies, zero-filled block gaps and substruct
	// checksum mismatches are recorded and can be retrieved via
	// Diagnostics(). Zero overhead when disabled.
	CollectDiagnostics bool
}

// -----------------------------------------------------------------------------
// Decoded records
// -----------------------------------------------------------------------------

// Pokemon is one decoded, immutable party record. Numeric identifiers are
// always populated; translating them to display names is the caller's
// concern (see the namedb package).
type Pokemon struct {
	Slot int `json:"slot"`

	Personality uint32 `json:"personality"`
	OTID        uint32 `json:"otId"`

	// NicknameRaw and OTNameRaw hold the charmap-encoded name bytes,
	// terminated by 0xFF. Decode with a namedb.DB.
	NicknameRaw []byte `json:"-"`
	OTNameRaw   []byte `json:"-"`

	SpeciesID uint16    `json:"speciesId"`
	Item      uint16    `json:"item"`
	Moves     [4]uint16 `json:"moves"`
	PP        [4]uint8  `json:"ppValues"`

	// EVs and IVs follow the on-disk stat order:
	// HP, Attack, Defense, Speed, Sp.Attack, Sp.Defense.
	EVs    [6]uint8 `json:"evs"`
	IVData uint32   `json:"ivData"`

	Experience uint32 `json:"experience,omitempty"`
	Friendship uint8  `json:"friendship,omitempty"`

	Status    uint32 `json:"status,omitempty"`
	Level     uint8  `json:"level"`
	CurrentHP uint16 `json:"currentHp"`
	MaxHP     uint16 `json:"maxHp"`
	Attack    uint16 `json:"attack"`
	Defense   uint16 `json:"defense"`
	Speed     uint16 `json:"speed"`
	SpAttack  uint16 `json:"spAttack"`
	SpDefense uint16 `json:"spDefense"`

	// SubChecksumOK is false when the encrypted substruct area failed its
	// checksum; the decode is still returned best-effort.
	SubChecksumOK bool `json:"-"`

	// Raw is a copy of the record window, useful for hex dumps.
	Raw []byte `json:"-"`
}

// Nature derives the nature index from the personality value.
func (p *Pokemon) Nature() uint8 {
	return uint8((p.Personality & 0xFF) % 25)
}

// IVs unpacks the six 5-bit individual values from IVData.
func (p *Pokemon) IVs() [6]uint8 {
	var out [6]uint8
	for i := range out {
		out[i] = uint8((p.IVData >> (5 * i)) & 0x1F)
	}
	return out
}

// TotalEVs sums the six effort values.
func (p *Pokemon) TotalEVs() int {
	total := 0
	for _, v := range p.EVs {
		total += int(v)
	}
	return total
}

// TotalIVs sums the six individual values.
func (p *Pokemon) TotalIVs() int {
	total := 0
	for _, v := range p.IVs() {
		total += int(v)
	}
	return total
}

// DisplayOTID renders the visible trainer id (low 16 bits, zero-padded).
func (p *Pokemon) DisplayOTID() string {
	return fmt.Sprintf("%05d", p.OTID&0xFFFF)
}

// Trainer is the decoded SaveBlock2 header.
type Trainer struct {
	// NameRaw holds the charmap-encoded player name, terminated by 0xFF.
	NameRaw []byte `json:"-"`

	PlayTimeHours   uint32 `json:"hours"`
	PlayTimeMinutes uint8  `json:"minutes"`
	PlayTimeSeconds uint8  `json:"seconds"`
}

// -----------------------------------------------------------------------------
// Read-Only API
// -----------------------------------------------------------------------------

// Reader exposes a parsed save file. Implementations are safe for concurrent
// readers; nothing mutates the underlying buffer after Open.
type Reader interface {
	// Close releases resources (unmaps the buffer if necessary).
	Close() error

	// Info reports slot selection and scan statistics.
	Info() SaveInfo

	// Sectors returns footer details for every physical sector, in physical
	// order, including invalid ones.
	Sectors() []SectorInfo

	// SectorMap returns the logical id -> physical index mapping built for
	// the active slot. The returned map is a copy.
	SectorMap() map[int]int

	// Block1 reassembles the multi-sector SaveBlock1. Missing sectors leave
	// zero-filled gaps; the error is ErrBlock1Missing only when none of the
	// required ids are mapped. The buffer is owned by the caller.
	Block1() ([]byte, error)

	// Block2 returns a copy of the SaveBlock2 sector data, or
	// ErrBlock2Missing.
	Block2() ([]byte, error)

	// Party decodes the party records out of SaveBlock1, stopping at the
	// first empty slot.
	Party() ([]Pokemon, error)

	// Trainer decodes the player name and play time out of SaveBlock2.
	Trainer() (Trainer, error)

	// Diagnostics returns the collected report, or nil when
	// OpenOptions.CollectDiagnostics was false.
	Diagnostics() *DiagnosticReport
}
