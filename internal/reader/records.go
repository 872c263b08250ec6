package reader

import (
	"fmt"

	"github.com/emeraldtools/savekit/internal/buf"
	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/pkg/types"
)

// Party decodes up to format.MaxParty records out of SaveBlock1. Iteration
// stops at the first record whose species id is zero (unused slots are
// zero-filled) or when the next window would run past the block.
func (r *reader) Party() ([]types.Pokemon, error) {
	block, err := r.Block1()
	if err != nil {
		return nil, err
	}

	lay := r.layout
	party := make([]types.Pokemon, 0, format.MaxParty)
	for slot := 0; slot < format.MaxParty; slot++ {
		window, ok := buf.Slice(block, lay.PartyOffset+slot*lay.RecordSize, lay.RecordSize)
		if !ok {
			break
		}
		mon, err := format.DecodeMon(window, lay)
		if err != nil {
			break
		}
		if mon.Species == 0 {
			break
		}
		if !mon.SubChecksumOK {
			r.diagnostics.record(types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagRecord,
				Sector:   -1,
				Issue:    fmt.Sprintf("party slot %d substruct checksum mismatch", slot+1),
			})
		}
		party = append(party, monToPokemon(slot, mon))
	}

	// Layouts with an explicit count field let us cross-check the
	// terminator-based walk.
	if lay.CountOffset >= 0 {
		count := buf.U32LE(block[lay.CountOffset:])
		if int(count) != len(party) {
			r.diagnostics.record(types.Diagnostic{
				Severity: types.SevInfo,
				Category: types.DiagRecord,
				Sector:   -1,
				Issue:    "party count field disagrees with decoded records",
				Expected: count,
				Actual:   len(party),
			})
		}
	}
	return party, nil
}

// Trainer decodes the player name and play time out of SaveBlock2.
func (r *reader) Trainer() (types.Trainer, error) {
	block, err := r.Block2()
	if err != nil {
		return types.Trainer{}, err
	}
	t, err := format.DecodeTrainer(block)
	if err != nil {
		return types.Trainer{}, &types.Error{
			Kind: types.ErrKindStructure,
			Msg:  "decode trainer block",
			Err:  err,
		}
	}
	return types.Trainer{
		NameRaw:         append([]byte(nil), t.Name[:]...),
		PlayTimeHours:   t.Hours,
		PlayTimeMinutes: t.Minutes,
		PlayTimeSeconds: t.Seconds,
	}, nil
}

func monToPokemon(slot int, m format.Mon) types.Pokemon {
	return types.Pokemon{
		Slot:          slot + 1,
		Personality:   m.Personality,
		OTID:          m.OTID,
		NicknameRaw:   append([]byte(nil), m.Nickname[:]...),
		OTNameRaw:     append([]byte(nil), m.OTName[:]...),
		SpeciesID:     m.Species,
		Item:          m.Item,
		Moves:         m.Moves,
		PP:            m.PP,
		EVs:           m.EVs,
		IVData:        m.IVData,
		Experience:    m.Experience,
		Friendship:    m.Friendship,
		Status:        m.Status,
		Level:         m.Level,
		CurrentHP:     m.CurrentHP,
		MaxHP:         m.MaxHP,
		Attack:        m.Attack,
		Defense:       m.Defense,
		Speed:         m.Speed,
		SpAttack:      m.SpAttack,
		SpDefense:     m.SpDefense,
		SubChecksumOK: m.SubChecksumOK,
		Raw:           m.Raw,
	}
}
