package reader

import (
	"fmt"

	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/pkg/types"
)

// buildSectorMap associates each logical sector id with exactly one physical
// index, using valid sectors only.
//
// In auto mode the whole file is scanned and the highest-counter occurrence
// of each id wins; a strictly greater counter is required to displace an
// entry, so equal counters resolve to the first occurrence in scan order.
//
// In forced mode only the chosen region is mapped, then missing critical ids
// (0..4) are recovered from the other region. Ids still missing afterwards
// are reported as warnings; the block extractors decide whether a gap is
// fatal.
func (r *reader) buildSectorMap() {
	r.secmap = make(map[int]int)

	if !r.info.Forced {
		counters := make(map[int]uint32)
		for _, s := range r.sectors {
			if !s.Valid {
				continue
			}
			if have, ok := counters[s.ID]; !ok || s.Counter > have {
				counters[s.ID] = s.Counter
				r.secmap[s.ID] = s.Index
			}
		}
		r.reportMissingCritical(types.SevError)
		return
	}

	start, end := slotRange(r.info.ActiveSlot)
	for i := start; i < end; i++ {
		if r.sectors[i].Valid {
			r.secmap[r.sectors[i].ID] = i
		}
	}
	r.recoverCritical()
	r.reportMissingCritical(types.SevWarning)
}

// recoverCritical fills missing low ids from the other slot region's valid
// sectors.
func (r *reader) recoverCritical() {
	missing := r.missingCritical()
	if len(missing) == 0 {
		return
	}

	other := types.Slot1
	if r.info.ActiveSlot == types.Slot1 {
		other = types.Slot2
	}
	start, end := slotRange(other)
	for i := start; i < end; i++ {
		s := r.sectors[i]
		if !s.Valid {
			continue
		}
		if _, want := missing[s.ID]; want {
			r.secmap[s.ID] = i
			delete(missing, s.ID)
			r.diagnostics.record(types.Diagnostic{
				Severity: types.SevInfo,
				Category: types.DiagBlock,
				Sector:   i,
				Issue:    fmt.Sprintf("critical sector id %d recovered from %s", s.ID, other),
			})
		}
	}
}

func (r *reader) missingCritical() map[int]struct{} {
	missing := make(map[int]struct{})
	for id := 0; id < format.CriticalIDMax; id++ {
		if _, ok := r.secmap[id]; !ok {
			missing[id] = struct{}{}
		}
	}
	return missing
}

func (r *reader) reportMissingCritical(sev types.Severity) {
	for id := range r.missingCritical() {
		r.diagnostics.record(types.Diagnostic{
			Severity: sev,
			Category: types.DiagBlock,
			Sector:   -1,
			Issue:    fmt.Sprintf("critical sector id %d missing", id),
		})
	}
}
