package reader

import (
	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/pkg/types"
)

// selectSlot picks the active slot region. Each region's score is the
// highest save counter among its valid sectors; slot 2 wins ties. This
// asymmetric tie-break mirrors the game engine, which writes slot 2 second:
// equal counters mean slot 2 holds the same or a newer generation.
func (r *reader) selectSlot() {
	r.info.Slot1Counter = r.maxCounter(0, format.SectorsPerSlot)
	r.info.Slot2Counter = r.maxCounter(format.Slot2Start, format.TotalSectors)

	if r.opts.Slot != types.SlotAuto {
		r.info.ActiveSlot = r.opts.Slot
		r.info.Forced = true
	} else if r.info.Slot2Counter >= r.info.Slot1Counter {
		r.info.ActiveSlot = types.Slot2
	} else {
		r.info.ActiveSlot = types.Slot1
	}

	if r.info.ActiveSlot == types.Slot2 {
		r.info.ActiveSlotStart = format.Slot2Start
	} else {
		r.info.ActiveSlotStart = 0
	}
}

// maxCounter returns the highest counter among valid sectors in [start, end).
func (r *reader) maxCounter(start, end int) uint32 {
	var max uint32
	for i := start; i < end && i < len(r.sectors); i++ {
		if r.sectors[i].Valid && r.sectors[i].Counter > max {
			max = r.sectors[i].Counter
		}
	}
	return max
}

// slotRange returns the physical index range [start, end) of a slot region.
func slotRange(s types.Slot) (int, int) {
	if s == types.Slot2 {
		return format.Slot2Start, format.TotalSectors
	}
	return 0, format.SectorsPerSlot
}
