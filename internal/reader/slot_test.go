package reader_test

import (
	"testing"

	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/internal/reader"
	"github.com/emeraldtools/savekit/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestOpenBytesRejectsTinyBuffer(t *testing.T) {
	_, err := reader.OpenBytes(make([]byte, format.SectorSize-1), types.OpenOptions{})
	require.ErrorIs(t, err, types.ErrNotSave)
}

func TestOpenBytesRejectsUnknownLayout(t *testing.T) {
	_, err := reader.OpenBytes(synthSave(), types.OpenOptions{Layout: "gen9"})
	require.Error(t, err)
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, types.ErrKindState, te.Kind)
}

func TestSlotSelectionByCounter(t *testing.T) {
	cases := []struct {
		name   string
		c1, c2 uint32
		want   types.Slot
	}{
		{"slot1 newer", 5, 4, types.Slot1},
		{"slot2 newer", 4, 5, types.Slot2},
		{"tie goes to slot2", 5, 5, types.Slot2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			save := synthSave()
			// One valid sector per region, placed outside the 14..17 overlap
			// so each counter is attributed to exactly one region.
			putSector(t, save, 0, 0, tc.c1, nil)
			putSector(t, save, 20, 0, tc.c2, nil)

			r, err := reader.OpenBytes(save, types.OpenOptions{})
			require.NoError(t, err)
			defer r.Close()

			info := r.Info()
			require.Equal(t, tc.want, info.ActiveSlot)
			require.Equal(t, tc.want.String(), info.ActiveSlotName)
			require.Equal(t, tc.c1, info.Slot1Counter)
			require.Equal(t, tc.c2, info.Slot2Counter)
			require.False(t, info.Forced)
		})
	}
}

func TestSlotCountersIgnoreInvalidSectors(t *testing.T) {
	save := synthSave()
	putSector(t, save, 0, 0, 3, nil)
	putSector(t, save, 20, 0, 99, nil)
	corruptChecksum(save, 20) // slot 2's only sector is now invalid

	r, err := reader.OpenBytes(save, types.OpenOptions{})
	require.NoError(t, err)
	defer r.Close()

	info := r.Info()
	require.Equal(t, types.Slot1, info.ActiveSlot)
	require.Equal(t, uint32(3), info.Slot1Counter)
	require.Equal(t, uint32(0), info.Slot2Counter)
}

func TestForcedSlotOverridesCounters(t *testing.T) {
	save := synthSave()
	putSector(t, save, 0, 0, 1, nil)
	putSector(t, save, 20, 0, 50, nil)

	r, err := reader.OpenBytes(save, types.OpenOptions{Slot: types.Slot1})
	require.NoError(t, err)
	defer r.Close()

	info := r.Info()
	require.Equal(t, types.Slot1, info.ActiveSlot)
	require.True(t, info.Forced)
	require.Equal(t, 0, info.ActiveSlotStart)
}

func TestActiveSlotStart(t *testing.T) {
	save := synthSave()
	putSector(t, save, 20, 0, 1, nil)

	r, err := reader.OpenBytes(save, types.OpenOptions{})
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, format.Slot2Start, r.Info().ActiveSlotStart)
}
