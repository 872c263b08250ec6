package reader_test

import (
	"bytes"
	"testing"

	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/internal/reader"
	"github.com/emeraldtools/savekit/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestBlock1Reassembly(t *testing.T) {
	save := synthSave()
	putSector(t, save, 0, 0, 1, nil)
	for id := 1; id <= 4; id++ {
		data := bytes.Repeat([]byte{byte(0x10 * id)}, format.SectorDataSize)
		// Physical placement deliberately out of id order.
		putSector(t, save, 5-id, uint16(id), 1, data)
	}

	r, err := reader.OpenBytes(save, types.OpenOptions{})
	require.NoError(t, err)
	defer r.Close()

	block, err := r.Block1()
	require.NoError(t, err)
	require.Len(t, block, format.Block1Size)
	for id := 1; id <= 4; id++ {
		off := (id - 1) * format.SectorDataSize
		require.Equal(t, byte(0x10*id), block[off], "id %d start", id)
		require.Equal(t, byte(0x10*id), block[off+format.SectorDataSize-1], "id %d end", id)
	}
}

func TestBlock1ZeroFillsMissingSectors(t *testing.T) {
	save := synthSave()
	putSector(t, save, 1, 1, 1, bytes.Repeat([]byte{0xAA}, format.SectorDataSize))
	putSector(t, save, 2, 2, 1, bytes.Repeat([]byte{0xBB}, format.SectorDataSize))
	// Ids 3 and 4 are absent everywhere.

	r, err := reader.OpenBytes(save, types.OpenOptions{CollectDiagnostics: true})
	require.NoError(t, err)
	defer r.Close()

	block, err := r.Block1()
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), block[0])
	require.Equal(t, byte(0xBB), block[format.SectorDataSize])
	zeros := make([]byte, 2*format.SectorDataSize)
	require.Equal(t, zeros, block[2*format.SectorDataSize:])

	var warns int
	for _, d := range r.Diagnostics().Diagnostics {
		if d.Category == types.DiagBlock && d.Severity == types.SevWarning {
			warns++
		}
	}
	require.GreaterOrEqual(t, warns, 2, "each zero-filled gap is reported")
}

func TestBlock1AllMissing(t *testing.T) {
	save := synthSave()
	putSector(t, save, 0, 0, 1, nil)

	r, err := reader.OpenBytes(save, types.OpenOptions{})
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Block1()
	require.ErrorIs(t, err, types.ErrBlock1Missing)
}

func TestBlock2RoundTrip(t *testing.T) {
	save := synthSave()
	data := make([]byte, format.SectorDataSize)
	data[0] = 0x42
	putSector(t, save, 3, 0, 1, data)

	r, err := reader.OpenBytes(save, types.OpenOptions{})
	require.NoError(t, err)
	defer r.Close()

	block, err := r.Block2()
	require.NoError(t, err)
	require.Len(t, block, format.Block2Size)
	require.Equal(t, byte(0x42), block[0])

	// The returned buffer is caller-owned.
	block[0] = 0xFF
	again, err := r.Block2()
	require.NoError(t, err)
	require.Equal(t, byte(0x42), again[0])
}

func TestBlock2Missing(t *testing.T) {
	save := synthSave()
	putSector(t, save, 1, 1, 1, nil)

	r, err := reader.OpenBytes(save, types.OpenOptions{})
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Block2()
	require.ErrorIs(t, err, types.ErrBlock2Missing)
}

func TestClosedReaderRejectsBlockReads(t *testing.T) {
	save := synthSave()
	fillSlot(t, save, 0, 1)

	r, err := reader.OpenBytes(save, types.OpenOptions{})
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "double close is a no-op")

	_, err = r.Block1()
	require.ErrorIs(t, err, types.ErrClosed)
	_, err = r.Block2()
	require.ErrorIs(t, err, types.ErrClosed)
}
