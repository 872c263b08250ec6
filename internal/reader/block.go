package reader

import (
	"fmt"

	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/pkg/types"
)

// Block1 reassembles the multi-sector SaveBlock1 from sector ids 1..4. Each
// present id's data region is copied to (id-1)*SectorDataSize; absent ids
// leave their range zero-filled so downstream decoding can proceed
// best-effort. Only the total absence of all four ids is an error.
func (r *reader) Block1() ([]byte, error) {
	if r.closed {
		return nil, types.ErrClosed
	}

	found := 0
	out := make([]byte, format.Block1Size)
	for id := format.Block1FirstID; id < format.Block1FirstID+format.Block1SectorCount; id++ {
		idx, ok := r.secmap[id]
		if !ok {
			r.diagnostics.record(types.Diagnostic{
				Severity: types.SevWarning,
				Category: types.DiagBlock,
				Sector:   -1,
				Issue:    fmt.Sprintf("SaveBlock1 sector id %d missing, range zero-filled", id),
			})
			continue
		}
		data, ok := format.SectorData(r.buf, idx)
		if !ok {
			continue
		}
		copy(out[(id-format.Block1FirstID)*format.SectorDataSize:], data)
		found++
	}
	if found == 0 {
		return nil, types.ErrBlock1Missing
	}
	return out, nil
}

// Block2 returns a copy of the single SaveBlock2 sector (id 0).
func (r *reader) Block2() ([]byte, error) {
	if r.closed {
		return nil, types.ErrClosed
	}
	idx, ok := r.secmap[format.Block2ID]
	if !ok {
		return nil, types.ErrBlock2Missing
	}
	data, ok := format.SectorData(r.buf, idx)
	if !ok {
		return nil, types.ErrBlock2Missing
	}
	out := make([]byte, format.Block2Size)
	copy(out, data)
	return out, nil
}
