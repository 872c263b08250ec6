// Package reader provides the concrete types.Reader implementation. The
// exported entry points are used by the public wrapper (the save package or
// the CLI) to obtain a types.Reader without exposing the internal parsing
// machinery directly.
//
// Parsing is a straight pipeline over an immutable buffer: per-sector footer
// scan, slot selection by save counter, sector-id map construction (with
// cross-slot recovery in forced mode), then on-demand block reassembly and
// record decoding. Nothing here ever writes to the source buffer.
package reader

import (
	"fmt"

	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/internal/mmfile"
	"github.com/emeraldtools/savekit/pkg/types"
)

// Open maps the save file at path and returns an implementation of
// types.Reader.
func Open(path string, opts types.OpenOptions) (types.Reader, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "open save", Err: err}
	}
	r, err := newReader(data, unmap, opts)
	if err != nil {
		if unmap != nil {
			_ = unmap()
		}
		return nil, err
	}
	return r, nil
}

// OpenBytes creates a reader backed by the provided buffer. The buffer must
// not be mutated while the reader is in use.
func OpenBytes(buf []byte, opts types.OpenOptions) (types.Reader, error) {
	return newReader(buf, nil, opts)
}

type reader struct {
	buf    []byte
	unmap  func() error
	opts   types.OpenOptions
	layout *format.PartyLayout
	closed bool

	sectors     []types.SectorInfo
	secmap      map[int]int
	info        types.SaveInfo
	diagnostics *diagnosticCollector // nil unless CollectDiagnostics=true
}

func newReader(buf []byte, unmap func() error, opts types.OpenOptions) (types.Reader, error) {
	if len(buf) < format.SectorSize {
		return nil, types.ErrNotSave
	}
	layout, ok := format.LayoutByName(opts.Layout)
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindState,
			Msg:  fmt.Sprintf("unknown party layout %q", opts.Layout),
		}
	}

	r := &reader{
		buf:    buf,
		unmap:  unmap,
		opts:   opts,
		layout: layout,
	}
	if opts.CollectDiagnostics {
		r.diagnostics = newDiagnosticCollector()
	}

	// The whole selection pipeline is cheap (32 footer reads plus one
	// checksum per plausible sector), so it runs eagerly at open time.
	r.scanSectors()
	r.selectSlot()
	r.buildSectorMap()
	r.finishInfo()

	return r, nil
}

// Close releases resources (unmaps the buffer if necessary).
func (r *reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.unmap != nil {
		return r.unmap()
	}
	return nil
}

func (r *reader) Info() types.SaveInfo { return r.info }

func (r *reader) Sectors() []types.SectorInfo {
	out := make([]types.SectorInfo, len(r.sectors))
	copy(out, r.sectors)
	return out
}

func (r *reader) SectorMap() map[int]int {
	out := make(map[int]int, len(r.secmap))
	for id, idx := range r.secmap {
		out[id] = idx
	}
	return out
}

func (r *reader) Diagnostics() *types.DiagnosticReport {
	rep := r.diagnostics.getReport()
	if rep != nil {
		rep.FileSize = int64(len(r.buf))
	}
	return rep
}

func (r *reader) finishInfo() {
	valid := 0
	for _, s := range r.sectors {
		if s.Valid {
			valid++
		}
	}
	r.info.FileSize = int64(len(r.buf))
	r.info.ActiveSlotName = r.info.ActiveSlot.String()
	r.info.ValidSectors = valid
	r.info.MappedSectors = len(r.secmap)
	r.info.Layout = r.layout.Name
}
