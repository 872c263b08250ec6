package reader

import (
	"github.com/emeraldtools/savekit/internal/format"
	"github.com/emeraldtools/savekit/pkg/types"
)

// scanSectors parses every physical footer once. Sectors whose footer range
// falls past the end of the buffer get ID -1 and stay invalid; signature or
// checksum mismatches downgrade the single sector and never abort the scan.
func (r *reader) scanSectors() {
	r.sectors = make([]types.SectorInfo, format.TotalSectors)
	for i := range r.sectors {
		r.sectors[i] = r.sectorInfo(i)
	}
}

func (r *reader) sectorInfo(index int) types.SectorInfo {
	foot, err := format.ParseFooter(r.buf, index)
	if err != nil {
		r.diagnostics.record(types.Diagnostic{
			Severity: types.SevInfo,
			Category: types.DiagSector,
			Sector:   index,
			Issue:    "footer beyond end of file",
		})
		return types.SectorInfo{Index: index, ID: -1}
	}

	info := types.SectorInfo{
		Index:    index,
		ID:       int(foot.ID),
		Checksum: foot.Checksum,
		Counter:  foot.Counter,
	}
	if !foot.SignatureOK() {
		// Parsed fields are still reported for low-confidence diagnostics.
		r.diagnostics.record(types.Diagnostic{
			Severity: types.SevInfo,
			Category: types.DiagSector,
			Sector:   index,
			Issue:    "signature mismatch",
			Expected: uint32(format.Signature),
			Actual:   foot.Sig,
		})
		return info
	}

	data, ok := format.SectorData(r.buf, index)
	if !ok {
		return info
	}
	calc := format.SectorChecksum(data)
	if calc != foot.Checksum {
		r.diagnostics.record(types.Diagnostic{
			Severity: types.SevWarning,
			Category: types.DiagSector,
			Sector:   index,
			Issue:    "checksum mismatch",
			Expected: foot.Checksum,
			Actual:   calc,
		})
		return info
	}

	info.Valid = true
	return info
}
