// Package save is the public entry point for reading Gen-3 flash save files.
// It re-exports the result types and hands parsing off to internal/reader.
package save

import (
	"github.com/emeraldtools/savekit/internal/reader"
	"github.com/emeraldtools/savekit/pkg/types"
)

// Re-exports so most callers only import this package.
type (
	Reader           = types.Reader
	OpenOptions      = types.OpenOptions
	SaveInfo         = types.SaveInfo
	SectorInfo       = types.SectorInfo
	Pokemon          = types.Pokemon
	Trainer          = types.Trainer
	Slot             = types.Slot
	DiagnosticReport = types.DiagnosticReport
)

const (
	SlotAuto = types.SlotAuto
	Slot1    = types.Slot1
	Slot2    = types.Slot2
)

// Open opens a save file for reading. The caller must call Close when done
// to release resources.
//
// Example:
//
//	r, err := save.Open("player1.sav", save.OpenOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	party, err := r.Party()
func Open(path string, opts OpenOptions) (Reader, error) {
	return reader.Open(path, opts)
}

// OpenBytes opens a save from a byte slice. The slice must not be mutated
// while the reader is in use; decoded results never alias it.
func OpenBytes(buf []byte, opts OpenOptions) (Reader, error) {
	return reader.OpenBytes(buf, opts)
}
