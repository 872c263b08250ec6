package types

import (
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Diagnostic System
// -----------------------------------------------------------------------------
//
// Per-sector anomalies are absorbed into the Valid flag and never abort a
// parse; the diagnostic system keeps the forensic detail available without
// impacting the normal path. Collection is opt-in via
// OpenOptions.CollectDiagnostics, and the collector records ALL issues, not
// just the first.

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo    Severity = iota // informational (unusual but valid)
	SevWarning                 // degraded data, parse proceeded best-effort
	SevError                   // data loss, a block or record is unavailable
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// DiagCategory classifies the type of issue found.
type DiagCategory int

const (
	DiagSector DiagCategory = iota // footer signature/checksum problems
	DiagSlot                       // slot selection anomalies
	DiagBlock                      // block reassembly gaps and recovery
	DiagRecord                     // record-level decode issues
)

func (c DiagCategory) String() string {
	switch c {
	case DiagSector:
		return "sector"
	case DiagSlot:
		return "slot"
	case DiagBlock:
		return "block"
	case DiagRecord:
		return "record"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (c DiagCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Diagnostic represents a single issue found while parsing.
type Diagnostic struct {
	Severity Severity     `json:"severity"`
	Category DiagCategory `json:"category"`

	// Sector is the physical sector index the issue was found at, or -1
	// when the issue is not tied to one sector.
	Sector int `json:"sector"`

	Issue    string `json:"issue"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Category, d.Issue)
	if d.Sector >= 0 {
		fmt.Fprintf(&b, " (sector %d)", d.Sector)
	}
	if d.Expected != nil || d.Actual != nil {
		fmt.Fprintf(&b, " expected=%v actual=%v", d.Expected, d.Actual)
	}
	return b.String()
}

// DiagSummary provides quick statistics.
type DiagSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// DiagnosticReport collects all diagnostics found during a parse.
type DiagnosticReport struct {
	FilePath string `json:"file_path,omitempty"`
	FileSize int64  `json:"file_size"`

	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     DiagSummary  `json:"summary"`
}

// NewDiagnosticReport creates an empty report.
func NewDiagnosticReport() *DiagnosticReport {
	return &DiagnosticReport{}
}

// Add appends a diagnostic to the report.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Finalize computes the summary and orders diagnostics by sector.
func (r *DiagnosticReport) Finalize() {
	sort.SliceStable(r.Diagnostics, func(i, j int) bool {
		return r.Diagnostics[i].Sector < r.Diagnostics[j].Sector
	})
	r.Summary = DiagSummary{}
	for _, d := range r.Diagnostics {
		switch d.Severity {
		case SevError:
			r.Summary.Errors++
		case SevWarning:
			r.Summary.Warnings++
		default:
			r.Summary.Info++
		}
	}
}

// HasErrors reports whether any error-severity diagnostics were collected.
func (r *DiagnosticReport) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}
