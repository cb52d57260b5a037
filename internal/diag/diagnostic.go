package diag

import (
	"github.com/olehManboy/Ethlint/internal/source"
)

// Edit is a single replacement over a half-open byte range [Start, End) of
// the original source text. Edits attached to one diagnostic never overlap
// each other.
type Edit struct {
	Start   uint32
	End     uint32
	NewText string
}

// Overlaps reports whether two edits touch a common byte. Ranges are
// half-open; two zero-length edits at the same offset do not overlap, but a
// zero-length edit inside a non-empty range does.
func (e Edit) Overlaps(other Edit) bool {
	if e.Start == e.End && other.Start == other.End {
		return false
	}
	if e.Start == e.End {
		return other.Start <= e.Start && e.Start < other.End
	}
	if other.Start == other.End {
		return e.Start <= other.Start && other.Start < e.End
	}
	return e.Start < other.End && other.Start < e.End
}

// Diagnostic is one reported finding against a source file.
type Diagnostic struct {
	// Rule is the name of the reporting rule. Internal notices use the
	// pseudo-rule name of the engine facility that produced them.
	Rule     string
	Severity Severity
	Message  string
	// Primary is the source range the finding points at. Internal notices
	// carry an empty span.
	Primary source.Span
	// Line and Column are 1-based. Internal diagnostics use the 0:0
	// sentinel, which orders them before all rule findings.
	Line   uint32
	Column uint32
	// Internal marks engine-originated notices (deprecation, dropped fix).
	Internal bool
	Edits    []Edit
}

// HasEdits reports whether the diagnostic proposes at least one fix edit.
func (d Diagnostic) HasEdits() bool {
	return len(d.Edits) > 0
}

// EditStart returns the minimum start offset across the diagnostic's edits.
func (d Diagnostic) EditStart() uint32 {
	min := d.Edits[0].Start
	for _, e := range d.Edits[1:] {
		if e.Start < min {
			min = e.Start
		}
	}
	return min
}

// EditEnd returns the maximum end offset across the diagnostic's edits.
func (d Diagnostic) EditEnd() uint32 {
	max := d.Edits[0].End
	for _, e := range d.Edits[1:] {
		if e.End > max {
			max = e.End
		}
	}
	return max
}
