// Package fix applies autofix edits proposed by lint diagnostics to source
// text. Selection is deterministic: candidates are taken in ascending order
// of their first edit, and a diagnostic's edits apply atomically or not at
// all.
package fix

import (
	"sort"
	"strings"

	"github.com/olehManboy/Ethlint/internal/diag"
)

// Result summarises one fix pass over a single source text.
type Result struct {
	// Fixed is the rewritten source. Equal to the input when no fix
	// applied.
	Fixed string
	// Applied counts diagnostics whose whole edit set was applied.
	Applied int
	// Remaining holds diagnostics still standing after the pass: those
	// without edits plus fixable ones skipped for conflicting with an
	// earlier candidate. Relative order of the input is preserved.
	Remaining []diag.Diagnostic
}

type candidate struct {
	diag  diag.Diagnostic
	order int
}

// Apply runs one fix pass. Diagnostics carrying edits compete in ascending
// order of their minimum edit start; when two candidates' edit ranges
// overlap, the earlier one wins and the later is skipped. Ties fall back to
// edit end, rule name, and finally input order, so the outcome never
// depends on map iteration or report timing.
func Apply(src string, diagnostics []diag.Diagnostic) Result {
	res := Result{Fixed: src}

	cands := make([]candidate, 0, len(diagnostics))
	unfixed := make([]candidate, 0, len(diagnostics))
	for i, d := range diagnostics {
		if d.HasEdits() {
			cands = append(cands, candidate{diag: d, order: i})
		} else {
			unfixed = append(unfixed, candidate{diag: d, order: i})
		}
	}
	if len(cands) == 0 {
		for _, c := range unfixed {
			res.Remaining = append(res.Remaining, c.diag)
		}
		return res
	}

	sort.SliceStable(cands, func(i, j int) bool {
		di, dj := cands[i].diag, cands[j].diag
		if di.EditStart() != dj.EditStart() {
			return di.EditStart() < dj.EditStart()
		}
		if di.EditEnd() != dj.EditEnd() {
			return di.EditEnd() < dj.EditEnd()
		}
		if di.Rule != dj.Rule {
			return di.Rule < dj.Rule
		}
		return cands[i].order < cands[j].order
	})

	// frontier is the end of the last applied region in original-source
	// offsets. A candidate is accepted only when every one of its edits
	// starts at or after it; accepted edits never reorder, so the output
	// is assembled in one left-to-right walk.
	var accepted []diag.Edit
	skipped := unfixed
	frontier := uint32(0)
	for _, c := range cands {
		if c.diag.EditStart() < frontier {
			skipped = append(skipped, c)
			continue
		}
		accepted = append(accepted, c.diag.Edits...)
		frontier = c.diag.EditEnd()
		res.Applied++
	}

	sort.SliceStable(skipped, func(i, j int) bool { return skipped[i].order < skipped[j].order })
	for _, c := range skipped {
		res.Remaining = append(res.Remaining, c.diag)
	}

	if len(accepted) > 0 {
		res.Fixed = splice(src, accepted)
	}
	return res
}

// splice rewrites src with edits sorted ascending and pairwise
// non-overlapping, all offsets relative to the original text.
func splice(src string, edits []diag.Edit) string {
	var b strings.Builder
	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - int(e.End-e.Start)
	}
	b.Grow(len(src) + delta)

	cursor := uint32(0)
	for _, e := range edits {
		b.WriteString(src[cursor:e.Start])
		b.WriteString(e.NewText)
		cursor = e.End
	}
	b.WriteString(src[cursor:])
	return b.String()
}
