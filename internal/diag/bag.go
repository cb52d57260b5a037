package diag

import (
	"sort"
)

// Bag accumulates diagnostics for one lint pass.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a bag capped at max diagnostics. max <= 0 means unbounded.
func NewBag(max int) *Bag {
	capHint := max
	if capHint <= 0 || capHint > 64 {
		capHint = 64
	}
	return &Bag{
		items: make([]Diagnostic, 0, capHint),
		max:   max,
	}
}

// Add appends a diagnostic, honoring the cap. Reports false when the bag is
// full and the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether at least one diagnostic has error severity.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns the backing slice. Callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Take returns the accumulated diagnostics and empties the bag.
func (b *Bag) Take() []Diagnostic {
	out := b.items
	b.items = make([]Diagnostic, 0, cap(out))
	return out
}

// Reset drops all accumulated diagnostics.
func (b *Bag) Reset() {
	b.items = b.items[:0]
}

// Sort orders diagnostics deterministically: internal notices first (their
// 0:0 sentinel position), then ascending by line and column. The sort is
// stable, so diagnostics at the same position keep their report order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := &b.items[i], &b.items[j]
		if di.Internal != dj.Internal {
			return di.Internal
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})
}

// DropInternal removes engine-internal notices in place, preserving order.
func (b *Bag) DropInternal() {
	kept := b.items[:0]
	for _, d := range b.items {
		if !d.Internal {
			kept = append(kept, d)
		}
	}
	b.items = kept
}
