package lint

import (
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/source"
)

// Fixer builds edits for one report. It is scoped to the reported node; the
// range helpers address the node's span in original-source offsets.
type Fixer struct {
	node source.Span
	src  []byte
}

// Span returns the byte range of the reported node.
func (f *Fixer) Span() source.Span { return f.node }

// Text returns the source text of the reported node.
func (f *Fixer) Text() string {
	return string(f.src[f.node.Start:f.node.End])
}

// Replace substitutes the whole node with text.
func (f *Fixer) Replace(text string) diag.Edit {
	return diag.Edit{Start: f.node.Start, End: f.node.End, NewText: text}
}

// Remove deletes the node's text.
func (f *Fixer) Remove() diag.Edit {
	return diag.Edit{Start: f.node.Start, End: f.node.End}
}

// InsertBefore places text immediately ahead of the node.
func (f *Fixer) InsertBefore(text string) diag.Edit {
	return diag.Edit{Start: f.node.Start, End: f.node.Start, NewText: text}
}

// InsertAfter places text immediately behind the node.
func (f *Fixer) InsertAfter(text string) diag.Edit {
	return diag.Edit{Start: f.node.End, End: f.node.End, NewText: text}
}

// ReplaceRange substitutes an arbitrary byte range of the file. Offsets are
// validated against the file when the report is recorded.
func (f *Fixer) ReplaceRange(start, end uint32, text string) diag.Edit {
	return diag.Edit{Start: start, End: end, NewText: text}
}
