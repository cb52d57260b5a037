package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/olehManboy/Ethlint/internal/diag"
)

// DiagnosticJSON is one finding in machine-readable output.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Line     uint32 `json:"line,omitempty"`
	Column   uint32 `json:"column,omitempty"`
	Internal bool   `json:"internal,omitempty"`
	Fixable  bool   `json:"fixable,omitempty"`
}

// FileJSON groups findings per file. Error carries a fatal per-file failure
// (unreadable input, parse error); Diagnostics is empty then.
type FileJSON struct {
	File        string           `json:"file"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// OutputJSON is the root of the JSON report.
type OutputJSON struct {
	Files    []FileJSON `json:"files"`
	Errors   int        `json:"errors"`
	Warnings int        `json:"warnings"`
}

// NewFileJSON converts one file's results.
func NewFileJSON(path string, diags []diag.Diagnostic, err error) FileJSON {
	out := FileJSON{File: path, Diagnostics: make([]DiagnosticJSON, 0, len(diags))}
	if err != nil {
		out.Error = err.Error()
		return out
	}
	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Rule:     d.Rule,
			Message:  d.Message,
			Line:     d.Line,
			Column:   d.Column,
			Internal: d.Internal,
			Fixable:  d.HasEdits(),
		})
	}
	return out
}

// JSON writes the whole report with indentation and a trailing newline.
func JSON(w io.Writer, files []FileJSON) error {
	out := OutputJSON{Files: files}
	if out.Files == nil {
		out.Files = []FileJSON{}
	}
	for _, f := range files {
		for _, d := range f.Diagnostics {
			switch d.Severity {
			case "error":
				out.Errors++
			case "warning":
				out.Warnings++
			}
		}
		if f.Error != "" {
			out.Errors++
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
