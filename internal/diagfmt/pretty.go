// Package diagfmt renders lint results for humans and machines.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/olehManboy/Ethlint/internal/diag"
)

// PrettyOpts configures pretty-printing.
type PrettyOpts struct {
	Color bool
	// ShowSource prints the offending line with a caret underline.
	ShowSource bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	ruleColor = color.New(color.Faint)
	posColor  = color.New(color.Bold)
)

// Pretty writes diagnostics for one file. src may be nil, in which case
// source excerpts are skipped. Diagnostics are printed in the order given;
// the engine already sorted them.
func Pretty(w io.Writer, path string, src []byte, diags []diag.Diagnostic, opts PrettyOpts) {
	if len(diags) == 0 {
		return
	}
	lines := strings.Split(string(src), "\n")

	for _, d := range diags {
		sev := severityTag(d.Severity, opts.Color)
		pos := ""
		if d.Line > 0 {
			pos = fmt.Sprintf(":%d:%d", d.Line, d.Column)
		}
		head := fmt.Sprintf("%s%s", path, pos)
		if opts.Color {
			head = posColor.Sprint(head)
		}
		rule := "[" + d.Rule + "]"
		if opts.Color {
			rule = ruleColor.Sprint(rule)
		}
		fmt.Fprintf(w, "%s: %s: %s %s\n", head, sev, d.Message, rule)

		if opts.ShowSource && src != nil && d.Line > 0 && int(d.Line) <= len(lines) {
			line := lines[d.Line-1]
			fmt.Fprintf(w, "  %s\n", line)
			fmt.Fprintf(w, "  %s\n", caret(line, d))
		}
	}
}

// caret underlines the diagnostic's span within its first line. Wide
// characters before the span still line the marker up, since padding is
// computed in display cells.
func caret(line string, d diag.Diagnostic) string {
	col := int(d.Column)
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}
	pad := runewidth.StringWidth(line[:col-1])

	n := int(d.Primary.Len())
	if n < 1 {
		n = 1
	}
	if rest := len(line) - (col - 1); rest <= 0 {
		n = 1
	} else if n > rest {
		n = rest
	}
	marker := "^" + strings.Repeat("~", n-1)
	return strings.Repeat(" ", pad) + marker
}

func severityTag(s diag.Severity, colored bool) string {
	if !colored {
		return s.String()
	}
	switch s {
	case diag.SevError:
		return errColor.Sprint("error")
	case diag.SevWarning:
		return warnColor.Sprint("warning")
	default:
		return infoColor.Sprint("info")
	}
}

// Summary writes the closing counts line.
func Summary(w io.Writer, files, errors, warnings int, opts PrettyOpts) {
	if errors == 0 && warnings == 0 {
		msg := fmt.Sprintf("%d file(s) checked, no issues found", files)
		if opts.Color {
			msg = color.New(color.FgGreen).Sprint(msg)
		}
		fmt.Fprintln(w, msg)
		return
	}
	msg := fmt.Sprintf("%d file(s) checked: %d error(s), %d warning(s)", files, errors, warnings)
	if opts.Color {
		if errors > 0 {
			msg = errColor.Sprint(msg)
		} else {
			msg = warnColor.Sprint(msg)
		}
	}
	fmt.Fprintln(w, msg)
}
