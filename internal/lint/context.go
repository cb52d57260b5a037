package lint

import (
	"fmt"
	"sort"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/source"
)

// Context is the API surface a rule works through. One context exists per
// enabled rule per lint call.
type Context struct {
	session *Session
	name    string
	meta    Meta
	cfg     RuleConfig
}

// RuleName returns the name the rule was enabled under.
func (c *Context) RuleName() string { return c.name }

// Severity returns the effective severity for this rule's reports.
func (c *Context) Severity() diag.Severity { return c.cfg.Severity }

// Options returns the positional options from the configuration. Rules fall
// back to their defaults when it is empty.
func (c *Context) Options() []any { return c.cfg.Options }

// Option returns the option at index i, or nil when absent.
func (c *Context) Option(i int) any {
	if i < 0 || i >= len(c.cfg.Options) {
		return nil
	}
	return c.cfg.Options[i]
}

// Source returns the full text being linted.
func (c *Context) Source() string {
	return string(c.session.file.Content)
}

// NodeText returns the exact source slice a node spans.
func (c *Context) NodeText(n *ast.Node) string {
	if n == nil {
		return ""
	}
	return string(c.session.file.Content[n.Span.Start:n.Span.End])
}

// On subscribes a handler for a node type. The handler fires on both entry
// and exit; inspect Event.Exit to pick one side.
func (c *Context) On(nodeType string, h Handler) {
	c.session.dispatcher.Subscribe(nodeType, func(ev Event) {
		if c.session.fatal != nil {
			return
		}
		h(ev)
	})
}

// OnEnter subscribes a handler that only fires when a node is entered.
func (c *Context) OnEnter(nodeType string, h Handler) {
	c.On(nodeType, func(ev Event) {
		if !ev.Exit {
			h(ev)
		}
	})
}

// OnExit subscribes a handler that only fires when a node is left.
func (c *Context) OnExit(nodeType string, h Handler) {
	c.On(nodeType, func(ev Event) {
		if ev.Exit {
			h(ev)
		}
	})
}

// Report is one finding a rule hands to the engine.
type Report struct {
	Node    *ast.Node
	Message string
	// Location overrides the position derived from Node's span start.
	Location *source.LineCol
	// Fix builds the edits that repair the finding. Only honored when the
	// rule's metadata declares Fixable.
	Fix func(*Fixer) []diag.Edit
}

// Report records a finding. A report without a node or message is a rule
// authoring defect and aborts the lint call.
func (c *Context) Report(r Report) {
	s := c.session
	if s.fatal != nil {
		return
	}
	if r.Node == nil {
		s.fail(&RuleAuthoringError{Rule: c.name, Reason: "report without a node"})
		return
	}
	if r.Message == "" {
		s.fail(&RuleAuthoringError{Rule: c.name, Reason: "report without a message"})
		return
	}

	d := diag.Diagnostic{
		Rule:     c.name,
		Severity: c.cfg.Severity,
		Message:  r.Message,
		Primary:  r.Node.Span,
	}
	if r.Location != nil {
		d.Line = r.Location.Line
		d.Column = r.Location.Col
	} else {
		lc := s.file.LineCol(r.Node.Span.Start)
		d.Line = lc.Line
		d.Column = lc.Col
	}

	if r.Fix != nil {
		if c.meta.Fixable != FixableCode {
			s.reportInternal(c.name, diag.SevWarning,
				fmt.Sprintf("rule %q supplied a fix but does not declare itself fixable; fix dropped", c.name))
		} else {
			edits, err := c.buildEdits(r.Node.Span, r.Fix)
			if err != nil {
				s.fail(err)
				return
			}
			d.Edits = edits
		}
	}
	s.bag.Add(d)
}

func (c *Context) buildEdits(target source.Span, build func(*Fixer) []diag.Edit) ([]diag.Edit, error) {
	s := c.session
	fx := &Fixer{node: target, src: s.file.Content}
	edits := build(fx)
	if len(edits) == 0 {
		return nil, nil
	}
	limit := uint32(len(s.file.Content))
	for _, e := range edits {
		if e.Start > e.End || e.End > limit {
			return nil, &RuleAuthoringError{Rule: c.name, Reason: fmt.Sprintf("fix edit [%d,%d) out of range", e.Start, e.End)}
		}
	}
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].Start < edits[j].Start })
	for i := 1; i < len(edits); i++ {
		if edits[i-1].Overlaps(edits[i]) {
			return nil, &RuleAuthoringError{Rule: c.name, Reason: "fix edits overlap"}
		}
	}
	return edits, nil
}

