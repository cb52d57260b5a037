package lint

import (
	"fmt"
	"strings"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/fix"
	"github.com/olehManboy/Ethlint/internal/source"
)

// Parser turns a source file into a syntax tree. A syntax error aborts the
// lint run; lenient recovery happens inside the implementation, not here.
type Parser interface {
	Parse(file *source.File) (*ast.Node, error)
}

type sessionState uint8

const (
	stateIdle sessionState = iota
	stateConfiguring
	stateTraversing
	stateReporting
)

// Session drives lint runs. It is reusable across calls but not safe for
// concurrent use; run one session per goroutine.
type Session struct {
	registry *Registry
	parser   Parser

	state      sessionState
	file       *source.File
	cfg        *EffectiveConfig
	dispatcher *Dispatcher
	bag        *diag.Bag
	stack      []*ast.Node
	fatal      error
}

// RunOptions tune a single lint call.
type RunOptions struct {
	// KeepPriorState leaves this run's diagnostics in the session buffer
	// after returning, so Diagnostics and LintAndFix can reuse them.
	KeepPriorState bool
}

func NewSession(registry *Registry, parser Parser) *Session {
	return &Session{
		registry: registry,
		parser:   parser,
		bag:      diag.NewBag(0),
	}
}

// Reset drops every trace of prior runs.
func (s *Session) Reset() {
	s.state = stateIdle
	s.file = nil
	s.cfg = nil
	s.dispatcher = nil
	s.stack = s.stack[:0]
	s.fatal = nil
	s.bag.Reset()
}

// Diagnostics returns a copy of the buffered diagnostics of the last run,
// which is only non-empty after LintWith with KeepPriorState.
func (s *Session) Diagnostics() []diag.Diagnostic {
	return append([]diag.Diagnostic(nil), s.bag.Items()...)
}

// Lint runs every enabled rule over the source and returns the sorted
// diagnostics. Fatal failures return an error and no diagnostics, never a
// partial list.
func (s *Session) Lint(src string, raw RawConfig) ([]diag.Diagnostic, error) {
	return s.LintWith(src, raw, RunOptions{})
}

func (s *Session) LintWith(src string, raw RawConfig, opts RunOptions) ([]diag.Diagnostic, error) {
	if s.state != stateIdle {
		return nil, &InputError{Reason: "session is already linting"}
	}
	// Every run starts from a clean slate regardless of options; prior
	// diagnostics never leak into a new call.
	s.Reset()

	if strings.TrimSpace(src) == "" {
		return nil, &InputError{Reason: "source is empty"}
	}

	s.state = stateConfiguring
	defer func() { s.state = stateIdle }()

	cfg, err := BuildEffectiveConfig(s.registry, raw)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	s.dispatcher = NewDispatcher()

	fs := source.NewFileSet()
	s.file = fs.Get(fs.AddVirtual("input.sol", []byte(src)))

	if len(cfg.Legacy) > 0 {
		s.reportInternal("config", diag.SevWarning,
			fmt.Sprintf("numeric severities are deprecated; use named severities for: %s", strings.Join(cfg.Legacy, ", ")))
	}

	for _, name := range cfg.EnabledRules() {
		rule, _ := s.registry.Get(name)
		meta := rule.Meta()
		if meta.Deprecated {
			msg := fmt.Sprintf("rule %q is deprecated", name)
			if len(meta.Docs.ReplacedBy) > 0 {
				msg += "; use " + strings.Join(meta.Docs.ReplacedBy, ", ") + " instead"
			}
			s.reportInternal(name, diag.SevWarning, msg)
		}
		rule.Create(&Context{
			session: s,
			name:    name,
			meta:    meta,
			cfg:     cfg.Rules[name],
		})
		if s.fatal != nil {
			return nil, s.fatal
		}
	}

	root, err := s.parser.Parse(s.file)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	s.state = stateTraversing
	s.walk(root)
	if s.fatal != nil {
		s.bag.Reset()
		return nil, s.fatal
	}

	s.state = stateReporting
	if !cfg.ReturnInternalIssues {
		s.bag.DropInternal()
	}
	s.bag.Sort()
	out := append([]diag.Diagnostic(nil), s.bag.Items()...)
	if !opts.KeepPriorState {
		s.bag.Reset()
	}
	return out, nil
}

// FixOutcome is the result of a lint-and-fix pass.
type FixOutcome struct {
	// Fixed is the rewritten source in normalized form (BOM stripped,
	// CRLF folded to LF), identical to the normalized input when nothing
	// applied.
	Fixed string
	// Applied counts diagnostics whose edit sets were applied in full.
	Applied int
	// Remaining holds the diagnostics that still stand: unfixable ones
	// plus fixable ones skipped because their edits conflicted.
	Remaining []diag.Diagnostic
}

// LintAndFix lints and then applies as many non-conflicting fixes as
// possible in one deterministic pass. Edit offsets index the normalized
// file content, not the caller's raw bytes, so the splice runs against the
// same text the rules saw.
func (s *Session) LintAndFix(src string, raw RawConfig) (*FixOutcome, error) {
	diags, err := s.Lint(src, raw)
	if err != nil {
		return nil, err
	}
	res := fix.Apply(string(s.file.Content), diags)
	return &FixOutcome{
		Fixed:     res.Fixed,
		Applied:   res.Applied,
		Remaining: res.Remaining,
	}, nil
}

// walk does a depth-first traversal firing enter and leave events. The
// ancestor chain is maintained on an explicit stack; nodes carry no parent
// pointers.
func (s *Session) walk(n *ast.Node) {
	if n == nil || s.fatal != nil {
		return
	}
	s.dispatcher.Enter(n, s.stack)
	if s.fatal != nil {
		return
	}
	s.stack = append(s.stack, n)
	for _, child := range n.Children {
		s.walk(child)
		if s.fatal != nil {
			return
		}
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.dispatcher.Leave(n, s.stack)
}

// reportInternal records an engine notice at the 0:0 sentinel position, so
// it sorts ahead of every source diagnostic.
func (s *Session) reportInternal(rule string, sev diag.Severity, msg string) {
	s.bag.Add(diag.Diagnostic{
		Rule:     rule,
		Severity: sev,
		Message:  msg,
		Internal: true,
	})
}

// fail records the first fatal error; later failures are ignored.
func (s *Session) fail(err error) {
	if s.fatal == nil {
		s.fatal = err
	}
}
