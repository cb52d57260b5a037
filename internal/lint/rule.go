package lint

import (
	"fmt"
	"sort"

	"github.com/olehManboy/Ethlint/internal/diag"
)

// Docs describes a rule for listings and for picking its default severity.
type Docs struct {
	Description string
	Recommended bool
	// Type is the default severity a rule reports with when the
	// configuration enables it without naming one. Only SevWarning and
	// SevError are valid here.
	Type diag.Severity
	// ReplacedBy lists successor rules of a deprecated rule.
	ReplacedBy []string
}

// Meta is the static description every rule module carries.
type Meta struct {
	Docs   Docs
	Schema []Constraint
	// Fixable must be "code" for a rule whose reports may attach fixes.
	// Fixes supplied by rules without it are dropped with an internal
	// warning.
	Fixable    string
	Deprecated bool
}

// FixableCode is the only accepted Meta.Fixable value.
const FixableCode = "code"

// Rule is a lint rule module. Create subscribes handlers on the context;
// it runs once per lint call, before traversal starts.
type Rule interface {
	Meta() Meta
	Create(*Context)
}

// ValidRuleModule reports whether a rule module is structurally sound. It
// never panics, even on a defective implementation.
func ValidRuleModule(r Rule) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if r == nil {
		return false
	}
	m := r.Meta()
	if m.Docs.Description == "" {
		return false
	}
	if m.Docs.Type != diag.SevWarning && m.Docs.Type != diag.SevError {
		return false
	}
	if m.Docs.ReplacedBy != nil {
		if len(m.Docs.ReplacedBy) == 0 {
			return false
		}
		for _, name := range m.Docs.ReplacedBy {
			if name == "" {
				return false
			}
		}
	}
	if m.Fixable != "" && m.Fixable != FixableCode {
		return false
	}
	return true
}

// Registry maps rule names to rule modules.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule under a name. Re-registering a name or registering
// an invalid module is an error.
func (r *Registry) Register(name string, rule Rule) error {
	if name == "" {
		return fmt.Errorf("registry: empty rule name")
	}
	if _, dup := r.rules[name]; dup {
		return fmt.Errorf("registry: rule %q already registered", name)
	}
	if !ValidRuleModule(rule) {
		return fmt.Errorf("registry: rule %q is not a valid rule module", name)
	}
	r.rules[name] = rule
	return nil
}

// MustRegister panics on registration failure. Used for the builtin set,
// where a failure is a programming error.
func (r *Registry) MustRegister(name string, rule Rule) {
	if err := r.Register(name, rule); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.rules[name]
	return ok
}

// Names returns all registered rule names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.rules)
}
