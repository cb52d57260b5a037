package lint

import (
	"fmt"
	"sort"

	"github.com/olehManboy/Ethlint/internal/diag"
)

// SessionOptions tune how a lint call behaves beyond rule selection.
type SessionOptions struct {
	// ReturnInternalIssues keeps engine notices (deprecations, dropped
	// fixes, legacy-config warnings) in the returned list. They sort
	// before all source diagnostics.
	ReturnInternalIssues bool
}

// RawConfig is the user-facing configuration shape. Rules maps a rule name
// to one of:
//
//	bool            enable or disable, default severity
//	string          severity name, enables the rule
//	int             legacy numeric severity: 0 off, 1 warning, 2 error
//	[]any           severity name followed by positional options
type RawConfig struct {
	Rules   map[string]any
	Options SessionOptions
}

// RuleConfig is the resolved per-rule configuration.
type RuleConfig struct {
	Enabled  bool
	Severity diag.Severity
	Options  []any
}

// EffectiveConfig is the fully validated form every lint run works from.
type EffectiveConfig struct {
	Rules map[string]RuleConfig
	// Legacy lists rule names that were configured in the deprecated
	// numeric form. The session surfaces one internal notice for them.
	Legacy []string

	ReturnInternalIssues bool
}

// EnabledRules returns the names of enabled rules in sorted order, which is
// the order their Create hooks run in.
func (c *EffectiveConfig) EnabledRules() []string {
	names := make([]string, 0, len(c.Rules))
	for name, rc := range c.Rules {
		if rc.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// BuildEffectiveConfig resolves and validates a raw configuration against a
// registry. Validation is fail-closed: the first problem aborts with a
// ConfigError naming the offending rule, and nothing runs with a partially
// valid configuration.
func BuildEffectiveConfig(reg *Registry, raw RawConfig) (*EffectiveConfig, error) {
	if raw.Rules == nil {
		return nil, &ConfigError{Reason: "configuration requires a rules mapping"}
	}

	names := make([]string, 0, len(raw.Rules))
	for name := range raw.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	eff := &EffectiveConfig{
		Rules:                make(map[string]RuleConfig, len(raw.Rules)),
		ReturnInternalIssues: raw.Options.ReturnInternalIssues,
	}
	for _, name := range names {
		rule, ok := reg.Get(name)
		if !ok {
			return nil, &ConfigError{Rule: name, Reason: "unknown rule"}
		}
		if !ValidRuleModule(rule) {
			return nil, &ConfigError{Rule: name, Reason: "invalid rule module"}
		}
		meta := rule.Meta()

		rc, legacy, err := resolveEntry(name, raw.Rules[name], meta)
		if err != nil {
			return nil, err
		}
		if legacy {
			eff.Legacy = append(eff.Legacy, name)
		}
		eff.Rules[name] = rc
	}
	return eff, nil
}

func resolveEntry(name string, entry any, meta Meta) (RuleConfig, bool, error) {
	switch v := entry.(type) {
	case bool:
		return RuleConfig{Enabled: v, Severity: meta.Docs.Type}, false, nil

	case string:
		sev, ok := diag.ParseSeverity(v)
		if !ok {
			return RuleConfig{}, false, &ConfigError{Rule: name, Reason: fmt.Sprintf("unknown severity %q", v)}
		}
		return RuleConfig{Enabled: true, Severity: sev}, false, nil

	case int, int64, int32:
		n, _ := asInt64(v)
		switch n {
		case 0:
			return RuleConfig{Enabled: false, Severity: meta.Docs.Type}, true, nil
		case 1:
			return RuleConfig{Enabled: true, Severity: diag.SevWarning}, true, nil
		case 2:
			return RuleConfig{Enabled: true, Severity: diag.SevError}, true, nil
		}
		return RuleConfig{}, false, &ConfigError{Rule: name, Reason: fmt.Sprintf("numeric severity must be 0, 1 or 2, got %d", n)}

	case []any:
		if len(v) == 0 {
			return RuleConfig{}, false, &ConfigError{Rule: name, Reason: "list form requires a leading severity"}
		}
		head, ok := v[0].(string)
		if !ok {
			return RuleConfig{}, false, &ConfigError{Rule: name, Reason: "list form requires a leading severity string"}
		}
		sev, ok := diag.ParseSeverity(head)
		if !ok {
			return RuleConfig{}, false, &ConfigError{Rule: name, Reason: fmt.Sprintf("unknown severity %q", head)}
		}
		opts := v[1:]
		if !AreValidOptions(opts, meta.Schema) {
			return RuleConfig{}, false, &ConfigError{Rule: name, Reason: "options do not match the rule schema"}
		}
		return RuleConfig{Enabled: true, Severity: sev, Options: opts}, false, nil
	}
	return RuleConfig{}, false, &ConfigError{Rule: name, Reason: fmt.Sprintf("unsupported configuration value of type %T", entry)}
}
