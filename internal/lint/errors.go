package lint

import "fmt"

// InputError reports unusable source input. The lint call aborts before any
// rule runs.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "lint: " + e.Reason
}

// ConfigError reports malformed configuration: an unknown rule, an invalid
// rule module, invalid options, or a raw config without a rules mapping.
// Configuration is validated fully before traversal, so a ConfigError means
// zero diagnostics were produced.
type ConfigError struct {
	Rule   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Rule == "" {
		return "lint config: " + e.Reason
	}
	return fmt.Sprintf("lint config: rule %q: %s", e.Rule, e.Reason)
}

// ParseError wraps a failure of the parser collaborator. No diagnostics are
// returned alongside it.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "lint parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RuleAuthoringError reports a defective rule implementation: a report call
// without a node or message, or a fix with overlapping or out-of-range
// edits. It is fatal rather than silently dropped, since swallowing it
// would hide incorrect diagnostics.
type RuleAuthoringError struct {
	Rule   string
	Reason string
}

func (e *RuleAuthoringError) Error() string {
	return fmt.Sprintf("rule %q: %s", e.Rule, e.Reason)
}
