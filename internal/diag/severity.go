package diag

// Severity defines the importance of a diagnostic. The zero value is
// deliberately not a valid rule severity: rule metadata must declare either
// SevWarning or SevError, and validation rejects anything else.
type Severity uint8

const (
	// SevInfo is for engine-internal informational notices.
	SevInfo Severity = iota
	// SevWarning is for findings that do not fail a lint run.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity maps a configuration string to a Severity.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "warning":
		return SevWarning, true
	case "error":
		return SevError, true
	}
	return SevInfo, false
}
