package lint

// Constraint validates one positional rule option. The Type field selects
// which refinements apply.
type Constraint struct {
	// Type is one of "string", "integer", "boolean" or "object".
	Type string

	// MinLength applies to strings.
	MinLength int

	// Minimum and Maximum apply to integers; nil means unbounded.
	Minimum *int64
	Maximum *int64

	// Properties applies to objects. Keys without a constraint are
	// rejected unless AdditionalProperties is set. Only keys present in
	// the value are validated.
	Properties           map[string]Constraint
	AdditionalProperties bool
}

// AreValidOptions validates options positionally against a schema. The two
// lists must have equal length; no type coercion is performed.
func AreValidOptions(options []any, schema []Constraint) bool {
	if len(options) != len(schema) {
		return false
	}
	for i, opt := range options {
		if !validValue(opt, schema[i]) {
			return false
		}
	}
	return true
}

func validValue(v any, c Constraint) bool {
	switch c.Type {
	case "string":
		s, ok := v.(string)
		return ok && len(s) >= c.MinLength
	case "integer":
		n, ok := asInt64(v)
		if !ok {
			return false
		}
		if c.Minimum != nil && n < *c.Minimum {
			return false
		}
		if c.Maximum != nil && n > *c.Maximum {
			return false
		}
		return true
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "object":
		m, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for key, val := range m {
			sub, known := c.Properties[key]
			if !known {
				if !c.AdditionalProperties {
					return false
				}
				continue
			}
			if !validValue(val, sub) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// asInt64 accepts the integer representations configuration decoding
// produces. A float is never treated as an integer.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

// IntRange is a convenience for integer constraints with both bounds.
func IntRange(min, max int64) Constraint {
	return Constraint{Type: "integer", Minimum: &min, Maximum: &max}
}
