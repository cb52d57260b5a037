package lint

import (
	"errors"
	"testing"

	"github.com/olehManboy/Ethlint/internal/diag"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.MustRegister("quotes", &stubRule{meta: Meta{
		Docs:   Docs{Description: "enforce a quote style", Type: diag.SevError},
		Schema: []Constraint{{Type: "string", MinLength: 1}},
	}})
	reg.MustRegister("max-len", &stubRule{meta: Meta{
		Docs:   Docs{Description: "cap line length", Type: diag.SevWarning},
		Schema: []Constraint{IntRange(1, 400)},
	}})
	return reg
}

func TestBuildEffectiveConfigForms(t *testing.T) {
	reg := testRegistry(t)
	cfg, err := BuildEffectiveConfig(reg, RawConfig{Rules: map[string]any{
		"quotes":  true,
		"max-len": "error",
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rc := cfg.Rules["quotes"]; !rc.Enabled || rc.Severity != diag.SevError {
		t.Fatalf("quotes = %+v (default severity should come from docs)", rc)
	}
	if rc := cfg.Rules["max-len"]; !rc.Enabled || rc.Severity != diag.SevError {
		t.Fatalf("max-len = %+v", rc)
	}
}

func TestBuildEffectiveConfigDisabled(t *testing.T) {
	reg := testRegistry(t)
	cfg, err := BuildEffectiveConfig(reg, RawConfig{Rules: map[string]any{"quotes": false}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.Rules["quotes"].Enabled {
		t.Fatal("disabled rule enabled")
	}
	if got := cfg.EnabledRules(); len(got) != 0 {
		t.Fatalf("enabled = %v", got)
	}
}

func TestBuildEffectiveConfigListForm(t *testing.T) {
	reg := testRegistry(t)
	cfg, err := BuildEffectiveConfig(reg, RawConfig{Rules: map[string]any{
		"quotes": []any{"warning", "double"},
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	rc := cfg.Rules["quotes"]
	if rc.Severity != diag.SevWarning || len(rc.Options) != 1 || rc.Options[0] != "double" {
		t.Fatalf("quotes = %+v", rc)
	}
}

func TestBuildEffectiveConfigLegacyNumeric(t *testing.T) {
	reg := testRegistry(t)
	cfg, err := BuildEffectiveConfig(reg, RawConfig{Rules: map[string]any{
		"quotes":  2,
		"max-len": 0,
	}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rc := cfg.Rules["quotes"]; !rc.Enabled || rc.Severity != diag.SevError {
		t.Fatalf("quotes = %+v", rc)
	}
	if cfg.Rules["max-len"].Enabled {
		t.Fatal("numeric 0 should disable")
	}
	if len(cfg.Legacy) != 2 {
		t.Fatalf("legacy = %v", cfg.Legacy)
	}
}

func TestBuildEffectiveConfigErrors(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]map[string]any{
		"unknown rule":      {"no-such-rule": true},
		"bad severity":      {"quotes": "fatal"},
		"bad numeric":       {"quotes": 3},
		"bad options":       {"quotes": []any{"error", 42}},
		"surplus options":   {"max-len": []any{"error", 80, 81}},
		"empty list":        {"quotes": []any{}},
		"non-string head":   {"quotes": []any{1, "double"}},
		"unsupported value": {"quotes": 1.5},
	}
	for name, rules := range cases {
		_, err := BuildEffectiveConfig(reg, RawConfig{Rules: rules})
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("%s: err = %v, want ConfigError", name, err)
			continue
		}
		if ce.Rule == "" {
			t.Errorf("%s: ConfigError does not name the rule", name)
		}
	}
}

func TestBuildEffectiveConfigNilRules(t *testing.T) {
	_, err := BuildEffectiveConfig(testRegistry(t), RawConfig{})
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v", err)
	}
}
