package lint

import (
	"testing"

	"github.com/olehManboy/Ethlint/internal/diag"
)

// stubRule is the minimal configurable rule used across the package tests.
type stubRule struct {
	meta   Meta
	create func(*Context)
}

func (r *stubRule) Meta() Meta { return r.meta }

func (r *stubRule) Create(ctx *Context) {
	if r.create != nil {
		r.create(ctx)
	}
}

func validMeta() Meta {
	return Meta{Docs: Docs{Description: "a test rule", Type: diag.SevWarning}}
}

type panickyRule struct{}

func (panickyRule) Meta() Meta      { panic("defective meta") }
func (panickyRule) Create(*Context) {}

func TestValidRuleModule(t *testing.T) {
	if !ValidRuleModule(&stubRule{meta: validMeta()}) {
		t.Fatal("well-formed module rejected")
	}

	cases := map[string]Meta{
		"missing description": {Docs: Docs{Type: diag.SevWarning}},
		"zero severity type":  {Docs: Docs{Description: "d"}},
		"info severity type":  {Docs: Docs{Description: "d", Type: diag.SevInfo}},
		"bad fixable":         {Docs: Docs{Description: "d", Type: diag.SevError}, Fixable: "whitespace"},
		"empty replacedBy":    {Docs: Docs{Description: "d", Type: diag.SevWarning, ReplacedBy: []string{}}},
		"blank replacedBy":    {Docs: Docs{Description: "d", Type: diag.SevWarning, ReplacedBy: []string{""}}},
	}
	for name, meta := range cases {
		if ValidRuleModule(&stubRule{meta: meta}) {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestValidRuleModuleNeverPanics(t *testing.T) {
	if ValidRuleModule(nil) {
		t.Fatal("nil module accepted")
	}
	if ValidRuleModule(panickyRule{}) {
		t.Fatal("panicking module accepted")
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("quotes", &stubRule{meta: validMeta()}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("quotes", &stubRule{meta: validMeta()}); err == nil {
		t.Fatal("duplicate name accepted")
	}
	if err := reg.Register("", &stubRule{meta: validMeta()}); err == nil {
		t.Fatal("empty name accepted")
	}
	if err := reg.Register("broken", &stubRule{}); err == nil {
		t.Fatal("invalid module accepted")
	}

	if err := reg.Register("a-rule", &stubRule{meta: validMeta()}); err != nil {
		t.Fatalf("register: %v", err)
	}
	names := reg.Names()
	if len(names) != 2 || names[0] != "a-rule" || names[1] != "quotes" {
		t.Fatalf("names = %v", names)
	}
	if !reg.Has("quotes") || reg.Has("missing") {
		t.Fatal("Has misbehaves")
	}
}
