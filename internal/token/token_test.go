package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"contract", KwContract, true},
		{"pragma", KwPragma, true},
		{"emit", KwEmit, true},
		{"Contract", Invalid, false},
		{"selfdestruct", Invalid, false},
		{"suicide", Invalid, false},
	}
	for _, tt := range tests {
		k, ok := LookupKeyword(tt.ident)
		if ok != tt.ok || (ok && k != tt.kind) {
			t.Errorf("LookupKeyword(%q) = %v, %v", tt.ident, k, ok)
		}
	}
}

func TestTokenClassifiers(t *testing.T) {
	if !(Token{Kind: StringLit}).IsLiteral() {
		t.Error("string literal")
	}
	if !(Token{Kind: KwTrue}).IsLiteral() {
		t.Error("bool literal")
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Error("ident is not a literal")
	}
	if !(Token{Kind: KwPublic}).IsVisibility() {
		t.Error("visibility")
	}
	if !(Token{Kind: KwView}).IsStateMutability() {
		t.Error("mutability")
	}
	if !(Token{Kind: KwMemory}).IsDataLocation() {
		t.Error("data location")
	}
	if !(Token{Kind: KwContract}).IsKeyword() {
		t.Error("keyword")
	}
	if (Token{Kind: Ident}).IsKeyword() {
		t.Error("ident is not a keyword")
	}
}

func TestKindString(t *testing.T) {
	if got := Semicolon.String(); got != "';'" {
		t.Errorf("semicolon: %q", got)
	}
	if got := KwContract.String(); got != "'contract'" {
		t.Errorf("contract: %q", got)
	}
	if got := Ident.String(); got != "identifier" {
		t.Errorf("ident: %q", got)
	}
}
