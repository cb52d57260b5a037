package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderVersionPrettyMinimal(t *testing.T) {
	var buf bytes.Buffer
	info := versionInfo{Version: "1.2.3"}
	renderVersionPretty(&buf, info, versionOptions{format: "pretty"})

	out := buf.String()
	if !strings.Contains(out, "ethlint 1.2.3") {
		t.Fatalf("missing version line in %q", out)
	}
	if !strings.Contains(out, "--full") {
		t.Errorf("expected hint about --full in %q", out)
	}
}

func TestRenderVersionPrettyFull(t *testing.T) {
	var buf bytes.Buffer
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-01"}
	opts := versionOptions{format: "pretty", showHash: true, showMessage: true, showDate: true}
	renderVersionPretty(&buf, info, opts)

	out := buf.String()
	for _, want := range []string{"commit: abc123", "message: unknown", "built:  2026-01-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}
	opts := versionOptions{format: "json", showHash: true}
	if err := renderVersionJSON(&buf, info, opts); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}

	var got versionPayload
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Tool != "ethlint" || got.Version != "1.2.3" || got.GitCommit != "abc123" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.BuildDate != "" {
		t.Errorf("build date should be omitted, got %q", got.BuildDate)
	}
}
