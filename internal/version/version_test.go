package version

import (
	"strings"
	"testing"
)

func TestVersionContainsComponents(t *testing.T) {
	// Version carries ANSI color codes when forced on; strip expectations
	// down to the raw digits which are always present.
	for _, part := range []string{"0", "2", "-dev"} {
		if !strings.Contains(Version, part) {
			t.Errorf("Version %q does not contain %q", Version, part)
		}
	}
}

func TestBuildMetadataDefaults(t *testing.T) {
	if GitCommit == "" {
		t.Error("GitCommit must not be empty; default should be \"unknown\"")
	}
	if GitMessage == "" {
		t.Error("GitMessage must not be empty; default should be \"unknown\"")
	}
	if BuildDate == "" {
		t.Error("BuildDate must not be empty; default should be \"unknown\"")
	}
}

func TestBuildMetadataOverride(t *testing.T) {
	savedCommit := GitCommit
	savedDate := BuildDate
	defer func() {
		GitCommit = savedCommit
		BuildDate = savedDate
	}()

	GitCommit = "abc1234"
	BuildDate = "2026-01-01"

	if GitCommit != "abc1234" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc1234")
	}
	if BuildDate != "2026-01-01" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2026-01-01")
	}
}
