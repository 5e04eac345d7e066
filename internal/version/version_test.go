package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	if Version == "" || BuildTime == "" || GitCommit == "" {
		t.Fatal("build metadata should be initialized")
	}
	got := String()
	if !strings.HasPrefix(got, "ctfpress "+Version) {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(got, GitCommit) {
		t.Errorf("String() = %q, missing commit", got)
	}
}
