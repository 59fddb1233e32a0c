package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestResolveKeepsStampedValues(t *testing.T) {
	in := Info{Version: "v1.0.0", Commit: "abc", Date: "2024-01-01"}
	got := resolve(in, func() (*debug.BuildInfo, bool) {
		t.Fatal("build info should not be read for stamped builds")
		return nil, false
	})
	if got != in {
		t.Fatalf("expected %+v, got %+v", in, got)
	}
}

func TestResolveFallsBackToVCS(t *testing.T) {
	in := Info{Version: "dev", Commit: "none", Date: "unknown"}
	got := resolve(in, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		}}, true
	})
	if got.Commit != "0123456789ab" || got.Date != "2024-05-01T10:00:00Z" {
		t.Fatalf("unexpected info: %+v", got)
	}
	if got.String() != "solidlab dev (commit=0123456789ab, date=2024-05-01T10:00:00Z)" {
		t.Fatalf("unexpected string: %q", got.String())
	}
}

func TestResolveWithoutBuildInfo(t *testing.T) {
	in := Info{Version: "dev", Commit: "none", Date: "unknown"}
	got := resolve(in, func() (*debug.BuildInfo, bool) { return nil, false })
	if got != in {
		t.Fatalf("expected unchanged info, got %+v", got)
	}
}
