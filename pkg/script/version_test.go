package script

import (
	"errors"
	"testing"
)

func TestParseVersionRoundTrip(t *testing.T) {
	for v := VersionPCPatch; v < numVersions; v++ {
		parsed, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("ParseVersion(%s) failed: %v", v, err)
		}
		if parsed != v {
			t.Errorf("ParseVersion(%s) = %v, want %v", v, parsed, v)
		}
	}
}

func TestParseVersionUnknown(t *testing.T) {
	if _, err := ParseVersion("GC_V9"); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("expected ErrUnknownVersion, got %v", err)
	}
}

func TestQuestVersions(t *testing.T) {
	vs := QuestVersions()
	if len(vs) != 12 {
		t.Fatalf("quest version count = %d, want 12", len(vs))
	}
	for _, v := range vs {
		if !v.SupportsQuests() {
			t.Errorf("%s listed as a quest version but does not support quests", v)
		}
	}
	if VersionPCPatch.SupportsQuests() || VersionBBPatch.SupportsQuests() {
		t.Error("patch versions must not support quests")
	}
}

func TestUsesArgStack(t *testing.T) {
	tests := []struct {
		v    Version
		want bool
	}{
		{VersionDCNTE, false},
		{VersionDCV1, false},
		{VersionDCV2, false},
		{VersionPCV2, false},
		{VersionGCNTE, false},
		{VersionGCV3, true},
		{VersionXBV3, true},
		{VersionBBV4, true},
	}
	for _, tt := range tests {
		if got := tt.v.usesArgStack(); got != tt.want {
			t.Errorf("%s usesArgStack = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestNativeArch(t *testing.T) {
	tests := []struct {
		v    Version
		want Arch
	}{
		{VersionDCV2, ArchSH4},
		{VersionGCV3, ArchPowerPC},
		{VersionXBV3, ArchX86},
		{VersionPCV2, ArchX86},
		{VersionBBV4, ArchX86},
	}
	for _, tt := range tests {
		if got := tt.v.NativeArch(); got != tt.want {
			t.Errorf("%s NativeArch = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestEpisodeFromNumber(t *testing.T) {
	tests := []struct {
		n    uint32
		want Episode
	}{
		{0, Episode1},
		{1, Episode2},
		{2, Episode4},
		{0xFF, Episode1},
	}
	for _, tt := range tests {
		got, err := episodeFromNumber(tt.n)
		if err != nil {
			t.Errorf("episodeFromNumber(%d) failed: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("episodeFromNumber(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
	for _, n := range []uint32{3, 5, 0x100} {
		if _, err := episodeFromNumber(n); !errors.Is(err, ErrInvalidEpisode) {
			t.Errorf("episodeFromNumber(%d): expected ErrInvalidEpisode, got %v", n, err)
		}
	}
}

func TestParseEpisode(t *testing.T) {
	for _, s := range []string{"Episode1", "1"} {
		if ep, err := ParseEpisode(s); err != nil || ep != Episode1 {
			t.Errorf("ParseEpisode(%q) = %v, %v", s, ep, err)
		}
	}
	if ep, err := ParseEpisode("Episode4"); err != nil || ep != Episode4 {
		t.Errorf("ParseEpisode(Episode4) = %v, %v", ep, err)
	}
	if _, err := ParseEpisode("Episode3"); !errors.Is(err, ErrInvalidEpisode) {
		t.Errorf("expected ErrInvalidEpisode, got %v", err)
	}
}
