package script

import (
	"errors"
	"testing"
)

func headerRoundTrip(t *testing.T, v Version, m *Metadata) *Header {
	t.Helper()
	data, err := appendHeader(nil, v, m, 8, 2)
	if err != nil {
		t.Fatalf("appendHeader(%s) failed: %v", v, err)
	}
	if len(data) != headerSize(v) {
		t.Fatalf("%s header size = 0x%X, want 0x%X", v, len(data), headerSize(v))
	}
	// ReadHeader only touches the header, so the code section and
	// function table need not be present.
	h, err := ReadHeader(data, v, -1)
	if err != nil {
		t.Fatalf("ReadHeader(%s) failed: %v", v, err)
	}
	if int(h.CodeOffset) != headerSize(v) {
		t.Errorf("%s code offset = 0x%X, want 0x%X", v, h.CodeOffset, headerSize(v))
	}
	if int(h.FunctionTableOffset) != headerSize(v)+8 {
		t.Errorf("%s function table offset = 0x%X, want 0x%X", v, h.FunctionTableOffset, headerSize(v)+8)
	}
	if int(h.Size) != headerSize(v)+8+2*4 {
		t.Errorf("%s total size = 0x%X, want 0x%X", v, h.Size, headerSize(v)+8+2*4)
	}
	if h.Name != m.Name {
		t.Errorf("%s name = %q, want %q", v, h.Name, m.Name)
	}
	return h
}

func TestHeaderRoundTripDCNTE(t *testing.T) {
	h := headerRoundTrip(t, VersionDCNTE, &Metadata{Name: "PROTO QUEST"})
	if h.HasQuestMeta || h.HasEpisode || h.HasLanguage {
		t.Error("DC NTE header should carry only a name")
	}
}

func TestHeaderRoundTripDC(t *testing.T) {
	m := &Metadata{
		Name:        "Quest of Testing",
		ShortDesc:   "A short description",
		LongDesc:    "A considerably longer description of the quest.",
		QuestNumber: 42,
		Language:    1,
	}
	h := headerRoundTrip(t, VersionDCV1, m)
	if h.QuestNumber != 42 {
		t.Errorf("quest number = %d, want 42", h.QuestNumber)
	}
	if h.Language != 1 {
		t.Errorf("language = %d, want 1", h.Language)
	}
	if h.ShortDesc != m.ShortDesc || h.LongDesc != m.LongDesc {
		t.Errorf("descriptions did not survive: %q / %q", h.ShortDesc, h.LongDesc)
	}
	if h.HasEpisode {
		t.Error("DC header has no episode field")
	}
}

func TestHeaderRoundTripPCWide(t *testing.T) {
	m := &Metadata{Name: "Wide Quest", QuestNumber: 7, Language: 1}
	h := headerRoundTrip(t, VersionPCV2, m)
	if h.QuestNumber != 7 {
		t.Errorf("quest number = %d, want 7", h.QuestNumber)
	}
}

func TestHeaderRoundTripGC(t *testing.T) {
	m := &Metadata{Name: "GC Quest", QuestNumber: 9, Language: 1, Episode: Episode2}
	h := headerRoundTrip(t, VersionGCV3, m)
	if !h.HasEpisode {
		t.Fatal("GC header stores an episode")
	}
	if h.RawEpisode != 1 || h.Episode != Episode2 {
		t.Errorf("episode = raw %d (%v), want raw 1 (Episode2)", h.RawEpisode, h.Episode)
	}
}

func TestHeaderRoundTripBB(t *testing.T) {
	m := &Metadata{
		Name:        "BB Quest",
		QuestNumber: 301,
		Language:    1,
		Episode:     Episode4,
		MaxPlayers:  3,
		Joinable:    true,
	}
	h := headerRoundTrip(t, VersionBBV4, m)
	if h.RawEpisode != 2 || h.Episode != Episode4 {
		t.Errorf("episode = raw %d (%v), want raw 2 (Episode4)", h.RawEpisode, h.Episode)
	}
	if h.MaxPlayers != 3 {
		t.Errorf("max players = %d, want 3", h.MaxPlayers)
	}
	if !h.Joinable {
		t.Error("joinable flag lost")
	}
	if !h.HasPlayerMeta {
		t.Error("BB header stores player metadata")
	}
}

func TestReadHeaderTooSmall(t *testing.T) {
	if _, err := ReadHeader(make([]byte, 0x10), VersionBBV4, -1); !errors.Is(err, ErrHeaderTooSmall) {
		t.Errorf("expected ErrHeaderTooSmall, got %v", err)
	}
}

func TestReadHeaderPatchVersion(t *testing.T) {
	if _, err := ReadHeader(make([]byte, 0x400), VersionPCPatch, -1); !errors.Is(err, ErrVersionNoQuests) {
		t.Errorf("expected ErrVersionNoQuests, got %v", err)
	}
}

func TestReadHeaderLanguageClamp(t *testing.T) {
	m := &Metadata{Name: "Lang", QuestNumber: 1, Language: 7}
	data, err := appendHeader(nil, VersionDCV2, m, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	// DC only has languages 0-4; out-of-range values fall back to 1.
	h, err := ReadHeader(data, VersionDCV2, -1)
	if err != nil {
		t.Fatal(err)
	}
	if h.Language != 1 {
		t.Errorf("clamped language = %d, want 1", h.Language)
	}
	// An explicit override wins over the stored value.
	h, err = ReadHeader(data, VersionDCV2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if h.Language != 3 {
		t.Errorf("override language = %d, want 3", h.Language)
	}
}
