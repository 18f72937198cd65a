package script

import (
	"encoding/binary"
	"fmt"
)

// Fixed header sizes. The GC layout is shared by Xbox; the PC and BB
// layouts store their text fields as UTF-16LE.
const (
	headerSizeDCNTE = 0x30
	headerSizeDC    = 0x1D4
	headerSizePC    = 0x394
	headerSizeGC    = 0x1D4
	headerSizeBB    = 0x398

	nameChars      = 0x20
	shortDescChars = 0x80
	longDescChars  = 0x120
)

func headerSize(v Version) int {
	switch v {
	case VersionDCNTE:
		return headerSizeDCNTE
	case VersionDCProto, VersionDCV1, VersionDCV2:
		return headerSizeDC
	case VersionPCNTE, VersionPCV2:
		return headerSizePC
	case VersionGCNTE, VersionGCV3, VersionGCEp3NTE, VersionGCEp3, VersionXBV3:
		return headerSizeGC
	case VersionBBV4:
		return headerSizeBB
	}
	return 0
}

// Metadata is the decoded form of a quest header, minus the offsets
// that only make sense for an encoded file. It is what the metadata
// directives of the assembly dialect describe.
type Metadata struct {
	Name        string
	ShortDesc   string
	LongDesc    string
	QuestNumber uint16
	Language    uint8
	Episode     Episode
	MaxPlayers  uint8
	Joinable    bool
}

// Header is a decoded quest header.
type Header struct {
	Metadata
	CodeOffset          uint32
	FunctionTableOffset uint32
	Size                uint32

	// RawEpisode and RawLanguage keep the encoded bytes as-is; Episode
	// and Language hold the normalized values used for decoding. The
	// listing emits the raw bytes so reassembly reproduces them.
	RawEpisode    uint8
	RawLanguage   uint8
	HasEpisode    bool // GC/XB/BB store an episode, earlier versions do not
	HasLanguage   bool
	HasQuestMeta  bool // DC NTE has only a name
	HasPlayerMeta bool // BB stores max_players and joinable
}

// ReadHeader decodes the version-specific header at the start of data.
// overrideLanguage selects the text decode language when >= 0,
// overriding the header's own language byte.
func ReadHeader(data []byte, v Version, overrideLanguage int) (*Header, error) {
	if !v.SupportsQuests() {
		return nil, fmt.Errorf("%w: %s", ErrVersionNoQuests, v)
	}
	size := headerSize(v)
	if len(data) < size {
		return nil, fmt.Errorf("%w: %s header is 0x%X bytes, got 0x%X", ErrHeaderTooSmall, v, size, len(data))
	}
	r := newByteReader(data[:size])

	h := &Header{}
	h.CodeOffset = r.U32()
	h.FunctionTableOffset = r.U32()
	h.Size = r.U32()
	r.U32() // unused

	clampLanguage := func(raw uint8, limit uint8) uint8 {
		if overrideLanguage >= 0 {
			return uint8(overrideLanguage)
		}
		if raw < limit {
			return raw
		}
		return 1
	}

	switch v {
	case VersionDCNTE:
		h.Name = decodeNarrow(r.Bytes(nameChars), 0)

	case VersionDCProto, VersionDCV1, VersionDCV2:
		h.RawLanguage = r.U8()
		r.U8() // unknown
		h.QuestNumber = r.U16()
		h.Language = clampLanguage(h.RawLanguage, 5)
		h.HasLanguage = true
		h.HasQuestMeta = true
		h.Name = decodeNarrow(r.Bytes(nameChars), h.Language)
		h.ShortDesc = decodeNarrow(r.Bytes(shortDescChars), h.Language)
		h.LongDesc = decodeNarrow(r.Bytes(longDescChars), h.Language)

	case VersionPCNTE, VersionPCV2:
		h.RawLanguage = r.U8()
		r.U8() // unknown
		h.QuestNumber = r.U16()
		h.Language = clampLanguage(h.RawLanguage, 8)
		h.HasLanguage = true
		h.HasQuestMeta = true
		h.Name = decodeWide(r.Bytes(nameChars * 2))
		h.ShortDesc = decodeWide(r.Bytes(shortDescChars * 2))
		h.LongDesc = decodeWide(r.Bytes(longDescChars * 2))

	case VersionGCNTE, VersionGCV3, VersionGCEp3NTE, VersionGCEp3, VersionXBV3:
		h.RawLanguage = r.U8()
		r.U8() // unknown
		h.QuestNumber = uint16(r.U8())
		h.RawEpisode = r.U8()
		h.Episode = headerEpisode(h.RawEpisode)
		h.HasEpisode = true
		h.Language = clampLanguage(h.RawLanguage, 5)
		h.HasLanguage = true
		h.HasQuestMeta = true
		h.Name = decodeNarrow(r.Bytes(nameChars), h.Language)
		h.ShortDesc = decodeNarrow(r.Bytes(shortDescChars), h.Language)
		h.LongDesc = decodeNarrow(r.Bytes(longDescChars), h.Language)

	case VersionBBV4:
		h.QuestNumber = r.U16()
		r.U16() // unused
		h.RawEpisode = r.U8()
		h.Episode = headerEpisode(h.RawEpisode)
		h.HasEpisode = true
		h.MaxPlayers = r.U8()
		h.Joinable = r.U8() != 0
		r.U8() // unknown
		h.HasQuestMeta = true
		h.HasPlayerMeta = true
		h.Language = 1
		if overrideLanguage >= 0 {
			h.Language = uint8(overrideLanguage)
		}
		h.Name = decodeWide(r.Bytes(nameChars * 2))
		h.ShortDesc = decodeWide(r.Bytes(shortDescChars * 2))
		h.LongDesc = decodeWide(r.Bytes(longDescChars * 2))
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderTooSmall, err)
	}
	return h, nil
}

// appendHeader encodes the version-specific header for a quest with
// the given code section size and function table entry count.
func appendHeader(out []byte, v Version, m *Metadata, codeSize, tableEntries int) ([]byte, error) {
	size := headerSize(v)
	functionTableOffset := uint32(size + codeSize)
	totalSize := functionTableOffset + uint32(tableEntries*4)

	var u32 [4]byte
	put32 := func(x uint32) {
		binary.LittleEndian.PutUint32(u32[:], x)
		out = append(out, u32[:]...)
	}
	put32(uint32(size))
	put32(functionTableOffset)
	put32(totalSize)
	put32(0) // unused

	narrowText := func(s string, chars int) error {
		b, err := encodeNarrow(s, m.Language, chars)
		if err != nil {
			return err
		}
		out = append(out, b...)
		return nil
	}
	wideText := func(s string, chars int) error {
		b, err := encodeWide(s, chars*2)
		if err != nil {
			return err
		}
		out = append(out, b...)
		return nil
	}
	allNarrow := func() error {
		if err := narrowText(m.Name, nameChars); err != nil {
			return err
		}
		if err := narrowText(m.ShortDesc, shortDescChars); err != nil {
			return err
		}
		return narrowText(m.LongDesc, longDescChars)
	}
	allWide := func() error {
		if err := wideText(m.Name, nameChars); err != nil {
			return err
		}
		if err := wideText(m.ShortDesc, shortDescChars); err != nil {
			return err
		}
		return wideText(m.LongDesc, longDescChars)
	}

	switch v {
	case VersionDCNTE:
		if err := narrowText(m.Name, nameChars); err != nil {
			return nil, err
		}

	case VersionDCProto, VersionDCV1, VersionDCV2:
		out = append(out, m.Language, 0)
		binary.LittleEndian.PutUint16(u32[:2], m.QuestNumber)
		out = append(out, u32[:2]...)
		if err := allNarrow(); err != nil {
			return nil, err
		}

	case VersionPCNTE, VersionPCV2:
		out = append(out, m.Language, 0)
		binary.LittleEndian.PutUint16(u32[:2], m.QuestNumber)
		out = append(out, u32[:2]...)
		if err := allWide(); err != nil {
			return nil, err
		}

	case VersionGCNTE, VersionGCV3, VersionGCEp3NTE, VersionGCEp3, VersionXBV3:
		epByte := uint8(0)
		if m.Episode == Episode2 {
			epByte = 1
		}
		out = append(out, m.Language, 0, uint8(m.QuestNumber), epByte)
		if err := allNarrow(); err != nil {
			return nil, err
		}

	case VersionBBV4:
		binary.LittleEndian.PutUint16(u32[:2], m.QuestNumber)
		out = append(out, u32[:2]...)
		out = append(out, 0, 0)
		epByte := uint8(0)
		switch m.Episode {
		case Episode2:
			epByte = 1
		case Episode4:
			epByte = 2
		}
		joinable := uint8(0)
		if m.Joinable {
			joinable = 1
		}
		out = append(out, epByte, m.MaxPlayers, joinable, 0)
		if err := allWide(); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrVersionNoQuests, v)
	}
	return out, nil
}
