// Package script assembles and disassembles quest script binaries for
// every client version of the game, from the Dreamcast prototypes
// through Blue Burst. The binary format is a fixed header followed by a
// bytecode section and a function table; the text format is the
// assembly dialect understood by Assemble and produced by Disassemble.
package script

import "fmt"

// Version identifies a client version. The two patch-server versions
// exist only so that version numbers line up with the rest of the
// protocol; they cannot carry quests.
type Version uint8

const (
	VersionPCPatch Version = iota
	VersionBBPatch
	VersionDCNTE
	VersionDCProto // the 11/2000 prototype
	VersionDCV1
	VersionDCV2
	VersionPCNTE
	VersionPCV2
	VersionGCNTE
	VersionGCV3
	VersionGCEp3NTE
	VersionGCEp3
	VersionXBV3
	VersionBBV4

	numVersions
)

var versionNames = [numVersions]string{
	"PC_PATCH",
	"BB_PATCH",
	"DC_NTE",
	"DC_V1_11_2000_PROTOTYPE",
	"DC_V1",
	"DC_V2",
	"PC_NTE",
	"PC_V2",
	"GC_NTE",
	"GC_V3",
	"GC_EP3_NTE",
	"GC_EP3",
	"XB_V3",
	"BB_V4",
}

func (v Version) String() string {
	if v < numVersions {
		return versionNames[v]
	}
	return fmt.Sprintf("Version(%d)", uint8(v))
}

// ParseVersion parses a version name as it appears in a .version
// directive.
func ParseVersion(s string) (Version, error) {
	for i, name := range versionNames {
		if s == name {
			return Version(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
}

// flag returns the version's bit in a packed applicability mask.
func (v Version) flag() uint16 {
	return 1 << uint16(v)
}

// SupportsQuests reports whether the version can carry quest scripts at
// all. The patch-server pseudo-versions cannot.
func (v Version) SupportsQuests() bool {
	return v != VersionPCPatch && v != VersionBBPatch
}

// QuestVersions lists every version that can carry quest scripts.
func QuestVersions() []Version {
	out := make([]Version, 0, numVersions-2)
	for v := VersionDCNTE; v < numVersions; v++ {
		out = append(out, v)
	}
	return out
}

// usesWideText reports whether header strings and script C strings are
// UTF-16LE rather than a single-byte encoding.
func (v Version) usesWideText() bool {
	return v == VersionPCNTE || v == VersionPCV2 || v == VersionBBV4
}

// usesArgStack reports whether the version passes arguments to flagged
// opcodes through the argument stack.
func (v Version) usesArgStack() bool {
	return v.flag()&fV3V4 != 0
}

// Arch is the native CPU architecture of a client version, used when
// assembling .include_native blocks.
type Arch uint8

const (
	ArchSH4 Arch = iota // Dreamcast
	ArchPowerPC         // GameCube
	ArchX86             // PC, Xbox, Blue Burst
)

func (a Arch) String() string {
	switch a {
	case ArchSH4:
		return "sh4"
	case ArchPowerPC:
		return "ppc"
	case ArchX86:
		return "x86"
	}
	return fmt.Sprintf("Arch(%d)", uint8(a))
}

// NativeArch returns the CPU architecture the version's client runs on.
func (v Version) NativeArch() Arch {
	switch v {
	case VersionDCNTE, VersionDCProto, VersionDCV1, VersionDCV2:
		return ArchSH4
	case VersionGCNTE, VersionGCV3, VersionGCEp3NTE, VersionGCEp3:
		return ArchPowerPC
	default:
		return ArchX86
	}
}

// Episode identifies which game episode a quest belongs to.
type Episode uint8

const (
	Episode1 Episode = iota
	Episode2
	Episode4
)

func (e Episode) String() string {
	switch e {
	case Episode1:
		return "Episode1"
	case Episode2:
		return "Episode2"
	case Episode4:
		return "Episode4"
	}
	return fmt.Sprintf("Episode(%d)", uint8(e))
}

// ParseEpisode parses an .episode directive value.
func ParseEpisode(s string) (Episode, error) {
	switch s {
	case "Episode1", "1":
		return Episode1, nil
	case "Episode2", "2":
		return Episode2, nil
	case "Episode4", "4":
		return Episode4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEpisode, s)
}

// episodeFromNumber maps the raw episode number used by set_episode and
// the GC/BB header fields. 0 and 0xFF both mean Episode 1; anything
// else outside {1, 2} is invalid.
func episodeFromNumber(n uint32) (Episode, error) {
	switch n {
	case 0, 0xFF:
		return Episode1, nil
	case 1:
		return Episode2, nil
	case 2:
		return Episode4, nil
	}
	return Episode1, fmt.Errorf("%w: %d", ErrInvalidEpisode, n)
}

// headerEpisode decodes a header episode byte, tolerating invalid
// values: the header is advisory and a bad byte reads as Episode 1.
func headerEpisode(raw uint8) Episode {
	e, err := episodeFromNumber(uint32(raw))
	if err != nil {
		return Episode1
	}
	return e
}
