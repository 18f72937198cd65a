package script

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// A source that uses only opcodes present on every quest-capable
// version, exercising inline arguments, label references, and strings.
const roundTripBody = `.quest_num 12
.name "Round Trip"

start:
  leti r1, 0x0000000A
  call helper
  window_msg "hello world"
  jmp finish

helper:
  nop
  ret

finish:
  ret
`

// TestReassemblyRoundTrip assembles a quest for every version, then
// checks that reassembling the reassembly-mode disassembly reproduces
// the binary byte for byte.
func TestReassemblyRoundTrip(t *testing.T) {
	for _, v := range QuestVersions() {
		t.Run(v.String(), func(t *testing.T) {
			src := fmt.Sprintf(".version %s\n%s", v, roundTripBody)
			first, err := Assemble(src, "")
			if err != nil {
				t.Fatalf("initial assembly failed: %v", err)
			}

			text, err := Disassemble(first, v, DisassembleOptions{Reassembly: true})
			if err != nil {
				t.Fatalf("disassembly failed: %v", err)
			}

			second, err := Assemble(text, "")
			if err != nil {
				t.Fatalf("reassembly failed: %v\nsource:\n%s", err, text)
			}
			if !bytes.Equal(first, second) {
				t.Errorf("round trip differs: first %d bytes, second %d bytes\ndisassembly:\n%s",
					len(first), len(second), text)
			}
		})
	}
}

// TestDataLabelRoundTrip covers labels referenced through typed
// arguments: their blocks come back as .data lines rather than
// instructions. get_npc_data exists from V2 onward.
func TestDataLabelRoundTrip(t *testing.T) {
	blob := strings.Repeat("FF", 0x50)
	for _, v := range []Version{VersionDCV2, VersionPCV2, VersionGCV3, VersionBBV4} {
		t.Run(v.String(), func(t *testing.T) {
			src := fmt.Sprintf(`.version %s
.quest_num 3
.name "npc data"

start:
  get_npc_data npc
  ret

npc:
  .data %s
`, v, blob)
			first, err := Assemble(src, "")
			if err != nil {
				t.Fatalf("initial assembly failed: %v", err)
			}
			text, err := Disassemble(first, v, DisassembleOptions{Reassembly: true})
			if err != nil {
				t.Fatalf("disassembly failed: %v", err)
			}
			if !strings.Contains(text, ".data") {
				t.Fatalf("typed label did not come back as .data:\n%s", text)
			}
			second, err := Assemble(text, "")
			if err != nil {
				t.Fatalf("reassembly failed: %v\nsource:\n%s", err, text)
			}
			if !bytes.Equal(first, second) {
				t.Errorf("round trip differs\ndisassembly:\n%s", text)
			}
		})
	}
}

// Quests assembled for arg-stack versions replay their pushes when
// reassembled, so the explicit-push form and the synthesized form
// produce the same bytes.
func TestExplicitPushesEquivalence(t *testing.T) {
	synth := `.version BB_V4
.quest_num 1
.name "pushes"
start:
  window_msg "hi"
  ret
`
	explicit := `.version BB_V4
.quest_num 1
.name "pushes"
start:
  arg_pushs "hi"
  window_msg ...
  ret
`
	a, err := Assemble(synth, "")
	if err != nil {
		t.Fatalf("synthesized assembly failed: %v", err)
	}
	b, err := Assemble(explicit, "")
	if err != nil {
		t.Fatalf("explicit assembly failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("synthesized and explicit push forms differ:\n%X\n%X", a, b)
	}
}
