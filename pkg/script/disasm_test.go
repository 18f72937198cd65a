package script

import (
	"bytes"
	"strings"
	"testing"
)

func disassembleOK(t *testing.T, data []byte, v Version, opts DisassembleOptions) string {
	t.Helper()
	text, err := Disassemble(data, v, opts)
	if err != nil {
		t.Fatalf("Disassemble failed: %v", err)
	}
	return text
}

func TestDisassembleMetadata(t *testing.T) {
	bin := assembleOK(t, `.version BB_V4
.quest_num 77
.episode Episode2
.max_players 3
.joinable
.name "Meta Quest"
.short_desc "short"
.long_desc "long"
start:
  ret
`)
	text := disassembleOK(t, bin, VersionBBV4, DisassembleOptions{})
	for _, want := range []string{
		".version BB_V4",
		".quest_num 77",
		".episode Episode2",
		".max_players 3",
		".joinable",
		`.name "Meta Quest"`,
		`.short_desc "short"`,
		`.long_desc "long"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, ".language") {
		t.Error("BB output should not contain a .language directive")
	}
}

func TestDisassembleAnnotations(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  leti r1, 0x00000005
  jmp helper
helper:
  ret
`)
	text := disassembleOK(t, bin, VersionDCV1, DisassembleOptions{})
	if !strings.Contains(text, "leti") || !strings.Contains(text, "jmp") {
		t.Fatalf("mnemonics missing:\n%s", text)
	}
	// Human output annotates label references with their offsets and
	// lists back-references under the label.
	if !strings.Contains(text, "label0001 /* 0009 */") {
		t.Errorf("label reference annotation missing:\n%s", text)
	}
	if !strings.Contains(text, "// Referenced by instruction at 0006") {
		t.Errorf("reference comment missing:\n%s", text)
	}
	// Offset and hex columns.
	if !strings.Contains(text, "0000  0901050000") {
		t.Errorf("offset/hex columns missing:\n%s", text)
	}
}

func TestDisassembleRawLanguageByte(t *testing.T) {
	// A header language byte outside the version's range is clamped for
	// text decoding, but the directive carries the byte as written so
	// the file survives a decode/encode pass unchanged.
	bin := assembleOK(t, `.version DC_V1
.quest_num 1
.language 5
.name "lang"
start:
  ret
`)
	if bin[16] != 5 {
		t.Fatalf("header language byte = %d, want 5", bin[16])
	}
	text := disassembleOK(t, bin, VersionDCV1, DisassembleOptions{Reassembly: true})
	if !strings.Contains(text, ".language 5") {
		t.Fatalf("raw language byte not preserved:\n%s", text)
	}
	again, err := Assemble(text, "")
	if err != nil {
		t.Fatalf("reassembly failed: %v", err)
	}
	if !bytes.Equal(bin, again) {
		t.Errorf("round trip not byte-exact: language byte first=%d second=%d", bin[16], again[16])
	}
}

func TestDisassembleHeaderEpisodeFF(t *testing.T) {
	// 0xFF is a valid Episode 1 encoding in the GC header, not an
	// invalid value.
	m := &Metadata{Name: "ff", QuestNumber: 1, Language: 1}
	data, err := appendHeader(nil, VersionGCV3, m, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	data[19] = 0xFF // episode byte
	data = append(data, 0x01, 0x00, 0x00, 0x00) // ret, padded
	data = append(data, 0, 0, 0, 0)             // function table: start
	text := disassembleOK(t, data, VersionGCV3, DisassembleOptions{})
	if !strings.Contains(text, ".episode Episode1") {
		t.Fatalf(".episode Episode1 missing:\n%s", text)
	}
	if strings.Contains(text, "invalid value in header") {
		t.Errorf("0xFF episode byte flagged as invalid:\n%s", text)
	}

	data[19] = 5
	text = disassembleOK(t, data, VersionGCV3, DisassembleOptions{})
	if !strings.Contains(text, ".episode Episode1 /* invalid value in header */") {
		t.Errorf("out-of-range episode byte not flagged:\n%s", text)
	}
}

func TestDisassembleArgStackAnnotation(t *testing.T) {
	bin, err := Assemble(`.version BB_V4
.quest_num 1
.name "args"
start:
  window_msg "hi"
  ret
`, "")
	if err != nil {
		t.Fatal(err)
	}
	text := disassembleOK(t, bin, VersionBBV4, DisassembleOptions{})
	// The stack values are replayed onto the consuming instruction.
	if !strings.Contains(text, `window_msg`) {
		t.Fatalf("window_msg missing:\n%s", text)
	}
	if !strings.Contains(text, `... "hi"`) {
		t.Errorf("replayed stack argument missing:\n%s", text)
	}
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	// Hand-build a DC NTE quest whose code is a byte that decodes to no
	// instruction. 0xFF is unassigned everywhere.
	m := &Metadata{Name: "bad"}
	data, err := appendHeader(nil, VersionDCNTE, m, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	data = append(data, 0xFF, 0x00, 0x00, 0x00) // code
	data = append(data, 0, 0, 0, 0)             // function table: start=0
	text := disassembleOK(t, data, VersionDCNTE, DisassembleOptions{})
	if !strings.Contains(text, ".unknown 00FF") {
		t.Errorf("unknown opcode marker missing:\n%s", text)
	}
}

func TestDisassembleTruncatedInstruction(t *testing.T) {
	// leti needs five argument bytes; give it none.
	m := &Metadata{Name: "cut"}
	data, err := appendHeader(nil, VersionDCNTE, m, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	data = append(data, 0x00, 0x00, 0x00, 0x09) // nops then leti at end
	data = append(data, 0, 0, 0, 0)
	text := disassembleOK(t, data, VersionDCNTE, DisassembleOptions{})
	if !strings.Contains(text, ".failed (end of code section during instruction)") {
		t.Errorf("truncation marker missing:\n%s", text)
	}
}

func TestDisassembleDataLabel(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  ret
blob:
  .data DEADBEEF
`)
	text := disassembleOK(t, bin, VersionDCV1, DisassembleOptions{})
	// Nothing references blob with a typed argument, so it decodes as
	// code with a comment saying so.
	if !strings.Contains(text, "// Could not determine data type; disassembling as code") {
		t.Errorf("untyped label comment missing:\n%s", text)
	}
}

func TestDisassembleInvalidLayout(t *testing.T) {
	m := &Metadata{Name: "layout"}
	data, err := appendHeader(nil, VersionDCNTE, m, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Claimed sizes point past the end of the file.
	if _, err := Disassemble(data, VersionDCNTE, DisassembleOptions{}); err == nil {
		t.Error("expected layout error for truncated file")
	}
}

func TestDisassembleReassemblyMode(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  leti r1, 0x00000005
  ret
`)
	text := disassembleOK(t, bin, VersionDCV1, DisassembleOptions{Reassembly: true})
	if !strings.Contains(text, "start@0x0000:") {
		t.Errorf("reassembly label form missing:\n%s", text)
	}
	if strings.Contains(text, "/*") {
		t.Errorf("reassembly output should carry no comments:\n%s", text)
	}
	if strings.Contains(text, "0000  09") {
		t.Errorf("reassembly output should carry no hex column:\n%s", text)
	}
}

func TestDisassembleEditorNames(t *testing.T) {
	bin := assembleOK(t, `.version DC_V2
.quest_num 1
.name "ed"
start:
  sync_register2 0x00000001, r2
  ret
`)
	text := disassembleOK(t, bin, VersionDCV2, DisassembleOptions{EditorNames: true})
	if !strings.Contains(text, "sync_let") {
		t.Errorf("editor mnemonic missing:\n%s", text)
	}
	text = disassembleOK(t, bin, VersionDCV2, DisassembleOptions{})
	if !strings.Contains(text, "sync_register2") {
		t.Errorf("primary mnemonic missing:\n%s", text)
	}
}
