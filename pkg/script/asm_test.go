package script

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dcHeaderLines = `.version DC_V1
.quest_num 1
.name "test"
`

func assembleOK(t *testing.T, text string) []byte {
	t.Helper()
	bin, err := Assemble(text, "")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return bin
}

// codeAndTable splits an assembled binary into its code section and
// function table entries.
func codeAndTable(t *testing.T, data []byte, v Version) ([]byte, []uint32) {
	t.Helper()
	h, err := ReadHeader(data, v, -1)
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	code := data[h.CodeOffset:h.FunctionTableOffset]
	raw := data[h.FunctionTableOffset:]
	table := make([]uint32, 0, len(raw)/4)
	for i := 0; i+4 <= len(raw); i += 4 {
		table = append(table, binary.LittleEndian.Uint32(raw[i:]))
	}
	return code, table
}

func TestAssembleInlineInstructions(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  leti r1, 0x00000005
  ret
`)
	code, table := codeAndTable(t, bin, VersionDCV1)
	want := []byte{0x09, 0x01, 0x05, 0x00, 0x00, 0x00, 0x01, 0x00}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %X, want %X", code, want)
	}
	if len(table) != 1 || table[0] != 0 {
		t.Errorf("function table = %v, want [0]", table)
	}
}

func TestAssembleLabelReference(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  jmp helper
helper:
  ret
`)
	code, table := codeAndTable(t, bin, VersionDCV1)
	// jmp takes a function table index, not an offset.
	want := []byte{0x28, 0x01, 0x00, 0x01}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %X, want %X", code, want)
	}
	if len(table) != 2 || table[0] != 0 || table[1] != 3 {
		t.Errorf("function table = %v, want [0 3]", table)
	}
}

func TestAssembleExplicitLabelIndex(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  ret
sparse@5:
  ret
`)
	_, table := codeAndTable(t, bin, VersionDCV1)
	if len(table) != 6 {
		t.Fatalf("function table length = %d, want 6", len(table))
	}
	for z := 1; z <= 4; z++ {
		if table[z] != 0xFFFFFFFF {
			t.Errorf("table[%d] = %08X, want FFFFFFFF", z, table[z])
		}
	}
	if table[5] != 1 {
		t.Errorf("table[5] = %d, want 1", table[5])
	}
}

func TestAssembleArgStackSynthesis(t *testing.T) {
	bin, err := Assemble(`.version BB_V4
.quest_num 1
.name "args"
start:
  window_msg "hi"
  ret
`, "")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	code, _ := codeAndTable(t, bin, VersionBBV4)
	// arg_pushs + UTF-16LE string, then the opcode, then ret and pad.
	want := []byte{0x4E, 'h', 0x00, 'i', 0x00, 0x00, 0x00, 0x5A, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %X, want %X", code, want)
	}
}

func TestAssembleArgStackIntWidths(t *testing.T) {
	// Explicit arg_push instructions encode their operands inline.
	bin, err := Assemble(`.version BB_V4
.quest_num 1
.name "ints"
start:
  arg_pushb 0x12
  arg_pushw 0x1234
  arg_pushl 0x12345678
  ret
`, "")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	code, _ := codeAndTable(t, bin, VersionBBV4)
	want := []byte{
		0x4A, 0x12,
		0x4B, 0x34, 0x12,
		0x49, 0x78, 0x56, 0x34, 0x12,
		0x01, 0x00,
	}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %X, want %X", code, want)
	}
}

func TestAssembleExtendedOpcode(t *testing.T) {
	bin, err := Assemble(`.version BB_V4
.quest_num 1
.name "ext"
start:
  set_episode 0x00000001
  ret
`, "")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	code, _ := codeAndTable(t, bin, VersionBBV4)
	// Extended opcodes encode big-endian.
	want := []byte{0xF8, 0xBC, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %X, want %X", code, want)
	}
}

func TestAssembleNamedRegisters(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  leti r:counter, 0x00000000
  leti r:limit@9, 0x00000063
  ret
`)
	code, _ := codeAndTable(t, bin, VersionDCV1)
	// counter gets the lowest free number (0); limit is pinned to 9.
	want := []byte{
		0x09, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x09, 0x09, 0x63, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %X, want %X", code, want)
	}
}

func TestAssembleDataDirectives(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  ret
blob:
  .data DEADBEEF"ok"
  .zero 2
  .align 4
`)
	code, table := codeAndTable(t, bin, VersionDCV1)
	if len(table) != 2 {
		t.Fatalf("function table length = %d, want 2", len(table))
	}
	blob := code[table[1]:]
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF, 'o', 'k', 0x00, 0x00}
	if !bytes.Equal(blob[:len(want)], want) {
		t.Errorf("blob = %X, want prefix %X", blob, want)
	}
}

func TestAssembleIncludeBin(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{1, 2, 3, 4}, 0644); err != nil {
		t.Fatal(err)
	}
	bin, err := Assemble(dcHeaderLines+`
start:
  ret
payload:
  .include_bin blob.bin
`, dir)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	code, table := codeAndTable(t, bin, VersionDCV1)
	blob := code[table[1]:]
	if !bytes.Equal(blob[:4], []byte{1, 2, 3, 4}) {
		t.Errorf("included blob = %X, want 01020304", blob[:4])
	}
}

type fakeNative struct {
	gotArch Arch
	out     []byte
}

func (f *fakeNative) Assemble(source string, arch Arch) ([]byte, error) {
	f.gotArch = arch
	return f.out, nil
}

func TestAssembleIncludeNative(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "patch.s"), []byte("nop\n"), 0644); err != nil {
		t.Fatal(err)
	}
	src := dcHeaderLines + `
start:
  ret
native:
  .include_native patch.s
`

	// Without a collaborator the directive is a hard error.
	a := Assembler{IncludeDir: dir}
	if _, err := a.Assemble(src); !errors.Is(err, ErrNativeUnavailable) {
		t.Errorf("expected ErrNativeUnavailable, got %v", err)
	}

	native := &fakeNative{out: []byte{0xAA, 0xBB}}
	a.Native = native
	bin, err := a.Assemble(src)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if native.gotArch != ArchSH4 {
		t.Errorf("native arch = %v, want sh4 for a DC target", native.gotArch)
	}
	code, table := codeAndTable(t, bin, VersionDCV1)
	blob := code[table[1]:]
	if !bytes.Equal(blob[:2], []byte{0xAA, 0xBB}) {
		t.Errorf("native blob = %X, want AABB", blob[:2])
	}
}

func TestAssembleMissingDirectives(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"version", ".quest_num 1\n.name \"x\"\nstart:\n  ret\n"},
		{"quest_num", ".version DC_V1\n.name \"x\"\nstart:\n  ret\n"},
		{"name", ".version DC_V1\n.quest_num 1\nstart:\n  ret\n"},
	}
	for _, tt := range tests {
		if _, err := Assemble(tt.src, ""); !errors.Is(err, ErrMissingDirective) {
			t.Errorf("%s: expected ErrMissingDirective, got %v", tt.name, err)
		}
	}
}

func TestAssembleMissingStart(t *testing.T) {
	src := dcHeaderLines + "other:\n  ret\n"
	if _, err := Assemble(src, ""); !errors.Is(err, ErrUndefinedLabel) {
		t.Errorf("expected ErrUndefinedLabel, got %v", err)
	}
}

func TestAssembleDuplicateLabels(t *testing.T) {
	src := dcHeaderLines + "start:\n  ret\nstart:\n  ret\n"
	if _, err := Assemble(src, ""); !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("expected ErrDuplicateLabel, got %v", err)
	}

	src = dcHeaderLines + "start:\n  ret\na@3:\n  ret\nb@3:\n  ret\n"
	if _, err := Assemble(src, ""); !errors.Is(err, ErrDuplicateIndex) {
		t.Errorf("expected ErrDuplicateIndex, got %v", err)
	}
}

func TestAssembleErrorsHaveLineNumbers(t *testing.T) {
	src := dcHeaderLines + "start:\n  frobnicate r1\n  ret\n"
	_, err := Assemble(src, "")
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("expected ErrUnknownOpcode, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 5") {
		t.Errorf("error %q should name line 5", err)
	}
}

func TestAssembleArgumentCount(t *testing.T) {
	src := dcHeaderLines + "start:\n  leti r1\n  ret\n"
	if _, err := Assemble(src, ""); !errors.Is(err, ErrArgumentCount) {
		t.Errorf("expected ErrArgumentCount, got %v", err)
	}

	src = dcHeaderLines + "start:\n  ret 0x05\n"
	if _, err := Assemble(src, ""); !errors.Is(err, ErrArgumentCount) {
		t.Errorf("expected ErrArgumentCount for argument to ret, got %v", err)
	}
}

func TestAssembleUnknownOpcodeForVersion(t *testing.T) {
	// set_episode does not exist before V3.
	src := dcHeaderLines + "start:\n  set_episode 0x00000001\n  ret\n"
	if _, err := Assemble(src, ""); !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("expected ErrUnknownOpcode, got %v", err)
	}
}

func TestAssembleUnterminatedComment(t *testing.T) {
	src := dcHeaderLines + "start:\n  ret /* no end\n"
	if _, err := Assemble(src, ""); err == nil {
		t.Error("expected error for unterminated block comment")
	}
}

func TestAssembleComments(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+`
start:
  leti r1, 0x00000005 // trailing comment
  /* whole line */ ret
`)
	code, _ := codeAndTable(t, bin, VersionDCV1)
	want := []byte{0x09, 0x01, 0x05, 0x00, 0x00, 0x00, 0x01, 0x00}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %X, want %X", code, want)
	}
}

func TestAssembleCodePadding(t *testing.T) {
	bin := assembleOK(t, dcHeaderLines+"start:\n  ret\n")
	h, err := ReadHeader(bin, VersionDCV1, -1)
	if err != nil {
		t.Fatal(err)
	}
	codeSize := int(h.FunctionTableOffset) - int(h.CodeOffset)
	if codeSize%4 != 0 {
		t.Errorf("code section size %d is not 4-byte aligned", codeSize)
	}
}
