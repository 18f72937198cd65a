package script

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// NativeAssembler assembles native machine code for .include_native
// blocks. The script assembler itself never interprets native source;
// a collaborator provides this when needed.
type NativeAssembler interface {
	Assemble(source string, arch Arch) ([]byte, error)
}

// Assembler encodes assembly text into a quest script binary. The
// zero value works for sources that use no include directives.
type Assembler struct {
	// IncludeDir is the directory .include_bin and .include_native
	// filenames are resolved against.
	IncludeDir string

	// Native handles .include_native blocks. Leaving it nil makes
	// .include_native a hard error.
	Native NativeAssembler

	// Catalog overrides the default opcode catalog.
	Catalog *Catalog
}

// Assemble is shorthand for assembling with default options.
func Assemble(text, includeDir string) ([]byte, error) {
	a := Assembler{IncludeDir: includeDir}
	return a.Assemble(text)
}

// alabel is one label declaration in assembly source.
type alabel struct {
	name   string
	index  int // -1 until assigned
	offset int // -1 until the label line is reached during emission
}

// Assemble encodes the full source text: metadata directives, labels,
// instructions, and data directives, producing header + code section +
// function table. Unlike disassembly, any error is fatal and carries
// the 1-based source line number.
func (a *Assembler) Assemble(text string) ([]byte, error) {
	cat := a.Catalog
	if cat == nil {
		cat = Default()
	}

	lines, err := stripComments(strings.Split(text, "\n"))
	if err != nil {
		return nil, err
	}

	meta, version, err := collectMetadata(lines)
	if err != nil {
		return nil, err
	}

	labelsByName, labelsByIndex, err := collectLabels(lines)
	if err != nil {
		return nil, err
	}
	assignLabelIndexes(labelsByName, labelsByIndex)

	regs := newRegisterAllocator()
	code, err := a.emitCode(lines, cat, version, meta, labelsByName, regs)
	if err != nil {
		return nil, err
	}
	for len(code)%4 != 0 {
		code = append(code, 0)
	}

	if err := regs.assignAll(); err != nil {
		return nil, err
	}
	regs.patch(code)

	table, err := buildFunctionTable(labelsByIndex)
	if err != nil {
		return nil, err
	}

	out, err := appendHeader(nil, version, meta, len(code), len(table))
	if err != nil {
		return nil, err
	}
	out = append(out, code...)
	var u32 [4]byte
	for _, entry := range table {
		binary.LittleEndian.PutUint32(u32[:], entry)
		out = append(out, u32[:]...)
	}
	return out, nil
}

// stripComments removes /* */ and // comments and trims whitespace,
// preserving line positions for error reporting. Block comments must
// close on the line they open on.
func stripComments(lines []string) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		for {
			start := strings.Index(line, "/*")
			if start < 0 {
				break
			}
			end := strings.Index(line[start+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("line %d: %w: unterminated inline comment", i+1, ErrInvalidDirective)
			}
			line = line[:start] + line[start+2+end+2:]
		}
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		out[i] = strings.TrimSpace(line)
	}
	return out, nil
}

func collectMetadata(lines []string) (*Metadata, Version, error) {
	m := &Metadata{Language: 1, Episode: Episode1, MaxPlayers: 4}
	version := Version(0)
	haveVersion := false
	questNum := -1

	for i, line := range lines {
		if line == "" || line[0] != '.' {
			continue
		}
		lineNum := i + 1
		fail := func(err error) (*Metadata, Version, error) {
			return nil, 0, fmt.Errorf("line %d: %w", lineNum, err)
		}
		switch {
		case strings.HasPrefix(line, ".version "):
			v, err := ParseVersion(strings.TrimSpace(line[9:]))
			if err != nil {
				return fail(err)
			}
			version = v
			haveVersion = true
		case strings.HasPrefix(line, ".name "):
			raw, err := parseDataString(line[6:])
			if err != nil {
				return fail(err)
			}
			m.Name = string(raw)
		case strings.HasPrefix(line, ".short_desc "):
			raw, err := parseDataString(line[12:])
			if err != nil {
				return fail(err)
			}
			m.ShortDesc = string(raw)
		case strings.HasPrefix(line, ".long_desc "):
			raw, err := parseDataString(line[11:])
			if err != nil {
				return fail(err)
			}
			m.LongDesc = string(raw)
		case strings.HasPrefix(line, ".quest_num "):
			n, err := strconv.ParseUint(strings.TrimSpace(line[11:]), 0, 16)
			if err != nil {
				return fail(fmt.Errorf("%w: bad .quest_num value", ErrInvalidDirective))
			}
			m.QuestNumber = uint16(n)
			questNum = int(n)
		case strings.HasPrefix(line, ".language "):
			n, err := strconv.ParseUint(strings.TrimSpace(line[10:]), 0, 8)
			if err != nil {
				return fail(fmt.Errorf("%w: bad .language value", ErrInvalidDirective))
			}
			m.Language = uint8(n)
		case strings.HasPrefix(line, ".episode "):
			ep, err := ParseEpisode(strings.TrimSpace(line[9:]))
			if err != nil {
				return fail(err)
			}
			m.Episode = ep
		case strings.HasPrefix(line, ".max_players "):
			n, err := strconv.ParseUint(strings.TrimSpace(line[13:]), 0, 8)
			if err != nil {
				return fail(fmt.Errorf("%w: bad .max_players value", ErrInvalidDirective))
			}
			m.MaxPlayers = uint8(n)
		case line == ".joinable" || strings.HasPrefix(line, ".joinable "):
			m.Joinable = true
		}
	}

	if !haveVersion || !version.SupportsQuests() {
		return nil, 0, fmt.Errorf("%w: .version", ErrMissingDirective)
	}
	if questNum < 0 && version != VersionDCNTE {
		return nil, 0, fmt.Errorf("%w: .quest_num", ErrMissingDirective)
	}
	if m.Name == "" {
		return nil, 0, fmt.Errorf("%w: .name", ErrMissingDirective)
	}
	return m, version, nil
}

// collectLabels finds every line ending in a colon. A label may carry
// an explicit function table index as name@N; start is always index 0.
func collectLabels(lines []string) (map[string]*alabel, map[int]*alabel, error) {
	byName := make(map[string]*alabel)
	byIndex := make(map[int]*alabel)
	for i, line := range lines {
		if !strings.HasSuffix(line, ":") {
			continue
		}
		lineNum := i + 1
		l := &alabel{name: line[:len(line)-1], index: -1, offset: -1}
		if at := strings.IndexByte(l.name, '@'); at >= 0 {
			idx, err := strconv.ParseUint(l.name[at+1:], 0, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w: invalid index in label", lineNum, ErrInvalidArgument)
			}
			l.index = int(idx)
			l.name = l.name[:at]
			if l.name == "start" && l.index != 0 {
				return nil, nil, fmt.Errorf("line %d: %w: start label cannot have a nonzero label ID", lineNum, ErrInvalidArgument)
			}
		} else if l.name == "start" {
			l.index = 0
		}
		if _, dup := byName[l.name]; dup {
			return nil, nil, fmt.Errorf("line %d: %w: %s", lineNum, ErrDuplicateLabel, l.name)
		}
		byName[l.name] = l
		if l.index >= 0 {
			if other, dup := byIndex[l.index]; dup {
				return nil, nil, fmt.Errorf("line %d: %w: %d (0x%X) from %s and %s",
					lineNum, ErrDuplicateIndex, l.index, l.index, l.name, other.name)
			}
			byIndex[l.index] = l
		}
	}
	if _, ok := byName["start"]; !ok {
		return nil, nil, fmt.Errorf("%w: start label is not defined", ErrUndefinedLabel)
	}
	return byName, byIndex, nil
}

// assignLabelIndexes gives unindexed labels the lowest unused indexes
// in ascending name order.
func assignLabelIndexes(byName map[string]*alabel, byIndex map[int]*alabel) {
	names := make([]string, 0, len(byName))
	for name, l := range byName {
		if l.index < 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	next := 0
	for _, name := range names {
		for byIndex[next] != nil {
			next++
		}
		l := byName[name]
		l.index = next
		byIndex[next] = l
		next++
	}
}

// parseReg parses rN, fN, r:name, and r:name@N forms.
func parseReg(regs *registerAllocator, arg string, allowUnnumbered bool) (regRef, error) {
	if len(arg) < 2 {
		return noReg, fmt.Errorf("%w: register argument is too short", ErrInvalidArgument)
	}
	if arg[0] != 'r' && arg[0] != 'f' {
		return noReg, fmt.Errorf("%w: a register is required", ErrInvalidArgument)
	}
	name := ""
	number := -1
	if arg[1] == ':' {
		spec := arg[2:]
		if at := strings.IndexByte(spec, '@'); at >= 0 {
			n, err := strconv.ParseUint(spec[at+1:], 0, 16)
			if err != nil {
				return noReg, fmt.Errorf("%w: bad register number in %q", ErrInvalidArgument, arg)
			}
			name = spec[:at]
			number = int(n)
		} else {
			name = spec
		}
	} else {
		n, err := strconv.ParseUint(arg[1:], 0, 16)
		if err != nil {
			return noReg, fmt.Errorf("%w: bad register number in %q", ErrInvalidArgument, arg)
		}
		number = int(n)
	}
	if !allowUnnumbered && number < 0 {
		return noReg, fmt.Errorf("%w: a numbered register is required", ErrInvalidArgument)
	}
	if number > 0xFF {
		return noReg, fmt.Errorf("%w: invalid register number %d", ErrInvalidArgument, number)
	}
	return regs.getOrCreate(name, number)
}

// parseRegSetFixed parses the three spellings of a fixed-size register
// block: an explicit (a, b, c) list, a single first register that
// implies the rest, or a first-last range with anonymous middles.
func parseRegSetFixed(regs *registerAllocator, arg string, expected int) ([]regRef, error) {
	if arg == "" {
		return nil, fmt.Errorf("%w: no register specified for fixed register set", ErrInvalidArgument)
	}
	var out []regRef
	if arg[0] == '(' && arg[len(arg)-1] == ')' {
		tokens := strings.Split(arg[1:len(arg)-1], ",")
		if len(tokens) != expected {
			return nil, fmt.Errorf("%w: incorrect number of registers in fixed register set", ErrArgumentCount)
		}
		for _, token := range tokens {
			ref, err := parseReg(regs, strings.TrimSpace(token), true)
			if err != nil {
				return nil, err
			}
			out = append(out, ref)
			if len(out) > 1 {
				if err := regs.constrain(out[len(out)-2], out[len(out)-1]); err != nil {
					return nil, err
				}
			}
		}
	} else {
		tokens := strings.Split(arg, "-")
		switch len(tokens) {
		case 1:
			first, err := parseReg(regs, tokens[0], false)
			if err != nil {
				return nil, err
			}
			out = append(out, first)
			for len(out) < expected {
				next := (int(regs.rec(out[len(out)-1]).number) + 1) & 0xFF
				ref, err := regs.getOrCreate("", next)
				if err != nil {
					return nil, err
				}
				out = append(out, ref)
				if err := regs.constrain(out[len(out)-2], out[len(out)-1]); err != nil {
					return nil, err
				}
			}
		case 2:
			first, err := parseReg(regs, tokens[0], false)
			if err != nil {
				return nil, err
			}
			out = append(out, first)
			for len(out) < expected-1 {
				next := (int(regs.rec(out[len(out)-1]).number) + 1) & 0xFF
				ref, err := regs.getOrCreate("", next)
				if err != nil {
					return nil, err
				}
				out = append(out, ref)
				if err := regs.constrain(out[len(out)-2], out[len(out)-1]); err != nil {
					return nil, err
				}
			}
			last, err := parseReg(regs, tokens[1], false)
			if err != nil {
				return nil, err
			}
			out = append(out, last)
			if (int(regs.rec(last).number)-int(regs.rec(first).number))&0xFF != expected-1 {
				return nil, fmt.Errorf("%w: incorrect number of registers used", ErrArgumentCount)
			}
			if err := regs.constrain(out[len(out)-2], out[len(out)-1]); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: invalid fixed register set syntax", ErrInvalidArgument)
		}
	}
	if len(out) != expected {
		return nil, fmt.Errorf("%w: incorrect register count in fixed register set", ErrArgumentCount)
	}
	return out, nil
}

// splitArgList splits on commas outside parentheses, brackets, and
// quoted strings.
func splitArgList(s string) []string {
	var out []string
	depth := 0
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case inQuote:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inQuote = false
			}
		case ch == '"':
			inQuote = true
		case ch == '(' || ch == '[':
			depth++
		case ch == ')' || ch == ']':
			depth--
		case ch == ',' && depth == 0:
			out = append(out, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	out = append(out, strings.TrimSpace(s[start:]))
	return out
}

// emitCode runs the emission pass over every line: label definitions
// record offsets, dot directives write raw bytes, and instruction
// lines encode either inline or through arg-stack pushes.
func (a *Assembler) emitCode(lines []string, cat *Catalog, version Version, meta *Metadata, labelsByName map[string]*alabel, regs *registerAllocator) ([]byte, error) {
	var code []byte
	versionHasArgs := version.usesArgStack()

	for i, line := range lines {
		lineNum := i + 1
		if line == "" {
			continue
		}
		fail := func(err error) ([]byte, error) {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		if strings.HasSuffix(line, ":") {
			name := line[:len(line)-1]
			if at := strings.IndexByte(name, '@'); at >= 0 {
				name = name[:at]
			}
			labelsByName[name].offset = len(code)
			continue
		}

		if line[0] == '.' {
			var err error
			code, err = a.emitDirective(code, line, version, meta)
			if err != nil {
				if err == errNotEmitDirective {
					if !isMetadataDirective(line) {
						return fail(fmt.Errorf("%w: unknown directive %s", ErrInvalidDirective, strings.Fields(line)[0]))
					}
					continue // already handled by the metadata pass
				}
				return fail(err)
			}
			continue
		}

		var err error
		code, err = a.emitInstruction(code, line, cat, version, versionHasArgs, meta, labelsByName, regs)
		if err != nil {
			return fail(err)
		}
	}
	return code, nil
}

// errNotEmitDirective marks dot-lines the emission pass ignores
// (metadata directives handled by collectMetadata).
var errNotEmitDirective = fmt.Errorf("not an emission directive")

func isMetadataDirective(line string) bool {
	name := line
	if idx := strings.IndexByte(name, ' '); idx >= 0 {
		name = name[:idx]
	}
	switch name {
	case ".version", ".name", ".short_desc", ".long_desc",
		".quest_num", ".language", ".episode", ".max_players", ".joinable":
		return true
	}
	return false
}

func (a *Assembler) emitDirective(code []byte, line string, version Version, meta *Metadata) ([]byte, error) {
	switch {
	case strings.HasPrefix(line, ".data "):
		raw, err := parseDataString(line[6:])
		if err != nil {
			return nil, err
		}
		return append(code, raw...), nil

	case strings.HasPrefix(line, ".zero "):
		n, err := strconv.ParseUint(strings.TrimSpace(line[6:]), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad .zero size", ErrInvalidDirective)
		}
		return append(code, make([]byte, n)...), nil

	case strings.HasPrefix(line, ".zero_until "):
		n, err := strconv.ParseUint(strings.TrimSpace(line[12:]), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad .zero_until offset", ErrInvalidDirective)
		}
		for uint64(len(code)) < n {
			code = append(code, 0)
		}
		return code, nil

	case strings.HasPrefix(line, ".align "):
		n, err := strconv.ParseUint(strings.TrimSpace(line[7:]), 0, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("%w: bad .align boundary", ErrInvalidDirective)
		}
		for uint64(len(code))%n != 0 {
			code = append(code, 0)
		}
		return code, nil

	case strings.HasPrefix(line, ".include_bin "):
		name := strings.TrimSpace(line[13:])
		raw, err := os.ReadFile(filepath.Join(a.IncludeDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDirective, err)
		}
		return append(code, raw...), nil

	case strings.HasPrefix(line, ".include_native "):
		if a.Native == nil {
			return nil, ErrNativeUnavailable
		}
		name := strings.TrimSpace(line[16:])
		src, err := os.ReadFile(filepath.Join(a.IncludeDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDirective, err)
		}
		native, err := a.Native.Assemble(string(src), version.NativeArch())
		if err != nil {
			return nil, err
		}
		return append(code, native...), nil
	}
	return code, errNotEmitDirective
}

func appendOpcode(code []byte, opcode uint16) []byte {
	if opcode&0xFF00 == 0 {
		return append(code, uint8(opcode))
	}
	return append(code, uint8(opcode>>8), uint8(opcode))
}

func (a *Assembler) emitInstruction(code []byte, line string, cat *Catalog, version Version, versionHasArgs bool, meta *Metadata, labelsByName map[string]*alabel, regs *registerAllocator) ([]byte, error) {
	mnemonic, rest, hasRest := strings.Cut(line, " ")
	def := cat.LookupName(version, mnemonic)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOpcode, mnemonic)
	}

	useArgs := versionHasArgs && def.Flags&fArgs != 0
	if !useArgs {
		code = appendOpcode(code, def.Opcode)
	}

	rest = strings.TrimSpace(rest)
	if len(def.Args) == 0 {
		if hasRest && rest != "" {
			return nil, fmt.Errorf("%w: arguments not allowed for %s", ErrArgumentCount, def.Name)
		}
		return code, nil
	}
	if rest == "" {
		return nil, fmt.Errorf("%w: arguments required for %s", ErrArgumentCount, def.Name)
	}

	if strings.HasPrefix(rest, "...") {
		// Pushes were written out explicitly by the source.
		if !useArgs {
			return nil, fmt.Errorf("%w: '...' can only be used with arg-stack opcodes", ErrInvalidArgument)
		}
		return appendOpcode(code, def.Opcode), nil
	}

	args := splitArgList(rest)
	if len(args) != len(def.Args) {
		return nil, fmt.Errorf("%w: %s wants %d arguments, got %d", ErrArgumentCount, def.Name, len(def.Args), len(args))
	}

	var err error
	for z := range args {
		if useArgs {
			code, err = a.emitStackArg(code, args[z], def.Args[z], version, meta, labelsByName, regs)
		} else {
			code, err = a.emitInlineArg(code, args[z], def.Args[z], version, meta, labelsByName, regs)
		}
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", z+1, err)
		}
	}

	if useArgs {
		code = appendOpcode(code, def.Opcode)
	}
	return code, nil
}

// appendCStr encodes a script string in the version's text encoding,
// NUL terminated. bin skips re-encoding and writes the bytes as-is.
func appendCStr(code []byte, text []byte, bin bool, version Version, language uint8) ([]byte, error) {
	if version.usesWideText() {
		if bin {
			return append(append(code, text...), 0, 0), nil
		}
		enc, err := utf16LE.NewEncoder().Bytes(text)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot encode string", ErrInvalidArgument)
		}
		return append(append(code, enc...), 0, 0), nil
	}
	if bin {
		return append(append(code, text...), 0), nil
	}
	lang := language
	if version == VersionDCNTE {
		lang = 0 // DC NTE is always Japanese
	}
	enc, err := narrowEncoding(lang).NewEncoder().Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot encode string for language %d", ErrInvalidArgument, lang)
	}
	return append(append(code, enc...), 0), nil
}

func parseStringArg(arg string) (text []byte, bin bool, err error) {
	if strings.HasPrefix(arg, "bin:") {
		raw, err := parseDataString(arg[4:])
		return raw, true, err
	}
	raw, err := parseDataString(arg)
	return raw, false, err
}

// emitStackArg synthesizes the arg_push instruction for one declared
// argument of an arg-stack opcode.
func (a *Assembler) emitStackArg(code []byte, arg string, argDef Argument, version Version, meta *Metadata, labelsByName map[string]*alabel, regs *registerAllocator) ([]byte, error) {
	if arg == "" {
		return nil, fmt.Errorf("%w: argument is empty", ErrInvalidArgument)
	}

	if l, ok := labelsByName[arg]; ok {
		code = append(code, 0x4B) // arg_pushw
		var u16 [2]byte
		binary.LittleEndian.PutUint16(u16[:], uint16(l.index))
		return append(code, u16[:]...), nil
	}

	if arg[0] == 'r' || arg[0] == 'f' || (arg[0] == '(' && arg[len(arg)-1] == ')') {
		// Register arguments that the opcode declares as registers are
		// out-params: push the register number, not its value.
		switch argDef.Type {
		case ArgReg, ArgReg32:
			code = append(code, 0x4A) // arg_pushb
			ref, err := parseReg(regs, arg, true)
			if err != nil {
				return nil, err
			}
			regs.addPatchOffset(ref, len(code))
			return append(code, uint8(regs.rec(ref).number)), nil
		case ArgRegSetFixed, ArgReg32SetFixed:
			set, err := parseRegSetFixed(regs, arg, argDef.Count)
			if err != nil {
				return nil, err
			}
			code = append(code, 0x4A) // arg_pushb
			regs.addPatchOffset(set[0], len(code))
			return append(code, uint8(regs.rec(set[0]).number)), nil
		default:
			code = append(code, 0x48) // arg_pushr
			ref, err := parseReg(regs, arg, true)
			if err != nil {
				return nil, err
			}
			regs.addPatchOffset(ref, len(code))
			return append(code, uint8(regs.rec(ref).number)), nil
		}
	}

	if len(arg) > 1 && arg[0] == '@' && (arg[1] == 'r' || arg[1] == 'f') {
		code = append(code, 0x4C) // arg_pusha
		ref, err := parseReg(regs, arg[1:], true)
		if err != nil {
			return nil, err
		}
		regs.addPatchOffset(ref, len(code))
		return append(code, uint8(regs.rec(ref).number)), nil
	}

	if arg[0] == '@' {
		if l, ok := labelsByName[arg[1:]]; ok {
			code = append(code, 0x4D) // arg_pusho
			var u16 [2]byte
			binary.LittleEndian.PutUint16(u16[:], uint16(l.index))
			return append(code, u16[:]...), nil
		}
	}

	if v, err := strconv.ParseInt(arg, 0, 64); err == nil {
		value := uint64(v)
		switch {
		case value > 0xFFFF:
			code = append(code, 0x49) // arg_pushl
			var u32 [4]byte
			binary.LittleEndian.PutUint32(u32[:], uint32(value))
			return append(code, u32[:]...), nil
		case value > 0xFF:
			code = append(code, 0x4B) // arg_pushw
			var u16 [2]byte
			binary.LittleEndian.PutUint16(u16[:], uint16(value))
			return append(code, u16[:]...), nil
		default:
			return append(code, 0x4A, uint8(value)), nil // arg_pushb
		}
	}

	if arg[0] == '"' || strings.HasPrefix(arg, "bin:") {
		text, bin, err := parseStringArg(arg)
		if err != nil {
			return nil, err
		}
		code = append(code, 0x4E) // arg_pushs
		return appendCStr(code, text, bin, version, meta.Language)
	}

	return nil, fmt.Errorf("%w: invalid argument syntax: %q", ErrInvalidArgument, arg)
}

// emitInlineArg encodes one declared argument directly into the
// instruction stream.
func (a *Assembler) emitInlineArg(code []byte, arg string, argDef Argument, version Version, meta *Metadata, labelsByName map[string]*alabel, regs *registerAllocator) ([]byte, error) {
	var u16 [2]byte
	var u32 [4]byte

	addLabel := func(name string, is32 bool) error {
		l, ok := labelsByName[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUndefinedLabel, name)
		}
		if is32 {
			binary.LittleEndian.PutUint32(u32[:], uint32(l.index))
			code = append(code, u32[:]...)
		} else {
			binary.LittleEndian.PutUint16(u16[:], uint16(l.index))
			code = append(code, u16[:]...)
		}
		return nil
	}
	addReg := func(ref regRef, is32 bool) {
		regs.addPatchOffset(ref, len(code))
		if is32 {
			binary.LittleEndian.PutUint32(u32[:], uint32(uint8(regs.rec(ref).number)))
			code = append(code, u32[:]...)
		} else {
			code = append(code, uint8(regs.rec(ref).number))
		}
	}
	splitSet := func(text string) ([]string, error) {
		if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
			return nil, fmt.Errorf("%w: incorrect syntax for set-valued argument", ErrInvalidArgument)
		}
		values := splitArgList(text[1 : len(text)-1])
		if len(values) > 0xFF {
			return nil, fmt.Errorf("%w: too many entries in set-valued argument", ErrArgumentCount)
		}
		return values, nil
	}

	switch argDef.Type {
	case ArgLabel16, ArgLabel32:
		if err := addLabel(arg, argDef.Type == ArgLabel32); err != nil {
			return nil, err
		}

	case ArgLabel16Set:
		names, err := splitSet(arg)
		if err != nil {
			return nil, err
		}
		code = append(code, uint8(len(names)))
		for _, name := range names {
			if err := addLabel(strings.TrimSpace(name), false); err != nil {
				return nil, err
			}
		}

	case ArgReg, ArgReg32:
		ref, err := parseReg(regs, arg, true)
		if err != nil {
			return nil, err
		}
		addReg(ref, argDef.Type == ArgReg32)

	case ArgRegSetFixed, ArgReg32SetFixed:
		set, err := parseRegSetFixed(regs, arg, argDef.Count)
		if err != nil {
			return nil, err
		}
		addReg(set[0], argDef.Type == ArgReg32SetFixed)

	case ArgRegSet:
		names, err := splitSet(arg)
		if err != nil {
			return nil, err
		}
		code = append(code, uint8(len(names)))
		for _, name := range names {
			ref, err := parseReg(regs, strings.TrimSpace(name), true)
			if err != nil {
				return nil, err
			}
			addReg(ref, false)
		}

	case ArgInt8:
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad integer %q", ErrInvalidArgument, arg)
		}
		code = append(code, uint8(v))

	case ArgInt16:
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad integer %q", ErrInvalidArgument, arg)
		}
		binary.LittleEndian.PutUint16(u16[:], uint16(v))
		code = append(code, u16[:]...)

	case ArgInt32:
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad integer %q", ErrInvalidArgument, arg)
		}
		binary.LittleEndian.PutUint32(u32[:], uint32(v))
		code = append(code, u32[:]...)

	case ArgFloat32:
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad float %q", ErrInvalidArgument, arg)
		}
		binary.LittleEndian.PutUint32(u32[:], math.Float32bits(float32(f)))
		code = append(code, u32[:]...)

	case ArgCString:
		text, bin, err := parseStringArg(arg)
		if err != nil {
			return nil, err
		}
		return appendCStr(code, text, bin, version, meta.Language)
	}
	return code, nil
}

// buildFunctionTable produces the dense table; indexes with no label
// get the unset sentinel.
func buildFunctionTable(byIndex map[int]*alabel) ([]uint32, error) {
	maxIndex := -1
	for idx := range byIndex {
		if idx > maxIndex {
			maxIndex = idx
		}
	}
	table := make([]uint32, 0, maxIndex+1)
	for z := 0; z <= maxIndex; z++ {
		l, ok := byIndex[z]
		if !ok {
			table = append(table, 0xFFFFFFFF)
			continue
		}
		if l.offset < 0 {
			return nil, fmt.Errorf("%w: label %s does not have a valid offset", ErrUndefinedLabel, l.name)
		}
		table = append(table, uint32(l.offset))
	}
	return table, nil
}
