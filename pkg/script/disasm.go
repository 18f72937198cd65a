package script

import (
	"fmt"
	"sort"
	"strings"
)

// DisassembleOptions controls listing output. The zero value produces
// a human-oriented listing with primary mnemonics and the language
// taken from the header.
type DisassembleOptions struct {
	// OverrideLanguage forces the text decode language instead of the
	// header's language byte.
	OverrideLanguage *uint8

	// Reassembly emits a listing that encodes back to the exact input:
	// explicit label indexes, no offset comments, raw .data blocks.
	Reassembly bool

	// EditorNames selects the classic editor's mnemonics where a
	// definition has one.
	EditorNames bool

	// Catalog overrides the default opcode catalog.
	Catalog *Catalog
}

// dlabel is one function-table entry during disassembly. typeFlags
// accumulates every DataType the label is referenced as; the label's
// block is rendered once per accumulated type.
type dlabel struct {
	name       string
	offset     uint32
	functionID uint32
	typeFlags  uint32
	refs       map[int]struct{}
}

func (l *dlabel) addType(dt DataType) {
	l.typeFlags |= 1 << uint32(dt)
}

func (l *dlabel) hasType(dt DataType) bool {
	return l.typeFlags&(1<<uint32(dt)) != 0
}

func (l *dlabel) addRef(offset int) {
	if l.refs == nil {
		l.refs = make(map[int]struct{})
	}
	l.refs[offset] = struct{}{}
}

type stackValType uint8

const (
	svReg stackValType = iota
	svRegPtr
	svLabel
	svInt
	svCString
)

// stackVal is one tracked argument-stack entry.
type stackVal struct {
	typ stackValType
	i   uint32
	s   string
}

type dasmLine struct {
	text string
	next int
}

// Disassemble renders a quest script binary as assembly text. Decode
// problems inside the code section become inline markers; only header
// and layout problems are returned as errors.
func Disassemble(data []byte, v Version, opts DisassembleOptions) (string, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = Default()
	}
	ov := -1
	if opts.OverrideLanguage != nil {
		ov = int(*opts.OverrideLanguage)
	}
	h, err := ReadHeader(data, v, ov)
	if err != nil {
		return "", err
	}
	codeOff := int(h.CodeOffset)
	ftOff := int(h.FunctionTableOffset)
	if codeOff < 0 || ftOff < codeOff || ftOff > len(data) {
		return "", fmt.Errorf("%w: code 0x%X, function table 0x%X, file 0x%X bytes",
			ErrInvalidLayout, codeOff, ftOff, len(data))
	}

	lines := []string{".version " + v.String()}
	lines = append(lines, metadataDirectives(h, v)...)

	cmd := data[codeOff:ftOff]
	labels := readFunctionTable(data[ftOff:])
	dasmLines := decodeCode(cmd, cat, v, h.Language, opts, labels)
	lines = append(lines, renderLabelBlocks(cmd, labels, dasmLines, v, h.Language, opts)...)

	lines = append(lines, "")
	return strings.Join(lines, "\n"), nil
}

func metadataDirectives(h *Header, v Version) []string {
	var out []string
	if h.HasQuestMeta && v != VersionDCNTE {
		out = append(out, fmt.Sprintf(".quest_num %d", h.QuestNumber))
	}
	if h.HasLanguage && v != VersionDCNTE {
		// Raw byte, not the normalized decode language, so reassembly
		// reproduces an out-of-range value exactly.
		out = append(out, fmt.Sprintf(".language %d", h.RawLanguage))
	}
	if h.HasEpisode {
		if _, err := episodeFromNumber(uint32(h.RawEpisode)); err != nil {
			out = append(out, fmt.Sprintf(".episode %s /* invalid value in header */", h.Episode))
		} else {
			out = append(out, fmt.Sprintf(".episode %s", h.Episode))
		}
	}
	if h.HasPlayerMeta {
		maxPlayers := h.MaxPlayers
		if maxPlayers == 0 {
			maxPlayers = 4
		}
		out = append(out, fmt.Sprintf(".max_players %d", maxPlayers))
		if h.Joinable {
			out = append(out, ".joinable")
		}
	}
	out = append(out, ".name "+escapeString(h.Name))
	if h.HasQuestMeta && v != VersionDCNTE {
		out = append(out, ".short_desc "+escapeString(h.ShortDesc))
		out = append(out, ".long_desc "+escapeString(h.LongDesc))
	}
	return out
}

// readFunctionTable decodes dense u32 entries until end of file. Index
// 0 is always named start; entries pointing outside the code section
// stay in the table but get no block of their own.
func readFunctionTable(data []byte) []*dlabel {
	r := newByteReader(data)
	var labels []*dlabel
	for r.Remaining() >= 4 {
		id := uint32(len(labels))
		name := "start"
		if id != 0 {
			name = fmt.Sprintf("label%04X", id)
		}
		l := &dlabel{name: name, offset: r.U32(), functionID: id}
		if id == 0 {
			l.addType(DataScript)
		}
		labels = append(labels, l)
	}
	return labels
}

// decodeCode linearly decodes instruction runs starting from every
// in-range function table entry plus every script label discovered on
// the way. Runs stop at already-decoded offsets.
func decodeCode(cmd []byte, cat *Catalog, v Version, language uint8, opts DisassembleOptions, labels []*dlabel) map[int]dasmLine {
	dasm := make(map[int]dasmLine)
	pending := make(map[int]struct{})
	for _, l := range labels {
		if int(l.offset) < len(cmd) {
			pending[int(l.offset)] = struct{}{}
		}
	}

	versionHasArgs := v.usesArgStack()
	for len(pending) > 0 {
		start := -1
		for off := range pending {
			if start < 0 || off < start {
				start = off
			}
		}
		delete(pending, start)

		r := newByteReader(cmd)
		r.off = start
		var argStack []stackVal
		for r.Remaining() > 0 {
			if _, done := dasm[r.Offset()]; done {
				break
			}
			startOff := r.Offset()
			text := decodeInstruction(r, cmd, cat, v, language, versionHasArgs, opts, labels, pending, &argStack, startOff)
			if r.Err() != nil {
				// Truncated instruction; reader did not advance past the
				// failing field, so record the marker and stop this run.
				text = ".failed (end of code section during instruction)"
			}
			text = strings.TrimRight(text, " ")

			var lineText string
			if opts.Reassembly {
				lineText = "  " + text
			} else {
				hexStr := hexOnly(r.Since(startOff))
				if len(hexStr) > 14 {
					hexStr = hexStr[:12] + "..."
				}
				lineText = fmt.Sprintf("  %04X  %-16s  %s", startOff, hexStr, text)
			}
			dasm[startOff] = dasmLine{text: lineText, next: r.Offset()}
			if r.Err() != nil || r.Offset() <= startOff {
				break
			}
		}
	}
	return dasm
}

func hexOnly(data []byte) string {
	var b strings.Builder
	for _, ch := range data {
		fmt.Fprintf(&b, "%02X", ch)
	}
	return b.String()
}

// decodeInstruction reads one instruction and renders its mnemonic and
// arguments, tracking arg-stack pushes along the way.
func decodeInstruction(r *byteReader, cmd []byte, cat *Catalog, v Version, language uint8, versionHasArgs bool, opts DisassembleOptions, labels []*dlabel, pending map[int]struct{}, argStack *[]stackVal, startOff int) string {
	opcode := uint16(r.U8())
	if opcode&0xFE == 0xF8 {
		opcode = opcode<<8 | uint16(r.U8())
	}
	if r.Err() != nil {
		return ""
	}
	def := cat.Lookup(v, opcode)
	if def == nil {
		return fmt.Sprintf(".unknown %04X", opcode)
	}

	name := def.Name
	if opts.EditorNames && def.EditorName != "" {
		name = def.EditorName
	}
	line := fmt.Sprintf("%-32s", name)

	push := func(val stackVal) {
		if def.Flags&fPass != 0 {
			*argStack = append(*argStack, val)
		}
	}
	renderLabelID := func(id uint32) string {
		if int(id) >= len(labels) {
			return fmt.Sprintf("label%04X", id)
		}
		if opts.Reassembly {
			return labels[id].name
		}
		return fmt.Sprintf("%s /* %04X */", labels[id].name, labels[id].offset)
	}
	noteLabel := func(id uint32, dt DataType) {
		if int(id) >= len(labels) {
			return
		}
		l := labels[id]
		l.addRef(startOff)
		l.addType(dt)
		if dt == DataScript && int(l.offset) < len(cmd) {
			pending[int(l.offset)] = struct{}{}
		}
	}

	if !versionHasArgs || def.Flags&fArgs == 0 {
		var rendered []string
		for _, arg := range def.Args {
			var s string
			switch arg.Type {
			case ArgLabel16, ArgLabel32:
				var id uint32
				if arg.Type == ArgLabel32 {
					id = r.U32()
				} else {
					id = uint32(r.U16())
				}
				if r.Err() != nil {
					return ""
				}
				push(stackVal{typ: svLabel, i: id})
				s = renderLabelID(id)
				noteLabel(id, arg.Data)
			case ArgLabel16Set:
				n := int(r.U8())
				var parts []string
				for z := 0; z < n; z++ {
					id := uint32(r.U16())
					if r.Err() != nil {
						return ""
					}
					parts = append(parts, renderLabelID(id))
					noteLabel(id, arg.Data)
				}
				s = "[" + strings.Join(parts, ", ") + "]"
			case ArgReg:
				reg := r.U8()
				if def.Opcode == 0x004C {
					push(stackVal{typ: svRegPtr, i: uint32(reg)})
				} else {
					push(stackVal{typ: svReg, i: uint32(reg)})
				}
				s = fmt.Sprintf("r%d", reg)
			case ArgReg32:
				reg := r.U32()
				push(stackVal{typ: svReg, i: reg})
				s = fmt.Sprintf("r%d", uint8(reg))
			case ArgRegSet:
				n := int(r.U8())
				var parts []string
				for z := 0; z < n; z++ {
					parts = append(parts, fmt.Sprintf("r%d", r.U8()))
				}
				s = "[" + strings.Join(parts, ", ") + "]"
			case ArgRegSetFixed:
				first := r.U8()
				s = fmt.Sprintf("r%d-r%d", first, uint8(int(first)+arg.Count-1))
			case ArgReg32SetFixed:
				first := r.U32()
				s = fmt.Sprintf("r%d-r%d", first, first+uint32(arg.Count)-1)
			case ArgInt8:
				val := r.U8()
				push(stackVal{typ: svInt, i: uint32(val)})
				s = fmt.Sprintf("0x%02X", val)
			case ArgInt16:
				val := r.U16()
				push(stackVal{typ: svInt, i: uint32(val)})
				s = fmt.Sprintf("0x%04X", val)
			case ArgInt32:
				val := r.U32()
				push(stackVal{typ: svInt, i: val})
				s = fmt.Sprintf("0x%08X", val)
			case ArgFloat32:
				bits := r.U32()
				push(stackVal{typ: svInt, i: bits})
				s = fmt.Sprintf("%g", f32frombits(bits))
			case ArgCString:
				if v.usesWideText() {
					raw := r.WString()
					if r.Err() != nil {
						return ""
					}
					decoded := decodeWide(raw)
					push(stackVal{typ: svCString, s: decoded})
					s = escapeString(decoded)
				} else {
					raw := r.CString()
					if r.Err() != nil {
						return ""
					}
					decoded := decodeNarrow(raw, language)
					push(stackVal{typ: svCString, s: decoded})
					s = escapeString(decoded)
				}
			}
			if r.Err() != nil {
				return ""
			}
			rendered = append(rendered, s)
		}
		line += strings.Join(rendered, ", ")
	} else {
		// Arguments came in through the arg stack.
		if opts.Reassembly {
			line += "..."
		} else {
			line += "... "
			line += renderStackArgs(def, *argStack, labels, startOff)
		}
	}

	if def.Flags&fPass == 0 {
		*argStack = (*argStack)[:0]
	}
	return line
}

// renderStackArgs matches tracked arg-stack values against an F_ARGS
// opcode's declared arguments. Count mismatches become a warning
// comment rather than an error; type mismatches degrade per-argument.
func renderStackArgs(def *OpcodeDef, stack []stackVal, labels []*dlabel, startOff int) string {
	if len(def.Args) != len(stack) {
		return fmt.Sprintf("/* matching error: expected %d arguments, received %d arguments */",
			len(def.Args), len(stack))
	}
	var rendered []string
	for z, argDef := range def.Args {
		val := stack[z]
		var s string
		switch argDef.Type {
		case ArgLabel16, ArgLabel32:
			switch val.typ {
			case svReg:
				s = fmt.Sprintf("r%d /* warning: cannot determine label data type */", val.i)
			case svLabel, svInt:
				s = fmt.Sprintf("label%04X", val.i)
				if int(val.i) < len(labels) {
					l := labels[val.i]
					l.addType(argDef.Data)
					l.addRef(startOff)
					s = fmt.Sprintf("%s /* %04X */", l.name, l.offset)
				}
			default:
				s = "/* invalid-type */"
			}
		case ArgReg, ArgReg32:
			switch val.typ {
			case svReg:
				s = fmt.Sprintf("regs[r%d]", val.i)
			case svInt:
				s = fmt.Sprintf("r%d", val.i)
			default:
				s = "/* invalid-type */"
			}
		case ArgRegSetFixed, ArgReg32SetFixed:
			switch val.typ {
			case svReg:
				s = fmt.Sprintf("regs[r%d]-regs[r%d+%d]", val.i, val.i, argDef.Count-1)
			case svInt:
				s = fmt.Sprintf("r%d-r%d", val.i, uint8(int(val.i)+argDef.Count-1))
			default:
				s = "/* invalid-type */"
			}
		case ArgInt8, ArgInt16, ArgInt32:
			switch val.typ {
			case svReg:
				s = fmt.Sprintf("r%d", val.i)
			case svRegPtr:
				s = fmt.Sprintf("&r%d", val.i)
			case svInt:
				s = fmt.Sprintf("0x%X /* %d */", val.i, val.i)
			default:
				s = "/* invalid-type */"
			}
		case ArgFloat32:
			switch val.typ {
			case svReg:
				s = fmt.Sprintf("f%d", val.i)
			case svInt:
				s = fmt.Sprintf("%g", f32frombits(val.i))
			default:
				s = "/* invalid-type */"
			}
		case ArgCString:
			if val.typ == svCString {
				s = escapeString(val.s)
			} else {
				s = "/* invalid-type */"
			}
		default:
			s = "/* invalid-type */"
		}
		rendered = append(rendered, s)
	}
	return strings.Join(rendered, ", ")
}

// renderLabelBlocks emits every in-range label's block: the label
// line, reference comments, then one interpretation per accumulated
// data type.
func renderLabelBlocks(cmd []byte, labels []*dlabel, dasm map[int]dasmLine, v Version, language uint8, opts DisassembleOptions) []string {
	inRange := make([]*dlabel, 0, len(labels))
	for _, l := range labels {
		if int(l.offset) < len(cmd) {
			inRange = append(inRange, l)
		}
	}
	sort.SliceStable(inRange, func(i, j int) bool { return inRange[i].offset < inRange[j].offset })

	var lines []string
	for i, l := range inRange {
		end := len(cmd)
		if i+1 < len(inRange) {
			end = int(inRange[i+1].offset)
		}
		off := int(l.offset)
		size := end - off
		if size > 0 {
			lines = append(lines, "")
		}

		if opts.Reassembly {
			lines = append(lines, fmt.Sprintf("%s@0x%04X:", l.name, l.functionID))
		} else {
			lines = append(lines, l.name+":")
			if len(l.refs) > 0 {
				refs := make([]int, 0, len(l.refs))
				for r := range l.refs {
					refs = append(refs, r)
				}
				sort.Ints(refs)
				if len(refs) == 1 {
					lines = append(lines, fmt.Sprintf("  // Referenced by instruction at %04X", refs[0]))
				} else {
					parts := make([]string, len(refs))
					for z, r := range refs {
						parts[z] = fmt.Sprintf("%04X", r)
					}
					lines = append(lines, "  // Referenced by instructions at "+strings.Join(parts, ", "))
				}
			}
		}

		if l.typeFlags == 0 {
			lines = append(lines, "  // Could not determine data type; disassembling as code")
			l.addType(DataScript)
		}

		block := cmd[off:end]
		if opts.Reassembly {
			if l.hasType(DataScript) {
				lines = append(lines, codeLines(dasm, off, size)...)
			} else {
				lines = append(lines, ".data "+formatDataString(block))
			}
			continue
		}

		if l.hasType(DataData) {
			lines = append(lines, fmt.Sprintf("  // As raw data (0x%X bytes)", size))
			lines = append(lines, hexDumpLines(block, off)...)
		}
		if l.hasType(DataCString) {
			lines = append(lines, fmt.Sprintf("  // As C string (0x%X bytes)", size))
			str := block
			for len(str) > 0 && str[len(str)-1] == 0 {
				str = str[:len(str)-1]
			}
			var decoded string
			if v.usesWideText() {
				if len(str)%2 != 0 {
					str = append(append([]byte{}, str...), 0)
				}
				decoded = decodeWide(str)
			} else {
				decoded = decodeNarrow(str, language)
			}
			lines = append(lines, fmt.Sprintf("  %04X  %s", off, escapeString(decoded)))
		}
		for _, dt := range []DataType{DataPlayerVisualConfig, DataPlayerStats, DataResistData, DataAttackData, DataMovementData} {
			if !l.hasType(dt) {
				continue
			}
			ssize := structSize(dt)
			if size >= ssize {
				renderStruct(&lines, dt, block[:ssize], off, language)
				if size > ssize {
					lines = append(lines, "  // Extra data after structure")
					lines = append(lines, hexDumpLines(block[ssize:], off+ssize)...)
				}
			} else {
				lines = append(lines, fmt.Sprintf("  // As raw data (0x%X bytes; too small for referenced type)", size))
				lines = append(lines, hexDumpLines(block, off)...)
			}
		}
		if l.hasType(DataImageData) {
			decompressed, used, err := prsDecompress(block)
			if err != nil {
				lines = append(lines, fmt.Sprintf("  // Could not decompress image data (%v)", err))
				lines = append(lines, hexDumpLines(block, off)...)
			} else {
				lines = append(lines, fmt.Sprintf("  // As decompressed image data (0x%X bytes)", len(decompressed)))
				lines = append(lines, hexDumpLines(decompressed, 0)...)
				if used < size {
					lines = append(lines, "  // Extra data after compressed data")
					lines = append(lines, hexDumpLines(block[used:], off+used)...)
				}
			}
		}
		if l.hasType(DataF8F2) {
			lines = append(lines, "  // As F8F2 entries")
			r := newByteReader(block)
			for r.Remaining() >= f8f2EntrySize {
				entryOff := off + r.Offset()
				a, b, c, d := r.F32(), r.F32(), r.F32(), r.F32()
				lines = append(lines, fmt.Sprintf("  %04X  entry        %g, %g, %g, %g", entryOff, a, b, c, d))
			}
			if r.Remaining() > 0 {
				lines = append(lines, "  // Extra data after structures")
				lines = append(lines, hexDumpLines(block[r.Offset():], off+r.Offset())...)
			}
		}
		if l.hasType(DataScript) {
			lines = append(lines, codeLines(dasm, off, size)...)
		}
	}
	return lines
}

// codeLines walks the decoded instruction chain inside [off, off+size).
func codeLines(dasm map[int]dasmLine, off, size int) []string {
	var out []string
	for z := off; z < off+size; {
		dl, ok := dasm[z]
		if !ok {
			break
		}
		out = append(out, dl.text)
		if dl.next <= z {
			break
		}
		z = dl.next
	}
	return out
}
