package script

import (
	"encoding/binary"
	"fmt"
)

// FindEpisode determines which episode a compiled quest belongs to.
// DC and PC quests are always Episode 1. For GameCube and Blue Burst
// the header carries an episode byte, but some quests set it wrong and
// fix it at runtime, so the start function is scanned for set_episode
// calls; when the scan finds exactly one episode it wins over the
// header. A scan failure falls back to the header value; conflicting
// set_episode calls are an error.
func FindEpisode(data []byte, v Version) (Episode, error) {
	header, err := ReadHeader(data, v, -1)
	if err != nil {
		return Episode1, err
	}
	if !header.HasEpisode {
		return Episode1, nil
	}

	episodes, err := scanStartForEpisodes(data, v, header)
	if err != nil {
		log.Warningf("cannot determine episode from quest script (%v); using episode from header", err)
		return header.Episode, nil
	}
	switch len(episodes) {
	case 0:
		return header.Episode, nil
	case 1:
		for e := range episodes {
			return e, nil
		}
	}
	return Episode1, fmt.Errorf("%w: quest sets multiple episodes", ErrAmbiguousEpisode)
}

// scanStartForEpisodes walks the start function's instruction stream,
// collecting the episode of every set_episode until the first
// return-class instruction. Operands are normalized before deduping,
// so 0 and 0xFF count as the same episode; an invalid operand aborts
// the scan.
func scanStartForEpisodes(data []byte, v Version, header *Header) (map[Episode]struct{}, error) {
	cat := Default()
	table := data[header.FunctionTableOffset:]
	if len(table) < 4 {
		return nil, fmt.Errorf("%w: function table is empty", ErrInvalidLayout)
	}
	start := binary.LittleEndian.Uint32(table[:4])
	codeSize := int(header.FunctionTableOffset) - int(header.CodeOffset)
	if int(start) >= codeSize {
		return nil, fmt.Errorf("%w: start offset is outside the code section", ErrInvalidLayout)
	}

	episodes := make(map[Episode]struct{})
	r := newByteReader(data[header.CodeOffset:header.FunctionTableOffset])
	r.Skip(int(start))
	for r.Remaining() > 0 {
		opcode := uint16(r.U8())
		if opcode&0xFE == 0xF8 {
			opcode = (opcode << 8) | uint16(r.U8())
		}
		if err := r.Err(); err != nil {
			return nil, err
		}
		def := cat.Lookup(v, opcode)
		if def == nil {
			return nil, fmt.Errorf("%w: %04X during episode scan", ErrUnknownOpcode, opcode)
		}

		if def.Flags&fSetEpisode != 0 {
			n := r.U32()
			if err := r.Err(); err != nil {
				return nil, err
			}
			e, err := episodeFromNumber(n)
			if err != nil {
				return nil, err
			}
			episodes[e] = struct{}{}
			continue
		}
		if err := skipArgs(r, v, def); err != nil {
			return nil, err
		}
		if def.Flags&fRet != 0 {
			break
		}
	}
	return episodes, nil
}

// skipArgs advances past an instruction's inline arguments. Arg-stack
// opcodes on versions that use the stack carry no inline data.
func skipArgs(r *byteReader, v Version, def *OpcodeDef) error {
	if def.TakesArgsFromStack(v) {
		return nil
	}
	for _, arg := range def.Args {
		switch arg.Type {
		case ArgLabel16, ArgInt16:
			r.U16()
		case ArgLabel32, ArgInt32, ArgFloat32, ArgReg32:
			r.U32()
		case ArgLabel16Set:
			count := int(r.U8())
			r.Bytes(count * 2)
		case ArgReg, ArgInt8, ArgRegSetFixed:
			r.U8()
		case ArgReg32SetFixed:
			r.U32()
		case ArgRegSet:
			count := int(r.U8())
			r.Bytes(count)
		case ArgCString:
			if v.usesWideText() {
				r.WString()
			} else {
				r.CString()
			}
		}
	}
	return r.Err()
}
