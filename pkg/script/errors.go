package script

import "errors"

// Assembly and disassembly report failures through these sentinels so
// callers can classify without string matching. Instruction-level
// decode problems are never returned as errors; the disassembler
// renders them inline and keeps going.
var (
	ErrUnknownVersion     = errors.New("unknown version")
	ErrVersionNoQuests    = errors.New("version cannot contain quests")
	ErrInvalidEpisode     = errors.New("invalid episode")
	ErrHeaderTooSmall     = errors.New("header too small")
	ErrInvalidLayout      = errors.New("invalid section layout")
	ErrMissingDirective   = errors.New("missing required directive")
	ErrInvalidDirective   = errors.New("invalid directive")
	ErrDuplicateLabel     = errors.New("duplicate label")
	ErrDuplicateIndex     = errors.New("duplicate label index")
	ErrUndefinedLabel     = errors.New("undefined label")
	ErrUnknownOpcode      = errors.New("unknown opcode")
	ErrArgumentCount      = errors.New("incorrect argument count")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrRegisterConflict   = errors.New("register constraint conflict")
	ErrRegisterExhausted  = errors.New("no register number space available")
	ErrAmbiguousEpisode   = errors.New("multiple episodes detected")
	ErrNativeUnavailable  = errors.New("native assembler not available")
	ErrCompressedTooShort = errors.New("compressed data truncated")
)
