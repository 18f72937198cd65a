package script

// ---- argument metadata ----

// ArgType describes how one declared argument of an opcode is encoded
// in the instruction stream.
type ArgType uint8

const (
	ArgLabel16 ArgType = iota
	ArgLabel16Set // u8 count, then that many u16 labels
	ArgLabel32
	ArgReg
	ArgRegSet // u8 count, then that many u8 registers
	ArgRegSetFixed // u8 first register of a fixed-size consecutive block
	ArgReg32
	ArgReg32SetFixed // u32 first register of a fixed-size consecutive block
	ArgInt8
	ArgInt16
	ArgInt32
	ArgFloat32
	ArgCString
)

// DataType describes what a label argument points at, which controls
// how the disassembler renders the label's block.
type DataType uint8

const (
	DataNone DataType = iota
	DataScript
	DataData
	DataCString
	DataPlayerStats
	DataPlayerVisualConfig
	DataResistData
	DataAttackData
	DataMovementData
	DataImageData // PRS-compressed
	DataF8F2      // array of four-float entries
)

// Argument is one declared argument of an opcode definition.
type Argument struct {
	Type  ArgType
	Count int      // block size for ArgRegSetFixed / ArgReg32SetFixed
	Data  DataType // target type for label arguments
	Name  string   // optional, documentation only
}

// ---- opcode flags ----

// An opcode definition's Flags field packs version applicability into
// the low 14 bits plus behavior bits on top. The two patch-server
// version bits can never apply to a quest opcode, so the format reuses
// them for the pass and args behaviors.
const (
	fPass       uint16 = 0x0001 // does not clear the arg stack
	fArgs       uint16 = 0x0002 // takes args from the arg stack on V3/V4
	fDCNTE      uint16 = 0x0004
	fDC112000   uint16 = 0x0008
	fDCV1       uint16 = 0x0010
	fDCV2       uint16 = 0x0020
	fPCNTE      uint16 = 0x0040
	fPCV2       uint16 = 0x0080
	fGCNTE      uint16 = 0x0100
	fGCV3       uint16 = 0x0200
	fGCEp3NTE   uint16 = 0x0400
	fGCEp3      uint16 = 0x0800
	fXBV3       uint16 = 0x1000
	fBBV4       uint16 = 0x2000
	fRet        uint16 = 0x4000 // ends a linear scan (episode search)
	fSetEpisode uint16 = 0x8000 // first INT32 argument selects the episode
)

const (
	fV0V2  = fDCNTE | fDC112000 | fDCV1 | fDCV2 | fPCNTE | fPCV2 | fGCNTE
	fV0V4  = fV0V2 | fV3V4
	fV05V2 = fDC112000 | fDCV1 | fDCV2 | fPCNTE | fPCV2 | fGCNTE
	fV05V4 = fV05V2 | fV3V4
	fV1V2  = fDCV1 | fDCV2 | fPCNTE | fPCV2 | fGCNTE
	fV1V4  = fV1V2 | fV3V4
	fV2    = fDCV2 | fPCNTE | fPCV2 | fGCNTE
	fV2V4  = fV2 | fV3V4
	fV3    = fGCV3 | fGCEp3NTE | fGCEp3 | fXBV3
	fV3V4  = fV3 | fBBV4
	fV4    = fBBV4
)

// OpcodeDef is one opcode as it exists on some set of versions. The
// same opcode byte may have multiple definitions with disjoint version
// masks (the format reassigned several opcodes between generations).
type OpcodeDef struct {
	Opcode     uint16 // one byte, or 0xF8xx/0xF9xx extended
	Name       string
	EditorName string // alternate mnemonic used by the classic editor
	Args       []Argument
	Flags      uint16
}

// AppliesTo reports whether this definition exists on the version.
func (d *OpcodeDef) AppliesTo(v Version) bool {
	return d.Flags&v.flag() != 0
}

// TakesArgsFromStack reports whether, on the given version, the
// instruction's arguments arrive via arg_push opcodes rather than
// being encoded inline.
func (d *OpcodeDef) TakesArgsFromStack(v Version) bool {
	return d.Flags&fArgs != 0 && v.usesArgStack()
}

// table shorthands
func args(a ...Argument) []Argument { return a }

func regsFixed(n int) Argument   { return Argument{Type: ArgRegSetFixed, Count: n} }
func regs32Fixed(n int) Argument { return Argument{Type: ArgReg32SetFixed, Count: n} }

func typedLabel16(dt DataType, name string) Argument {
	return Argument{Type: ArgLabel16, Data: dt, Name: name}
}

var (
	aLabel16    = Argument{Type: ArgLabel16}
	aLabel16Set = Argument{Type: ArgLabel16Set}
	aLabel32    = Argument{Type: ArgLabel32}
	aReg        = Argument{Type: ArgReg}
	aRegSet     = Argument{Type: ArgRegSet}
	aReg32      = Argument{Type: ArgReg32}
	aInt8       = Argument{Type: ArgInt8}
	aInt16      = Argument{Type: ArgInt16}
	aInt32      = Argument{Type: ArgInt32}
	aFloat32    = Argument{Type: ArgFloat32}
	aCString    = Argument{Type: ArgCString}

	script16       = Argument{Type: ArgLabel16, Data: DataScript}
	script16Set    = Argument{Type: ArgLabel16Set, Data: DataScript}
	script32       = Argument{Type: ArgLabel32, Data: DataScript}
	data16         = Argument{Type: ArgLabel16, Data: DataData}
	cstringLabel16 = Argument{Type: ArgLabel16, Data: DataCString}

	clientID = Argument{Type: ArgInt32, Name: "client_id"}
	itemID   = Argument{Type: ArgInt32, Name: "item_id"}
	area     = Argument{Type: ArgInt32, Name: "area"}
)

var opcodeDefs = []OpcodeDef{
	{0x0000, "nop", "", nil, fV0V4},
	{0x0001, "ret", "", nil, fV0V4 | fRet},
	{0x0002, "sync", "", nil, fV0V4},
	{0x0003, "exit", "", args(aInt32), fV0V4},
	{0x0004, "thread", "", args(script16), fV0V4},
	{0x0005, "va_start", "", nil, fV3V4},
	{0x0006, "va_end", "", nil, fV3V4},
	{0x0007, "va_call", "", args(script16), fV3V4},
	{0x0008, "let", "", args(aReg, aReg), fV0V4},
	{0x0009, "leti", "", args(aReg, aInt32), fV0V4},
	{0x000A, "leta", "", args(aReg, aReg), fV0V2},
	{0x000A, "letb", "", args(aReg, aInt8), fV3V4},
	{0x000B, "letw", "", args(aReg, aInt16), fV3V4},
	{0x000C, "leta", "", args(aReg, aReg), fV3V4},
	{0x000D, "leto", "", args(aReg, script16), fV3V4},
	{0x0010, "set", "", args(aReg), fV0V4},
	{0x0011, "clear", "", args(aReg), fV0V4},
	{0x0012, "rev", "", args(aReg), fV0V4},
	{0x0013, "gset", "", args(aInt16), fV0V4},
	{0x0014, "gclear", "", args(aInt16), fV0V4},
	{0x0015, "grev", "", args(aInt16), fV0V4},
	{0x0016, "glet", "", args(aInt16, aReg), fV0V4},
	{0x0017, "gget", "", args(aInt16, aReg), fV0V4},
	{0x0018, "add", "", args(aReg, aReg), fV0V4},
	{0x0019, "addi", "", args(aReg, aInt32), fV0V4},
	{0x001A, "sub", "", args(aReg, aReg), fV0V4},
	{0x001B, "subi", "", args(aReg, aInt32), fV0V4},
	{0x001C, "mul", "", args(aReg, aReg), fV0V4},
	{0x001D, "muli", "", args(aReg, aInt32), fV0V4},
	{0x001E, "div", "", args(aReg, aReg), fV0V4},
	{0x001F, "divi", "", args(aReg, aInt32), fV0V4},
	{0x0020, "and", "", args(aReg, aReg), fV0V4},
	{0x0021, "andi", "", args(aReg, aInt32), fV0V4},
	{0x0022, "or", "", args(aReg, aReg), fV0V4},
	{0x0023, "ori", "", args(aReg, aInt32), fV0V4},
	{0x0024, "xor", "", args(aReg, aReg), fV0V4},
	{0x0025, "xori", "", args(aReg, aInt32), fV0V4},
	{0x0026, "mod", "", args(aReg, aReg), fV3V4},
	{0x0027, "modi", "", args(aReg, aInt32), fV3V4},
	{0x0028, "jmp", "", args(script16), fV0V4},
	{0x0029, "call", "", args(script16), fV0V4},
	{0x002A, "jmp_on", "", args(script16, aRegSet), fV0V4},
	{0x002B, "jmp_off", "", args(script16, aRegSet), fV0V4},
	{0x002C, "jmp_eq", "jmp_=", args(aReg, aReg, script16), fV0V4},
	{0x002D, "jmpi_eq", "jmpi_=", args(aReg, aInt32, script16), fV0V4},
	{0x002E, "jmp_ne", "jmp_!=", args(aReg, aReg, script16), fV0V4},
	{0x002F, "jmpi_ne", "jmpi_!=", args(aReg, aInt32, script16), fV0V4},
	{0x0030, "ujmp_gt", "ujmp_>", args(aReg, aReg, script16), fV0V4},
	{0x0031, "ujmpi_gt", "ujmpi_>", args(aReg, aInt32, script16), fV0V4},
	{0x0032, "jmp_gt", "jmp_>", args(aReg, aReg, script16), fV0V4},
	{0x0033, "jmpi_gt", "jmpi_>", args(aReg, aInt32, script16), fV0V4},
	{0x0034, "ujmp_lt", "ujmp_<", args(aReg, aReg, script16), fV0V4},
	{0x0035, "ujmpi_lt", "ujmpi_<", args(aReg, aInt32, script16), fV0V4},
	{0x0036, "jmp_lt", "jmp_<", args(aReg, aReg, script16), fV0V4},
	{0x0037, "jmpi_lt", "jmpi_<", args(aReg, aInt32, script16), fV0V4},
	{0x0038, "ujmp_ge", "ujmp_>=", args(aReg, aReg, script16), fV0V4},
	{0x0039, "ujmpi_ge", "ujmpi_>=", args(aReg, aInt32, script16), fV0V4},
	{0x003A, "jmp_ge", "jmp_>=", args(aReg, aReg, script16), fV0V4},
	{0x003B, "jmpi_ge", "jmpi_>=", args(aReg, aInt32, script16), fV0V4},
	{0x003C, "ujmp_le", "ujmp_<=", args(aReg, aReg, script16), fV0V4},
	{0x003D, "ujmpi_le", "ujmpi_<=", args(aReg, aInt32, script16), fV0V4},
	{0x003E, "jmp_le", "jmp_<=", args(aReg, aReg, script16), fV0V4},
	{0x003F, "jmpi_le", "jmpi_<=", args(aReg, aInt32, script16), fV0V4},
	{0x0040, "switch_jmp", "", args(aReg, script16Set), fV0V4},
	{0x0041, "switch_call", "", args(aReg, script16Set), fV0V4},
	{0x0042, "nop_42", "", args(aInt32), fV0V2},
	{0x0042, "stack_push", "", args(aReg), fV3V4},
	{0x0043, "stack_pop", "", args(aReg), fV3V4},
	{0x0044, "stack_pushm", "", args(aReg, aInt32), fV3V4},
	{0x0045, "stack_popm", "", args(aReg, aInt32), fV3V4},
	{0x0048, "arg_pushr", "", args(aReg), fV3V4 | fPass},
	{0x0049, "arg_pushl", "", args(aInt32), fV3V4 | fPass},
	{0x004A, "arg_pushb", "", args(aInt8), fV3V4 | fPass},
	{0x004B, "arg_pushw", "", args(aInt16), fV3V4 | fPass},
	{0x004C, "arg_pusha", "", args(aReg), fV3V4 | fPass},
	{0x004D, "arg_pusho", "", args(aLabel16), fV3V4 | fPass},
	{0x004E, "arg_pushs", "", args(aCString), fV3V4 | fPass},
	{0x0050, "message", "", args(aInt32, aCString), fV0V4 | fArgs},
	{0x0051, "list", "", args(aReg, aCString), fV0V4 | fArgs},
	{0x0052, "fadein", "", nil, fV0V4},
	{0x0053, "fadeout", "", nil, fV0V4},
	{0x0054, "se", "", args(aInt32), fV0V4 | fArgs},
	{0x0055, "bgm", "", args(aInt32), fV0V4 | fArgs},
	{0x0056, "nop_56", "", nil, fV0V2},
	{0x0057, "nop_57", "", nil, fV0V2},
	{0x0058, "nop_58", "enable", args(aInt32), fV0V2},
	{0x0059, "nop_59", "disable", args(aInt32), fV0V2},
	{0x005A, "window_msg", "", args(aCString), fV0V4 | fArgs},
	{0x005B, "add_msg", "", args(aCString), fV0V4 | fArgs},
	{0x005C, "mesend", "", nil, fV0V4},
	{0x005D, "gettime", "", args(aReg), fV0V4},
	{0x005E, "winend", "", nil, fV0V4},
	{0x0060, "npc_crt", "npc_crt_V1", args(aInt32, aInt32), fV0V2 | fArgs},
	{0x0060, "npc_crt", "npc_crt_V3", args(aInt32, aInt32), fV3V4 | fArgs},
	{0x0061, "npc_stop", "", args(aInt32), fV0V4 | fArgs},
	{0x0062, "npc_play", "", args(aInt32), fV0V4 | fArgs},
	{0x0063, "npc_kill", "", args(aInt32), fV0V4 | fArgs},
	{0x0064, "npc_nont", "", nil, fV0V4},
	{0x0065, "npc_talk", "", nil, fV0V4},
	{0x0066, "npc_crp", "npc_crp_V1", args(regsFixed(6), aInt32), fV0V2},
	{0x0066, "npc_crp", "npc_crp_V3", args(regsFixed(6)), fV3V4},
	{0x0068, "create_pipe", "", args(aInt32), fV0V4 | fArgs},
	{0x0069, "p_hpstat", "p_hpstat_V1", args(aReg, clientID), fV0V2 | fArgs},
	{0x0069, "p_hpstat", "p_hpstat_V3", args(aReg, clientID), fV3V4 | fArgs},
	{0x006A, "p_dead", "p_dead_V1", args(aReg, clientID), fV0V2 | fArgs},
	{0x006A, "p_dead", "p_dead_V3", args(aReg, clientID), fV3V4 | fArgs},
	{0x006B, "p_disablewarp", "", nil, fV0V4},
	{0x006C, "p_enablewarp", "", nil, fV0V4},
	{0x006D, "p_move", "p_move_v1", args(regsFixed(5), aInt32), fV0V2},
	{0x006D, "p_move", "p_move_V3", args(regsFixed(5)), fV3V4},
	{0x006E, "p_look", "", args(clientID), fV0V4 | fArgs},
	{0x0070, "p_action_disable", "", nil, fV0V4},
	{0x0071, "p_action_enable", "", nil, fV0V4},
	{0x0072, "disable_movement1", "", args(clientID), fV0V4 | fArgs},
	{0x0073, "enable_movement1", "", args(clientID), fV0V4 | fArgs},
	{0x0074, "p_noncol", "", nil, fV0V4},
	{0x0075, "p_col", "", nil, fV0V4},
	{0x0076, "p_setpos", "", args(clientID, regsFixed(4)), fV0V4 | fArgs},
	{0x0077, "p_return_guild", "", nil, fV0V4},
	{0x0078, "p_talk_guild", "", args(clientID), fV0V4 | fArgs},
	{0x0079, "npc_talk_pl", "npc_talk_pl_V1", args(regs32Fixed(8)), fV0V2},
	{0x0079, "npc_talk_pl", "npc_talk_pl_V3", args(regsFixed(8)), fV3V4},
	{0x007A, "npc_talk_kill", "", args(aInt32), fV0V4 | fArgs},
	{0x007B, "npc_crtpk", "npc_crtpk_V1", args(aInt32, aInt32), fV0V2 | fArgs},
	{0x007B, "npc_crtpk", "npc_crtpk_V3", args(aInt32, aInt32), fV3V4 | fArgs},
	{0x007C, "npc_crppk", "npc_crppk_V1", args(regs32Fixed(7), aInt32), fV0V2},
	{0x007C, "npc_crppk", "npc_crppk_V3", args(regsFixed(7)), fV3V4},
	{0x007D, "npc_crptalk", "npc_crptalk_v1", args(regs32Fixed(6), aInt32), fV0V2},
	{0x007D, "npc_crptalk", "npc_crptalk_V3", args(regsFixed(6)), fV3V4},
	{0x007E, "p_look_at", "", args(clientID, clientID), fV0V4 | fArgs},
	{0x007F, "npc_crp_id", "npc_crp_id_V1", args(regs32Fixed(7), aInt32), fV0V2},
	{0x007F, "npc_crp_id", "npc_crp_id_v3", args(regsFixed(7)), fV3V4},
	{0x0080, "cam_quake", "", nil, fV0V4},
	{0x0081, "cam_adj", "", nil, fV0V4},
	{0x0082, "cam_zmin", "", nil, fV0V4},
	{0x0083, "cam_zmout", "", nil, fV0V4},
	{0x0084, "cam_pan", "cam_pan_V1", args(regs32Fixed(5), aInt32), fV0V2},
	{0x0084, "cam_pan", "cam_pan_V3", args(regsFixed(5)), fV3V4},
	{0x0085, "game_lev_super", "", nil, fV0V2},
	{0x0085, "nop_85", "", nil, fV3V4},
	{0x0086, "game_lev_reset", "", nil, fV0V2},
	{0x0086, "nop_86", "", nil, fV3V4},
	{0x0087, "pos_pipe", "pos_pipe_V1", args(regs32Fixed(4), aInt32), fV0V2},
	{0x0087, "pos_pipe", "pos_pipe_V3", args(regsFixed(4)), fV3V4},
	{0x0088, "if_zone_clear", "", args(aReg, regsFixed(2)), fV0V4},
	{0x0089, "chk_ene_num", "", args(aReg), fV0V4},
	{0x008A, "unhide_obj", "", args(regsFixed(3)), fV0V4},
	{0x008B, "unhide_ene", "", args(regsFixed(3)), fV0V4},
	{0x008C, "at_coords_call", "", args(regsFixed(5)), fV0V4},
	{0x008D, "at_coords_talk", "", args(regsFixed(5)), fV0V4},
	{0x008E, "npc_coords_call", "", args(regsFixed(5)), fV0V4},
	{0x008F, "party_coords_call", "", args(regsFixed(6)), fV0V4},
	{0x0090, "switch_on", "", args(aInt32), fV0V4 | fArgs},
	{0x0091, "switch_off", "", args(aInt32), fV0V4 | fArgs},
	{0x0092, "playbgm_epi", "", args(aInt32), fV0V4 | fArgs},
	{0x0093, "set_mainwarp", "", args(aInt32), fV0V4 | fArgs},
	{0x0094, "set_obj_param", "", args(regsFixed(6), aReg), fV0V4},
	{0x0095, "set_floor_handler", "", args(area, script32), fV0V2},
	{0x0095, "set_floor_handler", "", args(area, script16), fV3V4 | fArgs},
	{0x0096, "clr_floor_handler", "", args(area), fV0V4 | fArgs},
	{0x0097, "npc_check_straggle", "", args(regsFixed(9)), fV1V4},
	{0x0098, "hud_hide", "", nil, fV0V4},
	{0x0099, "hud_show", "", nil, fV0V4},
	{0x009A, "cine_enable", "", nil, fV0V4},
	{0x009B, "cine_disable", "", nil, fV0V4},
	{0x00A0, "nop_A0_debug", "", args(aInt32, aCString), fV0V4 | fArgs},
	{0x00A1, "set_qt_failure", "", args(script32), fV0V2},
	{0x00A1, "set_qt_failure", "", args(script16), fV3V4},
	{0x00A2, "set_qt_success", "", args(script32), fV0V2},
	{0x00A2, "set_qt_success", "", args(script16), fV3V4},
	{0x00A3, "clr_qt_failure", "", nil, fV0V4},
	{0x00A4, "clr_qt_success", "", nil, fV0V4},
	{0x00A5, "set_qt_cancel", "", args(script32), fV0V2},
	{0x00A5, "set_qt_cancel", "", args(script16), fV3V4},
	{0x00A6, "clr_qt_cancel", "", nil, fV0V4},
	{0x00A8, "pl_walk", "pl_walk_V1", args(regs32Fixed(4), aInt32), fV0V2},
	{0x00A8, "pl_walk", "pl_walk_V3", args(regsFixed(4)), fV3V4},
	{0x00B0, "pl_add_meseta", "", args(clientID, aInt32), fV0V4 | fArgs},
	{0x00B1, "thread_stg", "", args(script16), fV0V4},
	{0x00B2, "del_obj_param", "", args(aReg), fV0V4},
	{0x00B3, "item_create", "", args(regsFixed(3), aReg), fV0V4},
	{0x00B4, "item_create2", "", args(regsFixed(12), aReg), fV0V4},
	{0x00B5, "item_delete", "", args(aReg, regsFixed(12)), fV0V4},
	{0x00B6, "item_delete2", "", args(regsFixed(3), regsFixed(12)), fV0V4},
	{0x00B7, "item_check", "", args(regsFixed(3), aReg), fV0V4},
	{0x00B8, "setevt", "", args(aInt32), fV05V4 | fArgs},
	{0x00B9, "get_difficulty_level_v1", "get_difflvl", args(aReg), fV05V4},
	{0x00BA, "set_qt_exit", "", args(script32), fV05V2},
	{0x00BA, "set_qt_exit", "", args(script16), fV3V4},
	{0x00BB, "clr_qt_exit", "", nil, fV05V4},
	{0x00BC, "nop_BC", "", args(aCString), fV05V4},
	{0x00C0, "particle", "particle_V1", args(regs32Fixed(5), aInt32), fV05V2},
	{0x00C0, "particle", "particle_V3", args(regsFixed(5)), fV3V4},
	{0x00C1, "npc_text", "", args(aInt32, aCString), fV05V4 | fArgs},
	{0x00C2, "npc_chkwarp", "", nil, fV05V4},
	{0x00C3, "pl_pkoff", "", nil, fV05V4},
	{0x00C4, "map_designate", "", args(regsFixed(4)), fV05V4},
	{0x00C5, "masterkey_on", "", nil, fV05V4},
	{0x00C6, "masterkey_off", "", nil, fV05V4},
	{0x00C7, "window_time", "", nil, fV05V4},
	{0x00C8, "winend_time", "", nil, fV05V4},
	{0x00C9, "winset_time", "", args(aReg), fV05V4},
	{0x00CA, "getmtime", "", args(aReg), fV05V4},
	{0x00CB, "set_quest_board_handler", "", args(aInt32, script32, aCString), fV05V2},
	{0x00CB, "set_quest_board_handler", "", args(aInt32, script16, aCString), fV3V4 | fArgs},
	{0x00CC, "clear_quest_board_handler", "", args(aInt32), fV05V4 | fArgs},
	{0x00CD, "particle_id", "particle_id_V1", args(regs32Fixed(4), aInt32), fV05V2},
	{0x00CD, "particle_id", "particle_id_V3", args(regsFixed(4)), fV3V4},
	{0x00CE, "npc_crptalk_id", "npc_crptalk_id_V1", args(regs32Fixed(7), aInt32), fV05V2},
	{0x00CE, "npc_crptalk_id", "npc_crptalk_id_V3", args(regsFixed(7)), fV3V4},
	{0x00CF, "npc_lang_clean", "", nil, fV05V4},
	{0x00D0, "pl_pkon", "", nil, fV1V4},
	{0x00D1, "pl_chk_item2", "", args(regsFixed(4), aReg), fV1V4},
	{0x00D2, "enable_mainmenu", "", nil, fV1V4},
	{0x00D3, "disable_mainmenu", "", nil, fV1V4},
	{0x00D4, "start_battlebgm", "", nil, fV1V4},
	{0x00D5, "end_battlebgm", "", nil, fV1V4},
	{0x00D6, "disp_msg_qb", "", args(aCString), fV1V4 | fArgs},
	{0x00D7, "close_msg_qb", "", nil, fV1V4},
	{0x00D8, "set_eventflag", "set_eventflag_v1", args(aInt32, aInt32), fV1V2 | fArgs},
	{0x00D8, "set_eventflag", "set_eventflag_v3", args(aInt32, aInt32), fV3V4 | fArgs},
	{0x00D9, "sync_register", "sync_leti", args(aInt32, aInt32), fV1V4 | fArgs},
	{0x00DA, "set_returnhunter", "", nil, fV1V4},
	{0x00DB, "set_returncity", "", nil, fV1V4},
	{0x00DC, "load_pvr", "", nil, fV1V4},
	{0x00DD, "load_midi", "", nil, fV1V4},
	{0x00DE, "item_detect_bank", "unknownDE", args(regsFixed(6), aReg), fV1V4},
	{0x00DF, "npc_param", "npc_param_V1", args(regs32Fixed(14), aInt32), fV1V2},
	{0x00DF, "npc_param", "npc_param_V3", args(regsFixed(14), aInt32), fV3V4 | fArgs},
	{0x00E0, "pad_dragon", "", nil, fV1V4},
	{0x00E1, "clear_mainwarp", "", args(aInt32), fV1V4 | fArgs},
	{0x00E2, "pcam_param", "pcam_param_V1", args(regs32Fixed(6)), fV1V2},
	{0x00E2, "pcam_param", "pcam_param_V3", args(regsFixed(6)), fV3V4},
	{0x00E3, "start_setevt", "start_setevt_v1", args(aInt32, aInt32), fV1V2 | fArgs},
	{0x00E3, "start_setevt", "start_setevt_v3", args(aInt32, aInt32), fV3V4 | fArgs},
	{0x00E4, "warp_on", "", nil, fV1V4},
	{0x00E5, "warp_off", "", nil, fV1V4},
	{0x00E6, "get_client_id", "get_slotnumber", args(aReg), fV1V4},
	{0x00E7, "get_leader_id", "get_servernumber", args(aReg), fV1V4},
	{0x00E8, "set_eventflag2", "", args(aInt32, aReg), fV1V4 | fArgs},
	{0x00E9, "mod2", "res", args(aReg, aReg), fV1V4},
	{0x00EA, "modi2", "unknownEA", args(aReg, aInt32), fV1V4},
	{0x00EB, "enable_bgmctrl", "", args(aInt32), fV1V4 | fArgs},
	{0x00EC, "sw_send", "", args(regsFixed(3)), fV1V4},
	{0x00ED, "create_bgmctrl", "", nil, fV1V4},
	{0x00EE, "pl_add_meseta2", "", args(aInt32), fV1V4 | fArgs},
	{0x00EF, "sync_register2", "sync_let", args(aInt32, aReg32), fV1V2},
	{0x00EF, "sync_register2", "", args(aReg, aInt32), fV3V4 | fArgs},
	{0x00F0, "send_regwork", "", args(aReg32, aReg32), fV1V2},
	{0x00F1, "leti_fixed_camera", "leti_fixed_camera_V1", args(regs32Fixed(6)), fV2},
	{0x00F1, "leti_fixed_camera", "leti_fixed_camera_V3", args(regsFixed(6)), fV3V4},
	{0x00F2, "default_camera_pos1", "", nil, fV2V4},
	{0xF800, "debug_F800", "", nil, fV2},
	{0xF801, "set_chat_callback", "set_chat_callback?", args(regs32Fixed(5), aCString), fV2V4 | fArgs},
	{0xF808, "get_difficulty_level_v2", "get_difflvl2", args(aReg), fV2V4},
	{0xF809, "get_number_of_players", "get_number_of_player1", args(aReg), fV2V4},
	{0xF80A, "get_coord_of_player", "", args(regsFixed(3), aReg), fV2V4},
	{0xF80B, "enable_map", "", nil, fV2V4},
	{0xF80C, "disable_map", "", nil, fV2V4},
	{0xF80D, "map_designate_ex", "", args(regsFixed(5)), fV2V4},
	{0xF80E, "disable_weapon_drop", "unknownF80E", args(clientID), fV2V4 | fArgs},
	{0xF80F, "enable_weapon_drop", "unknownF80F", args(clientID), fV2V4 | fArgs},
	{0xF810, "ba_initial_floor", "", args(area), fV2V4 | fArgs},
	{0xF811, "set_ba_rules", "", nil, fV2V4},
	{0xF812, "ba_set_tech_disk_mode", "ba_set_tech", args(aInt32), fV2V4 | fArgs},
	{0xF813, "ba_set_weapon_and_armor_mode", "ba_set_equip", args(aInt32), fV2V4 | fArgs},
	{0xF814, "ba_set_forbid_mags", "ba_set_mag", args(aInt32), fV2V4 | fArgs},
	{0xF815, "ba_set_tool_mode", "ba_set_item", args(aInt32), fV2V4 | fArgs},
	{0xF816, "ba_set_trap_mode", "ba_set_trapmenu", args(aInt32), fV2V4 | fArgs},
	{0xF817, "ba_set_unused_F817", "unknownF817", args(aInt32), fV2V4 | fArgs},
	{0xF818, "ba_set_respawn", "", args(aInt32), fV2V4 | fArgs},
	{0xF819, "ba_set_replace_char", "ba_set_char", args(aInt32), fV2V4 | fArgs},
	{0xF81A, "ba_dropwep", "", args(aInt32), fV2V4 | fArgs},
	{0xF81B, "ba_teams", "", args(aInt32), fV2V4 | fArgs},
	{0xF81C, "ba_start", "ba_disp_msg", args(aCString), fV2V4 | fArgs},
	{0xF81D, "death_lvl_up", "", args(aInt32), fV2V4 | fArgs},
	{0xF81E, "ba_set_meseta_drop_mode", "ba_set_meseta", args(aInt32), fV2V4 | fArgs},
	{0xF820, "cmode_stage", "", args(aInt32), fV2V4 | fArgs},
	{0xF821, "nop_F821", "", args(regsFixed(9)), fV2V4},
	{0xF822, "nop_F822", "", args(aReg), fV2V4},
	{0xF823, "set_cmode_char_template", "", args(aInt32), fV2V4 | fArgs},
	{0xF824, "set_cmode_difficulty", "set_cmode_diff", args(aInt32), fV2V4 | fArgs},
	{0xF825, "exp_multiplication", "", args(regsFixed(3)), fV2V4},
	{0xF826, "if_player_alive_cm", "exp_division?", args(aReg), fV2V4},
	{0xF827, "get_user_is_dead", "get_user_is_dead?", args(aReg), fV2V4},
	{0xF828, "go_floor", "", args(aReg, aReg), fV2V4},
	{0xF829, "get_num_kills", "", args(aReg, aReg), fV2V4},
	{0xF82A, "reset_kills", "", args(aReg), fV2V4},
	{0xF82B, "unlock_door2", "", args(aInt32, aInt32), fV2V4 | fArgs},
	{0xF82C, "lock_door2", "", args(aInt32, aInt32), fV2V4 | fArgs},
	{0xF82D, "if_switch_not_pressed", "", args(regsFixed(2)), fV2V4},
	{0xF82E, "if_switch_pressed", "", args(regsFixed(3)), fV2V4},
	{0xF830, "control_dragon", "", args(aReg), fV2V4},
	{0xF831, "release_dragon", "", nil, fV2V4},
	{0xF838, "shrink", "", args(aReg), fV2V4},
	{0xF839, "unshrink", "", args(aReg), fV2V4},
	{0xF83A, "set_shrink_cam1", "", args(regsFixed(4)), fV2V4},
	{0xF83B, "set_shrink_cam2", "", args(regsFixed(4)), fV2V4},
	{0xF83C, "display_clock2", "display_clock2?", args(aReg), fV2V4},
	{0xF83D, "set_area_total", "unknownF83D", args(aInt32), fV2V4 | fArgs},
	{0xF83E, "delete_area_title", "delete_area_title?", args(aInt32), fV2V4 | fArgs},
	{0xF840, "load_npc_data", "", nil, fV2V4},
	{0xF841, "get_npc_data", "", args(typedLabel16(DataPlayerVisualConfig, "visual_config")), fV2V4},
	{0xF848, "give_damage_score", "", args(regsFixed(3)), fV2V4},
	{0xF849, "take_damage_score", "", args(regsFixed(3)), fV2V4},
	{0xF84A, "enemy_give_score", "unk_score_F84A", args(regsFixed(3)), fV2V4},
	{0xF84B, "enemy_take_score", "unk_score_F84B", args(regsFixed(3)), fV2V4},
	{0xF84C, "kill_score", "", args(regsFixed(3)), fV2V4},
	{0xF84D, "death_score", "", args(regsFixed(3)), fV2V4},
	{0xF84E, "enemy_kill_score", "unk_score_F84E", args(regsFixed(3)), fV2V4},
	{0xF84F, "enemy_death_score", "", args(regsFixed(3)), fV2V4},
	{0xF850, "meseta_score", "", args(regsFixed(3)), fV2V4},
	{0xF851, "ba_set_trap_count", "unknownF851", args(regsFixed(2)), fV2V4},
	{0xF852, "ba_set_target", "unknownF852", args(aInt32), fV2V4 | fArgs},
	{0xF853, "reverse_warps", "", nil, fV2V4},
	{0xF854, "unreverse_warps", "", nil, fV2V4},
	{0xF855, "set_ult_map", "", nil, fV2V4},
	{0xF856, "unset_ult_map", "", nil, fV2V4},
	{0xF857, "set_area_title", "", args(aCString), fV2V4 | fArgs},
	{0xF858, "ba_show_self_traps", "BA_Show_Self_Traps", nil, fV2V4},
	{0xF859, "ba_hide_self_traps", "BA_Hide_Self_Traps", nil, fV2V4},
	{0xF85A, "equip_item", "equip_item_v2", args(regs32Fixed(4)), fV2},
	{0xF85A, "equip_item", "equip_item_v3", args(regsFixed(4)), fV3V4},
	{0xF85B, "unequip_item", "unequip_item_V2", args(clientID, aInt32), fV2 | fArgs},
	{0xF85B, "unequip_item", "unequip_item_V3", args(clientID, aInt32), fV3V4 | fArgs},
	{0xF85C, "qexit2", "QEXIT2", args(aInt32), fV2V4},
	{0xF85D, "set_allow_item_flags", "unknownF85D", args(aInt32), fV2V4 | fArgs},
	{0xF85E, "ba_enable_sonar", "unknownF85E", args(aInt32), fV2V4 | fArgs},
	{0xF85F, "ba_use_sonar", "unknownF85F", args(aInt32), fV2V4 | fArgs},
	{0xF860, "clear_score_announce", "unknownF860", nil, fV2V4},
	{0xF861, "set_score_announce", "unknownF861", args(aInt32), fV2V4 | fArgs},
	{0xF862, "give_s_rank_weapon", "", args(aReg32, aReg32, aCString), fV2},
	{0xF862, "give_s_rank_weapon", "", args(aInt32, aReg, aCString), fV3V4 | fArgs},
	{0xF863, "get_mag_levels", "", args(regs32Fixed(4)), fV2},
	{0xF863, "get_mag_levels", "", args(regsFixed(4)), fV3V4},
	{0xF864, "set_cmode_rank_result", "cmode_rank", args(aInt32, aCString), fV2V4 | fArgs},
	{0xF865, "award_item_name", "award_item_name?", nil, fV2V4},
	{0xF866, "award_item_select", "award_item_select?", nil, fV2V4},
	{0xF867, "award_item_give_to", "award_item_give_to?", args(aReg), fV2V4},
	{0xF868, "set_cmode_rank_threshold", "set_cmode_rank", args(aReg, aReg), fV2V4},
	{0xF869, "check_rank_time", "", args(aReg, aReg), fV2V4},
	{0xF86A, "item_create_cmode", "", args(regsFixed(6), aReg), fV2V4},
	{0xF86B, "ba_set_box_drop_area", "ba_box_drops", args(aReg), fV2V4},
	{0xF86C, "award_item_ok", "award_item_ok?", args(aReg), fV2V4},
	{0xF86D, "ba_set_trapself", "", nil, fV2V4},
	{0xF86E, "ba_clear_trapself", "unknownF86E", nil, fV2V4},
	{0xF86F, "ba_set_lives", "", args(aInt32), fV2V4 | fArgs},
	{0xF870, "ba_set_max_tech_level", "ba_set_tech_lvl", args(aInt32), fV2V4 | fArgs},
	{0xF871, "ba_set_char_level", "ba_set_lvl", args(aInt32), fV2V4 | fArgs},
	{0xF872, "ba_set_time_limit", "", args(aInt32), fV2V4 | fArgs},
	{0xF873, "dark_falz_is_dead", "boss_is_dead?", args(aReg), fV2V4},
	{0xF874, "set_cmode_rank_override", "", args(aInt32, aCString), fV2V4 | fArgs},
	{0xF875, "enable_stealth_suit_effect", "", args(aReg), fV2V4},
	{0xF876, "disable_stealth_suit_effect", "", args(aReg), fV2V4},
	{0xF877, "enable_techs", "", args(aReg), fV2V4},
	{0xF878, "disable_techs", "", args(aReg), fV2V4},
	{0xF879, "get_gender", "", args(aReg, aReg), fV2V4},
	{0xF87A, "get_chara_class", "", args(aReg, regsFixed(2)), fV2V4},
	{0xF87B, "take_slot_meseta", "", args(regsFixed(2), aReg), fV2V4},
	{0xF87C, "get_guild_card_file_creation_time", "", args(aReg), fV2V4},
	{0xF87D, "kill_player", "", args(aReg), fV2V4},
	{0xF87E, "get_serial_number", "", args(aReg), fV2V4},
	{0xF87F, "get_eventflag", "read_guildcard_flag", args(aReg, aReg), fV2V4},
	{0xF880, "set_trap_damage", "unknownF880", args(regsFixed(3)), fV2V4},
	{0xF881, "get_pl_name", "get_pl_name?", args(aReg), fV2V4},
	{0xF882, "get_pl_job", "", args(aReg), fV2V4},
	{0xF883, "get_player_proximity", "unknownF883", args(regsFixed(2), aReg), fV2V4},
	{0xF884, "set_eventflag16", "", args(aInt32, aReg), fV2},
	{0xF884, "set_eventflag16", "", args(aInt32, aInt32), fV3V4 | fArgs},
	{0xF885, "set_eventflag32", "", args(aInt32, aReg), fV2},
	{0xF885, "set_eventflag32", "", args(aInt32, aInt32), fV3V4 | fArgs},
	{0xF886, "ba_get_place", "", args(aReg, aReg), fV2V4},
	{0xF887, "ba_get_score", "", args(aReg, aReg), fV2V4},
	{0xF888, "enable_win_pfx", "ba_close_msg", nil, fV2V4},
	{0xF889, "disable_win_pfx", "", nil, fV2V4},
	{0xF88A, "get_player_status", "", args(aReg, aReg), fV2V4},
	{0xF88B, "send_mail", "", args(aReg, aCString), fV2V4 | fArgs},
	{0xF88C, "get_game_version", "", args(aReg), fV2V4},
	{0xF88D, "chl_set_timerecord", "chl_set_timerecord?", args(aReg), fV2 | fV3},
	{0xF88D, "chl_set_timerecord", "chl_set_timerecord?", args(aReg, aReg), fV4},
	{0xF88E, "chl_get_timerecord", "chl_get_timerecord?", args(aReg), fV2V4},
	{0xF88F, "set_cmode_grave_rates", "", args(regsFixed(20)), fV2V4},
	{0xF890, "clear_mainwarp_all", "unknownF890", nil, fV2V4},
	{0xF891, "load_enemy_data", "", args(aInt32), fV2V4 | fArgs},
	{0xF892, "get_physical_data", "", args(typedLabel16(DataPlayerStats, "stats")), fV2V4},
	{0xF893, "get_attack_data", "", args(typedLabel16(DataAttackData, "attack_data")), fV2V4},
	{0xF894, "get_resist_data", "", args(typedLabel16(DataResistData, "resist_data")), fV2V4},
	{0xF895, "get_movement_data", "", args(typedLabel16(DataMovementData, "movement_data")), fV2V4},
	{0xF896, "get_eventflag16", "", args(aReg, aReg), fV2V4},
	{0xF897, "get_eventflag32", "", args(aReg, aReg), fV2V4},
	{0xF898, "shift_left", "", args(aReg, aReg), fV2V4},
	{0xF899, "shift_right", "", args(aReg, aReg), fV2V4},
	{0xF89A, "get_random", "", args(regsFixed(2), aReg), fV2V4},
	{0xF89B, "reset_map", "", nil, fV2V4},
	{0xF89C, "disp_chl_retry_menu", "", args(aReg), fV2V4},
	{0xF89D, "chl_reverser", "chl_reverser?", nil, fV2V4},
	{0xF89E, "ba_forbid_scape_dolls", "unknownF89E", args(aInt32), fV2V4 | fArgs},
	{0xF89F, "player_recovery", "unknownF89F", args(aReg), fV2V4},
	{0xF8A0, "disable_bosswarp_option", "unknownF8A0", nil, fV2V4},
	{0xF8A1, "enable_bosswarp_option", "unknownF8A1", nil, fV2V4},
	{0xF8A2, "is_bosswarp_opt_disabled", "", args(aReg), fV2V4},
	{0xF8A3, "load_serial_number_to_flag_buf", "init_online_key?", nil, fV2V4},
	{0xF8A4, "write_flag_buf_to_event_flags", "encrypt_gc_entry_auto", args(aReg), fV2V4},
	{0xF8A5, "set_chat_callback_no_filter", "", args(regsFixed(5)), fV2V4},
	{0xF8A6, "set_symbol_chat_collision", "", args(regsFixed(10)), fV2V4},
	{0xF8A7, "set_shrink_size", "", args(aReg, regsFixed(3)), fV2V4},
	{0xF8A8, "death_tech_lvl_up2", "", args(aInt32), fV2V4 | fArgs},
	{0xF8A9, "vol_opt_is_dead", "unknownF8A9", args(aReg), fV2V4},
	{0xF8AA, "is_there_grave_message", "", args(aReg), fV2V4},
	{0xF8AB, "get_ba_record", "", args(regsFixed(7)), fV2V4},
	{0xF8AC, "get_cmode_prize_rank", "", args(aReg), fV2V4},
	{0xF8AD, "get_number_of_players2", "", args(aReg), fV2V4},
	{0xF8AE, "party_has_name", "", args(aReg), fV2V4},
	{0xF8AF, "someone_has_spoken", "", args(aReg), fV2V4},
	{0xF8B0, "read1", "", args(aReg, aReg), fV2},
	{0xF8B0, "read1", "", args(aReg, aInt32), fV3V4 | fArgs},
	{0xF8B1, "read2", "", args(aReg, aReg), fV2},
	{0xF8B1, "read2", "", args(aReg, aInt32), fV3V4 | fArgs},
	{0xF8B2, "read4", "", args(aReg, aReg), fV2},
	{0xF8B2, "read4", "", args(aReg, aInt32), fV3V4 | fArgs},
	{0xF8B3, "write1", "", args(aReg, aReg), fV2},
	{0xF8B3, "write1", "", args(aInt32, aInt32), fV3V4 | fArgs},
	{0xF8B4, "write2", "", args(aReg, aReg), fV2},
	{0xF8B4, "write2", "", args(aInt32, aInt32), fV3V4 | fArgs},
	{0xF8B5, "write4", "", args(aReg, aReg), fV2},
	{0xF8B5, "write4", "", args(aInt32, aInt32), fV3V4 | fArgs},
	{0xF8B6, "check_for_hacking", "", args(aReg), fV2V4},
	{0xF8B7, "unknown_F8B7", "", args(aReg), fV2V4},
	{0xF8B8, "disable_retry_menu", "unknownF8B8", nil, fV2V4},
	{0xF8B9, "chl_recovery", "chl_recovery?", nil, fV2V4},
	{0xF8BA, "load_guild_card_file_creation_time_to_flag_buf", "", nil, fV2V4},
	{0xF8BB, "write_flag_buf_to_event_flags2", "", args(aReg), fV2V4},
	{0xF8BC, "set_episode", "", args(aInt32), fV3V4 | fSetEpisode},
	{0xF8C0, "file_dl_req", "", args(aInt32, aCString), fV3 | fArgs},
	{0xF8C0, "nop_F8C0", "", args(aInt32, aCString), fV4 | fArgs},
	{0xF8C1, "get_dl_status", "", args(aReg), fV3},
	{0xF8C1, "nop_F8C1", "", args(aReg), fV4},
	{0xF8C2, "prepare_gba_rom_from_download", "gba_unknown4?", nil, fGCV3 | fGCEp3NTE | fGCEp3},
	{0xF8C2, "nop_F8C2", "", nil, fXBV3 | fV4},
	{0xF8C3, "start_or_update_gba_joyboot", "get_gba_state?", args(aReg), fGCV3 | fGCEp3NTE | fGCEp3},
	{0xF8C3, "return_0_F8C3", "", args(aReg), fXBV3},
	{0xF8C3, "nop_F8C3", "", args(aReg), fV4},
	{0xF8C4, "congrats_msg_multi_cm", "unknownF8C4", args(aReg), fV3},
	{0xF8C4, "nop_F8C4", "", args(aReg), fV4},
	{0xF8C5, "stage_end_multi_cm", "unknownF8C5", args(aReg), fV3},
	{0xF8C5, "nop_F8C5", "", args(aReg), fV4},
	{0xF8C6, "qexit", "QEXIT", nil, fV3V4},
	{0xF8C7, "use_animation", "", args(aReg, aReg), fV3V4},
	{0xF8C8, "stop_animation", "", args(aReg), fV3V4},
	{0xF8C9, "run_to_coord", "", args(regsFixed(4), aReg), fV3V4},
	{0xF8CA, "set_slot_invincible", "", args(aReg, aReg), fV3V4},
	{0xF8CB, "clear_slot_invincible", "unknownF8CB", args(aReg), fV3V4},
	{0xF8CC, "set_slot_poison", "", args(aReg), fV3V4},
	{0xF8CD, "set_slot_paralyze", "", args(aReg), fV3V4},
	{0xF8CE, "set_slot_shock", "", args(aReg), fV3V4},
	{0xF8CF, "set_slot_freeze", "", args(aReg), fV3V4},
	{0xF8D0, "set_slot_slow", "", args(aReg), fV3V4},
	{0xF8D1, "set_slot_confuse", "", args(aReg), fV3V4},
	{0xF8D2, "set_slot_shifta", "", args(aReg), fV3V4},
	{0xF8D3, "set_slot_deband", "", args(aReg), fV3V4},
	{0xF8D4, "set_slot_jellen", "", args(aReg), fV3V4},
	{0xF8D5, "set_slot_zalure", "", args(aReg), fV3V4},
	{0xF8D6, "fleti_fixed_camera", "", args(regsFixed(6)), fV3V4 | fArgs},
	{0xF8D7, "fleti_locked_camera", "", args(aInt32, regsFixed(3)), fV3V4 | fArgs},
	{0xF8D8, "default_camera_pos2", "", nil, fV3V4},
	{0xF8D9, "set_motion_blur", "", nil, fV3V4},
	{0xF8DA, "set_screen_bw", "set_screen_b&w", nil, fV3V4},
	{0xF8DB, "get_vector_from_path", "unknownF8DB", args(aInt32, aFloat32, aFloat32, aInt32, regsFixed(4), script16), fV3V4 | fArgs},
	{0xF8DC, "npc_action_string", "NPC_action_string", args(aReg, aReg, cstringLabel16), fV3V4},
	{0xF8DD, "get_pad_cond", "", args(aReg, aReg), fV3V4},
	{0xF8DE, "get_button_cond", "", args(aReg, aReg), fV3V4},
	{0xF8DF, "freeze_enemies", "", nil, fV3V4},
	{0xF8E0, "unfreeze_enemies", "", nil, fV3V4},
	{0xF8E1, "freeze_everything", "", nil, fV3V4},
	{0xF8E2, "unfreeze_everything", "", nil, fV3V4},
	{0xF8E3, "restore_hp", "", args(aReg), fV3V4},
	{0xF8E4, "restore_tp", "", args(aReg), fV3V4},
	{0xF8E5, "close_chat_bubble", "", args(aReg), fV3V4},
	{0xF8E6, "move_coords_object", "unknownF8E6", args(aReg, regsFixed(3)), fV3V4},
	{0xF8E7, "at_coords_call_ex", "unknownF8E7", args(regsFixed(5), aReg), fV3V4},
	{0xF8E8, "at_coords_talk_ex", "unknownF8E8", args(regsFixed(5), aReg), fV3V4},
	{0xF8E9, "walk_to_coord_call_ex", "unknownF8E9", args(regsFixed(5), aReg), fV3V4},
	{0xF8EA, "col_npcinr_ex", "unknownF8EA", args(regsFixed(6), aReg), fV3V4},
	{0xF8EB, "set_obj_param_ex", "unknownF8EB", args(regsFixed(6), aReg), fV3V4},
	{0xF8EC, "col_plinaw_ex", "unknownF8EC", args(regsFixed(9), aReg), fV3V4},
	{0xF8ED, "animation_check", "", args(aReg, aReg), fV3V4},
	{0xF8EE, "call_image_data", "", args(aInt32, typedLabel16(DataImageData, "")), fV3V4 | fArgs},
	{0xF8EF, "nop_F8EF", "unknownF8EF", nil, fV3V4},
	{0xF8F0, "turn_off_bgm_p2", "", nil, fV3V4},
	{0xF8F1, "turn_on_bgm_p2", "", nil, fV3V4},
	{0xF8F2, "unknown_F8F2", "load_unk_data", args(aInt32, aFloat32, aFloat32, aInt32, regsFixed(4), typedLabel16(DataF8F2, "")), fV3V4 | fArgs},
	{0xF8F3, "particle2", "", args(regsFixed(3), aInt32, aFloat32), fV3V4 | fArgs},
	{0xF901, "dec2float", "", args(aReg, aReg), fV3V4},
	{0xF902, "float2dec", "", args(aReg, aReg), fV3V4},
	{0xF903, "flet", "", args(aReg, aReg), fV3V4},
	{0xF904, "fleti", "", args(aReg, aFloat32), fV3V4},
	{0xF908, "fadd", "", args(aReg, aReg), fV3V4},
	{0xF909, "faddi", "", args(aReg, aFloat32), fV3V4},
	{0xF90A, "fsub", "", args(aReg, aReg), fV3V4},
	{0xF90B, "fsubi", "", args(aReg, aFloat32), fV3V4},
	{0xF90C, "fmul", "", args(aReg, aReg), fV3V4},
	{0xF90D, "fmuli", "", args(aReg, aFloat32), fV3V4},
	{0xF90E, "fdiv", "", args(aReg, aReg), fV3V4},
	{0xF90F, "fdivi", "", args(aReg, aFloat32), fV3V4},
	{0xF910, "get_total_deaths", "get_unknown_count?", args(clientID, aReg), fV3V4 | fArgs},
	{0xF911, "get_stackable_item_count", "", args(regsFixed(4), aReg), fV3V4},
	{0xF912, "freeze_and_hide_equip", "", nil, fV3V4},
	{0xF913, "thaw_and_show_equip", "", nil, fV3V4},
	{0xF914, "set_palettex_callback", "set_paletteX_callback", args(clientID, script16), fV3V4 | fArgs},
	{0xF915, "activate_palettex", "activate_paletteX", args(clientID), fV3V4 | fArgs},
	{0xF916, "enable_palettex", "enable_paletteX", args(clientID), fV3V4 | fArgs},
	{0xF917, "restore_palettex", "restore_paletteX", args(clientID), fV3V4 | fArgs},
	{0xF918, "disable_palettex", "disable_paletteX", args(clientID), fV3V4 | fArgs},
	{0xF919, "get_palettex_activated", "get_paletteX_activated", args(clientID, aReg), fV3V4 | fArgs},
	{0xF91A, "get_unknown_palettex_status", "get_unknown_paletteX_status?", args(clientID, aInt32, aReg), fV3V4 | fArgs},
	{0xF91B, "disable_movement2", "", args(clientID), fV3V4 | fArgs},
	{0xF91C, "enable_movement2", "", args(clientID), fV3V4 | fArgs},
	{0xF91D, "get_time_played", "", args(aReg), fV3V4},
	{0xF91E, "get_guildcard_total", "", args(aReg), fV3V4},
	{0xF91F, "get_slot_meseta", "", args(aReg), fV3V4},
	{0xF920, "get_player_level", "", args(clientID, aReg), fV3V4 | fArgs},
	{0xF921, "get_section_id", "get_Section_ID", args(clientID, aReg), fV3V4 | fArgs},
	{0xF922, "get_player_hp", "", args(clientID, regsFixed(4)), fV3V4 | fArgs},
	{0xF923, "get_floor_number", "", args(clientID, regsFixed(2)), fV3V4 | fArgs},
	{0xF924, "get_coord_player_detect", "", args(regsFixed(3), regsFixed(4)), fV3V4},
	{0xF925, "read_counter", "read_global_flag", args(aInt32, aReg), fV3V4 | fArgs},
	{0xF926, "write_counter", "write_global_flag", args(aInt32, aInt32), fV3V4 | fArgs},
	{0xF927, "item_detect_bank2", "unknownF927", args(regsFixed(4), aReg), fV3V4},
	{0xF928, "floor_player_detect", "", args(regsFixed(4)), fV3V4},
	{0xF929, "prepare_gba_rom_from_disk", "read_disk_file?", args(aCString), fV3 | fArgs},
	{0xF929, "nop_F929", "", args(aCString), fV4 | fArgs},
	{0xF92A, "open_pack_select", "", nil, fV3V4},
	{0xF92B, "item_select", "", args(aReg), fV3V4},
	{0xF92C, "get_item_id", "", args(aReg), fV3V4},
	{0xF92D, "color_change", "", args(aInt32, aInt32, aInt32, aInt32, aInt32), fV3V4 | fArgs},
	{0xF92E, "send_statistic", "send_statistic?", args(aInt32, aInt32, aInt32, aInt32, aInt32, aInt32, aInt32, aInt32), fV3V4 | fArgs},
	{0xF92F, "gba_write_identifiers", "unknownF92F", args(aInt32, aInt32), fV3 | fArgs},
	{0xF92F, "nop_F92F", "", args(aInt32, aInt32), fV4 | fArgs},
	{0xF930, "chat_box", "", args(aInt32, aInt32, aInt32, aInt32, aInt32, aCString), fV3V4 | fArgs},
	{0xF931, "chat_bubble", "", args(aInt32, aCString), fV3V4 | fArgs},
	{0xF932, "set_episode2", "", args(aReg), fV3V4},
	{0xF933, "item_create_multi_cm", "unknownF933", args(regsFixed(7)), fV3},
	{0xF933, "nop_F933", "", args(regsFixed(7)), fV4},
	{0xF934, "scroll_text", "", args(aInt32, aInt32, aInt32, aInt32, aInt32, aFloat32, aReg, aCString), fV3V4 | fArgs},
	{0xF935, "gba_create_dl_graph", "gba_unknown1", nil, fGCV3 | fGCEp3NTE | fGCEp3},
	{0xF935, "nop_F935", "", nil, fXBV3 | fV4},
	{0xF936, "gba_destroy_dl_graph", "gba_unknown2", nil, fGCV3 | fGCEp3NTE | fGCEp3},
	{0xF936, "nop_F936", "", nil, fXBV3 | fV4},
	{0xF937, "gba_update_dl_graph", "gba_unknown3", nil, fGCV3 | fGCEp3NTE | fGCEp3},
	{0xF937, "nop_F937", "", nil, fXBV3 | fV4},
	{0xF938, "add_damage_to", "add_damage_to?", args(aInt32, aInt32), fV3V4 | fArgs},
	{0xF939, "item_delete3", "", args(aInt32), fV3V4 | fArgs},
	{0xF93A, "get_item_info", "", args(itemID, regsFixed(12)), fV3V4 | fArgs},
	{0xF93B, "item_packing1", "", args(itemID), fV3V4 | fArgs},
	{0xF93C, "item_packing2", "", args(itemID, aInt32), fV3V4 | fArgs},
	{0xF93D, "get_lang_setting", "get_lang_setting?", args(aReg), fV3V4 | fArgs},
	{0xF93E, "prepare_statistic", "prepare_statistic?", args(aInt32, aInt32, aInt32), fV3V4 | fArgs},
	{0xF93F, "keyword_detect", "", nil, fV3V4},
	{0xF940, "keyword", "", args(aReg, aInt32, aCString), fV3V4 | fArgs},
	{0xF941, "get_guildcard_num", "", args(clientID, aReg), fV3V4 | fArgs},
	{0xF942, "get_recent_symbol_chat", "", args(aInt32, regsFixed(15)), fV3V4 | fArgs},
	{0xF943, "create_symbol_chat_capture_buffer", "", nil, fV3V4},
	{0xF944, "get_item_stackability", "get_wrap_status", args(itemID, aReg), fV3V4 | fArgs},
	{0xF945, "initial_floor", "", args(aInt32), fV3V4 | fArgs},
	{0xF946, "sin", "", args(aReg, aInt32), fV3V4 | fArgs},
	{0xF947, "cos", "", args(aReg, aInt32), fV3V4 | fArgs},
	{0xF948, "tan", "", args(aReg, aInt32), fV3V4 | fArgs},
	{0xF949, "atan2_int", "", args(aReg, aFloat32, aFloat32), fV3V4 | fArgs},
	{0xF94A, "olga_flow_is_dead", "boss_is_dead2?", args(aReg), fV3V4},
	{0xF94B, "particle_effect_nc", "particle3", args(regsFixed(4)), fV3V4},
	{0xF94C, "player_effect_nc", "unknownF94C", args(regsFixed(4)), fV3V4},
	{0xF94D, "has_ep3_save_file", "", args(aReg), fGCV3 | fArgs},
	{0xF94D, "give_card", "is_there_cardbattle?", args(aReg), fGCEp3NTE},
	{0xF94D, "give_or_take_card", "is_there_cardbattle?", args(regsFixed(2)), fGCEp3},
	{0xF94D, "unknown_F94D", "", args(aInt32, aReg), fXBV3 | fArgs},
	{0xF94D, "nop_F94D", "", nil, fV4},
	{0xF94E, "nop_F94E", "", nil, fV4},
	{0xF94F, "nop_F94F", "", nil, fV4},
	{0xF950, "bb_p2_menu", "BB_p2_menu", args(aInt32), fV4 | fArgs},
	{0xF951, "bb_map_designate", "BB_Map_Designate", args(aInt8, aInt8, aInt8, aInt8, aInt8), fV4},
	{0xF952, "bb_get_number_in_pack", "BB_get_number_in_pack", args(aReg), fV4},
	{0xF953, "bb_swap_item", "BB_swap_item", args(aInt32, aInt32, aInt32, aInt32, aInt32, aInt32, script16, script16), fV4 | fArgs},
	{0xF954, "bb_check_wrap", "BB_check_wrap", args(aInt32, aReg), fV4 | fArgs},
	{0xF955, "bb_exchange_pd_item", "BB_exchange_PD_item", args(aInt32, aInt32, aInt32, aLabel16, aLabel16), fV4 | fArgs},
	{0xF956, "bb_exchange_pd_srank", "BB_exchange_PD_srank", args(aInt32, aInt32, aInt32, aInt32, aInt32, aLabel16, aLabel16), fV4 | fArgs},
	{0xF957, "bb_exchange_pd_percent", "BB_exchange_PD_special", args(aInt32, aInt32, aInt32, aInt32, aInt32, aInt32, aLabel16, aLabel16), fV4 | fArgs},
	{0xF958, "bb_exchange_ps_percent", "BB_exchange_PD_percent", args(aInt32, aInt32, aInt32, aInt32, aInt32, aInt32, aLabel16, aLabel16), fV4 | fArgs},
	{0xF959, "bb_set_ep4_boss_can_escape", "unknownF959", args(aInt32), fV4 | fArgs},
	{0xF95A, "bb_is_ep4_boss_dying", "", args(aReg), fV4},
	{0xF95B, "bb_send_6xD9", "", args(aInt32, aInt32, aInt32, aInt32, aLabel16, aLabel16), fV4 | fArgs},
	{0xF95C, "bb_exchange_slt", "BB_exchange_SLT", args(aInt32, aInt32, aInt32, aInt32), fV4 | fArgs},
	{0xF95D, "bb_exchange_pc", "BB_exchange_PC", nil, fV4},
	{0xF95E, "bb_box_create_bp", "BB_box_create_BP", args(aInt32, aFloat32, aFloat32), fV4 | fArgs},
	{0xF95F, "bb_exchange_pt", "BB_exchage_PT", args(aInt32, aInt32, aInt32, aInt32, aInt32), fV4 | fArgs},
	{0xF960, "bb_send_6xE2", "unknownF960", args(aInt32), fV4 | fArgs},
	{0xF961, "bb_get_6xE3_status", "unknownF961", args(aReg), fV4},
}
