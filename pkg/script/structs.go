package script

import "fmt"

// Sizes of the fixed structures that typed label arguments point at.
const (
	playerVisualConfigSize = 0x50
	playerStatsSize        = 0x24
	resistDataSize         = 0x20
	attackDataSize         = 0x30
	movementDataSize       = 0x30
	f8f2EntrySize          = 0x10
)

func structSize(dt DataType) int {
	switch dt {
	case DataPlayerVisualConfig:
		return playerVisualConfigSize
	case DataPlayerStats:
		return playerStatsSize
	case DataResistData:
		return resistDataSize
	case DataAttackData:
		return attackDataSize
	case DataMovementData:
		return movementDataSize
	}
	return 0
}

var sectionIDNames = []string{
	"Viridia", "Greenill", "Skyly", "Bluefull", "Purplenum",
	"Pinkal", "Redria", "Oran", "Yellowboze", "Whitill",
}

var charClassNames = []string{
	"HUmar", "HUnewearl", "HUcast", "RAmar", "RAcast", "RAcaseal",
	"FOmarl", "FOnewm", "FOnewearl", "HUcaseal", "FOmar", "RAmarl",
}

func nameForSectionID(id uint8) string {
	if int(id) < len(sectionIDNames) {
		return sectionIDNames[id]
	}
	return "unknown"
}

func nameForCharClass(id uint8) string {
	if int(id) < len(charClassNames) {
		return charClassNames[id]
	}
	return "unknown"
}

// structLine formats one field row of a struct interpretation.
func structLine(offset int, name, value string) string {
	return fmt.Sprintf("  %04X  %-16s  %s", offset, name, value)
}

func renderPlayerVisualConfig(lines *[]string, data []byte, base int, language uint8) {
	r := newByteReader(data)
	add := func(name, value string) {
		*lines = append(*lines, structLine(base+r.Offset(), name, value))
	}
	*lines = append(*lines, "  // As PlayerVisualConfig")

	*lines = append(*lines, structLine(base, "name", escapeString(decodeNarrow(data[:0x10], language))))
	r.Bytes(0x10)
	nameColor := r.U32()
	*lines = append(*lines, structLine(base+0x10, "name_color", fmt.Sprintf("%08X", nameColor)))
	a2 := data[r.Offset() : r.Offset()+8]
	add("a2", formatDataString(a2))
	r.Bytes(8)
	extraModel := data[r.Offset()]
	add("extra_model", fmt.Sprintf("%02X", extraModel))
	r.U8()
	unused := data[r.Offset() : r.Offset()+0x0F]
	add("unused", formatDataString(unused))
	r.Bytes(0x0F)
	addAt := func(name string, f func() string) {
		off := base + r.Offset()
		*lines = append(*lines, structLine(off, name, f()))
	}
	addAt("name_color_cs", func() string { return fmt.Sprintf("%08X", r.U32()) })
	addAt("section_id", func() string { v := r.U8(); return fmt.Sprintf("%02X (%s)", v, nameForSectionID(v)) })
	addAt("char_class", func() string { v := r.U8(); return fmt.Sprintf("%02X (%s)", v, nameForCharClass(v)) })
	addAt("validation_flags", func() string { return fmt.Sprintf("%02X", r.U8()) })
	addAt("version", func() string { return fmt.Sprintf("%02X", r.U8()) })
	addAt("class_flags", func() string { return fmt.Sprintf("%08X", r.U32()) })
	addAt("costume", func() string { return fmt.Sprintf("%04X", r.U16()) })
	addAt("skin", func() string { return fmt.Sprintf("%04X", r.U16()) })
	addAt("face", func() string { return fmt.Sprintf("%04X", r.U16()) })
	addAt("head", func() string { return fmt.Sprintf("%04X", r.U16()) })
	addAt("hair", func() string { return fmt.Sprintf("%04X", r.U16()) })
	addAt("hair_color", func() string { return fmt.Sprintf("%04X, %04X, %04X", r.U16(), r.U16(), r.U16()) })
	addAt("proportion", func() string { return fmt.Sprintf("%g, %g", r.F32(), r.F32()) })
}

func renderPlayerStats(lines *[]string, data []byte, base int) {
	r := newByteReader(data)
	*lines = append(*lines, "  // As PlayerStats")
	u16Field := func(name string) {
		off := base + r.Offset()
		v := r.U16()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%04X /* %d */", v, v)))
	}
	for _, name := range []string{"atp", "mst", "evp", "hp", "dfp", "ata", "lck", "esp"} {
		u16Field(name)
	}
	floatField := func(name string) {
		off := base + r.Offset()
		bits := r.U32()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%08X /* %g */", bits, f32frombits(bits))))
	}
	floatField("height")
	floatField("a3")
	off := base + r.Offset()
	level := r.U32()
	*lines = append(*lines, structLine(off, "level", fmt.Sprintf("%08X /* level %d */", level, level+1)))
	u32Field := func(name string) {
		off := base + r.Offset()
		v := r.U32()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%08X /* %d */", v, v)))
	}
	u32Field("experience")
	u32Field("meseta")
}

func renderResistData(lines *[]string, data []byte, base int) {
	r := newByteReader(data)
	*lines = append(*lines, "  // As ResistData")
	u16Field := func(name string) {
		off := base + r.Offset()
		v := r.U16()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%04X /* %d */", v, v)))
	}
	for _, name := range []string{"evp_bonus", "efr", "eic", "eth", "elt", "edk"} {
		u16Field(name)
	}
	u32Field := func(name string) {
		off := base + r.Offset()
		v := r.U32()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%08X /* %d */", v, v)))
	}
	for _, name := range []string{"a6", "a7", "a8", "a9", "dfp_bonus"} {
		u32Field(name)
	}
}

func renderAttackData(lines *[]string, data []byte, base int) {
	r := newByteReader(data)
	*lines = append(*lines, "  // As AttackData")
	s16Field := func(name string) {
		off := base + r.Offset()
		v := int16(r.U16())
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%04X /* %d */", uint16(v), v)))
	}
	u16Field := func(name string) {
		off := base + r.Offset()
		v := r.U16()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%04X /* %d */", v, v)))
	}
	u32Field := func(name string) {
		off := base + r.Offset()
		v := r.U32()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%08X /* %d */", v, v)))
	}
	floatField := func(name string) {
		off := base + r.Offset()
		bits := r.U32()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%08X /* %g */", bits, f32frombits(bits))))
	}
	s16Field("a1")
	s16Field("atp")
	s16Field("ata_bonus")
	u16Field("a4")
	floatField("distance_x")
	off := base + r.Offset()
	angle := r.U32()
	*lines = append(*lines, structLine(off, "angle_x", fmt.Sprintf("%08X /* %d/65536 */", angle, angle)))
	floatField("distance_y")
	u16Field("a8")
	u16Field("a9")
	u16Field("a10")
	u16Field("a11")
	for _, name := range []string{"a12", "a13", "a14", "a15", "a16"} {
		u32Field(name)
	}
}

func renderMovementData(lines *[]string, data []byte, base int) {
	r := newByteReader(data)
	*lines = append(*lines, "  // As MovementData")
	floatField := func(name string) {
		off := base + r.Offset()
		bits := r.U32()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%08X /* %g */", bits, f32frombits(bits))))
	}
	u32Field := func(name string) {
		off := base + r.Offset()
		v := r.U32()
		*lines = append(*lines, structLine(off, name, fmt.Sprintf("%08X /* %d */", v, v)))
	}
	floatField("idle_move_speed")
	floatField("idle_anim_speed")
	floatField("move_speed")
	floatField("animation_speed")
	floatField("a1")
	floatField("a2")
	for _, name := range []string{"a3", "a4", "a5", "a6", "a7", "a8"} {
		u32Field(name)
	}
}

func renderStruct(lines *[]string, dt DataType, data []byte, base int, language uint8) {
	switch dt {
	case DataPlayerVisualConfig:
		renderPlayerVisualConfig(lines, data, base, language)
	case DataPlayerStats:
		renderPlayerStats(lines, data, base)
	case DataResistData:
		renderResistData(lines, data, base)
	case DataAttackData:
		renderAttackData(lines, data, base)
	case DataMovementData:
		renderMovementData(lines, data, base)
	}
}
