package script

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("questasm.script")

// Catalog is a validated, immutable set of opcode definitions with
// per-version lookup indexes. The zero value is not usable; construct
// one with NewCatalog or use Default.
type Catalog struct {
	defs     []OpcodeDef
	byOpcode [numVersions]map[uint16]*OpcodeDef
	byName   [numVersions]map[string]*OpcodeDef
}

// NewCatalog builds the per-version indexes and rejects any definition
// set in which two definitions claim the same opcode or mnemonic on
// the same version.
func NewCatalog(defs []OpcodeDef) (*Catalog, error) {
	c := &Catalog{defs: defs}
	for v := VersionDCNTE; v < numVersions; v++ {
		vf := v.flag()
		byOp := make(map[uint16]*OpcodeDef)
		byName := make(map[string]*OpcodeDef)
		for i := range defs {
			def := &defs[i]
			if def.Flags&vf == 0 {
				continue
			}
			if _, dup := byOp[def.Opcode]; dup {
				return nil, fmt.Errorf("duplicate definition for opcode %04X on %s", def.Opcode, v)
			}
			byOp[def.Opcode] = def
			if _, dup := byName[def.Name]; dup {
				return nil, fmt.Errorf("duplicate definition for mnemonic %q on %s", def.Name, v)
			}
			byName[def.Name] = def
			if def.EditorName != "" {
				if _, dup := byName[def.EditorName]; dup {
					return nil, fmt.Errorf("duplicate definition for mnemonic %q on %s", def.EditorName, v)
				}
				byName[def.EditorName] = def
			}
		}
		c.byOpcode[v] = byOp
		c.byName[v] = byName
	}
	return c, nil
}

// Lookup returns the definition of an opcode on a version, or nil if
// the opcode does not exist there.
func (c *Catalog) Lookup(v Version, opcode uint16) *OpcodeDef {
	if v >= numVersions {
		return nil
	}
	return c.byOpcode[v][opcode]
}

// LookupName resolves a mnemonic (primary or editor name) on a
// version, or nil.
func (c *Catalog) LookupName(v Version, name string) *OpcodeDef {
	if v >= numVersions {
		return nil
	}
	return c.byName[v][name]
}

// SelfCheck logs per-version opcode and mnemonic counts. It exists for
// the CLI's --check mode.
func (c *Catalog) SelfCheck() {
	for _, v := range QuestVersions() {
		log.Infof("version %s has %d opcodes with %d mnemonics", v, len(c.byOpcode[v]), len(c.byName[v]))
	}
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the process-wide catalog built from the full opcode
// definition table. The table is static, so a validation failure here
// is a programming error and panics.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := NewCatalog(opcodeDefs)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
