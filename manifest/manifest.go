// Package manifest handles quest.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/questtools/questasm/pkg/script"
)

// Manifest represents a quest.toml project configuration.
type Manifest struct {
	Quest Quest `toml:"quest"`
	Build Build `toml:"build"`

	// Dir is the directory containing the quest.toml file (set at load time).
	Dir string `toml:"-"`
}

// Quest contains quest metadata used for bookkeeping; the assembly
// source remains authoritative for the values written into binaries.
type Quest struct {
	Name   string `toml:"name"`
	Number int    `toml:"number"`
}

// Build configures how quest sources are assembled.
type Build struct {
	Entry      string   `toml:"entry"`
	IncludeDir string   `toml:"include-dir"`
	OutputDir  string   `toml:"output-dir"`
	Versions   []string `toml:"versions"`
}

// Load parses a quest.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "quest.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Build.Entry == "" {
		m.Build.Entry = "quest.asm"
	}
	if m.Build.OutputDir == "" {
		m.Build.OutputDir = "build"
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a quest.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "quest.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// EntryPath returns the absolute path to the assembly entry file.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Dir, m.Build.Entry)
}

// IncludePath returns the directory .include_bin and .include_native
// filenames resolve against. It defaults to the manifest directory.
func (m *Manifest) IncludePath() string {
	if m.Build.IncludeDir == "" {
		return m.Dir
	}
	return filepath.Join(m.Dir, m.Build.IncludeDir)
}

// Targets resolves the configured version names. An empty list means
// every version that supports quests.
func (m *Manifest) Targets() ([]script.Version, error) {
	if len(m.Build.Versions) == 0 {
		return script.QuestVersions(), nil
	}
	out := make([]script.Version, 0, len(m.Build.Versions))
	for _, name := range m.Build.Versions {
		v, err := script.ParseVersion(name)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filepath.Join(m.Dir, "quest.toml"), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// OutputPath returns the output filename for one target version,
// derived from the entry filename.
func (m *Manifest) OutputPath(v script.Version) string {
	base := strings.TrimSuffix(filepath.Base(m.Build.Entry), filepath.Ext(m.Build.Entry))
	name := fmt.Sprintf("%s.%s.bin", base, strings.ToLower(v.String()))
	return filepath.Join(m.Dir, m.Build.OutputDir, name)
}
