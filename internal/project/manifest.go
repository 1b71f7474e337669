// Package project locates and parses the volt.toml manifest that marks
// a project root and carries tool defaults.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "volt.toml"

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

// ErrManifestNotFound indicates that no volt.toml was found walking up
// from the starting directory.
var ErrManifestNotFound = errors.New("volt.toml not found")

// Manifest is a parsed volt.toml.
type Manifest struct {
	// Path is where the manifest was read from.
	Path string

	Package PackageSection
	Check   CheckSection
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name  string `toml:"name"`
	Entry string `toml:"entry"`
}

// CheckSection is the optional [check] table with front-end defaults.
type CheckSection struct {
	MaxDiagnostics int `toml:"max_diagnostics"`
	Jobs           int `toml:"jobs"`
}

type manifestFile struct {
	Package PackageSection `toml:"package"`
	Check   CheckSection   `toml:"check"`
}

// Load parses the manifest at an explicit path.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: [package].name must not be empty", path)
	}
	if cfg.Package.Entry == "" {
		cfg.Package.Entry = "main.vt"
	}
	return &Manifest{
		Path:    path,
		Package: cfg.Package,
		Check:   cfg.Check,
	}, nil
}

// Find walks up from startDir looking for volt.toml and parses the first
// one it finds. On success the manifest's directory is the project root.
func Find(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w (searched up from %s)", ErrManifestNotFound, startDir)
		}
		dir = parent
	}
}

// Root returns the directory containing the manifest.
func (m *Manifest) Root() string {
	return filepath.Dir(m.Path)
}
