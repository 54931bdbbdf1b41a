// Package project locates and parses cinder.toml, the project manifest
// naming the package and the source files that make up a build.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the CLI looks for when no sources are given.
const ManifestName = "cinder.toml"

// SourceExt is the extension of compilable source files.
const SourceExt = ".cin"

// Manifest is a parsed cinder.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Build   BuildSection   `toml:"build"`

	// Dir is where the manifest was found; source paths resolve
	// relative to it.
	Dir string `toml:"-"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// BuildSection is the [build] table. Sources entries may be files or
// directories; directories are scanned recursively for source files.
type BuildSection struct {
	Sources []string `toml:"sources"`
	Output  string   `toml:"output"`
	Jobs    int      `toml:"jobs"`
}

var (
	// ErrPackageSectionMissing indicates [package] is absent.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates [package].name is absent or blank.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// Load parses a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if strings.TrimSpace(m.Package.Name) == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	m.Dir = filepath.Dir(abs)
	return &m, nil
}

// Find walks up from startDir to locate the nearest cinder.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing the nearest cinder.toml.
func FindRoot(startDir string) (root string, ok bool, err error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(path), true, nil
}

// SourceFiles expands the [build].sources entries into a sorted,
// de-duplicated list of source files. With no entries the manifest
// directory itself is scanned.
func (m *Manifest) SourceFiles() ([]string, error) {
	entries := m.Build.Sources
	if len(entries) == 0 {
		entries = []string{"."}
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, entry := range entries {
		path := entry
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.Dir, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("source entry %q: %w", entry, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(p) == SourceExt {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("source entry %q: %w", entry, err)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found", SourceExt)
	}
	sort.Strings(files)
	return files, nil
}

// OutputRoot resolves the [build].output directory, defaulting to the
// manifest directory.
func (m *Manifest) OutputRoot() string {
	out := strings.TrimSpace(m.Build.Output)
	if out == "" {
		return m.Dir
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(m.Dir, out)
}
