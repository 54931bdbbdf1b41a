package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	writeFile(t, path, `
[package]
name = "demo"
version = "0.1.0"

[build]
sources = ["src"]
output = "out"
jobs = 2
`)
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" || m.Package.Version != "0.1.0" {
		t.Errorf("package = %+v", m.Package)
	}
	if m.Build.Jobs != 2 || len(m.Build.Sources) != 1 {
		t.Errorf("build = %+v", m.Build)
	}
	if m.OutputRoot() != filepath.Join(dir, "out") {
		t.Errorf("output root = %q", m.OutputRoot())
	}
}

func TestLoadManifestMissingPackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	writeFile(t, path, `[build]
jobs = 1
`)
	if _, err := Load(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadManifestMissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	writeFile(t, path, `[package]
version = "1.0.0"
`)
	if _, err := Load(path); !errors.Is(err, ErrPackageNameMissing) {
		t.Fatalf("err = %v", err)
	}
}

func TestFindWalksUp(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestName), "[package]\nname = \"demo\"\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(dir, ManifestName) {
		t.Errorf("path = %q", path)
	}

	root, ok, err := FindRoot(nested)
	if err != nil || !ok || root != dir {
		t.Errorf("root = %q ok=%v err=%v", root, ok, err)
	}
}

func TestSourceFilesScansDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestName), "[package]\nname = \"demo\"\n")
	writeFile(t, filepath.Join(dir, "app.cin"), "class A {}")
	writeFile(t, filepath.Join(dir, "pkg", "b.cin"), "class B {}")
	writeFile(t, filepath.Join(dir, "pkg", "notes.txt"), "skip me")

	m, err := Load(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatal(err)
	}
	files, err := m.SourceFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v", files)
	}
	for _, f := range files {
		if filepath.Ext(f) != SourceExt {
			t.Errorf("unexpected file %q", f)
		}
	}
}
