package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"
entry = "src/start.vt"

[check]
max_diagnostics = 25
jobs = 4
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Package.Name != "demo" || m.Package.Entry != "src/start.vt" {
		t.Fatalf("package section mismatch: %+v", m.Package)
	}
	if m.Check.MaxDiagnostics != 25 || m.Check.Jobs != 4 {
		t.Fatalf("check section mismatch: %+v", m.Check)
	}
}

func TestLoadDefaultsEntry(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"demo\"\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Package.Entry != "main.vt" {
		t.Fatalf("entry = %q, want default main.vt", m.Package.Entry)
	}
}

func TestLoadRejectsMissingPackage(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check]\njobs = 1\n")

	if _, err := Load(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, err := Find(nested)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if m.Root() != root {
		t.Fatalf("Root = %s, want %s", m.Root(), root)
	}
}

func TestFindReportsMissing(t *testing.T) {
	if _, err := Find(t.TempDir()); !errors.Is(err, ErrManifestNotFound) {
		t.Fatalf("err = %v, want ErrManifestNotFound", err)
	}
}
