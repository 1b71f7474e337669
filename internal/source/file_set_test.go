package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.vt", []byte("$a = 1;\n$b = 22;\n"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start of file", 0, LineCol{Line: 1, Col: 1}},
		{"middle of first line", 5, LineCol{Line: 1, Col: 6}},
		{"newline belongs to its line", 7, LineCol{Line: 1, Col: 8}},
		{"start of second line", 8, LineCol{Line: 2, Col: 1}},
		{"middle of second line", 11, LineCol{Line: 2, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
			}
		})
	}
}

func TestResolveNoTrailingNewline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.vt", []byte("a\nbc"))

	start, end := fs.Resolve(Span{File: id, Start: 2, End: 4})
	if (start != LineCol{Line: 2, Col: 1}) {
		t.Errorf("start: got %+v", start)
	}
	if (end != LineCol{Line: 2, Col: 3}) {
		t.Errorf("end: got %+v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.vt", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d): got %q, want %q", tt.line, got, tt.want)
		}
	}

	if n := f.LineCount(); n != 3 {
		t.Errorf("LineCount: got %d, want 3", n)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatal("expected CRLF normalization to report a change")
	}
	if string(normalized) != "a\nb\rc\n" {
		t.Errorf("got %q", string(normalized))
	}

	same, changed := normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Error("expected no change for LF-only content")
	}
	if string(same) != "plain\n" {
		t.Errorf("got %q", string(same))
	}
}

func TestBOMRemoval(t *testing.T) {
	content := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(content)
	if !hadBOM {
		t.Fatal("expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("got %q", string(withoutBOM))
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.vt")
	if err := os.WriteFile(path, []byte("$a = 1;\r\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if string(f.Content) != "$a = 1;\n" {
		t.Errorf("content: got %q", string(f.Content))
	}
}

func TestFileVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.vt", []byte("version 1"), 0)
	id2 := fs.Add("test.vt", []byte("version 2"), 0)
	if id1 == id2 {
		t.Fatal("expected distinct FileIDs for repeated Add")
	}

	latest, ok := fs.GetLatest("test.vt")
	if !ok {
		t.Fatal("expected file to exist")
	}
	if latest != id2 {
		t.Errorf("latest: got %d, want %d", latest, id2)
	}

	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Error("expected different content hashes")
	}
}

func TestGetUnknownIDReturnsNil(t *testing.T) {
	fs := NewFileSet()

	// An I/O failure leaves the set empty while its diagnostic still
	// carries the zero FileID.
	if f := fs.Get(FileID(0)); f != nil {
		t.Fatalf("Get on empty set: got %+v, want nil", f)
	}

	id := fs.AddVirtual("test.vt", []byte("$a = 1;\n"))
	if fs.Get(id) == nil {
		t.Fatal("Get of a known ID returned nil")
	}
	if f := fs.Get(id + 1); f != nil {
		t.Fatalf("Get past the last ID: got %+v, want nil", f)
	}
}
