package langs

import "testing"

func TestRegistryResolvesByExtension(t *testing.T) {
	r := NewRegistry()
	l, err := r.ByPath("main.go")
	if err != nil {
		t.Fatalf("ByPath: %v", err)
	}
	if l.Name != "go" {
		t.Errorf("Name = %q, want go", l.Name)
	}
}

func TestRegistryResolvesByAlias(t *testing.T) {
	r := NewRegistry()
	l, err := r.ByName("js")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if l.Name != "javascript" {
		t.Errorf("Name = %q, want javascript", l.Name)
	}
}

func TestRegistryUnknownExtensionErrors(t *testing.T) {
	r := NewRegistry()
	if _, err := r.ByPath("a.unknown"); err == nil {
		t.Error("ByPath on an unregistered extension should error")
	}
}

func TestDualViewLanguagesFlagged(t *testing.T) {
	r := NewRegistry()
	json, err := r.ByName("json")
	if err != nil {
		t.Fatalf("ByName(json): %v", err)
	}
	if !json.DualView {
		t.Error("json should be flagged DualView")
	}
	goLang, err := r.ByName("go")
	if err != nil {
		t.Fatalf("ByName(go): %v", err)
	}
	if goLang.DualView {
		t.Error("go should not be flagged DualView")
	}
}

func TestNewSourceNormalizesCRLF(t *testing.T) {
	src, err := NewSource("a.go", []byte("a\r\nb\r\n"))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if string(src.Bytes) != "a\nb\n" {
		t.Errorf("Bytes = %q, want %q", src.Bytes, "a\nb\n")
	}
}

func TestNewSourceRejectsInvalidUTF8(t *testing.T) {
	if _, err := NewSource("a.go", []byte{0xff, 0xfe}); err == nil {
		t.Error("NewSource should reject invalid UTF-8")
	}
}

func TestSourcePositionIsOneIndexed(t *testing.T) {
	src, err := NewSource("a.go", []byte("ab\ncd"))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	line, col := src.Position(0)
	if line != 1 || col != 1 {
		t.Errorf("Position(0) = %d:%d, want 1:1", line, col)
	}
	line, col = src.Position(3)
	if line != 2 || col != 1 {
		t.Errorf("Position(3) = %d:%d, want 2:1", line, col)
	}
}

func TestSourceTextReturnsHalfOpenByteRange(t *testing.T) {
	src, err := NewSource("a.go", []byte("hello"))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if got := src.Text(1, 4); got != "ell" {
		t.Errorf("Text(1,4) = %q, want ell", got)
	}
}
