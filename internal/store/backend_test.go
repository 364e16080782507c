package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shnupta/scc/internal/connection"
)

func TestFileBackendLoadNonexistentFile(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "missing"), SchemaExtended)
	conns, err := b.Load()
	if err != nil {
		t.Fatalf("Load from nonexistent file should succeed, got: %v", err)
	}
	if len(conns) != 0 {
		t.Fatalf("expected no connections, got %v", conns)
	}
}

func TestFileBackendSkipsMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections")
	if err := os.WriteFile(path, []byte("name\x1fhost\x1fgroup\x1fuser\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewStore(NewFileBackend(path, SchemaExtended))
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestFileBackendPersistReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "connections")
	s := NewStore(NewFileBackend(path, SchemaExtended))
	s.Add(conn("db1", "10.0.0.1", "prod", "admin", ""))
	s.Add(conn("db2", "10.0.0.2", "prod", "admin", "secret"))
	if s.Err() != nil {
		t.Fatalf("save error: %v", s.Err())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "db1\x1f10.0.0.1\x1fprod\x1fadmin\x1f\ndb2\x1f10.0.0.2\x1fprod\x1fadmin\x1fsecret\n"
	if string(raw) != want {
		t.Errorf("file = %q, want %q", raw, want)
	}

	s2 := NewStore(NewFileBackend(path, SchemaExtended))
	if err := s2.Load(); err != nil {
		t.Fatal(err)
	}
	e, ok := s2.FindByName("db2")
	if !ok || e.Command() != "sshpass -p secret ssh admin@10.0.0.2" {
		t.Errorf("FindByName(db2) = %+v, %v", e, ok)
	}
}

func TestFileBackendFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections")
	b := NewFileBackend(path, SchemaExtended)
	if err := b.Save([]connection.Connection{conn("a", "", "", "", "pw")}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestFileBackendChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections")
	b := NewFileBackend(path, SchemaExtended)
	if b.Changed() {
		t.Error("Changed() = true for a missing file never seen")
	}

	if err := b.Save([]connection.Connection{conn("a", "", "", "", "")}); err != nil {
		t.Fatal(err)
	}
	if b.Changed() {
		t.Error("Changed() = true right after our own save")
	}

	if err := os.WriteFile(path, []byte("b\x1f\x1f\x1f\x1f\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if !b.Changed() {
		t.Error("Changed() = false after an external write")
	}

	if _, err := b.Load(); err != nil {
		t.Fatal(err)
	}
	if b.Changed() {
		t.Error("Changed() = true after reloading")
	}

	os.Remove(path)
	if !b.Changed() {
		t.Error("Changed() = false after the file was removed")
	}
}

func TestDecodeSimpleSchema(t *testing.T) {
	got, err := Decode([]byte("alpha\n\nbeta\nalpha\n"), SchemaSimple)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []connection.Connection{{Name: "alpha"}, {Name: "beta"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode(simple) = %+v, want %+v", got, want)
	}
}

func TestEncodeSimpleSchema(t *testing.T) {
	got := string(Encode([]connection.Connection{conn("a", "h", "g", "u", "p"), conn("b", "", "", "", "")}, SchemaSimple))
	if got != "a\nb\n" {
		t.Errorf("Encode(simple) = %q, want %q", got, "a\nb\n")
	}
}

func TestDecodeExtendedSchema(t *testing.T) {
	data := "a\x1fh\x1fg\x1fu\x1fp\r\n" +
		"too\x1ffew\n" +
		"too\x1fmany\x1f1\x1f2\x1f3\x1f4\n" +
		"\n"
	got, err := Decode([]byte(data), SchemaExtended)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []connection.Connection{conn("a", "h", "g", "u", "p")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode(extended) = %+v, want %+v", got, want)
	}
}

func TestFileBackendLongRecordKeepsFollowingRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connections")
	b := NewFileBackend(path, SchemaExtended)
	long := strings.Repeat("x", 70*1024)
	want := []connection.Connection{
		conn("before", "h1", "", "", ""),
		conn("big", "h2", "", "", long),
		conn("after", "h3", "", "", ""),
	}
	if err := os.WriteFile(path, Encode(want, SchemaExtended), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewStore(b)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if !s.Add(conn("new", "h4", "", "", "")) || s.Err() != nil {
		t.Fatalf("Add failed: %v", s.Err())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(data, SchemaExtended)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 4 || got[1].Password != long || got[2].Name != "after" {
		t.Errorf("file after Add holds %d records", len(got))
	}
}
