package store

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shnupta/scc/internal/connection"
)

// Backend persists the full connection list.
type Backend interface {
	Load() ([]connection.Connection, error)
	Save([]connection.Connection) error
}

// ChangeWatcher is implemented by backends that can tell whether their
// storage was modified by someone else.
type ChangeWatcher interface {
	Changed() bool
}

// SchemaReporter is implemented by backends that know their record layout.
type SchemaReporter interface {
	Schema() Schema
}

// Schema selects the record layout of the connections file.
type Schema string

const (
	// SchemaExtended stores name, hostname, group, user and password per line,
	// separated by connection.FieldSeparator.
	SchemaExtended Schema = "extended"
	// SchemaSimple stores one connection name per line.
	SchemaSimple Schema = "simple"
)

// FileBackend stores connections in a single flat file.
type FileBackend struct {
	path   string
	schema Schema
	last   []byte // contents as last read or written by this process
}

// NewFileBackend creates a FileBackend for path using schema.
func NewFileBackend(path string, schema Schema) *FileBackend {
	if schema != SchemaSimple {
		schema = SchemaExtended
	}
	return &FileBackend{path: path, schema: schema}
}

// Path returns the connections file path.
func (b *FileBackend) Path() string {
	return b.path
}

// Schema returns the record layout of the file.
func (b *FileBackend) Schema() Schema {
	return b.schema
}

// Load reads and decodes the connections file.
// A missing file is an empty list, not an error.
func (b *FileBackend) Load() ([]connection.Connection, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			b.last = nil
			return nil, nil
		}
		return nil, fmt.Errorf("read connections: %w", err)
	}
	conns, err := Decode(data, b.schema)
	if err != nil {
		return nil, fmt.Errorf("decode connections: %w", err)
	}
	b.last = data
	return conns, nil
}

// Save atomically rewrites the connections file.
func (b *FileBackend) Save(conns []connection.Connection) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	data := Encode(conns, b.schema)

	// Write to temp file then rename for atomicity.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	b.last = data
	return nil
}

// Changed reports whether the file on disk differs from what this backend
// last read or wrote.
func (b *FileBackend) Changed() bool {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return os.IsNotExist(err) && b.last != nil
	}
	return !bytes.Equal(data, b.last)
}

// Decode parses connections file contents. Extended records that do not
// split into exactly five fields are skipped. Simple records keep only the
// first occurrence of each name. Lines of any length are accepted.
func Decode(data []byte, schema Schema) ([]connection.Connection, error) {
	var conns []connection.Connection
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		switch schema {
		case SchemaSimple:
			if line == "" || seen[line] {
				continue
			}
			seen[line] = true
			conns = append(conns, connection.Connection{Name: line})
		default:
			fields := strings.Split(line, connection.FieldSeparator)
			if len(fields) != 5 {
				continue
			}
			conns = append(conns, connection.FromFields([5]string(fields)))
		}
	}
	return conns, scanner.Err()
}

// Encode renders connections in the given schema, one record per line.
func Encode(conns []connection.Connection, schema Schema) []byte {
	var buf bytes.Buffer
	for _, c := range conns {
		if schema == SchemaSimple {
			buf.WriteString(c.Name)
		} else {
			f := c.Fields()
			buf.WriteString(strings.Join(f[:], connection.FieldSeparator))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
