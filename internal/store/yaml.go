package store

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shnupta/scc/internal/connection"
)

// yamlConnection is the portable form used by scc import/export.
type yamlConnection struct {
	Name     string `yaml:"name"`
	Hostname string `yaml:"hostname"`
	Group    string `yaml:"group,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"password,omitempty"`
}

type yamlFile struct {
	Connections []yamlConnection `yaml:"connections"`
}

// ExportYAML writes entries as a YAML document.
func ExportYAML(w io.Writer, entries []Entry) error {
	var f yamlFile
	for _, e := range entries {
		f.Connections = append(f.Connections, yamlConnection(e.Connection))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// ImportYAML reads connections from a YAML document written by ExportYAML.
// Entries without a name are dropped.
func ImportYAML(r io.Reader) ([]connection.Connection, error) {
	var f yamlFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	var conns []connection.Connection
	for _, c := range f.Connections {
		if c.Name == "" {
			continue
		}
		conns = append(conns, connection.Connection(c))
	}
	return conns, nil
}

// Import adds every connection whose name is not already stored.
func (s *Store) Import(conns []connection.Connection) (added, skipped int) {
	for _, c := range conns {
		if s.AddUnique(c) {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped
}
