package connection

import (
	"errors"
	"strings"
)

// FieldSeparator separates the five fields of a record in the connections file.
const FieldSeparator = "\x1f"

// ErrInvalidField is returned when a field contains the record separator or a newline.
var ErrInvalidField = errors.New("field contains separator or newline")

// Connection is a saved ssh profile.
type Connection struct {
	Name     string
	Hostname string
	Group    string
	User     string
	Password string // stored in clear text
}

// Fields returns the connection fields in record order:
// name, hostname, group, user, password.
func (c Connection) Fields() [5]string {
	return [5]string{c.Name, c.Hostname, c.Group, c.User, c.Password}
}

// FromFields builds a Connection from fields in record order.
func FromFields(f [5]string) Connection {
	return Connection{
		Name:     f[0],
		Hostname: f[1],
		Group:    f[2],
		User:     f[3],
		Password: f[4],
	}
}

// Validate reports ErrInvalidField if any field cannot be stored on a single record line.
func (c Connection) Validate() error {
	for _, f := range c.Fields() {
		if strings.ContainsAny(f, FieldSeparator+"\n\r") {
			return ErrInvalidField
		}
	}
	return nil
}

// Matches reports whether the lower-cased query is a substring of the name,
// hostname, group or user. The password is never searched.
func (c Connection) Matches(query string) bool {
	q := strings.ToLower(query)
	for _, f := range []string{c.Name, c.Hostname, c.Group, c.User} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Command returns the shell command that opens the connection, e.g.
// "sshpass -p secret ssh admin@10.0.0.2". The sshpass clause is omitted
// when no password is stored.
func (c Connection) Command() string {
	target := c.Hostname
	if c.User != "" {
		target = c.User + "@" + c.Hostname
	}
	cmd := "ssh " + target
	if c.Password != "" {
		cmd = "sshpass -p " + c.Password + " " + cmd
	}
	return cmd
}
