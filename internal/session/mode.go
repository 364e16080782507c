package session

import (
	"unicode/utf8"

	"github.com/shnupta/scc/internal/store"
)

// ModeKind names the active input mode.
type ModeKind int

const (
	ModeBrowse ModeKind = iota
	ModeAdd
	ModeEdit
)

func (k ModeKind) String() string {
	switch k {
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	default:
		return "browse"
	}
}

// Form field indices.
const (
	FieldName = iota
	FieldHostname
	FieldGroup
	FieldUser
	FieldPassword
	FieldCount
)

// FieldLabels are the form labels, indexed by field.
var FieldLabels = [FieldCount]string{"Name", "Hostname", "Group", "User", "Password"}

// Mode is the active modal input handler: Browse, *AddForm or *EditForm.
// Form buffers only exist while a form mode is active.
type Mode interface {
	Kind() ModeKind
}

// Browse is the connection list mode.
type Browse struct{}

func (Browse) Kind() ModeKind { return ModeBrowse }

// Form holds the text-entry buffers shared by the add and edit forms.
type Form struct {
	Fields [FieldCount]string
	Focus  int
}

// AddForm creates a new connection on confirm.
type AddForm struct {
	Form
}

func (*AddForm) Kind() ModeKind { return ModeAdd }

// EditForm overwrites Target on confirm.
type EditForm struct {
	Target store.ID
	Form
}

func (*EditForm) Kind() ModeKind { return ModeEdit }

func (f *Form) next() { f.Focus = (f.Focus + 1) % FieldCount }

func (f *Form) prev() { f.Focus = (f.Focus + FieldCount - 1) % FieldCount }

func (f *Form) appendChar(k Key) { f.Fields[f.Focus] += string(rune(k)) }

func (f *Form) popChar() { f.Fields[f.Focus] = dropLastRune(f.Fields[f.Focus]) }

// dropLastRune removes the last UTF-8 encoded rune of s.
func dropLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
