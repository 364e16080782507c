package session

// Key is a raw key code as delivered by the terminal. Printable characters
// are their ASCII value; navigation keys use the curses key numbers.
type Key int

const (
	KeyCtrlC     Key = 3
	KeyCtrlD     Key = 4
	KeyCtrlE     Key = 5
	KeyCtrlH     Key = 8
	KeyTab       Key = 9
	KeyLineFeed  Key = 10
	KeyReturn    Key = 13
	KeyCtrlT     Key = 20
	KeyCtrlU     Key = 21
	KeyEsc       Key = 27
	KeyDEL       Key = 127
	KeyDown      Key = 258
	KeyUp        Key = 259
	KeyLeft      Key = 260
	KeyRight     Key = 261
	KeyBackspace Key = 263
	KeyEnter     Key = 343
)

// Shortcuts in browse mode.
const (
	KeyNew       = KeyCtrlT
	KeyEdit      = KeyCtrlE
	KeyDuplicate = KeyCtrlU
	KeyDelete    = KeyCtrlD
	KeyQuit      = KeyCtrlC
)

// IsPrintable reports whether k is in the printable ASCII range 32-126.
func (k Key) IsPrintable() bool {
	return k >= 32 && k <= 126
}

func (k Key) isEnter() bool {
	return k == KeyEnter || k == KeyLineFeed || k == KeyReturn
}

func (k Key) isBackspace() bool {
	return k == KeyBackspace || k == KeyDEL || k == KeyCtrlH
}
