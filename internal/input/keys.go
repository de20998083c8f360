// Package input defines the key codes, mouse state and polling interface
// the window engine consumes, plus a queue-backed Source that drivers and
// tests feed.
package input

import (
	"fmt"
	"strings"
)

// Key is a virtual key code. Letters and digits use their upper-case
// ASCII values.
type Key int

const (
	KeyNone      Key = 0
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = 32
	KeyPageUp    Key = 33
	KeyPageDown  Key = 34
	KeyEnd       Key = 35
	KeyHome      Key = 36
	KeyLeft      Key = 37
	KeyUp        Key = 38
	KeyRight     Key = 39
	KeyDown      Key = 40
	KeyDelete    Key = 46
	Key0         Key = 48
	Key9         Key = 57
	KeyA         Key = 65
	KeyZ         Key = 90
	// KeyOther is produced for printable characters that have no virtual
	// key of their own (punctuation); LastChar carries the character.
	KeyOther Key = 255
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeySpace:     "space",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyEnd:       "end",
	KeyHome:      "home",
	KeyLeft:      "left",
	KeyUp:        "up",
	KeyRight:     "right",
	KeyDown:      "down",
	KeyDelete:    "delete",
	KeyOther:     "other",
}

// String returns the name ParseKey accepts.
func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if (k >= KeyA && k <= KeyZ) || (k >= Key0 && k <= Key9) {
		return strings.ToLower(string(rune(k)))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey converts a key name ("tab", "esc", "a", "7") to a Key.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "escape":
		return KeyEscape, nil
	case "return":
		return KeyEnter, nil
	case " ":
		return KeySpace, nil
	}
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	if len(name) == 1 {
		if k, ok := KeyForRune(rune(name[0])); ok {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("input: unknown key %q", name)
}

// KeyForRune returns the virtual key that produces r.
func KeyForRune(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z':
		return Key(r), true
	case r >= '0' && r <= '9':
		return Key(r), true
	case r == ' ':
		return KeySpace, true
	case r == '\t':
		return KeyTab, true
	case r == '\r' || r == '\n':
		return KeyEnter, true
	case r == 0x1b:
		return KeyEscape, true
	case r == '\b' || r == 0x7f:
		return KeyBackspace, true
	case r > ' ' && r < 0x7f:
		return KeyOther, true
	}
	return KeyNone, false
}
