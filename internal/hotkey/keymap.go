package hotkey

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is a terminal keydown translated into modifier flags plus the
// canonical name of the physical key. Shifted characters resolve to the
// physical key identity: '!' becomes Shift+1, '{' becomes Shift+[.
type KeyEvent struct {
	Mods Modifier
	Key  string
}

// Combination converts the event into a Combination candidate.
func (e KeyEvent) Combination() Combination {
	return Combination{Mods: e.Mods, Key: e.Key}
}

// shiftedRunes maps US-layout shifted characters back to their physical key.
var shiftedRunes = map[rune]string{
	'!': "1", '@': "2", '#': "3", '$': "4", '%': "5",
	'^': "6", '&': "7", '*': "8", '(': "9", ')': "0",
	'_': "-", '+': "=", '{': "[", '}': "]", '|': `\`,
	':': ";", '"': "'", '<': ",", '>': ".", '?': "/", '~': "`",
}

// bubbleteaKeys maps Bubble Tea key names to canonical key names. Terminals
// never report the Cmd key, so combinations holding ModCmd only ever come
// from parsed persisted strings.
var bubbleteaKeys = map[string]string{
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"esc":       "Escape",
	"delete":    "Delete",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	" ":         "Space",
	"space":     "Space",
}

// FromKeyMsg translates a Bubble Tea key message into a KeyEvent. The second
// return value is false when the keydown carries no recognized key (multi-rune
// paste input, unnamed control sequences).
func FromKeyMsg(msg tea.KeyMsg) (KeyEvent, bool) {
	var ev KeyEvent
	if msg.Alt {
		ev.Mods |= ModOption
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return KeyEvent{}, false
		}
		return runeEvent(ev.Mods, msg.Runes[0])
	case tea.KeySpace:
		ev.Key = "Space"
		return ev, true
	}

	name := msg.String()
	for {
		switch {
		case strings.HasPrefix(name, "ctrl+"):
			ev.Mods |= ModCtrl
			name = name[len("ctrl+"):]
		case strings.HasPrefix(name, "alt+"):
			ev.Mods |= ModOption
			name = name[len("alt+"):]
		case strings.HasPrefix(name, "shift+"):
			ev.Mods |= ModShift
			name = name[len("shift+"):]
		default:
			if key, ok := bubbleteaKeys[name]; ok {
				ev.Key = key
				return ev, true
			}
			if key, ok := CanonicalKey(name); ok {
				ev.Key = key
				return ev, true
			}
			return KeyEvent{}, false
		}
	}
}

func runeEvent(mods Modifier, r rune) (KeyEvent, bool) {
	switch {
	case unicode.IsUpper(r):
		return KeyEvent{Mods: mods | ModShift, Key: string(unicode.ToUpper(r))}, true
	case unicode.IsLower(r):
		return KeyEvent{Mods: mods, Key: string(unicode.ToUpper(r))}, true
	case r >= '0' && r <= '9':
		return KeyEvent{Mods: mods, Key: string(r)}, true
	}
	if key, ok := shiftedRunes[r]; ok {
		return KeyEvent{Mods: mods | ModShift, Key: key}, true
	}
	if key, ok := CanonicalKey(string(r)); ok {
		return KeyEvent{Mods: mods, Key: key}, true
	}
	return KeyEvent{}, false
}
