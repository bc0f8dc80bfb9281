package hotkey

import (
	"fmt"
	"strings"
)

// Modifier is a bitmask of the modifier keys a combination holds.
type Modifier uint8

const (
	ModCmd Modifier = 1 << iota
	ModCtrl
	ModOption
	ModShift
)

// DefaultCombination is the fallback binding used when no persisted value
// can be loaded.
const DefaultCombination = "Cmd+Option+Space"

// modifierOrder fixes the serialization order: Cmd, Ctrl, Option, Shift.
var modifierOrder = []struct {
	flag Modifier
	name string
}{
	{ModCmd, "Cmd"},
	{ModCtrl, "Ctrl"},
	{ModOption, "Option"},
	{ModShift, "Shift"},
}

// Combination is a parsed hotkey: held modifiers plus exactly one
// recognized non-modifier key. Construct via Parse or the keymap helpers so
// the key name is always canonical.
type Combination struct {
	Mods Modifier
	Key  string
}

// IsZero reports whether the combination is unset.
func (c Combination) IsZero() bool {
	return c.Mods == 0 && c.Key == ""
}

// Valid reports whether the combination can be committed: at least one
// modifier and a recognized key.
func (c Combination) Valid() bool {
	return c.Mods != 0 && c.Key != ""
}

// String serializes the combination as "Mod1+Mod2+Key" with modifiers in
// canonical order.
func (c Combination) String() string {
	if c.IsZero() {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, mod := range modifierOrder {
		if c.Mods&mod.flag != 0 {
			parts = append(parts, mod.name)
		}
	}
	if c.Key != "" {
		parts = append(parts, c.Key)
	}
	return strings.Join(parts, "+")
}

// Parse reads a serialized combination such as "Cmd+Option+Space". Modifier
// aliases (Command, Super, Control, Alt) and key aliases (ESC, RETURN, "=")
// are accepted; the result is canonical.
func Parse(s string) (Combination, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Combination{}, fmt.Errorf("empty hotkey")
	}
	var combo Combination
	for _, part := range strings.Split(trimmed, "+") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			// "Cmd++" style artifacts; also covers a literal "+" key which
			// the recognized table does not include.
			continue
		case "Cmd", "Command", "Super":
			combo.Mods |= ModCmd
		case "Ctrl", "Control":
			combo.Mods |= ModCtrl
		case "Option", "Alt":
			combo.Mods |= ModOption
		case "Shift":
			combo.Mods |= ModShift
		default:
			key, ok := CanonicalKey(part)
			if !ok {
				return Combination{}, fmt.Errorf("unknown key %q", part)
			}
			if combo.Key != "" {
				return Combination{}, fmt.Errorf("multiple keys in %q", s)
			}
			combo.Key = key
		}
	}
	if combo.Key == "" {
		return Combination{}, fmt.Errorf("no key in %q", s)
	}
	return combo, nil
}

// Default returns the built-in fallback combination.
func Default() Combination {
	combo, err := Parse(DefaultCombination)
	if err != nil {
		panic(err)
	}
	return combo
}

// namedKeys maps upper-cased aliases to canonical key names for keys that
// are not single letters or digits.
var namedKeys = map[string]string{
	"SPACE":        "Space",
	"ENTER":        "Enter",
	"RETURN":       "Enter",
	"TAB":          "Tab",
	"BACKSPACE":    "Backspace",
	"ESCAPE":       "Escape",
	"ESC":          "Escape",
	"DELETE":       "Delete",
	"DEL":          "Delete",
	"HOME":         "Home",
	"END":          "End",
	"PAGEUP":       "PageUp",
	"PAGEDOWN":     "PageDown",
	"ARROWUP":      "Up",
	"UP":           "Up",
	"ARROWDOWN":    "Down",
	"DOWN":         "Down",
	"ARROWLEFT":    "Left",
	"LEFT":         "Left",
	"ARROWRIGHT":   "Right",
	"RIGHT":        "Right",
	"MINUS":        "-",
	"-":            "-",
	"EQUAL":        "=",
	"=":            "=",
	"BRACKETLEFT":  "[",
	"[":            "[",
	"BRACKETRIGHT": "]",
	"]":            "]",
	"BACKSLASH":    `\`,
	`\`:            `\`,
	"SEMICOLON":    ";",
	";":            ";",
	"QUOTE":        "'",
	"'":            "'",
	`"`:            "'",
	"COMMA":        ",",
	",":            ",",
	"PERIOD":       ".",
	".":            ".",
	"SLASH":        "/",
	"/":            "/",
	"BACKQUOTE":    "`",
	"`":            "`",
}

// CanonicalKey resolves a key alias to its canonical name. Recognized keys
// are letters, digits, F1-F12, the named keys (Space, Enter, arrows, ...),
// and standard US-layout punctuation.
func CanonicalKey(name string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return "", false
	}
	if len(upper) == 1 {
		r := upper[0]
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return string(r), true
		}
	}
	if len(upper) >= 2 && len(upper) <= 3 && upper[0] == 'F' {
		switch upper[1:] {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
			return upper, true
		}
	}
	if key, ok := namedKeys[upper]; ok {
		return key, true
	}
	return "", false
}
