// Package keymap rewrites evdev key names so that the punctuation, navigation
// and escape keys of a small keypad resolve to single character tokens.
package keymap

// canonical maps raw key names onto "KEY_<char>" tokens. The letters chosen
// for the navigation keys place them on notes 109 through 114.
var canonical = map[string]string{
	"KEY_LEFTBRACE":  "KEY_[",
	"KEY_RIGHTBRACE": "KEY_]",
	"KEY_SEMICOLON":  "KEY_;",
	"KEY_APOSTROPHE": "KEY_'",
	"KEY_COMMA":      "KEY_,",
	"KEY_DOT":        "KEY_.",
	"KEY_SLASH":      "KEY_/",
	"KEY_BACKSLASH":  `KEY_\`,
	"KEY_GRAVE":      "KEY_`",
	"KEY_EQUAL":      "KEY_=",
	"KEY_MINUS":      "KEY_-",
	"KEY_ESC":        "KEY_m", // 109
	"KEY_UP":         "KEY_n", // 110
	"KEY_LEFT":       "KEY_o", // 111
	"KEY_DOWN":       "KEY_p", // 112
	"KEY_RIGHT":      "KEY_q", // 113
	"KEY_TAB":        "KEY_r", // 114
}

// Normalize returns the canonical identifier for code. Unmapped codes are
// returned unchanged.
func Normalize(code string) string {
	if c, ok := canonical[code]; ok {
		return c
	}
	return code
}
