package translate

import (
	"strconv"
	"strings"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

const (
	keyPrefix      = "KEY_"
	functionPrefix = "KEY_F"

	// functionBase is added to the function key number to build its note.
	functionBase = 'a'
)

// Arming keys and the note each one reserves for a velocity entry.
var armingNotes = map[string]uint8{
	"KEY_DELETE": 108,
	"KEY_F8":     105,
}

// KeyKind discriminates classified key identifiers.
type KeyKind uint8

const (
	KindUnknown  KeyKind = iota
	KindDigit            // KEY_0 .. KEY_9
	KindArm              // KEY_DELETE, KEY_F8
	KindFunction         // KEY_F<n>, n != 8
	KindChar             // any other KEY_<c>
)

func (k KeyKind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindArm:
		return "arm"
	case KindFunction:
		return "function"
	case KindChar:
		return "char"
	}
	return "unknown"
}

// Key is a classified canonical identifier.
type Key struct {
	Kind KeyKind
	// Char is the trailing character for digits and plain keys.
	Char byte
	// Note is the note the key triggers or arms. Unset for KindUnknown.
	Note uint8
}

// Classify maps a canonical identifier to exactly one kind. Digits also carry
// their character note so they can fall back to a plain trigger when nothing
// is armed.
func Classify(code string) Key {
	if note, ok := armingNotes[code]; ok {
		return Key{Kind: KindArm, Note: note}
	}

	if suffix, ok := strings.CutPrefix(code, functionPrefix); ok && isDecimal(suffix) {
		n, err := strconv.Atoi(suffix)
		if err == nil && n <= contracts.MaxNote-functionBase {
			return Key{Kind: KindFunction, Note: uint8(functionBase + n)}
		}
		return Key{}
	}

	if len(code) == len(keyPrefix)+1 && strings.HasPrefix(code, keyPrefix) {
		c := code[len(code)-1]
		if c > contracts.MaxNote {
			return Key{}
		}
		if c >= '0' && c <= '9' {
			return Key{Kind: KindDigit, Char: c, Note: c}
		}
		return Key{Kind: KindChar, Char: c, Note: c}
	}

	return Key{}
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
