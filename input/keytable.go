package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEnter:  IntentTap,
			tcell.KeyUp:     IntentTap,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			' ': IntentTap,
			'k': IntentTap,
			'w': IntentTap,
			'p': IntentTogglePause,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Lookup returns the intent bound to a key event
func (t *KeyTable) Lookup(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		if it, ok := t.Runes[r]; ok {
			return it
		}
		if r >= 'A' && r <= 'Z' {
			return t.Runes[r+'a'-'A']
		}
		return IntentNone
	}
	return t.SpecialKeys[key]
}
