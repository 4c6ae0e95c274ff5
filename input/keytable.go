package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents. Movement fires once per key
// event; auto-repeat from the terminal driver passes through untouched.
type KeyTable struct {
	Special map[tcell.Key]Intent
	Runes   map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows/WASD/hjkl to move,
// r to regenerate, Esc/Ctrl+C/q to quit, m to toggle sound, F1 to toggle
// the solution overlay.
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		Special: map[tcell.Key]Intent{
			tcell.KeyUp:     move(0, -1),
			tcell.KeyDown:   move(0, 1),
			tcell.KeyLeft:   move(-1, 0),
			tcell.KeyRight:  move(1, 0),
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyF1:     {Type: IntentToggleSolution},
		},
		Runes: map[rune]Intent{
			'w': move(0, -1),
			'a': move(-1, 0),
			's': move(0, 1),
			'd': move(1, 0),
			'k': move(0, -1),
			'h': move(-1, 0),
			'j': move(0, 1),
			'l': move(1, 0),
			'r': {Type: IntentRegenerate},
			'q': {Type: IntentQuit},
			'm': {Type: IntentToggleSound},
		},
	}

	// Shifted variants behave like their lowercase keys
	for _, r := range "wasdrqm" {
		kt.Runes[r-'a'+'A'] = kt.Runes[r]
	}
	return kt
}

// Translate parses one terminal event into a semantic intent.
// A nil event means the screen is gone and maps to quit.
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case nil:
		return Intent{Type: IntentQuit}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return kt.Runes[ev.Rune()]
		}
		return kt.Special[ev.Key()]
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventInterrupt:
		return Intent{Type: IntentQuit}
	}
	return Intent{}
}
