package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func rn(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslateBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   tcell.Event
		want Intent
	}{
		{"up arrow", key(tcell.KeyUp), move(0, -1)},
		{"down arrow", key(tcell.KeyDown), move(0, 1)},
		{"left arrow", key(tcell.KeyLeft), move(-1, 0)},
		{"right arrow", key(tcell.KeyRight), move(1, 0)},
		{"w", rn('w'), move(0, -1)},
		{"a", rn('a'), move(-1, 0)},
		{"s", rn('s'), move(0, 1)},
		{"d", rn('d'), move(1, 0)},
		{"W shifted", rn('W'), move(0, -1)},
		{"vi k", rn('k'), move(0, -1)},
		{"vi h", rn('h'), move(-1, 0)},
		{"vi j", rn('j'), move(0, 1)},
		{"vi l", rn('l'), move(1, 0)},
		{"r regenerates", rn('r'), Intent{Type: IntentRegenerate}},
		{"R regenerates", rn('R'), Intent{Type: IntentRegenerate}},
		{"escape quits", key(tcell.KeyEscape), Intent{Type: IntentQuit}},
		{"ctrl-c quits", key(tcell.KeyCtrlC), Intent{Type: IntentQuit}},
		{"q quits", rn('q'), Intent{Type: IntentQuit}},
		{"m toggles sound", rn('m'), Intent{Type: IntentToggleSound}},
		{"f1 toggles solution", key(tcell.KeyF1), Intent{Type: IntentToggleSolution}},
		{"unbound rune", rn('z'), Intent{}},
		{"unbound key", key(tcell.KeyF12), Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Translate(tt.ev); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTranslateResize(t *testing.T) {
	kt := DefaultKeyTable()

	got := kt.Translate(tcell.NewEventResize(80, 24))
	if got.Type != IntentResize {
		t.Errorf("Expected resize intent, got %+v", got)
	}
}

func TestTranslateClosedEventSource(t *testing.T) {
	kt := DefaultKeyTable()

	if got := kt.Translate(nil); got.Type != IntentQuit {
		t.Errorf("Expected quit on nil event, got %+v", got)
	}
	if got := kt.Translate(tcell.NewEventInterrupt(nil)); got.Type != IntentQuit {
		t.Errorf("Expected quit on interrupt, got %+v", got)
	}
}
