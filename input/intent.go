package input

// IntentType classifies a parsed input event
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentMove
	IntentRegenerate
	IntentQuit
	IntentToggleSound
	IntentToggleSolution
	IntentResize
)

// Intent is the semantic result of translating one terminal event.
// DX/DY are set for IntentMove only, always a unit cardinal.
type Intent struct {
	Type   IntentType
	DX, DY int
}

func move(dx, dy int) Intent {
	return Intent{Type: IntentMove, DX: dx, DY: dy}
}
