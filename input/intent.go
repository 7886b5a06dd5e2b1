// Package input translates tcell events into game intents.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentTap         // Jump while running, start a run otherwise
	IntentTogglePause // p
	IntentToggleMute  // m
	IntentQuit        // q, Esc, Ctrl+C
	IntentResize      // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentTap:         "tap",
	IntentTogglePause: "pause",
	IntentToggleMute:  "mute",
	IntentQuit:        "quit",
	IntentResize:      "resize",
}

// String returns the intent name used in logs
func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or engine dependencies
type Intent struct {
	Type IntentType

	// Resize only
	Width, Height int
}
