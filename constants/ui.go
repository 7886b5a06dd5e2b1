package constants

import "time"

// HUD Layout
const (
	// HUDMarginX is the horizontal inset of the score labels
	HUDMarginX = 2

	ScoreTitle     = "score"
	HighScoreTitle = "high score"
)

// Menu Overlay
const (
	MenuMessageStart    = "Tap to play"
	MenuMessageGameOver = "Game Over!"
	MenuMessagePaused   = "Paused"
	MenuHint            = "space/click: jump  p: pause  m: mute  q: quit"

	// MenuSlideDuration is how long menu labels take to slide to the center
	MenuSlideDuration = 300 * time.Millisecond

	// MenuDimFactor is the brightness kept under the menu (black overlay at alpha 0.4)
	MenuDimFactor = 0.6
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "skater.log"
)
