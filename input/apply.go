package input

import (
	"log"

	"github.com/lixenwraith/skater/engine"
)

// Apply executes it against the game and reports whether the game should keep running
func Apply(ctx *engine.GameContext, it *Intent) bool {
	if it == nil {
		return true
	}

	switch it.Type {
	case IntentTap:
		ctx.Tap()
	case IntentTogglePause:
		ctx.TogglePause()
		log.Printf("paused=%t", ctx.IsPaused.Load())
	case IntentToggleMute:
		ctx.ToggleMute()
		log.Printf("muted=%t", ctx.IsMuted.Load())
	case IntentResize:
		ctx.Resize(it.Width, it.Height)
	case IntentQuit:
		return false
	}
	return true
}
