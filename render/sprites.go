package render

import (
	"math"

	"github.com/lixenwraith/skater/components"
)

// SkaterPose selects the skater sprite
type SkaterPose int

const (
	PoseStanding SkaterPose = iota
	PoseAirborne
	PoseLeanForward
	PoseLeanBack
)

// leanThreshold is the rotation beyond which the lean sprites are used
const leanThreshold = 20 * math.Pi / 180

// skaterSprites are 3x3 cell drawings, rows top to bottom; spaces are transparent
var skaterSprites = [...][3]string{
	PoseStanding:    {" O ", "/#\\", "o=o"},
	PoseAirborne:    {"\\O/", " # ", "o=o"},
	PoseLeanForward: {"  O", " /#", "o=o"},
	PoseLeanBack:    {"O  ", "#\\ ", "o=o"},
}

// PoseFor picks the sprite for a body state; lean takes precedence over flight
func PoseFor(b components.Body) SkaterPose {
	switch {
	case b.Rotation < -leanThreshold:
		return PoseLeanForward
	case b.Rotation > leanThreshold:
		return PoseLeanBack
	case !b.OnGround:
		return PoseAirborne
	default:
		return PoseStanding
	}
}

// skaterColor returns the color of a sprite rune
func skaterColor(r rune) RGB {
	switch r {
	case '=':
		return RgbSkaterBoard
	case 'o':
		return RgbSkaterWheel
	default:
		return RgbSkaterBody
	}
}
