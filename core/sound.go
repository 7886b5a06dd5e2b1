package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundJump     SoundType = iota // Skater leaves the ground
	SoundGem                       // Gem consumed
	SoundLand                      // Airborne landing with sparks
	SoundGameOver                  // Fall or tip-over
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"jump", "gem", "land", "gameover"}

// String returns the short sound name used in logs
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
