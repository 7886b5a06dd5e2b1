package constants

import "time"

// Scroll Speed
const (
	// StartingScrollSpeed is the scroll speed (world units per expected frame) at run start
	StartingScrollSpeed = 5.0

	// ScrollSpeedIncrement is added to the scroll speed on every running update
	ScrollSpeedIncrement = 0.01
)

// Score
const (
	// ScoreUpdateInterval is how often the running score grows by int(scrollSpeed)
	ScoreUpdateInterval = time.Second

	// GemBonus is the score granted for a consumed gem
	GemBonus = 50

	// ScoreDigits is the zero-padded width of score labels
	ScoreDigits = 4
)

// Spawn Policy
const (
	// SpawnRollRange is the exclusive upper bound of the per-brick random roll (0..98)
	SpawnRollRange = 99

	// GapChance is the roll threshold below which a gap is inserted
	GapChance = 2

	// LevelChance is the roll threshold below which the brick level toggles (GapChance..LevelChance)
	LevelChance = 4

	// GapScoreThreshold is the score a run must exceed before gaps appear
	GapScoreThreshold = 10

	// LevelScoreThreshold is the score a run must exceed before level changes appear
	LevelScoreThreshold = 20

	// GapSpeedFactor scales the current scroll speed into gap width
	GapSpeedFactor = 20.0

	// GemHeightRange is the exclusive upper bound of the random extra height of a gem over a gap
	GemHeightRange = 150

	// BrickSpacing is the seam left between neighboring bricks
	BrickSpacing = 1.0
)

// Brick Levels (y offset of newly spawned bricks)
const (
	BrickLevelLow  = 0.0
	BrickLevelHigh = 100.0
)

// Game Over
const (
	// MaxRotationDegrees is the tilt beyond which the skater has tipped over
	MaxRotationDegrees = 85.0
)
