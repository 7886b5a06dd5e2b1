package constants

import "time"

// World Geometry (world units; y grows upwards)
const (
	// UnitsPerColumn is the width of a terminal cell in world units
	UnitsPerColumn = 8.0

	// UnitsPerRow is the height of a terminal cell in world units
	UnitsPerRow = 16.0

	BrickWidth   = 64.0
	BrickHeight  = 64.0
	SkaterWidth  = 24.0
	SkaterHeight = 48.0
	GemWidth     = 16.0
	GemHeight    = 16.0

	// SkaterGroundClearance is the height of the skater's bottom edge at reset
	SkaterGroundClearance = 64.0
)

// Skater Physics
const (
	// Gravity is the downward acceleration in world units per second squared
	Gravity = 900.0

	// JumpVelocity is the upward velocity applied by a jump
	JumpVelocity = 570.0

	// AirborneVelocity is the |vy| above which the skater is no longer on the ground
	AirborneVelocity = 100.0

	// SparkLandingVelocity is the vy below which an airborne landing throws sparks
	SparkLandingVelocity = 100.0

	// TipAcceleration is the angular acceleration (rad/s^2) while the center is unsupported
	TipAcceleration = 9.0

	// RotationRecovery is the fraction of rotation removed per second while supported
	RotationRecovery = 6.0

	// StepTolerance is how far below a brick top the skater's feet may be and still land on it
	StepTolerance = 12.0
)

// Collision Space
const (
	// SpaceCellSize is the resolv broad-phase cell edge in world units
	SpaceCellSize = 16

	// SpaceMargin offsets world coordinates so off-screen bodies stay inside the space
	SpaceMargin = 512.0
)

// Sparks
const (
	SparkLifetime   = 500 * time.Millisecond
	SparkCount      = 8
	SparkMinSpeed   = 40.0
	SparkSpeedRange = 120.0
	SparkGravity    = 400.0
)
