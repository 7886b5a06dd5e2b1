package components

// Body holds the skater's dynamic state
type Body struct {
	VX, VY          float64 // World units per second
	Rotation        float64 // Radians, positive is counter-clockwise (leaning back)
	AngularVelocity float64 // Radians per second
	OnGround        bool    // Standing on a brick, may jump
	Touching        bool    // Brick contact during the last physics step
}

// Skater tags the player entity
type Skater struct{}
