package events

// RunPayload identifies a run and its score at the moment of the event
type RunPayload struct {
	RunID     string
	Score     int
	HighScore int
	NewRecord bool
}

// LandingPayload carries the contact point of a landing, in world units
type LandingPayload struct {
	X, Y float64
	VY   float64 // Vertical velocity just before contact
}

// GemPayload carries the collected gem position and the granted bonus
type GemPayload struct {
	X, Y  float64
	Bonus int
}
