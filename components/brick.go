package components

// BrickLevel is the y offset at which sidewalk sections spawn
type BrickLevel float64

// Brick marks a sidewalk section
type Brick struct {
	Level BrickLevel
}
