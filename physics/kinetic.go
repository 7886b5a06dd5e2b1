package physics

import (
	"math"

	"github.com/lixenwraith/skater/components"
)

// ApplyGravity accelerates a body downwards and returns this step's vertical displacement
func ApplyGravity(b *components.Body, gravity, dt float64) float64 {
	b.VY -= gravity * dt
	return b.VY * dt
}

// Jump sets the body's upward velocity and leaves the ground
func Jump(b *components.Body, velocity float64) {
	b.VY = velocity
	b.OnGround = false
}

// Tip integrates rotation: an unsupported center accelerates the lean toward the
// overhang side (dir -1 forward, +1 backward); a supported body relaxes upright
func Tip(b *components.Body, supported bool, dir, accel, recovery, dt float64) {
	if supported {
		b.AngularVelocity = 0
		b.Rotation -= b.Rotation * math.Min(recovery*dt, 1)
		return
	}
	b.AngularVelocity += dir * accel * dt
	b.Rotation += b.AngularVelocity * dt
}

// TippedOver reports whether |rotation| exceeds maxDegrees
func TippedOver(b *components.Body, maxDegrees float64) bool {
	limit := maxDegrees * math.Pi / 180
	return b.Rotation > limit || b.Rotation < -limit
}
