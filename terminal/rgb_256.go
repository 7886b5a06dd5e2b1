package terminal

// Generic xterm 256-color palette helpers without game semantics
//
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// cubeLevels are the channel intensities of the six cube steps
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return 232 + step
}

// RGBTo256 returns the closest palette index among the color cube and the gray ramp
func RGBTo256(r, g, b uint8) uint8 {
	cr, cg, cb := cubeStep(r), cubeStep(g), cubeStep(b)
	cubeIdx := Cube256(cr, cg, cb)
	cubeDist := dist2(int(r), int(g), int(b), cubeLevels[cr], cubeLevels[cg], cubeLevels[cb])

	avg := (int(r) + int(g) + int(b)) / 3
	step := 0
	if avg > 8 {
		step = (avg - 8 + 5) / 10
	}
	if step > 23 {
		step = 23
	}
	level := 8 + 10*step
	grayDist := dist2(int(r), int(g), int(b), level, level, level)

	if grayDist < cubeDist {
		return Gray256(uint8(step))
	}
	return cubeIdx
}

// cubeStep maps a channel to its nearest cube step
func cubeStep(v uint8) uint8 {
	best, bestDist := 0, 1<<30
	for i, lvl := range cubeLevels {
		d := int(v) - lvl
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func dist2(r1, g1, b1, r2, g2, b2 int) int {
	dr, dg, db := r1-r2, g1-g2, b1-b2
	return dr*dr + dg*dg + db*db
}
