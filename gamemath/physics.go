package gamemath

import "math"

// frictionEpsilon absorbs the rounding left over from repeated subtraction,
// so 1.0 reaches exactly zero after five steps of 0.2.
const frictionEpsilon = 1e-9

// ApplyFriction reduces speed toward zero by friction amount, snapping to
// exactly zero once within friction.
func ApplyFriction(speedX, friction float64) float64 {
	if math.Abs(speedX) <= friction+frictionEpsilon {
		return 0
	}
	if speedX > 0 {
		return speedX - friction
	}
	return speedX + friction
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
