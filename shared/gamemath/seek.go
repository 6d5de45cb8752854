package gamemath

import "math"

// SeekVelocity returns velocity components toward a target at the given
// speed. It returns zero when the points coincide.
func SeekVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// ComboMultiplier returns min(1 + combo*step, max). Negative combos count as
// zero.
func ComboMultiplier(combo int, step, max float64) float64 {
	if combo < 0 {
		combo = 0
	}
	return math.Min(1+float64(combo)*step, max)
}
