package gamemath

import "github.com/tanema/gween/ease"

// SurgeHeight is the height of a rise-then-fall surge that lasts duration
// frames and has remaining frames left. It climbs linearly to peak over the
// first half and falls back to zero over the second.
func SurgeHeight(remaining, duration int, peak float64) float64 {
	if duration <= 0 || remaining <= 0 || remaining > duration {
		return 0
	}
	half := float32(duration) / 2
	elapsed := float32(duration - remaining)
	if elapsed < half {
		return float64(ease.Linear(elapsed, 0, float32(peak), half))
	}
	return float64(ease.Linear(elapsed-half, float32(peak), float32(-peak), half))
}
