package gamemath

import "math"

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// SegmentDistance returns the distance from point (px, py) to the segment
// (x1, y1)-(x2, y2). A zero-length segment degrades to a point distance.
func SegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(px, py, x1, y1)
	}
	t := Clamp(((px-x1)*dx+(py-y1)*dy)/lenSq, 0, 1)
	return Distance(px, py, x1+t*dx, y1+t*dy)
}

// InRectStrict reports whether (x, y) lies strictly inside the rectangle.
func InRectStrict(x, y, rx, ry, rw, rh float64) bool {
	return x > rx && x < rx+rw && y > ry && y < ry+rh
}

// PeriodicOffset is the sinusoidal displacement of a moving platform:
// sin(frame*0.02*speed) * amplitude / 2.
func PeriodicOffset(frame int, speed, amplitude float64) float64 {
	return math.Sin(float64(frame)*0.02*speed) * amplitude / 2
}

// PeriodicCarry is the horizontal velocity a moving platform hands to a
// fighter landing on it.
func PeriodicCarry(frame int, speed float64) float64 {
	return math.Cos(float64(frame)*0.02*speed) * speed * 2
}
