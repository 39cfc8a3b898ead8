// internal/utils/math.go
package utils

import "math"

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// TurnTowards доворачивает угол current к углу desired не быстрее, чем на
// maxDelta за шаг, по кратчайшей дуге.
func TurnTowards(current, desired, maxDelta float64) float64 {
	diff := NormalizeAngle(desired - current)
	if diff > maxDelta {
		diff = maxDelta
	} else if diff < -maxDelta {
		diff = -maxDelta
	}
	return NormalizeAngle(current + diff)
}

// Clamp ограничивает v отрезком [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
