// Package scoring holds the pure scoring math of candidate matching.
package scoring

import "math"

// CosineSimilarity returns dot(a,b)/(|a|·|b|) computed in float64.
// Absent vectors, different lengths and zero magnitudes all yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
