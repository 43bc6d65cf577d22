package shenshu

import (
	"math"

	"github.com/f3rmion/shenshu/internal/strokes"
)

const courseModulus = 215

// weight is the positional multiplier for the i-th character: 100, 10, 1,
// then fractional powers of ten for longer names.
func weight(i int) float64 {
	return math.Pow10(2 - i)
}

// CourseNumber reduces a name's strokes to its course number:
// sum(count[i] * 10^(2-i)) mod 215. The result is exact for names of up to
// three characters. Longer inputs keep the fractional weights and the
// remainder is truncated toward zero.
func CourseNumber(s []strokes.Stroke) int {
	var sum float64
	for i, st := range s {
		sum += float64(st.Count) * weight(i)
	}
	return int(math.Mod(sum, courseModulus))
}
