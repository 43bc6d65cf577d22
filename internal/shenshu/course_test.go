package shenshu

import (
	"testing"

	"github.com/f3rmion/shenshu/internal/strokes"
	"github.com/stretchr/testify/assert"
)

func counts(n ...int) []strokes.Stroke {
	s := make([]strokes.Stroke, len(n))
	for i, c := range n {
		s[i] = strokes.Stroke{Char: "字", Count: c}
	}
	return s
}

func TestCourseNumber(t *testing.T) {
	tests := []struct {
		name    string
		strokes []strokes.Stroke
		want    int
	}{
		{"empty", nil, 0},
		{"one", counts(4), 185},
		{"two", counts(7, 8), 135},
		{"three", counts(4, 3, 8), 8},
		{"multiple of modulus", counts(4, 3), 0},
		{"unknown characters", counts(0, 0, 0), 0},
		{"large", counts(30, 30, 30), 3330 % 215},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CourseNumber(tt.strokes))
		})
	}
}

func TestCourseNumber_ThreeCharacterRange(t *testing.T) {
	for a := 0; a <= 30; a++ {
		for b := 0; b <= 30; b += 3 {
			for c := 0; c <= 30; c += 7 {
				n := CourseNumber(counts(a, b, c))
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, 214)
				assert.Equal(t, (a*100+b*10+c)%215, n)
			}
		}
	}
}

func TestFormula(t *testing.T) {
	r := &Result{Course: 8, Strokes: counts(4, 3, 8)}
	assert.Equal(t, "8 = ( 4 x 100 + 3 x 10 + 8 x 1) % 215", r.Formula())

	r = &Result{Course: 185, Strokes: counts(4)}
	assert.Equal(t, "185 = ( 4 x 100) % 215", r.Formula())
}
