package points

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int64
	}{
		{"rounds half away from zero", 0.125, 13},
		{"negative", -10, -1000},
		{"at the ceiling", maxAmount, maxAmount * 100},
		{"above the ceiling", maxAmount + 1, 0},
		{"far above the ceiling", 9e16, 0},
		{"NaN", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toCents(tt.in))
		})
	}
}

func TestPointsFor(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		category Category
		want     int
	}{
		{"half point per real floors", 116200, CategoryPlacaST, 581},
		{"two points per real", 2550, CategoryBasecoat, 51},
		{"zero total", 0, CategoryPlacaST, 0},
		{"negative total", -500, CategoryPlacaST, 0},
		{"product would overflow int64", math.MaxInt64, CategoryPlacaGlasroc, maxPoints},
		{"zero rate", 1000, Category{Name: "none"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pointsFor(tt.cents, tt.category))
		})
	}
}

func TestAddCapped(t *testing.T) {
	assert.Equal(t, int64(15), addCapped(10, 5, 100))
	assert.Equal(t, int64(100), addCapped(90, 20, 100))
	assert.Equal(t, int64(-100), addCapped(-90, -20, 100))
	assert.Equal(t, int64(math.MaxInt64), addCapped(math.MaxInt64, 1, math.MaxInt64))
}
