package animation

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]func(float64) float64{
		"QuadraticIn":    QuadraticIn,
		"QuadraticOut":   QuadraticOut,
		"QuadraticInOut": QuadraticInOut,
		"CubicIn":        CubicIn,
		"CubicOut":       CubicOut,
		"CubicInOut":     CubicInOut,
		"QuarticIn":      QuarticIn,
		"QuarticOut":     QuarticOut,
		"QuarticInOut":   QuarticInOut,
		"QuinticIn":      QuinticIn,
		"QuinticOut":     QuinticOut,
		"QuinticInOut":   QuinticInOut,
		"SineIn":         SineIn,
		"SineOut":        SineOut,
		"SineInOut":      SineInOut,
		"CircularIn":     CircularIn,
		"CircularOut":    CircularOut,
		"CircularInOut":  CircularInOut,
		"ExpIn":          ExpIn,
		"ExpOut":         ExpOut,
		"ExpInOut":       ExpInOut,
		"BounceIn":       BounceIn,
		"BounceOut":      BounceOut,
		"BounceInOut":    BounceInOut,
	}

	for name, fn := range easings {
		if v := fn(0); math.Abs(v) > 1e-9 {
			t.Errorf("%s(0) = %v, ожидался 0", name, v)
		}
		if v := fn(1); math.Abs(v-1) > 1e-9 {
			t.Errorf("%s(1) = %v, ожидалась 1", name, v)
		}
	}
}

func TestEasingMonotonicIn(t *testing.T) {
	easings := map[string]func(float64) float64{
		"QuadraticIn": QuadraticIn,
		"CubicIn":     CubicIn,
		"QuarticIn":   QuarticIn,
		"QuinticIn":   QuinticIn,
		"SineIn":      SineIn,
		"CircularIn":  CircularIn,
		"ExpIn":       ExpIn,
	}

	for name, fn := range easings {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev {
				t.Errorf("%s не монотонна: f(%v) = %v < %v", name, float64(i)/100, v, prev)
			}
			prev = v
		}
	}
}

func TestEasingInOutMidpoint(t *testing.T) {
	easings := map[string]func(float64) float64{
		"QuadraticInOut": QuadraticInOut,
		"CubicInOut":     CubicInOut,
		"QuarticInOut":   QuarticInOut,
		"QuinticInOut":   QuinticInOut,
		"SineInOut":      SineInOut,
		"CircularInOut":  CircularInOut,
		"ExpInOut":       ExpInOut,
	}

	for name, fn := range easings {
		if v := fn(0.5); math.Abs(v-0.5) > 1e-9 {
			t.Errorf("%s(0.5) = %v, ожидался 0.5", name, v)
		}
	}
}

func TestQuadraticValues(t *testing.T) {
	if v := QuadraticIn(0.5); v != 0.25 {
		t.Errorf("QuadraticIn(0.5) = %v, ожидался 0.25", v)
	}
	if v := QuadraticOut(0.5); v != 0.75 {
		t.Errorf("QuadraticOut(0.5) = %v, ожидался 0.75", v)
	}
}
