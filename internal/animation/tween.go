// Package animation содержит таймер анимации и набор функций сглаживания
// для плавных траекторий камеры.
package animation

import "math"

// Функции сглаживания отображают параметр t из [0, 1] в [0, 1].
// Вне этого диапазона поведение не определено.

// QuadraticIn — квадратичный разгон
func QuadraticIn(t float64) float64 {
	return t * t
}

// QuadraticOut — квадратичное торможение
func QuadraticOut(t float64) float64 {
	return t * (2 - t)
}

// QuadraticInOut — квадратичный разгон и торможение
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicIn — кубический разгон
func CubicIn(t float64) float64 {
	return t * t * t
}

// CubicOut — кубическое торможение
func CubicOut(t float64) float64 {
	t1 := t - 1
	return t1*t1*t1 + 1
}

// CubicInOut — кубический разгон и торможение
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	t1 := 2*t - 2
	return 0.5*t1*t1*t1 + 1
}

// QuarticIn — разгон четвёртой степени
func QuarticIn(t float64) float64 {
	return t * t * t * t
}

// QuarticOut — торможение четвёртой степени
func QuarticOut(t float64) float64 {
	t1 := t - 1
	return 1 - t1*t1*t1*t1
}

// QuarticInOut — разгон и торможение четвёртой степени
func QuarticInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	t1 := t - 1
	return 1 - 8*t1*t1*t1*t1
}

// QuinticIn — разгон пятой степени
func QuinticIn(t float64) float64 {
	return t * t * t * t * t
}

// QuinticOut — торможение пятой степени
func QuinticOut(t float64) float64 {
	t1 := t - 1
	return 1 + t1*t1*t1*t1*t1
}

// QuinticInOut — разгон и торможение пятой степени
func QuinticInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	t1 := 2*t - 2
	return 0.5*t1*t1*t1*t1*t1 + 1
}

// SineIn — синусоидальный разгон
func SineIn(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

// SineOut — синусоидальное торможение
func SineOut(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// SineInOut — синусоидальный разгон и торможение
func SineInOut(t float64) float64 {
	return 0.5 * (1 - math.Cos(math.Pi*t))
}

// CircularIn — круговой разгон
func CircularIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// CircularOut — круговое торможение
func CircularOut(t float64) float64 {
	return math.Sqrt(1 - (1-t)*(1-t))
}

// CircularInOut — круговой разгон и торможение
func CircularInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*t*t))
	}
	return 0.5 * (math.Sqrt(1-4*(1-t)*(1-t)) + 1)
}

// ExpIn — экспоненциальный разгон
func ExpIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// ExpOut — экспоненциальное торможение
func ExpOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// ExpInOut — экспоненциальный разгон и торможение
func ExpInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return 0.5 * math.Pow(2, 20*t-10)
	default:
		return 1 - 0.5*math.Pow(2, -20*t+10)
	}
}

// BounceIn — отскок на разгоне
func BounceIn(t float64) float64 {
	return 1 - BounceOut(1-t)
}

// BounceOut — отскок на торможении
func BounceOut(t float64) float64 {
	switch {
	case t < 4.0/11.0:
		return 121.0 / 16.0 * t * t
	case t < 8.0/11.0:
		return 363.0/40.0*t*t - 99.0/10.0*t + 17.0/5.0
	case t < 9.0/10.0:
		return 4356.0/361.0*t*t - 35442.0/1805.0*t + 16061.0/1805.0
	default:
		return 54.0/5.0*t*t - 513.0/25.0*t + 268.0/25.0
	}
}

// BounceInOut — отскок на разгоне и торможении
func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * BounceIn(t*2)
	}
	return 0.5*BounceOut(t*2-1) + 0.5
}
