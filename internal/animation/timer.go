package animation

import "time"

// AnimTimer отсчитывает прогресс анимации фиксированной длительности.
// Alpha возвращает долю прошедшего времени в [0, 1] и насыщается
// единицей после истечения длительности.
type AnimTimer struct {
	start    time.Time
	duration time.Duration
}

// StartTimer запускает таймер на указанную длительность
func StartTimer(duration time.Duration) *AnimTimer {
	return &AnimTimer{
		start:    time.Now(),
		duration: duration,
	}
}

// Alpha возвращает прогресс анимации в [0, 1]
func (t *AnimTimer) Alpha() float64 {
	elapsed := time.Since(t.start)
	if elapsed >= t.duration {
		return 1
	}
	return elapsed.Seconds() / t.duration.Seconds()
}

// AlphaReset возвращает текущий прогресс и перезапускает таймер
func (t *AnimTimer) AlphaReset() float64 {
	alpha := t.Alpha()
	t.start = time.Now()
	return alpha
}

// Reset перезапускает таймер
func (t *AnimTimer) Reset() {
	t.start = time.Now()
}

// Finished сообщает, истекла ли длительность анимации
func (t *AnimTimer) Finished() bool {
	return time.Since(t.start) >= t.duration
}
