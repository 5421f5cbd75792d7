// Package timing содержит счётчики кадров и скользящее среднее
// для периодических действий в цикле рендера.
package timing

// CountTrigger — счётчик кадров с предикатами для периодических
// действий: «каждый N-й кадр», «ровно на N-м кадре», «начиная с N-го».
type CountTrigger struct {
	count uint64
}

// NewCountTrigger создаёт счётчик с нулевым значением
func NewCountTrigger() *CountTrigger {
	return &CountTrigger{}
}

// Count возвращает текущее значение счётчика
func (c *CountTrigger) Count() uint64 {
	return c.count
}

// SetCount устанавливает значение счётчика
func (c *CountTrigger) SetCount(count uint64) {
	c.count = count
}

// Increment увеличивает счётчик на единицу и возвращает новое значение
func (c *CountTrigger) Increment() uint64 {
	c.count++
	return c.count
}

// Add увеличивает счётчик на delta и возвращает новое значение
func (c *CountTrigger) Add(delta uint64) uint64 {
	c.count += delta
	return c.count
}

// Reset обнуляет счётчик
func (c *CountTrigger) Reset() {
	c.count = 0
}

// EveryNth сообщает, кратно ли текущее значение счётчика nth
func (c *CountTrigger) EveryNth(nth uint64) bool {
	if nth == 0 {
		return false
	}
	return c.count%nth == 0
}

// Nth сообщает, равно ли текущее значение счётчика nth
func (c *CountTrigger) Nth(nth uint64) bool {
	return c.count == nth
}

// AtLeast сообщает, достиг ли счётчик значения n
func (c *CountTrigger) AtLeast(n uint64) bool {
	return c.count >= n
}
