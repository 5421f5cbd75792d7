package timing

import "time"

// AverageBuffer — кольцевой буфер фиксированной ёмкости со скользящим
// средним. Сумма поддерживается инкрементально, поэтому Push и Average
// работают за O(1).
type AverageBuffer struct {
	values []float64
	next   int
	total  float64
}

// NewAverageBuffer создаёт буфер указанной ёмкости (минимум 1)
func NewAverageBuffer(capacity int) *AverageBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &AverageBuffer{
		values: make([]float64, 0, capacity),
	}
}

// Push добавляет значение, вытесняя самое старое при заполненном
// буфере, и возвращает новое среднее
func (b *AverageBuffer) Push(value float64) float64 {
	if len(b.values) == cap(b.values) {
		b.total -= b.values[b.next]
		b.values[b.next] = value
		b.next = (b.next + 1) % cap(b.values)
	} else {
		b.values = append(b.values, value)
	}
	b.total += value
	return b.total / float64(len(b.values))
}

// Average возвращает среднее накопленных значений (0 для пустого буфера)
func (b *AverageBuffer) Average() float64 {
	if len(b.values) == 0 {
		return 0
	}
	return b.total / float64(len(b.values))
}

// Len возвращает число накопленных значений
func (b *AverageBuffer) Len() int {
	return len(b.values)
}

// Clear опустошает буфер
func (b *AverageBuffer) Clear() {
	b.values = b.values[:0]
	b.next = 0
	b.total = 0
}

// DurationAverageBuffer — скользящее среднее длительностей, например
// времени кадра. Та же кольцевая схема, что и у AverageBuffer, но
// сумма держится в time.Duration без потери точности на float64.
type DurationAverageBuffer struct {
	values []time.Duration
	next   int
	total  time.Duration
}

// NewDurationAverageBuffer создаёт буфер указанной ёмкости (минимум 1)
func NewDurationAverageBuffer(capacity int) *DurationAverageBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &DurationAverageBuffer{
		values: make([]time.Duration, 0, capacity),
	}
}

// Push добавляет длительность, вытесняя самую старую при заполненном
// буфере, и возвращает новое среднее
func (b *DurationAverageBuffer) Push(value time.Duration) time.Duration {
	if len(b.values) == cap(b.values) {
		b.total -= b.values[b.next]
		b.values[b.next] = value
		b.next = (b.next + 1) % cap(b.values)
	} else {
		b.values = append(b.values, value)
	}
	b.total += value
	return b.total / time.Duration(len(b.values))
}

// Average возвращает среднюю длительность (0 для пустого буфера)
func (b *DurationAverageBuffer) Average() time.Duration {
	if len(b.values) == 0 {
		return 0
	}
	return b.total / time.Duration(len(b.values))
}

// Len возвращает число накопленных значений
func (b *DurationAverageBuffer) Len() int {
	return len(b.values)
}

// Clear опустошает буфер
func (b *DurationAverageBuffer) Clear() {
	b.values = b.values[:0]
	b.next = 0
	b.total = 0
}
