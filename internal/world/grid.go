package world

// BlockID представляет идентификатор типа блока.
// Значение 0 — воздух; любое ненулевое значение трассировка
// считает твёрдым блоком, не интерпретируя его дальше.
type BlockID uint32

// Стандартные идентификаторы блоков демо-мира
const (
	AirBlockID BlockID = iota
	GrassBlockID
	DirtBlockID
	StoneBlockID
)

// Размеры сетки. GridSize — степень двойки, поэтому плоский индекс
// собирается битовыми сдвигами: index = (y<<12) | (z<<6) | x.
const (
	GridSize  = 64
	gridShift = 6
	gridCells = GridSize * GridSize * GridSize
)

// Grid — плотная кубическая сетка блоков фиксированного размера 64x64x64.
// У сетки ровно один владелец; методы не защищены мьютексом и не должны
// вызываться конкурентно с мутациями.
type Grid struct {
	blocks []BlockID
	dirty  bool
}

// NewGrid создаёт пустую сетку (все ячейки — воздух).
// Флаг dirty взводится сразу: свежая сетка ещё ни разу не выгружалась
// в зеркальную копию рендера.
func NewGrid() *Grid {
	return &Grid{
		blocks: make([]BlockID, gridCells),
		dirty:  true,
	}
}

// flatIndex собирает плоский индекс из координат ячейки.
// Вызывается только для координат, прошедших проверку границ.
func flatIndex(x, y, z int) int {
	return (y << (2 * gridShift)) | (z << gridShift) | x
}

// inBounds проверяет, что все три координаты лежат в [0, GridSize)
func inBounds(x, y, z int) bool {
	return x >= 0 && x < GridSize &&
		y >= 0 && y < GridSize &&
		z >= 0 && z < GridSize
}

// Get возвращает идентификатор блока в ячейке или 0 (воздух),
// если любая из координат вне сетки. Выход за границы — не ошибка:
// горячий цикл трассировки зовёт Get на каждом шаге.
func (g *Grid) Get(x, y, z int) BlockID {
	if !inBounds(x, y, z) {
		return AirBlockID
	}
	return g.blocks[flatIndex(x, y, z)]
}

// Set записывает идентификатор блока в ячейку и взводит флаг dirty.
// Запись вне границ молча игнорируется.
func (g *Grid) Set(x, y, z int, id BlockID) {
	if !inBounds(x, y, z) {
		return
	}
	g.blocks[flatIndex(x, y, z)] = id
	g.dirty = true
}

// Dirty сообщает, что содержимое сетки разошлось с зеркальной копией
// рендера и требует повторной выгрузки
func (g *Grid) Dirty() bool {
	return g.dirty
}

// MarkSynced сбрасывает флаг dirty. Вызывается владельцем зеркальной
// копии после выгрузки; Set никогда не сбрасывает флаг сам.
func (g *Grid) MarkSynced() {
	g.dirty = false
}

// Blocks возвращает плоский массив блоков в фиксированном порядке
// индексации. Срез принадлежит сетке: вызывающий копирует его
// (контракт зеркалирования), но не изменяет.
func (g *Grid) Blocks() []BlockID {
	return g.blocks
}

// CopyFrom копирует плоский массив блоков из src дословно, в том же
// порядке индексации — операция выгрузки по контракту зеркалирования.
// Флаги dirty обеих сеток не трогает: сброс у источника — решение
// владельца зеркальной копии.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.blocks, src.blocks)
}
