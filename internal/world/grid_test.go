package world

import (
	"testing"
)

func TestGridGetSet(t *testing.T) {
	g := NewGrid()

	// Свежая сетка пуста
	if id := g.Get(10, 20, 30); id != AirBlockID {
		t.Errorf("Ожидался воздух в пустой сетке, получено %d", id)
	}

	// Get возвращает последнее записанное значение
	g.Set(10, 20, 30, StoneBlockID)
	if id := g.Get(10, 20, 30); id != StoneBlockID {
		t.Errorf("Ожидался StoneBlockID, получено %d", id)
	}

	g.Set(10, 20, 30, GrassBlockID)
	if id := g.Get(10, 20, 30); id != GrassBlockID {
		t.Errorf("Ожидался GrassBlockID после перезаписи, получено %d", id)
	}

	// Соседние ячейки не затронуты
	if id := g.Get(11, 20, 30); id != AirBlockID {
		t.Errorf("Соседняя ячейка изменилась: %d", id)
	}

	// Угловые ячейки адресуются корректно
	g.Set(0, 0, 0, DirtBlockID)
	g.Set(GridSize-1, GridSize-1, GridSize-1, StoneBlockID)
	if id := g.Get(0, 0, 0); id != DirtBlockID {
		t.Errorf("Ячейка (0,0,0): ожидался DirtBlockID, получено %d", id)
	}
	if id := g.Get(GridSize-1, GridSize-1, GridSize-1); id != StoneBlockID {
		t.Errorf("Ячейка (63,63,63): ожидался StoneBlockID, получено %d", id)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, 0, StoneBlockID)

	outside := [][3]int{
		{64, 0, 0},
		{-1, 0, 0},
		{0, 64, 0},
		{0, -1, 0},
		{0, 0, 64},
		{0, 0, -1},
		{100, 100, 100},
		{-100, 5, 5},
	}

	for _, c := range outside {
		// Чтение вне границ — воздух
		if id := g.Get(c[0], c[1], c[2]); id != AirBlockID {
			t.Errorf("Get(%d,%d,%d): ожидался воздух, получено %d", c[0], c[1], c[2], id)
		}
		// Запись вне границ молча игнорируется
		g.Set(c[0], c[1], c[2], DirtBlockID)
	}

	// Содержимое сетки не изменилось
	if id := g.Get(0, 0, 0); id != StoneBlockID {
		t.Errorf("Запись вне границ изменила сетку: %d", id)
	}
	for y := 0; y < GridSize; y++ {
		for z := 0; z < GridSize; z++ {
			for x := 0; x < GridSize; x++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				if id := g.Get(x, y, z); id != AirBlockID {
					t.Fatalf("Неожиданный блок %d в (%d,%d,%d)", id, x, y, z)
				}
			}
		}
	}
}

func TestGridDirtyFlag(t *testing.T) {
	g := NewGrid()

	// Новая сетка ещё не выгружалась в зеркальную копию
	if !g.Dirty() {
		t.Error("Новая сетка должна быть помечена dirty")
	}

	g.MarkSynced()
	if g.Dirty() {
		t.Error("MarkSynced должен сбрасывать флаг dirty")
	}

	// Любая мутация взводит флаг
	g.Set(1, 2, 3, StoneBlockID)
	if !g.Dirty() {
		t.Error("Set должен взводить флаг dirty")
	}

	// Запись вне границ — не мутация
	g.MarkSynced()
	g.Set(-1, 0, 0, StoneBlockID)
	if g.Dirty() {
		t.Error("Запись вне границ не должна взводить флаг dirty")
	}

	// Чтение флаг не трогает
	g.MarkSynced()
	_ = g.Get(1, 2, 3)
	if g.Dirty() {
		t.Error("Get не должен взводить флаг dirty")
	}
}

func TestGridFlatIndexOrder(t *testing.T) {
	// Контракт плоского индекса: (y<<12) | (z<<6) | x
	cases := []struct {
		x, y, z int
		index   int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 1},
		{0, 0, 1, 64},
		{0, 1, 0, 4096},
		{63, 63, 63, gridCells - 1},
		{5, 3, 7, 3<<12 | 7<<6 | 5},
	}

	for _, c := range cases {
		if got := flatIndex(c.x, c.y, c.z); got != c.index {
			t.Errorf("flatIndex(%d,%d,%d) = %d, ожидалось %d", c.x, c.y, c.z, got, c.index)
		}
	}

	// Порядок массива Blocks совпадает с порядком индекса
	g := NewGrid()
	g.Set(5, 3, 7, StoneBlockID)
	if g.Blocks()[3<<12|7<<6|5] != StoneBlockID {
		t.Error("Плоский массив не совпадает с порядком flatIndex")
	}
}
