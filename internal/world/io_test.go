package world

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestGridSaveLoadRoundTrip(t *testing.T) {
	src := NewGrid()
	src.Set(0, 0, 0, StoneBlockID)
	src.Set(63, 63, 63, GrassBlockID)
	src.Set(32, 16, 8, DirtBlockID)
	src.Set(1, 2, 3, BlockID(0xDEADBEEF))

	path := filepath.Join(t.TempDir(), "world.dat")
	if err := src.SaveFile(path); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	// Файл имеет ровно N^3 * 4 байта: без заголовка и метаданных
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Ошибка stat: %v", err)
	}
	if info.Size() != int64(gridCells*4) {
		t.Errorf("Размер файла %d, ожидалось %d", info.Size(), gridCells*4)
	}

	dst := NewGrid()
	dst.MarkSynced()
	if err := dst.LoadFile(path); err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}

	// Успешная загрузка помечает сетку dirty
	if !dst.Dirty() {
		t.Error("Загрузка должна взводить флаг dirty")
	}

	// Каждая ячейка воспроизводится точно
	for y := 0; y < GridSize; y++ {
		for z := 0; z < GridSize; z++ {
			for x := 0; x < GridSize; x++ {
				if want, got := src.Get(x, y, z), dst.Get(x, y, z); want != got {
					t.Fatalf("Ячейка (%d,%d,%d): ожидалось %d, получено %d", x, y, z, want, got)
				}
			}
		}
	}
}

func TestGridWriteBigEndian(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, 0, BlockID(0x01020304))

	var buf bytes.Buffer
	if err := g.WriteTo(&buf); err != nil {
		t.Fatalf("Ошибка записи: %v", err)
	}

	data := buf.Bytes()
	if len(data) != gridCells*4 {
		t.Fatalf("Размер дампа %d, ожидалось %d", len(data), gridCells*4)
	}

	// Первая ячейка — big-endian
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(data[:4], want) {
		t.Errorf("Первые байты %v, ожидалось %v", data[:4], want)
	}
}

func TestGridReadShortData(t *testing.T) {
	g := NewGrid()

	// Усечённые данные дают ошибку чтения, а не молчаливое усечение
	short := make([]byte, gridCells*4-8)
	if err := g.ReadFrom(bytes.NewReader(short)); err == nil {
		t.Error("Чтение усечённых данных должно возвращать ошибку")
	}
}

func TestGridLoadWrongLengthFile(t *testing.T) {
	tmp := t.TempDir()

	// Файл с хвостом после массива блоков
	long := filepath.Join(tmp, "long.dat")
	if err := os.WriteFile(long, make([]byte, gridCells*4+1), 0644); err != nil {
		t.Fatalf("Ошибка записи: %v", err)
	}

	// Усечённый файл
	short := filepath.Join(tmp, "short.dat")
	if err := os.WriteFile(short, make([]byte, gridCells*4-4), 0644); err != nil {
		t.Fatalf("Ошибка записи: %v", err)
	}

	for _, path := range []string{long, short} {
		g := NewGrid()
		g.Set(5, 5, 5, StoneBlockID)
		g.MarkSynced()

		if err := g.LoadFile(path); err == nil {
			t.Errorf("Загрузка файла неверной длины %s должна возвращать ошибку", path)
		}
		// Неудачная загрузка не трогает ни содержимое, ни флаг dirty
		if g.Get(5, 5, 5) != StoneBlockID {
			t.Error("Содержимое сетки изменилось после отвергнутой загрузки")
		}
		if g.Dirty() {
			t.Error("Флаг dirty взведён после отвергнутой загрузки")
		}
	}
}

func TestGridLoadMissingFile(t *testing.T) {
	g := NewGrid()
	if err := g.LoadFile(filepath.Join(t.TempDir(), "missing.dat")); err == nil {
		t.Error("Загрузка несуществующего файла должна возвращать ошибку")
	}
}
