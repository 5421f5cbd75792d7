package world

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Формат файла сетки: GridSize^3 идущих подряд big-endian uint32 без
// заголовка и контрольной суммы, в порядке плоского индекса. Размер
// сетки в файл не пишется — обе стороны договариваются о нём заранее.

// WriteTo сериализует весь массив блоков в w
func (g *Grid) WriteTo(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, g.blocks)
}

// ReadFrom читает массив блоков из r. Файл неверной длины даёт ошибку
// чтения (io.ErrUnexpectedEOF), а не молчаливое усечение. При успехе
// сетка помечается dirty: зеркальная копия рендера устарела.
func (g *Grid) ReadFrom(r io.Reader) error {
	blocks := make([]BlockID, gridCells)
	if err := binary.Read(r, binary.BigEndian, blocks); err != nil {
		return err
	}
	g.blocks = blocks
	g.dirty = true
	return nil
}

// SaveFile записывает сетку в файл по указанному пути.
// Отката при частичной записи нет: неудачный Save может оставить
// усечённый файл.
func (g *Grid) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла сетки: %w", err)
	}
	defer f.Close()

	if err := g.WriteTo(f); err != nil {
		return fmt.Errorf("ошибка записи сетки в %s: %w", path, err)
	}
	return nil
}

// LoadFile читает сетку из файла по указанному пути. Файл неверной
// длины отвергается в обе стороны — и усечённый, и с хвостом после
// массива блоков — до того, как сетка будет изменена.
func (g *Grid) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла сетки: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("ошибка чтения сетки из %s: %w", path, err)
	}
	if info.Size() != int64(gridCells*4) {
		return fmt.Errorf("ошибка чтения сетки из %s: размер файла %d, ожидалось %d",
			path, info.Size(), gridCells*4)
	}

	if err := g.ReadFrom(f); err != nil {
		return fmt.Errorf("ошибка чтения сетки из %s: %w", path, err)
	}
	return nil
}
