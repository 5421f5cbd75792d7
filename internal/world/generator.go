package world

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума Перлина (сглаживание, частота, октавы)
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// TerrainGenerator заполняет сетку демонстрационным ландшафтом
// по карте высот из шума Перлина
type TerrainGenerator struct {
	Seed       int64   // Сид для генерации шума
	NoiseScale float64 // Масштаб шума (сглаженность ландшафта)
	BaseHeight float64 // Базовая высота поверхности в блоках
	Amplitude  float64 // Амплитуда перепадов высот в блоках

	noise *perlin.Perlin
}

// NewTerrainGenerator создаёт генератор ландшафта с указанным сидом
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		Seed:       seed,
		NoiseScale: 0.05,
		BaseHeight: 20.0,
		Amplitude:  12.0,
		noise:      perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// heightAt возвращает высоту поверхности в колонке (x, z)
func (tg *TerrainGenerator) heightAt(x, z int) int {
	nx := float64(x) * tg.NoiseScale
	nz := float64(z) * tg.NoiseScale

	// Noise2D возвращает значение от -1 до 1, приводим к диапазону [0, 1]
	n := (tg.noise.Noise2D(nx, nz) + 1.0) / 2.0

	h := int(tg.BaseHeight + n*tg.Amplitude)
	if h < 1 {
		h = 1
	}
	if h > GridSize {
		h = GridSize
	}
	return h
}

// Generate заполняет сетку ландшафтом: камень в глубине, слой земли
// и трава на поверхности. Генерация детерминирована по сиду.
func (tg *TerrainGenerator) Generate(g *Grid) {
	for z := 0; z < GridSize; z++ {
		for x := 0; x < GridSize; x++ {
			height := tg.heightAt(x, z)
			for y := 0; y < height; y++ {
				switch {
				case y == height-1:
					g.Set(x, y, z, GrassBlockID)
				case y >= height-4:
					g.Set(x, y, z, DirtBlockID)
				default:
					g.Set(x, y, z, StoneBlockID)
				}
			}
		}
	}
}
