package render

import (
	"image"
	"image/color"
	"time"

	"github.com/annel0/voxel-viewer/internal/vec"
	"github.com/annel0/voxel-viewer/internal/world"
)

// Fog описывает линейный туман по дистанции: до Start цвет блока
// чистый, после End остаётся только цвет тумана
type Fog struct {
	Start float64
	End   float64
	Color color.RGBA
}

// Raytracer — программное зеркало внешнего compute-прохода: по одному
// лучу на пиксель через ту же трассировку сетки. Работает не с самой
// сеткой, а с её зеркальной копией, обновляемой явным вызовом Sync —
// так же, как GPU-буфер обновляется по флагу dirty.
type Raytracer struct {
	camera      *Camera
	mirror      *world.Grid
	width       int
	height      int
	maxDistance float64
	fog         Fog
	sky         color.RGBA
	metrics     *Metrics
}

// NewRaytracer создаёт рендерер кадров указанного размера
func NewRaytracer(camera *Camera, width, height int, maxDistance float64) *Raytracer {
	mirror := world.NewGrid()
	mirror.MarkSynced()

	return &Raytracer{
		camera:      camera,
		mirror:      mirror,
		width:       width,
		height:      height,
		maxDistance: maxDistance,
		fog: Fog{
			Start: maxDistance * 0.55,
			End:   maxDistance,
			Color: color.RGBA{R: 168, G: 196, B: 224, A: 255},
		},
		sky: color.RGBA{R: 126, G: 168, B: 220, A: 255},
	}
}

// SetMetrics подключает экспортер метрик рендера (nil отключает)
func (rt *Raytracer) SetMetrics(m *Metrics) {
	rt.metrics = m
}

// SetFog настраивает параметры тумана
func (rt *Raytracer) SetFog(fog Fog) {
	rt.fog = fog
}

// Sync обновляет зеркальную копию массива блоков, если сетка помечена
// dirty, и сбрасывает флаг. Вызывается владельцем один раз на кадр;
// мутации сетки никогда не синхронизируют её неявно.
func (rt *Raytracer) Sync(g *world.Grid) {
	if !g.Dirty() {
		return
	}
	rt.mirror.CopyFrom(g)
	g.MarkSynced()
	rt.metrics.ObserveSync()
}

// RenderFrame трассирует кадр по зеркальной копии сетки
func (rt *Raytracer) RenderFrame() *image.RGBA {
	started := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	// Множитель NDC→направление один на кадр
	mult := rt.camera.RayMult()

	var rays, hits uint64
	for py := 0; py < rt.height; py++ {
		ndcY := 2*(float64(py)+0.5)/float64(rt.height) - 1
		for px := 0; px < rt.width; px++ {
			ndcX := 2*(float64(px)+0.5)/float64(rt.width) - 1

			ray := rt.camera.ScreenRayMult(vec.Vec2Float{X: ndcX, Y: ndcY}, mult)
			rays++

			if hit, ok := rt.mirror.Raycast(ray, rt.maxDistance); ok {
				hits++
				img.SetRGBA(px, py, rt.shade(hit))
			} else {
				img.SetRGBA(px, py, rt.sky)
			}
		}
	}

	rt.metrics.ObserveFrame(time.Since(started), rays, hits)
	return img
}

// shade возвращает цвет пикселя: палитра по идентификатору блока,
// яркость по грани попадания, линейный туман по дистанции
func (rt *Raytracer) shade(hit world.RayHit) color.RGBA {
	base := blockColor(hit.ID)
	light := faceLight(hit.Face)

	c := color.RGBA{
		R: uint8(float64(base.R) * light),
		G: uint8(float64(base.G) * light),
		B: uint8(float64(base.B) * light),
		A: 255,
	}

	if hit.Distance <= rt.fog.Start || rt.fog.End <= rt.fog.Start {
		return c
	}
	f := (hit.Distance - rt.fog.Start) / (rt.fog.End - rt.fog.Start)
	if f > 1 {
		f = 1
	}
	return lerpColor(c, rt.fog.Color, f)
}

// blockColor возвращает базовый цвет блока
func blockColor(id world.BlockID) color.RGBA {
	switch id {
	case world.GrassBlockID:
		return color.RGBA{R: 106, G: 170, B: 64, A: 255}
	case world.DirtBlockID:
		return color.RGBA{R: 134, G: 96, B: 67, A: 255}
	case world.StoneBlockID:
		return color.RGBA{R: 125, G: 125, B: 125, A: 255}
	default:
		return color.RGBA{R: 200, G: 64, B: 200, A: 255}
	}
}

// faceLight возвращает коэффициент яркости грани. Попадание без грани
// (камера внутри блока) рисуется без затенения.
func faceLight(face world.Face) float64 {
	switch face {
	case world.FacePosY:
		return 1.0
	case world.FaceNegY:
		return 0.45
	case world.FacePosX, world.FaceNegX:
		return 0.8
	case world.FacePosZ, world.FaceNegZ:
		return 0.65
	default:
		return 1.0
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
