package world

import (
	"github.com/annel0/voxel-viewer/internal/vec"
)

// hitPointMargin — отступ, на который реконструированная точка
// попадания вжимается внутрь соседней ячейки. Компенсирует перелёт
// плавающей точки, из-за которого точка могла бы оказаться
// в чужой ячейке.
const hitPointMargin = 1e-3

// RayHit описывает результат попадания луча в твёрдую ячейку.
// Distance измеряется параметром t исходного (не усечённого) луча.
// Face == FaceNone означает, что луч стартовал уже внутри твёрдой
// ячейки и ни одну границу не пересекал.
type RayHit struct {
	Coord    vec.Vec3
	ID       BlockID
	Face     Face
	Distance float64
}

// AdjacentCell возвращает координату пустой ячейки, через которую луч
// прошёл непосредственно перед попаданием: ячейка попадания, смещённая
// на единицу вдоль нормали грани. Для попадания без грани (старт внутри
// твёрдого блока) возвращается сама ячейка попадания.
func (h RayHit) AdjacentCell() vec.Vec3 {
	if h.Face == FaceNone {
		return h.Coord
	}
	return h.Coord.Add(h.Face.Normal())
}

// HitPoint реконструирует точку попадания на исходном луче и вжимает
// её в куб соседней ячейки, уменьшенный на hitPointMargin с каждой
// стороны.
func (h RayHit) HitPoint(ray vec.Ray) vec.Vec3Float {
	point := ray.PointAt(h.Distance)
	cell := h.AdjacentCell().ToFloat()

	return vec.Vec3Float{
		X: clamp(point.X, cell.X+hitPointMargin, cell.X+1-hitPointMargin),
		Y: clamp(point.Y, cell.Y+hitPointMargin, cell.Y+1-hitPointMargin),
		Z: clamp(point.Z, cell.Z+hitPointMargin, cell.Z+1-hitPointMargin),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
