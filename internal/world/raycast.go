package world

import (
	"math"

	"github.com/annel0/voxel-viewer/internal/vec"
)

// entryEpsilon — фиксированное проникновение, добавляемое к дистанции
// входа при подрезке луча до границы сетки. Гарантирует, что рабочая
// точка старта окажется строго внутри первой ячейки, а не ровно на её
// границе: иначе округление плавающей точки заставило бы шаги
// осциллировать между двумя соседними ячейками.
const entryEpsilon = 1e-5

// Raycast проходит сетку вдоль луча алгоритмом 3D DDA и возвращает
// первую твёрдую ячейку в пределах дистанции maxDist (параметр t
// исходного луча). Второе значение — false, если луч ничего не задел;
// промах — нормальный исход, а не ошибка.
//
// Направление луча не обязано быть нормализованным: все дистанции
// измеряются в единицах его длины. Луч с нулевым направлением
// проверяет только ячейку, содержащую его старт.
func (g *Grid) Raycast(ray vec.Ray, maxDist float64) (RayHit, bool) {
	origin := ray.Origin
	dir := ray.Dir

	stepX := stepSign(dir.X)
	stepY := stepSign(dir.Y)
	stepZ := stepSign(dir.Z)

	insideX := origin.X >= 0 && origin.X < GridSize
	insideY := origin.Y >= 0 && origin.Y < GridSize
	insideZ := origin.Z >= 0 && origin.Z < GridSize

	// Дистанция выхода из сетки по каждой оси (от исходного старта).
	// Остаётся бесконечной, если подрезка входа не выполнялась.
	exitX := math.Inf(1)
	exitY := math.Inf(1)
	exitZ := math.Inf(1)

	baseOffset := 0.0
	entryFace := FaceNone
	clipped := false

	if !insideX || !insideY || !insideZ {
		// Ось, на которой старт вне сетки, а шаг уводит дальше от неё
		// (в том числе нулевой шаг), никогда не впустит луч внутрь.
		if (origin.X < 0 && stepX <= 0) || (origin.X >= GridSize && stepX >= 0) {
			return RayHit{}, false
		}
		if (origin.Y < 0 && stepY <= 0) || (origin.Y >= GridSize && stepY >= 0) {
			return RayHit{}, false
		}
		if (origin.Z < 0 && stepZ <= 0) || (origin.Z >= GridSize && stepZ >= 0) {
			return RayHit{}, false
		}

		enterX, exX := slabInterval(origin.X, dir.X)
		enterY, exY := slabInterval(origin.Y, dir.Y)
		enterZ, exZ := slabInterval(origin.Z, dir.Z)

		// Вход — максимум по осям; при точном равенстве приоритет X, Y, Z
		tEnter := enterX
		entryAxis := axisX
		if enterY > tEnter {
			tEnter = enterY
			entryAxis = axisY
		}
		if enterZ > tEnter {
			tEnter = enterZ
			entryAxis = axisZ
		}

		tExit := math.Min(exX, math.Min(exY, exZ))
		if tEnter >= tExit {
			// путь луча проходит мимо куба сетки
			return RayHit{}, false
		}
		if tEnter >= maxDist {
			// куб дальше бюджета дистанции
			return RayHit{}, false
		}

		baseOffset = tEnter + entryEpsilon
		origin = ray.PointAt(baseOffset)
		entryFace = entryFaceFor(entryAxis, stepX, stepY, stepZ)
		exitX, exitY, exitZ = exX, exY, exZ
		clipped = true
	}

	// Параметры шага: tDelta — цена пересечения одной ячейки по оси.
	// Знаменатель ограничен снизу минимальным положительным числом,
	// чтобы нулевая компонента давала бесконечный tDelta, а не панику.
	tDeltaX := 1 / math.Max(math.Abs(dir.X), math.SmallestNonzeroFloat64)
	tDeltaY := 1 / math.Max(math.Abs(dir.Y), math.SmallestNonzeroFloat64)
	tDeltaZ := 1 / math.Max(math.Abs(dir.Z), math.SmallestNonzeroFloat64)

	x := int(math.Floor(origin.X))
	y := int(math.Floor(origin.Y))
	z := int(math.Floor(origin.Z))

	// Начальные tMax: дистанция от рабочего старта до ближайшей границы
	// ячейки по оси, выраженная от исходного старта луча.
	tMaxX := initialTMax(origin.X, float64(x), stepX, tDeltaX, baseOffset)
	tMaxY := initialTMax(origin.Y, float64(y), stepY, tDeltaY, baseOffset)
	tMaxZ := initialTMax(origin.Z, float64(z), stepZ, tDeltaZ, baseOffset)

	// Ячейка, содержащая рабочий старт
	if id := g.Get(x, y, z); id != AirBlockID {
		if clipped {
			// Вошли в сетку сквозь её граничную плоскость
			return RayHit{
				Coord:    vec.Vec3{X: x, Y: y, Z: z},
				ID:       id,
				Face:     entryFace,
				Distance: baseOffset,
			}, true
		}
		// Старт уже внутри твёрдого блока: грани нет
		return RayHit{
			Coord:    vec.Vec3{X: x, Y: y, Z: z},
			ID:       id,
			Face:     FaceNone,
			Distance: baseOffset,
		}, true
	}

	// Основной цикл DDA. Каждый tMax монотонно растёт и ограничен
	// сверху maxDist, поэтому цикл всегда завершается.
	for {
		if tMaxX <= tMaxY && tMaxX <= tMaxZ {
			limit := math.Min(exitX, maxDist)
			if tMaxX >= limit {
				return RayHit{}, false
			}
			x += stepX
			if id := g.Get(x, y, z); id != AirBlockID {
				return RayHit{
					Coord:    vec.Vec3{X: x, Y: y, Z: z},
					ID:       id,
					Face:     entryFaceFor(axisX, stepX, stepY, stepZ),
					Distance: tMaxX,
				}, true
			}
			tMaxX += tDeltaX
		} else if tMaxY <= tMaxZ {
			limit := math.Min(exitY, maxDist)
			if tMaxY >= limit {
				return RayHit{}, false
			}
			y += stepY
			if id := g.Get(x, y, z); id != AirBlockID {
				return RayHit{
					Coord:    vec.Vec3{X: x, Y: y, Z: z},
					ID:       id,
					Face:     entryFaceFor(axisY, stepX, stepY, stepZ),
					Distance: tMaxY,
				}, true
			}
			tMaxY += tDeltaY
		} else {
			limit := math.Min(exitZ, maxDist)
			if tMaxZ >= limit {
				return RayHit{}, false
			}
			z += stepZ
			if id := g.Get(x, y, z); id != AirBlockID {
				return RayHit{
					Coord:    vec.Vec3{X: x, Y: y, Z: z},
					ID:       id,
					Face:     entryFaceFor(axisZ, stepX, stepY, stepZ),
					Distance: tMaxZ,
				}, true
			}
			tMaxZ += tDeltaZ
		}
	}
}

const (
	axisX = iota
	axisY
	axisZ
)

// stepSign возвращает направление шага по оси: -1, 0 или +1
func stepSign(d float64) int {
	if d > 0 {
		return 1
	}
	if d < 0 {
		return -1
	}
	return 0
}

// slabInterval возвращает параметрические дистанции пересечения плоскостей
// 0 и GridSize по одной оси. Ось с нулевой компонентой направления даёт
// неограниченный интервал: старт на ней уже внутри, и входа/выхода она
// не ограничивает.
func slabInterval(o, d float64) (enter, exit float64) {
	if d > 0 {
		return -o / d, (GridSize - o) / d
	}
	if d < 0 {
		return (GridSize - o) / d, -o / d
	}
	return math.Inf(-1), math.Inf(1)
}

// initialTMax возвращает дистанцию от рабочего старта до первой границы
// ячейки по оси, сдвинутую на baseOffset в систему отсчёта исходного луча
func initialTMax(o, cell float64, step int, tDelta, baseOffset float64) float64 {
	switch step {
	case 1:
		return baseOffset + (cell+1-o)*tDelta
	case -1:
		return baseOffset + (o-cell)*tDelta
	default:
		return math.Inf(1)
	}
}

// entryFaceFor возвращает грань, через которую луч входит в ячейку при
// шаге вдоль оси axis: грань, обращённую против направления шага
func entryFaceFor(axis, stepX, stepY, stepZ int) Face {
	switch axis {
	case axisX:
		if stepX > 0 {
			return FaceNegX
		}
		return FacePosX
	case axisY:
		if stepY > 0 {
			return FaceNegY
		}
		return FacePosY
	default:
		if stepZ > 0 {
			return FaceNegZ
		}
		return FacePosZ
	}
}
