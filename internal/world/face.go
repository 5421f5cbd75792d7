package world

import (
	"math"

	"github.com/annel0/voxel-viewer/internal/vec"
)

// Face — одна из шести осевых граней ячейки. Числовые значения
// совпадают с представлением грани в зеркальном compute-проходе.
type Face uint32

const (
	FaceNone Face = iota
	FacePosX
	FacePosY
	FacePosZ
	FaceNegX
	FaceNegY
	FaceNegZ
)

// String возвращает строковое представление грани
func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FacePosY:
		return "+Y"
	case FacePosZ:
		return "+Z"
	case FaceNegX:
		return "-X"
	case FaceNegY:
		return "-Y"
	case FaceNegZ:
		return "-Z"
	default:
		return "none"
	}
}

// Normal возвращает единичную нормаль грани (нулевой вектор для FaceNone)
func (f Face) Normal() vec.Vec3 {
	switch f {
	case FacePosX:
		return vec.Vec3{X: 1}
	case FacePosY:
		return vec.Vec3{Y: 1}
	case FacePosZ:
		return vec.Vec3{Z: 1}
	case FaceNegX:
		return vec.Vec3{X: -1}
	case FaceNegY:
		return vec.Vec3{Y: -1}
	case FaceNegZ:
		return vec.Vec3{Z: -1}
	default:
		return vec.Vec3{}
	}
}

// Opposite возвращает противоположную грань
func (f Face) Opposite() Face {
	switch f {
	case FacePosX:
		return FaceNegX
	case FacePosY:
		return FaceNegY
	case FacePosZ:
		return FaceNegZ
	case FaceNegX:
		return FacePosX
	case FaceNegY:
		return FacePosY
	case FaceNegZ:
		return FacePosZ
	default:
		return FaceNone
	}
}

// FaceFromDirection возвращает грань по доминирующей оси направления:
// ось с наибольшим модулем компоненты, знак — по знаку компоненты.
// При точном равенстве модулей приоритет осей X, Y, Z.
// Нулевой вектор даёт FaceNone.
func FaceFromDirection(dir vec.Vec3Float) Face {
	ax := math.Abs(dir.X)
	ay := math.Abs(dir.Y)
	az := math.Abs(dir.Z)

	if ax == 0 && ay == 0 && az == 0 {
		return FaceNone
	}

	if ax >= ay && ax >= az {
		if dir.X >= 0 {
			return FacePosX
		}
		return FaceNegX
	}
	if ay >= az {
		if dir.Y >= 0 {
			return FacePosY
		}
		return FaceNegY
	}
	if dir.Z >= 0 {
		return FacePosZ
	}
	return FaceNegZ
}
