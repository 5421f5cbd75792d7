package render

import (
	"math"

	"github.com/annel0/voxel-viewer/internal/vec"
)

// Camera представляет камеру с поворотом pitch/yaw в пространстве сетки.
// Rotation.X — тангаж (радианы, ограничен ±90°), Rotation.Y — рыскание
// (радианы, нормализуется в [0, 2π)).
type Camera struct {
	Position    vec.Vec3Float
	Rotation    vec.Vec2Float
	Fov         float64 // Вертикальное поле зрения в радианах
	AspectRatio float64
	ZNear       float64
	ZFar        float64
}

// NewCamera создаёт камеру без поворота в указанной позиции
func NewCamera(position vec.Vec3Float, fov, aspectRatio, zNear, zFar float64) *Camera {
	return &Camera{
		Position:    position,
		Fov:         fov,
		AspectRatio: aspectRatio,
		ZNear:       zNear,
		ZFar:        zFar,
	}
}

// NewCameraLookAt создаёт камеру, направленную на точку target
func NewCameraLookAt(position, target vec.Vec3Float, fov, aspectRatio, zNear, zFar float64) *Camera {
	c := NewCamera(position, fov, aspectRatio, zNear, zFar)
	c.LookAt(target)
	return c
}

// rotationFromDirection вычисляет пару углов (pitch, yaw) для
// направления взгляда. Камера без поворота смотрит вдоль -Z.
func rotationFromDirection(dir vec.Vec3Float) vec.Vec2Float {
	return vec.Vec2Float{
		X: math.Asin(dir.Y),
		Y: math.Atan2(-dir.X, -dir.Z),
	}
}

// LookAt поворачивает камеру на точку target
func (c *Camera) LookAt(target vec.Vec3Float) {
	c.LookTo(target.Sub(c.Position).Normalized())
}

// LookTo поворачивает камеру вдоль направления dir (нормализованного)
func (c *Camera) LookTo(dir vec.Vec3Float) {
	c.Rotation = rotationFromDirection(dir)
}

// Rotate доворачивает камеру на пару углов (pitch, yaw) в радианах.
// Тангаж ограничивается ±90°, рыскание заворачивается в [0, 2π).
func (c *Camera) Rotate(delta vec.Vec2Float) {
	c.Rotation = c.Rotation.Add(delta)

	limit := 90 * math.Pi / 180
	if c.Rotation.X > limit {
		c.Rotation.X = limit
	}
	if c.Rotation.X < -limit {
		c.Rotation.X = -limit
	}

	c.Rotation.Y = math.Mod(c.Rotation.Y, 2*math.Pi)
	if c.Rotation.Y < 0 {
		c.Rotation.Y += 2 * math.Pi
	}
}

// RotateVec поворачивает вектор поворотом камеры: сначала тангаж
// вокруг X, затем рыскание вокруг Y (порядок YXZ)
func (c *Camera) RotateVec(v vec.Vec3Float) vec.Vec3Float {
	sinP, cosP := math.Sincos(c.Rotation.X)
	sinY, cosY := math.Sincos(c.Rotation.Y)

	// Поворот вокруг X (тангаж)
	y := v.Y*cosP - v.Z*sinP
	z := v.Y*sinP + v.Z*cosP

	// Поворот вокруг Y (рыскание)
	return vec.Vec3Float{
		X: v.X*cosY + z*sinY,
		Y: y,
		Z: -v.X*sinY + z*cosY,
	}
}

// rotateVecY поворачивает вектор только рысканием (для планарного движения)
func (c *Camera) rotateVecY(v vec.Vec3Float) vec.Vec3Float {
	sinY, cosY := math.Sincos(c.Rotation.Y)
	return vec.Vec3Float{
		X: v.X*cosY + v.Z*sinY,
		Y: v.Y,
		Z: -v.X*sinY + v.Z*cosY,
	}
}

// Forward возвращает направление взгляда камеры
func (c *Camera) Forward() vec.Vec3Float {
	return c.RotateVec(vec.Vec3Float{Z: -1})
}

// Translate смещает камеру в мировых координатах
func (c *Camera) Translate(translation vec.Vec3Float) {
	c.Position = c.Position.Add(translation)
}

// TranslateRotated смещает камеру относительно её поворота
func (c *Camera) TranslateRotated(translation vec.Vec3Float) {
	if translation.LengthSquared() > 1e-6 {
		c.Translate(c.RotateVec(translation))
	}
}

// TranslatePlanar смещает камеру относительно рыскания, игнорируя тангаж
func (c *Camera) TranslatePlanar(translation vec.Vec3Float) {
	if translation.LengthSquared() > 1e-6 {
		c.Translate(c.rotateVecY(translation))
	}
}

// RayMultiplier возвращает множитель, переводящий NDC-координаты
// в направление луча для данного поля зрения и размера экрана
func RayMultiplier(fov float64, width, height int) vec.Vec2Float {
	aspectRatio := float64(width) / float64(height)
	tanFovHalf := math.Tan(fov * 0.5)
	return vec.Vec2Float{
		X: aspectRatio * tanFovHalf,
		Y: -tanFovHalf,
	}
}

// RayMult возвращает множитель NDC→направление для текущих Fov и
// AspectRatio камеры. Вычисляется один раз на кадр: тангенс половины
// поля зрения не зависит от пикселя.
func (c *Camera) RayMult() vec.Vec2Float {
	tanFovHalf := math.Tan(c.Fov * 0.5)
	return vec.Vec2Float{
		X: c.AspectRatio * tanFovHalf,
		Y: -tanFovHalf,
	}
}

// ScreenRayMult строит луч для NDC-точки экрана по заранее
// вычисленному множителю RayMult
func (c *Camera) ScreenRayMult(ndc, mult vec.Vec2Float) vec.Ray {
	local := vec.Vec3Float{
		X: ndc.X * mult.X,
		Y: ndc.Y * mult.Y,
		Z: -1,
	}

	return vec.NewRay(c.Position, c.RotateVec(local).Normalized())
}

// ScreenRay строит луч в пространстве сетки для NDC-точки экрана
// (x и y в [-1, 1], y растёт вниз). Направление нормализовано,
// поэтому параметр t луча совпадает с метрической дистанцией.
func (c *Camera) ScreenRay(ndc vec.Vec2Float) vec.Ray {
	return c.ScreenRayMult(ndc, c.RayMult())
}
