package vec

// Ray представляет луч в локальном пространстве сетки: точка старта
// и направление. Направление не обязано быть нормализованным — параметр t
// измеряется в единицах длины направления.
type Ray struct {
	Origin Vec3Float
	Dir    Vec3Float
}

// NewRay создаёт луч с указанными стартом и направлением.
// Направление не нормализуется — при необходимости это делает вызывающий.
func NewRay(origin, dir Vec3Float) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// RayToTarget создаёт луч из origin в сторону target с нормализованным направлением
func RayToTarget(origin, target Vec3Float) Ray {
	return Ray{
		Origin: origin,
		Dir:    target.Sub(origin).Normalized(),
	}
}

// PointAt возвращает точку на луче для параметра t
func (r Ray) PointAt(t float64) Vec3Float {
	return r.Dir.Mul(t).Add(r.Origin)
}

// Inverted возвращает луч с противоположным направлением
func (r Ray) Inverted() Ray {
	return Ray{Origin: r.Origin, Dir: r.Dir.Neg()}
}
