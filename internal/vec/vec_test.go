package vec

import (
	"math"
	"testing"
)

func TestToVec3FloorsNegatives(t *testing.T) {
	cases := []struct {
		in   Vec3Float
		want Vec3
	}{
		{Vec3Float{X: 1.5, Y: 2.9, Z: 3.1}, Vec3{X: 1, Y: 2, Z: 3}},
		{Vec3Float{X: -0.5, Y: -1.1, Z: -2.9}, Vec3{X: -1, Y: -2, Z: -3}},
		{Vec3Float{X: 0, Y: -0, Z: 5}, Vec3{X: 0, Y: 0, Z: 5}},
		{Vec3Float{X: -1, Y: -2, Z: -3}, Vec3{X: -1, Y: -2, Z: -3}},
	}

	for _, c := range cases {
		if got := c.in.ToVec3(); !got.Equals(c.want) {
			t.Errorf("ToVec3(%v) = %v, ожидался %v", c.in, got, c.want)
		}
	}
}

func TestNormalized(t *testing.T) {
	v := Vec3Float{X: 3, Y: 0, Z: 4}
	n := v.Normalized()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("длина нормализованного вектора = %v, ожидалась 1", n.Length())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Z-0.8) > 1e-12 {
		t.Errorf("Normalized(%v) = %v", v, n)
	}

	// Нулевой вектор нормализуется в нулевой, без NaN
	zero := Vec3Float{}.Normalized()
	if zero != (Vec3Float{}) {
		t.Errorf("Normalized нулевого вектора = %v, ожидался нулевой", zero)
	}
}

func TestDotAndLength(t *testing.T) {
	a := Vec3Float{X: 1, Y: 2, Z: 3}
	b := Vec3Float{X: 4, Y: -5, Z: 6}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, ожидалось 12", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("LengthSquared = %v, ожидалось 14", got)
	}
	if math.Abs(a.Length()-math.Sqrt(14)) > 1e-12 {
		t.Errorf("Length = %v", a.Length())
	}
}

func TestRayPointAt(t *testing.T) {
	r := NewRay(Vec3Float{X: 1, Y: 2, Z: 3}, Vec3Float{X: 0, Y: -1, Z: 0})

	p := r.PointAt(2.5)
	want := Vec3Float{X: 1, Y: -0.5, Z: 3}
	if p != want {
		t.Errorf("PointAt(2.5) = %v, ожидался %v", p, want)
	}

	// PointAt(0) совпадает со стартом луча
	if r.PointAt(0) != r.Origin {
		t.Error("PointAt(0) должен совпадать с Origin")
	}
}

func TestRayToTarget(t *testing.T) {
	r := RayToTarget(Vec3Float{}, Vec3Float{X: 0, Y: 0, Z: -10})
	if math.Abs(r.Dir.Length()-1) > 1e-12 {
		t.Errorf("RayToTarget не нормализовал направление: %v", r.Dir)
	}
	if r.Dir.Z != -1 {
		t.Errorf("Dir = %v, ожидался (0, 0, -1)", r.Dir)
	}
}

func TestRayInverted(t *testing.T) {
	r := NewRay(Vec3Float{X: 5}, Vec3Float{X: 1, Y: -2, Z: 3})
	inv := r.Inverted()

	if inv.Origin != r.Origin {
		t.Error("Inverted не должен менять Origin")
	}
	if inv.Dir != (Vec3Float{X: -1, Y: 2, Z: -3}) {
		t.Errorf("Inverted.Dir = %v", inv.Dir)
	}
}
