package math

import (
	"math"
	"testing"
)

const tolerance = 0.0001

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v1.Add(v2), NewVec3(5, 7, 9); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := v2.Sub(v1), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := v1.Mul(2), NewVec3(2, 4, 6); got != want {
		t.Errorf("Mul: expected %v, got %v", want, got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := Vec3Right.Cross(Vec3Up); got != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, got)
	}
	if got, want := v1.Min(NewVec3(0, 5, 3)), NewVec3(0, 2, 3); got != want {
		t.Errorf("Min: expected %v, got %v", want, got)
	}
	if got, want := v1.Max(NewVec3(0, 5, 3)), NewVec3(1, 5, 3); got != want {
		t.Errorf("Max: expected %v, got %v", want, got)
	}
}

func TestVec3Normalize(t *testing.T) {
	normalized := NewVec3(3, 0, 0).Normalize()
	if normalized != NewVec3(1, 0, 0) {
		t.Errorf("Normalize: expected (1,0,0), got %v", normalized)
	}
	if zero := Vec3Zero.Normalize(); zero != Vec3Zero {
		t.Errorf("Normalize: zero vector should stay zero, got %v", zero)
	}
}

func TestVec2Length(t *testing.T) {
	if got := NewVec2(3, 4).Length(); !near(got, 5) {
		t.Errorf("Length: expected 5, got %v", got)
	}
	if got := NewVec2(1.5, -2).XZ(7); got != NewVec3(1.5, 7, -2) {
		t.Errorf("XZ: expected (1.5,7,-2), got %v", got)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}
	if got := m.MulPoint(Vec3Zero); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}
	if got := m.MulDir(Vec3Up); got != Vec3Up {
		t.Errorf("Translation: directions must ignore translation, got %v", got)
	}
}

func TestMat4RotationY(t *testing.T) {
	// +X rotated a quarter turn about +Y lands on -Z.
	got := Mat4RotationY(math.Pi / 2).MulPoint(Vec3Right)
	if !nearVec(got, NewVec3(0, 0, -1)) {
		t.Errorf("RotationY: expected (0,0,-1), got %v", got)
	}
}

func TestMat4QuaternionMatchesAxisRotation(t *testing.T) {
	angle := float32(0.7)
	s, c := float32(math.Sin(float64(angle/2))), float32(math.Cos(float64(angle/2)))
	q := Mat4FromQuaternion(0, s, 0, c)
	r := Mat4RotationY(angle)

	p := NewVec3(0.3, -1.2, 2.5)
	if !nearVec(q.MulPoint(p), r.MulPoint(p)) {
		t.Errorf("quaternion rotation %v differs from axis rotation %v", q.MulPoint(p), r.MulPoint(p))
	}
}

func TestMat4TRSOrder(t *testing.T) {
	m := Mat4TRS(NewVec3(10, 0, 0), Mat4RotationZ(math.Pi/2), NewVec3(2, 2, 2))
	// (1,0,0) scaled to (2,0,0), rotated to (0,2,0), translated to (10,2,0).
	if got := m.MulPoint(Vec3Right); !nearVec(got, NewVec3(10, 2, 0)) {
		t.Errorf("TRS: expected (10,2,0), got %v", got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	m := Mat4LookAt(eye, Vec3Zero, Vec3Up)

	if got := m.MulPoint(eye); !nearVec(got, Vec3Zero) {
		t.Errorf("LookAt: expected eye to transform to origin, got %v", got)
	}
	if got := m.MulPoint(Vec3Zero); !nearVec(got, NewVec3(0, 0, -5)) {
		t.Errorf("LookAt: expected target in front of the camera, got %v", got)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(math.Pi/4, 16.0/9.0, 0.1, 100)
	if m[0][0] == 0 || m[1][1] == 0 {
		t.Error("Perspective: expected non-zero X and Y scale")
	}
	if m[2][3] != -1 {
		t.Errorf("Perspective: expected w = -z, got %v", m[2][3])
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4RotationY(0.3)
	m2 := Mat4Translation(NewVec3(1, 2, 3))

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
