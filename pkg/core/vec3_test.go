package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecApproxEqual(a, b Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

func TestUnit(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected Vec3
	}{
		{"axis aligned", NewVec3(0, 0, 5), NewVec3(0, 0, 1)},
		{"diagonal", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"already unit", NewVec3(0, -1, 0), NewVec3(0, -1, 0)},
		{"zero vector", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unit(tt.input)
			if !vecApproxEqual(got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMultiplyVec(t *testing.T) {
	got := MultiplyVec(NewVec3(0.5, 2, -1), NewVec3(4, 0.25, 3))
	if got != NewVec3(2, 0.5, -3) {
		t.Errorf("Expected (2, 0.5, -3), got %v", got)
	}
}

func TestMinMaxVec(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(-1, 2, 3)

	if got := MinVec(a, b); got != NewVec3(-1, -2, 3) {
		t.Errorf("Expected min (-1, -2, 3), got %v", got)
	}
	if got := MaxVec(a, b); got != NewVec3(1, 2, 3) {
		t.Errorf("Expected max (1, 2, 3), got %v", got)
	}
}

func TestNearZero(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"tiny", NewVec3(1e-9, -1e-9, 5e-10), true},
		{"one component large", NewVec3(1e-9, 1e-3, 0), false},
		{"unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearZero(tt.input); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	got := Clamp(NewVec3(-0.5, 0.5, 1.5), 0, 0.999)
	if got != NewVec3(0, 0.5, 0.999) {
		t.Errorf("Expected (0, 0.5, 0.999), got %v", got)
	}
}

func TestReflect(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		incoming Vec3
		expected Vec3
	}{
		{"head on", NewVec3(0, -1, 0), NewVec3(0, 1, 0)},
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(1, 1, 0)},
		{"grazing", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.incoming, normal)
			if !vecApproxEqual(got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			// angle of incidence equals angle of reflection
			if math.Abs(got.Dot(normal)+tt.incoming.Dot(normal)) > tolerance {
				t.Errorf("Reflection changed the normal component: in %v, out %v", tt.incoming, got)
			}
		})
	}
}

func TestRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	t.Run("index matched passes straight through", func(t *testing.T) {
		in := Unit(NewVec3(1, -1, 0))
		got := Refract(in, normal, 1.0)
		if !vecApproxEqual(got, in, tolerance) {
			t.Errorf("Expected %v, got %v", in, got)
		}
	})

	t.Run("obeys snell's law", func(t *testing.T) {
		in := Unit(NewVec3(1, -1, 0))
		eta := 1.0 / 1.5
		got := Refract(in, normal, eta)

		sinIn := math.Sqrt(1 - math.Pow(in.Dot(normal), 2))
		sinOut := math.Sqrt(1 - math.Pow(Unit(got).Dot(normal), 2))
		if math.Abs(sinOut-eta*sinIn) > 1e-9 {
			t.Errorf("Expected sin(out)=%f, got %f", eta*sinIn, sinOut)
		}
		if math.Abs(got.Len()-1) > 1e-9 {
			t.Errorf("Expected unit refracted direction, got length %f", got.Len())
		}
		if got[1] >= 0 {
			t.Errorf("Expected refracted ray to continue below the surface, got %v", got)
		}
	})
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if got := ray.At(0); got != NewVec3(1, 2, 3) {
		t.Errorf("Expected origin at t=0, got %v", got)
	}
	if got := ray.At(1.5); got != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1, 2, 0) at t=1.5, got %v", got)
	}
}

func TestAxis_String(t *testing.T) {
	tests := []struct {
		axis     Axis
		expected string
	}{
		{X, "x"},
		{Y, "y"},
		{Z, "z"},
		{Axis(7), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}

	v := NewVec3(4, 5, 6)
	for i, axis := range Axes {
		if v[axis] != float64(4+i) {
			t.Errorf("Expected v[%v] = %d, got %f", axis, 4+i, v[axis])
		}
	}
}
