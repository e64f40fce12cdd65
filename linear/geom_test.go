// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func near(v, w []float32, tol float32) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if d := v[i] - w[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}

func TestScale(t *testing.T) {
	p := []float32{2, 4, 6}
	Scale(p, []float32{2, 0.5, -1}, nil)
	if !slices.Equal(p, []float32{4, 2, -6}) {
		t.Fatalf("Scale\nhave %v\nwant [4 2 -6]", p)
	}
	p = []float32{2, 4}
	Scale(p, []float32{2, 2}, []float32{1, 1})
	if !slices.Equal(p, []float32{3, 7}) {
		t.Fatalf("Scale anchored\nhave %v\nwant [3 7]", p)
	}
	// Short factor leaves the tail untouched.
	p = []float32{2, 4, 6}
	Scale(p, []float32{10}, nil)
	if !slices.Equal(p, []float32{20, 4, 6}) {
		t.Fatalf("Scale short factor\nhave %v\nwant [20 4 6]", p)
	}
	p = []float32{2, 4, 6}
	ScaleUniform(p, 3, []float32{2, 4, 6})
	if !slices.Equal(p, []float32{2, 4, 6}) {
		t.Fatalf("ScaleUniform about self\nhave %v\nwant [2 4 6]", p)
	}
}

func TestRotate2D(t *testing.T) {
	p := []float32{1, 0}
	Rotate2D(p, math.Pi/2, nil, XY)
	if !near(p, []float32{0, 1}, 1e-6) {
		t.Fatalf("Rotate2D\nhave %v\nwant [0 1]", p)
	}
	p = []float32{3, 1}
	Rotate2D(p, math.Pi, []float32{2, 1}, XY)
	if !near(p, []float32{1, 1}, 1e-6) {
		t.Fatalf("Rotate2D anchored\nhave %v\nwant [1 1]", p)
	}
	// Other components stay put; YZ selects indices 1 and 2.
	p = []float32{7, 1, 0}
	Rotate2D(p, math.Pi/2, nil, YZ)
	if !near(p, []float32{7, 0, 1}, 1e-6) {
		t.Fatalf("Rotate2D YZ\nhave %v\nwant [7 0 1]", p)
	}
}

func TestRotationClosure(t *testing.T) {
	p := []float32{3.5, -1.25}
	q := slices.Clone(p)
	Rotate2D(q, 2*math.Pi, []float32{1, 1}, XY)
	if !near(q, p, 1e-6) {
		t.Fatalf("Rotate2D full turn\nhave %v\nwant %v", q, p)
	}
}

func TestShear2D(t *testing.T) {
	p := []float32{2, 3}
	Shear2D(p, [2]float32{0.5, 0}, nil, XY)
	if !near(p, []float32{3.5, 3}, 1e-6) {
		t.Fatalf("Shear2D\nhave %v\nwant [3.5 3]", p)
	}
	p = []float32{2, 3}
	Shear2D(p, [2]float32{0, 2}, nil, XY)
	if !near(p, []float32{2, 7}, 1e-6) {
		t.Fatalf("Shear2D\nhave %v\nwant [2 7]", p)
	}
}

func TestReflect2D(t *testing.T) {
	// Reflection across the x axis.
	p := []float32{3, 4}
	if err := Reflect2D(p, []float32{0, 0}, []float32{1, 0}, XY); err != nil {
		t.Fatalf("Reflect2D: unexpected error %v", err)
	}
	if !near(p, []float32{3, -4}, 1e-6) {
		t.Fatalf("Reflect2D\nhave %v\nwant [3 -4]", p)
	}
	// Across y = x.
	p = []float32{3, 4}
	if err := Reflect2D(p, []float32{0, 0}, []float32{1, 1}, XY); err != nil {
		t.Fatalf("Reflect2D: unexpected error %v", err)
	}
	if !near(p, []float32{4, 3}, 1e-6) {
		t.Fatalf("Reflect2D\nhave %v\nwant [4 3]", p)
	}

	err := Reflect2D(p, []float32{2, 2}, []float32{2, 2}, XY)
	if !errors.Is(err, ErrDegenerate) {
		t.Fatalf("Reflect2D coincident line\nhave %v\nwant ErrDegenerate", err)
	}
}

func TestReflectionInvolution(t *testing.T) {
	la := []float32{-1, 2}
	lb := []float32{3, 0.5}
	p := []float32{4.25, -3}
	q := slices.Clone(p)
	if err := Reflect2D(q, la, lb, XY); err != nil {
		t.Fatalf("Reflect2D: unexpected error %v", err)
	}
	if err := Reflect2D(q, la, lb, XY); err != nil {
		t.Fatalf("Reflect2D: unexpected error %v", err)
	}
	if !near(q, p, 1e-5) {
		t.Fatalf("Reflect2D twice\nhave %v\nwant %v", q, p)
	}
}

func TestInterpolate(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{10, -4}
	if r := Interpolate(a, b, 0); !slices.Equal(r, a) {
		t.Fatalf("Interpolate 0\nhave %v\nwant %v", r, a)
	}
	if r := Interpolate(a, b, 1); !slices.Equal(r, b) {
		t.Fatalf("Interpolate 1\nhave %v\nwant %v", r, b)
	}
	if r := Interpolate(a, b, 0.5); !slices.Equal(r, []float32{5, -2}) {
		t.Fatalf("Interpolate 0.5\nhave %v\nwant [5 -2]", r)
	}
	// t clamps to [0, 1].
	if r := Interpolate(a, b, -3); !slices.Equal(r, a) {
		t.Fatalf("Interpolate -3\nhave %v\nwant %v", r, a)
	}
	if r := Interpolate(a, b, 2); !slices.Equal(r, b) {
		t.Fatalf("Interpolate 2\nhave %v\nwant %v", r, b)
	}
}

func TestCentroid(t *testing.T) {
	c, err := Centroid([][]float32{{1, 2}})
	if err != nil {
		t.Fatalf("Centroid: unexpected error %v", err)
	}
	if !slices.Equal(c, []float32{1, 2}) {
		t.Fatalf("Centroid single\nhave %v\nwant [1 2]", c)
	}
	c, err = Centroid([][]float32{{0, 0}, {10, 0}, {10, 10}})
	if err != nil {
		t.Fatalf("Centroid: unexpected error %v", err)
	}
	if !near(c, []float32{6.667, 3.333}, 1e-3) {
		t.Fatalf("Centroid\nhave %v\nwant [6.667 3.333]", c)
	}
	if _, err = Centroid(nil); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("Centroid empty\nhave %v\nwant ErrDegenerate", err)
	}
}

func TestBoundingBox(t *testing.T) {
	rows := [][]float32{{1, 5}, {-2, 7}, {3, 6}}
	min, max, err := BoundingBox(rows)
	if err != nil {
		t.Fatalf("BoundingBox: unexpected error %v", err)
	}
	if !slices.Equal(min, []float32{-2, 5}) || !slices.Equal(max, []float32{3, 7}) {
		t.Fatalf("BoundingBox\nhave %v %v\nwant [-2 5] [3 7]", min, max)
	}
	for _, row := range rows {
		for i := range row {
			if row[i] < min[i] || row[i] > max[i] {
				t.Fatalf("BoundingBox: %v outside [%v, %v]", row, min, max)
			}
		}
	}
	if _, _, err = BoundingBox([][]float32{}); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("BoundingBox empty\nhave %v\nwant ErrDegenerate", err)
	}
}

func TestBoundRadian(t *testing.T) {
	if a := BoundRadian(-math.Pi / 2); !near([]float32{a}, []float32{3 * math.Pi / 2}, 1e-6) {
		t.Fatalf("BoundRadian\nhave %v\nwant 3π/2", a)
	}
	if a := BoundRadian(5 * math.Pi); !near([]float32{a}, []float32{math.Pi}, 1e-5) {
		t.Fatalf("BoundRadian\nhave %v\nwant π", a)
	}
	if a := BoundRadian(1); a != 1 {
		t.Fatalf("BoundRadian\nhave %v\nwant 1", a)
	}
	if a := BoundAngle(-90); a != 270 {
		t.Fatalf("BoundAngle\nhave %v\nwant 270", a)
	}
	if d := ToDegree(ToRadian(135)); !near([]float32{d}, []float32{135}, 1e-4) {
		t.Fatalf("ToRadian/ToDegree\nhave %v\nwant 135", d)
	}
}
