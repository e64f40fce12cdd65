// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"github.com/gviegas/ptkit/internal/f32"
)

// Axis selects the two component indices a planar transform
// acts on, for vectors with more than two dimensions.
type Axis [2]int

// Conventional axis pairs.
var (
	XY = Axis{0, 1}
	YZ = Axis{1, 2}
	XZ = Axis{0, 2}
)

// Geometric transforms are anchored: they move components
// relative to a reference point. A nil anchor means the origin.
// Transforms never touch components outside the selected axes
// and are translation-free unless stated otherwise.

// Scale scales p about anchor, one factor per component:
//
//	p[d] = anchor[d] + (p[d]-anchor[d])⋅factor[d]
//
// Components past factor's length are untouched.
func Scale(p, factor, anchor []float32) {
	for i := range minLen(p, factor) {
		a := at(anchor, i)
		p[i] = a + (p[i]-a)*factor[i]
	}
}

// ScaleUniform scales every component of p about anchor by s.
func ScaleUniform(p []float32, s float32, anchor []float32) {
	for i := range p {
		a := at(anchor, i)
		p[i] = a + (p[i]-a)*s
	}
}

// Rotate2D rotates p's axis-pair components about anchor by
// angle radians. Components outside ax are untouched.
func Rotate2D(p []float32, angle float32, anchor []float32, ax Axis) {
	if !inRange(p, ax) {
		return
	}
	sin, cos := f32.Sin(angle), f32.Cos(angle)
	ax0, ay0 := at(anchor, ax[0]), at(anchor, ax[1])
	x := p[ax[0]] - ax0
	y := p[ax[1]] - ay0
	p[ax[0]] = x*cos - y*sin + ax0
	p[ax[1]] = x*sin + y*cos + ay0
}

// Shear2D applies the shear matrix [[1, sh0],[sh1, 1]] to p's
// axis-pair components about anchor.
func Shear2D(p []float32, sh [2]float32, anchor []float32, ax Axis) {
	if !inRange(p, ax) {
		return
	}
	ax0, ay0 := at(anchor, ax[0]), at(anchor, ax[1])
	x := p[ax[0]] - ax0
	y := p[ax[1]] - ay0
	p[ax[0]] = x + sh[0]*y + ax0
	p[ax[1]] = sh[1]*x + y + ay0
}

// Reflect2D reflects p across the infinite line through la and
// lb in the ax plane. It returns ErrDegenerate when la and lb
// coincide on that plane, since such a line has no direction.
func Reflect2D(p, la, lb []float32, ax Axis) error {
	if !inRange(p, ax) {
		return nil
	}
	dx := at(lb, ax[0]) - at(la, ax[0])
	dy := at(lb, ax[1]) - at(la, ax[1])
	d := dx*dx + dy*dy
	if d == 0 {
		return ErrDegenerate
	}
	x := p[ax[0]] - at(la, ax[0])
	y := p[ax[1]] - at(la, ax[1])
	// Project onto the line direction and mirror.
	t := 2 * (x*dx + y*dy) / d
	p[ax[0]] = t*dx - x + at(la, ax[0])
	p[ax[1]] = t*dy - y + at(la, ax[1])
	return nil
}

// Interpolate returns the linear interpolation of a and b at t,
// clamped to [0, 1]. The result spans the shorter operand.
func Interpolate(a, b []float32, t float32) []float32 {
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	r := make([]float32, minLen(a, b))
	for i := range r {
		r[i] = a[i] + (b[i]-a[i])*t
	}
	return r
}

// Centroid returns the component-wise mean of rows. The result
// spans the shortest row. An empty input yields ErrDegenerate.
func Centroid(rows [][]float32) ([]float32, error) {
	if len(rows) == 0 {
		return nil, ErrDegenerate
	}
	n := len(rows[0])
	for _, row := range rows {
		if len(row) < n {
			n = len(row)
		}
	}
	c := make([]float32, n)
	for _, row := range rows {
		AddV(c, row)
	}
	Div(c, float32(len(rows)))
	return c, nil
}

// BoundingBox returns the per-component minimum and maximum
// corners of rows. The corners span the shortest row. An empty
// input yields ErrDegenerate.
func BoundingBox(rows [][]float32) (min, max []float32, err error) {
	if len(rows) == 0 {
		return nil, nil, ErrDegenerate
	}
	n := len(rows[0])
	for _, row := range rows {
		if len(row) < n {
			n = len(row)
		}
	}
	min = make([]float32, n)
	max = make([]float32, n)
	copy(min, rows[0][:n])
	copy(max, rows[0][:n])
	for _, row := range rows[1:] {
		MinV(min, row)
		MaxV(max, row)
	}
	return min, max, nil
}

// BoundRadian normalizes an angle to [0, 2π). Angle comparisons
// throughout the module use this canonical range.
func BoundRadian(a float32) float32 {
	a = f32.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// BoundAngle normalizes an angle in degrees to [0, 360).
func BoundAngle(a float32) float32 {
	a = f32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// ToRadian converts degrees to radians.
func ToRadian(deg float32) float32 { return deg * math.Pi / 180 }

// ToDegree converts radians to degrees.
func ToDegree(rad float32) float32 { return rad * 180 / math.Pi }

// at reads v[i], or 0 when v is nil or too short.
// Anchors default to the origin this way.
func at(v []float32, i int) float32 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func inRange(p []float32, ax Axis) bool {
	return ax[0] >= 0 && ax[1] >= 0 && ax[0] < len(p) && ax[1] < len(p)
}
