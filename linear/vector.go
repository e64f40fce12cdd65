// Copyright 2025 Gustavo C. Viegas. All rights reserved.

// Package linear implements vector and matrix math for
// interactive graphics.
//
// Vectors are []float32 buffers of any dimension and matrices
// are [][]float32 row sequences. The functions here mutate the
// buffers they are given and keep no state across calls.
// Binary elementwise operations pair components up to the
// shorter operand's length and leave trailing components of the
// longer operand untouched.
package linear

import (
	"github.com/gviegas/ptkit/internal/f32"
)

// Add adds s to every component of v.
func Add(v []float32, s float32) {
	for i := range v {
		v[i] += s
	}
}

// Sub subtracts s from every component of v.
func Sub(v []float32, s float32) {
	for i := range v {
		v[i] -= s
	}
}

// Mul multiplies every component of v by s.
func Mul(v []float32, s float32) {
	for i := range v {
		v[i] *= s
	}
}

// Div divides every component of v by s.
// A zero divisor follows IEEE-754 semantics (±Inf/NaN).
func Div(v []float32, s float32) {
	for i := range v {
		v[i] /= s
	}
}

// AddV adds w to v elementwise.
func AddV(v, w []float32) {
	for i := range minLen(v, w) {
		v[i] += w[i]
	}
}

// SubV subtracts w from v elementwise.
func SubV(v, w []float32) {
	for i := range minLen(v, w) {
		v[i] -= w[i]
	}
}

// MulV multiplies v by w elementwise.
func MulV(v, w []float32) {
	for i := range minLen(v, w) {
		v[i] *= w[i]
	}
}

// DivV divides v by w elementwise.
// Zero divisors follow IEEE-754 semantics (±Inf/NaN).
func DivV(v, w []float32) {
	for i := range minLen(v, w) {
		v[i] /= w[i]
	}
}

// MinV sets each component of v to the lesser of v and w.
func MinV(v, w []float32) {
	for i := range minLen(v, w) {
		if w[i] < v[i] {
			v[i] = w[i]
		}
	}
}

// MaxV sets each component of v to the greater of v and w.
func MaxV(v, w []float32) {
	for i := range minLen(v, w) {
		if w[i] > v[i] {
			v[i] = w[i]
		}
	}
}

// Clamp limits every component of v to [lo, hi].
func Clamp(v []float32, lo, hi float32) {
	for i := range v {
		switch {
		case v[i] < lo:
			v[i] = lo
		case v[i] > hi:
			v[i] = hi
		}
	}
}

// Dot returns v ⋅ w over the shorter operand's length.
func Dot(v, w []float32) (d float32) {
	for i := range minLen(v, w) {
		d += v[i] * w[i]
	}
	return
}

// Cross returns v × w as a new 3-component vector.
// It returns ErrDimension if either operand has fewer than
// three components; extra components are ignored.
func Cross(v, w []float32) ([]float32, error) {
	if len(v) < 3 || len(w) < 3 {
		return nil, ErrDimension
	}
	return []float32{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}, nil
}

// Mag returns the Euclidean norm of v.
func Mag(v []float32) float32 { return f32.Sqrt(Dot(v, v)) }

// MagSq returns the squared Euclidean norm of v.
// It avoids the square root of Mag for comparison use.
func MagSq(v []float32) float32 { return Dot(v, v) }

// Unit normalizes v in place.
// A zero vector yields NaN components (0/0), following the
// same unguarded IEEE-754 policy as Div.
func Unit(v []float32) { Div(v, Mag(v)) }

// UnitMag normalizes v using a known magnitude, skipping the
// norm computation.
func UnitMag(v []float32, mag float32) { Div(v, mag) }

// Abs replaces every component of v with its absolute value.
func Abs(v []float32) {
	for i := range v {
		v[i] = f32.Abs(v[i])
	}
}

// Floor rounds every component of v down.
func Floor(v []float32) {
	for i := range v {
		v[i] = f32.Floor(v[i])
	}
}

// Ceil rounds every component of v up.
func Ceil(v []float32) {
	for i := range v {
		v[i] = f32.Ceil(v[i])
	}
}

// Round rounds every component of v to the nearest integer,
// half away from zero.
func Round(v []float32) {
	for i := range v {
		v[i] = f32.Round(v[i])
	}
}

// Min returns the smallest component of v and its index.
// The first occurrence wins on ties. An empty vector yields
// (0, -1).
func Min(v []float32) (m float32, idx int) {
	idx = -1
	for i, x := range v {
		if idx < 0 || x < m {
			m, idx = x, i
		}
	}
	return
}

// Max returns the largest component of v and its index.
// The first occurrence wins on ties. An empty vector yields
// (0, -1).
func Max(v []float32) (m float32, idx int) {
	idx = -1
	for i, x := range v {
		if idx < 0 || x > m {
			m, idx = x, i
		}
	}
	return
}

// minLen returns the overlap of two operands.
func minLen(v, w []float32) int {
	if len(v) < len(w) {
		return len(v)
	}
	return len(w)
}
