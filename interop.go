// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package ptkit

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/mat"

	"github.com/gviegas/ptkit/linear"
)

// Bridges to the types neighboring packages take: gonum's mat
// for the heavy linear algebra this module deliberately leaves
// out, and x/image's fixed-size float32 vectors for graphics
// interchange. Conversions to gonum widen to float64 and
// conversions back truncate to float32.

// Dense copies g into a gonum dense matrix, one element per
// row. It returns linear.ErrShape unless every element has the
// same nonzero dimension.
func (g *Group) Dense() (*mat.Dense, error) {
	if len(g.pts) == 0 || g.pts[0].Dim() == 0 {
		return nil, linear.ErrShape
	}
	cols := g.pts[0].Dim()
	for i := range g.pts {
		if g.pts[i].Dim() != cols {
			return nil, linear.ErrShape
		}
	}
	d := mat.NewDense(len(g.pts), cols, nil)
	for i := range g.pts {
		for j, x := range g.pts[i].c {
			d.Set(i, j, float64(x))
		}
	}
	return d, nil
}

// GroupFromDense copies a gonum matrix into a Group, one
// element per row.
func GroupFromDense(m mat.Matrix) Group {
	rows, cols := m.Dims()
	pts := make([]Pt, rows)
	for i := 0; i < rows; i++ {
		c := make([]float32, cols)
		for j := 0; j < cols; j++ {
			c[j] = float32(m.At(i, j))
		}
		pts[i] = Pt{c: c}
	}
	return Group{pts: pts}
}

// VecDense copies p into a gonum dense vector, or nil when p
// has no components (gonum rejects empty vectors).
func (p *Pt) VecDense() *mat.VecDense {
	if len(p.c) == 0 {
		return nil
	}
	v := mat.NewVecDense(len(p.c), nil)
	for i, x := range p.c {
		v.SetVec(i, float64(x))
	}
	return v
}

// PtFromVecDense copies a gonum vector into a Pt.
func PtFromVecDense(v *mat.VecDense) Pt {
	c := make([]float32, v.Len())
	for i := range c {
		c[i] = float32(v.AtVec(i))
	}
	return Pt{c: c}
}

// Vec2 returns p's first two components as an f32 vector.
// Missing components read as 0, as in Take.
func (p *Pt) Vec2() f32.Vec2 {
	return f32.Vec2{axisAt(p.c, 0), axisAt(p.c, 1)}
}

// Vec3 returns p's first three components as an f32 vector.
func (p *Pt) Vec3() f32.Vec3 {
	return f32.Vec3{axisAt(p.c, 0), axisAt(p.c, 1), axisAt(p.c, 2)}
}

// Vec4 returns p's first four components as an f32 vector.
func (p *Pt) Vec4() f32.Vec4 {
	return f32.Vec4{axisAt(p.c, 0), axisAt(p.c, 1), axisAt(p.c, 2), axisAt(p.c, 3)}
}

// PtFromVec2 creates a 2D Pt from an f32 vector.
func PtFromVec2(v f32.Vec2) Pt { return Pt{c: []float32{v[0], v[1]}} }

// PtFromVec3 creates a 3D Pt from an f32 vector.
func PtFromVec3(v f32.Vec3) Pt { return Pt{c: []float32{v[0], v[1], v[2]}} }

// PtFromVec4 creates a 4D Pt from an f32 vector.
func PtFromVec4(v f32.Vec4) Pt { return Pt{c: []float32{v[0], v[1], v[2], v[3]}} }
