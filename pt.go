// Copyright 2025 Gustavo C. Viegas. All rights reserved.

// Package ptkit provides the point and point-collection types
// backing interactive graphical and creative-coding work.
//
// A Pt is a fixed-length float32 vector of any dimension and a
// Group is an ordered sequence of Pts usable as a matrix (rows)
// or a polyline (ordered points). Numeric work is delegated to
// package linear.
//
// Every mutating method returns its receiver for chaining and
// has a copy-returning twin with the Copy suffix that leaves
// the receiver untouched. The two families are behaviorally
// identical apart from allocation.
//
// Values are not safe for concurrent mutation; callers share
// clones or synchronize externally.
package ptkit

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gviegas/ptkit/internal/f32"
	"github.com/gviegas/ptkit/linear"
)

// Epsilon is the default tolerance for approximate equality.
const Epsilon = 1e-6

// Pt is a fixed-length vector of float32 components.
// Its length is set at construction and never changes;
// mutation changes component values only.
//
// ID is an auxiliary tag for callers. It takes no part in
// equality or arithmetic.
type Pt struct {
	ID string
	c  []float32
}

// NewPt creates a Pt from its components.
func NewPt(vals ...float32) Pt {
	return Pt{c: slices.Clone(vals)}
}

// PtN creates a zero-valued Pt of dim components.
func PtN(dim int) Pt {
	return Pt{c: make([]float32, dim)}
}

// PtFrom creates a Pt that copies s.
func PtFrom(s []float32) Pt {
	return Pt{c: slices.Clone(s)}
}

// PtXY creates a 2D Pt from named coordinates.
func PtXY(x, y float32) Pt { return Pt{c: []float32{x, y}} }

// PtXYZ creates a 3D Pt from named coordinates.
func PtXYZ(x, y, z float32) Pt { return Pt{c: []float32{x, y, z}} }

// PtXYZW creates a 4D Pt from named coordinates.
func PtXYZW(x, y, z, w float32) Pt { return Pt{c: []float32{x, y, z, w}} }

// Clone returns an independent copy of p, ID included.
func (p *Pt) Clone() Pt {
	return Pt{ID: p.ID, c: slices.Clone(p.c)}
}

// Dim returns the number of components.
func (p *Pt) Dim() int { return len(p.c) }

// At returns the i'th component.
// It panics when i is out of range; use X/Y/Z/W or Take for
// tolerant access.
func (p *Pt) At(i int) float32 { return p.c[i] }

// Set sets the i'th component.
// It panics when i is out of range.
func (p *Pt) Set(i int, v float32) { p.c[i] = v }

// Slice returns a copy of the components.
func (p *Pt) Slice() []float32 { return slices.Clone(p.c) }

// X returns component 0, or NaN when p has no such component.
// A missing component is not-present rather than zero.
func (p *Pt) X() float32 { return p.named(0) }

// Y returns component 1, or NaN when p has no such component.
func (p *Pt) Y() float32 { return p.named(1) }

// Z returns component 2, or NaN when p has no such component.
func (p *Pt) Z() float32 { return p.named(2) }

// W returns component 3, or NaN when p has no such component.
func (p *Pt) W() float32 { return p.named(3) }

func (p *Pt) named(i int) float32 {
	if i < len(p.c) {
		return p.c[i]
	}
	return f32.NaN()
}

// Equals reports approximate equality within Epsilon.
// Components are compared pairwise up to the shorter length,
// so Pts of different dimensions may still compare equal over
// their overlap. IDs are ignored.
func (p *Pt) Equals(q Pt) bool { return p.EqualsTol(q, Epsilon) }

// EqualsTol is Equals with a caller-chosen tolerance.
func (p *Pt) EqualsTol(q Pt, tol float32) bool {
	n := min(len(p.c), len(q.c))
	for i := 0; i < n; i++ {
		// NaN differences compare unequal.
		if d := p.c[i] - q.c[i]; !(d <= tol && d >= -tol) {
			return false
		}
	}
	return true
}

// To rewrites p's components from vals, up to the shorter
// length.
func (p *Pt) To(vals ...float32) *Pt {
	copy(p.c, vals)
	return p
}

// ToCopy is the copy-returning twin of To.
func (p *Pt) ToCopy(vals ...float32) Pt {
	q := p.Clone()
	q.To(vals...)
	return q
}

// ToAngle rewrites p to point along angle at its current
// magnitude. With anchorFromSelf set, the new vector is added
// to the current position instead of replacing it.
// Only the first two components are written.
func (p *Pt) ToAngle(angle float32, anchorFromSelf bool) *Pt {
	return p.ToAngleMag(angle, p.Magnitude(), anchorFromSelf)
}

// ToAngleMag is ToAngle with an explicit magnitude.
func (p *Pt) ToAngleMag(angle, mag float32, anchorFromSelf bool) *Pt {
	x := f32.Cos(angle) * mag
	y := f32.Sin(angle) * mag
	if anchorFromSelf {
		linear.AddV(p.c, []float32{x, y})
		return p
	}
	return p.To(x, y)
}

// ToAngleCopy is the copy-returning twin of ToAngle.
func (p *Pt) ToAngleCopy(angle float32, anchorFromSelf bool) Pt {
	q := p.Clone()
	q.ToAngle(angle, anchorFromSelf)
	return q
}

// ToAngleMagCopy is the copy-returning twin of ToAngleMag.
func (p *Pt) ToAngleMagCopy(angle, mag float32, anchorFromSelf bool) Pt {
	q := p.Clone()
	q.ToAngleMag(angle, mag, anchorFromSelf)
	return q
}

// Add adds q to p elementwise over the shorter length.
func (p *Pt) Add(q Pt) *Pt {
	linear.AddV(p.c, q.c)
	return p
}

// AddScalar adds s to every component of p.
func (p *Pt) AddScalar(s float32) *Pt {
	linear.Add(p.c, s)
	return p
}

// Subtract subtracts q from p elementwise over the shorter
// length.
func (p *Pt) Subtract(q Pt) *Pt {
	linear.SubV(p.c, q.c)
	return p
}

// SubtractScalar subtracts s from every component of p.
func (p *Pt) SubtractScalar(s float32) *Pt {
	linear.Sub(p.c, s)
	return p
}

// Multiply multiplies p by q elementwise over the shorter
// length.
func (p *Pt) Multiply(q Pt) *Pt {
	linear.MulV(p.c, q.c)
	return p
}

// MultiplyScalar multiplies every component of p by s.
func (p *Pt) MultiplyScalar(s float32) *Pt {
	linear.Mul(p.c, s)
	return p
}

// Divide divides p by q elementwise over the shorter length.
// Zero divisors follow IEEE-754 semantics (±Inf/NaN).
func (p *Pt) Divide(q Pt) *Pt {
	linear.DivV(p.c, q.c)
	return p
}

// DivideScalar divides every component of p by s.
// A zero divisor follows IEEE-754 semantics (±Inf/NaN).
func (p *Pt) DivideScalar(s float32) *Pt {
	linear.Div(p.c, s)
	return p
}

// AddCopy is the copy-returning twin of Add.
func (p *Pt) AddCopy(q Pt) Pt { r := p.Clone(); r.Add(q); return r }

// AddScalarCopy is the copy-returning twin of AddScalar.
func (p *Pt) AddScalarCopy(s float32) Pt { r := p.Clone(); r.AddScalar(s); return r }

// SubtractCopy is the copy-returning twin of Subtract.
func (p *Pt) SubtractCopy(q Pt) Pt { r := p.Clone(); r.Subtract(q); return r }

// SubtractScalarCopy is the copy-returning twin of SubtractScalar.
func (p *Pt) SubtractScalarCopy(s float32) Pt { r := p.Clone(); r.SubtractScalar(s); return r }

// MultiplyCopy is the copy-returning twin of Multiply.
func (p *Pt) MultiplyCopy(q Pt) Pt { r := p.Clone(); r.Multiply(q); return r }

// MultiplyScalarCopy is the copy-returning twin of MultiplyScalar.
func (p *Pt) MultiplyScalarCopy(s float32) Pt { r := p.Clone(); r.MultiplyScalar(s); return r }

// DivideCopy is the copy-returning twin of Divide.
func (p *Pt) DivideCopy(q Pt) Pt { r := p.Clone(); r.Divide(q); return r }

// DivideScalarCopy is the copy-returning twin of DivideScalar.
func (p *Pt) DivideScalarCopy(s float32) Pt { r := p.Clone(); r.DivideScalar(s); return r }

// Dot returns p ⋅ q over the shorter length.
func (p *Pt) Dot(q Pt) float32 { return linear.Dot(p.c, q.c) }

// Cross returns p × q as a new 3D Pt.
// It returns linear.ErrDimension if either operand has fewer
// than three components.
func (p *Pt) Cross(q Pt) (Pt, error) {
	c, err := linear.Cross(p.c, q.c)
	if err != nil {
		return Pt{}, err
	}
	return Pt{c: c}, nil
}

// Magnitude returns the Euclidean norm of p.
func (p *Pt) Magnitude() float32 { return linear.Mag(p.c) }

// MagnitudeSq returns the squared norm of p, skipping the
// square root for comparison use.
func (p *Pt) MagnitudeSq() float32 { return linear.MagSq(p.c) }

// Unit normalizes p in place. A zero Pt yields NaN components
// (0/0); normalization is not guarded.
func (p *Pt) Unit() *Pt {
	linear.Unit(p.c)
	return p
}

// UnitMag normalizes p using a known magnitude.
func (p *Pt) UnitMag(mag float32) *Pt {
	linear.UnitMag(p.c, mag)
	return p
}

// UnitCopy is the copy-returning twin of Unit.
func (p *Pt) UnitCopy() Pt { r := p.Clone(); r.Unit(); return r }

// UnitMagCopy is the copy-returning twin of UnitMag.
func (p *Pt) UnitMagCopy(mag float32) Pt { r := p.Clone(); r.UnitMag(mag); return r }

// Abs replaces every component with its absolute value.
func (p *Pt) Abs() *Pt {
	linear.Abs(p.c)
	return p
}

// Floor rounds every component down.
func (p *Pt) Floor() *Pt {
	linear.Floor(p.c)
	return p
}

// Ceil rounds every component up.
func (p *Pt) Ceil() *Pt {
	linear.Ceil(p.c)
	return p
}

// Round rounds every component to the nearest integer, half
// away from zero.
func (p *Pt) Round() *Pt {
	linear.Round(p.c)
	return p
}

// AbsCopy is the copy-returning twin of Abs.
func (p *Pt) AbsCopy() Pt { r := p.Clone(); r.Abs(); return r }

// FloorCopy is the copy-returning twin of Floor.
func (p *Pt) FloorCopy() Pt { r := p.Clone(); r.Floor(); return r }

// CeilCopy is the copy-returning twin of Ceil.
func (p *Pt) CeilCopy() Pt { r := p.Clone(); r.Ceil(); return r }

// RoundCopy is the copy-returning twin of Round.
func (p *Pt) RoundCopy() Pt { r := p.Clone(); r.Round(); return r }

// MinValue returns the smallest component and its index.
// The first occurrence wins on ties.
func (p *Pt) MinValue() (float32, int) { return linear.Min(p.c) }

// MaxValue returns the largest component and its index.
// The first occurrence wins on ties.
func (p *Pt) MaxValue() (float32, int) { return linear.Max(p.c) }

// Project returns the vector projection of p onto q.
// A zero q yields NaN components.
func (p *Pt) Project(q Pt) Pt {
	r := q.Clone()
	r.ID = ""
	r.MultiplyScalar(p.Dot(q) / q.MagnitudeSq())
	return r
}

// ProjectScalar returns the scalar projection of p onto q.
func (p *Pt) ProjectScalar(q Pt) float32 {
	return p.Dot(q) / q.Magnitude()
}

// Angle returns the angle of p's axis-pair components, from
// atan2. Components outside p's length read as NaN.
func (p *Pt) Angle(ax linear.Axis) float32 {
	return f32.Atan2(p.named(ax[1]), p.named(ax[0]))
}

// AngleBetween returns the difference between the canonical
// angles of p and q on the given axis pair (see
// linear.BoundRadian).
func (p *Pt) AngleBetween(q Pt, ax linear.Axis) float32 {
	return linear.BoundRadian(p.Angle(ax)) - linear.BoundRadian(q.Angle(ax))
}

// Scale scales p about anchor, one factor per component.
// A nil anchor means the origin.
func (p *Pt) Scale(factor []float32, anchor *Pt) *Pt {
	linear.Scale(p.c, factor, anchorBuf(anchor))
	return p
}

// ScaleUniform scales every component of p about anchor by s.
func (p *Pt) ScaleUniform(s float32, anchor *Pt) *Pt {
	linear.ScaleUniform(p.c, s, anchorBuf(anchor))
	return p
}

// Rotate2D rotates p's axis-pair components about anchor by
// angle radians. A nil anchor means the origin.
func (p *Pt) Rotate2D(angle float32, anchor *Pt, ax linear.Axis) *Pt {
	linear.Rotate2D(p.c, angle, anchorBuf(anchor), ax)
	return p
}

// Shear2D shears p's axis-pair components about anchor.
func (p *Pt) Shear2D(sh [2]float32, anchor *Pt, ax linear.Axis) *Pt {
	linear.Shear2D(p.c, sh, anchorBuf(anchor), ax)
	return p
}

// Reflect2D reflects p across the line through la and lb in
// the ax plane. It returns linear.ErrDegenerate when la and lb
// coincide on that plane.
func (p *Pt) Reflect2D(la, lb Pt, ax linear.Axis) error {
	return linear.Reflect2D(p.c, la.c, lb.c, ax)
}

// ScaleCopy is the copy-returning twin of Scale.
func (p *Pt) ScaleCopy(factor []float32, anchor *Pt) Pt {
	r := p.Clone()
	r.Scale(factor, anchor)
	return r
}

// ScaleUniformCopy is the copy-returning twin of ScaleUniform.
func (p *Pt) ScaleUniformCopy(s float32, anchor *Pt) Pt {
	r := p.Clone()
	r.ScaleUniform(s, anchor)
	return r
}

// Rotate2DCopy is the copy-returning twin of Rotate2D.
func (p *Pt) Rotate2DCopy(angle float32, anchor *Pt, ax linear.Axis) Pt {
	r := p.Clone()
	r.Rotate2D(angle, anchor, ax)
	return r
}

// Shear2DCopy is the copy-returning twin of Shear2D.
func (p *Pt) Shear2DCopy(sh [2]float32, anchor *Pt, ax linear.Axis) Pt {
	r := p.Clone()
	r.Shear2D(sh, anchor, ax)
	return r
}

// Reflect2DCopy is the copy-returning twin of Reflect2D.
func (p *Pt) Reflect2DCopy(la, lb Pt, ax linear.Axis) (Pt, error) {
	r := p.Clone()
	if err := r.Reflect2D(la, lb, ax); err != nil {
		return Pt{}, err
	}
	return r, nil
}

// Take builds a new Pt by selecting component indices from p.
// Out-of-range indices read as 0.
func (p *Pt) Take(idx []int) Pt {
	c := make([]float32, len(idx))
	for i, j := range idx {
		if j >= 0 && j < len(p.c) {
			c[i] = p.c[j]
		}
	}
	return Pt{c: c}
}

// Concat returns a new Pt extending p with more components.
func (p *Pt) Concat(vals ...float32) Pt {
	c := make([]float32, 0, len(p.c)+len(vals))
	c = append(c, p.c...)
	c = append(c, vals...)
	return Pt{ID: p.ID, c: c}
}

// ConcatPt returns a new Pt extending p with q's components.
func (p *Pt) ConcatPt(q Pt) Pt { return p.Concat(q.c...) }

// PtFunc is a numeric operation taking a Pt as its first
// argument.
type PtFunc func(p *Pt, args ...float32) Pt

// Op binds p as the first argument of f, returning the
// partially applied function.
func (p *Pt) Op(f PtFunc) func(...float32) Pt {
	return func(args ...float32) Pt { return f(p, args...) }
}

// Ops is Op over a list of functions.
func (p *Pt) Ops(fs []PtFunc) []func(...float32) Pt {
	bound := make([]func(...float32) Pt, len(fs))
	for i, f := range fs {
		bound[i] = p.Op(f)
	}
	return bound
}

// String formats p as Pt(c0, c1, …). Diagnostics only.
func (p *Pt) String() string {
	var b strings.Builder
	b.WriteString("Pt(")
	for i, x := range p.c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}
	b.WriteString(")")
	return b.String()
}

// anchorBuf exposes an optional anchor's buffer; nil stays nil
// so transforms fall back to the origin.
func anchorBuf(p *Pt) []float32 {
	if p == nil {
		return nil
	}
	return p.c
}
