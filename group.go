// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package ptkit

import (
	"slices"
	"strings"

	"github.com/gviegas/ptkit/linear"
)

// Group is an ordered, mutable sequence of Pts. Insertion
// order is meaningful: it is row order when the group is read
// as a matrix and point order when it is read as a polyline.
//
// A Group owns its Pts; Clone deep-copies every element, and
// accessors hand out pointers into the group rather than
// copies. Elements should share a dimension when the group is
// used as a matrix or path; operations that require a uniform
// shape say what they do with ragged input.
//
// ID is an auxiliary tag for callers, ignored by every
// operation.
type Group struct {
	ID  string
	pts []Pt
}

// NewGroup creates a Group from the given Pts, which it takes
// ownership of.
func NewGroup(pts ...Pt) Group {
	return Group{pts: pts}
}

// GroupN creates a Group of n zero-valued Pts of dim
// components each.
func GroupN(n, dim int) Group {
	pts := make([]Pt, n)
	for i := range pts {
		pts[i] = PtN(dim)
	}
	return Group{pts: pts}
}

// GroupFrom creates a Group copying one Pt per row.
func GroupFrom(rows [][]float32) Group {
	pts := make([]Pt, len(rows))
	for i, row := range rows {
		pts[i] = PtFrom(row)
	}
	return Group{pts: pts}
}

// Clone returns an independent deep copy of g, ID included.
func (g *Group) Clone() Group {
	pts := make([]Pt, len(g.pts))
	for i := range g.pts {
		pts[i] = g.pts[i].Clone()
	}
	return Group{ID: g.ID, pts: pts}
}

// Len returns the number of elements.
func (g *Group) Len() int { return len(g.pts) }

// At returns the i'th element. Negative indices count from the
// end, -1 being the last element. It returns nil when the
// index is out of range.
func (g *Group) At(i int) *Pt {
	if i < 0 {
		i += len(g.pts)
	}
	if i < 0 || i >= len(g.pts) {
		return nil
	}
	return &g.pts[i]
}

// Append appends Pts to g, taking ownership of them.
func (g *Group) Append(pts ...Pt) *Group {
	g.pts = append(g.pts, pts...)
	return g
}

// P1 returns the first element, or nil.
func (g *Group) P1() *Pt { return g.At(0) }

// P2 returns the second element, or nil.
func (g *Group) P2() *Pt { return g.At(1) }

// P3 returns the third element, or nil.
func (g *Group) P3() *Pt { return g.At(2) }

// P4 returns the fourth element, or nil.
func (g *Group) P4() *Pt { return g.At(3) }

// Q1 returns the last element, or nil.
func (g *Group) Q1() *Pt { return g.At(-1) }

// Q2 returns the second-to-last element, or nil.
func (g *Group) Q2() *Pt { return g.At(-2) }

// Q3 returns the third-to-last element, or nil.
func (g *Group) Q3() *Pt { return g.At(-3) }

// Q4 returns the fourth-to-last element, or nil.
func (g *Group) Q4() *Pt { return g.At(-4) }

// Insert inserts pts before index, taking ownership of them.
// Negative indices count from the end; out-of-range indices
// clamp to the nearest end.
func (g *Group) Insert(pts []Pt, index int) *Group {
	if index < 0 {
		index += len(g.pts)
	}
	if index < 0 {
		index = 0
	} else if index > len(g.pts) {
		index = len(g.pts)
	}
	g.pts = slices.Insert(g.pts, index, pts...)
	return g
}

// Remove removes up to count elements starting at index and
// returns them. Negative indices count from the end, -1 being
// the last element; the count clips to the sequence end.
func (g *Group) Remove(index, count int) []Pt {
	if index < 0 {
		index += len(g.pts)
	}
	if index < 0 || index >= len(g.pts) || count <= 0 {
		return nil
	}
	end := index + count
	if end > len(g.pts) {
		end = len(g.pts)
	}
	removed := slices.Clone(g.pts[index:end])
	g.pts = slices.Delete(g.pts, index, end)
	return removed
}

// Segments partitions g into sub-groups of size consecutive
// elements, advancing the start index by stride each step
// while it is within the sequence. With loopBack set, element
// indices wrap modulo the length so segments near the end fill
// up from the start of the sequence; otherwise a segment that
// would run past the end is dropped. Only full-size segments
// are returned, and each holds clones of the elements.
func (g *Group) Segments(size, stride int, loopBack bool) []Group {
	if size <= 0 || stride <= 0 || len(g.pts) == 0 {
		return nil
	}
	var segs []Group
	for start := 0; start < len(g.pts); start += stride {
		pts := make([]Pt, 0, size)
		for k := 0; k < size; k++ {
			i := start + k
			if loopBack {
				i %= len(g.pts)
			} else if i >= len(g.pts) {
				break
			}
			pts = append(pts, g.pts[i].Clone())
		}
		if len(pts) == size {
			segs = append(segs, Group{pts: pts})
		}
	}
	return segs
}

// Lines returns every consecutive pair of elements, i.e. the
// polyline edges.
func (g *Group) Lines() []Group { return g.Segments(2, 1, false) }

// Interpolate reads g as a polyline and returns the point at
// t ∈ [0, 1] along it, t clamped. A 1-element group returns a
// clone of that element; an empty group returns
// linear.ErrDegenerate.
func (g *Group) Interpolate(t float32) (Pt, error) {
	switch len(g.pts) {
	case 0:
		return Pt{}, linear.ErrDegenerate
	case 1:
		return g.pts[0].Clone(), nil
	}
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	chunk := len(g.pts) - 1
	idx := int(t * float32(chunk))
	if idx > chunk-1 {
		idx = chunk - 1
	}
	local := t*float32(chunk) - float32(idx)
	return Pt{c: linear.Interpolate(g.pts[idx].c, g.pts[idx+1].c, local)}, nil
}

// MoveBy translates every element by delta.
func (g *Group) MoveBy(delta Pt) *Group {
	for i := range g.pts {
		g.pts[i].Add(delta)
	}
	return g
}

// MoveTo translates g so its first element lands on target.
// An empty group is left unchanged.
func (g *Group) MoveTo(target Pt) *Group {
	if len(g.pts) == 0 {
		return g
	}
	delta := target.SubtractCopy(g.pts[0])
	return g.MoveBy(delta)
}

// MoveByCopy is the copy-returning twin of MoveBy.
func (g *Group) MoveByCopy(delta Pt) Group { r := g.Clone(); r.MoveBy(delta); return r }

// MoveToCopy is the copy-returning twin of MoveTo.
func (g *Group) MoveToCopy(target Pt) Group { r := g.Clone(); r.MoveTo(target); return r }

// anchorOf resolves the anchor for a group transform: the
// given anchor, or the group's first element when nil. The
// value is snapshotted so it cannot drift as elements mutate.
func (g *Group) anchorOf(anchor *Pt) []float32 {
	if anchor != nil {
		return slices.Clone(anchor.c)
	}
	if len(g.pts) > 0 {
		return slices.Clone(g.pts[0].c)
	}
	return nil
}

// Scale scales every element about anchor, one factor per
// component. A nil anchor defaults to the FIRST element of g,
// not the origin as on Pt.
func (g *Group) Scale(factor []float32, anchor *Pt) *Group {
	a := g.anchorOf(anchor)
	for i := range g.pts {
		linear.Scale(g.pts[i].c, factor, a)
	}
	return g
}

// ScaleUniform scales every component of every element about
// anchor by s. A nil anchor defaults to the first element.
func (g *Group) ScaleUniform(s float32, anchor *Pt) *Group {
	a := g.anchorOf(anchor)
	for i := range g.pts {
		linear.ScaleUniform(g.pts[i].c, s, a)
	}
	return g
}

// Rotate2D rotates every element about anchor by angle
// radians. A nil anchor defaults to the first element.
func (g *Group) Rotate2D(angle float32, anchor *Pt, ax linear.Axis) *Group {
	a := g.anchorOf(anchor)
	for i := range g.pts {
		linear.Rotate2D(g.pts[i].c, angle, a, ax)
	}
	return g
}

// Shear2D shears every element about anchor. A nil anchor
// defaults to the first element.
func (g *Group) Shear2D(sh [2]float32, anchor *Pt, ax linear.Axis) *Group {
	a := g.anchorOf(anchor)
	for i := range g.pts {
		linear.Shear2D(g.pts[i].c, sh, a, ax)
	}
	return g
}

// Reflect2D reflects every element across the line through la
// and lb in the ax plane. It returns linear.ErrDegenerate,
// before mutating anything, when la and lb coincide.
func (g *Group) Reflect2D(la, lb Pt, ax linear.Axis) error {
	a := slices.Clone(la.c)
	b := slices.Clone(lb.c)
	dx := axisAt(b, ax[0]) - axisAt(a, ax[0])
	dy := axisAt(b, ax[1]) - axisAt(a, ax[1])
	if dx == 0 && dy == 0 {
		return linear.ErrDegenerate
	}
	for i := range g.pts {
		if err := linear.Reflect2D(g.pts[i].c, a, b, ax); err != nil {
			return err
		}
	}
	return nil
}

// ScaleCopy is the copy-returning twin of Scale.
func (g *Group) ScaleCopy(factor []float32, anchor *Pt) Group {
	r := g.Clone()
	r.Scale(factor, anchor)
	return r
}

// ScaleUniformCopy is the copy-returning twin of ScaleUniform.
func (g *Group) ScaleUniformCopy(s float32, anchor *Pt) Group {
	r := g.Clone()
	r.ScaleUniform(s, anchor)
	return r
}

// Rotate2DCopy is the copy-returning twin of Rotate2D.
func (g *Group) Rotate2DCopy(angle float32, anchor *Pt, ax linear.Axis) Group {
	r := g.Clone()
	r.Rotate2D(angle, anchor, ax)
	return r
}

// Shear2DCopy is the copy-returning twin of Shear2D.
func (g *Group) Shear2DCopy(sh [2]float32, anchor *Pt, ax linear.Axis) Group {
	r := g.Clone()
	r.Shear2D(sh, anchor, ax)
	return r
}

// Reflect2DCopy is the copy-returning twin of Reflect2D.
func (g *Group) Reflect2DCopy(la, lb Pt, ax linear.Axis) (Group, error) {
	r := g.Clone()
	if err := r.Reflect2D(la, lb, ax); err != nil {
		return Group{}, err
	}
	return r, nil
}

// AnchorTo subtracts anchor from every element, rebasing the
// group relative to it. The anchor value is snapshotted before
// any mutation.
func (g *Group) AnchorTo(anchor Pt) *Group {
	a := anchor.Clone()
	for i := range g.pts {
		g.pts[i].Subtract(a)
	}
	return g
}

// AnchorFrom adds anchor to every element, the inverse of
// AnchorTo.
func (g *Group) AnchorFrom(anchor Pt) *Group {
	a := anchor.Clone()
	for i := range g.pts {
		g.pts[i].Add(a)
	}
	return g
}

// AnchorToIndex is AnchorTo with the anchor taken from the
// i'th element (negative indices count from the end). The
// value is snapshotted first, so the element at i shifts to
// the origin rather than drifting as earlier elements mutate.
// It returns linear.ErrIndex when i is out of range.
func (g *Group) AnchorToIndex(i int) error {
	a := g.At(i)
	if a == nil {
		return linear.ErrIndex
	}
	g.AnchorTo(*a)
	return nil
}

// AnchorFromIndex is AnchorFrom with the anchor taken from the
// i'th element.
func (g *Group) AnchorFromIndex(i int) error {
	a := g.At(i)
	if a == nil {
		return linear.ErrIndex
	}
	g.AnchorFrom(*a)
	return nil
}

// SortByDimension sorts elements by their dim'th component.
// Elements too short to have that component sort as 0. The
// sort is stable.
func (g *Group) SortByDimension(dim int, descending bool) *Group {
	key := func(p *Pt) float32 {
		if dim >= 0 && dim < len(p.c) {
			return p.c[dim]
		}
		return 0
	}
	slices.SortStableFunc(g.pts, func(a, b Pt) int {
		x, y := key(&a), key(&b)
		switch {
		case x < y:
			if descending {
				return 1
			}
			return -1
		case x > y:
			if descending {
				return -1
			}
			return 1
		}
		return 0
	})
	return g
}

// rows exposes the element buffers as matrix rows, without
// copying.
func (g *Group) rows() [][]float32 {
	r := make([][]float32, len(g.pts))
	for i := range g.pts {
		r[i] = g.pts[i].c
	}
	return r
}

// MatrixAddScalar adds s to every component of every element.
func (g *Group) MatrixAddScalar(s float32) *Group {
	linear.MatAddScalar(g.rows(), s)
	return g
}

// MatrixAdd adds o to g elementwise, reading both as matrices.
// It returns linear.ErrShape unless the shapes align 1:1.
func (g *Group) MatrixAdd(o Group) error {
	return linear.MatAdd(g.rows(), o.rows())
}

// MatrixMultiply multiplies g by o into a new Group. See
// linear.MatMul for the transposed and elementwise semantics
// and the shapes each accepts.
func (g *Group) MatrixMultiply(o Group, transposed, elementwise bool) (Group, error) {
	r, err := linear.MatMul(g.rows(), o.rows(), transposed, elementwise)
	if err != nil {
		return Group{}, err
	}
	pts := make([]Pt, len(r))
	for i := range r {
		pts[i] = Pt{c: r[i]}
	}
	return Group{pts: pts}, nil
}

// ZipSlice extracts the idx'th component of every element into
// a new Pt. It returns linear.ErrIndex if any element is too
// short.
func (g *Group) ZipSlice(idx int) (Pt, error) {
	v, err := linear.Column(g.rows(), idx)
	if err != nil {
		return Pt{}, err
	}
	return Pt{c: v}, nil
}

// ZipSliceDefault is ZipSlice with def substituted for missing
// components.
func (g *Group) ZipSliceDefault(idx int, def float32) Pt {
	return Pt{c: linear.ColumnDefault(g.rows(), idx, def)}
}

// Zip transposes the group read as a matrix: the result has
// one element per component index. The component count is the
// longest element's when useLongest is set, the first
// element's otherwise; an element shorter than that yields
// linear.ErrIndex.
func (g *Group) Zip(useLongest bool) (Group, error) {
	r, err := linear.Zip(g.rows(), useLongest)
	if err != nil {
		return Group{}, err
	}
	pts := make([]Pt, len(r))
	for i := range r {
		pts[i] = Pt{c: r[i]}
	}
	return Group{pts: pts}, nil
}

// ZipDefault is Zip with short elements padded with def.
func (g *Group) ZipDefault(def float32, useLongest bool) Group {
	r := linear.ZipDefault(g.rows(), def, useLongest)
	pts := make([]Pt, len(r))
	for i := range r {
		pts[i] = Pt{c: r[i]}
	}
	return Group{pts: pts}
}

// Centroid returns the component-wise mean of the elements.
// An empty group returns linear.ErrDegenerate.
func (g *Group) Centroid() (Pt, error) {
	c, err := linear.Centroid(g.rows())
	if err != nil {
		return Pt{}, err
	}
	return Pt{c: c}, nil
}

// BoundingBox returns a 2-element Group holding the
// per-component minimum and maximum corners. An empty group
// returns linear.ErrDegenerate.
func (g *Group) BoundingBox() (Group, error) {
	min, max, err := linear.BoundingBox(g.rows())
	if err != nil {
		return Group{}, err
	}
	return Group{pts: []Pt{{c: min}, {c: max}}}, nil
}

// String formats g as Group[ Pt(…) Pt(…) ]. Diagnostics only.
func (g *Group) String() string {
	var b strings.Builder
	b.WriteString("Group[ ")
	for i := range g.pts {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(g.pts[i].String())
	}
	b.WriteString(" ]")
	return b.String()
}

// axisAt reads v[i], or 0 when v is too short.
func axisAt(v []float32, i int) float32 {
	if i >= 0 && i < len(v) {
		return v[i]
	}
	return 0
}
