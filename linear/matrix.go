// Copyright 2025 Gustavo C. Viegas. All rights reserved.

package linear

// Matrix functions treat a [][]float32 as a row-major matrix:
// each row is one vector and a column is a component index.
// Rows need not share a length; functions that require a
// rectangular shape return ErrShape when they do not.

// MatAddScalar adds s to every element of a in place.
func MatAddScalar(a [][]float32, s float32) {
	for i := range a {
		Add(a[i], s)
	}
}

// MatAdd adds b to a elementwise in place.
// It returns ErrShape unless b has exactly the row count and
// per-row lengths of a.
func MatAdd(a, b [][]float32) error {
	if len(a) != len(b) {
		return ErrShape
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return ErrShape
		}
	}
	for i := range a {
		AddV(a[i], b[i])
	}
	return nil
}

// MatMul multiplies a by b into a new matrix.
//
// With elementwise set it computes the Hadamard product, which
// requires identical shapes. Otherwise it computes the matrix
// product r[i][j] = Σ a[i][k]⋅b[k][j], requiring a's column
// count to equal b's row count; with transposed set, b's rows
// are read as columns and a's column count must equal b's
// column count instead.
//
// A shape that does not satisfy the active rule yields ErrShape.
func MatMul(a, b [][]float32, transposed, elementwise bool) ([][]float32, error) {
	if elementwise {
		if len(a) != len(b) {
			return nil, ErrShape
		}
		r := make([][]float32, len(a))
		for i := range a {
			if len(a[i]) != len(b[i]) {
				return nil, ErrShape
			}
			r[i] = make([]float32, len(a[i]))
			copy(r[i], a[i])
			MulV(r[i], b[i])
		}
		return r, nil
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrShape
	}
	cols := len(a[0])
	for i := range a {
		if len(a[i]) != cols {
			return nil, ErrShape
		}
	}
	if transposed {
		for i := range b {
			if len(b[i]) != cols {
				return nil, ErrShape
			}
		}
		r := make([][]float32, len(a))
		for i := range a {
			r[i] = make([]float32, len(b))
			for j := range b {
				r[i][j] = Dot(a[i], b[j])
			}
		}
		return r, nil
	}
	if len(b) != cols {
		return nil, ErrShape
	}
	n := len(b[0])
	for k := range b {
		if len(b[k]) != n {
			return nil, ErrShape
		}
	}
	r := make([][]float32, len(a))
	for i := range a {
		r[i] = make([]float32, n)
		for k := 0; k < cols; k++ {
			for j := 0; j < n; j++ {
				r[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return r, nil
}

// Column extracts the idx'th component of every row into a new
// vector. It returns ErrIndex if any row is too short.
func Column(m [][]float32, idx int) ([]float32, error) {
	v := make([]float32, len(m))
	for i, row := range m {
		if idx < 0 || idx >= len(row) {
			return nil, ErrIndex
		}
		v[i] = row[idx]
	}
	return v, nil
}

// ColumnDefault is Column with def substituted for missing
// elements, so it accepts any ragged matrix.
func ColumnDefault(m [][]float32, idx int, def float32) []float32 {
	v := make([]float32, len(m))
	for i, row := range m {
		if idx >= 0 && idx < len(row) {
			v[i] = row[idx]
		} else {
			v[i] = def
		}
	}
	return v
}

// Zip transposes m's rows into columns. The output has one row
// per column of the input; the column count considered is the
// longest row's length when useLongest is set, the first row's
// length otherwise. A row shorter than that length makes the
// call fail with ErrIndex, since there is no value to pad with.
// An empty m yields an empty result.
func Zip(m [][]float32, useLongest bool) ([][]float32, error) {
	return zip(m, 0, false, useLongest)
}

// ZipDefault is Zip with short rows padded with def, so it
// accepts any ragged matrix.
func ZipDefault(m [][]float32, def float32, useLongest bool) [][]float32 {
	r, _ := zip(m, def, true, useLongest)
	return r
}

func zip(m [][]float32, def float32, pad, useLongest bool) ([][]float32, error) {
	if len(m) == 0 {
		return nil, nil
	}
	n := len(m[0])
	if useLongest {
		for _, row := range m {
			if len(row) > n {
				n = len(row)
			}
		}
	}
	r := make([][]float32, n)
	for j := 0; j < n; j++ {
		r[j] = make([]float32, len(m))
		for i, row := range m {
			switch {
			case j < len(row):
				r[j][i] = row[j]
			case pad:
				r[j][i] = def
			default:
				return nil, ErrIndex
			}
		}
	}
	return r, nil
}
