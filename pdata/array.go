/*
 * array.go, part of gopull.
 *
 *
 * Copyright 2026 The gopull Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package pdata

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Array is a row-major array of float64 with 1 or 2 dimensions.
type Array struct {
	Dims []int
	Data []float64
}

// Scalar returns a 1-element array containing v.
func Scalar(v float64) Array {
	return Array{Dims: []int{1}, Data: []float64{v}}
}

// Vector returns a 1-dimensional array with a copy of v.
func Vector(v []float64) Array {
	d := make([]float64, len(v))
	copy(d, v)
	return Array{Dims: []int{len(v)}, Data: d}
}

// FromDense returns a 2-dimensional array with a copy of the data in m.
func FromDense(m mat.Matrix) Array {
	r, c := m.Dims()
	d := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d = append(d, m.At(i, j))
		}
	}
	return Array{Dims: []int{r, c}, Data: d}
}

// Len returns the total number of elements the array should have, according to its dimensions.
func (A Array) Len() int {
	if len(A.Dims) == 0 {
		return 0
	}
	n := 1
	for _, v := range A.Dims {
		n *= v
	}
	return n
}

// Check returns an error if the dimensions of the array don't agree with its data.
func (A Array) Check() error {
	if len(A.Dims) < 1 || len(A.Dims) > 2 {
		return fmt.Errorf("arrays must have 1 or 2 dimensions, got %d", len(A.Dims))
	}
	for _, v := range A.Dims {
		if v < 0 {
			return fmt.Errorf("negative dimension %v", A.Dims)
		}
	}
	if A.Len() != len(A.Data) {
		return fmt.Errorf("dimensions %v need %d elements, array has %d", A.Dims, A.Len(), len(A.Data))
	}
	return nil
}

// Dense returns the array as a matrix. 1-dimensional arrays become a row matrix.
// The matrix shares the data with the array. Dense panics if the array has no elements,
// as gonum doesn't allow empty matrices.
func (A Array) Dense() *mat.Dense {
	if len(A.Dims) == 1 {
		return mat.NewDense(1, A.Dims[0], A.Data)
	}
	return mat.NewDense(A.Dims[0], A.Dims[1], A.Data)
}
