/*
 * work.go, part of gopull.
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

package pull

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Harmonic returns the energy of the restraint potential k*(x-center)^2 at x.
// Note that there is no 1/2 factor: k is used as given.
func Harmonic(x, k, center float64) float64 {
	d := x - center
	return k * (d * d)
}

// IntegrateWork returns the cumulative work done on the system by a harmonic restraint
// of force constant k whose center follows lambda, while the restrained coordinate follows z.
// Each increment is the change in restraint energy, at the current value of the coordinate,
// caused by moving the center from its previous position to the current one:
//
//	w[0] = 0
//	w[i] = w[i-1] + V(z[i], k, lambda[i]) - V(z[i], k, lambda[i-1])
//
// (D. Minh and J. Chodera, J. Chem. Phys. 131, 134110, 2009). lambda and z must have
// the same length. If dst is given and has the right length, it is used for the output.
func IntegrateWork(lambda, z []float64, k float64, dst ...[]float64) ([]float64, error) {
	if len(lambda) != len(z) {
		return nil, newError(ErrShapeMismatch, "", fmt.Sprintf("restraint centers (%d) and coordinates (%d) must have the same length", len(lambda), len(z)), "IntegrateWork")
	}
	w := getCopySlice(len(z), dst...)
	if len(w) == 0 {
		return w, nil
	}
	w[0] = 0
	for i := 1; i < len(z); i++ {
		w[i] = Harmonic(z[i], k, lambda[i]) - Harmonic(z[i], k, lambda[i-1])
	}
	return floats.CumSum(w, w), nil
}
