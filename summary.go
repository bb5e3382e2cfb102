/*
 * summary.go, part of gopull.
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
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of the total work of the replicates
// pulled in one direction, in kT. It is only meant as a sanity check of the data.
type Summary struct {
	Direction  Direction
	Replicates int
	Mean       float64
	StdDev     float64 //NaN if there is only one replicate
	Min        float64
	Max        float64
}

func (S Summary) String() string {
	return fmt.Sprintf("%-8s replicates: %3d  final work (kT) mean: %10.4f std: %10.4f min: %10.4f max: %10.4f",
		S.Direction, S.Replicates, S.Mean, S.StdDev, S.Min, S.Max)
}

// Summarize returns the summary of the final work values for both directions.
func Summarize(D *Dataset) []Summary {
	ret := make([]Summary, 0, len(Directions))
	for _, d := range Directions {
		w := D.pulls[d].w
		r, c := w.Dims()
		final := mat.Col(nil, c-1, w)
		S := Summary{Direction: d, Replicates: r}
		S.Mean, S.StdDev = stat.MeanStdDev(final, nil)
		S.Min = floats.Min(final)
		S.Max = floats.Max(final)
		ret = append(ret, S)
	}
	return ret
}
