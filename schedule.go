/*
 * schedule.go, part of gopull.
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

//getCopySlice returns dest[0] if given and of length n,
//or a new slice of length n otherwise.
func getCopySlice(n int, dest ...[]float64) []float64 {
	if len(dest) > 0 && len(dest[0]) == n {
		return dest[0]
	}
	return make([]float64, n)
}

// Schedule returns the position of the restraint center at each of the given times,
// for a center that starts at lambda0 and moves with the given (signed) speed.
// If dst is given and has the same length as times, it is used for the output.
func Schedule(times []float64, speed, lambda0 float64, dst ...[]float64) []float64 {
	lambda := getCopySlice(len(times), dst...)
	for i, t := range times {
		lambda[i] = lambda0 + speed*t
	}
	return lambda
}
