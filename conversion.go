/*
 * conversion.go, part of gopull.
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

import "gonum.org/v1/gonum/floats"

//This provides useful conversion factors and other constants

//Conversions
const (
	Nm2A     = 10.0 //nm to Angstrom
	springSc = Nm2A * Nm2A //k is per A^2, we want it per nm^2
)

//Others
const (
	KB                 = 0.0019872041 //Boltzmann constant in kcal/mol/K
	DefaultTemperature = 300.0        //K
)

// Beta returns 1/(kb*temperature), the factor that takes an energy in the units of
// kb*K (kcal/mol, for the default KB) to units of kT.
func Beta(kb, temperature float64) float64 {
	return 1 / kb / temperature
}

// ToNanometers scales, in place, a slice of Angstrom values to nm, and returns it.
// The values are divided by Nm2A.
func ToNanometers(x []float64) []float64 {
	for i := range x {
		x[i] /= Nm2A
	}
	return x
}

// FromNanometers is the inverse of ToNanometers.
func FromNanometers(x []float64) []float64 {
	floats.Scale(Nm2A, x)
	return x
}

// ToKT scales, in place, energies in kcal/mol to kT, using the
// given beta.
func ToKT(w []float64, beta float64) []float64 {
	floats.Scale(beta, w)
	return w
}

// FromKT is the inverse of ToKT.
func FromKT(w []float64, beta float64) []float64 {
	floats.Scale(1/beta, w)
	return w
}

// SpringConstantKT takes a harmonic force constant in kcal/mol/A^2 to kT/nm^2.
func SpringConstantKT(k, beta float64) float64 {
	return springSc * beta * k
}

// SpringConstantKcal is the inverse of SpringConstantKT.
func SpringConstantKcal(ks, beta float64) float64 {
	return ks / springSc / beta
}
