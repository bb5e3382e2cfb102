/*
 * dataset.go, part of gopull.
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
	"strconv"
	"strings"

	"github.com/rmera/gopull/pdata"
	"gonum.org/v1/gonum/mat"
)

// Names of the arrays in a stored dataset. Downstream estimators depend on them.
const (
	DtName    = "dt"
	TimesName = "pulling_times"
	KsName    = "ks"
)

// LambdaName returns the name of the schedule array for the direction.
func LambdaName(d Direction) string { return "lambda_" + d.Tag() }

// ZName returns the name of the coordinate array (replicates x times) for the direction.
func ZName(d Direction) string { return "z" + d.Tag() + "_t" }

// WName returns the name of the work array (replicates x times) for the direction.
func WName(d Direction) string { return "w" + d.Tag() + "_t" }

type pulls struct {
	lambda []float64
	z      *mat.Dense
	w      *mat.Dense
}

// Dataset is the collection of forward and backward pulling replicates, in nm and kT units.
// It can't be modified once built.
type Dataset struct {
	dt         float64 //ps
	times      []float64
	ks         float64 //kT/nm^2
	pulls      [2]pulls
	replicates []int
	meta       map[string]string
}

// Dt returns the time step of the trajectories, in ps.
func (D *Dataset) Dt() float64 { return D.dt }

// Ks returns the force constant of the restraint, in kT/nm^2.
func (D *Dataset) Ks() float64 { return D.ks }

// NSteps returns the number of samples in each trajectory.
func (D *Dataset) NSteps() int { return len(D.times) }

// Times returns a copy of the times shared by all the trajectories, in ps.
func (D *Dataset) Times() []float64 { return copyOf(D.times) }

// Lambda returns a copy of the restraint schedule for the direction, in nm.
func (D *Dataset) Lambda(d Direction) []float64 { return copyOf(D.pulls[d].lambda) }

// Z returns a copy of the restrained coordinates for the direction, one replicate per row, in nm.
func (D *Dataset) Z(d Direction) mat.Matrix { return mat.DenseCopyOf(D.pulls[d].z) }

// W returns a copy of the accumulated work for the direction, one replicate per row, in kT.
func (D *Dataset) W(d Direction) mat.Matrix { return mat.DenseCopyOf(D.pulls[d].w) }

// Replicates returns the replicate indexes corresponding to each row of the Z and W matrices.
func (D *Dataset) Replicates() []int {
	r := make([]int, len(D.replicates))
	copy(r, D.replicates)
	return r
}

// Meta returns a copy of the metadata of the dataset.
func (D *Dataset) Meta() map[string]string {
	m := make(map[string]string, len(D.meta))
	for k, v := range D.meta {
		m[k] = v
	}
	return m
}

func copyOf(s []float64) []float64 {
	r := make([]float64, len(s))
	copy(r, s)
	return r
}

// Arrays returns the dataset as a set of named arrays.
func (D *Dataset) Arrays() map[string]pdata.Array {
	ret := map[string]pdata.Array{
		DtName:    pdata.Scalar(D.dt),
		TimesName: pdata.Vector(D.times),
		KsName:    pdata.Scalar(D.ks),
	}
	for _, d := range Directions {
		ret[LambdaName(d)] = pdata.Vector(D.pulls[d].lambda)
		ret[ZName(d)] = pdata.FromDense(D.pulls[d].z)
		ret[WName(d)] = pdata.FromDense(D.pulls[d].w)
	}
	return ret
}

func formatInts(s []int) string {
	strs := make([]string, len(s))
	for i, v := range s {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, " ")
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	ret := make([]int, len(fields))
	for i, v := range fields {
		var err error
		ret[i], err = strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// DatasetFromArrays builds a dataset from a set of named arrays, as returned by Arrays.
// meta can be nil. If it contains a "replicates" entry, it is used as the list of
// replicate indexes, otherwise the rows are numbered from 0.
func DatasetFromArrays(arrays map[string]pdata.Array, meta map[string]string) (*Dataset, error) {
	get := func(name string, ndims int) (pdata.Array, error) {
		A, ok := arrays[name]
		if !ok {
			return A, newError(ErrMalformed, "", "missing array "+name, "DatasetFromArrays")
		}
		if err := A.Check(); err != nil {
			return A, newError(ErrMalformed, "", name+": "+err.Error(), "DatasetFromArrays")
		}
		if len(A.Dims) != ndims {
			return A, newError(ErrShapeMismatch, "", fmt.Sprintf("%s has %d dimensions, expected %d", name, len(A.Dims), ndims), "DatasetFromArrays")
		}
		return A, nil
	}
	D := new(Dataset)
	for _, name := range []string{DtName, KsName} {
		A, err := get(name, 1)
		if err != nil {
			return nil, err
		}
		if A.Dims[0] != 1 {
			return nil, newError(ErrShapeMismatch, "", name+" must contain a single value", "DatasetFromArrays")
		}
	}
	D.dt = arrays[DtName].Data[0]
	D.ks = arrays[KsName].Data[0]
	T, err := get(TimesName, 1)
	if err != nil {
		return nil, err
	}
	D.times = copyOf(T.Data)
	nsteps := len(D.times)
	nrep := -1
	for _, d := range Directions {
		L, err := get(LambdaName(d), 1)
		if err != nil {
			return nil, err
		}
		if L.Dims[0] != nsteps {
			return nil, newError(ErrShapeMismatch, "", fmt.Sprintf("%s has %d steps, expected %d", LambdaName(d), L.Dims[0], nsteps), "DatasetFromArrays")
		}
		D.pulls[d].lambda = copyOf(L.Data)
		for _, name := range []string{ZName(d), WName(d)} {
			A, err := get(name, 2)
			if err != nil {
				return nil, err
			}
			if A.Dims[1] != nsteps || A.Dims[0] == 0 || (nrep >= 0 && A.Dims[0] != nrep) {
				return nil, newError(ErrShapeMismatch, "", fmt.Sprintf("%s has shape %v, expected (%d, %d)", name, A.Dims, nrep, nsteps), "DatasetFromArrays")
			}
			nrep = A.Dims[0]
		}
		D.pulls[d].z = mat.NewDense(nrep, nsteps, copyOf(arrays[ZName(d)].Data))
		D.pulls[d].w = mat.NewDense(nrep, nsteps, copyOf(arrays[WName(d)].Data))
	}
	D.meta = make(map[string]string, len(meta))
	for k, v := range meta {
		D.meta[k] = v
	}
	if r, ok := meta["replicates"]; ok {
		D.replicates, err = parseInts(r)
		if err != nil || len(D.replicates) != nrep {
			return nil, newError(ErrMalformed, "", fmt.Sprintf("invalid replicate list %q for %d replicates", r, nrep), "DatasetFromArrays")
		}
	} else {
		D.replicates = make([]int, nrep)
		for i := range D.replicates {
			D.replicates[i] = i
		}
		D.meta["replicates"] = formatInts(D.replicates)
	}
	return D, nil
}

// Save writes the dataset to the file name, in the pdata format.
func Save(D *Dataset, name string) error {
	return pdata.WriteFile(name, D.meta, D.Arrays())
}

// Load reads a dataset written by Save.
func Load(name string) (*Dataset, error) {
	meta, arrays, err := pdata.ReadFile(name)
	if err != nil {
		return nil, err
	}
	D, err := DatasetFromArrays(arrays, meta)
	if err != nil {
		E := err.(*Error)
		E.filename = name
		return nil, errDecorate(E, "Load")
	}
	return D, nil
}
