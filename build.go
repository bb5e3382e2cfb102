/*
 * build.go, part of gopull.
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
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//shape is what we learn from the first forward and backward replicates,
//and what all the others must agree with.
type shape struct {
	times  []float64 //from the first forward replicate
	dt     float64
	nsteps int
	first  [2]*Trajectory
}

// schedule returns the speed and initial restraint center for the direction.
func (O *Options) schedule(d Direction) (speed, lambda0 float64) {
	if d == Backward {
		return -O.PullingSpeed, O.LambdaMax
	}
	return O.PullingSpeed, O.LambdaMin
}

//canonicalShape loads the first replicate in each direction and obtains the
//time series, time step and number of steps for the whole dataset.
func canonicalShape(ffile, bfile string, replicate int) (*shape, error) {
	S := new(shape)
	var err error
	S.first[Forward], err = LoadTrajectory(ffile, Forward, replicate)
	if err != nil {
		return nil, errDecorate(err, "canonicalShape")
	}
	S.first[Backward], err = LoadTrajectory(bfile, Backward, replicate)
	if err != nil {
		return nil, errDecorate(err, "canonicalShape")
	}
	S.times = S.first[Forward].Times
	S.nsteps = len(S.times)
	if S.nsteps < 2 {
		return nil, newError(ErrShapeMismatch, ffile, fmt.Sprintf("at least 2 time steps are needed, got %d", S.nsteps), "canonicalShape")
	}
	if n := S.first[Backward].Len(); n != S.nsteps {
		return nil, newError(ErrShapeMismatch, bfile, fmt.Sprintf("%d time steps, expected %d", n, S.nsteps), "canonicalShape")
	}
	S.dt = S.times[1] - S.times[0]
	return S, nil
}

//collector fills the per-direction matrices. Each call to load
//writes only its own row, so calls for different rows can run concurrently.
type collector struct {
	o      *Options
	nsteps int
	z      [2]*mat.Dense
	w      [2]*mat.Dense
}

func (c *collector) load(row int, d Direction, name string, replicate int) error {
	logrus.Infof("loading %s", name)
	T, err := LoadTrajectory(name, d, replicate)
	if err != nil {
		return errDecorate(err, "load")
	}
	if T.Len() != c.nsteps {
		return newError(ErrShapeMismatch, name, fmt.Sprintf("%d time steps, expected %d", T.Len(), c.nsteps), "load")
	}
	speed, lambda0 := c.o.schedule(d)
	lambda := Schedule(T.Times, speed, lambda0)
	w, err := IntegrateWork(lambda, T.Z, c.o.ForceConstant)
	if err != nil {
		return errDecorate(err, "load")
	}
	c.z[d].SetRow(row, T.Z)
	c.w[d].SetRow(row, w)
	return nil
}

// Build reads the forward and backward force files of all the replicates requested
// in O, and returns the dataset with the coordinates and schedules in nm,
// the work in kT, and the force constant in kT/nm^2.
// All the files are checked for existence before anything is read, and the first
// error aborts the whole collection. Row i of every matrix in the dataset always
// corresponds to the i-th replicate index, regardless of O.Workers.
func Build(ctx context.Context, O *Options) (*Dataset, error) {
	if err := O.Validate(); err != nil {
		return nil, errDecorate(err, "Build")
	}
	reps := Replicates(O.Start, O.End, O.Exclude)
	logrus.Infof("exclude %v", O.Exclude)
	files := [2][]string{
		ReplicateFiles(O.ForwardDir, reps, O.ForwardForceFile),
		ReplicateFiles(O.BackwardDir, reps, O.BackwardForceFile),
	}
	if err := CheckFiles(files[Forward], files[Backward]); err != nil {
		return nil, errDecorate(err, "Build")
	}

	S, err := canonicalShape(files[Forward][0], files[Backward][0], reps[0])
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	logrus.Debugf("%d replicates, %d steps, dt=%g ps", len(reps), S.nsteps, S.dt)

	c := &collector{o: O, nsteps: S.nsteps}
	for _, d := range Directions {
		c.z[d] = mat.NewDense(len(reps), S.nsteps, nil)
		c.w[d] = mat.NewDense(len(reps), S.nsteps, nil)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(O.Workers)
	for i, rep := range reps {
		if gctx.Err() != nil {
			break
		}
		for _, d := range Directions {
			i, rep, d := i, rep, d
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return c.load(i, d, files[d][i], rep)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "Build")
	}
	//a canceled context can stop the loop above before any goroutine fails.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("gopull: collection aborted: %w", err)
	}

	beta := O.Beta()
	D := &Dataset{
		dt:         S.dt,
		times:      copyOf(S.times),
		ks:         SpringConstantKT(O.ForceConstant, beta),
		replicates: reps,
	}
	for _, d := range Directions {
		speed, lambda0 := O.schedule(d)
		D.pulls[d] = pulls{
			lambda: ToNanometers(Schedule(S.first[d].Times, speed, lambda0)),
			z:      c.z[d],
			w:      c.w[d],
		}
		//fresh matrices, so the raw data is contiguous.
		ToNanometers(c.z[d].RawMatrix().Data)
		ToKT(c.w[d].RawMatrix().Data, beta)
	}
	D.meta = map[string]string{
		"replicates":     formatInts(reps),
		"temperature":    strconv.FormatFloat(O.Temperature, 'g', -1, 64),
		"kb":             strconv.FormatFloat(O.KB, 'g', -1, 64),
		"force_constant": strconv.FormatFloat(O.ForceConstant, 'g', -1, 64),
		"pulling_speed":  strconv.FormatFloat(O.PullingSpeed, 'g', -1, 64),
		"lambda_range":   fmt.Sprintf("%g %g", O.LambdaMin, O.LambdaMax),
	}
	return D, nil
}
