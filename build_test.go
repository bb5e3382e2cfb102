/*
 * build_test.go, part of gopull.
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
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rmera/gopull/pdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const testDt = 0.2

//testZ is a made up coordinate that lags a bit behind the restraint center,
//different for each replicate.
func testZ(replicate int, lambda float64, step int) float64 {
	return lambda + 0.05*math.Sin(float64(step+3*replicate))
}

//writeForceFile writes a force file with nsteps lines for the replicate.
func writeForceFile(t *testing.T, name string, replicate, nsteps int, speed, lambda0 float64) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	var b strings.Builder
	b.WriteString("# time z force\n")
	for i := 0; i < nsteps; i++ {
		tm := float64(i) * testDt
		z := testZ(replicate, lambda0+speed*tm, i)
		fmt.Fprintf(&b, "%s %s %s\n", strconv.FormatFloat(tm, 'g', -1, 64), strconv.FormatFloat(z, 'g', -1, 64), "0.0")
	}
	require.NoError(t, os.WriteFile(name, []byte(b.String()), 0o644))
}

//testOptions writes forward and backward force files for the replicates in [start, end)
//and returns the options to collect them.
func testOptions(t *testing.T, start, end, nsteps int) *Options {
	t.Helper()
	dir := t.TempDir()
	O := DefaultOptions()
	O.ForwardDir = filepath.Join(dir, "forward")
	O.BackwardDir = filepath.Join(dir, "backward")
	O.Start, O.End = start, end
	for i := start; i < end; i++ {
		writeForceFile(t, ReplicateFile(O.ForwardDir, i, O.ForwardForceFile), i, nsteps, O.PullingSpeed, O.LambdaMin)
		writeForceFile(t, ReplicateFile(O.BackwardDir, i, O.BackwardForceFile), i, nsteps, -O.PullingSpeed, O.LambdaMax)
	}
	return O
}

func TestReplicates(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 4}, Replicates(0, 5, []int{3}))
	assert.Equal(t, []int{2, 3}, Replicates(2, 4, nil))
	assert.Equal(t, []int{}, Replicates(0, 2, []int{0, 1}))
	assert.Equal(t, []int{5}, Replicates(5, 6, []int{7}))
}

func TestReplicateFile(t *testing.T) {
	assert.Equal(t, filepath.Join("forward", "12", "cuc7.force"), ReplicateFile("forward", 12, "cuc7.force"))
}

func TestBuild(t *testing.T) {
	O := testOptions(t, 0, 5, 100)
	O.Exclude = []int{3}
	D, err := Build(context.Background(), O)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 4}, D.Replicates())
	assert.Equal(t, 100, D.NSteps())
	assert.InDelta(t, testDt, D.Dt(), 1e-12)
	beta := Beta(KB, DefaultTemperature)
	assert.InDelta(t, 100*beta*7.2, D.Ks(), 1e-9)

	lf, lr := D.Lambda(Forward), D.Lambda(Backward)
	assert.InDelta(t, -2.0, lf[0], 1e-12)
	assert.InDelta(t, 2.0, lr[0], 1e-12)
	assert.InDelta(t, (-20+0.1*99*testDt)/10, lf[99], 1e-12)
	assert.InDelta(t, (20-0.1*99*testDt)/10, lr[99], 1e-12)

	for _, d := range Directions {
		speed, lambda0 := O.schedule(d)
		Z, W := D.Z(d), D.W(d)
		r, c := Z.Dims()
		assert.Equal(t, 4, r)
		assert.Equal(t, 100, c)
		r, c = W.Dims()
		assert.Equal(t, 4, r)
		assert.Equal(t, 100, c)
		for row, rep := range D.Replicates() {
			//recompute the replicate the long way, in A and kcal/mol.
			times := D.Times()
			lambda := Schedule(times, speed, lambda0)
			z := make([]float64, len(times))
			for i := range z {
				z[i] = testZ(rep, lambda[i], i)
			}
			w, err := IntegrateWork(lambda, z, O.ForceConstant)
			require.NoError(t, err)
			assert.Equal(t, 0.0, W.At(row, 0))
			for i := range z {
				assert.InDelta(t, z[i]/10, Z.At(row, i), 1e-9)
				assert.InDelta(t, w[i]*beta, W.At(row, i), 1e-9)
			}
		}
	}
	assert.Equal(t, "0 1 2 4", D.Meta()["replicates"])
}

func TestDatasetIsReadOnly(t *testing.T) {
	O := testOptions(t, 0, 2, 10)
	D, err := Build(context.Background(), O)
	require.NoError(t, err)
	for _, d := range Directions {
		w, z := D.W(d).At(0, 5), D.Z(d).At(0, 5)
		W, ok := D.W(d).(*mat.Dense)
		require.True(t, ok)
		W.Set(0, 5, 12345)
		Z, ok := D.Z(d).(*mat.Dense)
		require.True(t, ok)
		Z.Set(0, 5, 12345)
		assert.Equal(t, w, D.W(d).At(0, 5), d.String())
		assert.Equal(t, z, D.Z(d).At(0, 5), d.String())
	}
}

func TestBuildWorkers(t *testing.T) {
	O := testOptions(t, 0, 7, 40)
	O.Exclude = []int{1, 5}
	seq, err := Build(context.Background(), O)
	require.NoError(t, err)
	O.Workers = 4
	conc, err := Build(context.Background(), O)
	require.NoError(t, err)
	assert.Equal(t, seq.Replicates(), conc.Replicates())
	for _, d := range Directions {
		assert.True(t, mat.Equal(seq.Z(d), conc.Z(d)), d.String())
		assert.True(t, mat.Equal(seq.W(d), conc.W(d)), d.String())
	}
}

func TestBuildMissingFile(t *testing.T) {
	O := testOptions(t, 0, 4, 20)
	missing := ReplicateFile(O.BackwardDir, 3, O.BackwardForceFile)
	require.NoError(t, os.Remove(missing))
	//a broken file that would fail if it was read first
	require.NoError(t, os.WriteFile(ReplicateFile(O.ForwardDir, 0, O.ForwardForceFile), []byte("garbage\n"), 0o644))
	_, err := Build(context.Background(), O)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound), err.Error())
	assert.Contains(t, err.Error(), missing)
}

func TestBuildShapeMismatch(t *testing.T) {
	O := testOptions(t, 0, 3, 100)
	short := ReplicateFile(O.ForwardDir, 2, O.ForwardForceFile)
	writeForceFile(t, short, 2, 99, O.PullingSpeed, O.LambdaMin)
	for _, workers := range []int{1, 3} {
		O.Workers = workers
		D, err := Build(context.Background(), O)
		require.Error(t, err)
		assert.Nil(t, D)
		assert.True(t, errors.Is(err, ErrShapeMismatch), err.Error())
		var E *Error
		require.True(t, errors.As(err, &E))
		assert.Equal(t, short, E.FileName())
	}
}

func TestBuildBackwardShape(t *testing.T) {
	O := testOptions(t, 0, 2, 30)
	short := ReplicateFile(O.BackwardDir, 0, O.BackwardForceFile)
	writeForceFile(t, short, 0, 29, -O.PullingSpeed, O.LambdaMax)
	_, err := Build(context.Background(), O)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Contains(t, err.Error(), short)
}

func TestBuildTooShort(t *testing.T) {
	O := testOptions(t, 0, 1, 1)
	_, err := Build(context.Background(), O)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestBuildMalformed(t *testing.T) {
	O := testOptions(t, 0, 3, 10)
	bad := ReplicateFile(O.BackwardDir, 1, O.BackwardForceFile)
	require.NoError(t, os.WriteFile(bad, []byte("0.0 1.0 0\n0.2 oops 0\n"), 0o644))
	_, err := Build(context.Background(), O)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Contains(t, err.Error(), bad)
}

func TestBuildTemperature(t *testing.T) {
	O := testOptions(t, 0, 2, 10)
	D300, err := Build(context.Background(), O)
	require.NoError(t, err)
	O.Temperature = 600
	D600, err := Build(context.Background(), O)
	require.NoError(t, err)
	assert.InDelta(t, D300.Ks()/2, D600.Ks(), 1e-9)
	assert.InDelta(t, D300.W(Forward).At(1, 9)/2, D600.W(Forward).At(1, 9), 1e-9)
	assert.Equal(t, D300.Z(Forward).At(1, 9), D600.Z(Forward).At(1, 9))
}

func TestBuildInvalidOptions(t *testing.T) {
	O := DefaultOptions()
	O.End = O.Start
	_, err := Build(context.Background(), O)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestBuildCanceled(t *testing.T) {
	O := testOptions(t, 0, 3, 20)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	D, err := Build(ctx, O)
	require.Error(t, err)
	assert.Nil(t, D, "no partial dataset")
	assert.ErrorIs(t, err, context.Canceled)

	O.Workers = 3
	D, err = Build(ctx, O)
	require.Error(t, err)
	assert.Nil(t, D)
}

func TestSaveLoad(t *testing.T) {
	O := testOptions(t, 0, 3, 25)
	D, err := Build(context.Background(), O)
	require.NoError(t, err)
	name := filepath.Join(t.TempDir(), "pull_data.pd")
	require.NoError(t, Save(D, name))
	D2, err := Load(name)
	require.NoError(t, err)

	a1, a2 := D.Arrays(), D2.Arrays()
	require.Len(t, a2, 9)
	for _, k := range []string{"dt", "pulling_times", "ks", "lambda_F", "lambda_R", "zF_t", "zR_t", "wF_t", "wR_t"} {
		require.Contains(t, a2, k)
		assert.Equal(t, a1[k].Dims, a2[k].Dims, k)
		assert.InDeltaSlice(t, a1[k].Data, a2[k].Data, 1e-12, k)
	}
	assert.Equal(t, []int{3, 25}, a2["zF_t"].Dims, "replicate axis goes first")
	assert.Equal(t, D.Replicates(), D2.Replicates())
	assert.Equal(t, D.Meta(), D2.Meta())
}

func TestDatasetFromArraysErrors(t *testing.T) {
	O := testOptions(t, 0, 2, 10)
	D, err := Build(context.Background(), O)
	require.NoError(t, err)

	arrays := D.Arrays()
	delete(arrays, "wR_t")
	_, err = DatasetFromArrays(arrays, nil)
	assert.True(t, errors.Is(err, ErrMalformed))

	arrays = D.Arrays()
	arrays["lambda_F"] = pdata.Vector(make([]float64, 9))
	_, err = DatasetFromArrays(arrays, nil)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	D2, err := DatasetFromArrays(D.Arrays(), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, D2.Replicates())
}

func TestSummarize(t *testing.T) {
	O := testOptions(t, 0, 4, 30)
	D, err := Build(context.Background(), O)
	require.NoError(t, err)
	S := Summarize(D)
	require.Len(t, S, 2)
	for i, d := range Directions {
		assert.Equal(t, d, S[i].Direction)
		assert.Equal(t, 4, S[i].Replicates)
		final := mat.Col(nil, 29, D.W(d))
		var sum float64
		for _, v := range final {
			sum += v
		}
		assert.InDelta(t, sum/4, S[i].Mean, 1e-9)
		assert.LessOrEqual(t, S[i].Min, S[i].Mean)
		assert.GreaterOrEqual(t, S[i].Max, S[i].Mean)
		assert.Contains(t, S[i].String(), d.String())
	}
}
