/*
 * trajectory.go, part of gopull.
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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rmera/gopull/forcefile"
)

// Direction is the direction in which the restraint center is pulled.
type Direction int

const (
	Forward  Direction = iota //from LambdaMin towards LambdaMax
	Backward                  //from LambdaMax towards LambdaMin
)

// Directions lists both directions in the order they are processed.
var Directions = [2]Direction{Forward, Backward}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Tag returns the letter used for the direction in the array names of a dataset.
func (d Direction) Tag() string {
	if d == Backward {
		return "R"
	}
	return "F"
}

// Trajectory is the restrained coordinate of one pulling replicate.
type Trajectory struct {
	Times     []float64 //ps
	Z         []float64 //A
	Direction Direction
	Replicate int
	FileName  string
}

// Len returns the number of samples in the trajectory.
func (T *Trajectory) Len() int {
	return len(T.Times)
}

// Replicates returns the indexes in [start, end) which are not in exclude.
func Replicates(start, end int, exclude []int) []int {
	skip := make(map[int]bool, len(exclude))
	for _, v := range exclude {
		skip[v] = true
	}
	ret := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		if !skip[i] {
			ret = append(ret, i)
		}
	}
	return ret
}

// ReplicateFile returns the path to the force file of a replicate, dir/index/name.
func ReplicateFile(dir string, index int, name string) string {
	return filepath.Join(dir, strconv.Itoa(index), name)
}

// ReplicateFiles returns the force files of the given replicates.
func ReplicateFiles(dir string, indexes []int, name string) []string {
	ret := make([]string, len(indexes))
	for i, v := range indexes {
		ret[i] = ReplicateFile(dir, v, name)
	}
	return ret
}

// CheckFiles returns an error, wrapping ErrFileNotFound, for the first of
// the given paths that doesn't exist or is not a regular file.
func CheckFiles(paths ...[]string) error {
	for _, list := range paths {
		for _, p := range list {
			info, err := os.Stat(p)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return newError(ErrFileNotFound, p, "does not exist", "CheckFiles")
				}
				E := newError(ErrFileNotFound, p, "", "CheckFiles")
				E.cause = err
				return E
			}
			if info.IsDir() {
				return newError(ErrFileNotFound, p, "is a directory", "CheckFiles")
			}
		}
	}
	return nil
}

// LoadTrajectory reads the force file name, for the given direction and replicate.
func LoadTrajectory(name string, d Direction, replicate int) (*Trajectory, error) {
	s, err := forcefile.Read(name)
	if err != nil {
		kind := ErrMalformed
		if errors.Is(err, fs.ErrNotExist) {
			kind = ErrFileNotFound
		}
		E := newError(kind, name, "", "LoadTrajectory")
		E.cause = err
		return nil, E
	}
	return &Trajectory{Times: s.Times, Z: s.Coords, Direction: d, Replicate: replicate, FileName: name}, nil
}
