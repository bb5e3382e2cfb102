/*
 * options.go, part of gopull.
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
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options contains everything needed to collect a pulling dataset.
type Options struct {
	ForwardDir        string  `yaml:"forward_pull_dir"`
	BackwardDir       string  `yaml:"backward_pull_dir"`
	ForwardForceFile  string  `yaml:"forward_force_file"`
	BackwardForceFile string  `yaml:"backward_force_file"`
	Start             int     `yaml:"start"` //first replicate index
	End               int     `yaml:"end"`   //one past the last replicate index
	Exclude           []int   `yaml:"exclude"`
	PullingSpeed      float64 `yaml:"pulling_speed"`  //A/ps
	ForceConstant     float64 `yaml:"force_constant"` //kcal/mol/A^2
	LambdaMin         float64 `yaml:"lambda_min"`     //A, where the forward pulling starts
	LambdaMax         float64 `yaml:"lambda_max"`     //A, where the backward pulling starts
	Temperature       float64 `yaml:"temperature"`    //K
	KB                float64 `yaml:"kb"`             //kcal/mol/K
	Workers           int     `yaml:"workers"`
	Out               string  `yaml:"out"`
}

// DefaultOptions returns the options for the cucurbit[7]uril pulling setup
// the tool was first written for.
func DefaultOptions() *Options {
	return &Options{
		ForwardDir:        "forward",
		BackwardDir:       "backward",
		ForwardForceFile:  "cuc7.force",
		BackwardForceFile: "cuc7.force",
		Start:             0,
		End:               10,
		PullingSpeed:      0.1,
		ForceConstant:     7.2,
		LambdaMin:         -20,
		LambdaMax:         20,
		Temperature:       DefaultTemperature,
		KB:                KB,
		Workers:           1,
		Out:               "pull_data.pd",
	}
}

// LoadOptions reads a YAML file into a copy of the default options, so
// the file only needs to contain the values that differ from the defaults.
// Unknown keys are an error.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		E := newError(ErrFileNotFound, path, "can't read options", "LoadOptions")
		E.cause = err
		return nil, E
	}
	O := DefaultOptions()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(O); err != nil {
		E := newError(ErrInvalidOptions, path, "can't parse options", "LoadOptions")
		E.cause = err
		return nil, E
	}
	return O, nil
}

// Beta returns 1/(KB*Temperature).
func (O *Options) Beta() float64 {
	return Beta(O.KB, O.Temperature)
}

// Validate returns an error if the options can't be used to collect a dataset.
func (O *Options) Validate() error {
	switch {
	case O.ForwardDir == "" || O.BackwardDir == "":
		return invalidOptions("forward and backward directories must be given")
	case O.ForwardForceFile == "" || O.BackwardForceFile == "":
		return invalidOptions("forward and backward force file names must be given")
	case O.End <= O.Start:
		return invalidOptions("empty replicate range [%d, %d)", O.Start, O.End)
	case O.LambdaMax < O.LambdaMin:
		return invalidOptions("lambda range [%g, %g] is reversed", O.LambdaMin, O.LambdaMax)
	case O.Temperature <= 0 || O.KB <= 0:
		return invalidOptions("temperature (%g) and kb (%g) must be positive", O.Temperature, O.KB)
	case O.Workers < 1:
		return invalidOptions("at least 1 worker is needed, got %d", O.Workers)
	}
	if len(Replicates(O.Start, O.End, O.Exclude)) == 0 {
		return invalidOptions("all replicates in [%d, %d) are excluded", O.Start, O.End)
	}
	return nil
}

func invalidOptions(format string, a ...any) error {
	return newError(ErrInvalidOptions, "", fmt.Sprintf(format, a...), "Validate")
}
