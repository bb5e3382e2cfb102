/*
 * collect.go, part of gopull.
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

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	pull "github.com/rmera/gopull"
)

var (
	configFile        string    // YAML file with the collection options
	forwardDir        string    // Directory with one subdirectory per forward replicate
	backwardDir       string    // Directory with one subdirectory per backward replicate
	forwardForceFile  string    // Name of the force file in each forward replicate directory
	backwardForceFile string    // Name of the force file in each backward replicate directory
	replicateRange    []int     // First replicate, and one past the last
	exclude           []int     // Replicates to leave out
	pullingSpeed      float64   // A/ps
	forceConstant     float64   // kcal/mol/A^2
	lambdaRange       []float64 // Start of the forward and backward pullings, A
	temperature       float64   // K
	workers           int       // Replicates loaded concurrently
	out               string    // Output dataset
)

// collectCmd reads all the replicates and writes the dataset
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect the forward and backward force files into a dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		O, err := collectOptions(cmd.Flags())
		if err != nil {
			return err
		}
		logrus.Infof("Collecting replicates [%d, %d) from %s and %s, speed=%g A/ps, k=%g kcal/mol/A^2, T=%g K",
			O.Start, O.End, O.ForwardDir, O.BackwardDir, O.PullingSpeed, O.ForceConstant, O.Temperature)
		D, err := pull.Build(cmd.Context(), O)
		if err != nil {
			return err
		}
		for _, s := range pull.Summarize(D) {
			logrus.Info(s.String())
		}
		if err := pull.Save(D, O.Out); err != nil {
			return err
		}
		logrus.Infof("Dataset written to %s", O.Out)
		return nil
	},
}

// collectOptions starts from the defaults, or from the config file if one is given,
// and overrides them with the flags explicitly set in the command line.
func collectOptions(flags *pflag.FlagSet) (*pull.Options, error) {
	O := pull.DefaultOptions()
	if configFile != "" {
		var err error
		O, err = pull.LoadOptions(configFile)
		if err != nil {
			return nil, err
		}
	}
	useAll := configFile == ""
	set := func(name string) bool { return useAll || flags.Changed(name) }
	if set("forward-pull-dir") {
		O.ForwardDir = forwardDir
	}
	if set("backward-pull-dir") {
		O.BackwardDir = backwardDir
	}
	if set("forward-force-file") {
		O.ForwardForceFile = forwardForceFile
	}
	if set("backward-force-file") {
		O.BackwardForceFile = backwardForceFile
	}
	if set("range") {
		if len(replicateRange) != 2 {
			return nil, fmt.Errorf("--range needs exactly 2 values (start,end), got %v", replicateRange)
		}
		O.Start, O.End = replicateRange[0], replicateRange[1]
	}
	if set("exclude") {
		O.Exclude = exclude
	}
	if set("pulling-speed") {
		O.PullingSpeed = pullingSpeed
	}
	if set("force-constant") {
		O.ForceConstant = forceConstant
	}
	if set("lambda-range") {
		if len(lambdaRange) != 2 {
			return nil, fmt.Errorf("--lambda-range needs exactly 2 values (min,max), got %v", lambdaRange)
		}
		O.LambdaMin, O.LambdaMax = lambdaRange[0], lambdaRange[1]
	}
	if set("temperature") {
		O.Temperature = temperature
	}
	if set("workers") {
		O.Workers = workers
	}
	if set("out") {
		O.Out = out
	}
	if err := O.Validate(); err != nil {
		return nil, err
	}
	return O, nil
}

func init() {
	def := pull.DefaultOptions()
	f := collectCmd.Flags()
	f.StringVar(&configFile, "config", "", "YAML file with the options. Flags given explicitly override it")
	f.StringVar(&forwardDir, "forward-pull-dir", def.ForwardDir, "Directory with one subdirectory per forward replicate")
	f.StringVar(&backwardDir, "backward-pull-dir", def.BackwardDir, "Directory with one subdirectory per backward replicate")
	f.StringVar(&forwardForceFile, "forward-force-file", def.ForwardForceFile, "Force file in each forward replicate directory (.gz and .zst are decompressed)")
	f.StringVar(&backwardForceFile, "backward-force-file", def.BackwardForceFile, "Force file in each backward replicate directory (.gz and .zst are decompressed)")
	f.IntSliceVar(&replicateRange, "range", []int{def.Start, def.End}, "Replicates to load: start,end (end not included)")
	f.IntSliceVar(&exclude, "exclude", nil, "Comma-separated replicates to leave out")
	f.Float64Var(&pullingSpeed, "pulling-speed", def.PullingSpeed, "Pulling speed, A/ps")
	f.Float64Var(&forceConstant, "force-constant", def.ForceConstant, "Force constant of the restraint, kcal/mol/A^2")
	f.Float64SliceVar(&lambdaRange, "lambda-range", []float64{def.LambdaMin, def.LambdaMax}, "Initial restraint center for the forward and backward pulling: min,max (A)")
	f.Float64Var(&temperature, "temperature", def.Temperature, "Temperature, K")
	f.IntVar(&workers, "workers", def.Workers, "Number of replicates loaded concurrently")
	f.StringVar(&out, "out", def.Out, "Output dataset (.pd is zstd-compressed, .gz gzip, .txt plain)")
}
