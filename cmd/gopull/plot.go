/*
 * plot.go, part of gopull.
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

	pull "github.com/rmera/gopull"
	"github.com/rmera/gopull/pullplot"
)

var (
	plotPrefix string // Prefix for the plot files
	plotFormat string // Extension of the plot files
)

// plotCmd draws the work and coordinate trajectories of a dataset
var plotCmd = &cobra.Command{
	Use:   "plot DATASET",
	Short: "Plot the work and coordinate trajectories in a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		D, err := pull.Load(args[0])
		if err != nil {
			return err
		}
		for _, d := range pull.Directions {
			name := fmt.Sprintf("%s_work_%s.%s", plotPrefix, d.Tag(), plotFormat)
			if err := pullplot.Work(D, d, name); err != nil {
				return err
			}
			logrus.Infof("Wrote %s", name)
			name = fmt.Sprintf("%s_z_%s.%s", plotPrefix, d.Tag(), plotFormat)
			if err := pullplot.Coordinates(D, d, name); err != nil {
				return err
			}
			logrus.Infof("Wrote %s", name)
		}
		return nil
	},
}

// summaryCmd prints the final work statistics of a dataset
var summaryCmd = &cobra.Command{
	Use:   "summary DATASET",
	Short: "Print the final work statistics of a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		D, err := pull.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d steps, dt=%g ps, ks=%g kT/nm^2, replicates: %v\n", D.NSteps(), D.Dt(), D.Ks(), D.Replicates())
		for _, s := range pull.Summarize(D) {
			fmt.Fprintln(cmd.OutOrStdout(), s.String())
		}
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotPrefix, "prefix", "pull", "Prefix for the plot files")
	plotCmd.Flags().StringVar(&plotFormat, "format", "png", "Plot format (png, svg, pdf, eps)")
}
