/*
 * doc.go, part of gopull.
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

/*Package pull collects the output of steered MD pulling simulations into a single dataset
that can be fed to nonequilibrium (Jarzynski/Crooks-type) free energy estimators.

Each replicate is pulled twice: forward, with the center of a harmonic restraint moving
from LambdaMin towards LambdaMax at constant speed, and backward, from LambdaMax towards
LambdaMin. For each replicate and direction, the restrained coordinate is read from the force file
written during the simulation, and the work done by the moving restraint is accumulated.

	**gopull capabilities**

    Generates the schedule (position of the restraint center vs time) for a pulling run.

    Integrates the nonequilibrium work for a restrained coordinate trajectory.

    Reads the forward and backward force files of many replicates, plain or compressed
	(gzip, zstd), checking that all of them are present and have the same number of
	steps, optionally loading them concurrently.

    Converts coordinates to nm and energies to kT, and writes the dataset with the array names
	used by the downstream estimators (dt, pulling_times, ks, lambda_F, lambda_R, zF_t,
	zR_t, wF_t, wR_t), using the pdata format (package pdata).

    Plots work and coordinate trajectories (package pullplot).

No free energy estimation is performed here.
*/
package pull
