/*
 * forcefile_test.go, part of gopull.
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

package forcefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# time z force
0.000 -20.10 1.5
0.002 -20.05 1.4

0.004 -19.98 1.2
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(sample), "sample")
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{0, 0.002, 0.004}, s.Times)
	assert.Equal(t, []float64{-20.10, -20.05, -19.98}, s.Coords)
	assert.Equal(t, []float64{1.5, 1.4, 1.2}, s.Forces)
}

func TestParseNoForces(t *testing.T) {
	s, err := Parse(strings.NewReader("0 1 5\n1 2\n2 3 4\n"), "twocols")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Nil(t, s.Forces, "forces are dropped once a line lacks them")
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"one column": "0.0 1.0\n0.1\n",
		"bad time":   "abc 1.0\n",
		"bad coord":  "0.0 1.0\n0.1 x\n",
		"bad force":  "0.0 1.0 f\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in), "bad.force")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
			assert.Contains(t, err.Error(), "bad.force")
		})
	}
}

func TestReadCompressed(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "cuc7.force")
	require.NoError(t, os.WriteFile(plain, []byte(sample), 0o644))

	gzname := filepath.Join(dir, "cuc7.force.gz")
	gf, err := os.Create(gzname)
	require.NoError(t, err)
	gw := gzip.NewWriter(gf)
	_, err = gw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, gf.Close())

	zname := filepath.Join(dir, "cuc7.force.zst")
	zf, err := os.Create(zname)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(zf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, zf.Close())

	ref, err := Read(plain)
	require.NoError(t, err)
	for _, name := range []string{gzname, zname} {
		s, err := Read(name)
		require.NoError(t, err, name)
		assert.Equal(t, ref, s, name)
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.force"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
