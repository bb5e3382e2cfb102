/*
 * forcefile.go, part of gopull.
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

//Package forcefile reads the force output of a steered MD pulling run, as written by the
//usual NAMD TCL-forces scripts: one line per step, with the time (ps), the restrained
//coordinate (A) and the force, separated by whitespace. Everything after the second column is
//optional. Blank lines and lines starting with '#' are ignored.
//
//Files ending in .gz are read through a gzip decompressor, and files ending in .zst or .zstd
//through a z-standard one. Anything else is read as plain text.
package forcefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrMalformed is wrapped by all the errors caused by unparsable lines.
var ErrMalformed = errors.New("malformed force file")

// Series contains the columns of a force file.
type Series struct {
	Times  []float64 //ps
	Coords []float64 //A
	Forces []float64 //nil unless every line has a third column
}

// Len returns the number of samples in the series.
func (S *Series) Len() int {
	return len(S.Times)
}

//zstd.Decoder doesn't implement io.ReadCloser, because its Close returns nothing.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//decompressor returns a function that puts a decompressor
//in front of a reader, depending on the file extension. It returns nil if
//the file is not compressed.
func decompressor(name string) func(io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) }
	case ".zst", ".zstd":
		return func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zstdCloser{d}, nil
		}
	}
	return nil
}

// Read opens the file name, decompressing it if needed, and parses it.
func Read(name string) (*Series, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	if dec := decompressor(name); dec != nil {
		rc, err := dec(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: can't decompress: %v", ErrMalformed, name, err)
		}
		defer rc.Close()
		r = rc
	}
	return Parse(r, name)
}

// Parse reads a force series from r. name is only used for the error messages.
func Parse(r io.Reader, name string) (*Series, error) {
	S := new(Series)
	forces := true
	scanner := bufio.NewScanner(r)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %s line %d: expected at least 2 columns, got %d", ErrMalformed, name, lineno, len(fields))
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: can't parse time %q", ErrMalformed, name, lineno, fields[0])
		}
		z, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: can't parse coordinate %q", ErrMalformed, name, lineno, fields[1])
		}
		S.Times = append(S.Times, t)
		S.Coords = append(S.Coords, z)
		//The force is not needed for the work, so we just stop collecting them if one is missing.
		if !forces {
			continue
		}
		if len(fields) < 3 {
			forces = false
			S.Forces = nil
			continue
		}
		fo, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: can't parse force %q", ErrMalformed, name, lineno, fields[2])
		}
		S.Forces = append(S.Forces, fo)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}
	return S, nil
}
