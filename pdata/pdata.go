/*
 * pdata.go, part of gopull.
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

package pdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ErrMalformed is wrapped by the errors produced when reading an ill-formed file, or when
// trying to write data that can't be represented in the format.
var ErrMalformed = errors.New("malformed pdata")

//Write!

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//compressor returns a WriteCloser that compresses what is written to w, depending
//on the extension of name.
func compressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return nopWriteCloser{w}, nil
	case ".gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	default:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

// WriteFile writes meta and arrays to the file name. The compression is chosen from the
// file extension (see the package documentation).
func WriteFile(name string, meta map[string]string, arrays map[string]Array) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return &Error{message: err.Error(), filename: name, deco: []string{"WriteFile"}, cause: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{message: cerr.Error(), filename: name, deco: []string{"WriteFile"}, cause: cerr}
		}
	}()
	h, err := compressor(name, f)
	if err != nil {
		return &Error{message: "can't set up compression " + err.Error(), filename: name, deco: []string{"WriteFile"}, cause: err}
	}
	if err = Write(h, meta, arrays); err != nil {
		h.Close()
		return errDecorate(err, name, "WriteFile")
	}
	if err = h.Close(); err != nil {
		return &Error{message: err.Error(), filename: name, deco: []string{"WriteFile"}, cause: err}
	}
	return nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Write writes the header and arrays to w, uncompressed.
func Write(w io.Writer, meta map[string]string, arrays map[string]Array) error {
	b := bufio.NewWriter(w)
	for _, k := range sortedKeys(meta) {
		v := meta[k]
		if k == "" || strings.ContainsAny(k, "=\n") || strings.Contains(v, "\n") || strings.HasPrefix(k, "**") {
			return &Error{message: fmt.Sprintf("invalid header entry %q=%q", k, v), deco: []string{"Write"}, cause: ErrMalformed}
		}
		fmt.Fprintf(b, "%s=%s\n", k, v)
	}
	fmt.Fprintf(b, "** %d\n", len(arrays))
	var buf []byte
	for _, name := range sortedKeys(arrays) {
		A := arrays[name]
		if name == "" || strings.ContainsAny(name, " \t\n") {
			return &Error{message: fmt.Sprintf("invalid array name %q", name), deco: []string{"Write"}, cause: ErrMalformed}
		}
		if err := A.Check(); err != nil {
			return &Error{message: fmt.Sprintf("array %s: %s", name, err.Error()), deco: []string{"Write"}, cause: ErrMalformed}
		}
		b.WriteString("> " + name)
		for _, d := range A.Dims {
			b.WriteString(" " + strconv.Itoa(d))
		}
		b.WriteByte('\n')
		rows, cols := 1, A.Dims[0]
		if len(A.Dims) == 2 {
			rows, cols = A.Dims[0], A.Dims[1]
		}
		for i := 0; i < rows; i++ {
			buf = buf[:0]
			for j, v := range A.Data[i*cols : (i+1)*cols] {
				if j > 0 {
					buf = append(buf, ' ')
				}
				buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
			}
			buf = append(buf, '\n')
			b.Write(buf)
		}
		b.WriteString("*\n")
	}
	if err := b.Flush(); err != nil {
		return &Error{message: err.Error(), deco: []string{"Write"}, cause: err}
	}
	return nil
}

//Read!

//zstd.Decoder doesn't implement io.ReadCloser :-(
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return io.NopCloser(r), nil
	case ".gz":
		return gzip.NewReader(r)
	default:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdCloser{d}, nil
	}
}

// ReadFile reads the file name, and returns its header and arrays.
func ReadFile(name string) (map[string]string, map[string]Array, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, &Error{message: err.Error(), filename: name, deco: []string{"ReadFile"}, cause: err}
	}
	defer f.Close()
	h, err := decompressor(name, bufio.NewReader(f))
	if err != nil {
		return nil, nil, &Error{message: "can't read header " + err.Error(), filename: name, deco: []string{"ReadFile"}, cause: ErrMalformed}
	}
	defer h.Close()
	meta, arrays, err := Read(h)
	if err != nil {
		return nil, nil, errDecorate(err, name, "ReadFile")
	}
	return meta, arrays, nil
}

// Read reads an uncompressed pdata stream from r.
func Read(r io.Reader) (map[string]string, map[string]Array, error) {
	h := bufio.NewReader(r)
	meta := make(map[string]string)
	var narrays int
	for {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, malformed("can't read header: "+err.Error(), "Read")
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) != 2 {
				return nil, nil, malformed(fmt.Sprintf("can't read number of arrays from '%s'", str), "Read")
			}
			narrays, err = strconv.Atoi(fields[1])
			if err != nil || narrays < 0 {
				return nil, nil, malformed(fmt.Sprintf("can't read number of arrays from '%s'", str), "Read")
			}
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok || k == "" {
			return nil, nil, malformed(fmt.Sprintf("malformed header line '%s'", str), "Read")
		}
		meta[k] = v
	}
	arrays := make(map[string]Array, narrays)
	for i := 0; i < narrays; i++ {
		name, A, err := readArray(h)
		if err != nil {
			return nil, nil, errDecorate(err, "", "Read")
		}
		if _, ok := arrays[name]; ok {
			return nil, nil, malformed("repeated array "+name, "Read")
		}
		arrays[name] = A
	}
	return meta, arrays, nil
}

func readLine(h *bufio.Reader) (string, error) {
	str, err := h.ReadString('\n')
	if err != nil && !(err == io.EOF && str != "") {
		return "", err
	}
	return strings.TrimSuffix(str, "\n"), nil
}

func readArray(h *bufio.Reader) (string, Array, error) {
	var A Array
	str, err := readLine(h)
	if err != nil {
		return "", A, malformed("can't read array start: "+err.Error(), "readArray")
	}
	fields := strings.Fields(str)
	if len(fields) < 3 || len(fields) > 4 || fields[0] != ">" {
		return "", A, malformed(fmt.Sprintf("expected array start, got '%s'", str), "readArray")
	}
	name := fields[1]
	for _, v := range fields[2:] {
		d, err := strconv.Atoi(v)
		if err != nil || d < 0 {
			return "", A, malformed(fmt.Sprintf("array %s: invalid dimension %q", name, v), "readArray")
		}
		A.Dims = append(A.Dims, d)
	}
	rows, cols := 1, A.Dims[0]
	if len(A.Dims) == 2 {
		rows, cols = A.Dims[0], A.Dims[1]
	}
	A.Data = make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		str, err := readLine(h)
		if err != nil {
			return "", A, malformed(fmt.Sprintf("array %s: can't read row %d: %s", name, i, err.Error()), "readArray")
		}
		vals := strings.Fields(str)
		if len(vals) != cols {
			return "", A, malformed(fmt.Sprintf("array %s: row %d has %d elements, expected %d", name, i, len(vals), cols), "readArray")
		}
		for _, v := range vals {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return "", A, malformed(fmt.Sprintf("array %s: can't parse %q", name, v), "readArray")
			}
			A.Data = append(A.Data, f)
		}
	}
	str, err = readLine(h)
	if err != nil || strings.TrimSpace(str) != "*" {
		return "", A, malformed(fmt.Sprintf("array %s: missing termination mark", name), "readArray")
	}
	return name, A, nil
}

//Errors

// Error is the general structure for pdata errors.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	cause    error
}

func malformed(message, caller string) *Error {
	return &Error{message: message, deco: []string{caller}, cause: ErrMalformed}
}

//errDecorate adds the caller, and the file name if the error didn't have one.
//errors not produced by this package are returned untouched.
func errDecorate(err error, filename, caller string) error {
	E, ok := err.(*Error)
	if !ok {
		return err
	}
	if E.filename == "" {
		E.filename = filename
	}
	E.deco = append(E.deco, caller)
	return E
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("pdata error: %s", err.message)
	}
	return fmt.Sprintf("pdata file %s error: %s", err.filename, err.message)
}

// Decorate Adds new information to the error
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file to which the error was associated
func (err *Error) FileName() string { return err.filename }

// Critical returns true, all pdata errors are critical.
func (err *Error) Critical() bool { return true }

func (err *Error) Unwrap() error { return err.cause }
