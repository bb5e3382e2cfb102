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

//Package pdata implements the pulling data format, a simple format to store a set of named
//arrays of float64 (scalars, vectors and matrices) plus some metadata. Like stf, it aims to be very
//easy to read and write from other languages, so downstream estimators don't need anything
//but a zstd decompressor.

/******************** Format Specification   ***************************************************

A pdata file is compressed with z-standard (zstd), unless its name ends in .gz, in which case
it is compressed with gzip, or in .txt, in which case it is not compressed at all.

A pdata file may only contain ASCII symbols.

The file starts with a "header": zero or more lines, each of them a pair key=value. Neither
the key nor the value can contain newlines, and the key can't contain '='. The header ends
with a line that starts with the characters "**" followed by one or more spaces, and the number
of arrays in the file.

Each array starts with a line with the character ">", one or more spaces, the name of the array
(which can't contain whitespace) and its dimensions, separated by spaces. A scalar is stored as
an array of dimension 1. After that line, a 1-dimensional array takes exactly one line, with
all its elements separated by single spaces. A 2-dimensional array takes one line per row.
Each array ends with a line containing only the character "*".

Numbers are written in the shortest representation that reads back to the same float64.

Arrays are written in lexicographic order of their names, so the same data always produces
the same file.

***************************************************************************************************/

package pdata
