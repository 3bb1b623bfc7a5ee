// Copyright 2024 The go-mdhash Authors
// This file is part of go-mdhash.
//
// go-mdhash is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-mdhash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-mdhash. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	var out bytes.Buffer
	app.Writer = &out
	err := app.Run([]string{"mdsum", "--algorithm", "sha256", path})
	require.NoError(t, err)
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad  "+path+"\n",
		out.String())
}

func TestDigestUnknownAlgorithm(t *testing.T) {
	err := app.Run([]string{"mdsum", "--algorithm", "sha3", "whatever"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown algorithm")
}

func TestDigestMissingFile(t *testing.T) {
	err := app.Run([]string{"mdsum", filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}
