// Copyright 2024 The go-mdhash Authors
// This file is part of the go-mdhash library.
//
// The go-mdhash library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-mdhash library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-mdhash library. If not, see <http://www.gnu.org/licenses/>.

package sha512

import (
	stdsha512 "crypto/sha512"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// FIPS 180-4 example vectors.
var golden512 = []struct {
	out string
	in  string
}{
	{
		"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		"",
	},
	{
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		"abc",
	},
	{
		"8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
			"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
		"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
	},
}

var golden384 = []struct {
	out string
	in  string
}{
	{
		"38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da" +
			"274edebfe76f65fbd51ad2f14898b95b",
		"",
	},
	{
		"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed" +
			"8086072ba1e7cc2358baeca134c825a7",
		"abc",
	},
}

func TestGolden(t *testing.T) {
	for _, g := range golden512 {
		sum := Sum512([]byte(g.in))
		require.Equal(t, g.out, hex.EncodeToString(sum[:]), "Sum512(%q)", g.in)

		h := New()
		io.WriteString(h, g.in[:len(g.in)/2])
		io.WriteString(h, g.in[len(g.in)/2:])
		require.Equal(t, g.out, hex.EncodeToString(h.Sum(nil)), "split write of %q", g.in)
	}
	for _, g := range golden384 {
		sum := Sum384([]byte(g.in))
		require.Equal(t, g.out, hex.EncodeToString(sum[:]), "Sum384(%q)", g.in)
	}
}

func TestBlockBoundaries(t *testing.T) {
	// 128-byte blocks with a 16-byte counter reservation: lengths around
	// k*128 cross the extra-padding-block branch.
	for k := 1; k <= 4; k++ {
		for _, n := range []int{k*BlockSize - 1, k * BlockSize, k*BlockSize + 1, k*BlockSize - 17, k*BlockSize - 16, k*BlockSize - 15} {
			in := []byte(strings.Repeat("m", n))
			want := stdsha512.Sum512(in)
			require.Equal(t, want, Sum512(in), "length %d", n)
		}
	}
}

func TestAgainstStdlibChunked(t *testing.T) {
	msg := make([]byte, 8192)
	for i := range msg {
		msg[i] = byte(i * 19)
	}
	for _, chunk := range []int{1, 13, 127, 128, 129, 1023} {
		h := New()
		ref := stdsha512.New()
		for off := 0; off < len(msg); off += chunk {
			end := off + chunk
			if end > len(msg) {
				end = len(msg)
			}
			h.Write(msg[off:end])
			ref.Write(msg[off:end])
		}
		require.Equal(t, ref.Sum(nil), h.Sum(nil), "chunk size %d", chunk)
	}
}

func TestSize384(t *testing.T) {
	h := New384()
	require.Equal(t, Size384, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())
	require.Len(t, h.Sum(nil), Size384)
}
