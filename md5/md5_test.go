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

package md5

import (
	stdmd5 "crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 1321 appendix A.5.
var golden = []struct {
	out string
	in  string
}{
	{"d41d8cd98f00b204e9800998ecf8427e", ""},
	{"0cc175b9c0f1b6a831c399e269772661", "a"},
	{"900150983cd24fb0d6963f7d28e17f72", "abc"},
	{"f96b697d7cb7938d525a2f31aaf161d0", "message digest"},
	{"c3fcd3d76192e4007dfb496cca67e13b", "abcdefghijklmnopqrstuvwxyz"},
	{"d174ab98d277d9f5a5611c2c9f419d9f", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"},
	{"57edf4a22be3c955ac49da2e2107b67a", "12345678901234567890123456789012345678901234567890123456789012345678901234567890"},
}

func TestGolden(t *testing.T) {
	for _, g := range golden {
		sum := Sum([]byte(g.in))
		require.Equal(t, g.out, hex.EncodeToString(sum[:]), "Sum(%q)", g.in)

		h := New()
		io.WriteString(h, g.in[:len(g.in)/2])
		io.WriteString(h, g.in[len(g.in)/2:])
		require.Equal(t, g.out, hex.EncodeToString(h.Sum(nil)), "split write of %q", g.in)
	}
}

func TestBlockBoundaries(t *testing.T) {
	for k := 1; k <= 4; k++ {
		for _, n := range []int{k*BlockSize - 1, k * BlockSize, k*BlockSize + 1} {
			in := []byte(strings.Repeat("m", n))
			want := stdmd5.Sum(in)
			require.Equal(t, want, Sum(in), "length %d", n)
		}
	}
}

func TestAgainstStdlibChunked(t *testing.T) {
	msg := make([]byte, 4096)
	for i := range msg {
		msg[i] = byte(i * 7)
	}
	for _, chunk := range []int{1, 3, 16, 63, 64, 65, 100, 1000} {
		h := New()
		ref := stdmd5.New()
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

func TestSizeAndBlockSize(t *testing.T) {
	h := New()
	require.Equal(t, Size, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())
}

func ExampleSum() {
	sum := Sum([]byte("The quick brown fox jumps over the lazy dog"))
	fmt.Printf("%x\n", sum)
	// Output: 9e107d9d372bb6826bd81d3542a419d6
}

var sink []byte

func BenchmarkMD5(b *testing.B) {
	b.ReportAllocs()
	buf := make([]byte, 8192)
	b.SetBytes(int64(len(buf)))

	h := New()
	for i := 0; i < b.N; i++ {
		h.Reset()
		h.Write(buf)
		sink = h.Sum(sink[:0])
	}
	if sink == nil {
		b.Fatal("benchmark did not run")
	}
}
