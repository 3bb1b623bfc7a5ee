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

package sha256

import (
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// FIPS 180-4 example vectors.
var golden256 = []struct {
	out string
	in  string
}{
	{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ""},
	{"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", "abc"},
	{"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"},
}

var golden224 = []struct {
	out string
	in  string
}{
	{"d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f", ""},
	{"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7", "abc"},
	{"75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"},
}

func TestGolden(t *testing.T) {
	for _, g := range golden256 {
		sum := Sum256([]byte(g.in))
		require.Equal(t, g.out, hex.EncodeToString(sum[:]), "Sum256(%q)", g.in)

		h := New()
		io.WriteString(h, g.in[:len(g.in)/2])
		io.WriteString(h, g.in[len(g.in)/2:])
		require.Equal(t, g.out, hex.EncodeToString(h.Sum(nil)), "split write of %q", g.in)
	}
	for _, g := range golden224 {
		sum := Sum224([]byte(g.in))
		require.Equal(t, g.out, hex.EncodeToString(sum[:]), "Sum224(%q)", g.in)
	}
}

func TestBlockBoundaries(t *testing.T) {
	for k := 1; k <= 4; k++ {
		for _, n := range []int{k*BlockSize - 1, k * BlockSize, k*BlockSize + 1} {
			in := []byte(strings.Repeat("m", n))
			want := stdsha256.Sum256(in)
			require.Equal(t, want, Sum256(in), "length %d", n)
		}
	}
}

func TestAgainstStdlibChunked(t *testing.T) {
	msg := make([]byte, 4096)
	for i := range msg {
		msg[i] = byte(i * 17)
	}
	for _, chunk := range []int{1, 9, 64, 65, 777} {
		h := New()
		ref := stdsha256.New()
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

func TestSize224(t *testing.T) {
	h := New224()
	require.Equal(t, Size224, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())
	require.Len(t, h.Sum(nil), Size224)
}

var sink []byte

func BenchmarkSHA256(b *testing.B) {
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
