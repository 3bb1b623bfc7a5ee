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

// Package sha512 implements the SHA-512 and SHA-384 hash algorithms as
// defined in FIPS 180-4, on top of the mdx engine. These use 128-byte
// blocks and reserve 16 bytes for the length counter; the engine fills the
// low 8 counter bytes and leaves the rest zero, which is exact for any
// input shorter than 2^64 bytes.
package sha512

import (
	"hash"

	"github.com/ethereum/go-mdhash/mdx"
)

const (
	// Size is the size of a SHA-512 checksum in bytes.
	Size = 64
	// Size384 is the size of a SHA-384 checksum in bytes.
	Size384 = 48
	// BlockSize is the block size of SHA-512 and SHA-384 in bytes.
	BlockSize = 128
)

var init512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var init384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

type compressor struct {
	is384 bool
}

func (c compressor) Layout() mdx.Layout {
	out := Size
	if c.is384 {
		out = Size384
	}
	return mdx.Layout{
		BlockBytes:  BlockSize,
		OutputBytes: out,
		CtrBytes:    16,
		StateWords:  8,
		BitOrder:    mdx.Big,
		ByteOrder:   mdx.Big,
	}
}

func (c compressor) Init(s []uint64) {
	if c.is384 {
		copy(s, init384[:])
	} else {
		copy(s, init512[:])
	}
}

func (compressor) Compress(s []uint64, blocks []byte, n int) {
	blockGeneric(s, blocks[:n*BlockSize])
}

// New returns a new hash.Hash computing the SHA-512 checksum.
func New() hash.Hash {
	return mdx.New[uint64](compressor{})
}

// New384 returns a new hash.Hash computing the SHA-384 checksum.
func New384() hash.Hash {
	return mdx.New[uint64](compressor{is384: true})
}

// Sum512 returns the SHA-512 checksum of data.
func Sum512(data []byte) [Size]byte {
	h := mdx.New[uint64](compressor{})
	h.Update(data)
	var out [Size]byte
	h.Final(out[:])
	return out
}

// Sum384 returns the SHA-384 checksum of data.
func Sum384(data []byte) [Size384]byte {
	h := mdx.New[uint64](compressor{is384: true})
	h.Update(data)
	var out [Size384]byte
	h.Final(out[:])
	return out
}
