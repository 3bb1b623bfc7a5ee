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

// Package sha256 implements the SHA-256 and SHA-224 hash algorithms as
// defined in FIPS 180-4, on top of the mdx engine. SHA-224 differs only in
// its initial chaining values and truncated output.
package sha256

import (
	"hash"

	"github.com/ethereum/go-mdhash/mdx"
)

const (
	// Size is the size of a SHA-256 checksum in bytes.
	Size = 32
	// Size224 is the size of a SHA-224 checksum in bytes.
	Size224 = 28
	// BlockSize is the block size of SHA-256 and SHA-224 in bytes.
	BlockSize = 64
)

var init256 = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var init224 = [8]uint32{
	0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
	0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
}

type compressor struct {
	is224 bool
}

func (c compressor) Layout() mdx.Layout {
	out := Size
	if c.is224 {
		out = Size224
	}
	return mdx.Layout{
		BlockBytes:  BlockSize,
		OutputBytes: out,
		CtrBytes:    8,
		StateWords:  8,
		BitOrder:    mdx.Big,
		ByteOrder:   mdx.Big,
	}
}

func (c compressor) Init(s []uint32) {
	if c.is224 {
		copy(s, init224[:])
	} else {
		copy(s, init256[:])
	}
}

func (compressor) Compress(s []uint32, blocks []byte, n int) {
	blockGeneric(s, blocks[:n*BlockSize])
}

// New returns a new hash.Hash computing the SHA-256 checksum.
func New() hash.Hash {
	return mdx.New[uint32](compressor{})
}

// New224 returns a new hash.Hash computing the SHA-224 checksum.
func New224() hash.Hash {
	return mdx.New[uint32](compressor{is224: true})
}

// Sum256 returns the SHA-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	h := mdx.New[uint32](compressor{})
	h.Update(data)
	var out [Size]byte
	h.Final(out[:])
	return out
}

// Sum224 returns the SHA-224 checksum of data.
func Sum224(data []byte) [Size224]byte {
	h := mdx.New[uint32](compressor{is224: true})
	h.Update(data)
	var out [Size224]byte
	h.Final(out[:])
	return out
}
