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

// Package ripemd160 implements the RIPEMD-160 hash algorithm, on top of
// the mdx engine. RIPEMD-160 is deprecated for new applications but still
// required by legacy systems, Bitcoin addresses among them.
package ripemd160

import (
	"hash"

	"github.com/ethereum/go-mdhash/mdx"
)

const (
	// Size is the size of a RIPEMD-160 checksum in bytes.
	Size = 20
	// BlockSize is the block size of RIPEMD-160 in bytes.
	BlockSize = 64
)

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

type compressor struct{}

func (compressor) Layout() mdx.Layout {
	return mdx.Layout{
		BlockBytes:  BlockSize,
		OutputBytes: Size,
		CtrBytes:    8,
		StateWords:  5,
		BitOrder:    mdx.Big,
		ByteOrder:   mdx.Little,
	}
}

func (compressor) Init(s []uint32) {
	s[0], s[1], s[2], s[3], s[4] = init0, init1, init2, init3, init4
}

func (compressor) Compress(s []uint32, blocks []byte, n int) {
	blockGeneric(s, blocks[:n*BlockSize])
}

// New returns a new hash.Hash computing the RIPEMD-160 checksum.
func New() hash.Hash {
	return mdx.New[uint32](compressor{})
}

// Sum returns the RIPEMD-160 checksum of data.
func Sum(data []byte) [Size]byte {
	h := mdx.New[uint32](compressor{})
	h.Update(data)
	var out [Size]byte
	h.Final(out[:])
	return out
}
