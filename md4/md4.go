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

// Package md4 implements the MD4 hash algorithm as defined in RFC 1320,
// on top of the mdx engine.
//
// MD4 is cryptographically broken and should only be used where
// compatibility with legacy systems, not security, is the goal.
package md4

import (
	"hash"

	"github.com/ethereum/go-mdhash/mdx"
)

const (
	// Size is the size of an MD4 checksum in bytes.
	Size = 16
	// BlockSize is the block size of MD4 in bytes.
	BlockSize = 64
)

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
)

type compressor struct{}

func (compressor) Layout() mdx.Layout {
	return mdx.Layout{
		BlockBytes:  BlockSize,
		OutputBytes: Size,
		CtrBytes:    8,
		StateWords:  4,
		BitOrder:    mdx.Big,
		ByteOrder:   mdx.Little,
	}
}

func (compressor) Init(s []uint32) {
	s[0], s[1], s[2], s[3] = init0, init1, init2, init3
}

func (compressor) Compress(s []uint32, blocks []byte, n int) {
	blockGeneric(s, blocks[:n*BlockSize])
}

// New returns a new hash.Hash computing the MD4 checksum.
func New() hash.Hash {
	return mdx.New[uint32](compressor{})
}

// Sum returns the MD4 checksum of data.
func Sum(data []byte) [Size]byte {
	h := mdx.New[uint32](compressor{})
	h.Update(data)
	var out [Size]byte
	h.Final(out[:])
	return out
}
