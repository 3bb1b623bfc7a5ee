// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// MD4 block step, RFC 1320 section A.3.

package md4

import (
	"encoding/binary"
	"math/bits"
)

var shift1 = [4]int{3, 7, 11, 19}
var shift2 = [4]int{3, 5, 9, 13}
var shift3 = [4]int{3, 9, 11, 15}

var xIndex2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var xIndex3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

func blockGeneric(s []uint32, p []byte) {
	a, b, c, d := s[0], s[1], s[2], s[3]
	for len(p) >= BlockSize {
		var m [16]uint32
		for i := range m {
			m[i] = binary.LittleEndian.Uint32(p[i*4:])
		}

		aa, bb, cc, dd := a, b, c, d

		// Round 1.
		for i := 0; i < 16; i++ {
			f := (b & c) | (^b & d)
			a += f + m[i]
			a = bits.RotateLeft32(a, shift1[i&3])
			a, b, c, d = d, a, b, c
		}

		// Round 2.
		for i := 0; i < 16; i++ {
			g := (b & c) | (b & d) | (c & d)
			a += g + m[xIndex2[i]] + 0x5a827999
			a = bits.RotateLeft32(a, shift2[i&3])
			a, b, c, d = d, a, b, c
		}

		// Round 3.
		for i := 0; i < 16; i++ {
			h := b ^ c ^ d
			a += h + m[xIndex3[i]] + 0x6ed9eba1
			a = bits.RotateLeft32(a, shift3[i&3])
			a, b, c, d = d, a, b, c
		}

		a += aa
		b += bb
		c += cc
		d += dd

		p = p[BlockSize:]
	}
	s[0], s[1], s[2], s[3] = a, b, c, d
}
