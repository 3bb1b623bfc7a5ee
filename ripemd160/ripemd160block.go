// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// RIPEMD-160 block step. Two parallel lines of five 16-step rounds, per
// the RIPEMD-160 reference document (Dobbertin, Bosselaers, Preneel 1996).

package ripemd160

import (
	"encoding/binary"
	"math/bits"
)

// Message word selection per round, left and right lines.
var zl = [80]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var zr = [80]int{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// Rotation amounts per step, left and right lines.
var sl = [80]int{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var sr = [80]int{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

func blockGeneric(s []uint32, p []byte) {
	for len(p) >= BlockSize {
		var x [16]uint32
		for i := range x {
			x[i] = binary.LittleEndian.Uint32(p[i*4:])
		}

		a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
		aa, bb, cc, dd, ee := a, b, c, d, e

		var t uint32
		j := 0

		// Left line.
		for ; j < 16; j++ {
			t = bits.RotateLeft32(a+(b^c^d)+x[zl[j]], sl[j]) + e
			a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t
		}
		for ; j < 32; j++ {
			t = bits.RotateLeft32(a+(b&c|^b&d)+x[zl[j]]+0x5A827999, sl[j]) + e
			a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t
		}
		for ; j < 48; j++ {
			t = bits.RotateLeft32(a+((b|^c)^d)+x[zl[j]]+0x6ED9EBA1, sl[j]) + e
			a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t
		}
		for ; j < 64; j++ {
			t = bits.RotateLeft32(a+(b&d|c&^d)+x[zl[j]]+0x8F1BBCDC, sl[j]) + e
			a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t
		}
		for ; j < 80; j++ {
			t = bits.RotateLeft32(a+(b^(c|^d))+x[zl[j]]+0xA953FD4E, sl[j]) + e
			a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t
		}

		// Right line, function order reversed.
		j = 0
		for ; j < 16; j++ {
			t = bits.RotateLeft32(aa+(bb^(cc|^dd))+x[zr[j]]+0x50A28BE6, sr[j]) + ee
			aa, ee, dd, cc, bb = ee, dd, bits.RotateLeft32(cc, 10), bb, t
		}
		for ; j < 32; j++ {
			t = bits.RotateLeft32(aa+(bb&dd|cc&^dd)+x[zr[j]]+0x5C4DD124, sr[j]) + ee
			aa, ee, dd, cc, bb = ee, dd, bits.RotateLeft32(cc, 10), bb, t
		}
		for ; j < 48; j++ {
			t = bits.RotateLeft32(aa+((bb|^cc)^dd)+x[zr[j]]+0x6D703EF3, sr[j]) + ee
			aa, ee, dd, cc, bb = ee, dd, bits.RotateLeft32(cc, 10), bb, t
		}
		for ; j < 64; j++ {
			t = bits.RotateLeft32(aa+(bb&cc|^bb&dd)+x[zr[j]]+0x7A6D76E9, sr[j]) + ee
			aa, ee, dd, cc, bb = ee, dd, bits.RotateLeft32(cc, 10), bb, t
		}
		for ; j < 80; j++ {
			t = bits.RotateLeft32(aa+(bb^cc^dd)+x[zr[j]], sr[j]) + ee
			aa, ee, dd, cc, bb = ee, dd, bits.RotateLeft32(cc, 10), bb, t
		}

		// Combine the two lines into the chaining state.
		t = s[1] + c + dd
		s[1] = s[2] + d + ee
		s[2] = s[3] + e + aa
		s[3] = s[4] + a + bb
		s[4] = s[0] + b + cc
		s[0] = t

		p = p[BlockSize:]
	}
}
