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

// Package mdx implements the Merkle-Damgard construction: the streaming
// machinery that turns a fixed-size block compression function into a hash
// over arbitrary-length input. The per-algorithm compression functions are
// plugged in through the Compressor interface; the engine owns buffering,
// padding and length-counter placement, which must be bit-exact for the
// resulting digests to match the standardized algorithms.
package mdx

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Word is the machine word the compression function operates on. MD4, MD5,
// SHA-1, SHA-256 and RIPEMD-160 use uint32; SHA-384 and SHA-512 use uint64.
type Word interface {
	~uint32 | ~uint64
}

// Endian selects bit or byte significance within the padding layout.
type Endian int

const (
	Little Endian = iota
	Big
)

// Layout carries the fixed per-algorithm constants of the construction.
// These are set at construction time and never change at runtime.
type Layout struct {
	BlockBytes  int // compression function input granularity, power of two >= 64
	OutputBytes int // final digest length, >= 16
	CtrBytes    int // space reserved for the length counter, power of two, 8 <= CtrBytes < BlockBytes
	StateWords  int // number of chaining words in the digest state

	BitOrder  Endian // Big: padding marker is 0x80; Little: 0x01
	ByteOrder Endian // serialization of the counter and the digest words
}

func (l Layout) check(wordBytes int) error {
	switch {
	case l.BlockBytes < 64 || bits.OnesCount(uint(l.BlockBytes)) != 1:
		return fmt.Errorf("mdx: invalid block size %d", l.BlockBytes)
	case l.OutputBytes < 16:
		return fmt.Errorf("mdx: invalid output size %d", l.OutputBytes)
	case l.CtrBytes < 8 || l.CtrBytes >= l.BlockBytes || bits.OnesCount(uint(l.CtrBytes)) != 1:
		return fmt.Errorf("mdx: invalid counter size %d", l.CtrBytes)
	case l.StateWords*wordBytes < l.OutputBytes:
		return fmt.Errorf("mdx: state of %d words cannot produce %d output bytes", l.StateWords, l.OutputBytes)
	}
	return nil
}

// Compressor is the compression capability consumed by the engine. Init sets
// the algorithm's initial chaining values; Compress consumes exactly
// n*BlockBytes bytes of blocks and mixes them into state. Implementations
// must be pure with respect to state: no retained data across calls, so that
// independent Hash instances sharing one Compressor never interfere.
type Compressor[W Word] interface {
	Layout() Layout
	Init(state []W)
	Compress(state []W, blocks []byte, n int)
}

// Hash is an incremental Merkle-Damgard hash over a pluggable compression
// function. The zero value is not usable; construct with New. Instances are
// not safe for concurrent use; distinct instances are fully independent.
type Hash[W Word] struct {
	comp  Compressor[W]
	lay   Layout
	state []W
	buf   alignmentBuffer
	count uint64 // total input bytes since last Clear, wraps mod 2^64
}

// New constructs a hash around the given compression capability. Layout
// violations are integration errors and panic.
func New[W Word](c Compressor[W]) *Hash[W] {
	lay := c.Layout()
	if err := lay.check(wordBytes[W]()); err != nil {
		panic(err.Error())
	}
	h := &Hash[W]{comp: c, lay: lay, state: make([]W, lay.StateWords)}
	h.buf.init(lay.BlockBytes)
	h.Clear()
	return h
}

// Update absorbs p into the hash state. It may be called any number of
// times with slices of any length, including empty; digests are independent
// of how the input is chunked across calls.
func (h *Hash[W]) Update(p []byte) {
	// The counter tracks total logical input, not bytes compressed.
	h.count += uint64(len(p))

	for len(p) > 0 {
		if !h.buf.empty() {
			n := h.buf.fillFrom(p)
			p = p[n:]
			if h.buf.full() {
				h.comp.Compress(h.state, h.buf.take(), 1)
			}
			continue
		}

		// In alignment: compress whole blocks straight from the input
		// without copying through the buffer.
		if aligned, blocks := h.buf.splitAligned(p); blocks > 0 {
			h.comp.Compress(h.state, aligned, blocks)
			p = p[len(aligned):]
		}
		if len(p) > 0 {
			h.buf.push(p)
			p = nil
		}
	}
}

// Final writes the digest to out and resets the instance for a new message.
// out must be at least OutputBytes long; a shorter buffer is an integration
// error and panics before anything is written.
func (h *Hash[W]) Final(out []byte) {
	if len(out) < h.lay.OutputBytes {
		panic(fmt.Sprintf("mdx: output buffer of %d bytes, need %d", len(out), h.lay.OutputBytes))
	}
	h.appendPaddingBit()
	h.appendCounterAndFinalize()
	h.copyOutput(out)
	h.Clear()
}

// Clear discards all in-progress state: chaining values back to the
// algorithm's initial constants, buffer emptied, byte counter zeroed.
func (h *Hash[W]) Clear() {
	h.comp.Init(h.state)
	h.buf.reset()
	h.count = 0
}

func (h *Hash[W]) appendPaddingBit() {
	// The update loop compresses any completed block immediately, so the
	// buffer always has room for the marker here.
	if h.buf.full() {
		panic("mdx: block buffer full before padding")
	}
	if h.lay.BitOrder == Big {
		h.buf.push([]byte{0x80})
	} else {
		h.buf.push([]byte{0x01})
	}
}

func (h *Hash[W]) appendCounterAndFinalize() {
	// If the final block has no room left for the counter, flush an extra
	// block holding marker and zero padding only. The counter must land in
	// the very last block.
	if h.buf.unfilled() < h.lay.CtrBytes {
		h.buf.zeroFill()
		h.comp.Compress(h.state, h.buf.take(), 1)
	}

	h.buf.zeroFill()

	// The length field is always 8 bytes wide, regardless of CtrBytes; with
	// wider counters (SHA-384/512) the leading counter bytes stay zero.
	// Overflow of the bit count wraps, per the standards.
	bitCount := h.count * 8
	tail := h.buf.tail(8)
	if h.lay.ByteOrder == Big {
		binary.BigEndian.PutUint64(tail, bitCount)
	} else {
		binary.LittleEndian.PutUint64(tail, bitCount)
	}

	h.comp.Compress(h.state, h.buf.take(), 1)
}

func (h *Hash[W]) copyOutput(out []byte) {
	wb := wordBytes[W]()
	var tmp [8]byte
	off := 0
	for _, w := range h.state {
		if off >= h.lay.OutputBytes {
			break
		}
		if h.lay.ByteOrder == Big {
			if wb == 4 {
				binary.BigEndian.PutUint32(tmp[:4], uint32(w))
			} else {
				binary.BigEndian.PutUint64(tmp[:], uint64(w))
			}
		} else {
			if wb == 4 {
				binary.LittleEndian.PutUint32(tmp[:4], uint32(w))
			} else {
				binary.LittleEndian.PutUint64(tmp[:], uint64(w))
			}
		}
		off += copy(out[off:h.lay.OutputBytes], tmp[:wb])
	}
}

// Clone returns an independent copy carrying the same in-progress state.
func (h *Hash[W]) Clone() *Hash[W] {
	d := &Hash[W]{comp: h.comp, lay: h.lay, count: h.count}
	d.state = append([]W(nil), h.state...)
	d.buf = h.buf.clone()
	return d
}

// The hash.Hash interface, so engines drop into everything that consumes
// the standard library contract.

// Write absorbs p; it never fails.
func (h *Hash[W]) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Sum appends the digest of the data written so far to in and returns the
// result. It finalizes a clone, so the caller can keep writing and summing.
func (h *Hash[W]) Sum(in []byte) []byte {
	d := h.Clone()
	out := make([]byte, h.lay.OutputBytes)
	d.Final(out)
	return append(in, out...)
}

// Reset is Clear under the standard library's name.
func (h *Hash[W]) Reset() { h.Clear() }

// Size returns the digest length in bytes.
func (h *Hash[W]) Size() int { return h.lay.OutputBytes }

// BlockSize returns the compression function's block length in bytes.
func (h *Hash[W]) BlockSize() int { return h.lay.BlockBytes }

func wordBytes[W Word]() int {
	return bits.OnesCount64(uint64(^W(0))) / 8
}
