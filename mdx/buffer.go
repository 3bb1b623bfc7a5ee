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

package mdx

// alignmentBuffer accumulates input bytes until a full compression block is
// available. It only ever exposes complete blocks; partial input stays
// buffered between calls. The backing array is allocated once at engine
// construction and reused for every block, so the hot path never allocates.
type alignmentBuffer struct {
	block []byte // fixed capacity, one compression block
	pos   int    // bytes filled in [0, len(block)]
}

func (b *alignmentBuffer) init(blockBytes int) {
	b.block = make([]byte, blockBytes)
	b.pos = 0
}

// empty reports whether the buffer holds no bytes, i.e. the input stream is
// currently block-aligned.
func (b *alignmentBuffer) empty() bool { return b.pos == 0 }

// full reports whether the buffer holds exactly one block, ready to be
// consumed by the compression function.
func (b *alignmentBuffer) full() bool { return b.pos == len(b.block) }

// unfilled returns the number of bytes still needed to complete the block.
func (b *alignmentBuffer) unfilled() int { return len(b.block) - b.pos }

// fillFrom copies as many bytes as needed from p to complete the current
// block and returns the number of bytes consumed. It never reads past p and
// never overflows the block.
func (b *alignmentBuffer) fillFrom(p []byte) int {
	n := copy(b.block[b.pos:], p)
	b.pos += n
	return n
}

// splitAligned returns the largest prefix of p whose length is a whole
// number of blocks, along with the block count. Only meaningful while the
// buffer is empty; the caller feeds the prefix straight to the compression
// function without copying through the buffer.
func (b *alignmentBuffer) splitAligned(p []byte) ([]byte, int) {
	n := len(p) &^ (len(b.block) - 1)
	return p[:n], n / len(b.block)
}

// push appends p to the buffer. Exceeding the block capacity is an
// integration error.
func (b *alignmentBuffer) push(p []byte) {
	if len(p) > b.unfilled() {
		panic("mdx: alignment buffer overflow")
	}
	b.pos += copy(b.block[b.pos:], p)
}

// zeroFill pads the unfilled remainder of the block with zero bytes. The
// zeros are padding, not input; the engine's byte counter is unaffected.
func (b *alignmentBuffer) zeroFill() {
	tail := b.block[b.pos:]
	for i := range tail {
		tail[i] = 0
	}
	b.pos = len(b.block)
}

// tail returns a mutable view onto the last n bytes of the completed block,
// used to overwrite trailing zero padding with the length counter.
func (b *alignmentBuffer) tail(n int) []byte {
	if !b.full() {
		panic("mdx: tail of incomplete block")
	}
	return b.block[len(b.block)-n:]
}

// take returns the completed block and resets the buffer to empty. The
// returned slice aliases the internal array and is only valid until the next
// mutation; callers compress it immediately.
func (b *alignmentBuffer) take() []byte {
	if !b.full() {
		panic("mdx: consuming incomplete block")
	}
	b.pos = 0
	return b.block
}

func (b *alignmentBuffer) reset() { b.pos = 0 }

func (b *alignmentBuffer) clone() alignmentBuffer {
	return alignmentBuffer{block: append([]byte(nil), b.block...), pos: b.pos}
}
