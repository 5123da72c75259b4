package ternary

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/Pro7ech/ntru/utils/bitpack"
	"github.com/Pro7ech/ntru/utils/buffer"
)

const (
	// IndexModulus is the modulus of the packed positions: each position
	// is serialized on log2(IndexModulus) = 11 bits.
	IndexModulus = 1 << 11

	// MaxEncodableDimension is the largest dimension N for which a
	// [SparseTernaryPoly] can be serialized.
	MaxEncodableDimension = IndexModulus

	// maxEncodableCount is the largest number of positions in a list.
	maxEncodableCount = math.MaxUint16
)

// BinarySize returns the serialized size of the object in bytes.
func (p *SparseTernaryPoly) BinarySize() int {
	return 4 + bitpack.PackedLength(len(p.ones), IndexModulus) + bitpack.PackedLength(len(p.negOnes), IndexModulus)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// The encoding is the following:
//
//	[2 bytes]  number of +1 positions (big-endian)
//	[2 bytes]  number of -1 positions (big-endian)
//	[x bytes]  +1 positions, 11 bits each, least significant bit first
//	[y bytes]  -1 positions, 11 bits each, least significant bit first
//
// The dimension N is not part of the encoding.
// Returns an error if N > [MaxEncodableDimension] or if a list has more
// than 65535 positions.
//
// Unless w implements the buffer.Writer interface (see ntru/utils/buffer/writer.go),
// it will be wrapped into a bufio.Writer.
func (p *SparseTernaryPoly) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		if p.n > MaxEncodableDimension {
			return 0, fmt.Errorf("cannot WriteTo: N=%d > %d", p.n, MaxEncodableDimension)
		}

		if len(p.ones) > maxEncodableCount || len(p.negOnes) > maxEncodableCount {
			return 0, fmt.Errorf("cannot WriteTo: number of positions (%d, %d) > %d", len(p.ones), len(p.negOnes), maxEncodableCount)
		}

		var inc int64

		if inc, err = buffer.WriteAsUint16(w, len(p.ones)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint16[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint16(w, len(p.negOnes)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint16[int]: %w", err)
		}

		n += inc

		for _, list := range [][]int{p.ones, p.negOnes} {

			if inc, err = bitpack.Pack(w, list, IndexModulus); err != nil {
				return n + inc, fmt.Errorf("bitpack.Pack: %w", err)
			}

			n += inc
		}

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// The dimension of the receiver must be set beforehand, for example with
// NewSparseTernaryPoly(N, nil, nil). The decoded positions are stored in newly
// allocated slices: slices previously held by the receiver are left untouched.
// The decoded positions are not validated, see [SparseTernaryPoly.Validate].
//
// Unless r implements the buffer.Reader interface (see ntru/utils/buffer/reader.go),
// it will be wrapped into a bufio.Reader.
func (p *SparseTernaryPoly) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		if p == nil {
			return 0, fmt.Errorf("cannot ReadFrom: receiver is nil")
		}

		if p.n <= 0 {
			return 0, fmt.Errorf("cannot ReadFrom: receiver dimension is not set")
		}

		var inc int64

		var numOnes, numNegOnes int

		if inc, err = buffer.ReadAsUint16(r, &numOnes); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint16[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.ReadAsUint16(r, &numNegOnes); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint16[int]: %w", err)
		}

		n += inc

		p.ones = make([]int, numOnes)
		p.negOnes = make([]int, numNegOnes)

		for _, list := range [][]int{p.ones, p.negOnes} {

			if inc, err = bitpack.Unpack(r, list, IndexModulus); err != nil {
				return n + inc, fmt.Errorf("bitpack.Unpack: %w", err)
			}

			n += inc
		}

		return

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *SparseTernaryPoly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
// The dimension of the receiver must be set beforehand.
func (p *SparseTernaryPoly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// DecodeSparseTernaryPoly decodes a [SparseTernaryPoly] of dimension N from
// data, as produced by [SparseTernaryPoly.MarshalBinary].
// The decoded positions are not validated, see [DecodeSparseTernaryPolyChecked].
func DecodeSparseTernaryPoly(data []byte, N int) (p *SparseTernaryPoly, err error) {
	p = NewSparseTernaryPoly(N, nil, nil)
	if err = p.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return
}

// DecodeSparseTernaryPolyChecked is identical to [DecodeSparseTernaryPoly] but
// additionally returns an error wrapping [ErrMalformedEncoding] if a decoded
// position is not in [0, N) or appears more than once.
func DecodeSparseTernaryPolyChecked(data []byte, N int) (p *SparseTernaryPoly, err error) {

	if p, err = DecodeSparseTernaryPoly(data, N); err != nil {
		return
	}

	if err = p.Validate(); err != nil {
		return nil, err
	}

	return
}
