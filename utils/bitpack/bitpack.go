// Package bitpack implements the fixed bit width packing of bounded integers
// used by the listed (index based) encodings of NTRU polynomials.
//
// Each value in [0, modulus) is written on BitsPerValue(modulus) bits,
// least significant bit first, into consecutive bytes. A packed sequence
// always starts on a fresh byte and its last byte is zero padded.
package bitpack

import (
	"fmt"
	"math/bits"

	"github.com/Pro7ech/ntru/utils/buffer"
)

// BitsPerValue returns the number of bits used to pack a value in [0, modulus).
func BitsPerValue(modulus int) int {
	return bits.Len(uint(modulus - 1))
}

// PackedLength returns the number of bytes needed to pack count values in [0, modulus).
func PackedLength(count, modulus int) int {
	return (count*BitsPerValue(modulus) + 7) >> 3
}

// Encode packs values into a newly allocated slice of PackedLength(len(values), modulus) bytes.
// Returns an error if modulus < 2 or if a value is not in [0, modulus).
func Encode(values []int, modulus int) (p []byte, err error) {

	if modulus < 2 {
		return nil, fmt.Errorf("invalid modulus: %d < 2", modulus)
	}

	p = make([]byte, PackedLength(len(values), modulus))

	width := BitsPerValue(modulus)

	var byteIndex int
	var bitIndex uint

	for i, v := range values {

		if v < 0 || v >= modulus {
			return nil, fmt.Errorf("invalid value at position %d: %d not in [0, %d)", i, v, modulus)
		}

		for j := 0; j < width; j++ {
			p[byteIndex] |= byte((v>>j)&1) << bitIndex
			if bitIndex++; bitIndex == 8 {
				bitIndex = 0
				byteIndex++
			}
		}
	}

	return
}

// Decode unpacks len(values) values in [0, modulus) from p into values.
// Bytes of p beyond PackedLength(len(values), modulus) are ignored.
func Decode(p []byte, values []int, modulus int) (err error) {

	if modulus < 2 {
		return fmt.Errorf("invalid modulus: %d < 2", modulus)
	}

	if size := PackedLength(len(values), modulus); len(p) < size {
		return fmt.Errorf("invalid input: len(p)=%d < %d", len(p), size)
	}

	width := BitsPerValue(modulus)

	var byteIndex int
	var bitIndex uint

	for i := range values {

		var v int
		for j := 0; j < width; j++ {
			v |= int((p[byteIndex]>>bitIndex)&1) << j
			if bitIndex++; bitIndex == 8 {
				bitIndex = 0
				byteIndex++
			}
		}

		values[i] = v
	}

	return
}

// Pack packs values on w and returns the number of bytes written,
// that is PackedLength(len(values), modulus).
func Pack(w buffer.Writer, values []int, modulus int) (n int64, err error) {

	var p []byte
	if p, err = Encode(values, modulus); err != nil {
		return 0, fmt.Errorf("bitpack.Encode: %w", err)
	}

	if n, err = buffer.Write(w, p); err != nil {
		return n, fmt.Errorf("buffer.Write: %w", err)
	}

	return
}

// Unpack reads PackedLength(len(values), modulus) bytes from r and
// unpacks them into values. It returns the number of bytes read.
func Unpack(r buffer.Reader, values []int, modulus int) (n int64, err error) {

	p := make([]byte, PackedLength(len(values), modulus))

	if n, err = buffer.Read(r, p); err != nil {
		return n, fmt.Errorf("buffer.Read: %w", err)
	}

	if err = Decode(p, values, modulus); err != nil {
		return n, fmt.Errorf("bitpack.Decode: %w", err)
	}

	return
}
