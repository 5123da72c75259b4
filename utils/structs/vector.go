package structs

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/Pro7ech/ntru/utils/buffer"
	"golang.org/x/exp/constraints"
)

// MaxVectorSize is the largest number of components accepted when decoding a [Vector].
const MaxVectorSize = 1 << 30

const readChunkSize = 1 << 13

// Vector is a struct wrapping a slice of integers of type T.
// Each component is serialized on 8 bytes, T must therefore fit in an uint64
// (signed values are stored in two's complement).
type Vector[T constraints.Integer] []T

// Size returns the size of the receiver.
func (v Vector[T]) Size() int {
	return len(v)
}

// Copy copies the operand on the receiver, up to the
// maximum available size between the two.
func (v Vector[T]) Copy(other Vector[T]) {
	copy(v, other)
}

// Clone returns a deep copy of the object.
func (v Vector[T]) Clone() (vcpy Vector[T]) {
	vcpy = make(Vector[T], len(v))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)*8
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see ntru/utils/buffer/writer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly:
//
//   - When writing multiple times to a io.Writer, it is preferable to first wrap the
//     io.Writer in a pre-allocated bufio.Writer.
//   - When writing to a pre-allocated var b []byte, it is preferable to pass
//     buffer.NewBuffer(b) as w (see ntru/utils/buffer/buffer.go).
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64(w, len(v)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice(w, []T(v)); err != nil {
			var t T
			return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", t, err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see ntru/utils/buffer/reader.go),
// it will be wrapped into a bufio.Reader.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int

		if inc, err = buffer.ReadAsUint64(r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size < 0 || size > MaxVectorSize {
			return n, fmt.Errorf("invalid vector size: %d not in [0, %d]", size, MaxVectorSize)
		}

		// The receiver grows by chunks so that the allocation never
		// exceeds the data actually read by more than one chunk.
		*v = (*v)[:0]

		for len(*v) < size {

			start := len(*v)
			end := start + min(size-start, readChunkSize)

			*v = slices.Grow(*v, end-start)[:end]

			if inc, err = buffer.ReadAsUint64Slice(r, []T((*v)[start:end])); err != nil {
				var t T
				return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", t, err)
			}

			n += inc
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal.
func (v Vector[T]) Equal(other Vector[T]) (isEqual bool) {
	return slices.Equal(v, other)
}
