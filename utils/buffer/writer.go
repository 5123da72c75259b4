package buffer

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// WriteAsUint64 converts c to an uint64 and writes it to w.
// User must ensure that c can be stored in an uint64.
func WriteAsUint64[T constraints.Integer](w Writer, c T) (n int64, err error) {
	return WriteUint64(w, uint64(c))
}

// WriteAsUint16 converts c to an uint16 and writes it to w.
// User must ensure that c can be stored in an uint16.
func WriteAsUint16[T constraints.Integer](w Writer, c T) (n int64, err error) {
	return WriteUint16(w, uint16(c))
}

// WriteAsUint8 converts c to an uint8 and writes it to w.
// User must ensure that c can be stored in an uint8.
func WriteAsUint8[T constraints.Integer](w Writer, c T) (n int64, err error) {
	return WriteUint8(w, uint8(c))
}

// WriteAsUint64Slice converts each element of c to an uint64 and writes them to w.
func WriteAsUint64Slice[T constraints.Integer](w Writer, c []T) (n int64, err error) {
	var inc int64
	for i := range c {
		if inc, err = WriteUint64(w, uint64(c[i])); err != nil {
			return n + inc, err
		}
		n += inc
	}
	return
}

// Write writes a slice of bytes to w.
func Write(w Writer, c []byte) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	available := w.Available()

	if available == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if available = w.Available(); available == 0 {
			return 0, fmt.Errorf("cannot Write: available buffer is zero even after flush")
		}
	}

	if len(c) <= available {
		nint, err := w.Write(c)
		return int64(nint), err
	}

	nint, err := w.Write(c[:available])
	if err != nil {
		return int64(nint), err
	}

	n += int64(nint)

	if err = w.Flush(); err != nil {
		return n, err
	}

	var inc int64
	inc, err = Write(w, c[available:])

	return n + inc, err
}

// WriteUint8 writes a byte c to w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {
	return writeFixed(w, []byte{c})
}

// WriteUint16 writes an uint16 c to w.
func WriteUint16(w Writer, c uint16) (n int64, err error) {
	var bb [2]byte
	binary.BigEndian.PutUint16(bb[:], c)
	return writeFixed(w, bb[:])
}

// WriteUint64 writes an uint64 c to w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {
	var bb [8]byte
	binary.BigEndian.PutUint64(bb[:], c)
	return writeFixed(w, bb[:])
}

// writeFixed writes a small fixed size value, flushing w first
// if its internal buffer cannot hold it in one piece.
func writeFixed(w Writer, c []byte) (n int64, err error) {

	if w.Available() < len(c) {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() < len(c) {
			return 0, fmt.Errorf("cannot write %d bytes: available buffer is %d even after flush", len(c), w.Available())
		}
	}

	nint, err := w.Write(c)

	return int64(nint), err
}
