package buffer

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// ReadAsUint64 reads an uint64 from r and stores it in c converted to T.
func ReadAsUint64[T constraints.Integer](r Reader, c *T) (n int64, err error) {
	var v uint64
	if n, err = ReadUint64(r, &v); err != nil {
		return
	}
	*c = T(v)
	return
}

// ReadAsUint16 reads an uint16 from r and stores it in c converted to T.
func ReadAsUint16[T constraints.Integer](r Reader, c *T) (n int64, err error) {
	var v uint16
	if n, err = ReadUint16(r, &v); err != nil {
		return
	}
	*c = T(v)
	return
}

// ReadAsUint8 reads a byte from r and stores it in c converted to T.
func ReadAsUint8[T constraints.Integer](r Reader, c *T) (n int64, err error) {
	var v uint8
	if n, err = ReadUint8(r, &v); err != nil {
		return
	}
	*c = T(v)
	return
}

// ReadAsUint64Slice reads len(c) uint64 from r and stores them in c converted to T.
func ReadAsUint64Slice[T constraints.Integer](r Reader, c []T) (n int64, err error) {
	var inc int64
	var v uint64
	for i := range c {
		if inc, err = ReadUint64(r, &v); err != nil {
			return n + inc, err
		}
		c[i] = T(v)
		n += inc
	}
	return
}

// Read reads exactly len(c) bytes from r into c.
func Read(r Reader, c []byte) (n int64, err error) {
	nint, err := io.ReadFull(r, c)
	return int64(nint), err
}

// ReadUint8 reads a byte from r.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb [1]byte

	if n, err = Read(r, bb[:]); err != nil {
		return
	}

	*c = bb[0]

	return
}

// ReadUint16 reads an uint16 from r.
func ReadUint16(r Reader, c *uint16) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint16: c is nil")
	}

	var bb [2]byte

	if n, err = Read(r, bb[:]); err != nil {
		return
	}

	*c = binary.BigEndian.Uint16(bb[:])

	return
}

// ReadUint64 reads an uint64 from r.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	if n, err = Read(r, bb[:]); err != nil {
		return
	}

	*c = binary.BigEndian.Uint64(bb[:])

	return
}
