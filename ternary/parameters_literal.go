package ternary

import (
	"bufio"
	"io"

	"github.com/Pro7ech/ntru/utils/buffer"
)

// ParametersLiteral is a literal representation of sparse ternary polynomial
// parameters. It has public fields and is used to express unchecked
// user-defined parameters literally into Go programs.
// The [NewParametersFromLiteral] function is used to generate the actual
// checked parameters from the literal representation.
//
// Users must set the dimension N. If left unset, MaxSamplingAttempts is
// substituted by [DefaultMaxSamplingAttempts] at parameter creation.
type ParametersLiteral struct {
	N                   int
	MaxSamplingAttempts int `json:",omitempty"`
}

// BinarySize returns the serialized size of the object in bytes.
func (p ParametersLiteral) BinarySize() (size int) {
	size += 8 // N
	size += 8 // MaxSamplingAttempts
	return
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (p ParametersLiteral) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteAsUint64(w, p.N); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteAsUint64(w, p.MaxSamplingAttempts); err != nil {
			return n + inc, err
		}

		n += inc

		return n, w.Flush()
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
func (p *ParametersLiteral) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		if inc, err = buffer.ReadAsUint64(r, &p.N); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.ReadAsUint64(r, &p.MaxSamplingAttempts); err != nil {
			return n + inc, err
		}

		n += inc

		return
	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p ParametersLiteral) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *ParametersLiteral) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Equal returns true if the two literals are identical.
func (p ParametersLiteral) Equal(other *ParametersLiteral) bool {
	return p == *other
}
