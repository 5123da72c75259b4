package buffer

import (
	"bytes"
	"encoding"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type serializer[T any] interface {
	*T
	BinarySize() int
	io.WriterTo
	io.ReaderFrom
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Equal(*T) bool
}

// RequireSerializerCorrect checks that:
//   - input.WriteTo writes exactly input.BinarySize() bytes and reports it,
//   - input.MarshalBinary produces the same bytes as input.WriteTo,
//   - a zero value of the same type decodes these bytes with ReadFrom
//     and UnmarshalBinary into an object equal to input.
func RequireSerializerCorrect[T any, PT serializer[T]](t *testing.T, input PT) {
	RequireSerializerCorrectWith[T, PT](t, input, PT(new(T)), PT(new(T)))
}

// RequireSerializerCorrectWith is as RequireSerializerCorrect but decodes into
// the caller provided objects, for types whose decoding depends on a
// pre-set context (e.g. a dimension that is not part of the encoding).
func RequireSerializerCorrectWith[T any, PT serializer[T]](t *testing.T, input, outputReadFrom, outputUnmarshal PT) {

	var b bytes.Buffer

	n, err := input.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, input.BinarySize(), int(n))
	require.Equal(t, int(n), b.Len())

	// Slice-backed buffer path
	buf := NewBufferSize(input.BinarySize())
	n, err = input.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, input.BinarySize(), int(n))
	require.Equal(t, b.Bytes(), buf.Bytes())

	data, err := input.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, b.Bytes(), data)

	n, err = outputReadFrom.ReadFrom(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	require.Equal(t, input.BinarySize(), int(n))
	require.True(t, input.Equal((*T)(outputReadFrom)))

	require.NoError(t, outputUnmarshal.UnmarshalBinary(data))
	require.True(t, input.Equal((*T)(outputUnmarshal)))
}
