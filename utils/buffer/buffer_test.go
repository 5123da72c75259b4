package buffer

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("FixedWidth", func(t *testing.T) {

		buf := NewBufferSize(11)

		_, err := WriteAsUint8(buf, 7)
		require.NoError(t, err)
		_, err = WriteAsUint16(buf, 0x0102)
		require.NoError(t, err)
		_, err = WriteAsUint64(buf, int64(-1))
		require.NoError(t, err)

		require.Equal(t, []byte{7, 1, 2, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, buf.Bytes())

		// Writing past capacity fails
		_, err = WriteUint8(buf, 0)
		require.Error(t, err)

		var a int
		var b uint16
		var c int64

		_, err = ReadAsUint8(buf, &a)
		require.NoError(t, err)
		_, err = ReadAsUint16(buf, &b)
		require.NoError(t, err)
		_, err = ReadAsUint64(buf, &c)
		require.NoError(t, err)

		require.Equal(t, 7, a)
		require.Equal(t, uint16(0x0102), b)
		require.Equal(t, int64(-1), c)

		_, err = ReadUint8(buf, new(uint8))
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Slices/bufio", func(t *testing.T) {

		values := []int64{0, 1, -1, 1 << 40}

		var b bytes.Buffer
		w := bufio.NewWriterSize(&b, 16)

		n, err := WriteAsUint64Slice(w, values)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, int64(8*len(values)), n)

		have := make([]int64, len(values))
		n, err = ReadAsUint64Slice(bufio.NewReader(&b), have)
		require.NoError(t, err)
		require.Equal(t, int64(8*len(values)), n)
		require.Equal(t, values, have)
	})

	t.Run("Write/Split", func(t *testing.T) {

		data := make([]byte, 100)
		for i := range data {
			data[i] = byte(i)
		}

		var b bytes.Buffer
		w := bufio.NewWriterSize(&b, 16)

		n, err := Write(w, data)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, int64(len(data)), n)
		require.Equal(t, data, b.Bytes())
	})

	t.Run("Peek/Discard", func(t *testing.T) {
		buf := NewBuffer([]byte{1, 2, 3})

		p, err := buf.Peek(2)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2}, p)

		d, err := buf.Discard(2)
		require.NoError(t, err)
		require.Equal(t, 2, d)
		require.Equal(t, 1, buf.Size())

		d, err = buf.Discard(2)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 1, d)
	})
}
