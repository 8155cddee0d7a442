package strq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyTerminated(t *testing.T) {
	tests := []struct {
		name string
		dst  int
		src  string
		n    int
		out  string
	}{
		{name: "Fits", dst: 6, src: "hello", n: 5, out: "hello\x00"},
		{name: "Room", dst: 8, src: "hi", n: 2, out: "hi\x00"},
		{name: "Truncated", dst: 4, src: "hello", n: 3, out: "hel\x00"},
		{name: "OnlyTerminator", dst: 1, src: "hello", n: 0, out: "\x00"},
		{name: "EmptySource", dst: 3, src: "", n: 0, out: "\x00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst := make([]byte, test.dst)
			for i := range dst {
				dst[i] = '#'
			}

			n := copyTerminated(dst, []byte(test.src))
			require.Equal(t, test.n, n)
			require.Equal(t, test.out, string(dst[:len(test.out)]))
			for _, c := range dst[len(test.out):] {
				require.Equal(t, byte('#'), c)
			}
		})
	}
}

func TestCopyTerminatedEmptyDst(t *testing.T) {
	require.Zero(t, copyTerminated(nil, []byte("x")))
	require.Zero(t, copyTerminated([]byte{}, []byte("x")))
}
