package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("hunter2")
	WipeByteArray(b)
	for i := range b {
		require.Zero(t, b[i])
	}
}

func TestWipeByteArray_Nil(t *testing.T) {
	require.NotPanics(t, func() { WipeByteArray(nil) })
}
