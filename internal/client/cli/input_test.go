package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  alice@example.org  \n"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Enter email", &out)
	require.NoError(t, err)
	require.Equal(t, "alice@example.org", got)
	require.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no-newline"))
	var out bytes.Buffer

	got, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EOFWithNoInput(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(r, "Prompt", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), pw)
	require.Contains(t, out.String(), "Enter password")
}
