package input

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	valid := map[string]uint32{
		"0":            0,
		"10":           10,
		"  42  ":       42,
		"7\n":          7,
		"\t3\r\n":      3,
		"+5":           5,
		"007":          7,
		"4294967295":   4294967295,
		" +4294967295": 4294967295,
	}
	for in, want := range valid {
		got, err := ParseCount(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseCountInvalid(t *testing.T) {
	invalid := []string{
		"",
		"   \n",
		"abc",
		"-5",
		"-0",
		"+",
		"++5",
		"5 5",
		"1_000",
		"3.0",
		"0x10",
		"4294967296",
		"99999999999999999999999",
	}
	for _, in := range invalid {
		_, err := ParseCount(in)
		assert.ErrorIs(t, err, ErrInvalidCount, "input %q", in)
	}
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(strings.NewReader("12\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "12\n", line)

	line, err = ReadLine(strings.NewReader("12"))
	require.NoError(t, err)
	assert.Equal(t, "12", line)

	line, err = ReadLine(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

func TestReadLineFailure(t *testing.T) {
	broken := errors.New("stream closed")
	_, err := ReadLine(iotest.ErrReader(broken))
	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, ErrInvalidCount)
}

func TestPrompt(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, Prompt(w, "Count: "))
	assert.Equal(t, "Count: ", buf.String())
}
