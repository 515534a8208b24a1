package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"fibseq/sequence"
)

func TestMoves(t *testing.T) {
	assert.Equal(t, []string{moveNext, moveJump, moveQuit}, moves(sequence.NewCursor(0)))
	assert.Equal(t, []string{moveNext, movePrev, moveJump, moveQuit}, moves(sequence.NewCursor(5)))
}

func TestDescribeTerm(t *testing.T) {
	var buf bytes.Buffer
	describeTerm(&buf, sequence.At(10))
	assert.Equal(t, "Currently looking at: F(10) = 55\n", buf.String())

	buf.Reset()
	describeTerm(&buf, sequence.At(94))
	assert.Equal(t, "Currently looking at: F(94) = 1293530146158671551 (wrapped past 64 bits)\n", buf.String())
}
