package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InvalidCountMessage is what the user sees on stderr for any input that is not a valid count.
const InvalidCountMessage = "Error: Please enter a valid positive number"

// ErrInvalidCount covers malformed text and counts too large for 32 bits alike.
var ErrInvalidCount = errors.New("invalid count")

// ReadLine reads a single line from r. Hitting the end of the stream is not an error,
// whatever was read before it is returned (possibly nothing).
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// ParseCount parses s as a non-negative base-10 count after trimming surrounding whitespace.
// A single leading '+' is accepted.
func ParseCount(s string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "+")
	n, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, strings.TrimSpace(s))
	}
	return uint32(n), nil
}

// Prompt writes label without a trailing newline and flushes w if it buffers.
func Prompt(w io.Writer, label string) error {
	if _, err := io.WriteString(w, label); err != nil {
		return err
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
