package sequence

import (
	"fmt"
	"io"
)

// NothingToDisplay is printed instead of any term when the count is zero.
const NothingToDisplay = "No numbers to display."

// FormatTerm renders a term as "F(<index>) = <value>".
func FormatTerm(t Term) string {
	return fmt.Sprintf("F(%d) = %d", t.Index, t.Value)
}

// WriteHeader writes the line announcing how many terms follow, preceded by a blank line.
func WriteHeader(w io.Writer, n uint32) error {
	_, err := fmt.Fprintf(w, "\nThe first %d Fibonacci numbers are:\n", n)
	return err
}

// Print writes the first n terms to w, one line each, as they are generated.
func Print(w io.Writer, n uint32) error {
	if n == 0 {
		_, err := fmt.Fprintln(w, NothingToDisplay)
		return err
	}
	var err error
	Generate(n, func(t Term) bool {
		_, err = fmt.Fprintln(w, FormatTerm(t))
		return err == nil
	})
	return err
}

// PrintCollected writes the same lines as Print, but collects the whole sequence first.
func PrintCollected(w io.Writer, n uint32) error {
	if n == 0 {
		_, err := fmt.Fprintln(w, NothingToDisplay)
		return err
	}
	for _, t := range Collect(n) {
		if _, err := fmt.Fprintln(w, FormatTerm(t)); err != nil {
			return err
		}
	}
	return nil
}
