package util

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"fibseq/sequence"
)

// ErrBadRunId is returned for run ids that would resolve outside the output folder.
var ErrBadRunId = errors.New("run id must be a single path element")

// CheckRunId makes sure id names a folder directly inside the output folder,
// since that folder gets removed and recreated.
func CheckRunId(id string) error {
	if id == "" || id == "." || strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadRunId, id)
	}
	return nil
}

// CleanOrCreateTempFolder makes sure path exists and is empty.
func CleanOrCreateTempFolder(path string) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("error removing folder: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("error creating folder: %w", err)
	}
	return nil
}

// WriteTerms writes one formatted term per line to filePath.
// os.Create will truncate a file if it already exists
func WriteTerms(filePath string, terms []sequence.Term) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file for terms: %w", err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	for _, t := range terms {
		if _, err := fmt.Fprintln(w, sequence.FormatTerm(t)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}
