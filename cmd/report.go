package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fibseq/cmd/util"
	"fibseq/sequence"
	"fibseq/wrapcheck"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Short:   "Write a SARIF report of the terms that wrapped past the 64-bit range",
	Aliases: []string{"r"},
	Args:    cobra.NoArgs,
	RunE:    report,
}

var reportCount uint32
var reportOutput string
var reportId string

func init() {
	reportCmd.Flags().Uint32VarP(&reportCount, "count", "c", 100, "The number of terms to generate")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "_data", "The path to the output folder")
	reportCmd.Flags().StringVarP(&reportId, "id", "n", "", "The id of the run, a random UUID if empty")
	RootCmd.AddCommand(reportCmd)
}

func report(cmd *cobra.Command, args []string) error {
	id := reportId
	if len(id) == 0 {
		id = uuid.New().String()
	}
	if err := util.CheckRunId(id); err != nil {
		return err
	}
	dir := filepath.Join(reportOutput, id)
	if err := util.CleanOrCreateTempFolder(dir); err != nil {
		return err
	}

	terms := sequence.Collect(reportCount)
	termsPath := filepath.Join(dir, "sequence.txt")
	if err := util.WriteTerms(termsPath, terms); err != nil {
		return err
	}

	run := wrapcheck.Check(terms, "sequence.txt")
	reportPath := filepath.Join(dir, id+".sarif")
	file, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("error creating SARIF file: %w", err)
	}
	defer file.Close()
	if err := wrapcheck.WriteReport(file, run); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"id":      id,
		"count":   reportCount,
		"wrapped": len(run.Results),
	}).Info("report written")
	fmt.Fprintf(cmd.OutOrStdout(), "SARIF file written to %s\n", reportPath)
	return nil
}
