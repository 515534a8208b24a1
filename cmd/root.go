/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fibseq/input"
	"fibseq/sequence"
)

const (
	banner = "=== Fibonacci Sequence Generator ==="
	prompt = "Enter the number of Fibonacci numbers to display: "
)

var strict bool
var collect bool
var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fibseq",
	Short: "Print the first N numbers of the Fibonacci sequence",
	Long: `Prompts for a count on standard input and prints that many Fibonacci numbers,
one per line, labeled by position: F(0) = 0, F(1) = 1, ...

Values are unsigned 64-bit and wrap around after F(93).`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              fibseq,
}

// Execute adds all child commands to the root command and sets Flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if errors.Is(err, input.ErrInvalidCount) {
		// already reported, --strict only changes the exit status
		os.Exit(1)
	}
	if err != nil {
		println("Failed to execute command: " + err.Error())
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when the count is invalid")
	RootCmd.Flags().BoolVar(&collect, "collect", false, "Collect the whole sequence before printing it")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func fibseq(cmd *cobra.Command, args []string) error {
	// only the banner and prompt are buffered, terms go straight to stdout as they are generated
	out := bufio.NewWriter(cmd.OutOrStdout())

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)
	// the prompt has no newline, so it has to be flushed before we block on the read
	if err := input.Prompt(out, prompt); err != nil {
		return err
	}

	line, err := input.ReadLine(cmd.InOrStdin())
	if err != nil {
		return err
	}
	logrus.Debugf("read %q", line)

	n, err := input.ParseCount(line)
	if err != nil {
		return invalidCount(cmd, err)
	}
	return printSequence(cmd.OutOrStdout(), n)
}

// invalidCount reports err to the user. The command still succeeds unless --strict is set.
func invalidCount(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), input.InvalidCountMessage)
	logrus.Debug(err)
	if strict {
		return err
	}
	return nil
}

func printSequence(w io.Writer, n uint32) error {
	if err := sequence.WriteHeader(w, n); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"count": n, "collect": collect}).Debug("printing sequence")
	if collect {
		return sequence.PrintCollected(w, n)
	}
	return sequence.Print(w, n)
}
