package cmd

import (
	"github.com/spf13/cobra"

	"fibseq/input"
)

var listCmd = &cobra.Command{
	Use:     "list <count>",
	Aliases: []string{"l"},
	Short:   "Print the sequence for a count given as an argument instead of prompting",
	Args:    cobra.ExactArgs(1),
	RunE:    list,
}

func init() {
	listCmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when the count is invalid")
	listCmd.Flags().BoolVar(&collect, "collect", false, "Collect the whole sequence before printing it")
	RootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) error {
	n, err := input.ParseCount(args[0])
	if err != nil {
		return invalidCount(cmd, err)
	}
	return printSequence(cmd.OutOrStdout(), n)
}
