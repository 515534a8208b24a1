package cmd

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"fibseq/input"
	"fibseq/sequence"
)

// Define the Cobra command
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b"},
	Short:   "Step through the sequence interactively",
	Args:    cobra.NoArgs,
	RunE:    browse,
}

var browseStart uint32

const (
	moveNext = "Next"
	movePrev = "Previous"
	moveJump = "Jump"
	moveQuit = "Quit"
)

func init() {
	browseCmd.Flags().Uint32VarP(&browseStart, "start", "s", 0, "The index to start at")
	RootCmd.AddCommand(browseCmd)
}

func browse(cmd *cobra.Command, args []string) error {
	cursor := sequence.NewCursor(browseStart)
	for {
		describeTerm(cmd.OutOrStdout(), cursor.Term())
		movePrompt := promptui.Select{
			Label: "Where do you want to move?",
			Items: moves(cursor),
		}
		_, selectedMove, err := movePrompt.Run()
		if err != nil {
			return fmt.Errorf("error getting move: %w", err)
		}
		switch selectedMove {
		case moveQuit:
			return nil
		case moveNext:
			cursor.Next()
		case movePrev:
			cursor.Prev()
		case moveJump:
			i, err := promptIndex()
			if err != nil {
				return err
			}
			cursor = sequence.NewCursor(i)
		}
	}
}

// moves lists what the select menu offers at the cursor's position
func moves(c *sequence.Cursor) []string {
	items := make([]string, 0, 4)
	if c.HasNext() {
		items = append(items, moveNext)
	}
	if c.HasPrev() {
		items = append(items, movePrev)
	}
	return append(items, moveJump, moveQuit)
}

func promptIndex() (uint32, error) {
	indexPrompt := promptui.Prompt{
		Label: "Index",
		Validate: func(s string) error {
			_, err := input.ParseCount(s)
			return err
		},
	}
	text, err := indexPrompt.Run()
	if err != nil {
		return 0, fmt.Errorf("error getting index: %w", err)
	}
	return input.ParseCount(text)
}

func describeTerm(w io.Writer, t sequence.Term) {
	line := "Currently looking at: " + sequence.FormatTerm(t)
	if sequence.Wrapped(t) {
		line += " (wrapped past 64 bits)"
	}
	fmt.Fprintln(w, line)
}
