package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fibseq/cmd/util"
	"fibseq/profiling"
	"fibseq/sequence"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Profile the streaming and the collecting way of generating the sequence",
	Aliases: []string{"p"},
	Args:    cobra.NoArgs,
	RunE:    profile,
}

var profileCount uint32
var profileRounds int
var profileOutput string
var profileId string

// keeps the generated values alive so the loops are not optimised away
var sink uint64

func init() {
	profileCmd.Flags().Uint32VarP(&profileCount, "count", "c", 93, "The number of terms to generate per round")
	profileCmd.Flags().IntVarP(&profileRounds, "rounds", "r", 100000, "The number of times to generate the sequence")
	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "_data", "The path to the output folder")
	profileCmd.Flags().StringVarP(&profileId, "id", "n", "", "The id of the run, a random UUID if empty")
	RootCmd.AddCommand(profileCmd)
}

type variant struct {
	name string
	run  func(n uint32)
}

var variants = []variant{
	{"stream", func(n uint32) {
		sequence.Generate(n, func(t sequence.Term) bool {
			sink ^= t.Value
			return true
		})
	}},
	{"collect", func(n uint32) {
		for _, t := range sequence.Collect(n) {
			sink ^= t.Value
		}
	}},
}

func profile(cmd *cobra.Command, args []string) error {
	id := profileId
	if len(id) == 0 {
		id = uuid.New().String()
	}
	if err := util.CheckRunId(id); err != nil {
		return err
	}
	dir := filepath.Join(profileOutput, id)
	if err := util.CleanOrCreateTempFolder(dir); err != nil {
		return err
	}

	results := make([]profiling.Result, 0, len(variants))
	for _, v := range variants {
		logrus.Debugf("profiling %s: %d rounds of %d terms", v.name, profileRounds, profileCount)
		prof, err := profiling.Run(filepath.Join(dir, v.name+"-cpu.pprof"), func() {
			for i := 0; i < profileRounds; i++ {
				v.run(profileCount)
			}
		})
		if err != nil {
			return err
		}
		result := profiling.Summarize(v.name, prof)
		results = append(results, result)
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	fmt.Fprintln(cmd.OutOrStdout(), profiling.Compare(results[0], results[1]))
	fmt.Fprintf(cmd.OutOrStdout(), "Profiles written to %s\n", dir)
	return nil
}
