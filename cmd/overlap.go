package cmd

import (
	"github.com/longcao/sequence-glue/internal/glue"
	"github.com/spf13/cobra"
)

// overlapCmd is for scoring the overlap between a pair of named reads
var overlapCmd = &cobra.Command{
	Use:                        "overlap [left] [right]",
	Short:                      "Score the overlap between two reads in an input file",
	Run:                        glue.OverlapCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Log the number of bases shared between the end of one read and the
start of another, and whether that is enough for the two to be glued.`,
}

// set flags
func init() {
	rootCmd.AddCommand(overlapCmd)

	overlapCmd.Flags().StringP("in", "i", "", "input file with reads <FASTA>")
}
