package cmd

import (
	"github.com/longcao/sequence-glue/internal/glue"
	"github.com/spf13/cobra"
)

// readsCmd is for listing the reads parsed out of an input file
var readsCmd = &cobra.Command{
	Use:                        "reads",
	Short:                      "List the reads in an input file",
	Run:                        glue.ReadsCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Parse an input file and list each read's name and length without
assembling anything. Useful for checking what a demarcator setting
makes of a file.`,
	Aliases: []string{"ls"},
}

// set flags
func init() {
	rootCmd.AddCommand(readsCmd)

	readsCmd.Flags().StringP("in", "i", "", "input file with reads <FASTA>")
}
