package cmd

import (
	"github.com/longcao/sequence-glue/internal/glue"
	"github.com/spf13/cobra"
)

// assembleCmd is for gluing a file of overlapping reads into a single contig
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Assemble a contig from a file of overlapping reads",
	Run:                        glue.AssembleCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Glue a file of reads into the shortest contig the greedy search finds.

Reads are joined end to end at their longest shared overlaps: the chain
starts at the first read by name and grows in both directions until no
unplaced read shares enough bases with either end. Bases shared between
neighboring reads appear once in the contig.`,
	Aliases: []string{"asm", "contig"},
}

// set flags
func init() {
	rootCmd.AddCommand(assembleCmd)

	// Flags for specifying the paths to the input and output files
	assembleCmd.Flags().StringP("in", "i", "", "input file with reads <FASTA>")
	assembleCmd.Flags().StringP("out", "o", "", "output file for the assembly report <JSON>")
	assembleCmd.Flags().StringP("fasta", "f", "", "also write the contig to this file <FASTA>")
}
