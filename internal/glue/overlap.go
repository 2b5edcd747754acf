package glue

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Overlap is a junction between two reads: the last Length bases of Left
// are the same as the first Length bases of Right. Overlaps are scored
// fresh for each candidate pair, never precomputed and stored.
type Overlap struct {
	// Left is the read contributing its suffix to the junction
	Left Read

	// Right is the read contributing its prefix to the junction
	Right Read

	// Length is the number of shared bases at the junction
	Length int
}

// gluable is whether the overlap is long enough to join its reads: more
// than half the length of the shorter of the two.
func (o *Overlap) gluable() bool {
	shorter := len(o.Left.Seq)
	if len(o.Right.Seq) < shorter {
		shorter = len(o.Right.Seq)
	}

	return o.Length > shorter/2
}

// overlapLength returns the length of the longest suffix of a that is also
// a prefix of b. Comparisons are exact and case-sensitive. Zero when the
// reads share no overlap or either is empty.
func overlapLength(a, b Read) int {
	max := len(a.Seq)
	if len(b.Seq) < max {
		max = len(b.Seq)
	}

	for n := max; n > 0; n-- {
		if a.Seq[len(a.Seq)-n:] == b.Seq[:n] {
			return n
		}
	}

	return 0
}

// OverlapCmd is for logging the overlap between two named reads in an input file.
func OverlapCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		cmd.Help()
		stderr.Fatalln("\nexpecting two read names.")
	}

	input, conf := parseCmdFlags(cmd, args)

	reads, err := read(input.in, conf.Demarcator)
	if err != nil {
		stderr.Fatalln(err)
	}

	left, err := findRead(reads, args[0])
	if err != nil {
		stderr.Fatalln(err)
	}

	right, err := findRead(reads, args[1])
	if err != nil {
		stderr.Fatalln(err)
	}

	o := Overlap{Left: left, Right: right, Length: overlapLength(left, right)}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "left\tright\toverlap\tgluable\t\n")
	fmt.Fprintf(writer, "%s\t%s\t%d\t%t\t\n", o.Left.ID, o.Right.ID, o.Length, o.gluable())
	writer.Flush()
}
