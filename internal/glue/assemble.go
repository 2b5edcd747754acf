package glue

import (
	"fmt"
	"time"

	"github.com/longcao/sequence-glue/config"
	"github.com/spf13/cobra"
)

// AssembleCmd takes a cobra command (with its flags) and runs Assemble.
func AssembleCmd(cmd *cobra.Command, args []string) {
	Assemble(parseCmdFlags(cmd, args))
}

// Assemble is for running an end to end contig assembly: read a file of
// records, glue them into a contig, and write the output report.
func Assemble(input *Flags, conf *config.Config) *Output {
	start := time.Now()

	out, err := assembleContig(input, conf) // build up the contig from the input reads
	if err != nil {
		stderr.Fatalln(err)
	}

	elapsed := time.Since(start)
	out.Execution = elapsed.Seconds()

	// write the results to a file
	if _, err = writeJSON(input.out, out); err != nil {
		stderr.Fatalln(err)
	}

	if input.fasta != "" {
		if err = writeFasta(input.fasta, "contig", out.Contig, conf.FastaColumns); err != nil {
			stderr.Fatalln(err)
		}
	}

	if conf.Verbose {
		fmt.Printf("%s\n\n", elapsed)
	}

	return out
}

// assembleContig runs the assembly pipeline against an input file.
//
// Reads the records, builds a greedy chain of overlaps around a starting
// read, and glues the chain into the final contig. A pool whose reads
// share no gluable overlaps still produces output: the contig is the
// starting read on its own.
func assembleContig(input *Flags, conf *config.Config) (*Output, error) {
	reads, err := read(input.in, conf.Demarcator)
	if err != nil {
		return nil, err
	}

	if conf.Verbose {
		fmt.Printf("assembling %d reads from %s\n", len(reads), input.in)
	}

	chain := assemble(reads)

	contig, err := glue(chain)
	if err != nil {
		return nil, err
	}

	// nothing was gluable. the contig is the starting read by itself
	if contig == "" {
		if start, ok := startRead(dedupe(reads)); ok {
			contig = start.Seq
		}
	}

	return newOutput(input.in, reads, chain, contig), nil
}

// assemble builds a chain of gluable overlaps covering as many reads as the
// greedy search reaches.
//
// The walk starts from a deterministic read: the lexicographically least
// name, ties broken by bases. From there two searches grow the chain in
// opposite directions at once, each consuming its own copy of the pool:
//  1. rightward, appending reads whose prefix overlaps the tail
//  2. leftward, prepending reads whose suffix overlaps the head
// The searches never see one another's removals, so a read can be claimed
// by both. The rightward chain keeps its picks and the leftward chain is
// cut at its first pick the rightward chain already placed.
//
// The joined chain is ordered left to right and consecutive overlaps share
// their junction read. An empty pool yields an empty chain.
func assemble(reads []Read) []Overlap {
	pool := dedupe(reads)

	start, ok := startRead(pool)
	if !ok {
		return []Overlap{}
	}
	pool = removeRead(pool, start)

	// the searches must not see one another's removals, so each gets its own copy
	leftPool := make([]Read, len(pool))
	copy(leftPool, pool)
	rightPool := make([]Read, len(pool))
	copy(rightPool, pool)

	leftChan := make(chan []Overlap, 1)
	rightChan := make(chan []Overlap, 1)
	go func() { leftChan <- buildChain(start, leftPool, leftward) }()
	go func() { rightChan <- buildChain(start, rightPool, rightward) }()

	leftChain := <-leftChan
	rightChain := <-rightChan

	leftChain = trimClaimed(leftChain, rightChain)

	return append(leftChain, rightChain...)
}

// startRead returns the read the directional searches start from: the
// lexicographically least name among the reads, ties broken by bases.
// ok is false for an empty pool.
func startRead(reads []Read) (start Read, ok bool) {
	for i, r := range reads {
		if i == 0 || r.ID < start.ID || (r.ID == start.ID && r.Seq < start.Seq) {
			start = r
		}
	}

	return start, len(reads) > 0
}

// dedupe collapses records that share both a name and bases, keeping the
// first. The assembler treats its input as a set.
func dedupe(reads []Read) []Read {
	seen := make(map[Read]bool, len(reads))

	deduped := make([]Read, 0, len(reads))
	for _, r := range reads {
		if seen[r] {
			continue
		}
		seen[r] = true
		deduped = append(deduped, r)
	}

	return deduped
}

// trimClaimed cuts the left chain down to the picks the right chain did not
// already place. Left picks are walked from the innermost junction outward,
// so the cut keeps the longest run still consistent with the right chain.
func trimClaimed(leftChain, rightChain []Overlap) []Overlap {
	if len(leftChain) == 0 || len(rightChain) == 0 {
		return leftChain
	}

	claimed := make(map[Read]bool)
	for _, o := range rightChain {
		claimed[o.Right] = true
	}

	// a left chain's picks are each overlap's left read, tail first
	keep := 0
	for i := len(leftChain) - 1; i >= 0; i-- {
		if claimed[leftChain[i].Left] {
			break
		}
		keep++
	}

	return leftChain[len(leftChain)-keep:]
}
