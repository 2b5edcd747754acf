package glue

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"
)

// Output is a struct containing the result of a contig assembly.
type Output struct {
	// Input is the path of the file the reads came from
	Input string `json:"input"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// ReadCount is the number of records parsed from the input
	ReadCount int `json:"readCount"`

	// Placed is the number of distinct reads glued into the contig
	Placed int `json:"placed"`

	// Contig is the assembled superstring
	Contig string `json:"contig"`

	// Length is the number of bases in the contig
	Length int `json:"length"`

	// Valid is whether every input read appears intact in the contig
	Valid bool `json:"valid"`

	// Junctions are the glued overlaps between neighboring reads, in
	// contig order
	Junctions []Junction `json:"junctions"`
}

// Junction is a single glued overlap in the assembled chain.
type Junction struct {
	// Left is the name of the read on the junction's upstream side
	Left string `json:"left"`

	// Right is the name of the read on the junction's downstream side
	Right string `json:"right"`

	// Length is the number of bases the two reads share
	Length int `json:"length"`
}

// newOutput builds the report for a finished assembly.
func newOutput(in string, reads []Read, chain []Overlap, contig string) *Output {
	junctions := []Junction{}
	for _, o := range chain {
		junctions = append(junctions, Junction{
			Left:   o.Left.ID,
			Right:  o.Right.ID,
			Length: o.Length,
		})
	}

	// each junction adds one read beyond the starting read. with no
	// junctions at all the contig is the starting read alone
	placed := 0
	if len(chain) > 0 {
		placed = len(chain) + 1
	} else if len(reads) > 0 {
		placed = 1
	}

	return &Output{
		Input:     in,
		ReadCount: len(reads),
		Placed:    placed,
		Contig:    contig,
		Length:    len(contig),
		Valid:     validSuperstring(contig, reads),
		Junctions: junctions,
	}
}

// writeJSON writes the output report to the filename requested.
func writeJSON(filename string, out *Output) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	out.Time = fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize the output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %v", err)
	}

	return output, nil
}

// writeFasta writes the contig to the filename requested as a single FASTA
// record, wrapped to columns bases per line.
func writeFasta(filename, name, contig string, columns int) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create a FASTA file at %s: %v", filename, err)
	}
	defer f.Close()

	w := fasta.NewWriter(f)
	if columns > 0 {
		w.Columns = columns
	}

	if err = w.Write(seq.NewSequenceString(name, contig)); err != nil {
		return fmt.Errorf("failed to write the contig to %s: %v", filename, err)
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write the contig to %s: %v", filename, err)
	}

	return nil
}
