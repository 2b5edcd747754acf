package glue

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Read is a single sequenced stretch of DNA for assembly
type Read struct {
	// ID is the read's name, the text after the demarcator on its header line
	ID string

	// Seq is the read's sequence of bases
	Seq string
}

// ParseError is a failure to turn a record file into reads: either the
// text held no records at all or a record had a header but no bases.
type ParseError struct {
	// Path of the input file ("" when parsing raw text)
	Path string

	// Name of the offending record ("" when no records were found)
	Name string

	// Line number of the offending record's header (1-indexed, 0 when
	// no records were found)
	Line int
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "input"
	}

	if e.Line == 0 {
		return fmt.Sprintf("failed to parse %s: no records found", path)
	}

	return fmt.Sprintf("failed to parse %s: record %q at line %d has no bases", path, e.Name, e.Line)
}

// parse turns the contents of a record file into reads. A record starts at
// each line prefixed with the demarcator: the rest of that line is the
// read's name and the lines up to the next demarcator are its bases,
// concatenated as-is. Lines before the first demarcator are ignored.
func parse(contents, demarcator string) (reads []Read, err error) {
	if demarcator == "" {
		return nil, fmt.Errorf("failed to parse records: empty demarcator")
	}

	// split by newlines
	lines := strings.Split(contents, "\n")

	// find the header lines
	var headerIndices []int
	var names []string
	for i, line := range lines {
		if strings.HasPrefix(line, demarcator) {
			headerIndices = append(headerIndices, i)
			names = append(names, strings.TrimSuffix(line[len(demarcator):], "\r"))
		}
	}

	if len(headerIndices) == 0 {
		return nil, &ParseError{}
	}

	// accumulate the bases from between the headers
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}

		var bases strings.Builder
		for _, line := range lines[headerIndex+1 : nextLine] {
			bases.WriteString(strings.TrimSuffix(line, "\r"))
		}

		if bases.Len() == 0 {
			return nil, &ParseError{Name: names[i], Line: headerIndex + 1}
		}

		reads = append(reads, Read{ID: names[i], Seq: bases.String()})
	}

	return reads, nil
}

// findRead returns the first read with the name passed. errors out if there is none.
func findRead(reads []Read, name string) (Read, error) {
	for _, r := range reads {
		if r.ID == name {
			return r, nil
		}
	}

	return Read{}, fmt.Errorf("failed to find a read named %s", name)
}

// ReadsCmd is for parsing an input file and listing the reads in it.
func ReadsCmd(cmd *cobra.Command, args []string) {
	input, conf := parseCmdFlags(cmd, args)

	reads, err := read(input.in, conf.Demarcator)
	if err != nil {
		stderr.Fatalln(err)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "name\tlength\t\n")
	for _, r := range reads {
		fmt.Fprintf(writer, "%s\t%d\t\n", r.ID, len(r.Seq))
	}
	writer.Flush()
}
