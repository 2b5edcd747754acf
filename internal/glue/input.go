package glue

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/longcao/sequence-glue/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "in" and "out" that are used by multiple commands.
type Flags struct {
	// the name of the file to read the input from
	in string

	// the name of the file to write the output to
	out string

	// the name of a file to write the contig to as FASTA (optional)
	fasta string
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out, fasta string) (*Flags, *config.Config) {
	c := config.New()

	if out == "" {
		p := inputParser{}
		out = p.guessOutput(in)
	}

	return &Flags{
		in:    in,
		out:   out,
		fasta: fasta,
	}, c
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object.
// returns Flags and a Config for glue.Assemble.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if fs.in, err = p.guessInput(); err != nil {
			// no input flag and nothing guessable in the cwd
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); err == nil && fs.out == "" {
		fs.out = p.guessOutput(fs.in) // guess at an output name
	}

	// an empty fasta path means no FASTA output was requested
	fs.fasta, _ = cmd.Flags().GetString("fasta")

	return fs, c
}

// guessInput returns the first fasta file in the current directory. Is used
// if the user hasn't specified an input file.
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := strings.ToLower(file.Name())
		for _, ext := range []string{".fa", ".fasta", ".fa.gz", ".fasta.gz"} {
			if strings.HasSuffix(name, ext) {
				return file.Name(), nil
			}
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no fasta file found in %s", dir)
}

// guessOutput gets an output path from an input path (if no output path is
// specified). It uses the same name as the input path to create an output.
func (p *inputParser) guessOutput(in string) (out string) {
	ext := filepath.Ext(in)
	noExt := in[0 : len(in)-len(ext)]
	return noExt + ".glue.json"
}

// read loads the records in a file (by its path on the local fs) to a slice
// of reads. gzip'd inputs are unpacked first.
func read(path, demarcator string) (reads []Read, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var in io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack %s: %v", path, err)
		}
		defer gz.Close()
		in = gz
	}

	dat, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	reads, err = parse(string(dat), demarcator)
	if err != nil {
		// parse doesn't know the path, fill it in for the error message
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}

	return reads, nil
}
