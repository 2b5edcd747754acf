// Package glue turns overlapping genomic reads into a single assembled contig.
package glue

import (
	"fmt"
	"strings"
)

// GlueError is an inconsistency between a chain and the contig assembled
// from it so far: an overlap claims more bases than have been laid down.
// It means the chain handed to glue was malformed, not that the input
// records were bad.
type GlueError struct {
	// Left is the name of the read on the upstream side of the bad junction
	Left string

	// Right is the name of the read that failed to attach
	Right string

	// Length is the junction's claimed overlap length
	Length int

	// Assembled is the number of bases laid down when the fold failed
	Assembled int
}

func (e *GlueError) Error() string {
	return fmt.Sprintf(
		"failed to glue %s onto %s: overlap of %d exceeds the %d assembled bases",
		e.Right, e.Left, e.Length, e.Assembled,
	)
}

// glue folds a chain of overlaps into a single contig. The first overlap's
// left read seeds the contig and each junction trims its overlap length off
// the end before appending the right read, so shared bases appear once.
// An empty chain folds to an empty contig.
func glue(chain []Overlap) (string, error) {
	if len(chain) == 0 {
		return "", nil
	}

	contig := []byte(chain[0].Left.Seq)
	for _, o := range chain {
		if o.Length > len(contig) {
			return "", &GlueError{
				Left:      o.Left.ID,
				Right:     o.Right.ID,
				Length:    o.Length,
				Assembled: len(contig),
			}
		}

		contig = append(contig[:len(contig)-o.Length], o.Right.Seq...)
	}

	return string(contig), nil
}

// validSuperstring is whether every read's bases appear intact somewhere in
// the contig. Vacuously true when there are no reads.
func validSuperstring(contig string, reads []Read) bool {
	for _, r := range reads {
		if !strings.Contains(contig, r.Seq) {
			return false
		}
	}

	return true
}
