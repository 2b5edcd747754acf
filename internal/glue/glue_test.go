package glue

import (
	"errors"
	"testing"
)

func Test_glue(t *testing.T) {
	r1 := Read{ID: "r1", Seq: "ATTAGACCTG"}
	r2 := Read{ID: "r2", Seq: "AGACCTGCCG"}
	r3 := Read{ID: "r3", Seq: "CCTGCCGTAA"}

	type args struct {
		chain []Overlap
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"empty chain",
			args{[]Overlap{}},
			"",
		},
		{
			"single junction",
			args{[]Overlap{
				Overlap{Left: r1, Right: r2, Length: 7},
			}},
			"ATTAGACCTGCCG",
		},
		{
			"three reads with seven base junctions",
			args{[]Overlap{
				Overlap{Left: r1, Right: r2, Length: 7},
				Overlap{Left: r2, Right: r3, Length: 7},
			}},
			"ATTAGACCTGCCGTAA",
		},
		{
			"zero length junction concatenates",
			args{[]Overlap{
				Overlap{Left: r1, Right: r3, Length: 0},
			}},
			"ATTAGACCTGCCTGCCGTAA",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := glue(tt.args.chain)
			if err != nil {
				t.Errorf("glue() err = %v", err)
			}

			if got != tt.want {
				t.Errorf("glue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_glue_malformed(t *testing.T) {
	chain := []Overlap{
		Overlap{
			Left:   Read{ID: "a", Seq: "ACGT"},
			Right:  Read{ID: "b", Seq: "ACGTACGT"},
			Length: 6, // longer than the four bases laid down
		},
	}

	_, err := glue(chain)
	if err == nil {
		t.Fatal("glue() err = nil, want a GlueError")
	}

	var gerr *GlueError
	if !errors.As(err, &gerr) {
		t.Fatalf("glue() err = %v, want a GlueError", err)
	}

	if gerr.Left != "a" || gerr.Right != "b" || gerr.Length != 6 || gerr.Assembled != 4 {
		t.Errorf("GlueError = %+v, want {a b 6 4}", gerr)
	}
}

func Test_validSuperstring(t *testing.T) {
	type args struct {
		contig string
		reads  []Read
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			"every read appears",
			args{
				"ATTAGACCTGCCGTAA",
				[]Read{
					Read{ID: "r1", Seq: "ATTAGACCTG"},
					Read{ID: "r2", Seq: "AGACCTGCCG"},
					Read{ID: "r3", Seq: "CCTGCCGTAA"},
				},
			},
			true,
		},
		{
			"a read is missing",
			args{
				"ATTAGACCTG",
				[]Read{
					Read{ID: "r1", Seq: "ATTAGACCTG"},
					Read{ID: "r2", Seq: "GATTACA"},
				},
			},
			false,
		},
		{
			"no reads at all",
			args{"", []Read{}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validSuperstring(tt.args.contig, tt.args.reads); got != tt.want {
				t.Errorf("validSuperstring() = %v, want %v", got, tt.want)
			}
		})
	}
}
