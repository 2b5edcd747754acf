package glue

import (
	"reflect"
	"testing"
)

func Test_buildChain(t *testing.T) {
	anchor := Read{ID: "anchor", Seq: "CCGGTTAA"}
	left1 := Read{ID: "left1", Seq: "ACCCGGTT"}
	left2 := Read{ID: "left2", Seq: "GTACCCGG"}
	right1 := Read{ID: "right1", Seq: "GGTTAACT"}
	right2 := Read{ID: "right2", Seq: "TTAACTGG"}

	type args struct {
		start Read
		pool  []Read
		dir   direction
	}
	tests := []struct {
		name string
		args args
		want []Overlap
	}{
		{
			"rightward growth",
			args{anchor, []Read{left1, left2, right1, right2}, rightward},
			[]Overlap{
				Overlap{Left: anchor, Right: right1, Length: 6},
				Overlap{Left: right1, Right: right2, Length: 6},
			},
		},
		{
			"leftward growth",
			args{anchor, []Read{left1, left2, right1, right2}, leftward},
			[]Overlap{
				Overlap{Left: left2, Right: left1, Length: 6},
				Overlap{Left: left1, Right: anchor, Length: 6},
			},
		},
		{
			"no gluable overlaps",
			args{anchor, []Read{Read{ID: "far", Seq: "TTTTCCCC"}}, rightward},
			[]Overlap{},
		},
		{
			"empty pool",
			args{anchor, []Read{}, rightward},
			[]Overlap{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildChain(tt.args.start, tt.args.pool, tt.args.dir); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildChain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_bestOverlap_ties(t *testing.T) {
	current := Read{ID: "cur", Seq: "AACCGGTT"}
	first := Read{ID: "first", Seq: "CCGGTTAA"}
	second := Read{ID: "second", Seq: "CCGGTTCC"}

	// both candidates share six bases with current's suffix
	best, found := bestOverlap(current, []Read{first, second}, rightward)
	if !found {
		t.Fatal("bestOverlap() found = false, want true")
	}

	if best.Right.ID != "first" {
		t.Errorf("bestOverlap() picked %s, want the earlier read in pool order", best.Right.ID)
	}

	if best.Length != 6 {
		t.Errorf("bestOverlap() length = %d, want 6", best.Length)
	}
}

func Test_removeRead(t *testing.T) {
	a := Read{ID: "a", Seq: "AAAA"}
	b := Read{ID: "b", Seq: "CCCC"}
	c := Read{ID: "c", Seq: "GGGG"}

	type args struct {
		pool []Read
		r    Read
	}
	tests := []struct {
		name string
		args args
		want []Read
	}{
		{
			"removes the middle read",
			args{[]Read{a, b, c}, b},
			[]Read{a, c},
		},
		{
			"only the first match goes",
			args{[]Read{a, b, a}, a},
			[]Read{b, a},
		},
		{
			"absent read leaves the pool alone",
			args{[]Read{a, b}, c},
			[]Read{a, b},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := removeRead(tt.args.pool, tt.args.r); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("removeRead() = %v, want %v", got, tt.want)
			}
		})
	}
}
