package game

import "testing"

func TestLowestIndices(t *testing.T) {
	scores := []float32{3, -1, 2, -1, 5, 0}

	got := LowestIndices(scores, 3)
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("LowestIndices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LowestIndices = %v, want %v", got, want)
		}
	}

	if got := LowestIndices(scores, 10); len(got) != len(scores) {
		t.Errorf("LowestIndices with n > len = %v", got)
	}
}

func TestPairings(t *testing.T) {
	tests := []struct {
		name   string
		scores []float32
		want   []Pairing
	}{
		{
			name:   "distinct",
			scores: []float32{1, 4, 0, 3, 2, 5},
			// ascending: 2,0,4 | 3,1,5 -> donors by score desc: 5,1,3
			want: []Pairing{{2, 5}, {0, 1}, {4, 3}},
		},
		{
			name:   "all equal",
			scores: []float32{0, 0, 0, 0},
			want:   []Pairing{{0, 2}, {1, 3}},
		},
		{
			name:   "odd population keeps the middle",
			scores: []float32{1, 2, 3, 4, 5},
			want:   []Pairing{{0, 4}, {1, 3}},
		},
		{
			name:   "single",
			scores: []float32{7},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pairings(tt.scores)
			if len(got) != len(tt.want) {
				t.Fatalf("Pairings = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Pairings = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestPairingsDisjoint(t *testing.T) {
	scores := []float32{0.5, -2, 3, 3, 1, -0.1, 8, 2, 2, -5}
	replaced := map[int]bool{}
	donors := map[int]bool{}
	for _, p := range Pairings(scores) {
		if replaced[p.Replace] {
			t.Errorf("candidate %d replaced twice", p.Replace)
		}
		replaced[p.Replace] = true
		donors[p.Donor] = true
		if scores[p.Donor] < scores[p.Replace] {
			t.Errorf("donor %d scored below replaced %d", p.Donor, p.Replace)
		}
	}
	for r := range replaced {
		if donors[r] {
			t.Errorf("candidate %d is both donor and replaced", r)
		}
	}
	if len(replaced) != len(scores)/2 {
		t.Errorf("%d candidates replaced, want %d", len(replaced), len(scores)/2)
	}
}
