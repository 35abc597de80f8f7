package board

import "testing"

func TestCandidatesBasics(t *testing.T) {
	var c Candidates
	if !c.IsEmpty() {
		t.Error("zero value should be empty")
	}
	c = c.Set(3).Set(7)
	if !c.Has(3) || !c.Has(7) {
		t.Error("Set should make digits candidates")
	}
	if c.Has(1) {
		t.Error("unset digit should not be a candidate")
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.Count())
	}
	if !c.IsBivalue() {
		t.Error("two candidates should be bi-value")
	}
	c = c.Clear(3)
	if c.Has(3) {
		t.Error("Clear should remove the digit")
	}
	if !c.IsSolved() {
		t.Error("single remaining candidate should be solved")
	}
	if c.Value() != 7 {
		t.Errorf("Value() = %d, want 7", c.Value())
	}
}

func TestCandidatesEmptyIsNotSolved(t *testing.T) {
	var c Candidates
	if c.IsSolved() {
		t.Error("the empty mask must not report solved (m != 0 is required)")
	}
	if c.Value() != 0 {
		t.Errorf("Value() of empty mask = %d, want 0", c.Value())
	}
}

func TestCandidatesSetOperations(t *testing.T) {
	a := AllCandidates.Subtract(Of(1)).Subtract(Of(2)) // {3..9}
	bMask := Of(1).Union(Of(2)).Union(Of(3))           // {1,2,3}

	if got := a.Intersect(bMask).Values(); len(got) != 1 || got[0] != 3 {
		t.Errorf("Intersect = %v, want [3]", got)
	}
	if got := a.Union(bMask); got != AllCandidates {
		t.Errorf("Union = %v, want AllCandidates", got)
	}
}

func TestCandidatesValues(t *testing.T) {
	c := Of(1).Union(Of(5)).Union(Of(9))
	got := c.Values()
	want := []int{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCandidatesString(t *testing.T) {
	var c Candidates
	if c.String() != "{}" {
		t.Errorf("String() of empty = %q, want {}", c.String())
	}
	c = Of(2).Union(Of(4))
	if c.String() != "{2,4}" {
		t.Errorf("String() = %q, want {2,4}", c.String())
	}
}
