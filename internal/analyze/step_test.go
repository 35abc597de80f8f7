package analyze

import (
	"encoding/json"
	"testing"
)

func TestTechniqueNames(t *testing.T) {
	names := map[string]string{
		TechniqueNone:             "none",
		TechniqueNakedSingle:      "naked single",
		TechniqueHiddenSingle:     "hidden single",
		TechniqueNakedPair:        "naked pair",
		TechniqueNakedTriple:      "naked triple",
		TechniqueNakedQuad:        "naked quad",
		TechniqueLockedCandidates: "locked candidates",
		TechniqueHiddenPair:       "hidden pair",
		TechniqueHiddenTriple:     "hidden triple",
		TechniqueHiddenQuad:       "hidden quad",
		TechniqueXWing:            "x-wing",
		TechniqueYWing:            "y-wing",
		TechniqueSimpleColoring:   "simple coloring",
	}
	for got, want := range names {
		if got != want {
			t.Errorf("technique name %q, want %q", got, want)
		}
	}
}

func TestStepMarshalJSON(t *testing.T) {
	cases := []struct {
		step Step
		want string
	}{
		{
			Step{Action: ActionSolve},
			`{"action":"solve"}`,
		},
		{
			Step{Action: ActionEliminate, Technique: TechniqueHiddenSingle, Indexes: []int{0}, Values: []int{1}, Reason: "test 2"},
			`{"action":"eliminate","indexes":[0],"reason":"test 2","technique":"hidden single","values":[1]}`,
		},
		{
			Step{Action: ActionStuck, Technique: TechniqueHiddenPair, Indexes: []int{2, 3}, Values: []int{4, 5}, Reason: "test 3"},
			`{"action":"stuck","indexes":[2,3],"reason":"test 3","technique":"hidden pair","values":[4,5]}`,
		},
		{
			Step{Action: ActionDone, Technique: TechniqueHiddenTriple, Reason: "test 4"},
			`{"action":"done","reason":"test 4","technique":"hidden triple"}`,
		},
	}
	for _, c := range cases {
		out, err := json.Marshal(c.step)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(out) != c.want {
			t.Errorf("Marshal = %s, want %s", out, c.want)
		}
	}
}
