package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-matcher/internal/parsing"
)

func TestMatchEducation(t *testing.T) {
	tests := []struct {
		name      string
		candidate int
		required  int
		want      float64
	}{
		{"meets requirement", parsing.RankBachelor, parsing.RankBachelor, 1.0},
		{"exceeds requirement", parsing.RankMaster, parsing.RankBachelor, 1.0},
		{"one rank below", parsing.RankBachelor, parsing.RankMaster, 0.7},
		{"two ranks below", parsing.RankAssociate, parsing.RankMaster, 0.3},
		{"no degree vs bachelor", parsing.RankNone, parsing.RankBachelor, 0.3},
		{"no degree vs high school", parsing.RankNone, parsing.RankHighSchool, 0.3},
		{"requirement undeterminable", parsing.RankPhD, parsing.RankNone, 0.5},
		{"both undeterminable", parsing.RankNone, parsing.RankNone, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MatchEducation(tt.candidate, tt.required), 1e-9)
		})
	}
}
