package assessment

// IndependenceLevel is the ordered qualitative scale of how much human
// assistance an activity requires.
type IndependenceLevel string

const (
	Independent         IndependenceLevel = "independent"
	ModifiedIndependent IndependenceLevel = "modified_independent"
	Supervision         IndependenceLevel = "supervision"
	MinimalAssistance   IndependenceLevel = "minimal_assistance"
	ModerateAssistance  IndependenceLevel = "moderate_assistance"
	MaximalAssistance   IndependenceLevel = "maximal_assistance"
	TotalAssistance     IndependenceLevel = "total_assistance"

	// Sentinels excluded from the dependence ordering.
	NotApplicable IndependenceLevel = "not_applicable"
	NotAssessed   IndependenceLevel = "not_assessed"
)

// independenceRank orders levels from least to most dependent. Sentinels are
// absent; Rank returns -1 for them and for unknown strings.
var independenceRank = map[IndependenceLevel]int{
	Independent:         0,
	ModifiedIndependent: 1,
	Supervision:         2,
	MinimalAssistance:   3,
	ModerateAssistance:  4,
	MaximalAssistance:   5,
	TotalAssistance:     6,
}

// Rank returns the position of the level on the dependence scale, or -1 for
// sentinels and unrecognized values.
func (l IndependenceLevel) Rank() int {
	if r, ok := independenceRank[l]; ok {
		return r
	}
	return -1
}

// Rated reports whether the level participates in the dependence ordering.
func (l IndependenceLevel) Rated() bool {
	return l.Rank() >= 0
}

// Label returns the level as a human-readable phrase ("modified independent").
func (l IndependenceLevel) Label() string {
	out := make([]byte, 0, len(l))
	for i := 0; i < len(l); i++ {
		if l[i] == '_' {
			out = append(out, ' ')
			continue
		}
		out = append(out, l[i])
	}
	return string(out)
}

// WorstLevel returns the most dependent rated level among the inputs.
// Sentinels and unknown values are ignored; if nothing is rated, the empty
// level is returned.
func WorstLevel(levels ...IndependenceLevel) IndependenceLevel {
	var worst IndependenceLevel
	rank := -1
	for _, l := range levels {
		if r := l.Rank(); r > rank {
			worst, rank = l, r
		}
	}
	return worst
}
