// Package scoring turns diagnostic answers into round breakdowns, a readiness tier
// and a short list of weak areas. It is a fixed rule table: no state, no I/O.
package scoring

// Evaluate scores every round of sub and aggregates the result.
// The same submission always yields the same result.
func Evaluate(sub Submission) Result {
	scores := ScoreAll(sub)
	total := scores.Total()
	readiness := Classify(total)
	return Result{
		Scores:         scores,
		TotalScore:     total,
		MaxScore:       MaxScore,
		Readiness:      readiness,
		ReadinessLabel: readiness.Label(),
		WeakAreas:      WeakAreas(scores),
	}
}

// WeakAreas lists labels of failed dimensions, attempt excluded, walking rounds and
// dimensions in report order. Labels are deduplicated by text, so two rounds sharing a
// label contribute it once. At most MaxWeakAreas labels are returned.
func WeakAreas(scores Scores) []string {
	return weakAreas(scores, weakAreaLabels)
}

func weakAreas(scores Scores, labels map[Round]map[Dimension]string) []string {
	out := make([]string, 0, MaxWeakAreas)
	seen := make(map[string]struct{}, MaxWeakAreas)
	for _, r := range Rounds {
		b := scores.Get(r).Breakdown
		for _, d := range Dimensions {
			if len(out) == MaxWeakAreas {
				return out
			}
			if d == DimensionAttempt || b.Get(d) != 0 {
				continue
			}
			label, ok := labels[r][d]
			if !ok {
				continue
			}
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}
