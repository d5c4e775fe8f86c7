package scoring

// scoreRound runs every rule against in. Rules never see each other's outcome.
func scoreRound[T any](in T, rules []Rule[T]) RoundScore {
	var b Breakdown
	for _, r := range rules {
		if r.Check(in) {
			b.set(r.Dimension, 1)
		}
	}
	return RoundScore{Total: b.Sum(), Breakdown: b}
}

// ScoreCoding scores the coding round.
func ScoreCoding(in CodingAnswer) RoundScore {
	return scoreRound(in, codingRules)
}

// ScoreExplanation scores the technical explanation round.
func ScoreExplanation(in TextAnswer) RoundScore {
	return scoreRound(in, explanationRules)
}

// ScoreRecruiter scores the recruiter self-introduction round.
func ScoreRecruiter(in TextAnswer) RoundScore {
	return scoreRound(in, recruiterRules)
}

// ScoreBehavioral scores the behavioral story round.
func ScoreBehavioral(in TextAnswer) RoundScore {
	return scoreRound(in, behavioralRules)
}

// ScoreAll scores each round of sub.
func ScoreAll(sub Submission) Scores {
	return Scores{
		Coding:      ScoreCoding(sub.Coding),
		Explanation: ScoreExplanation(sub.Explanation),
		Recruiter:   ScoreRecruiter(sub.Recruiter),
		Behavioral:  ScoreBehavioral(sub.Behavioral),
	}
}
