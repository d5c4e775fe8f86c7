package scoring

import "prepscore/internal/textstats"

// Rule decides a single breakdown dimension from a round input.
type Rule[T any] struct {
	Dimension Dimension
	Check     func(T) bool
}

// Word-count windows, inclusive on both ends.
type wordRange struct{ min, max int }

func (w wordRange) contains(text string) bool {
	n := textstats.CountWords(text)
	return n >= w.min && n <= w.max
}

var (
	codingClarityWords      = wordRange{30, 200}
	explanationClarityWords = wordRange{50, 300}
	recruiterClarityWords   = wordRange{60, 250}
	behavioralClarityWords  = wordRange{70, 300}
)

const minExplanationSentences = 2

var (
	codingStepWords      = []string{"first", "then", "finally", "approach"}
	codingDecisionPhrase = []string{"i decided", "i used", "i implemented", "i chose"}

	explanationReasoning  = []string{"because", "for example", "works by"}
	explanationDefinitive = []string{" is ", " works", "happens when"}

	recruiterPast      = []string{"worked", "built", "developed", "created", "was", "had"}
	recruiterPresent   = []string{"currently", "now", "am", "working on", "at present"}
	recruiterFuture    = []string{"looking", "next", "want", "goal", "plan", "hoping", "seeking"}
	recruiterTimeline  = []string{"first", "then", "now", "after", "before"}
	recruiterOwnership = []string{"i built", "i led", "i handled", "i managed", "i created", "i developed"}

	behavioralActions = []string{"i did", "i fixed", "i resolved", "i implemented", "i handled", "i took"}
	behavioralResults = []string{"result", "outcome", "impact", "led to", "resulted in", "achieved"}
)

// starGroups are the situation, task, action and result cues of a STAR story.
var starGroups = [][]string{
	{"situation", "context", "background", "was working", "team was"},
	{"task", "responsible", "needed to", "had to", "goal was"},
	{"action", "i decided", "i started", "i began", "steps"},
	{"result", "outcome", "ended up", "finally", "ultimately"},
}

const minStarElements = 2

var codingRules = []Rule[CodingAnswer]{
	{DimensionAttempt, func(in CodingAnswer) bool {
		return textstats.HasContent(in.Code)
	}},
	{DimensionCompleteness, func(in CodingAnswer) bool {
		return textstats.HasContent(in.Code) && textstats.HasContent(in.Explanation)
	}},
	{DimensionClarity, func(in CodingAnswer) bool {
		return codingClarityWords.contains(in.Explanation)
	}},
	{DimensionStructure, func(in CodingAnswer) bool {
		return textstats.ContainsAny(in.Explanation, codingStepWords...) ||
			textstats.HasParagraphs(in.Explanation) ||
			textstats.HasNumberedOrBulletedSteps(in.Explanation)
	}},
	{DimensionConfidence, func(in CodingAnswer) bool {
		return textstats.ContainsAny(in.Explanation, codingDecisionPhrase...) &&
			!textstats.HasHedging(in.Explanation)
	}},
}

var explanationRules = []Rule[TextAnswer]{
	{DimensionAttempt, answered},
	{DimensionCompleteness, func(in TextAnswer) bool {
		return textstats.CountSentences(in.Answer) >= minExplanationSentences
	}},
	{DimensionClarity, func(in TextAnswer) bool {
		return explanationClarityWords.contains(in.Answer)
	}},
	{DimensionStructure, func(in TextAnswer) bool {
		return textstats.ContainsAny(in.Answer, explanationReasoning...) ||
			textstats.HasParagraphs(in.Answer)
	}},
	{DimensionConfidence, func(in TextAnswer) bool {
		return textstats.ContainsAny(in.Answer, explanationDefinitive...) &&
			!textstats.HasHedging(in.Answer)
	}},
}

var recruiterRules = []Rule[TextAnswer]{
	{DimensionAttempt, answered},
	{DimensionCompleteness, func(in TextAnswer) bool {
		return textstats.ContainsAny(in.Answer, recruiterPast...) &&
			textstats.ContainsAny(in.Answer, recruiterPresent...) &&
			textstats.ContainsAny(in.Answer, recruiterFuture...)
	}},
	{DimensionClarity, func(in TextAnswer) bool {
		return recruiterClarityWords.contains(in.Answer)
	}},
	{DimensionStructure, func(in TextAnswer) bool {
		return textstats.ContainsAny(in.Answer, recruiterTimeline...) ||
			textstats.HasParagraphs(in.Answer)
	}},
	{DimensionConfidence, func(in TextAnswer) bool {
		return textstats.ContainsAny(in.Answer, recruiterOwnership...) &&
			!textstats.HasHedging(in.Answer)
	}},
}

var behavioralRules = []Rule[TextAnswer]{
	{DimensionAttempt, answered},
	{DimensionCompleteness, func(in TextAnswer) bool {
		return textstats.ContainsAny(in.Answer, behavioralActions...) &&
			textstats.ContainsAny(in.Answer, behavioralResults...)
	}},
	{DimensionClarity, func(in TextAnswer) bool {
		return behavioralClarityWords.contains(in.Answer)
	}},
	{DimensionStructure, func(in TextAnswer) bool {
		return starElements(in.Answer) >= minStarElements
	}},
	{DimensionConfidence, func(in TextAnswer) bool {
		firstPerson := textstats.HasFirstPerson(in.Answer)
		loneWe := textstats.MentionsWe(in.Answer) && !firstPerson
		return firstPerson && !loneWe && !textstats.HasHedging(in.Answer)
	}},
}

func answered(in TextAnswer) bool {
	return textstats.HasContent(in.Answer)
}

// starElements counts how many STAR groups have at least one cue in text.
func starElements(text string) int {
	n := 0
	for _, group := range starGroups {
		if textstats.ContainsAny(text, group...) {
			n++
		}
	}
	return n
}
