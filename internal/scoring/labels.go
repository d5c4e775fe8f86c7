package scoring

// weakAreaLabels maps a failed dimension to the text shown to the candidate.
// Treat as read-only.
var weakAreaLabels = map[Round]map[Dimension]string{
	RoundCoding: {
		DimensionAttempt:      "Code submission",
		DimensionCompleteness: "Coding explanations",
		DimensionClarity:      "Explanation length",
		DimensionStructure:    "Code explanation structure",
		DimensionConfidence:   "Coding confidence",
	},
	RoundExplanation: {
		DimensionAttempt:      "Technical explanation",
		DimensionCompleteness: "Answer completeness",
		DimensionClarity:      "Explanation clarity",
		DimensionStructure:    "Answer structure",
		DimensionConfidence:   "Communication clarity",
	},
	RoundRecruiter: {
		DimensionAttempt:      "Self-introduction",
		DimensionCompleteness: "Career narrative",
		DimensionClarity:      "Introduction length",
		DimensionStructure:    "Timeline structure",
		DimensionConfidence:   "Professional ownership",
	},
	RoundBehavioral: {
		DimensionAttempt:      "Behavioral response",
		DimensionCompleteness: "Action-result connection",
		DimensionClarity:      "Story length",
		DimensionStructure:    "Behavioral storytelling",
		DimensionConfidence:   "Personal ownership",
	},
}
