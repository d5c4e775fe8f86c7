package scoring

// Readiness is the overall tier derived from the total score.
type Readiness string

const (
	NotReady   Readiness = "not_ready"
	Borderline Readiness = "borderline"
	Ready      Readiness = "ready"
)

const (
	readyThreshold      = 15
	borderlineThreshold = 8
)

// Classify maps a total score to its readiness tier.
func Classify(total int) Readiness {
	switch {
	case total >= readyThreshold:
		return Ready
	case total >= borderlineThreshold:
		return Borderline
	default:
		return NotReady
	}
}

// Label is the display string for the tier.
func (r Readiness) Label() string {
	switch r {
	case Ready:
		return "✅ Ready"
	case Borderline:
		return "⚠️ Borderline"
	default:
		return "❌ Not Ready"
	}
}

// Recommendation is the suggested next step for a candidate.
type Recommendation string

const (
	RecommendMockInterviews Recommendation = "mock_ok"
	RecommendGuidedPrep     Recommendation = "guided_prep"
)

// Advice explains a readiness tier and what to do next.
type Advice struct {
	Explanation    string         `json:"explanation"`
	Recommendation Recommendation `json:"recommendation"`
	NextStep       string         `json:"nextStep"`
}

// AdviceFor returns the advice shown alongside r.
func AdviceFor(r Readiness) Advice {
	switch r {
	case Ready:
		return Advice{
			Explanation:    "Your responses show clear thinking, structure, and ownership.",
			Recommendation: RecommendMockInterviews,
			NextStep:       "You are ready to take mock interviews or continue refining your skills.",
		}
	case Borderline:
		return Advice{
			Explanation:    "You show potential, but some answers lack clarity or structure.",
			Recommendation: RecommendGuidedPrep,
			NextStep:       "Guided Preparation is recommended, but mock interviews are available.",
		}
	default:
		return Advice{
			Explanation:    "Your answers indicate gaps in explanation, structure, or confidence.",
			Recommendation: RecommendGuidedPrep,
			NextStep:       "We recommend starting with Guided Preparation before mock interviews.",
		}
	}
}
