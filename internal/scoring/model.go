package scoring

// Round names one of the four diagnostic answer categories.
type Round string

const (
	RoundCoding      Round = "coding"
	RoundExplanation Round = "explanation"
	RoundRecruiter   Round = "recruiter"
	RoundBehavioral  Round = "behavioral"
)

// Rounds lists every round in report order. Weak areas are collected in this order.
var Rounds = []Round{RoundCoding, RoundExplanation, RoundRecruiter, RoundBehavioral}

// Dimension names one binary check inside a round breakdown.
type Dimension string

const (
	DimensionAttempt      Dimension = "attempt"
	DimensionCompleteness Dimension = "completeness"
	DimensionClarity      Dimension = "clarity"
	DimensionStructure    Dimension = "structure"
	DimensionConfidence   Dimension = "confidence"
)

// Dimensions lists every breakdown dimension in report order.
var Dimensions = []Dimension{
	DimensionAttempt,
	DimensionCompleteness,
	DimensionClarity,
	DimensionStructure,
	DimensionConfidence,
}

const (
	// MaxRoundScore is the best total a single round can reach.
	MaxRoundScore = 5
	// MaxScore is the best total across all rounds.
	MaxScore = 20
	// MaxWeakAreas caps the weak-area list.
	MaxWeakAreas = 5
)

// Languages are the coding languages offered by the diagnostic form.
// The language is informational and never affects the score.
var Languages = []string{"JavaScript", "Python", "Java"}

// CodingAnswer is the coding round input.
type CodingAnswer struct {
	Language    string `json:"language"`
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
}

// TextAnswer is the input for the free-text rounds.
type TextAnswer struct {
	Answer string `json:"answer"`
}

// Submission carries one answer per round.
type Submission struct {
	Coding      CodingAnswer `json:"coding"`
	Explanation TextAnswer   `json:"explanation"`
	Recruiter   TextAnswer   `json:"recruiter"`
	Behavioral  TextAnswer   `json:"behavioral"`
}

// Breakdown is the 0/1 scorecard of one round.
type Breakdown struct {
	Attempt      int `json:"attempt"`
	Completeness int `json:"completeness"`
	Clarity      int `json:"clarity"`
	Structure    int `json:"structure"`
	Confidence   int `json:"confidence"`
}

// Get returns the value of d, or 0 for an unknown dimension.
func (b Breakdown) Get(d Dimension) int {
	switch d {
	case DimensionAttempt:
		return b.Attempt
	case DimensionCompleteness:
		return b.Completeness
	case DimensionClarity:
		return b.Clarity
	case DimensionStructure:
		return b.Structure
	case DimensionConfidence:
		return b.Confidence
	}
	return 0
}

func (b *Breakdown) set(d Dimension, v int) {
	switch d {
	case DimensionAttempt:
		b.Attempt = v
	case DimensionCompleteness:
		b.Completeness = v
	case DimensionClarity:
		b.Clarity = v
	case DimensionStructure:
		b.Structure = v
	case DimensionConfidence:
		b.Confidence = v
	}
}

// Sum adds up all dimensions.
func (b Breakdown) Sum() int {
	return b.Attempt + b.Completeness + b.Clarity + b.Structure + b.Confidence
}

// RoundScore is a round total together with its breakdown.
type RoundScore struct {
	Total     int       `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// Scores holds one RoundScore per round.
type Scores struct {
	Coding      RoundScore `json:"coding"`
	Explanation RoundScore `json:"explanation"`
	Recruiter   RoundScore `json:"recruiter"`
	Behavioral  RoundScore `json:"behavioral"`
}

// Get returns the score for r.
func (s Scores) Get(r Round) RoundScore {
	switch r {
	case RoundCoding:
		return s.Coding
	case RoundExplanation:
		return s.Explanation
	case RoundRecruiter:
		return s.Recruiter
	case RoundBehavioral:
		return s.Behavioral
	}
	return RoundScore{}
}

// Total sums the round totals.
func (s Scores) Total() int {
	return s.Coding.Total + s.Explanation.Total + s.Recruiter.Total + s.Behavioral.Total
}

// Result is the full evaluation returned to callers.
type Result struct {
	Scores         Scores    `json:"scores"`
	TotalScore     int       `json:"totalScore"`
	MaxScore       int       `json:"maxScore"`
	Readiness      Readiness `json:"readiness"`
	ReadinessLabel string    `json:"readinessLabel"`
	WeakAreas      []string  `json:"weakAreas"`
}
