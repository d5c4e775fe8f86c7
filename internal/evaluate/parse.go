package evaluate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"prepscore/internal/scoring"
)

var (
	ErrInvalidJSON       = errors.New("invalid JSON body")
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrMissingRounds     = errors.New("missing required rounds")
)

// MissingRoundsError lists the rounds absent (or null) in a submission.
// It matches ErrMissingRounds with errors.Is.
type MissingRoundsError struct {
	Rounds []scoring.Round
}

func (e *MissingRoundsError) Error() string {
	names := make([]string, len(e.Rounds))
	for i, r := range e.Rounds {
		names[i] = string(r)
	}
	return fmt.Sprintf("missing rounds: %s", strings.Join(names, ", "))
}

func (e *MissingRoundsError) Is(target error) bool {
	return target == ErrMissingRounds
}

// DecodeSubmission validates raw against the submission schema and decodes it.
// Every round object must be present and non-null; string fields may be empty or absent.
func DecodeSubmission(raw []byte) (scoring.Submission, error) {
	if err := validateSubmission(raw); err != nil {
		return scoring.Submission{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	var sub scoring.Submission
	if err := dec.Decode(&sub); err != nil {
		return scoring.Submission{}, ErrInvalidJSON
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return scoring.Submission{}, ErrInvalidJSON
	}
	return sub, nil
}

func validateSubmission(raw []byte) error {
	if !json.Valid(raw) {
		return ErrInvalidJSON
	}
	result, err := compiledSubmissionSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if result.Valid() {
		return nil
	}

	var missing []scoring.Round
	var problems []string
	for _, e := range result.Errors() {
		if r, ok := missingRound(e); ok {
			missing = append(missing, r)
			continue
		}
		problems = append(problems, e.String())
	}
	if len(missing) > 0 {
		slices.SortFunc(missing, func(a, b scoring.Round) int {
			return slices.Index(scoring.Rounds, a) - slices.Index(scoring.Rounds, b)
		})
		return &MissingRoundsError{Rounds: slices.Compact(missing)}
	}
	return fmt.Errorf("%w: %s", ErrInvalidSubmission, strings.Join(problems, "; "))
}

// missingRound reports whether e is a round that was left out or sent as null.
func missingRound(e gojsonschema.ResultError) (scoring.Round, bool) {
	var name string
	switch e.Type() {
	case "required":
		name, _ = e.Details()["property"].(string)
	case "invalid_type":
		if e.Value() != nil {
			return "", false
		}
		name = e.Field()
	default:
		return "", false
	}
	r := scoring.Round(name)
	if !slices.Contains(scoring.Rounds, r) {
		return "", false
	}
	return r, true
}
