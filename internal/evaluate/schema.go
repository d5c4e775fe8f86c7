package evaluate

import "github.com/xeipuuv/gojsonschema"

func textAnswerSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
		},
	}
}

func submissionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"required": []any{
			"coding",
			"explanation",
			"recruiter",
			"behavioral",
		},
		"properties": map[string]any{
			"coding": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"language":    map[string]any{"type": "string"},
					"code":        map[string]any{"type": "string"},
					"explanation": map[string]any{"type": "string"},
				},
			},
			"explanation": textAnswerSchema(),
			"recruiter":   textAnswerSchema(),
			"behavioral":  textAnswerSchema(),
		},
	}
}

var compiledSubmissionSchema = mustCompileSchema(submissionSchema())

func mustCompileSchema(schema map[string]any) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic("evaluate: invalid submission schema: " + err.Error())
	}
	return s
}
