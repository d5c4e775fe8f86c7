package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepscore/internal/scoring"
)

const submission = `{
	"coding": {"language": "JavaScript", "code": "return 1", "explanation": ""},
	"explanation": {"answer": "A queue is FIFO. It works by appending at the tail."},
	"recruiter": {"answer": ""},
	"behavioral": {"answer": ""}
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() { outputFmt = "table" })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScoreFromStdinJSON(t *testing.T) {
	out, err := run(t, submission, "score", "-o", "json")
	require.NoError(t, err)

	var res scoring.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Scores.Coding.Total)
	assert.Equal(t, 4, res.Scores.Explanation.Total)
	assert.Equal(t, scoring.NotReady, res.Readiness)
}

func TestScoreFromFileTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(submission), 0o644))

	out, err := run(t, "", "score", path, "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Score:       5/20")
	assert.Contains(t, out, "❌ Not Ready")
}

func TestScoreMissingRound(t *testing.T) {
	_, err := run(t, `{"coding":{},"explanation":{},"recruiter":{}}`, "score", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "behavioral")
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc")
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "prepscore 1.2.3 (abc)\n", out)
}
