package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"prepscore/internal/config"
	"prepscore/internal/evaluate"
	"prepscore/internal/output"
	"prepscore/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a diagnostic submission",
	Long: `Read a submission JSON document and print its evaluation.

The document has the same shape as the HTTP request body:
  {"coding": {...}, "explanation": {...}, "recruiter": {...}, "behavioral": {...}}

Examples:
  prepscore score answers.json
  prepscore score -o json < answers.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open submission: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(io.LimitReader(in, config.MaxCLIInputBytes+1))
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}
	if len(raw) > config.MaxCLIInputBytes {
		return fmt.Errorf("submission exceeds %d bytes", config.MaxCLIInputBytes)
	}

	sub, err := evaluate.DecodeSubmission(raw)
	if err != nil {
		var missing *evaluate.MissingRoundsError
		if errors.As(err, &missing) {
			return fmt.Errorf("all four rounds must be submitted: %w", err)
		}
		return err
	}

	res, err := evaluate.Run(scoring.Evaluate, sub)
	if err != nil {
		return err
	}
	return output.Write(cmd.OutOrStdout(), outputFmt, res)
}
