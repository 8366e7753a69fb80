package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	traceline "github.com/traceline/traceline-go"
)

var validateSegments bool

var validateCmd = &cobra.Command{
	Use:   "validate [value...]",
	Short: "Check trace identifiers for well-formedness",
	Long: `Check trace identifiers for well-formedness. Values come from the
arguments, or one per line from stdin when no arguments are given. The
command prints a verdict per value and exits non-zero if any value is
malformed.

Examples:
  traceline validate 1-5759e988-bd862e3fe1be46a994272793
  traceline validate --segments 53995c3f42cd8ad8
  grep trace_id app.log | cut -f2 | traceline validate`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateSegments, "segments", false, "Validate segment IDs instead of trace IDs")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	values := args
	if len(values) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			values = append(values, line)
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("no values to validate")
	}

	check := traceline.ValidateTraceID
	if validateSegments {
		check = traceline.ValidateSegmentID
	}

	invalid := 0
	for _, value := range values {
		verdict := "valid"
		if !check(value) {
			verdict = "invalid"
			invalid++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", verdict, value)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d values malformed", invalid, len(values))
	}
	return nil
}
