package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	traceline "github.com/traceline/traceline-go"
	"github.com/traceline/traceline-go/internal/logger"
)

var (
	createCount   int
	createHeader  bool
	createSampled bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate new trace identifiers",
	Long: `Generate one or more new trace identifiers.

Examples:
  # A single trace ID
  traceline create

  # Five trace IDs
  traceline create -n 5

  # A ready-to-paste propagation header with a fresh parent segment
  traceline create --header --sampled`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().IntVarP(&createCount, "count", "n", 1, "Number of identifiers to generate")
	createCmd.Flags().BoolVar(&createHeader, "header", false, "Emit a full propagation header line")
	createCmd.Flags().BoolVar(&createSampled, "sampled", false, "Mark generated headers as sampled")
}

type createdTraceID struct {
	TraceID string `json:"trace_id"`
}

type createdHeader struct {
	Name    string `json:"name"`
	Header  string `json:"header"`
	Root    string `json:"root"`
	Parent  string `json:"parent"`
	Sampled string `json:"sampled"`
}

func runCreate(cmd *cobra.Command, args []string) error {
	if createCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", createCount)
	}
	cmd.SilenceUsage = true

	for i := 0; i < createCount; i++ {
		id := traceline.NewTraceID()
		logger.WithTraceID(id.String()).Debug("generated identifier")

		if !createHeader {
			if err := emit(cmd, id.String(), createdTraceID{TraceID: id.String()}); err != nil {
				return err
			}
			continue
		}

		header := traceline.TraceHeader{
			Root:     id,
			Parent:   traceline.NewSegmentID(),
			Decision: traceline.NotSampled,
		}
		if createSampled {
			header.Decision = traceline.Sampled
		}

		out := createdHeader{
			Name:    cfg.HeaderName,
			Header:  header.String(),
			Root:    header.Root.String(),
			Parent:  header.Parent.String(),
			Sampled: string(header.Decision),
		}
		if err := emit(cmd, cfg.HeaderName+": "+header.String(), out); err != nil {
			return err
		}
	}

	return nil
}
