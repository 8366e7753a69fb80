package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	traceline "github.com/traceline/traceline-go"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <trace-id|header>",
	Short: "Decode a trace identifier or propagation header",
	Long: `Decode a trace identifier or a full propagation header and print its
fields. Unlike the library's parse, inspect is strict: malformed input is
reported and the command exits non-zero.

A whole header line pasted from logs or curl output is accepted too; the
leading name is stripped when it matches the configured header name.

Examples:
  traceline inspect 1-5759e988-bd862e3fe1be46a994272793
  traceline inspect "Root=1-5759e988-bd862e3fe1be46a994272793;Parent=53995c3f42cd8ad8;Sampled=1"
  traceline inspect "X-Amzn-Trace-Id: Root=1-5759e988-bd862e3fe1be46a994272793;Sampled=1"
  traceline inspect --output json 1-5759e988-bd862e3fe1be46a994272793`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

type inspectedTraceID struct {
	TraceID string `json:"trace_id"`
	Epoch   int64  `json:"epoch"`
	Time    string `json:"time"`
	Random  string `json:"random"`
}

type inspectedHeader struct {
	Root    inspectedTraceID  `json:"root"`
	Parent  string            `json:"parent,omitempty"`
	Sampled string            `json:"sampled,omitempty"`
	Extra   map[string]string `json:"extra,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	value := strings.TrimSpace(args[0])

	// Strip a pasted "Name: value" prefix matching the configured header name.
	if prefix := cfg.HeaderName + ":"; len(value) > len(prefix) && strings.EqualFold(value[:len(prefix)], prefix) {
		value = strings.TrimSpace(value[len(prefix):])
	}

	if strings.Contains(value, "=") {
		header := traceline.ParseTraceHeader(value)
		if !header.Root.IsValid() {
			return fmt.Errorf("header carries no usable Root: %q", value)
		}
		return emitHeader(cmd, header)
	}

	if !traceline.ValidateTraceID(value) {
		return fmt.Errorf("malformed trace ID: %q", value)
	}
	return emitTraceID(cmd, traceline.ParseTraceID(value))
}

func describeTraceID(id traceline.TraceID) inspectedTraceID {
	random := id.Random()
	return inspectedTraceID{
		TraceID: id.String(),
		Epoch:   id.Epoch(),
		Time:    id.Time().UTC().Format(time.RFC3339),
		Random:  fmt.Sprintf("%x", random[:]),
	}
}

func emitTraceID(cmd *cobra.Command, id traceline.TraceID) error {
	d := describeTraceID(id)
	text := fmt.Sprintf("Trace ID: %s\nEpoch:    %d (%s)\nRandom:   %s", d.TraceID, d.Epoch, d.Time, d.Random)
	return emit(cmd, text, d)
}

func emitHeader(cmd *cobra.Command, header traceline.TraceHeader) error {
	out := inspectedHeader{
		Root:    describeTraceID(header.Root),
		Sampled: string(header.Decision),
		Extra:   header.Extra,
	}
	if header.Parent.IsValid() {
		out.Parent = header.Parent.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Root:     %s\nEpoch:    %d (%s)\nRandom:   %s", out.Root.TraceID, out.Root.Epoch, out.Root.Time, out.Root.Random)
	if out.Parent != "" {
		fmt.Fprintf(&b, "\nParent:   %s", out.Parent)
	}
	if out.Sampled != "" {
		fmt.Fprintf(&b, "\nSampled:  %s", out.Sampled)
	}
	if len(out.Extra) > 0 {
		keys := make([]string, 0, len(out.Extra))
		for k := range out.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n%-9s %s", k+":", out.Extra[k])
		}
	}

	return emit(cmd, b.String(), out)
}
