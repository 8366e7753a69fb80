package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// executeCommand runs the CLI with the given stdin and args, returning
// captured stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Package-level flag values persist across executions; start each run
	// from defaults.
	output = ""
	verbose = false
	createCount = 1
	createHeader = false
	createSampled = false
	validateSegments = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootOutputFlag(t *testing.T) {
	t.Run("rejects an unknown output format", func(t *testing.T) {
		_, err := executeCommand(t, "", "create", "-o", "xml")

		assert.Error(t, err)
	})

	t.Run("accepts json", func(t *testing.T) {
		out, err := executeCommand(t, "", "create", "-o", "json")

		assert.NoError(t, err)
		assert.Contains(t, out, `"trace_id"`)
	})
}
