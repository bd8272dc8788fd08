// Command claude-stream-format renders Claude Code stream-json output
// as short, icon-prefixed lines.
//
// It is a pipeline filter with no flags or arguments:
//
//	claude -p --output-format stream-json --verbose "prompt" | claude-stream-format
package main

import (
	"os"

	"github.com/spf13/cobra"

	streamformat "github.com/jemmyw/claude-stream-format"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "claude-stream-format",
		Short: "Render Claude Code stream-json output as readable lines",
		Long: `claude-stream-format reads the newline-delimited JSON emitted by
'claude --output-format stream-json' on stdin and prints one short,
icon-prefixed line per tool call, text block, and result.

Lines that are empty or not valid JSON are skipped silently, so a
truncated or noisy stream never stops the filter.`,
		Example: `  claude -p --output-format stream-json --verbose "fix the tests" | claude-stream-format`,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			streamformat.Run(os.Stdin, os.Stdout)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
