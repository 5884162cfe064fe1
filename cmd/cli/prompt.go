package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alpaca-ollama/internal/completion"
	"alpaca-ollama/internal/completion/usecase"
)

func newPromptCommand(root *rootOptions) *cobra.Command {
	var (
		stream     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "prompt [--stream] [--json=false] TEXT...",
		Short: "Send a prompt to the chat model",
		Long: `Sends the prompt as a single user message. Without --stream the server's
record is printed as-is; with --stream the concatenated content is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(root)
			if err != nil {
				return err
			}

			input := completion.CompleteInput{
				Prompt: strings.Join(args, " "),
				Stream: stream,
			}
			if cmd.Flags().Changed("json") {
				input.JSON = &jsonOutput
			}

			out, err := usecase.New(d.logger, d.client).Complete(cmd.Context(), input)
			if err != nil {
				return err
			}

			if out.Stream {
				fmt.Fprintln(cmd.OutOrStdout(), out.Content)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out.Record))
			return nil
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "Stream the answer and print the concatenated content")
	cmd.Flags().BoolVar(&jsonOutput, "json", true, "Ask the model for JSON output (default from ollama.json_output)")
	return cmd
}
