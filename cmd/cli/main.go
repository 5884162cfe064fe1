package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"alpaca-ollama/config"
	pkgLog "alpaca-ollama/pkg/log"
	"alpaca-ollama/pkg/ollama"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "alpaca",
		Short:         "Rank sentences and run prompts against a local Ollama server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "url", "", "Ollama base URL (overrides config and OLLAMA_URL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Per-request timeout (overrides ollama.timeout)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests to stderr at debug level")

	cmd.AddCommand(newRankCommand(opts))
	cmd.AddCommand(newPromptCommand(opts))
	return cmd
}

// deps is what a subcommand needs to talk to the server.
type deps struct {
	cfg    *config.Config
	logger pkgLog.Logger
	client ollama.IOllama
}

func buildDeps(opts *rootOptions) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.baseURL != "" {
		cfg.Ollama.BaseURL = opts.baseURL
	}
	if opts.timeout > 0 {
		cfg.Ollama.Timeout = opts.timeout
	}

	level := pkgLog.LevelWarn
	if opts.verbose {
		level = pkgLog.LevelDebug
	}
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     pkgLog.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	client, err := ollama.New(ollama.Config{
		BaseURL:     cfg.Ollama.BaseURL,
		EmbedModel:  cfg.Ollama.EmbedModel,
		PromptModel: cfg.Ollama.PromptModel,
		Timeout:     cfg.Ollama.Timeout,
		JSONOutput:  &cfg.Ollama.JSONOutput,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init ollama client: %w", err)
	}

	return &deps{cfg: cfg, logger: logger, client: client}, nil
}
