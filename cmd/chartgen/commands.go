package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"chartgen/internal/app"
	"chartgen/internal/chart"
	"chartgen/internal/config"
	"chartgen/internal/schema"
)

var errInvalidDocument = errors.New("document does not match the chart schema")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chartgen",
		Short: "Generate and validate ECharts options",
		Long: `chartgen asks an OpenAI-compatible model for ECharts options and checks
the answer against a JSON Schema before printing it.

Settings come from the environment or a .env file (LLM_BASE_URL, LLM_MODEL,
LLM_TRANSPORT, LLM_TIMEOUT, SCHEMA_PATH, ...); flags override them.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("schema", "", "JSON Schema file (default: embedded ECharts schema)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(newGenerateCmd(), newValidateCmd())
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <query>",
		Short: "Generate chart options for a natural-language query",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	cmd.Flags().String("base-url", "", "LLM endpoint base URL")
	cmd.Flags().String("model", "", "Model identifier")
	cmd.Flags().String("transport", "", "Transport implementation (http, openai)")
	cmd.Flags().Duration("timeout", 0, "Per-call timeout")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a chart options document; use - to read stdin",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
}

// loadConfig reads the environment and applies any flags the user set.
// The model settings are only checked when the command calls the model.
func loadConfig(cmd *cobra.Command, callsModel bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("schema") {
		cfg.SchemaPath, _ = flags.GetString("schema")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if callsModel {
		if flags.Changed("base-url") {
			cfg.LLMBaseURL, _ = flags.GetString("base-url")
		}
		if flags.Changed("model") {
			cfg.LLMModel, _ = flags.GetString("model")
		}
		if flags.Changed("transport") {
			cfg.LLMTransport, _ = flags.GetString("transport")
		}
		if flags.Changed("timeout") {
			cfg.LLMTimeout, _ = flags.GetDuration("timeout")
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	// stdout carries the document, so logs go to stderr.
	slog.SetDefault(app.NewLogger(cfg.LogLevel, "text", cmd.ErrOrStderr()))
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}

	generator, _, err := app.BuildGenerator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout)
	defer cancel()

	options, err := generator.Generate(ctx, args[0])
	if err != nil {
		gerr := chart.Classify(err)
		for _, v := range gerr.Violations {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", v)
		}
		return gerr
	}
	return writeIndented(cmd.OutOrStdout(), options)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}

	validator, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	res := validator.Validate(doc)
	if res.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	}
	for _, v := range res.Violations {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", v)
	}
	if res.Truncated {
		fmt.Fprintf(cmd.OutOrStdout(), "(only the first %d violations are shown)\n", schema.MaxViolations)
	}
	return errInvalidDocument
}

func readDocument(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	doc, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return doc, nil
}

func writeIndented(w io.Writer, doc json.RawMessage) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}
