package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/phrazzld/devai/internal/config"
	"github.com/phrazzld/devai/internal/platform/logger"
)

// defaultEnvFile is loaded when present; a missing default file is not an error.
const defaultEnvFile = ".env"

// app holds the state shared by every command of one invocation.
type app struct {
	configFile string
	logLevel   string
	envFile    string

	cfg          *config.Config
	newGenerator GeneratorFactory
}

// NewRootCommand builds the devai command tree. newGenerator is called once
// per document command; pass nil to use the Gemini and Secret Manager backed
// generator.
func NewRootCommand(version string, newGenerator GeneratorFactory) *cobra.Command {
	if newGenerator == nil {
		newGenerator = NewGenerator
	}
	a := &app{newGenerator: newGenerator}

	root := &cobra.Command{
		Use:   "devai",
		Short: "devai - generative AI helpers for developers",
		Long: `devai generates project documentation with Gemini.

Prompt templates are read from Google Secret Manager in the project named by
PROJECT_ID and fall back to built-in defaults when they cannot be read.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", defaultEnvFile, "Dotenv file loaded before configuration")

	root.AddCommand(a.newDocumentCommand())

	return root
}

// Execute runs the command tree against the process arguments and reports
// any failure on stderr.
func Execute(ctx context.Context, version string) error {
	root := NewRootCommand(version, nil)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// setup loads the environment and configuration and installs the logger in
// the command context, where every subcommand reads it from.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadEnvFile(cmd); err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: a.configFile,
		LogLevel:   a.logLevel,
	})
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	a.cfg = cfg
	cmd.SetContext(logger.WithLogger(cmd.Context(), l))

	l.Debug("Configuration loaded",
		"command", cmd.CommandPath(),
		"model", cfg.LLM.ModelName,
		"backend", cfg.LLM.Backend)

	return nil
}

// loadEnvFile reads the dotenv file without overriding variables that are
// already set.
func (a *app) loadEnvFile(cmd *cobra.Command) error {
	if a.envFile == "" {
		return nil
	}

	err := godotenv.Load(a.envFile)
	if err == nil {
		return nil
	}

	explicit := cmd.Flags().Changed("env-file")
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", a.envFile, err)
}
