package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/devai/internal/document"
	"github.com/phrazzld/devai/internal/platform/logger"
)

// documentFlags are the options shared by the document subcommands.
type documentFlags struct {
	context string
	file    string
	version string
}

func (a *app) newDocumentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Generate documentation for your project using GenAI",
	}

	for _, kind := range document.Kinds() {
		cmd.AddCommand(a.newKindCommand(kind))
	}

	return cmd
}

func (a *app) newKindCommand(kind document.Kind) *cobra.Command {
	var flags documentFlags

	cmd := &cobra.Command{
		Use:   kind.CommandName(),
		Short: shortHelp(kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runKind(cmd, kind, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.context, "context", "c", "", "The code, or context, that you would like to pass")

	switch kind {
	case document.KindUpdateReadme:
		cmd.Flags().StringVarP(&flags.file, "file", "f", "", "The existing README to be updated")
	case document.KindUpdateReleaseNotes:
		cmd.Flags().StringVarP(&flags.version, "version", "v", "", "The version number for the release notes")
	}

	return cmd
}

func (a *app) runKind(cmd *cobra.Command, kind document.Kind, flags documentFlags) error {
	ctx := cmd.Context()

	if msg := kind.ProgressMessage(); msg != "" {
		printProgress(cmd.ErrOrStderr(), msg)
	}

	logger.FromContext(ctx).DebugContext(ctx, "Running document command", "kind", kind.String())

	runner, err := a.newGenerator(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to create document generator: %w", err)
	}

	out, err := runner.Run(ctx, document.Request{
		Kind:       kind,
		ContextRef: flags.context,
		File:       flags.file,
		Version:    flags.version,
	})
	if err != nil {
		return fmt.Errorf("%s failed: %w", kind.CommandName(), err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func shortHelp(kind document.Kind) string {
	switch kind {
	case document.KindReadme:
		return "Create a README based on the context passed"
	case document.KindUpdateReadme:
		return "Update an existing README based on the context passed (not implemented yet)"
	case document.KindReleaseNotes:
		return "Create release notes based on the context passed"
	case document.KindUpdateReleaseNotes:
		return "Update release notes based on the context passed (not implemented yet)"
	default:
		return ""
	}
}
