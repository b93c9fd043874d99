package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravitrone/tagging/internal/cmd"
	"github.com/gravitrone/tagging/internal/config"
	"github.com/gravitrone/tagging/internal/forms"
	"github.com/gravitrone/tagging/internal/logging"
	"github.com/gravitrone/tagging/internal/ui"
)

var errNoTerminal = errors.New("the editor needs an interactive terminal; use a subcommand instead")

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	var field string
	root := &cobra.Command{
		Use:   "tagging",
		Short: "tagging - comma-separated tag editor",
		Long:  "tagging edits tag fields stored as comma-separated values and attaches them to objects.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(field)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVarP(&field, "field", "f", "", "open this field directly")
	root.PersistentFlags().String(cmd.LogLevelFlag, "", "log level for subcommands (default warn)")

	root.AddCommand(cmd.GetCmd())
	root.AddCommand(cmd.SetCmd())
	root.AddCommand(cmd.AddCmd())
	root.AddCommand(cmd.RemoveCmd())
	root.AddCommand(cmd.ClearCmd())
	root.AddCommand(cmd.SuggestCmd())
	root.AddCommand(cmd.FieldsCmd())
	root.AddCommand(cmd.DeleteCmd())
	root.AddCommand(cmd.AttachCmd())
	root.AddCommand(cmd.TagsCmd())
	return root
}

func runTUI(field string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	ws, err := forms.OpenWorkspace(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("field", field).Str("db", cfg.DBPath).Msg("starting editor")
	p := tea.NewProgram(ui.NewApp(ws, field), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
