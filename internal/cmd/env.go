// Package cmd holds the tagging subcommands. Each command opens the
// workspace, drives the field's engine through the registry and lets the
// store-bound field persist the change notification.
package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gravitrone/tagging/internal/config"
	"github.com/gravitrone/tagging/internal/forms"
	"github.com/gravitrone/tagging/internal/logging"
	"github.com/gravitrone/tagging/internal/tagging"
)

// LogLevelFlag is the persistent root flag overriding the CLI log level.
const LogLevelFlag = "log-level"

const defaultCLILogLevel = "warn"

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	dimColor  = color.New(color.Faint)
	tagColor  = color.New(color.FgCyan, color.Bold)
)

type env struct {
	ws  *forms.Workspace
	out io.Writer
}

// openEnv loads the configuration and opens the workspace. Subcommands log
// to stderr at warn unless --log-level says otherwise.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := defaultCLILogLevel
	if v, err := cmd.Flags().GetString(LogLevelFlag); err == nil && v != "" {
		level = v
	}
	log := logging.New(cmd.ErrOrStderr(), level)

	ws, err := forms.OpenWorkspace(cfg, log)
	if err != nil {
		return nil, err
	}
	return &env{ws: ws, out: cmd.OutOrStdout()}, nil
}

func (e *env) Close() error {
	return e.ws.Shutdown()
}

// withField runs fn against the engine of field id and tears it down after.
func (e *env) withField(id string, fn func(*tagging.Engine) error) error {
	engine, err := e.ws.Open(id, nil)
	if err != nil {
		return fmt.Errorf("open field %s: %w", id, err)
	}
	defer func() {
		if err := e.ws.Close(id); err != nil {
			e.ws.Log.Warn().Err(err).Str("field", id).Msg("teardown")
		}
	}()
	return fn(engine)
}

// run wraps a RunE body with env setup and teardown.
func run(fn func(e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(e, args)
	}
}

func (e *env) printTags(tags []string) {
	if len(tags) == 0 {
		dimColor.Fprintln(e.out, "no tags")
		return
	}
	for _, t := range tags {
		tagColor.Fprintln(e.out, t)
	}
}
