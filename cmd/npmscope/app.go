// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/anni-rs/npmscope/internal/config"
	"github.com/anni-rs/npmscope/internal/issue"
	"github.com/anni-rs/npmscope/internal/rewrite"
	"github.com/anni-rs/npmscope/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and
	// delegates through its service interfaces.
	App struct {
		Config   ConfigProvider
		Rewriter RewriteService
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Rewriter RewriteService
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Loaded, error)
	}

	// RewriteService runs one rewrite pass.
	RewriteService interface {
		Rewrite(ctx context.Context, opts rewrite.Options) (*rewrite.Report, error)
	}

	rewriteService struct{}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:   deps.Config,
		Rewriter: deps.Rewriter,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Rewriter == nil {
		app.Rewriter = &rewriteService{}
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// Rewrite validates opts and runs a pass on the OS filesystem.
func (s *rewriteService) Rewrite(ctx context.Context, opts rewrite.Options) (*rewrite.Report, error) {
	r, err := rewrite.New(opts)
	if err != nil {
		return nil, err
	}
	return r.RewriteAll(ctx)
}

// loadConfig loads the configuration and applies the persistent logging
// flags on top of it.
func (app *App) loadConfig(ctx context.Context, flags *rootFlags) (*config.Loaded, error) {
	loaded, err := app.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(flags.configPath),
	})
	if err != nil {
		return nil, &ExitError{Code: types.ExitConfigError, Err: newServiceError(err, issue.ConfigLoadFailedId)}
	}

	if flags.logLevel != "" {
		level := config.LogLevel(flags.logLevel)
		if err := level.Validate(); err != nil {
			return nil, &ExitError{Code: types.ExitFailure, Err: err}
		}
		loaded.Config.Log.Level = level
	}
	if flags.logFormat != "" {
		format := config.LogFormat(flags.logFormat)
		if err := format.Validate(); err != nil {
			return nil, &ExitError{Code: types.ExitFailure, Err: err}
		}
		loaded.Config.Log.Format = format
	}
	return loaded, nil
}
