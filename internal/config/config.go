// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anni-rs/npmscope/internal/issue"
	"github.com/anni-rs/npmscope/pkg/cueutil"

	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

const (
	// AppName is the application name.
	AppName = "npmscope"
	// ConfigFileName is the name of the user config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// LocalConfigFile is the project config file looked up in the working directory.
	LocalConfigFile = AppName + "." + ConfigFileExt
	// EnvPrefix prefixes environment overrides, e.g. NPMSCOPE_ROOT_DIR.
	EnvPrefix = "NPMSCOPE"
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns <user config dir>/npmscope: $XDG_CONFIG_HOME (or
// ~/.config) on Linux, ~/Library/Application Support on macOS and %APPDATA%
// on Windows.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// loadWithOptions resolves, validates and decodes the configuration.
// It returns the config and the path of the file it came from ("" when only
// defaults and environment variables apply).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		path := opts.ConfigFilePath.String()
		if !fileExists(path) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'npmscope config show' to see the effective configuration").
				Wrap(fmt.Errorf("config file not found: %s", path)).
				BuildError()
		}
		resolvedPath = path
	} else {
		path, err := discoverConfigFile(opts)
		if err != nil {
			return nil, "", err
		}
		resolvedPath = path
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'npmscope config dump' for a valid starting point").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := expandPaths(&cfg, getenv); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("expand configuration paths").
			WithSuggestion("Use $VAR or ${VAR:-default}; command substitution is not supported").
			Wrap(err).
			BuildError()
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check NPMSCOPE_* environment variables for invalid values").
			WithSuggestion("Run 'npmscope config show' to see the effective configuration").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// discoverConfigFile returns the first existing config file among the
// project file in the working directory and the user config file.
func discoverConfigFile(opts LoadOptions) (string, error) {
	workDir := opts.WorkDir.String()
	if workDir == "" {
		workDir = "."
	}
	if local := filepath.Join(workDir, LocalConfigFile); fileExists(local) {
		return local, nil
	}

	cfgDir := opts.ConfigDirPath.String()
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		cfgDir = dir
	}
	if user := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt); fileExists(user) {
		return user, nil
	}
	return "", nil
}

func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("root_dir", defaults.RootDir)
	v.SetDefault("descriptor_path", defaults.DescriptorPath)
	v.SetDefault("search", defaults.Search)
	v.SetDefault("replace", defaults.Replace)
	v.SetDefault("error_policy", defaults.ErrorPolicy.String())
	v.SetDefault("include", defaults.Include)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("format.indent", defaults.Format.Indent)
	v.SetDefault("format.trailing_newline", defaults.Format.TrailingNewline)
	v.SetDefault("log.level", defaults.Log.Level.String())
	v.SetDefault("log.format", defaults.Log.Format.String())
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := cueutil.ParseAndDecode[map[string]any](configSchema, data, "#Config", cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// expandPaths applies shell parameter expansion to the path settings.
func expandPaths(cfg *Config, getenv func(string) string) error {
	for _, field := range []struct {
		key string
		val *string
	}{
		{"root_dir", &cfg.RootDir},
		{"descriptor_path", &cfg.DescriptorPath},
	} {
		expanded, err := shell.Expand(*field.val, getenv)
		if err != nil {
			return fmt.Errorf("%s %q: %w", field.key, *field.val, err)
		}
		*field.val = expanded
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config file into dir (the user config
// directory when dir is empty) unless one already exists. It returns the
// path of the file and whether it was created.
func CreateDefaultConfig(dir string) (string, bool, error) {
	if dir == "" {
		cfgDir, err := ConfigDir()
		if err != nil {
			return "", false, err
		}
		dir = cfgDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return cfgPath, true, nil
}
