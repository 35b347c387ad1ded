// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/shellmd/internal/ctxlog"
	"github.com/matt-FFFFFF/shellmd/internal/mdgen"
	"github.com/matt-FFFFFF/shellmd/internal/platform"
	"github.com/matt-FFFFFF/shellmd/internal/shell"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file name without extension.
	FileName = "shellmd"
	// FileType is the config file format.
	FileType = "yaml"
	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "SHELLMD"
)

var (
	// ErrReadConfig is returned when a config file exists but cannot be read or parsed.
	ErrReadConfig = errors.New("cannot read config file")
	// ErrDecodeConfig is returned when config values do not fit the Config structure.
	ErrDecodeConfig = errors.New("cannot decode config")
	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)

// FsFactory returns the filesystem config files are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Config is the effective configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Shell    Shell        `mapstructure:"shell" yaml:"shell"`
	Mdgen    mdgen.Syntax `mapstructure:"mdgen" yaml:"mdgen"`

	file string
}

// Shell holds the dispatcher defaults.
type Shell struct {
	// Target is empty for the host's native shell.
	Target         string `mapstructure:"target" yaml:"target"`
	Strip          bool   `mapstructure:"strip" yaml:"strip"`
	RemoveCarriage bool   `mapstructure:"remove_carriage" yaml:"remove_carriage"`
	Tab            bool   `mapstructure:"tab" yaml:"tab"`
	Encoding       string `mapstructure:"encoding" yaml:"encoding"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := shell.DefaultOptions()

	return &Config{
		LogLevel: "warn",
		Shell: Shell{
			Strip:          opts.Strip,
			RemoveCarriage: opts.RemoveCarriage,
			Tab:            opts.Tab,
			Encoding:       opts.Encoding,
		},
		Mdgen: mdgen.DefaultSyntax(),
	}
}

// File returns the config file that was read, or "" when defaults and environment were used.
func (c *Config) File() string {
	return c.file
}

// Options converts the shell section to dispatcher options.
func (c *Config) Options() *shell.Options {
	opts := shell.DefaultOptions()
	opts.Strip = c.Shell.Strip
	opts.RemoveCarriage = c.Shell.RemoveCarriage
	opts.Tab = c.Shell.Tab
	opts.Encoding = c.Shell.Encoding

	return opts
}

// Target parses the configured target. ok is false when none is configured.
func (c *Config) Target() (target platform.Target, ok bool, err error) {
	if c.Shell.Target == "" {
		return 0, false, nil
	}

	target, err = platform.ParseTarget(c.Shell.Target)
	if err != nil {
		return 0, false, errors.Join(ErrInvalidConfig, err)
	}

	return target, true, nil
}

// WriteYAML writes the configuration as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}

// Load reads the config file from the default search path.
func Load(ctx context.Context) (*Config, error) {
	return LoadFile(ctx, "")
}

// LoadFile reads path, or searches the default locations when path is empty.
// An explicit path must exist.
func LoadFile(ctx context.Context, path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(FileType)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType(FileType)

		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Join(ErrReadConfig, err)
		}

		ctxlog.Debug(ctx, "no config file found, using defaults")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Join(ErrDecodeConfig, err)
	}

	cfg.file = v.ConfigFileUsed()

	if _, _, err := cfg.Target(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "config loaded", "file", cfg.file)

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetFs(FsFactory())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()

	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("shell.target", d.Shell.Target)
	v.SetDefault("shell.strip", d.Shell.Strip)
	v.SetDefault("shell.remove_carriage", d.Shell.RemoveCarriage)
	v.SetDefault("shell.tab", d.Shell.Tab)
	v.SetDefault("shell.encoding", d.Shell.Encoding)
	v.SetDefault("mdgen.class_keyword", d.Mdgen.ClassKeyword)
	v.SetDefault("mdgen.function_keyword", d.Mdgen.FunctionKeyword)
	v.SetDefault("mdgen.return_arrow", d.Mdgen.ReturnArrow)
	v.SetDefault("mdgen.none_sentinel", d.Mdgen.NoneSentinel)
	v.SetDefault("mdgen.placeholder", d.Mdgen.Placeholder)

	return v
}

func searchPaths() []string {
	paths := []string{"."}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", FileName))
	}

	return paths
}
