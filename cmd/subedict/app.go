// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-subedict"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeConfigError is the exit code for an invalid configuration.
	ExitCodeConfigError

	// ExitCodeLoadError is the exit code for a dictionary loading error.
	ExitCodeLoadError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrSubedict is a parent error for all command errors.
var ErrSubedict = errors.New("subedict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrSubedict)

// ErrConfig indicates an invalid configuration.
var ErrConfig = fmt.Errorf("%w: invalid configuration", ErrSubedict)

// ErrLoad indicates that the dictionary files could not be loaded.
var ErrLoad = fmt.Errorf("%w: loading dictionaries", ErrSubedict)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed for global variable.
func init() {
	cli.VersionPrinter = func(c *cli.Context) {
		info := version.GetVersionInfo()
		fmt.Fprintln(c.App.Writer, info.String())
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrConfig):
		return ExitCodeConfigError
	case errors.Is(err, ErrLoad):
		return ExitCodeLoadError
	default:
		return ExitCodeUnknownError
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// env holds the configuration and logger shared by commands.
type env struct {
	cfg    *Config
	logger *slog.Logger
}

// setup reads the configuration, applies flag overrides and creates the
// logger.
func setup(c *cli.Context) (*env, error) {
	cfg, err := LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg.applyFlags(c)
	cfg.Dictionary.setDefaults(dataLocations())
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return &env{
		cfg:    cfg,
		logger: NewLogger(c.App.ErrWriter, cfg.Log),
	}, nil
}

// open loads the dictionaries given by the configuration.
func (e *env) open(ctx context.Context) (*subedict.SubEdict, error) {
	start := time.Now()
	s, err := subedict.Open(ctx, e.cfg.Dictionary.Options())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	st := s.Stats()
	e.logger.Info("dictionaries loaded",
		slog.Duration("duration", time.Since(start)),
		slog.Int("rules", st.Rules),
		slog.Int("keys", st.Keys),
		slog.Int("lines", st.Lines),
		slog.Int("name_keys", st.NameKeys),
		slog.Int("name_lines", st.NameLines),
	)
	return s, nil
}

func newSubedictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Extract the EDICT dictionary entries used by Japanese text.",
		Description: strings.Join([]string{
			"EDICT sub-dictionary utility written in Go.",
			"http://github.com/ianlewis/go-subedict",
		}, "\n"),
		Version: version.GetVersionInfo().GitVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from YAML `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{"SUBEDICT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "rules",
				Usage: "read deinflection rules from `FILE`",
			},
			&cli.StringFlag{
				Name:    "dict",
				Usage:   "read the EDICT2 dictionary from `FILE`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "names",
				Usage: "read the ENAMDICT name dictionary from `FILE`",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "dictionary file encoding (utf-8, euc-jp, shift_jis)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text, json)",
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Commands: []*cli.Command{
			annotateCommand(),
			lookupCommand(),
			deinflectCommand(),
			serveCommand(),
		},
	}
}
