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
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-subedict/internal/folding"
)

func annotateCommand() *cli.Command {
	return &cli.Command{
		Name:      "annotate",
		Usage:     "print the dictionary entries used by a text",
		ArgsUsage: "[FILE]",
		Description: "Reads Japanese text from FILE, or standard input if no FILE is given,\n" +
			"and prints the dictionary lines for every word found in it.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "html",
				Usage: "strip HTML markup from the input",
			},
			&cli.BoolFlag{
				Name:  "with-names",
				Usage: "also print entries from the name dictionary",
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			e, err := setup(c)
			if err != nil {
				return err
			}

			text, err := readInput(c)
			if err != nil {
				return err
			}
			if c.Bool("html") {
				text = html2text.HTML2Text(text)
			}
			text = folding.Text(text)

			s, err := e.open(c.Context)
			if err != nil {
				return err
			}

			lines := s.Annotate(text)
			if c.Bool("with-names") {
				lines = append(lines, s.AnnotateNames(text)...)
				slices.Sort(lines)
				lines = slices.Compact(lines)
			}
			for _, line := range lines {
				if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
					return fmt.Errorf("%w: %w", ErrSubedict, err)
				}
			}
			return nil
		},
	}
}

// readInput reads the text named by the first argument or standard input.
func readInput(c *cli.Context) (string, error) {
	r := c.App.Reader
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrSubedict, err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: reading input: %w", ErrSubedict, err)
	}
	return string(b), nil
}
