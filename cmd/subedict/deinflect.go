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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-subedict"
	"github.com/ianlewis/go-subedict/internal/folding"
	"github.com/ianlewis/go-subedict/wordtype"
)

func deinflectCommand() *cli.Command {
	return &cli.Command{
		Name:      "deinflect",
		Usage:     "print the possible dictionary forms of inflected words",
		ArgsUsage: "WORD...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "print at most `N` candidates per word",
				Value: 100,
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: no words given", ErrFlagParse)
			}

			cfg, err := LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfig, err)
			}
			cfg.applyFlags(c)
			cfg.Dictionary.setDefaults(dataLocations())

			rules, err := subedict.OpenRules(c.Context, cfg.Dictionary.Rules)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrLoad, err)
			}

			limit := c.Int("limit")
			tbl := table.New("Input", "Word", "Classes", "Reasons").WithWriter(c.App.Writer)
			for _, arg := range c.Args().Slice() {
				word := folding.Key(arg)
				n := 0
				for cand := range rules.Deinflect(word) {
					if n >= limit {
						break
					}
					tbl.AddRow(word, cand.Word, wordtype.String(cand.Type), strings.Join(cand.Reasons, ", "))
					n++
				}
			}
			tbl.Print()
			return nil
		},
	}
}
