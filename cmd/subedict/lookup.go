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
	"github.com/ianlewis/go-subedict/edict"
	"github.com/ianlewis/go-subedict/internal/folding"
	"github.com/ianlewis/go-subedict/wordtype"
)

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "look up dictionary entries by headword or reading",
		ArgsUsage: "KEY...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "in-names",
				Usage: "look up keys in the name dictionary",
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: no keys given", ErrFlagParse)
			}

			e, err := setup(c)
			if err != nil {
				return err
			}
			s, err := e.open(c.Context)
			if err != nil {
				return err
			}

			lookup := s.Lookup
			if c.Bool("in-names") {
				lookup = s.LookupName
			}

			tbl := table.New("Key", "Classes", "Writings", "Readings", "Glosses").WithWriter(c.App.Writer)
			for _, arg := range c.Args().Slice() {
				key := folding.Key(arg)
				for _, entry := range lookup(key) {
					addEntryRow(tbl, key, entry)
				}
			}
			tbl.Print()
			return nil
		},
	}
}

func addEntryRow(tbl table.Table, key string, entry edict.Entry) {
	r, err := edict.ParseRecord(entry.Line)
	if err != nil {
		tbl.AddRow(key, wordtype.String(entry.Type), entry.Line, "", "")
		return
	}
	tbl.AddRow(
		key,
		wordtype.String(entry.Type),
		strings.Join(r.Writings, ";"),
		strings.Join(r.Readings, ";"),
		strings.Join(r.Glosses, "/"),
	)
}

// lookupRecords returns the parsed records registered under key.
func lookupRecords(s *subedict.SubEdict, key string, names bool) []*edict.Record {
	entries := s.Lookup(key)
	if names {
		entries = s.LookupName(key)
	}

	records := make([]*edict.Record, 0, len(entries))
	for _, e := range entries {
		r, err := edict.ParseRecord(e.Line)
		if err != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}
