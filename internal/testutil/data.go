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

// Package testutil implements test fixtures for dictionary files.
package testutil

import "strings"

// Rules is a small deinflection rule file.
const Rules = "Deinflect Rules 20260101\n" +
	"polite past\n" +
	"past\n" +
	"negative\n" +
	"ました\tる\t385\t0\n" +
	"ました\tう\t642\t0\n" +
	"た\tる\t385\t1\n" +
	"った\tう\t642\t1\n" +
	"ない\tる\t388\t2\n" +
	"かった\tい\t1152\t1\n" +
	"なかった\tない\t1152\t1\n"

// Dictionary lines.
const (
	NihonLine  = "日本 [にほん(P);にっぽん] /(n) Japan/(P)/EntL1582710X/"
	TaberuLine = "食べる [たべる] /(v1,vt) to eat/(P)/EntL1358280X/"
	KauLine    = "買う [かう] /(v5u,vt) to buy/(P)/EntL1221780X/"
	TakaiLine  = "高い [たかい] /(adj-i) (1) high/tall/(2) expensive/(P)/EntL1279680X/"
	HonLine    = "本 [ほん] /(n) book/(P)/EntL1522150X/"
	HiLine     = "日 [ひ] /(n) day/EntL1461140X/"
)

// Name dictionary lines.
const (
	TanakaLine = "田中 [たなか] /Tanaka (surname)/"
	TokyoLine  = "東京 [とうきょう] /Tokyo (place)/"
)

// Dict is a small EDICT2 dictionary file.
var Dict = "　？？？ /EDICT, EDICT_SUB(P), EDICT2 Japanese-English Electronic Dictionary/\n" +
	strings.Join([]string{NihonLine, TaberuLine, KauLine, TakaiLine, HonLine, HiLine}, "\n") + "\n"

// Names is a small ENAMDICT name dictionary file.
var Names = "　？？？ /ENAMDICT/\n" +
	strings.Join([]string{TanakaLine, TokyoLine}, "\n") + "\n"
