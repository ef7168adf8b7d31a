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

// Package edict implements reading EDICT dictionary files.
//
// An EDICT file is a line oriented text file. The first line is a header and
// is ignored. Each following line is one dictionary record:
//
//	<writing>[;<writing>...] [[<reading>[;<reading>...]]] /<gloss>/<gloss>/.../
//
// for example:
//
//	日本 [にほん(P);にっぽん] /(n) Japan/(P)/EntL1582710X/
//	あやかし /(n) (1) ghost that appears at sea during a shipwreck/EntL2143630X/
//
// Writings and readings may carry a parenthesized marker such as "(P)". The
// first gloss may start with a parenthesized, comma separated list of tags
// such as "(v1,vt)" which give the word's grammatical classes.
//
// The ENAMDICT name dictionary uses the same format.
package edict
