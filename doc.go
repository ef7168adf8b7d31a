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

// Package subedict implements creating sub-dictionaries of the EDICT
// Japanese-English dictionary that cover a given text in pure Go.
//
// Creating a sub-dictionary uses several files:
//  1. A deinflection rule file (deinflect.dat) used to recover the dictionary
//     form of inflected words. See package deinflect.
//  2. The EDICT2 dictionary file. See package edict.
//  3. An optional ENAMDICT name dictionary in the same format.
//
// The dictionary files may be compressed with gzip or dictzip and may use the
// legacy EUC-JP encoding.
//
// More info on the dictionary format can be found at this URL:
// http://www.edrdg.org/jmdict/edict_doc.html
package subedict
