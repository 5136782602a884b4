// Copyright 2016-2020, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"sort"

	levenshtein "github.com/texttheater/golang-levenshtein/levenshtein"
)

var editOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

type stringSet map[string]struct{}

func (ss stringSet) add(s string) {
	ss[s] = struct{}{}
}

func (ss stringSet) sortedValues() []string {
	values := make([]string, 0, len(ss))
	for v := range ss {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// closestName returns the candidate nearest to name by edit distance, or "" if none is close enough to be a likely
// typo. Ties go to the first candidate, so callers should pass candidates in a stable order.
func closestName(name string, candidates []string) string {
	threshold := len(name) / 3
	if threshold < 1 {
		threshold = 1
	}

	best, bestDistance := "", threshold+1
	for _, c := range candidates {
		if c == name {
			continue
		}
		d := levenshtein.DistanceForStrings([]rune(name), []rune(c), editOptions)
		if d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}
