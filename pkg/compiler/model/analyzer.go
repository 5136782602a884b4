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
	"github.com/golang/glog"
	"github.com/hashicorp/hcl/v2"
	"github.com/scriptc/scriptc/pkg/compiler/lookup"
	"github.com/scriptc/scriptc/pkg/util/contract"
)

// DefaultCatchBound is the exception family scripts may catch when no other bound is configured.
const DefaultCatchBound = "Exception"

// Options configures an Analyzer.
type Options struct {
	// CatchBound names the type every catch variable must be assignable to when the clause itself names none.
	CatchBound string
	// MaxStatements limits the statement count of a unit. Zero means no limit.
	MaxStatements int
}

func (o Options) catchBound() string {
	if o.CatchBound == "" {
		return DefaultCatchBound
	}
	return o.CatchBound
}

// Analyzer performs semantic analysis of statements. An Analyzer holds no per-unit state and may be shared between
// goroutines as long as its lookup is safe for concurrent reads.
type Analyzer struct {
	types   lookup.Lookup
	options Options
}

// NewAnalyzer creates an analyzer that resolves type names with the given lookup.
func NewAnalyzer(types lookup.Lookup, options Options) *Analyzer {
	contract.Requiref(types != nil, "types", "must not be nil")
	return &Analyzer{types: types, options: options}
}

type unitState int

const (
	unanalyzed unitState = iota
	analyzing
	analyzed
)

// Unit is a compilation unit: a named top-level block.
type Unit struct {
	Name  string
	Range hcl.Range
	Body  *Block

	state     unitState
	output    Output
	maxLocals int
}

// NewUnit creates a compilation unit.
func NewUnit(name string, body *Block) *Unit {
	contract.Requiref(body != nil, "body", "must not be nil")
	return &Unit{Name: name, Range: body.Range, Body: body}
}

// Analyzed reports whether analysis of the unit has completed successfully.
func (u *Unit) Analyzed() bool {
	return u.state == analyzed
}

// Output returns the escape facts of the unit's body. It is only meaningful once the unit has been analyzed.
func (u *Unit) Output() Output {
	return u.output
}

// AnalyzeUnit analyzes the body of u in a fresh root scope. Analysis stops at the first error, which is returned as
// an *Error; a unit that failed analysis must not be lowered.
func (a *Analyzer) AnalyzeUnit(u *Unit) (Output, error) {
	contract.Assertf(u.state == unanalyzed, "unit %q analyzed twice", u.Name)
	u.state = analyzing

	glog.V(5).Infof("analyzing unit %q", u.Name)

	scope := NewScope()
	output, err := a.analyzeBlock(u.Body, scope, Input{LastSource: true})
	if err != nil {
		glog.V(5).Infof("analysis of unit %q failed: %v", u.Name, err)
		return Output{}, err
	}

	if limit := a.options.MaxStatements; limit > 0 && output.StatementCount > limit {
		return Output{}, statementLimitExceeded(output.StatementCount, limit, u.Range)
	}

	u.state, u.output, u.maxLocals = analyzed, output, scope.MaxLocals()
	glog.V(5).Infof("analyzed unit %q: %v", u.Name, output)
	return output, nil
}

func (a *Analyzer) resolveType(name string, subject hcl.Range) (lookup.Type, error) {
	if typ, ok := a.types.ResolveType(name); ok {
		return typ, nil
	}

	var suggestion string
	if namer, ok := a.types.(lookup.TypeNamer); ok {
		suggestion = closestName(name, namer.TypeNames())
	}
	return nil, unknownType(name, subject, suggestion)
}
