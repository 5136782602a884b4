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
)

func (a *Analyzer) analyzeTry(s *TryStatement, scope *Scope, input Input) (Output, error) {
	if s.Block == nil || len(s.Block.Statements) == 0 {
		return Output{}, extraneousTry(s.Range)
	}
	if len(s.Catches) == 0 {
		return Output{}, missingCatch(s.Range)
	}

	blockOutput, err := a.analyzeBlock(s.Block, scope.Child(), input.derive(input.LastSource))
	if err != nil {
		return Output{}, err
	}

	// The guarded block and every handler are alternative ways to leave the statement.
	outputs := []Output{blockOutput}
	for _, c := range s.Catches {
		catchOutput, err := a.AnalyzeCatch(c, scope, input)
		if err != nil {
			return Output{}, err
		}
		outputs = append(outputs, catchOutput)
	}
	return MergeBranches(outputs...), nil
}

// AnalyzeCatch analyzes a single catch clause. The clause's variable is declared in a new child of scope, so it is
// visible to the handler block only.
//
// The declared variable's type must be assignable to the clause's base exception type. This is what restricts
// scripts to catching the permitted exception family: exceptions outside it, such as those raised to enforce resource
// limits, always propagate.
//
// The clause's output is the handler block's output, or the zero Output if the handler is empty.
func (a *Analyzer) AnalyzeCatch(c *CatchClause, scope *Scope, input Input) (Output, error) {
	handlerScope := scope.Child()

	if _, err := a.analyzeDeclaration(c.Declaration, handlerScope); err != nil {
		return Output{}, err
	}

	baseName := c.BaseException
	if baseName == "" {
		baseName = a.options.catchBound()
	}
	baseType, err := a.resolveType(baseName, c.Range)
	if err != nil {
		return Output{}, err
	}

	variable := c.Declaration.variable
	if !a.types.IsAssignable(variable.Type, baseType) {
		return Output{}, cannotCast(variable.Type, baseType, c.Declaration.Range)
	}
	glog.V(9).Infof("catch of %s permitted by bound %s (%v)",
		variable.Type.CanonicalName(), baseType.CanonicalName(), c.Range)

	block, ok := c.Block.Get()
	if !ok {
		return Output{}, nil
	}
	return a.analyzeBlock(block, handlerScope, input.derive(input.LastSource))
}
