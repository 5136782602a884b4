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
	"github.com/scriptc/scriptc/pkg/util/contract"
)

func (a *Analyzer) analyzeExpression(x Expression, scope *Scope) error {
	switch x := x.(type) {
	case *LiteralValueExpression:
		return nil
	case *VariableAccessExpression:
		return a.analyzeVariableAccess(x, scope)
	default:
		contract.Failf("unexpected expression of type %T (%v)", x, x.SyntaxRange())
		return nil
	}
}

func (a *Analyzer) analyzeVariableAccess(x *VariableAccessExpression, scope *Scope) error {
	v, err := scope.Resolve(x.Name, x.Range)
	if err != nil {
		return err
	}
	x.variable = v
	return nil
}
