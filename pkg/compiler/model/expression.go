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
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Expression is a parsed expression. Only the forms needed by statement analysis are modeled.
type Expression interface {
	SyntaxRange() hcl.Range

	isExpression()
}

// LiteralValueExpression is a constant.
type LiteralValueExpression struct {
	Range hcl.Range

	Value cty.Value
}

func (x *LiteralValueExpression) SyntaxRange() hcl.Range {
	return x.Range
}

func (*LiteralValueExpression) isExpression() {}

// isTrue reports whether the literal is the boolean constant true.
func (x *LiteralValueExpression) isTrue() bool {
	v := x.Value
	return !v.IsNull() && v.IsKnown() && v.Type() == cty.Bool && v.True()
}

// VariableAccessExpression reads a variable.
type VariableAccessExpression struct {
	Range hcl.Range

	Name string

	variable *Variable
}

func (x *VariableAccessExpression) SyntaxRange() hcl.Range {
	return x.Range
}

// Variable returns the variable resolved by analysis, or nil before analysis.
func (x *VariableAccessExpression) Variable() *Variable {
	return x.variable
}

func (*VariableAccessExpression) isExpression() {}
