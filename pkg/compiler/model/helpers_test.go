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
	"github.com/scriptc/scriptc/pkg/compiler/lookup"
	"github.com/zclconf/go-cty/cty"
)

func at(line int) hcl.Range {
	return hcl.Range{
		Filename: "test.script",
		Start:    hcl.Pos{Line: line, Column: 1, Byte: line * 100},
		End:      hcl.Pos{Line: line, Column: 10, Byte: line*100 + 9},
	}
}

// failureTypes registers RuntimeFailure and SystemFailure as unrelated roots next to the default types.
func failureTypes() *lookup.Registry {
	return lookup.MustNewRegistry(append(lookup.DefaultTypes(),
		lookup.TypeSpec{Name: "RuntimeFailure"},
		lookup.TypeSpec{Name: "SystemFailure"},
	))
}

func defaultAnalyzer() *Analyzer {
	return NewAnalyzer(lookup.MustNewRegistry(lookup.DefaultTypes()), Options{})
}

func block(line int, statements ...Statement) *Block {
	return &Block{Range: at(line), Statements: statements}
}

func declare(line int, typeName, name string) *Declaration {
	return &Declaration{Range: at(line), TypeName: typeName, Name: name}
}

func ref(line int, name string) *VariableAccessExpression {
	return &VariableAccessExpression{Range: at(line), Name: name}
}

func literal(line int, v cty.Value) *LiteralValueExpression {
	return &LiteralValueExpression{Range: at(line), Value: v}
}

func returns(line int) *ReturnStatement {
	return &ReturnStatement{Range: at(line)}
}

func eval(line int, x Expression) *ExpressionStatement {
	return &ExpressionStatement{Range: at(line), Expression: x}
}

func catchClause(line int, bound, typeName, name string, handler OptionalBlock) *CatchClause {
	return &CatchClause{
		Range:         at(line),
		BaseException: bound,
		Declaration:   declare(line, typeName, name),
		Block:         handler,
	}
}
