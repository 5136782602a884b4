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
	"github.com/scriptc/scriptc/pkg/util/contract"
)

// Statement is a parsed statement. The set of statement kinds is closed.
type Statement interface {
	SyntaxRange() hcl.Range

	isStatement()
}

// Block is a sequence of statements.
type Block struct {
	Range hcl.Range

	Statements []Statement
}

func (s *Block) SyntaxRange() hcl.Range {
	return s.Range
}

func (*Block) isStatement() {}

// OptionalBlock is a block that may be absent, such as the handler of an empty catch clause.
type OptionalBlock struct {
	block *Block
}

// SomeBlock returns a present OptionalBlock.
func SomeBlock(b *Block) OptionalBlock {
	contract.Requiref(b != nil, "b", "must not be nil")
	return OptionalBlock{block: b}
}

// NoBlock returns an absent OptionalBlock.
func NoBlock() OptionalBlock {
	return OptionalBlock{}
}

// Get returns the block and whether it is present.
func (o OptionalBlock) Get() (*Block, bool) {
	return o.block, o.block != nil
}

// Declaration introduces a typed variable with an optional initial value.
type Declaration struct {
	Range hcl.Range

	TypeName string
	Name     string
	Value    Expression

	variable *Variable
}

func (s *Declaration) SyntaxRange() hcl.Range {
	return s.Range
}

// Variable returns the variable bound by analysis, or nil if the declaration has not been analyzed.
func (s *Declaration) Variable() *Variable {
	return s.variable
}

func (*Declaration) isStatement() {}

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	Range hcl.Range

	Expression Expression
}

func (s *ExpressionStatement) SyntaxRange() hcl.Range {
	return s.Range
}

func (*ExpressionStatement) isStatement() {}

// ReturnStatement exits the enclosing method with an optional value.
type ReturnStatement struct {
	Range hcl.Range

	Value Expression
}

func (s *ReturnStatement) SyntaxRange() hcl.Range {
	return s.Range
}

func (*ReturnStatement) isStatement() {}

type ThrowStatement struct {
	Range hcl.Range

	Value Expression
}

func (s *ThrowStatement) SyntaxRange() hcl.Range {
	return s.Range
}

func (*ThrowStatement) isStatement() {}

type BreakStatement struct {
	Range hcl.Range

	target *WhileStatement
}

func (s *BreakStatement) SyntaxRange() hcl.Range {
	return s.Range
}

// Target returns the loop exited by the statement, or nil before analysis.
func (s *BreakStatement) Target() *WhileStatement {
	return s.target
}

func (*BreakStatement) isStatement() {}

type ContinueStatement struct {
	Range hcl.Range

	target *WhileStatement
}

func (s *ContinueStatement) SyntaxRange() hcl.Range {
	return s.Range
}

// Target returns the loop continued by the statement, or nil before analysis.
func (s *ContinueStatement) Target() *WhileStatement {
	return s.target
}

func (*ContinueStatement) isStatement() {}

// IfStatement is a conditional without an else branch.
type IfStatement struct {
	Range hcl.Range

	Condition Expression
	Block     *Block
}

func (s *IfStatement) SyntaxRange() hcl.Range {
	return s.Range
}

func (*IfStatement) isStatement() {}

type IfElseStatement struct {
	Range hcl.Range

	Condition Expression
	Block     *Block
	ElseBlock *Block
}

func (s *IfElseStatement) SyntaxRange() hcl.Range {
	return s.Range
}

func (*IfElseStatement) isStatement() {}

// WhileStatement is a loop whose body may be empty.
type WhileStatement struct {
	Range hcl.Range

	Condition Expression
	Block     OptionalBlock

	continuous bool
}

func (s *WhileStatement) SyntaxRange() hcl.Range {
	return s.Range
}

func (*WhileStatement) isStatement() {}

// TryStatement guards a block with one or more catch clauses.
type TryStatement struct {
	Range hcl.Range

	Block   *Block
	Catches []*CatchClause
}

func (s *TryStatement) SyntaxRange() hcl.Range {
	return s.Range
}

func (*TryStatement) isStatement() {}

// CatchClause is a single handler of a TryStatement. BaseException names the exception family the clause may
// intercept; the declared variable's type must be assignable to it. An empty BaseException selects the analyzer's
// configured catch bound.
type CatchClause struct {
	Range hcl.Range

	BaseException string
	Declaration   *Declaration
	Block         OptionalBlock
}

func (c *CatchClause) SyntaxRange() hcl.Range {
	return c.Range
}
