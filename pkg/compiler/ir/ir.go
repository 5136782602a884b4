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

// Package ir defines the intermediate representation handed to the bytecode emitter. IR trees mirror the structure of
// analyzed statements but carry no semantic facts: only what the emitter needs, such as variable slots and source
// locations for debug information. Nodes are not modified once lowering has produced them.
package ir

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Node is any IR node.
type Node interface {
	Location() hcl.Range

	isNode()
}

// StatementNode is an IR node for a statement.
type StatementNode interface {
	Node

	isStatement()
}

// ExpressionNode is an IR node for an expression.
type ExpressionNode interface {
	Node

	isExpression()
}

// ClassNode is the root of a lowered compilation unit.
type ClassNode struct {
	Name  string
	Range hcl.Range

	Body *BlockNode
	// MaxLocals is the number of variable slots used by the unit.
	MaxLocals int
}

func (n *ClassNode) Location() hcl.Range {
	return n.Range
}

func (*ClassNode) isNode() {}

type BlockNode struct {
	Range hcl.Range

	Statements []StatementNode
}

func (n *BlockNode) Location() hcl.Range {
	return n.Range
}

func (*BlockNode) isNode()      {}
func (*BlockNode) isStatement() {}

// DeclarationNode stores an optional initial value into a variable slot.
type DeclarationNode struct {
	Range hcl.Range

	Name     string
	TypeName string
	Slot     int
	Value    ExpressionNode
}

func (n *DeclarationNode) Location() hcl.Range {
	return n.Range
}

func (*DeclarationNode) isNode()      {}
func (*DeclarationNode) isStatement() {}

// CatchNode is a single handler of a TryNode. Block is nil for an empty handler.
type CatchNode struct {
	Range hcl.Range

	Declaration *DeclarationNode
	Block       *BlockNode
}

func (n *CatchNode) Location() hcl.Range {
	return n.Range
}

func (*CatchNode) isNode() {}

type TryNode struct {
	Range hcl.Range

	Block   *BlockNode
	Catches []*CatchNode
}

func (n *TryNode) Location() hcl.Range {
	return n.Range
}

func (*TryNode) isNode()      {}
func (*TryNode) isStatement() {}

type IfNode struct {
	Range hcl.Range

	Condition ExpressionNode
	Block     *BlockNode
}

func (n *IfNode) Location() hcl.Range {
	return n.Range
}

func (*IfNode) isNode()      {}
func (*IfNode) isStatement() {}

type IfElseNode struct {
	Range hcl.Range

	Condition ExpressionNode
	Block     *BlockNode
	ElseBlock *BlockNode
}

func (n *IfElseNode) Location() hcl.Range {
	return n.Range
}

func (*IfElseNode) isNode()      {}
func (*IfElseNode) isStatement() {}

// WhileNode is a loop. Continuous is set when the condition is the constant true, in which case the emitter may omit
// the condition check.
type WhileNode struct {
	Range hcl.Range

	Condition  ExpressionNode
	Block      *BlockNode
	Continuous bool
}

func (n *WhileNode) Location() hcl.Range {
	return n.Range
}

func (*WhileNode) isNode()      {}
func (*WhileNode) isStatement() {}

type ReturnNode struct {
	Range hcl.Range

	Value ExpressionNode
}

func (n *ReturnNode) Location() hcl.Range {
	return n.Range
}

func (*ReturnNode) isNode()      {}
func (*ReturnNode) isStatement() {}

type ThrowNode struct {
	Range hcl.Range

	Value ExpressionNode
}

func (n *ThrowNode) Location() hcl.Range {
	return n.Range
}

func (*ThrowNode) isNode()      {}
func (*ThrowNode) isStatement() {}

type BreakNode struct {
	Range hcl.Range
}

func (n *BreakNode) Location() hcl.Range {
	return n.Range
}

func (*BreakNode) isNode()      {}
func (*BreakNode) isStatement() {}

type ContinueNode struct {
	Range hcl.Range
}

func (n *ContinueNode) Location() hcl.Range {
	return n.Range
}

func (*ContinueNode) isNode()      {}
func (*ContinueNode) isStatement() {}

// StatementExpressionNode evaluates an expression for its side effects and discards the result.
type StatementExpressionNode struct {
	Range hcl.Range

	Expression ExpressionNode
}

func (n *StatementExpressionNode) Location() hcl.Range {
	return n.Range
}

func (*StatementExpressionNode) isNode()      {}
func (*StatementExpressionNode) isStatement() {}

type ConstantNode struct {
	Range hcl.Range

	Value cty.Value
}

func (n *ConstantNode) Location() hcl.Range {
	return n.Range
}

func (*ConstantNode) isNode()       {}
func (*ConstantNode) isExpression() {}

type LoadVariableNode struct {
	Range hcl.Range

	Name string
	Slot int
}

func (n *LoadVariableNode) Location() hcl.Range {
	return n.Range
}

func (*LoadVariableNode) isNode()       {}
func (*LoadVariableNode) isExpression() {}
