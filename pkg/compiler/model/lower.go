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
	"github.com/scriptc/scriptc/pkg/compiler/ir"
	"github.com/scriptc/scriptc/pkg/util/contract"
)

// Lower converts the analyzed unit to IR. Lowering performs no semantic checks. Calling Lower on a unit that has
// not been analyzed successfully is a programming error.
func (u *Unit) Lower() *ir.ClassNode {
	contract.Assertf(u.state == analyzed, "unit %q lowered before successful analysis", u.Name)

	glog.V(5).Infof("lowering unit %q", u.Name)
	return &ir.ClassNode{
		Name:      u.Name,
		Range:     u.Range,
		Body:      lowerBlock(u.Body),
		MaxLocals: u.maxLocals,
	}
}

// Lower converts an analyzed statement to IR. The statement must have been analyzed successfully; state missing
// because it was not is reported as an internal failure.
func Lower(s Statement) ir.StatementNode {
	switch s := s.(type) {
	case *Block:
		return lowerBlock(s)
	case *Declaration:
		return lowerDeclaration(s)
	case *ExpressionStatement:
		return &ir.StatementExpressionNode{Range: s.Range, Expression: lowerExpression(s.Expression)}
	case *ReturnStatement:
		return &ir.ReturnNode{Range: s.Range, Value: lowerOptionalExpression(s.Value)}
	case *ThrowStatement:
		return &ir.ThrowNode{Range: s.Range, Value: lowerExpression(s.Value)}
	case *BreakStatement:
		contract.Assertf(s.target != nil, "break lowered without a target (%v)", s.Range)
		return &ir.BreakNode{Range: s.Range}
	case *ContinueStatement:
		contract.Assertf(s.target != nil, "continue lowered without a target (%v)", s.Range)
		return &ir.ContinueNode{Range: s.Range}
	case *IfStatement:
		return &ir.IfNode{
			Range:     s.Range,
			Condition: lowerExpression(s.Condition),
			Block:     lowerBlock(s.Block),
		}
	case *IfElseStatement:
		return &ir.IfElseNode{
			Range:     s.Range,
			Condition: lowerExpression(s.Condition),
			Block:     lowerBlock(s.Block),
			ElseBlock: lowerBlock(s.ElseBlock),
		}
	case *WhileStatement:
		return &ir.WhileNode{
			Range:      s.Range,
			Condition:  lowerExpression(s.Condition),
			Block:      lowerOptionalBlock(s.Block),
			Continuous: s.continuous,
		}
	case *TryStatement:
		catches := make([]*ir.CatchNode, len(s.Catches))
		for i, c := range s.Catches {
			catches[i] = LowerCatch(c)
		}
		return &ir.TryNode{Range: s.Range, Block: lowerBlock(s.Block), Catches: catches}
	default:
		contract.Failf("unexpected statement of type %T (%v)", s, s.SyntaxRange())
		return nil
	}
}

// LowerCatch converts an analyzed catch clause to IR.
func LowerCatch(c *CatchClause) *ir.CatchNode {
	return &ir.CatchNode{
		Range:       c.Range,
		Declaration: lowerDeclaration(c.Declaration),
		Block:       lowerOptionalBlock(c.Block),
	}
}

func lowerBlock(b *Block) *ir.BlockNode {
	statements := make([]ir.StatementNode, len(b.Statements))
	for i, s := range b.Statements {
		statements[i] = Lower(s)
	}
	return &ir.BlockNode{Range: b.Range, Statements: statements}
}

func lowerOptionalBlock(o OptionalBlock) *ir.BlockNode {
	if b, ok := o.Get(); ok {
		return lowerBlock(b)
	}
	return nil
}

func lowerDeclaration(s *Declaration) *ir.DeclarationNode {
	contract.Assertf(s.variable != nil, "declaration of %q lowered before analysis (%v)", s.Name, s.Range)
	return &ir.DeclarationNode{
		Range:    s.Range,
		Name:     s.Name,
		TypeName: s.variable.Type.CanonicalName(),
		Slot:     s.variable.Slot,
		Value:    lowerOptionalExpression(s.Value),
	}
}

func lowerOptionalExpression(x Expression) ir.ExpressionNode {
	if x == nil {
		return nil
	}
	return lowerExpression(x)
}

func lowerExpression(x Expression) ir.ExpressionNode {
	switch x := x.(type) {
	case *LiteralValueExpression:
		return &ir.ConstantNode{Range: x.Range, Value: x.Value}
	case *VariableAccessExpression:
		contract.Assertf(x.variable != nil, "access to %q lowered before analysis (%v)", x.Name, x.Range)
		return &ir.LoadVariableNode{Range: x.Range, Name: x.Name, Slot: x.variable.Slot}
	default:
		contract.Failf("unexpected expression of type %T (%v)", x, x.SyntaxRange())
		return nil
	}
}
