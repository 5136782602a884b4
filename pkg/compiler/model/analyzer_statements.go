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
	"github.com/scriptc/scriptc/pkg/util/contract"
)

// Analyze validates a statement and its children in the given scope and returns the statement's escape facts.
func (a *Analyzer) Analyze(s Statement, scope *Scope, input Input) (Output, error) {
	return a.analyzeStatement(s, scope, input)
}

func (a *Analyzer) analyzeStatement(s Statement, scope *Scope, input Input) (Output, error) {
	glog.V(9).Infof("analyzing %T at %v", s, s.SyntaxRange())

	switch s := s.(type) {
	case *Block:
		return a.analyzeBlock(s, scope.Child(), input)
	case *Declaration:
		return a.analyzeDeclaration(s, scope)
	case *ExpressionStatement:
		return a.analyzeExpressionStatement(s, scope)
	case *ReturnStatement:
		return a.analyzeReturn(s, scope)
	case *ThrowStatement:
		return a.analyzeThrow(s, scope)
	case *BreakStatement:
		return a.analyzeBreak(s, input)
	case *ContinueStatement:
		return a.analyzeContinue(s, input)
	case *IfStatement:
		return a.analyzeIf(s, scope, input)
	case *IfElseStatement:
		return a.analyzeIfElse(s, scope, input)
	case *WhileStatement:
		return a.analyzeWhile(s, scope)
	case *TryStatement:
		return a.analyzeTry(s, scope, input)
	default:
		contract.Failf("unexpected statement of type %T (%v)", s, s.SyntaxRange())
		return Output{}, nil
	}
}

// analyzeBlock analyzes each statement of b in order in the given scope. The caller owns the scope.
func (a *Analyzer) analyzeBlock(b *Block, scope *Scope, input Input) (Output, error) {
	var output Output
	for i, s := range b.Statements {
		if output.AllEscape {
			return Output{}, unreachableStatement(s.SyntaxRange())
		}

		last := i == len(b.Statements)-1
		statementOutput, err := a.analyzeStatement(s, scope, input.derive(input.LastSource && last))
		if err != nil {
			return Output{}, err
		}
		output = Sequence(output, statementOutput)
	}
	return output, nil
}

func (a *Analyzer) analyzeDeclaration(s *Declaration, scope *Scope) (Output, error) {
	typ, err := a.resolveType(s.TypeName, s.Range)
	if err != nil {
		return Output{}, err
	}

	// The initializer is resolved before the name is bound, so a declaration cannot refer to itself.
	if s.Value != nil {
		if err := a.analyzeExpression(s.Value, scope); err != nil {
			return Output{}, err
		}
	}

	v, err := scope.Declare(s.Name, typ, s.Range)
	if err != nil {
		return Output{}, err
	}
	s.variable = v
	return Output{StatementCount: 1}, nil
}

func (a *Analyzer) analyzeExpressionStatement(s *ExpressionStatement, scope *Scope) (Output, error) {
	if err := a.analyzeExpression(s.Expression, scope); err != nil {
		return Output{}, err
	}
	return Output{StatementCount: 1}, nil
}

func (a *Analyzer) analyzeReturn(s *ReturnStatement, scope *Scope) (Output, error) {
	if s.Value != nil {
		if err := a.analyzeExpression(s.Value, scope); err != nil {
			return Output{}, err
		}
	}
	return Output{MethodEscape: true, LoopEscape: true, AllEscape: true, StatementCount: 1}, nil
}

func (a *Analyzer) analyzeThrow(s *ThrowStatement, scope *Scope) (Output, error) {
	contract.Assertf(s.Value != nil, "throw without a value (%v)", s.Range)
	if err := a.analyzeExpression(s.Value, scope); err != nil {
		return Output{}, err
	}
	return Output{MethodEscape: true, LoopEscape: true, AllEscape: true, StatementCount: 1}, nil
}

func (a *Analyzer) analyzeBreak(s *BreakStatement, input Input) (Output, error) {
	if !input.InLoop {
		return Output{}, breakOutsideLoop(s.Range)
	}
	contract.Assertf(input.LastLoop != nil, "break inside a loop without a target (%v)", s.Range)

	s.target = input.LastLoop
	return Output{LoopEscape: true, AllEscape: true, AnyBreak: true, StatementCount: 1}, nil
}

func (a *Analyzer) analyzeContinue(s *ContinueStatement, input Input) (Output, error) {
	if !input.InLoop {
		return Output{}, continueOutsideLoop(s.Range)
	}
	contract.Assertf(input.LastLoop != nil, "continue inside a loop without a target (%v)", s.Range)

	s.target = input.LastLoop
	return Output{AllEscape: true, AnyContinue: true, StatementCount: 1}, nil
}

func (a *Analyzer) analyzeIf(s *IfStatement, scope *Scope, input Input) (Output, error) {
	if err := a.analyzeExpression(s.Condition, scope); err != nil {
		return Output{}, err
	}

	blockOutput, err := a.analyzeBlock(s.Block, scope.Child(), input.derive(input.LastSource))
	if err != nil {
		return Output{}, err
	}

	// The condition may be false, so the statement as a whole never escapes.
	return Output{
		AnyContinue:    blockOutput.AnyContinue,
		AnyBreak:       blockOutput.AnyBreak,
		StatementCount: blockOutput.StatementCount,
	}, nil
}

func (a *Analyzer) analyzeIfElse(s *IfElseStatement, scope *Scope, input Input) (Output, error) {
	if err := a.analyzeExpression(s.Condition, scope); err != nil {
		return Output{}, err
	}

	ifOutput, err := a.analyzeBlock(s.Block, scope.Child(), input.derive(input.LastSource))
	if err != nil {
		return Output{}, err
	}
	elseOutput, err := a.analyzeBlock(s.ElseBlock, scope.Child(), input.derive(input.LastSource))
	if err != nil {
		return Output{}, err
	}

	return MergeBranches(ifOutput, elseOutput), nil
}

func (a *Analyzer) analyzeWhile(s *WhileStatement, scope *Scope) (Output, error) {
	loopScope := scope.Child()

	if err := a.analyzeExpression(s.Condition, loopScope); err != nil {
		return Output{}, err
	}
	if literal, ok := s.Condition.(*LiteralValueExpression); ok {
		s.continuous = literal.isTrue()
	}

	output := Output{StatementCount: 1}

	block, ok := s.Block.Get()
	if !ok {
		if s.continuous {
			return Output{}, noLoopEscape(s.Range)
		}
		return output, nil
	}

	blockOutput, err := a.analyzeBlock(block, loopScope, Input{InLoop: true, LastLoop: s})
	if err != nil {
		return Output{}, err
	}
	if blockOutput.LoopEscape && !blockOutput.AnyContinue {
		return Output{}, extraneousLoop(s.Range)
	}

	// Loop exits are consumed here; only a loop that can never finish escapes its method.
	if s.continuous && !blockOutput.AnyBreak {
		output.MethodEscape = true
		output.AllEscape = true
	}
	output.StatementCount += blockOutput.StatementCount
	return output, nil
}
