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

import "fmt"

// Input holds the control-flow facts a statement inherits from its parent.
type Input struct {
	// LastSource is set when the statement is the last one of the enclosing unit's body.
	LastSource bool
	// InLoop is set when some enclosing statement is a loop.
	InLoop bool
	// LastLoop is the nearest enclosing loop, or nil.
	LastLoop *WhileStatement
}

// derive returns the Input for a child statement that does not itself change the loop context.
func (in Input) derive(lastSource bool) Input {
	return Input{
		LastSource: lastSource,
		InLoop:     in.InLoop,
		LastLoop:   in.LastLoop,
	}
}

// Output holds the escape facts a statement reports to its parent. The zero value describes a statement that always
// falls through.
type Output struct {
	// MethodEscape is set when every path exits the enclosing method, by return or throw.
	MethodEscape bool
	// LoopEscape is set when every path exits the enclosing loop.
	LoopEscape bool
	// AllEscape is set when every path terminates abnormally or returns.
	AllEscape bool
	// AnyContinue is set when at least one path continues the enclosing loop.
	AnyContinue bool
	// AnyBreak is set when at least one path breaks out of the enclosing loop.
	AnyBreak bool
	// StatementCount is the number of statements analyzed.
	StatementCount int
}

func (out Output) String() string {
	return fmt.Sprintf("{method:%v loop:%v all:%v continue:%v break:%v count:%d}",
		out.MethodEscape, out.LoopEscape, out.AllEscape, out.AnyContinue, out.AnyBreak, out.StatementCount)
}

// Sequence combines the output of a statement sequence so far with that of the statement that follows it. Escapes
// are those of the later statement, since it is the one control reaches last.
func Sequence(prev, next Output) Output {
	return Output{
		MethodEscape:   next.MethodEscape,
		LoopEscape:     next.LoopEscape,
		AllEscape:      next.AllEscape,
		AnyContinue:    prev.AnyContinue || next.AnyContinue,
		AnyBreak:       prev.AnyBreak || next.AnyBreak,
		StatementCount: prev.StatementCount + next.StatementCount,
	}
}

// MergeBranches combines the outputs of alternative paths. A parent escapes only if every path escapes, while it
// breaks or continues if any path does.
func MergeBranches(outputs ...Output) Output {
	if len(outputs) == 0 {
		return Output{}
	}

	merged := Output{MethodEscape: true, LoopEscape: true, AllEscape: true}
	for _, out := range outputs {
		merged.MethodEscape = merged.MethodEscape && out.MethodEscape
		merged.LoopEscape = merged.LoopEscape && out.LoopEscape
		merged.AllEscape = merged.AllEscape && out.AllEscape
		merged.AnyContinue = merged.AnyContinue || out.AnyContinue
		merged.AnyBreak = merged.AnyBreak || out.AnyBreak
		merged.StatementCount += out.StatementCount
	}
	return merged
}
