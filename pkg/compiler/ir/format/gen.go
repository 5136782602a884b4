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

package format

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/scriptc/scriptc/pkg/compiler/ir"
	"github.com/scriptc/scriptc/pkg/util/contract"
)

// NodeGenerator generates output for each kind of IR node.
type NodeGenerator interface {
	GenClassNode(w io.Writer, n *ir.ClassNode)
	GenBlockNode(w io.Writer, n *ir.BlockNode)
	GenDeclarationNode(w io.Writer, n *ir.DeclarationNode)
	GenTryNode(w io.Writer, n *ir.TryNode)
	GenCatchNode(w io.Writer, n *ir.CatchNode)
	GenIfNode(w io.Writer, n *ir.IfNode)
	GenIfElseNode(w io.Writer, n *ir.IfElseNode)
	GenWhileNode(w io.Writer, n *ir.WhileNode)
	GenReturnNode(w io.Writer, n *ir.ReturnNode)
	GenThrowNode(w io.Writer, n *ir.ThrowNode)
	GenBreakNode(w io.Writer, n *ir.BreakNode)
	GenContinueNode(w io.Writer, n *ir.ContinueNode)
	GenStatementExpressionNode(w io.Writer, n *ir.StatementExpressionNode)
	GenConstantNode(w io.Writer, n *ir.ConstantNode)
	GenLoadVariableNode(w io.Writer, n *ir.LoadVariableNode)
}

// FormatFunc adapts a function to fmt.Formatter.
type FormatFunc func(f fmt.State, c rune)

// Format implements fmt.Formatter.
func (p FormatFunc) Format(f fmt.State, c rune) {
	p(f, c)
}

// Formatter is a convenience type that implements a number of common utilities used to emit text. It tracks the
// current indentation and dispatches IR nodes to a NodeGenerator.
type Formatter struct {
	// The current indent level as a string.
	Indent string

	// The NodeGenerator to use in {G,Fg}en{,f}
	g NodeGenerator
}

// NewFormatter creates a new formatter that will use the given NodeGenerator when generating output.
func NewFormatter(g NodeGenerator) *Formatter {
	return &Formatter{g: g}
}

// Indented bumps the current indentation level, invokes the given function, and then resets the indentation level to
// its prior value.
func (e *Formatter) Indented(f func()) {
	e.Indent += "    "
	f()
	e.Indent = e.Indent[:len(e.Indent)-4]
}

// Fprint prints one or more values to the given writer.
func (e *Formatter) Fprint(w io.Writer, a ...interface{}) {
	_, err := fmt.Fprint(w, a...)
	contract.IgnoreError(err)
}

// Fprintln prints one or more values to the given writer, followed by a newline.
func (e *Formatter) Fprintln(w io.Writer, a ...interface{}) {
	e.Fprint(w, a...)
	e.Fprint(w, "\n")
}

// Fprintf prints a formatted message to the given writer.
func (e *Formatter) Fprintf(w io.Writer, format string, a ...interface{}) {
	_, err := fmt.Fprintf(w, format, a...)
	contract.IgnoreError(err)
}

// Fgen generates output for a list of strings and IR trees. The former are written directly to the destination; the
// latter are recursively generated using the appropriate Gen* methods.
func (e *Formatter) Fgen(w io.Writer, vs ...interface{}) {
	for _, v := range vs {
		switch v := v.(type) {
		case string:
			_, err := fmt.Fprint(w, v)
			contract.IgnoreError(err)
		case *ir.ClassNode:
			e.g.GenClassNode(w, v)
		case *ir.BlockNode:
			e.g.GenBlockNode(w, v)
		case *ir.DeclarationNode:
			e.g.GenDeclarationNode(w, v)
		case *ir.TryNode:
			e.g.GenTryNode(w, v)
		case *ir.CatchNode:
			e.g.GenCatchNode(w, v)
		case *ir.IfNode:
			e.g.GenIfNode(w, v)
		case *ir.IfElseNode:
			e.g.GenIfElseNode(w, v)
		case *ir.WhileNode:
			e.g.GenWhileNode(w, v)
		case *ir.ReturnNode:
			e.g.GenReturnNode(w, v)
		case *ir.ThrowNode:
			e.g.GenThrowNode(w, v)
		case *ir.BreakNode:
			e.g.GenBreakNode(w, v)
		case *ir.ContinueNode:
			e.g.GenContinueNode(w, v)
		case *ir.StatementExpressionNode:
			e.g.GenStatementExpressionNode(w, v)
		case *ir.ConstantNode:
			e.g.GenConstantNode(w, v)
		case *ir.LoadVariableNode:
			e.g.GenLoadVariableNode(w, v)
		default:
			var rng hcl.Range
			if v, isNode := v.(ir.Node); isNode {
				rng = v.Location()
			}
			contract.Failf("unexpected IR node of type %T (%v)", v, rng)
		}
	}
}

// Fgenf generates output using a format string and its arguments. Any arguments that are IR nodes are wrapped in a
// FormatFunc that calls the appropriate recursive generation function.
func (e *Formatter) Fgenf(w io.Writer, format string, args ...interface{}) {
	for i := range args {
		if node, ok := args[i].(ir.Node); ok {
			args[i] = FormatFunc(func(f fmt.State, c rune) { e.Fgen(f, node) })
		}
	}
	fmt.Fprintf(w, format, args...)
}
