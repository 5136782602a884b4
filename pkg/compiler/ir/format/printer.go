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
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/scriptc/scriptc/pkg/compiler/ir"
	"github.com/zclconf/go-cty/cty"
)

// Printer renders IR trees as indented text, one statement per line, with expressions inlined.
type Printer struct {
	*Formatter

	// ShowLocations appends each statement's source range to its line.
	ShowLocations bool
}

var _ NodeGenerator = (*Printer)(nil)

// NewPrinter creates a new IR printer.
func NewPrinter(showLocations bool) *Printer {
	p := &Printer{ShowLocations: showLocations}
	p.Formatter = NewFormatter(p)
	return p
}

// Fprint writes the textual form of the given node to w.
func Fprint(w io.Writer, n ir.Node, showLocations bool) {
	NewPrinter(showLocations).Fgen(w, n)
}

// Sprint returns the textual form of the given node.
func Sprint(n ir.Node) string {
	var buf bytes.Buffer
	Fprint(&buf, n, false)
	return buf.String()
}

func (p *Printer) line(w io.Writer, rng hcl.Range, format string, args ...interface{}) {
	p.Fprint(w, p.Indent)
	p.Fgenf(w, format, args...)
	if p.ShowLocations {
		p.Fprintf(w, " @ %v", rng)
	}
	p.Fprint(w, "\n")
}

func (p *Printer) GenClassNode(w io.Writer, n *ir.ClassNode) {
	p.line(w, n.Range, "class %s (locals: %d)", n.Name, n.MaxLocals)
	p.Indented(func() {
		p.Fgen(w, n.Body)
	})
}

func (p *Printer) GenBlockNode(w io.Writer, n *ir.BlockNode) {
	p.line(w, n.Range, "block")
	p.Indented(func() {
		for _, s := range n.Statements {
			p.Fgen(w, s)
		}
	})
}

func (p *Printer) GenDeclarationNode(w io.Writer, n *ir.DeclarationNode) {
	if n.Value == nil {
		p.line(w, n.Range, "declare %s %s #%d", n.TypeName, n.Name, n.Slot)
		return
	}
	p.line(w, n.Range, "declare %s %s #%d = %v", n.TypeName, n.Name, n.Slot, n.Value)
}

func (p *Printer) GenTryNode(w io.Writer, n *ir.TryNode) {
	p.line(w, n.Range, "try")
	p.Indented(func() {
		p.Fgen(w, n.Block)
		for _, c := range n.Catches {
			p.Fgen(w, c)
		}
	})
}

func (p *Printer) GenCatchNode(w io.Writer, n *ir.CatchNode) {
	p.line(w, n.Range, "catch")
	p.Indented(func() {
		p.Fgen(w, n.Declaration)
		if n.Block != nil {
			p.Fgen(w, n.Block)
		}
	})
}

func (p *Printer) GenIfNode(w io.Writer, n *ir.IfNode) {
	p.line(w, n.Range, "if %v", n.Condition)
	p.Indented(func() {
		p.Fgen(w, n.Block)
	})
}

func (p *Printer) GenIfElseNode(w io.Writer, n *ir.IfElseNode) {
	p.line(w, n.Range, "if %v", n.Condition)
	p.Indented(func() {
		p.Fgen(w, n.Block)
	})
	p.line(w, n.ElseBlock.Range, "else")
	p.Indented(func() {
		p.Fgen(w, n.ElseBlock)
	})
}

func (p *Printer) GenWhileNode(w io.Writer, n *ir.WhileNode) {
	if n.Continuous {
		p.line(w, n.Range, "loop")
	} else {
		p.line(w, n.Range, "while %v", n.Condition)
	}
	if n.Block != nil {
		p.Indented(func() {
			p.Fgen(w, n.Block)
		})
	}
}

func (p *Printer) GenReturnNode(w io.Writer, n *ir.ReturnNode) {
	if n.Value == nil {
		p.line(w, n.Range, "return")
		return
	}
	p.line(w, n.Range, "return %v", n.Value)
}

func (p *Printer) GenThrowNode(w io.Writer, n *ir.ThrowNode) {
	p.line(w, n.Range, "throw %v", n.Value)
}

func (p *Printer) GenBreakNode(w io.Writer, n *ir.BreakNode) {
	p.line(w, n.Range, "break")
}

func (p *Printer) GenContinueNode(w io.Writer, n *ir.ContinueNode) {
	p.line(w, n.Range, "continue")
}

func (p *Printer) GenStatementExpressionNode(w io.Writer, n *ir.StatementExpressionNode) {
	p.line(w, n.Range, "eval %v", n.Expression)
}

func (p *Printer) GenConstantNode(w io.Writer, n *ir.ConstantNode) {
	p.Fprint(w, constantString(n.Value))
}

func (p *Printer) GenLoadVariableNode(w io.Writer, n *ir.LoadVariableNode) {
	p.Fprintf(w, "%s#%d", n.Name, n.Slot)
}

func constantString(v cty.Value) string {
	switch {
	case v.IsNull():
		return "null"
	case !v.IsKnown():
		return "unknown"
	case v.Type() == cty.Bool:
		return strconv.FormatBool(v.True())
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('g', -1)
	case v.Type() == cty.String:
		return strconv.Quote(v.AsString())
	default:
		return fmt.Sprintf("<%s>", v.Type().FriendlyName())
	}
}
