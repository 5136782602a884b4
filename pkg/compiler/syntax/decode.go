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

package syntax

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/scriptc/scriptc/pkg/compiler/model"
	"github.com/zclconf/go-cty/cty"
)

// DecodeUnit converts a parsed file into a compilation unit. Every malformed statement is reported.
func DecodeUnit(f *File) (*model.Unit, hcl.Diagnostics) {
	body, diagnostics := decodeStatements(f.Body)
	if diagnostics.HasErrors() {
		return nil, diagnostics
	}
	return model.NewUnit(f.UnitName(), body), diagnostics
}

// decodeStatements decodes each block of body as a statement. Attributes other than the named ones are rejected.
func decodeStatements(body *hclsyntax.Body, attrs ...string) (*model.Block, hcl.Diagnostics) {
	diagnostics := unsupportedAttributes(body, attrs...)

	statements := make([]model.Statement, 0, len(body.Blocks))
	for _, block := range sourceOrderBlocks(body.Blocks) {
		s, sDiags := decodeStatement(block)
		diagnostics = append(diagnostics, sDiags...)
		if s != nil {
			statements = append(statements, s)
		}
	}
	return &model.Block{Range: body.SrcRange, Statements: statements}, diagnostics
}

func decodeStatement(block *hclsyntax.Block) (model.Statement, hcl.Diagnostics) {
	switch block.Type {
	case "declaration":
		return decodeDeclaration(block)
	case "expression":
		value, diagnostics := requiredExpression(block, "value")
		diagnostics = append(diagnostics, noLabels(block)...)
		diagnostics = append(diagnostics, leafBody(block, "value")...)
		return &model.ExpressionStatement{Range: block.Range(), Expression: value}, diagnostics
	case "return":
		value, diagnostics := optionalExpression(block, "value")
		diagnostics = append(diagnostics, noLabels(block)...)
		diagnostics = append(diagnostics, leafBody(block, "value")...)
		return &model.ReturnStatement{Range: block.Range(), Value: value}, diagnostics
	case "throw":
		value, diagnostics := requiredExpression(block, "value")
		diagnostics = append(diagnostics, noLabels(block)...)
		diagnostics = append(diagnostics, leafBody(block, "value")...)
		return &model.ThrowStatement{Range: block.Range(), Value: value}, diagnostics
	case "break":
		diagnostics := append(noLabels(block), leafBody(block)...)
		return &model.BreakStatement{Range: block.Range()}, diagnostics
	case "continue":
		diagnostics := append(noLabels(block), leafBody(block)...)
		return &model.ContinueStatement{Range: block.Range()}, diagnostics
	case "block":
		body, diagnostics := decodeStatements(block.Body)
		diagnostics = append(diagnostics, noLabels(block)...)
		body.Range = block.Range()
		return body, diagnostics
	case "if":
		return decodeIf(block)
	case "while":
		return decodeWhile(block)
	case "try":
		return decodeTry(block)
	default:
		return nil, hcl.Diagnostics{errorf(block.TypeRange, "unsupported statement %q", block.Type)}
	}
}

func decodeDeclaration(block *hclsyntax.Block) (model.Statement, hcl.Diagnostics) {
	if len(block.Labels) != 2 {
		return nil, hcl.Diagnostics{labelsErrorf(block, "declarations must have exactly two labels: a type and a name")}
	}

	value, diagnostics := optionalExpression(block, "value")
	diagnostics = append(diagnostics, leafBody(block, "value")...)
	return &model.Declaration{
		Range:    block.Range(),
		TypeName: block.Labels[0],
		Name:     block.Labels[1],
		Value:    value,
	}, diagnostics
}

func decodeIf(block *hclsyntax.Block) (model.Statement, hcl.Diagnostics) {
	condition, diagnostics := requiredExpression(block, "condition")
	diagnostics = append(diagnostics, noLabels(block)...)
	diagnostics = append(diagnostics, unsupportedAttributes(block.Body, "condition")...)

	var then, els *model.Block
	for _, child := range sourceOrderBlocks(block.Body.Blocks) {
		var dest **model.Block
		switch child.Type {
		case "then":
			dest = &then
		case "else":
			dest = &els
		default:
			diagnostics = append(diagnostics, errorf(child.TypeRange, "unsupported block %q in if statement", child.Type))
			continue
		}
		if *dest != nil {
			diagnostics = append(diagnostics, errorf(child.TypeRange, "duplicate %q block in if statement", child.Type))
			continue
		}
		body, bodyDiags := decodeBranch(child)
		*dest, diagnostics = body, append(diagnostics, bodyDiags...)
	}

	if then == nil {
		diagnostics = append(diagnostics, errorf(block.TypeRange, "if statement requires a \"then\" block"))
		return nil, diagnostics
	}
	if els == nil {
		return &model.IfStatement{Range: block.Range(), Condition: condition, Block: then}, diagnostics
	}
	return &model.IfElseStatement{Range: block.Range(), Condition: condition, Block: then, ElseBlock: els},
		diagnostics
}

func decodeWhile(block *hclsyntax.Block) (model.Statement, hcl.Diagnostics) {
	condition, diagnostics := requiredExpression(block, "condition")
	diagnostics = append(diagnostics, noLabels(block)...)
	diagnostics = append(diagnostics, unsupportedAttributes(block.Body, "condition")...)

	loop := &model.WhileStatement{Range: block.Range(), Condition: condition, Block: model.NoBlock()}
	seen := false
	for _, child := range sourceOrderBlocks(block.Body.Blocks) {
		if child.Type != "body" {
			diagnostics = append(diagnostics, errorf(child.TypeRange, "unsupported block %q in while statement", child.Type))
			continue
		}
		if seen {
			diagnostics = append(diagnostics, errorf(child.TypeRange, "duplicate \"body\" block in while statement"))
			continue
		}
		seen = true

		body, bodyDiags := decodeBranch(child)
		diagnostics = append(diagnostics, bodyDiags...)
		if len(body.Statements) != 0 {
			loop.Block = model.SomeBlock(body)
		}
	}
	return loop, diagnostics
}

func decodeTry(block *hclsyntax.Block) (model.Statement, hcl.Diagnostics) {
	diagnostics := append(noLabels(block), unsupportedAttributes(block.Body)...)

	try := &model.TryStatement{Range: block.Range()}
	for _, child := range sourceOrderBlocks(block.Body.Blocks) {
		switch child.Type {
		case "body":
			if try.Block != nil {
				diagnostics = append(diagnostics, errorf(child.TypeRange, "duplicate \"body\" block in try statement"))
				continue
			}
			body, bodyDiags := decodeBranch(child)
			try.Block, diagnostics = body, append(diagnostics, bodyDiags...)
		case "catch":
			c, catchDiags := decodeCatch(child)
			diagnostics = append(diagnostics, catchDiags...)
			if c != nil {
				try.Catches = append(try.Catches, c)
			}
		default:
			diagnostics = append(diagnostics, errorf(child.TypeRange, "unsupported block %q in try statement", child.Type))
		}
	}
	return try, diagnostics
}

func decodeCatch(block *hclsyntax.Block) (*model.CatchClause, hcl.Diagnostics) {
	if len(block.Labels) != 2 {
		return nil, hcl.Diagnostics{labelsErrorf(block, "catch clauses must have exactly two labels: a type and a name")}
	}

	var diagnostics hcl.Diagnostics
	var bound string
	if attr, ok := block.Body.Attributes["bound"]; ok {
		v, boundDiags := attr.Expr.Value(nil)
		diagnostics = append(diagnostics, boundDiags...)
		if !boundDiags.HasErrors() {
			if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
				diagnostics = append(diagnostics, errorf(attr.Expr.Range(), "catch bound must be a type name string"))
			} else {
				bound = v.AsString()
			}
		}
	}

	handler, handlerDiags := decodeStatements(block.Body, "bound")
	diagnostics = append(diagnostics, handlerDiags...)

	c := &model.CatchClause{
		Range:         block.Range(),
		BaseException: bound,
		Declaration: &model.Declaration{
			Range:    hcl.RangeBetween(block.LabelRanges[0], block.LabelRanges[1]),
			TypeName: block.Labels[0],
			Name:     block.Labels[1],
		},
		Block: model.NoBlock(),
	}
	if len(handler.Statements) != 0 {
		handler.Range = hcl.RangeBetween(block.OpenBraceRange, block.CloseBraceRange)
		c.Block = model.SomeBlock(handler)
	}
	return c, diagnostics
}

// decodeBranch decodes a nested statement list such as an if statement's "then" block.
func decodeBranch(block *hclsyntax.Block) (*model.Block, hcl.Diagnostics) {
	body, diagnostics := decodeStatements(block.Body)
	diagnostics = append(diagnostics, noLabels(block)...)
	body.Range = hcl.RangeBetween(block.OpenBraceRange, block.CloseBraceRange)
	return body, diagnostics
}

func requiredExpression(block *hclsyntax.Block, name string) (model.Expression, hcl.Diagnostics) {
	attr, ok := block.Body.Attributes[name]
	if !ok {
		return nil, hcl.Diagnostics{errorf(block.TypeRange, "%s statement requires a %q attribute", block.Type, name)}
	}
	return decodeExpression(attr.Expr)
}

func optionalExpression(block *hclsyntax.Block, name string) (model.Expression, hcl.Diagnostics) {
	attr, ok := block.Body.Attributes[name]
	if !ok {
		return nil, nil
	}
	return decodeExpression(attr.Expr)
}

func decodeExpression(expr hclsyntax.Expression) (model.Expression, hcl.Diagnostics) {
	switch expr := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return &model.LiteralValueExpression{Range: expr.Range(), Value: expr.Val}, nil
	case *hclsyntax.TemplateExpr:
		if expr.IsStringLiteral() {
			v, diagnostics := expr.Value(nil)
			return &model.LiteralValueExpression{Range: expr.Range(), Value: v}, diagnostics
		}
	case *hclsyntax.ScopeTraversalExpr:
		if len(expr.Traversal) == 1 {
			return &model.VariableAccessExpression{Range: expr.Range(), Name: expr.Traversal.RootName()}, nil
		}
	}
	return nil, hcl.Diagnostics{errorf(expr.Range(), "unsupported expression; expected a literal or a variable name")}
}

// leafBody reports any nested blocks or unexpected attributes in a statement that has no child statements.
func leafBody(block *hclsyntax.Block, attrs ...string) hcl.Diagnostics {
	diagnostics := unsupportedAttributes(block.Body, attrs...)
	for _, child := range sourceOrderBlocks(block.Body.Blocks) {
		diagnostics = append(diagnostics, errorf(child.TypeRange, "unsupported block %q in %s statement", child.Type,
			block.Type))
	}
	return diagnostics
}

func unsupportedAttributes(body *hclsyntax.Body, allowed ...string) hcl.Diagnostics {
	allowedSet := stringSet{}
	for _, name := range allowed {
		allowedSet.add(name)
	}

	var diagnostics hcl.Diagnostics
	for _, attr := range sourceOrderAttributes(body.Attributes) {
		if !allowedSet.has(attr.Name) {
			diagnostics = append(diagnostics, errorf(attr.NameRange, "unsupported attribute %q", attr.Name))
		}
	}
	return diagnostics
}

func noLabels(block *hclsyntax.Block) hcl.Diagnostics {
	if len(block.Labels) == 0 {
		return nil
	}
	return hcl.Diagnostics{labelsErrorf(block, "%s statements do not support labels", block.Type)}
}
