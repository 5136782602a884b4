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
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/scriptc/scriptc/pkg/compiler/ir"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func at(line int) hcl.Range {
	return hcl.Range{
		Filename: "main.script",
		Start:    hcl.Pos{Line: line, Column: 1},
		End:      hcl.Pos{Line: line, Column: 5},
	}
}

func load(line int, name string, slot int) *ir.LoadVariableNode {
	return &ir.LoadVariableNode{Range: at(line), Name: name, Slot: slot}
}

func sampleClass() *ir.ClassNode {
	return &ir.ClassNode{
		Name:      "main",
		Range:     at(1),
		MaxLocals: 2,
		Body: &ir.BlockNode{
			Range: at(1),
			Statements: []ir.StatementNode{
				&ir.DeclarationNode{
					Range:    at(2),
					Name:     "n",
					TypeName: "int",
					Value:    &ir.ConstantNode{Range: at(2), Value: cty.NumberIntVal(3)},
				},
				&ir.WhileNode{
					Range:      at(3),
					Condition:  &ir.ConstantNode{Range: at(3), Value: cty.True},
					Continuous: true,
					Block: &ir.BlockNode{
						Range: at(4),
						Statements: []ir.StatementNode{
							&ir.TryNode{
								Range: at(4),
								Block: &ir.BlockNode{
									Range: at(5),
									Statements: []ir.StatementNode{
										&ir.StatementExpressionNode{Range: at(5), Expression: load(5, "n", 0)},
										&ir.BreakNode{Range: at(6)},
									},
								},
								Catches: []*ir.CatchNode{
									{
										Range:       at(7),
										Declaration: &ir.DeclarationNode{Range: at(7), Name: "e", TypeName: "Exception", Slot: 1},
										Block: &ir.BlockNode{
											Range:      at(8),
											Statements: []ir.StatementNode{&ir.ContinueNode{Range: at(8)}},
										},
									},
									{
										Range:       at(9),
										Declaration: &ir.DeclarationNode{Range: at(9), Name: "ignored", TypeName: "Error", Slot: 1},
									},
								},
							},
						},
					},
				},
				&ir.WhileNode{
					Range:     at(10),
					Condition: load(10, "n", 0),
				},
				&ir.IfElseNode{
					Range:     at(11),
					Condition: load(11, "n", 0),
					Block: &ir.BlockNode{
						Range:      at(12),
						Statements: []ir.StatementNode{&ir.ReturnNode{Range: at(12)}},
					},
					ElseBlock: &ir.BlockNode{
						Range: at(13),
						Statements: []ir.StatementNode{
							&ir.ThrowNode{Range: at(13), Value: &ir.ConstantNode{Range: at(13), Value: cty.StringVal("failed")}},
						},
					},
				},
			},
		},
	}
}

func TestSprint(t *testing.T) {
	expected := `class main (locals: 2)
    block
        declare int n #0 = 3
        loop
            block
                try
                    block
                        eval n#0
                        break
                    catch
                        declare Exception e #1
                        block
                            continue
                    catch
                        declare Error ignored #1
        while n#0
        if n#0
            block
                return
        else
            block
                throw "failed"
`
	assert.Equal(t, expected, Sprint(sampleClass()))
}

func TestFprintLocations(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, &ir.IfNode{
		Range:     at(1),
		Condition: load(1, "ready", 0),
		Block: &ir.BlockNode{
			Range:      at(2),
			Statements: []ir.StatementNode{&ir.ReturnNode{Range: at(3), Value: load(3, "ready", 0)}},
		},
	}, true)

	expected := `if ready#0 @ main.script:1,1-5
    block @ main.script:2,1-5
        return ready#0 @ main.script:3,1-5
`
	assert.Equal(t, expected, buf.String())
}

func TestConstantString(t *testing.T) {
	cases := []struct {
		value    cty.Value
		expected string
	}{
		{cty.NullVal(cty.String), "null"},
		{cty.UnknownVal(cty.Number), "unknown"},
		{cty.False, "false"},
		{cty.NumberIntVal(42), "42"},
		{cty.NumberFloatVal(1.5), "1.5"},
		{cty.StringVal("a \"b\""), `"a \"b\""`},
		{cty.ListValEmpty(cty.String), "<list of string>"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, constantString(c.value))
	}
}

type notANode struct{}

func TestFgenUnexpectedNodePanics(t *testing.T) {
	assert.Panics(t, func() {
		var buf bytes.Buffer
		NewPrinter(false).Fgen(&buf, notANode{})
	})
}
