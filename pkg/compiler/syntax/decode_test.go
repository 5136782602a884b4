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
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/scriptc/scriptc/pkg/compiler/lookup"
	"github.com/scriptc/scriptc/pkg/compiler/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func parse(t *testing.T, src string) *File {
	f, diagnostics, err := ParseFile(strings.NewReader(src), "scripts/handler.script")
	require.NoError(t, err)
	require.False(t, diagnostics.HasErrors(), "%v", diagnostics)
	return f
}

func decode(t *testing.T, src string) *model.Unit {
	unit, diagnostics := DecodeUnit(parse(t, src))
	require.False(t, diagnostics.HasErrors(), "%v", diagnostics)
	return unit
}

func summaries(diagnostics hcl.Diagnostics) []string {
	result := make([]string, len(diagnostics))
	for i, d := range diagnostics {
		result[i] = d.Summary
	}
	return result
}

const handlerScript = `
declaration "int" "attempts" {
  value = 3
}

while {
  condition = true

  body {
    try {
      body {
        expression {
          value = attempts
        }
        return {
          value = "done"
        }
      }

      catch "IllegalStateException" "e" {
        bound = "RuntimeException"

        continue {}
      }

      catch "Exception" "ignored" {}
    }
  }
}
`

func TestDecodeUnit(t *testing.T) {
	unit := decode(t, handlerScript)

	assert.Equal(t, "handler", unit.Name)
	require.Len(t, unit.Body.Statements, 2)

	decl, ok := unit.Body.Statements[0].(*model.Declaration)
	require.True(t, ok)
	assert.Equal(t, "int", decl.TypeName)
	assert.Equal(t, "attempts", decl.Name)
	value, ok := decl.Value.(*model.LiteralValueExpression)
	require.True(t, ok)
	assert.True(t, value.Value.RawEquals(cty.NumberIntVal(3)))

	loop, ok := unit.Body.Statements[1].(*model.WhileStatement)
	require.True(t, ok)
	condition, ok := loop.Condition.(*model.LiteralValueExpression)
	require.True(t, ok)
	assert.True(t, condition.Value.RawEquals(cty.True))

	body, ok := loop.Block.Get()
	require.True(t, ok)
	require.Len(t, body.Statements, 1)

	try, ok := body.Statements[0].(*model.TryStatement)
	require.True(t, ok)
	require.NotNil(t, try.Block)
	require.Len(t, try.Block.Statements, 2)
	access, ok := try.Block.Statements[0].(*model.ExpressionStatement).Expression.(*model.VariableAccessExpression)
	require.True(t, ok)
	assert.Equal(t, "attempts", access.Name)

	require.Len(t, try.Catches, 2)

	first := try.Catches[0]
	assert.Equal(t, "RuntimeException", first.BaseException)
	assert.Equal(t, "IllegalStateException", first.Declaration.TypeName)
	assert.Equal(t, "e", first.Declaration.Name)
	handler, ok := first.Block.Get()
	require.True(t, ok)
	require.Len(t, handler.Statements, 1)
	_, ok = handler.Statements[0].(*model.ContinueStatement)
	assert.True(t, ok)

	second := try.Catches[1]
	assert.Equal(t, "", second.BaseException)
	assert.Equal(t, "ignored", second.Declaration.Name)
	_, ok = second.Block.Get()
	assert.False(t, ok)
}

func TestDecodeIf(t *testing.T) {
	unit := decode(t, `
declaration "boolean" "ready" {}

if {
  condition = ready

  then {
    return {}
  }
}

if {
  condition = ready

  then {
    break {}
  }
  else {
    block {
      throw {
        value = "failed"
      }
    }
  }
}
`)
	require.Len(t, unit.Body.Statements, 3)

	decl := unit.Body.Statements[0].(*model.Declaration)
	assert.Nil(t, decl.Value)

	s, ok := unit.Body.Statements[1].(*model.IfStatement)
	require.True(t, ok)
	require.Len(t, s.Block.Statements, 1)
	ret, ok := s.Block.Statements[0].(*model.ReturnStatement)
	require.True(t, ok)
	assert.Nil(t, ret.Value)

	ifElse, ok := unit.Body.Statements[2].(*model.IfElseStatement)
	require.True(t, ok)
	require.Len(t, ifElse.ElseBlock.Statements, 1)
	nested, ok := ifElse.ElseBlock.Statements[0].(*model.Block)
	require.True(t, ok)
	_, ok = nested.Statements[0].(*model.ThrowStatement)
	assert.True(t, ok)
}

func TestDecodeEmptyLoopBody(t *testing.T) {
	unit := decode(t, `
while {
  condition = true

  body {}
}
`)
	loop := unit.Body.Statements[0].(*model.WhileStatement)
	_, ok := loop.Block.Get()
	assert.False(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "unknown statement",
			src:      "goto {}\n",
			expected: []string{`unsupported statement "goto"`},
		},
		{
			name:     "declaration labels",
			src:      "declaration \"int\" {}\n",
			expected: []string{"declarations must have exactly two labels: a type and a name"},
		},
		{
			name:     "missing throw value",
			src:      "throw {}\n",
			expected: []string{`throw statement requires a "value" attribute`},
		},
		{
			name:     "labelled break",
			src:      "break \"outer\" {}\n",
			expected: []string{"break statements do not support labels"},
		},
		{
			name:     "unsupported attribute",
			src:      "return {\n  value = 1\n  label = 2\n}\n",
			expected: []string{`unsupported attribute "label"`},
		},
		{
			name:     "attribute at top level",
			src:      "x = 1\n",
			expected: []string{`unsupported attribute "x"`},
		},
		{
			name:     "unsupported expression",
			src:      "expression {\n  value = e.message\n}\n",
			expected: []string{"unsupported expression; expected a literal or a variable name"},
		},
		{
			name:     "missing then",
			src:      "if {\n  condition = true\n}\n",
			expected: []string{`if statement requires a "then" block`},
		},
		{
			name:     "duplicate loop body",
			src:      "while {\n  condition = true\n  body {\n    break {}\n  }\n  body {\n    break {}\n  }\n}\n",
			expected: []string{`duplicate "body" block in while statement`},
		},
		{
			name:     "catch labels",
			src:      "try {\n  body {\n    return {}\n  }\n  catch \"Exception\" {}\n}\n",
			expected: []string{"catch clauses must have exactly two labels: a type and a name"},
		},
		{
			name:     "catch bound type",
			src:      "try {\n  body {\n    return {}\n  }\n  catch \"Exception\" \"e\" {\n    bound = 1\n  }\n}\n",
			expected: []string{"catch bound must be a type name string"},
		},
		{
			name: "every error reported",
			src:  "goto {}\nthrow {}\n",
			expected: []string{
				`unsupported statement "goto"`,
				`throw statement requires a "value" attribute`,
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			unit, diagnostics := DecodeUnit(parse(t, c.src))
			assert.Nil(t, unit)
			assert.Equal(t, c.expected, summaries(diagnostics))
		})
	}
}

func TestParseFileSyntaxError(t *testing.T) {
	f, diagnostics, err := ParseFile(strings.NewReader("while {\n"), "broken.script")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.True(t, diagnostics.HasErrors())
}

func TestUnitName(t *testing.T) {
	assert.Equal(t, "handler", (&File{Name: "scripts/handler.script"}).UnitName())
	assert.Equal(t, "main", (&File{Name: "main"}).UnitName())
}

func TestDecodedUnitAnalysis(t *testing.T) {
	analyzer := model.NewAnalyzer(lookup.MustNewRegistry(lookup.DefaultTypes()), model.Options{})

	unit := decode(t, handlerScript)
	output, err := analyzer.AnalyzeUnit(unit)
	require.NoError(t, err)
	assert.True(t, output.MethodEscape)
	assert.Equal(t, 2, unit.Lower().MaxLocals)

	unit = decode(t, `
try {
  body {
    return {}
  }

  catch "String" "s" {}
}
`)
	_, err = analyzer.AnalyzeUnit(unit)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.TypeMismatch))

	merr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, "cannot cast from [String] to [Exception]", merr.Message)
	assert.Equal(t, 7, merr.Location.Start.Line)
	assert.Equal(t, 9, merr.Location.Start.Column)
}

func TestDiagnosticWriter(t *testing.T) {
	src := "goto {}\n"
	f := parse(t, src)
	_, diagnostics := DecodeUnit(f)
	require.True(t, diagnostics.HasErrors())

	var buf bytes.Buffer
	err := NewDiagnosticWriter(&buf, []*File{f}, 0, false).WriteDiagnostics(diagnostics)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `unsupported statement "goto"`)
	assert.Contains(t, buf.String(), "goto {}")
}
