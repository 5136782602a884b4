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
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	returnOutput   = Output{MethodEscape: true, LoopEscape: true, AllEscape: true, StatementCount: 1}
	breakOutput    = Output{LoopEscape: true, AllEscape: true, AnyBreak: true, StatementCount: 1}
	continueOutput = Output{AllEscape: true, AnyContinue: true, StatementCount: 1}
	plainOutput    = Output{StatementCount: 1}
)

func TestMergeBranches(t *testing.T) {
	assert.Equal(t, Output{}, MergeBranches())
	assert.Equal(t, returnOutput, MergeBranches(returnOutput))

	assert.Equal(t, Output{MethodEscape: true, LoopEscape: true, AllEscape: true, StatementCount: 2},
		MergeBranches(returnOutput, returnOutput))

	// Escapes require every branch; break and continue require only one.
	assert.Equal(t, Output{AnyBreak: true, StatementCount: 2}, MergeBranches(breakOutput, plainOutput))
	assert.Equal(t, Output{LoopEscape: true, AllEscape: true, AnyBreak: true, StatementCount: 2},
		MergeBranches(returnOutput, breakOutput))
	assert.Equal(t, Output{AllEscape: true, AnyBreak: true, AnyContinue: true, StatementCount: 3},
		MergeBranches(returnOutput, breakOutput, continueOutput))
}

func TestSequence(t *testing.T) {
	assert.Equal(t, plainOutput, Sequence(Output{}, plainOutput))
	assert.Equal(t, Output{MethodEscape: true, LoopEscape: true, AllEscape: true, StatementCount: 2},
		Sequence(plainOutput, returnOutput))

	// Flags of earlier statements that may break survive; their escapes do not.
	maybeBreak := Output{AnyBreak: true, StatementCount: 1}
	assert.Equal(t, Output{AnyBreak: true, AnyContinue: true, AllEscape: true, StatementCount: 2},
		Sequence(maybeBreak, continueOutput))
}

func TestInputDerive(t *testing.T) {
	loop := &WhileStatement{}
	in := Input{LastSource: true, InLoop: true, LastLoop: loop}

	assert.Equal(t, Input{LastSource: false, InLoop: true, LastLoop: loop}, in.derive(false))
	assert.Equal(t, in, in.derive(true))
}
