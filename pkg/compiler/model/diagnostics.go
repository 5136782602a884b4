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
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"
	"github.com/scriptc/scriptc/pkg/compiler/lookup"
)

// ErrorKind classifies analysis errors.
type ErrorKind int

const (
	// DuplicateBinding is raised when a name is declared twice in the same scope.
	DuplicateBinding ErrorKind = iota + 1
	// UnknownVariable is raised when a name is not bound in any enclosing scope.
	UnknownVariable
	// UnknownType is raised when a type name is not registered with the type lookup.
	UnknownType
	// TypeMismatch is raised when a catch variable's type is outside the clause's permitted exception family.
	TypeMismatch
	// InvalidControlFlow is raised for misplaced or malformed control-flow statements.
	InvalidControlFlow
	// UnreachableStatement is raised for a statement that follows one that always escapes.
	UnreachableStatement
	// StatementLimit is raised when a unit exceeds the configured statement count.
	StatementLimit
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicateBinding:
		return "DuplicateBinding"
	case UnknownVariable:
		return "UnknownVariable"
	case UnknownType:
		return "UnknownType"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidControlFlow:
		return "InvalidControlFlow"
	case UnreachableStatement:
		return "UnreachableStatement"
	case StatementLimit:
		return "StatementLimit"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a located analysis error. Any Error aborts analysis of the whole compilation unit.
type Error struct {
	Kind     ErrorKind
	Location hcl.Range
	Message  string
	// Detail holds optional supplementary text, such as a suggested alternative name.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %s", e.Location, e.Message)
	}
	return fmt.Sprintf("%v: %s; %s", e.Location, e.Message, e.Detail)
}

// Diagnostic converts the error to an HCL diagnostic for rendering.
func (e *Error) Diagnostic() *hcl.Diagnostic {
	subject := e.Location
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  e.Message,
		Detail:   e.Detail,
		Subject:  &subject,
	}
}

// IsKind reports whether err is an analysis Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func errorf(kind ErrorKind, subject hcl.Range, f string, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Location: subject,
		Message:  fmt.Sprintf(f, args...),
	}
}

func withSuggestion(err *Error, suggestion string) *Error {
	if suggestion != "" {
		err.Detail = fmt.Sprintf("did you mean %q?", suggestion)
	}
	return err
}

func duplicateBinding(name string, subject, existing hcl.Range) *Error {
	err := errorf(DuplicateBinding, subject, "variable %q is already defined in this scope", name)
	err.Detail = fmt.Sprintf("previous declaration at %v", existing)
	return err
}

func undefinedVariable(name string, subject hcl.Range, suggestion string) *Error {
	return withSuggestion(errorf(UnknownVariable, subject, "variable %q is not defined", name), suggestion)
}

func unknownType(name string, subject hcl.Range, suggestion string) *Error {
	return withSuggestion(errorf(UnknownType, subject, "type %q is not defined", name), suggestion)
}

func cannotCast(from, to lookup.Type, subject hcl.Range) *Error {
	return errorf(TypeMismatch, subject, "cannot cast from [%s] to [%s]", from.CanonicalName(), to.CanonicalName())
}

func unreachableStatement(subject hcl.Range) *Error {
	return errorf(UnreachableStatement, subject, "unreachable statement")
}

func breakOutsideLoop(subject hcl.Range) *Error {
	return errorf(InvalidControlFlow, subject, "break statement outside of a loop")
}

func continueOutsideLoop(subject hcl.Range) *Error {
	return errorf(InvalidControlFlow, subject, "continue statement outside of a loop")
}

func extraneousTry(subject hcl.Range) *Error {
	return errorf(InvalidControlFlow, subject, "extraneous try statement")
}

func missingCatch(subject hcl.Range) *Error {
	return errorf(InvalidControlFlow, subject, "try statement must have at least one catch clause")
}

func extraneousLoop(subject hcl.Range) *Error {
	return errorf(InvalidControlFlow, subject, "extraneous while loop")
}

func noLoopEscape(subject hcl.Range) *Error {
	return errorf(InvalidControlFlow, subject, "no paths escape from while loop")
}

func statementLimitExceeded(count, limit int, subject hcl.Range) *Error {
	return errorf(StatementLimit, subject, "unit contains %d statements, exceeding the limit of %d", count, limit)
}
