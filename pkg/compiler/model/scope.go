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
	"github.com/hashicorp/hcl/v2"
	"github.com/scriptc/scriptc/pkg/compiler/lookup"
)

// Variable is a name bound in a scope.
type Variable struct {
	Name string
	Type lookup.Type
	// Slot is the local variable index assigned to the variable.
	Slot int
	// Range is the location of the variable's declaration.
	Range hcl.Range
}

// frame is shared by every scope of a compilation unit.
type frame struct {
	maxLocals int
}

// Scope is a node in the tree of symbol tables built during analysis. A child scope may shadow its ancestors'
// bindings; a name may be declared at most once per scope.
type Scope struct {
	parent    *Scope
	frame     *frame
	variables map[string]*Variable
	nextSlot  int
}

// NewScope creates a root scope for a compilation unit.
func NewScope() *Scope {
	return &Scope{
		frame:     &frame{},
		variables: map[string]*Variable{},
	}
}

// Child creates a new scope nested within s. Slots allocated in the child start after those of s.
func (s *Scope) Child() *Scope {
	return &Scope{
		parent:    s,
		frame:     s.frame,
		variables: map[string]*Variable{},
		nextSlot:  s.nextSlot,
	}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// MaxLocals returns the number of slots used by the compilation unit that owns s so far.
func (s *Scope) MaxLocals() int {
	return s.frame.maxLocals
}

func (s *Scope) define(v *Variable) bool {
	if _, exists := s.variables[v.Name]; exists {
		return false
	}
	s.variables[v.Name] = v
	return true
}

func (s *Scope) bindReference(name string) (*Variable, bool) {
	for s := s; s != nil; s = s.parent {
		if v, ok := s.variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Declare binds a new variable in s. It fails with a DuplicateBinding error if name is already bound in s itself;
// bindings in ancestor scopes are shadowed.
func (s *Scope) Declare(name string, typ lookup.Type, subject hcl.Range) (*Variable, error) {
	v := &Variable{Name: name, Type: typ, Slot: s.nextSlot, Range: subject}
	if !s.define(v) {
		return nil, duplicateBinding(name, subject, s.variables[name].Range)
	}

	s.nextSlot++
	if s.nextSlot > s.frame.maxLocals {
		s.frame.maxLocals = s.nextSlot
	}
	return v, nil
}

// Resolve looks up name in s and its ancestors. It fails with an UnknownVariable error if the name is not bound.
func (s *Scope) Resolve(name string, subject hcl.Range) (*Variable, error) {
	if v, ok := s.bindReference(name); ok {
		return v, nil
	}
	return nil, undefinedVariable(name, subject, closestName(name, s.visibleNames().sortedValues()))
}

func (s *Scope) visibleNames() stringSet {
	names := stringSet{}
	for s := s; s != nil; s = s.parent {
		for name := range s.variables {
			names.add(name)
		}
	}
	return names
}
