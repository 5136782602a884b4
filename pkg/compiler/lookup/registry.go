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

package lookup

import (
	"sort"

	"github.com/golang/glog"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// TypeSpec describes a single type to register: its name, its optional superclass and the interfaces it implements.
type TypeSpec struct {
	Name       string   `yaml:"name"`
	Parent     string   `yaml:"parent,omitempty"`
	Implements []string `yaml:"implements,omitempty"`
}

// Class is the Type descriptor used by Registry.
type Class struct {
	name       string
	parent     *Class
	interfaces []*Class
}

// CanonicalName returns the class's registered name.
func (c *Class) CanonicalName() string {
	return c.name
}

// Parent returns the class's superclass, or nil for a root.
func (c *Class) Parent() *Class {
	return c.parent
}

func (c *Class) String() string {
	return c.name
}

// Registry is an immutable Lookup built from a list of TypeSpecs.
type Registry struct {
	classes map[string]*Class
}

var _ Lookup = (*Registry)(nil)
var _ TypeNamer = (*Registry)(nil)

// DefaultTypes returns the type hierarchy used when no configuration supplies one.
func DefaultTypes() []TypeSpec {
	return []TypeSpec{
		{Name: "Object"},
		{Name: "def", Parent: "Object"},
		{Name: "boolean", Parent: "Object"},
		{Name: "int", Parent: "Object"},
		{Name: "long", Parent: "Object"},
		{Name: "double", Parent: "Object"},
		{Name: "String", Parent: "Object"},
		{Name: "Throwable", Parent: "Object"},
		{Name: "Exception", Parent: "Throwable"},
		{Name: "RuntimeException", Parent: "Exception"},
		{Name: "IllegalArgumentException", Parent: "RuntimeException"},
		{Name: "IllegalStateException", Parent: "RuntimeException"},
		{Name: "ArithmeticException", Parent: "RuntimeException"},
		{Name: "Error", Parent: "Throwable"},
		{Name: "StackOverflowError", Parent: "Error"},
		{Name: "OutOfMemoryError", Parent: "Error"},
	}
}

// NewRegistry validates the given specs and builds a registry from them. Every problem found is reported: duplicate
// or empty names, unknown parents or interfaces, and inheritance cycles.
func NewRegistry(specs []TypeSpec) (*Registry, error) {
	var result error

	classes := make(map[string]*Class, len(specs))
	accepted := make([]TypeSpec, 0, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			result = multierror.Append(result, errors.Errorf("type with an empty name"))
			continue
		}
		if _, exists := classes[spec.Name]; exists {
			result = multierror.Append(result, errors.Errorf("type %q already declared", spec.Name))
			continue
		}
		classes[spec.Name] = &Class{name: spec.Name}
		accepted = append(accepted, spec)
	}

	for _, spec := range accepted {
		c := classes[spec.Name]
		if spec.Parent != "" {
			parent, ok := classes[spec.Parent]
			if !ok {
				result = multierror.Append(result, errors.Errorf("type %q extends unknown type %q", spec.Name, spec.Parent))
			} else {
				c.parent = parent
			}
		}
		for _, name := range spec.Implements {
			iface, ok := classes[name]
			if !ok {
				result = multierror.Append(result, errors.Errorf("type %q implements unknown type %q", spec.Name, name))
				continue
			}
			c.interfaces = append(c.interfaces, iface)
		}
	}

	for _, name := range sortedNames(classes) {
		if cycleFrom(classes[name], map[*Class]bool{}) {
			result = multierror.Append(result, errors.Errorf("type %q inherits from itself", name))
		}
	}

	if result != nil {
		return nil, result
	}

	glog.V(5).Infof("registered %d script types", len(classes))
	return &Registry{classes: classes}, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid specs. It is intended for hierarchies that are known to
// be well-formed, such as DefaultTypes.
func MustNewRegistry(specs []TypeSpec) *Registry {
	r, err := NewRegistry(specs)
	if err != nil {
		panic(err)
	}
	return r
}

func cycleFrom(c *Class, visiting map[*Class]bool) bool {
	if visiting[c] {
		return true
	}
	visiting[c] = true
	defer delete(visiting, c)

	if c.parent != nil && cycleFrom(c.parent, visiting) {
		return true
	}
	for _, iface := range c.interfaces {
		if cycleFrom(iface, visiting) {
			return true
		}
	}
	return false
}

// ResolveType implements Lookup.
func (r *Registry) ResolveType(name string) (Type, bool) {
	c, ok := r.classes[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// IsAssignable implements Lookup. Types that were not produced by this registry are never assignable.
func (r *Registry) IsAssignable(from, to Type) bool {
	fromClass, ok := from.(*Class)
	if !ok {
		return false
	}
	toClass, ok := to.(*Class)
	if !ok {
		return false
	}
	return isSubclass(fromClass, toClass)
}

func isSubclass(c, target *Class) bool {
	if c == target {
		return true
	}
	if c.parent != nil && isSubclass(c.parent, target) {
		return true
	}
	for _, iface := range c.interfaces {
		if isSubclass(iface, target) {
			return true
		}
	}
	return false
}

// TypeNames implements TypeNamer. Names are returned in sorted order.
func (r *Registry) TypeNames() []string {
	return sortedNames(r.classes)
}

func sortedNames(classes map[string]*Class) []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
