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
	"testing"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, r *Registry, name string) Type {
	typ, ok := r.ResolveType(name)
	require.True(t, ok, "type %q should be registered", name)
	return typ
}

func TestDefaultTypes(t *testing.T) {
	r, err := NewRegistry(DefaultTypes())
	require.NoError(t, err)

	exception := mustResolve(t, r, "Exception")
	assert.Equal(t, "Exception", exception.CanonicalName())
	assert.Equal(t, "Throwable", exception.(*Class).Parent().CanonicalName())
	assert.Nil(t, mustResolve(t, r, "Object").(*Class).Parent())

	_, ok := r.ResolveType("Exceptional")
	assert.False(t, ok)

	names := r.TypeNames()
	assert.Len(t, names, len(DefaultTypes()))
	assert.True(t, sort.StringsAreSorted(names))
}

func TestIsAssignable(t *testing.T) {
	r := MustNewRegistry(append(DefaultTypes(),
		TypeSpec{Name: "Retryable"},
		TypeSpec{Name: "TimeoutException", Parent: "RuntimeException", Implements: []string{"Retryable"}},
	))

	cases := []struct {
		from, to string
		expected bool
	}{
		{"Exception", "Exception", true},
		{"IllegalStateException", "Exception", true},
		{"IllegalStateException", "RuntimeException", true},
		{"IllegalStateException", "Throwable", true},
		{"IllegalStateException", "Object", true},
		{"Exception", "RuntimeException", false},
		{"StackOverflowError", "Exception", false},
		{"Error", "Exception", false},
		{"String", "Exception", false},
		{"TimeoutException", "Retryable", true},
		{"TimeoutException", "Exception", true},
		{"Retryable", "Exception", false},
	}
	for _, c := range cases {
		t.Run(c.from+" to "+c.to, func(t *testing.T) {
			from, to := mustResolve(t, r, c.from), mustResolve(t, r, c.to)
			assert.Equal(t, c.expected, r.IsAssignable(from, to))
		})
	}
}

type foreignType string

func (f foreignType) CanonicalName() string {
	return string(f)
}

func TestIsAssignableForeignTypes(t *testing.T) {
	r := MustNewRegistry(DefaultTypes())
	exception := mustResolve(t, r, "Exception")

	assert.False(t, r.IsAssignable(foreignType("Exception"), exception))
	assert.False(t, r.IsAssignable(exception, foreignType("Exception")))
}

func TestNewRegistryErrors(t *testing.T) {
	_, err := NewRegistry([]TypeSpec{
		{Name: "Object"},
		{Name: "Object"},
		{Name: ""},
		{Name: "A", Parent: "Missing"},
		{Name: "B", Parent: "Object", Implements: []string{"Nowhere"}},
		{Name: "C", Parent: "D"},
		{Name: "D", Parent: "C"},
	})
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	messages := make([]string, len(merr.Errors))
	for i, e := range merr.Errors {
		messages[i] = e.Error()
	}
	assert.Equal(t, []string{
		`type "Object" already declared`,
		"type with an empty name",
		`type "A" extends unknown type "Missing"`,
		`type "B" implements unknown type "Nowhere"`,
		`type "C" inherits from itself`,
		`type "D" inherits from itself`,
	}, messages)
}

func TestMustNewRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry([]TypeSpec{{Name: "A", Parent: "A"}})
	})
}
