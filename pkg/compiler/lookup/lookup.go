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

// Package lookup maps script type names to type descriptors and answers subtype queries. Analysis only reads from a
// Lookup, so a single instance may be shared by any number of concurrently analyzed compilation units.
package lookup

// Type is a resolved type descriptor.
type Type interface {
	// CanonicalName returns the name used for the type in diagnostics.
	CanonicalName() string
}

// Lookup is the type hierarchy consulted during analysis. Implementations must be safe for concurrent reads.
type Lookup interface {
	// ResolveType returns the descriptor registered under name, if any.
	ResolveType(name string) (Type, bool)
	// IsAssignable reports whether a value of type from may be stored in a location of type to, i.e. whether to is
	// from or one of its supertypes.
	IsAssignable(from, to Type) bool
}

// TypeNamer is implemented by lookups that can enumerate their registered names. It is used to suggest alternatives
// for unknown type names.
type TypeNamer interface {
	TypeNames() []string
}
