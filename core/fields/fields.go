/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Tabularium Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fields describes the columns of a table: their keys, display
// labels, and whether each one is currently hidden, sortable or searchable.
package fields

import (
	"fmt"
)

// FormatFunc renders the value of one field for one entity. The extra map
// carries caller-supplied contextual values merged into the render.
type FormatFunc func(entity any, extra map[string]any) string

// FieldSpec describes a single column.
type FieldSpec struct {
	Key        string     // Unique field identifier, e.g. "inserted_at"
	Label      string     // Optional display label; derived from Key when empty
	Hidden     bool       // Whether the column is currently hidden
	Sortable   bool       // Whether clicking the header sorts by this field
	Searchable bool       // Whether the search term matches against this field
	Format     FormatFunc // Optional custom value formatter
}

// List is an ordered set of field specs. Keys are unique across the list.
type List []FieldSpec

// ErrDuplicateKey is returned when two field specs share a key.
var ErrDuplicateKey = fmt.Errorf("duplicate field key")

// NewList builds a List from the given specs, enforcing key uniqueness.
func NewList(specs ...FieldSpec) (List, error) {
	l := List(specs)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate checks the key-uniqueness invariant.
func (l List) Validate() error {
	seen := make(map[string]bool, len(l))
	for _, f := range l {
		if f.Key == "" {
			return fmt.Errorf("field with empty key")
		}
		if seen[f.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, f.Key)
		}
		seen[f.Key] = true
	}
	return nil
}

// Visible returns the fields with Hidden == false, in original order.
func (l List) Visible() List {
	visible := make(List, 0, len(l))
	for _, f := range l {
		if !f.Hidden {
			visible = append(visible, f)
		}
	}
	return visible
}

// Hidden returns the complement of Visible, in original order.
func (l List) Hidden() List {
	hidden := make(List, 0)
	for _, f := range l {
		if f.Hidden {
			hidden = append(hidden, f)
		}
	}
	return hidden
}

// Get returns the spec for key, and whether it exists.
func (l List) Get(key string) (FieldSpec, bool) {
	for _, f := range l {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// AnySearchable reports whether at least one field is marked searchable.
// The search box is omitted entirely when this is false.
func (l List) AnySearchable() bool {
	for _, f := range l {
		if f.Searchable {
			return true
		}
	}
	return false
}

// SearchableKeys returns the keys of all searchable fields, in order.
func (l List) SearchableKeys() []string {
	var keys []string
	for _, f := range l {
		if f.Searchable {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Clone returns a copy of the list that can be modified without affecting
// the original backing array.
func (l List) Clone() List {
	clone := make(List, len(l))
	copy(clone, l)
	return clone
}
