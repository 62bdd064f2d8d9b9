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

// Package actions resolves the New/Show/Edit/Delete buttons of a table view
// into concrete destinations and button semantics. Destinations come from a
// caller-supplied RouteResolver; this package never builds URLs itself.
package actions

import (
	"errors"
	"fmt"
)

// Kind identifies one table action.
type Kind int

const (
	// New creates a new entity. It applies to the collection rather than a
	// single row and is never part of the per-row action set.
	New Kind = iota
	// Show navigates to a single entity.
	Show
	// Edit navigates to a single entity's edit form.
	Edit
	// Delete destroys a single entity. Delete buttons use the DELETE method
	// and require confirmation.
	Delete
)

var kindNames = map[Kind]string{
	New:    "new",
	Show:   "show",
	Edit:   "edit",
	Delete: "delete",
}

var kindLabels = map[Kind]string{
	New:    "New",
	Show:   "Show",
	Edit:   "Edit",
	Delete: "Delete",
}

// String returns the lowercase wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Label returns the default button label for the kind.
func (k Kind) Label() string {
	return kindLabels[k]
}

// Method returns the HTTP method a button of this kind submits with.
func (k Kind) Method() string {
	if k == Delete {
		return "DELETE"
	}
	return "GET"
}

// Confirm reports whether a button of this kind asks for confirmation
// before firing.
func (k Kind) Confirm() bool {
	return k == Delete
}

// ParseKind converts a wire name back into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action kind %q", name)
}

// RowKinds returns the per-row subset of kinds: every entry except New,
// in original order.
func RowKinds(kinds []Kind) []Kind {
	var row []Kind
	for _, k := range kinds {
		if k != New {
			row = append(row, k)
		}
	}
	return row
}

// Contains reports whether kinds includes k.
func Contains(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

// RouteResolver resolves destinations for a table scoped to a top-level
// collection.
type RouteResolver interface {
	// CollectionPath resolves a collection-scoped action (New).
	CollectionPath(kind Kind) (string, error)
	// EntityPath resolves a row-scoped action for one entity.
	EntityPath(kind Kind, entity any) (string, error)
}

// NestedRouteResolver resolves destinations for a table scoped to a parent
// entity, e.g. the posts of one user. The parent participates in every
// resolved path.
type NestedRouteResolver interface {
	// NestedCollectionPath resolves a collection-scoped action under parent.
	NestedCollectionPath(kind Kind, parent any) (string, error)
	// NestedEntityPath resolves a row-scoped action for one entity under
	// parent.
	NestedEntityPath(kind Kind, parent any, entity any) (string, error)
}

// ErrNoParentResolver is returned when the view state carries a parent
// entity but no NestedRouteResolver was supplied.
var ErrNoParentResolver = errors.New("parent entity present but no nested route resolver configured")

// ErrNoResolver is returned when no RouteResolver was supplied at all.
var ErrNoResolver = errors.New("no route resolver configured")

// ButtonSpec is one fully resolved action button.
type ButtonSpec struct {
	Kind        Kind
	Label       string
	Destination string
	Method      string
	Confirm     bool
	CSRFToken   string // Attached verbatim to state-mutating buttons
}

// Resolver derives ButtonSpecs from a route resolver pair. Routes handles
// the top-level arities; Nested is consulted instead whenever a parent
// entity is present and may be nil for tables that are never nested.
type Resolver struct {
	Routes    RouteResolver
	Nested    NestedRouteResolver
	CSRFToken string
}

// Resolve derives the button for one action. entity is nil for New; parent
// is nil unless the table is scoped to a parent entity.
func (r Resolver) Resolve(kind Kind, entity, parent any) (ButtonSpec, error) {
	dest, err := r.destination(kind, entity, parent)
	if err != nil {
		return ButtonSpec{}, err
	}

	spec := ButtonSpec{
		Kind:        kind,
		Label:       kind.Label(),
		Destination: dest,
		Method:      kind.Method(),
		Confirm:     kind.Confirm(),
	}
	if kind == Delete {
		spec.CSRFToken = r.CSRFToken
	}
	return spec, nil
}

func (r Resolver) destination(kind Kind, entity, parent any) (string, error) {
	if parent != nil {
		if r.Nested == nil {
			return "", ErrNoParentResolver
		}
		if kind == New {
			return r.Nested.NestedCollectionPath(kind, parent)
		}
		return r.Nested.NestedEntityPath(kind, parent, entity)
	}

	if r.Routes == nil {
		return "", ErrNoResolver
	}
	if kind == New {
		return r.Routes.CollectionPath(kind)
	}
	return r.Routes.EntityPath(kind, entity)
}
