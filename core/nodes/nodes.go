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

// Package nodes defines the markup-node tree the view composer produces.
// A tree is built once per render and treated as immutable afterwards; it
// carries symbolic action names and payloads but knows nothing about how
// they are bound to a live event channel, and nothing about serialization.
package nodes

// Kind identifies the role of a node in the tree.
type Kind string

const (
	// KindContainer groups sibling nodes: navigation bars, button rows,
	// the root of the view.
	KindContainer Kind = "container"
	// KindTable is the table element wrapping header and body rows.
	KindTable Kind = "table"
	// KindHeaderRow is the single header row of a table.
	KindHeaderRow Kind = "header-row"
	// KindRow is one body row, backed by one entity.
	KindRow Kind = "data-row"
	// KindCell is one header or body cell.
	KindCell Kind = "cell"
	// KindButton is an interactive control carrying an action.
	KindButton Kind = "button"
	// KindLink is a navigation control with an external destination.
	KindLink Kind = "link"
	// KindInput is the search input.
	KindInput Kind = "input"
	// KindText is a plain text or formatted-value leaf.
	KindText Kind = "text"
)

// Symbolic action names carried on interactive nodes. The binding of these
// names to a live event channel is external to the engine.
const (
	ActionSortColumn         = "sort_column"
	ActionHideColumn         = "hide_column"
	ActionShowColumn         = "show_column"
	ActionChangePage         = "change_page"
	ActionSearch             = "search"
	ActionToggleFieldButtons = "toggle_field_buttons"
)

// Attribute keys used across the tree.
const (
	AttrAction      = "data-action"  // Symbolic action name
	AttrPayload     = "data-payload" // Action payload: column key or page number
	AttrDebounce    = "data-debounce"
	AttrRole        = "data-role" // Structural role of a container
	AttrTarget      = "target"    // Destination URL/path of a link
	AttrMethod      = "http-method"
	AttrConfirm     = "confirm"
	AttrCSRF        = "csrf-token"
	AttrDisabled    = "disabled"
	AttrActive      = "active"
	AttrIndicator   = "sort-indicator"
	AttrValue       = "value"
	AttrPlaceholder = "placeholder"
)

// Container roles emitted on AttrRole, so renderers and tests can address
// regions of the tree without relying on child order.
const (
	RoleView         = "table-view"
	RoleTopBar       = "top-bar"
	RoleBottomBar    = "bottom-bar"
	RolePagination   = "pagination"
	RoleShowButtons  = "show-columns"
	RoleNothingFound = "nothing-found"
)

// Attr is one key/value attribute.
type Attr struct {
	Key   string
	Value string
}

// Node is one node of the render tree.
type Node struct {
	Kind     Kind
	Text     string // Set on KindText leaves only
	Attrs    []Attr
	Children []*Node
}

// Element returns a new node of the given kind with the given children.
func Element(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Text returns a new text leaf.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// WithAttr appends an attribute and returns the node, for construction
// chaining. Trees are not mutated after composition.
func (n *Node) WithAttr(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// Append adds children and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// AttrValue returns the value of the first attribute named key.
func (n *Node) AttrValue(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the node carries an attribute named key.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.AttrValue(key)
	return ok
}

// Walk visits the node and all descendants depth-first. Returning false
// from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindAll returns every descendant (including n) matching pred, in
// depth-first order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(m *Node) bool {
		if pred(m) {
			out = append(out, m)
		}
		return true
	})
	return out
}

// Find returns the first descendant (including n) matching pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(m *Node) bool {
		if pred(m) {
			found = m
			return false
		}
		return true
	})
	return found
}

// ByKind returns a predicate matching nodes of the given kind.
func ByKind(kind Kind) func(*Node) bool {
	return func(n *Node) bool { return n.Kind == kind }
}

// ByRole returns a predicate matching containers with the given role.
func ByRole(role string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.AttrValue(AttrRole)
		return ok && v == role
	}
}

// ByAction returns a predicate matching nodes carrying the given action.
func ByAction(action string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.AttrValue(AttrAction)
		return ok && v == action
	}
}

// InnerText concatenates the text of all text leaves under n.
func (n *Node) InnerText() string {
	var out string
	n.Walk(func(m *Node) bool {
		if m.Kind == KindText {
			out += m.Text
		}
		return true
	})
	return out
}
