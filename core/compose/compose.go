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

// Package compose assembles a full table view tree from one immutable view
// state: header row, body rows, pagination, search, action buttons and the
// show/hide-column affordances. Composition is a pure function of the
// snapshot; the same input always yields the same tree.
package compose

import (
	"fmt"
	"strconv"

	"github.com/tabularium/tabularium/core/actions"
	"github.com/tabularium/tabularium/core/fields"
	"github.com/tabularium/tabularium/core/format"
	"github.com/tabularium/tabularium/core/nodes"
	"github.com/tabularium/tabularium/core/paginate"
	"github.com/tabularium/tabularium/core/state"
)

// DefaultDebounceMillis is emitted on the search input when the snapshot
// does not set its own debounce.
const DefaultDebounceMillis = 300

// Composer builds view trees. Formatting and route resolution are injected
// collaborators; the composer itself never formats values or builds URLs.
type Composer struct {
	formatter format.Formatter
	routes    actions.RouteResolver
	nested    actions.NestedRouteResolver
}

// New creates a Composer with the given formatter and route resolver.
// A nil formatter falls back to format.Default.
func New(formatter format.Formatter, routes actions.RouteResolver) *Composer {
	if formatter == nil {
		formatter = format.Default{}
	}
	return &Composer{formatter: formatter, routes: routes}
}

// SetNestedRoutes sets the resolver used whenever the view state carries a
// parent entity.
func (c *Composer) SetNestedRoutes(nested actions.NestedRouteResolver) {
	c.nested = nested
}

// Compose turns one snapshot into a view tree. The fixed structure, top to
// bottom: top bar (pagination, New, field-button toggle, search box) ->
// optional show-column button row -> table -> optional nothing-found block
// -> bottom bar (New, toggle) -> pagination again.
func (c *Composer) Compose(v state.ViewState) (*nodes.Node, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if len(v.ActionButtons) > 0 && v.Parent != nil && c.nested == nil {
		return nil, actions.ErrNoParentResolver
	}

	resolver := actions.Resolver{Routes: c.routes, Nested: c.nested, CSRFToken: v.CSRFToken}
	formatter := c.formatterFor(v)

	root := nodes.Element(nodes.KindContainer).WithAttr(nodes.AttrRole, nodes.RoleView)

	topBar, err := c.bar(v, resolver, nodes.RoleTopBar)
	if err != nil {
		return nil, err
	}
	root.Append(topBar)

	if row := c.showColumnRow(v, formatter); row != nil {
		root.Append(row)
	}

	table, err := c.table(v, resolver, formatter)
	if err != nil {
		return nil, err
	}
	root.Append(table)

	// The empty-page block sits beside the (empty) table, never in its place.
	if len(v.Rows) == 0 {
		root.Append(nodes.Element(nodes.KindContainer,
			nodes.Text("Nothing found")).
			WithAttr(nodes.AttrRole, nodes.RoleNothingFound))
	}

	bottomBar, err := c.bar(v, resolver, nodes.RoleBottomBar)
	if err != nil {
		return nil, err
	}
	root.Append(bottomBar)

	pagination, err := paginationNode(v.Page)
	if err != nil {
		return nil, err
	}
	root.Append(pagination)

	return root, nil
}

func (c *Composer) formatterFor(v state.ViewState) format.Formatter {
	if d, ok := c.formatter.(format.Default); ok && d.Extra == nil && v.Extra != nil {
		return format.Default{Extra: v.Extra}
	}
	return c.formatter
}

// bar builds the top or bottom control bar. The top bar carries the
// pagination and the search box; both carry the New button and the
// field-button toggle.
func (c *Composer) bar(v state.ViewState, resolver actions.Resolver, role string) (*nodes.Node, error) {
	bar := nodes.Element(nodes.KindContainer).WithAttr(nodes.AttrRole, role)

	if role == nodes.RoleTopBar {
		pagination, err := paginationNode(v.Page)
		if err != nil {
			return nil, err
		}
		bar.Append(pagination)
	}

	if actions.Contains(v.ActionButtons, actions.New) {
		spec, err := resolver.Resolve(actions.New, nil, v.Parent)
		if err != nil {
			return nil, fmt.Errorf("resolving new action: %w", err)
		}
		bar.Append(actionNode(spec))
	}

	bar.Append(nodes.Element(nodes.KindButton, nodes.Text("Show/Hide Columns")).
		WithAttr(nodes.AttrAction, nodes.ActionToggleFieldButtons))

	if role == nodes.RoleTopBar && v.Fields.AnySearchable() {
		bar.Append(searchNode(v))
	}

	return bar, nil
}

// searchNode builds the debounced search input. Callers only reach here
// when at least one field is searchable.
func searchNode(v state.ViewState) *nodes.Node {
	debounce := v.DebounceMillis
	if debounce <= 0 {
		debounce = DefaultDebounceMillis
	}
	return nodes.Element(nodes.KindInput).
		WithAttr(nodes.AttrAction, nodes.ActionSearch).
		WithAttr(nodes.AttrValue, v.Search).
		WithAttr(nodes.AttrPlaceholder, "Search...").
		WithAttr(nodes.AttrDebounce, strconv.Itoa(debounce))
}

// showColumnRow builds the "show <field>" button row for hidden fields.
// Emitted only while the field buttons are toggled on.
func (c *Composer) showColumnRow(v state.ViewState, formatter format.Formatter) *nodes.Node {
	if !v.ShowFieldButtons {
		return nil
	}
	hidden := v.Fields.Hidden()
	if len(hidden) == 0 {
		return nil
	}

	row := nodes.Element(nodes.KindContainer).WithAttr(nodes.AttrRole, nodes.RoleShowButtons)
	for _, f := range hidden {
		row.Append(nodes.Element(nodes.KindButton,
			nodes.Text("Show "+formatter.HeaderLabel(f))).
			WithAttr(nodes.AttrAction, nodes.ActionShowColumn).
			WithAttr(nodes.AttrPayload, f.Key))
	}
	return row
}

// table builds the header row and one body row per entity.
func (c *Composer) table(v state.ViewState, resolver actions.Resolver, formatter format.Formatter) (*nodes.Node, error) {
	visible := v.Fields.Visible()
	rowKinds := actions.RowKinds(v.ActionButtons)
	// An empty action list suppresses the actions column outright, header
	// included: no phantom header cell.
	withActions := len(rowKinds) > 0

	table := nodes.Element(nodes.KindTable)
	table.Append(c.headerRow(v, visible, formatter, withActions))

	for _, entity := range v.Rows {
		row := nodes.Element(nodes.KindRow)
		for _, f := range visible {
			row.Append(nodes.Element(nodes.KindCell,
				nodes.Text(formatter.FieldValue(entity, f))))
		}
		if withActions {
			cell := nodes.Element(nodes.KindCell)
			for _, kind := range rowKinds {
				spec, err := resolver.Resolve(kind, entity, v.Parent)
				if err != nil {
					return nil, fmt.Errorf("resolving %s action: %w", kind, err)
				}
				cell.Append(actionNode(spec))
			}
			row.Append(cell)
		}
		table.Append(row)
	}

	return table, nil
}

// headerRow builds one cell per visible field plus the optional actions
// header. Sortable fields get a click target and an indicator; the actions
// column never gets either.
func (c *Composer) headerRow(v state.ViewState, visible fields.List, formatter format.Formatter, withActions bool) *nodes.Node {
	header := nodes.Element(nodes.KindHeaderRow)
	for _, f := range visible {
		cell := nodes.Element(nodes.KindCell)
		label := formatter.HeaderLabel(f)
		if f.Sortable {
			cell.Append(nodes.Element(nodes.KindButton, nodes.Text(label)).
				WithAttr(nodes.AttrAction, nodes.ActionSortColumn).
				WithAttr(nodes.AttrPayload, f.Key).
				WithAttr(nodes.AttrIndicator, v.Sort.IndicatorFor(f.Key)))
		} else {
			cell.Append(nodes.Text(label))
		}
		if v.ShowFieldButtons {
			cell.Append(nodes.Element(nodes.KindButton, nodes.Text("Hide")).
				WithAttr(nodes.AttrAction, nodes.ActionHideColumn).
				WithAttr(nodes.AttrPayload, f.Key))
		}
		header.Append(cell)
	}
	if withActions {
		header.Append(nodes.Element(nodes.KindCell, nodes.Text("Actions")))
	}
	return header
}

// paginationNode turns the computed control window into a node row. Built
// fresh for each placement so the top and bottom pagers never share nodes.
func paginationNode(p state.PageState) (*nodes.Node, error) {
	controls, err := paginate.ComputeWindow(p)
	if err != nil {
		return nil, err
	}

	bar := nodes.Element(nodes.KindContainer).WithAttr(nodes.AttrRole, nodes.RolePagination)
	for _, ctl := range controls {
		bar.Append(controlNode(ctl))
	}
	return bar, nil
}

func controlNode(ctl paginate.Control) *nodes.Node {
	var label string
	switch ctl.Kind {
	case paginate.Prev:
		label = "Previous"
	case paginate.Next:
		label = "Next"
	case paginate.Ellipsis:
		label = "…"
	default:
		label = strconv.Itoa(ctl.Page)
	}

	n := nodes.Element(nodes.KindButton, nodes.Text(label))
	switch {
	case ctl.Disabled:
		n.WithAttr(nodes.AttrDisabled, "true")
	case ctl.Current:
		n.WithAttr(nodes.AttrActive, "true")
	default:
		n.WithAttr(nodes.AttrAction, nodes.ActionChangePage).
			WithAttr(nodes.AttrPayload, strconv.Itoa(ctl.Page))
	}
	return n
}

// actionNode turns a resolved button into a link node.
func actionNode(spec actions.ButtonSpec) *nodes.Node {
	n := nodes.Element(nodes.KindLink, nodes.Text(spec.Label)).
		WithAttr(nodes.AttrTarget, spec.Destination).
		WithAttr(nodes.AttrMethod, spec.Method)
	if spec.Confirm {
		n.WithAttr(nodes.AttrConfirm, "true")
	}
	if spec.CSRFToken != "" {
		n.WithAttr(nodes.AttrCSRF, spec.CSRFToken)
	}
	return n
}
