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

package compose

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tabularium/tabularium/core/actions"
	"github.com/tabularium/tabularium/core/fields"
	"github.com/tabularium/tabularium/core/nodes"
	"github.com/tabularium/tabularium/core/state"
)

type person struct {
	ID    int
	Name  string
	Email string
}

type personRoutes struct{}

func (personRoutes) CollectionPath(kind actions.Kind) (string, error) {
	return "/people/new", nil
}

func (personRoutes) EntityPath(kind actions.Kind, entity any) (string, error) {
	p, ok := entity.(person)
	if !ok {
		return "", fmt.Errorf("unexpected entity %T", entity)
	}
	if kind == actions.Edit {
		return fmt.Sprintf("/people/%d/edit", p.ID), nil
	}
	return fmt.Sprintf("/people/%d", p.ID), nil
}

type nestedPersonRoutes struct{ personRoutes }

func (nestedPersonRoutes) NestedCollectionPath(kind actions.Kind, parent any) (string, error) {
	return fmt.Sprintf("/%v/people/new", parent), nil
}

func (nestedPersonRoutes) NestedEntityPath(kind actions.Kind, parent any, entity any) (string, error) {
	p := entity.(person)
	return fmt.Sprintf("/%v/people/%d", parent, p.ID), nil
}

func baseState() state.ViewState {
	return state.ViewState{
		Fields: fields.List{
			{Key: "name", Sortable: true, Searchable: true},
			{Key: "email", Hidden: true},
		},
		Rows: []any{
			person{ID: 1, Name: "Ada", Email: "ada@example.com"},
			person{ID: 2, Name: "Brendan", Email: "brendan@example.com"},
		},
		Page:          state.PageState{CurrentPage: 1, PerPage: 10, TotalCount: 2},
		ActionButtons: []actions.Kind{actions.New, actions.Show, actions.Edit, actions.Delete},
	}
}

func newComposer() *Composer {
	return New(nil, personRoutes{})
}

func mustCompose(t *testing.T, c *Composer, v state.ViewState) *nodes.Node {
	t.Helper()
	tree, err := c.Compose(v)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return tree
}

// TestEmptyTableScenario renders a hidden-email, zero-row table with only
// the New action: the header shows just "name", the body section carries
// the nothing-found block, both bars carry one New button, and email
// surfaces only as a "show" affordance.
func TestEmptyTableScenario(t *testing.T) {
	v := baseState()
	v.Rows = nil
	v.Page.TotalCount = 0
	v.ActionButtons = []actions.Kind{actions.New}
	v.ShowFieldButtons = true

	tree := mustCompose(t, newComposer(), v)

	header := tree.Find(nodes.ByKind(nodes.KindHeaderRow))
	if header == nil {
		t.Fatal("no header row")
	}
	var headerLabels []string
	for _, cell := range header.Children {
		if leaf := cell.Find(nodes.ByKind(nodes.KindText)); leaf != nil {
			headerLabels = append(headerLabels, leaf.Text)
		}
	}
	if diff := cmp.Diff([]string{"Name"}, headerLabels); diff != "" {
		t.Errorf("header labels (-want +got):\n%s", diff)
	}
	if strings.Contains(header.InnerText(), "Actions") {
		t.Error("actions header present with no per-row actions configured")
	}

	if tree.Find(nodes.ByRole(nodes.RoleNothingFound)) == nil {
		t.Error("nothing-found block missing for an empty page")
	}
	// The empty table itself still renders; the block sits beside it.
	if tree.Find(nodes.ByKind(nodes.KindTable)) == nil {
		t.Error("table suppressed instead of rendered empty")
	}

	for _, role := range []string{nodes.RoleTopBar, nodes.RoleBottomBar} {
		bar := tree.Find(nodes.ByRole(role))
		if bar == nil {
			t.Fatalf("missing %s", role)
		}
		news := bar.FindAll(func(n *nodes.Node) bool {
			return n.Kind == nodes.KindLink && n.InnerText() == "New"
		})
		if len(news) != 1 {
			t.Errorf("%s has %d New buttons, want 1", role, len(news))
		}
	}

	shows := tree.FindAll(nodes.ByAction(nodes.ActionShowColumn))
	if len(shows) != 1 {
		t.Fatalf("got %d show-column buttons, want 1", len(shows))
	}
	if payload, _ := shows[0].AttrValue(nodes.AttrPayload); payload != "email" {
		t.Errorf("show-column payload = %q, want email", payload)
	}
	if got := shows[0].InnerText(); got != "Show Email" {
		t.Errorf("show-column label = %q, want \"Show Email\"", got)
	}
}

// TestActionSuppression: an empty action list removes the actions column
// everywhere, header included.
func TestActionSuppression(t *testing.T) {
	v := baseState()
	v.ActionButtons = nil

	tree := mustCompose(t, newComposer(), v)

	if strings.Contains(tree.Find(nodes.ByKind(nodes.KindHeaderRow)).InnerText(), "Actions") {
		t.Error("phantom actions header")
	}
	for _, row := range tree.FindAll(nodes.ByKind(nodes.KindRow)) {
		if len(row.Children) != 1 {
			t.Errorf("row has %d cells, want 1 (name only)", len(row.Children))
		}
	}
	if tree.Find(nodes.ByKind(nodes.KindLink)) != nil {
		t.Error("action links rendered with no actions configured")
	}
}

func TestRowActions(t *testing.T) {
	tree := mustCompose(t, newComposer(), baseState())

	rows := tree.FindAll(nodes.ByKind(nodes.KindRow))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// name cell + actions cell
	first := rows[0]
	if len(first.Children) != 2 {
		t.Fatalf("row has %d cells, want 2", len(first.Children))
	}
	links := first.FindAll(nodes.ByKind(nodes.KindLink))
	if len(links) != 3 {
		t.Fatalf("got %d action links, want 3 (New is not a row action)", len(links))
	}

	show := links[0]
	if target, _ := show.AttrValue(nodes.AttrTarget); target != "/people/1" {
		t.Errorf("show target = %q", target)
	}
	if method, _ := show.AttrValue(nodes.AttrMethod); method != "GET" {
		t.Errorf("show method = %q", method)
	}
	if show.HasAttr(nodes.AttrConfirm) {
		t.Error("show requires confirmation")
	}

	del := links[2]
	if method, _ := del.AttrValue(nodes.AttrMethod); method != "DELETE" {
		t.Errorf("delete method = %q", method)
	}
	if !del.HasAttr(nodes.AttrConfirm) {
		t.Error("delete missing confirmation")
	}
}

func TestDeleteCarriesToken(t *testing.T) {
	v := baseState()
	v.CSRFToken = "tok-abc"
	tree := mustCompose(t, newComposer(), v)

	del := tree.Find(func(n *nodes.Node) bool {
		m, _ := n.AttrValue(nodes.AttrMethod)
		return m == "DELETE"
	})
	if del == nil {
		t.Fatal("no delete link")
	}
	if token, _ := del.AttrValue(nodes.AttrCSRF); token != "tok-abc" {
		t.Errorf("token = %q, want tok-abc", token)
	}
}

func TestSortHeader(t *testing.T) {
	v := baseState()
	v.Fields = fields.List{
		{Key: "name", Sortable: true},
		{Key: "email"},
	}
	v.Sort = state.SortSpec{Key: "name", Direction: state.SortDesc}

	tree := mustCompose(t, newComposer(), v)
	header := tree.Find(nodes.ByKind(nodes.KindHeaderRow))

	sorters := header.FindAll(nodes.ByAction(nodes.ActionSortColumn))
	if len(sorters) != 1 {
		t.Fatalf("got %d sort buttons, want 1 (email is not sortable)", len(sorters))
	}
	if ind, _ := sorters[0].AttrValue(nodes.AttrIndicator); ind != state.IndicatorDesc {
		t.Errorf("indicator = %q, want %q", ind, state.IndicatorDesc)
	}

	// The actions header cell must carry neither indicator nor click target.
	last := header.Children[len(header.Children)-1]
	if last.Find(nodes.ByAction(nodes.ActionSortColumn)) != nil || last.HasAttr(nodes.AttrIndicator) {
		t.Error("actions header is sortable")
	}
}

func TestHideButtonsFollowToggle(t *testing.T) {
	v := baseState()

	tree := mustCompose(t, newComposer(), v)
	if tree.Find(nodes.ByAction(nodes.ActionHideColumn)) != nil {
		t.Error("hide buttons rendered while field buttons are off")
	}
	if tree.Find(nodes.ByRole(nodes.RoleShowButtons)) != nil {
		t.Error("show-column row rendered while field buttons are off")
	}

	v.ShowFieldButtons = true
	tree = mustCompose(t, newComposer(), v)
	hides := tree.FindAll(nodes.ByAction(nodes.ActionHideColumn))
	if len(hides) != 1 { // one visible field
		t.Errorf("got %d hide buttons, want 1", len(hides))
	}
	if tree.Find(nodes.ByRole(nodes.RoleShowButtons)) == nil {
		t.Error("show-column row missing while field buttons are on")
	}
}

func TestSearchBoxOnlyWhenSearchable(t *testing.T) {
	v := baseState()
	tree := mustCompose(t, newComposer(), v)
	search := tree.Find(nodes.ByAction(nodes.ActionSearch))
	if search == nil {
		t.Fatal("search box missing despite a searchable field")
	}
	if debounce, _ := search.AttrValue(nodes.AttrDebounce); debounce != "300" {
		t.Errorf("debounce = %q, want default 300", debounce)
	}

	for i := range v.Fields {
		v.Fields[i].Searchable = false
	}
	tree = mustCompose(t, newComposer(), v)
	if tree.Find(nodes.ByAction(nodes.ActionSearch)) != nil {
		t.Error("search box rendered with zero searchable fields")
	}
}

func TestPaginationNodes(t *testing.T) {
	v := baseState()
	v.Page = state.PageState{CurrentPage: 5, PerPage: 10, TotalCount: 100}

	tree := mustCompose(t, newComposer(), v)
	bars := tree.FindAll(nodes.ByRole(nodes.RolePagination))
	if len(bars) != 2 {
		t.Fatalf("got %d pagination bars, want top and bottom", len(bars))
	}

	bar := bars[0]
	current := bar.Find(func(n *nodes.Node) bool { return n.HasAttr(nodes.AttrActive) })
	if current == nil {
		t.Fatal("no active page control")
	}
	if current.InnerText() != "5" {
		t.Errorf("active control shows %q, want 5", current.InnerText())
	}
	if current.HasAttr(nodes.AttrAction) {
		t.Error("current page control carries a navigation action")
	}

	target := bar.Find(func(n *nodes.Node) bool {
		p, _ := n.AttrValue(nodes.AttrPayload)
		return p == "10"
	})
	if target == nil {
		t.Error("page 10 endpoint missing from the window")
	}

	ellipsis := bar.Find(func(n *nodes.Node) bool { return n.InnerText() == "…" })
	if ellipsis == nil {
		t.Fatal("no ellipsis control")
	}
	if !ellipsis.HasAttr(nodes.AttrDisabled) || ellipsis.HasAttr(nodes.AttrAction) {
		t.Error("ellipsis is clickable")
	}
}

func TestEmptyPagerStillRendered(t *testing.T) {
	v := baseState()
	v.Rows = nil
	v.Page.TotalCount = 0

	tree := mustCompose(t, newComposer(), v)
	bar := tree.Find(nodes.ByRole(nodes.RolePagination))
	if bar == nil {
		t.Fatal("pager missing for empty table")
	}
	if len(bar.Children) != 1 {
		t.Fatalf("empty pager has %d controls, want 1", len(bar.Children))
	}
	only := bar.Children[0]
	if only.InnerText() != "1" || only.HasAttr(nodes.AttrAction) {
		t.Errorf("inert page-1 control wrong: text %q", only.InnerText())
	}
}

func TestNestedRoutes(t *testing.T) {
	v := baseState()
	v.Parent = "teams/9"

	// Without a nested resolver the configuration is an error.
	if _, err := newComposer().Compose(v); !errors.Is(err, actions.ErrNoParentResolver) {
		t.Fatalf("got %v, want ErrNoParentResolver", err)
	}

	c := New(nil, personRoutes{})
	c.SetNestedRoutes(nestedPersonRoutes{})
	tree := mustCompose(t, c, v)

	newBtn := tree.Find(func(n *nodes.Node) bool {
		return n.Kind == nodes.KindLink && n.InnerText() == "New"
	})
	if newBtn == nil {
		t.Fatal("no New button")
	}
	if target, _ := newBtn.AttrValue(nodes.AttrTarget); target != "/teams/9/people/new" {
		t.Errorf("nested New target = %q", target)
	}
}

func TestValidationErrorsPropagate(t *testing.T) {
	v := baseState()
	v.Sort = state.SortSpec{Key: "email", Direction: state.SortAsc} // not sortable
	if _, err := newComposer().Compose(v); !errors.Is(err, state.ErrNotSortable) {
		t.Errorf("got %v, want ErrNotSortable", err)
	}

	v = baseState()
	v.Page.PerPage = -1
	if _, err := newComposer().Compose(v); !errors.Is(err, state.ErrInvalidPerPage) {
		t.Errorf("got %v, want ErrInvalidPerPage", err)
	}
}

// TestDeterminism: composing the same snapshot twice yields equal trees.
func TestDeterminism(t *testing.T) {
	v := baseState()
	v.ShowFieldButtons = true
	v.Sort = state.SortSpec{Key: "name", Direction: state.SortAsc}

	c := newComposer()
	first := mustCompose(t, c, v)
	second := mustCompose(t, c, v)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("trees differ (-first +second):\n%s", diff)
	}
}

func TestTopBarStructure(t *testing.T) {
	tree := mustCompose(t, newComposer(), baseState())

	top := tree.Find(nodes.ByRole(nodes.RoleTopBar))
	if top == nil {
		t.Fatal("no top bar")
	}
	if top.Find(nodes.ByRole(nodes.RolePagination)) == nil {
		t.Error("top bar missing pagination")
	}
	if top.Find(nodes.ByAction(nodes.ActionToggleFieldButtons)) == nil {
		t.Error("top bar missing field-button toggle")
	}
	if top.Find(nodes.ByAction(nodes.ActionSearch)) == nil {
		t.Error("top bar missing search box")
	}

	bottom := tree.Find(nodes.ByRole(nodes.RoleBottomBar))
	if bottom == nil {
		t.Fatal("no bottom bar")
	}
	if bottom.Find(nodes.ByRole(nodes.RolePagination)) != nil {
		t.Error("bottom bar duplicates the pagination; the trailing pager is separate")
	}
}
