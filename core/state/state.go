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

// Package state holds the immutable snapshot that drives one table render:
// field configuration, the current page of rows, sort order, pagination,
// search term and action-button configuration. The snapshot is owned by the
// caller and passed by value; every interaction is a pure transition that
// returns a new snapshot.
package state

import (
	"errors"
	"fmt"

	"github.com/tabularium/tabularium/core/actions"
	"github.com/tabularium/tabularium/core/fields"
)

// SortDirection is the direction of the single active column sort.
type SortDirection int

const (
	// SortNone means no column sort is active.
	SortNone SortDirection = iota
	// SortAsc sorts ascending.
	SortAsc
	// SortDesc sorts descending.
	SortDesc
)

// String returns the wire name of the direction.
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// SortSpec is the single active column sort, or none. At most one key has a
// non-none direction at any time.
type SortSpec struct {
	Key       string
	Direction SortDirection
}

// Active reports whether a column sort is in effect.
func (s SortSpec) Active() bool {
	return s.Direction != SortNone && s.Key != ""
}

// The three fixed sort-indicator labels. Renderers map them to whatever
// glyph or class they use; the engine never picks glyphs.
const (
	IndicatorAsc     = "ascending-active"
	IndicatorDesc    = "descending-active"
	IndicatorNeutral = "neutral"
)

// IndicatorFor returns the indicator label a sortable column with the
// given key displays under this sort.
func (s SortSpec) IndicatorFor(key string) string {
	if s.Key != key {
		return IndicatorNeutral
	}
	switch s.Direction {
	case SortAsc:
		return IndicatorAsc
	case SortDesc:
		return IndicatorDesc
	default:
		return IndicatorNeutral
	}
}

// Next derives the sort that results from clicking clickedKey:
// the same key cycles Asc -> Desc -> Asc, any other key (or no active sort)
// starts at Asc on the new key. Next never sorts; the resulting spec is
// applied upstream by the data supplier before the next render.
func (s SortSpec) Next(clickedKey string) SortSpec {
	if s.Key == clickedKey && s.Direction == SortAsc {
		return SortSpec{Key: clickedKey, Direction: SortDesc}
	}
	return SortSpec{Key: clickedKey, Direction: SortAsc}
}

// PageState describes where in the result set the current page sits.
type PageState struct {
	CurrentPage int // 1-based
	PerPage     int // Rows per page, must be positive
	TotalCount  int // Total rows across all pages
}

// TotalPages returns ceil(TotalCount / PerPage). A zero total yields zero
// pages; the pagination layer still renders a single inert page-1 control
// in that case.
func (p PageState) TotalPages() int {
	if p.PerPage <= 0 || p.TotalCount <= 0 {
		return 0
	}
	return (p.TotalCount + p.PerPage - 1) / p.PerPage
}

// Offset returns the 0-based row offset of the current page.
func (p PageState) Offset() int {
	if p.CurrentPage <= 1 {
		return 0
	}
	return (p.CurrentPage - 1) * p.PerPage
}

// Configuration error conditions. These indicate an internally inconsistent
// snapshot and are surfaced to the caller rather than recovered from.
var (
	ErrInvalidPerPage = errors.New("per-page must be positive")
	ErrUnknownSortKey = errors.New("sort key does not reference a configured field")
	ErrNotSortable    = errors.New("sort key references a non-sortable field")
)

// ViewState is the full immutable snapshot driving one render.
type ViewState struct {
	Fields fields.List // Live field list; Hidden flags reflect current visibility
	Rows   []any       // The materialized page of entities, supplied by the caller
	Sort   SortSpec
	Page   PageState
	Search string

	// ActionButtons lists the enabled actions. New applies to the
	// collection; the rest become per-row buttons. Empty means no action
	// column at all.
	ActionButtons []actions.Kind

	// Parent scopes the table to a nested collection when non-nil. It
	// changes route-resolution arity only, never rendering structure.
	Parent any

	// ShowFieldButtons toggles the per-field hide/show affordances.
	ShowFieldButtons bool

	// CSRFToken is attached verbatim to state-mutating action buttons.
	CSRFToken string

	// DebounceMillis is emitted on the search input for client-side
	// debouncing; the engine itself never waits.
	DebounceMillis int

	// Extra carries caller-supplied contextual values handed to custom
	// field formatters.
	Extra map[string]any
}

// Validate checks the snapshot for the configuration errors the engine
// refuses to render through.
func (v ViewState) Validate() error {
	if err := v.Fields.Validate(); err != nil {
		return err
	}
	if v.Page.PerPage <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPerPage, v.Page.PerPage)
	}
	if v.Sort.Active() {
		f, ok := v.Fields.Get(v.Sort.Key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSortKey, v.Sort.Key)
		}
		if !f.Sortable {
			return fmt.Errorf("%w: %q", ErrNotSortable, v.Sort.Key)
		}
	}
	return nil
}
