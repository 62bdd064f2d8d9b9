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

package demo

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tabularium/tabularium/core/config"
	"github.com/tabularium/tabularium/core/nodes"
	"github.com/tabularium/tabularium/core/state"
)

// URL parameter names for the round-trippable parts of the view state.
// Rows and total count are recomputed by the store on every request.
const (
	paramPage    = "page"
	paramSort    = "sort"
	paramDir     = "dir"
	paramSearch  = "search"
	paramHidden  = "hidden"
	paramButtons = "fb"
	paramEvent   = "ev"
	paramPayload = "p"
)

// ViewStateFromURL rebuilds a view state snapshot from request parameters,
// seeded with the table definition's fields and options. The hidden
// parameter, when present, replaces the definition's default visibility
// wholesale, so "hidden=" (empty) means every column shown.
func ViewStateFromURL(q url.Values, cfg *config.TableConfig) (state.ViewState, error) {
	fieldList, err := cfg.FieldList()
	if err != nil {
		return state.ViewState{}, err
	}
	kinds, err := cfg.Actions()
	if err != nil {
		return state.ViewState{}, err
	}

	if q.Has(paramHidden) {
		hidden := make(map[string]bool)
		for _, key := range strings.Split(q.Get(paramHidden), ",") {
			if key != "" {
				hidden[key] = true
			}
		}
		for i := range fieldList {
			fieldList[i].Hidden = hidden[fieldList[i].Key]
		}
	}

	page := 1
	if n, err := strconv.Atoi(q.Get(paramPage)); err == nil && n > 0 {
		page = n
	}

	var sort state.SortSpec
	if key := q.Get(paramSort); key != "" {
		sort.Key = key
		if q.Get(paramDir) == "desc" {
			sort.Direction = state.SortDesc
		} else {
			sort.Direction = state.SortAsc
		}
	}

	return state.ViewState{
		Fields:           fieldList,
		Sort:             sort,
		Page:             state.PageState{CurrentPage: page, PerPage: cfg.PerPage},
		Search:           q.Get(paramSearch),
		ActionButtons:    kinds,
		ShowFieldButtons: q.Get(paramButtons) == "1",
		DebounceMillis:   cfg.Debounce,
	}, nil
}

// EncodeQuery serializes the round-trippable parts of a snapshot back into
// URL parameters, the canonical form redirected to after each transition.
func EncodeQuery(v state.ViewState) url.Values {
	q := url.Values{}
	if v.Page.CurrentPage > 1 {
		q.Set(paramPage, strconv.Itoa(v.Page.CurrentPage))
	}
	if v.Sort.Active() {
		q.Set(paramSort, v.Sort.Key)
		q.Set(paramDir, v.Sort.Direction.String())
	}
	if v.Search != "" {
		q.Set(paramSearch, v.Search)
	}

	var hidden []string
	for _, f := range v.Fields.Hidden() {
		hidden = append(hidden, f.Key)
	}
	q.Set(paramHidden, strings.Join(hidden, ","))

	if v.ShowFieldButtons {
		q.Set(paramButtons, "1")
	}
	return q
}

// ApplyEvent runs one symbolic interaction against a snapshot and returns
// the successor state. Unknown events leave the snapshot unchanged.
func ApplyEvent(v state.ViewState, event, payload string) state.ViewState {
	switch event {
	case nodes.ActionSortColumn:
		return v.WithSortToggled(payload)
	case nodes.ActionChangePage:
		if n, err := strconv.Atoi(payload); err == nil {
			return v.WithPage(n)
		}
		return v
	case nodes.ActionSearch:
		return v.WithSearch(payload)
	case nodes.ActionHideColumn:
		return v.WithColumnHidden(payload)
	case nodes.ActionShowColumn:
		return v.WithColumnShown(payload)
	case nodes.ActionToggleFieldButtons:
		return v.WithFieldButtonsToggled()
	default:
		return v
	}
}
