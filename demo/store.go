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
	"fmt"
	"sort"
	"strings"

	"github.com/tabularium/tabularium/core/format"
	"github.com/tabularium/tabularium/core/state"
)

// Store is the in-memory stand-in for the filter/query collaborator: it
// supplies the row page and total count for a snapshot's search, sort and
// page, and never renders anything itself.
type Store struct {
	orders []Order
}

// NewStore creates a store over the given orders.
func NewStore(orders []Order) *Store {
	return &Store{orders: orders}
}

// Fetch returns the materialized page of rows plus the total count of rows
// matching the snapshot's search term. The search matches
// case-insensitively against the searchable fields only.
func (s *Store) Fetch(v state.ViewState) ([]any, int, error) {
	if v.Page.PerPage <= 0 {
		return nil, 0, fmt.Errorf("%w: got %d", state.ErrInvalidPerPage, v.Page.PerPage)
	}

	matched := s.filter(v)
	if err := sortOrders(matched, v.Sort); err != nil {
		return nil, 0, err
	}

	total := len(matched)
	offset := v.Page.Offset()
	if offset > total {
		offset = total
	}
	end := offset + v.Page.PerPage
	if end > total {
		end = total
	}

	rows := make([]any, 0, end-offset)
	for _, o := range matched[offset:end] {
		rows = append(rows, o)
	}
	return rows, total, nil
}

func (s *Store) filter(v state.ViewState) []Order {
	term := strings.ToLower(strings.TrimSpace(v.Search))
	if term == "" {
		return append([]Order(nil), s.orders...)
	}

	searchable := v.Fields
	formatter := format.Default{}
	var matched []Order
	for _, o := range s.orders {
		for _, f := range searchable {
			if !f.Searchable {
				continue
			}
			value := strings.ToLower(formatter.FieldValue(o, f))
			if strings.Contains(value, term) {
				matched = append(matched, o)
				break
			}
		}
	}
	return matched
}

// sortOrders sorts in place by the active sort spec. Ties fall back to ID
// so pagination is stable across renders.
func sortOrders(orders []Order, spec state.SortSpec) error {
	if !spec.Active() {
		return nil
	}

	var less func(a, b Order) bool
	switch spec.Key {
	case "id":
		less = func(a, b Order) bool { return a.ID < b.ID }
	case "customer":
		less = func(a, b Order) bool { return a.Customer < b.Customer }
	case "status":
		less = func(a, b Order) bool { return a.Status < b.Status }
	case "amount":
		less = func(a, b Order) bool { return a.Amount < b.Amount }
	case "inserted_at":
		less = func(a, b Order) bool { return a.InsertedAt.Before(b.InsertedAt) }
	default:
		return fmt.Errorf("%w: %q", state.ErrUnknownSortKey, spec.Key)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if less(a, b) == less(b, a) { // equal on the sort key
			return a.ID < b.ID
		}
		if spec.Direction == state.SortDesc {
			return less(b, a)
		}
		return less(a, b)
	})
	return nil
}
