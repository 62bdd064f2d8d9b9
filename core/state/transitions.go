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

package state

// Pure state transitions. Each With* method leaves the receiver untouched
// and returns a new snapshot with the requested change applied; the caller
// re-fetches rows and re-renders with the result.

// clone returns a copy whose Fields slice is independent of the receiver,
// so flipping a Hidden flag never leaks into older snapshots.
func (v ViewState) clone() ViewState {
	next := v
	next.Fields = v.Fields.Clone()
	return next
}

// WithSortToggled applies the sort cycle for a click on key. The current
// page is preserved; the data supplier re-sorts before the next render.
func (v ViewState) WithSortToggled(key string) ViewState {
	next := v.clone()
	next.Sort = v.Sort.Next(key)
	return next
}

// WithPage moves to page n, clamped to the valid range. A zero-page table
// clamps to page 1.
func (v ViewState) WithPage(n int) ViewState {
	next := v.clone()
	if n < 1 {
		n = 1
	}
	if tp := v.Page.TotalPages(); tp > 0 && n > tp {
		n = tp
	}
	next.Page.CurrentPage = n
	return next
}

// WithSearch replaces the search term and resets to the first page, since
// the filtered result set has a new page count.
func (v ViewState) WithSearch(term string) ViewState {
	next := v.clone()
	next.Search = term
	next.Page.CurrentPage = 1
	return next
}

// WithColumnHidden moves key into the hidden partition. Unknown keys are a
// no-op; the partition is recomputed from the Fields flags on every render.
func (v ViewState) WithColumnHidden(key string) ViewState {
	return v.withHidden(key, true)
}

// WithColumnShown moves key into the visible partition.
func (v ViewState) WithColumnShown(key string) ViewState {
	return v.withHidden(key, false)
}

func (v ViewState) withHidden(key string, hidden bool) ViewState {
	next := v.clone()
	for i := range next.Fields {
		if next.Fields[i].Key == key {
			next.Fields[i].Hidden = hidden
		}
	}
	return next
}

// WithFieldButtonsToggled flips the visibility of the per-field hide/show
// affordances.
func (v ViewState) WithFieldButtonsToggled() ViewState {
	next := v.clone()
	next.ShowFieldButtons = !v.ShowFieldButtons
	return next
}
