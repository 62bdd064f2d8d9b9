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

// Package paginate computes the ordered sequence of pagination controls for
// a page state: prev/next arrows, a bounded window of page numbers around
// the current page, and ellipsis markers for the gaps skipped between the
// window and the first or last page.
package paginate

import (
	"fmt"

	"github.com/tabularium/tabularium/core/state"
)

// WindowRadius is the number of page buttons shown on each side of the
// current page before a gap collapses into an ellipsis. The first and last
// page are always shown regardless of the window.
const WindowRadius = 3

// ControlKind identifies one pagination control.
type ControlKind int

const (
	// Prev moves one page back.
	Prev ControlKind = iota
	// Next moves one page forward.
	Next
	// PageNumber jumps to a specific page.
	PageNumber
	// Ellipsis marks a skipped gap. Never clickable.
	Ellipsis
)

// Control is one entry in the pagination bar, in display order.
type Control struct {
	Kind     ControlKind
	Page     int  // The page the control shows and targets; zero for ellipses and disabled arrows
	Current  bool // True for the page-number control of the current page, which carries no action
	Disabled bool // True for boundary arrows and ellipses
}

// ComputeWindow returns the control sequence for p. It is a pure function:
// identical page state yields an identical sequence.
//
// A zero-page state (TotalCount == 0) yields exactly one inert page-1
// control and no arrows, so the pager is never empty.
func ComputeWindow(p state.PageState) ([]Control, error) {
	if p.PerPage <= 0 {
		return nil, fmt.Errorf("%w: got %d", state.ErrInvalidPerPage, p.PerPage)
	}

	totalPages := p.TotalPages()
	if totalPages == 0 {
		return []Control{{Kind: PageNumber, Page: 1, Current: true}}, nil
	}

	current := p.CurrentPage
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	controls := make([]Control, 0, 2*WindowRadius+5)

	prev := Control{Kind: Prev}
	if current == 1 {
		prev.Disabled = true
	} else {
		prev.Page = current - 1
	}
	controls = append(controls, prev)

	lo := current - WindowRadius
	if lo < 1 {
		lo = 1
	}
	hi := current + WindowRadius
	if hi > totalPages {
		hi = totalPages
	}

	if lo > 1 {
		controls = append(controls, pageControl(1, current))
		if lo > 2 {
			controls = append(controls, Control{Kind: Ellipsis, Disabled: true})
		}
	}
	for n := lo; n <= hi; n++ {
		controls = append(controls, pageControl(n, current))
	}
	if hi < totalPages {
		if hi < totalPages-1 {
			controls = append(controls, Control{Kind: Ellipsis, Disabled: true})
		}
		controls = append(controls, pageControl(totalPages, current))
	}

	next := Control{Kind: Next}
	if current == totalPages {
		next.Disabled = true
	} else {
		next.Page = current + 1
	}
	controls = append(controls, next)

	return controls, nil
}

// pageControl builds a numbered control. The current page is marked active
// and carries no navigation action; every other number targets itself.
func pageControl(n, current int) Control {
	return Control{Kind: PageNumber, Page: n, Current: n == current}
}
