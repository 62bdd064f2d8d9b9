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

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/tabularium/tabularium/core/nodes"
)

// Text writes a terminal rendition of the tree: the table as an ASCII grid
// plus one line each for the pagination bar and the empty-page notice.
// Useful for debugging and for the demo's plain-text endpoint.
func Text(w io.Writer, root *nodes.Node) error {
	table := root.Find(nodes.ByKind(nodes.KindTable))
	if table == nil {
		return fmt.Errorf("tree has no table node")
	}

	tw := tablewriter.NewWriter(w)
	for _, child := range table.Children {
		switch child.Kind {
		case nodes.KindHeaderRow:
			tw.SetHeader(cellLabels(child))
		case nodes.KindRow:
			tw.Append(cellLabels(child))
		}
	}
	tw.Render()

	if nf := root.Find(nodes.ByRole(nodes.RoleNothingFound)); nf != nil {
		fmt.Fprintln(w, nf.InnerText())
	}

	// Render the trailing pagination bar only; the top bar repeats it.
	bars := root.FindAll(nodes.ByRole(nodes.RolePagination))
	if len(bars) > 0 {
		fmt.Fprintln(w, paginationLine(bars[len(bars)-1]))
	}
	return nil
}

// cellLabels extracts one display string per cell. Header cells take their
// first text leaf so hide buttons don't bleed into the label; body cells
// join all their text leaves.
func cellLabels(row *nodes.Node) []string {
	var out []string
	for _, cell := range row.Children {
		if cell.Kind != nodes.KindCell {
			continue
		}
		if row.Kind == nodes.KindHeaderRow {
			if leaf := cell.Find(nodes.ByKind(nodes.KindText)); leaf != nil {
				out = append(out, leaf.Text)
			} else {
				out = append(out, "")
			}
			continue
		}
		var parts []string
		cell.Walk(func(n *nodes.Node) bool {
			if n.Kind == nodes.KindText && n.Text != "" {
				parts = append(parts, n.Text)
			}
			return true
		})
		out = append(out, strings.Join(parts, " "))
	}
	return out
}

// paginationLine renders the control bar as a single line, with the
// current page bracketed: "Previous 1 ... 4 [5] 6 ... 10 Next".
func paginationLine(bar *nodes.Node) string {
	var parts []string
	for _, ctl := range bar.Children {
		label := ctl.InnerText()
		if ctl.HasAttr(nodes.AttrActive) {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
