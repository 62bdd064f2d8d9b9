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

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabularium/tabularium/core/actions"
)

const sampleYAML = `
title: Orders
per_page: 25
show_field_buttons: true
action_buttons: [new, show, delete]
fields:
  - key: id
    sortable: true
  - key: customer
    label: Customer Name
    sortable: true
    searchable: true
  - key: internal_ref
    hidden: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Orders", cfg.Title)
	assert.Equal(t, 25, cfg.PerPage)
	assert.Equal(t, DefaultDebounce, cfg.Debounce, "unset debounce gets the default")
	assert.True(t, cfg.ShowFieldButtons)

	list, err := cfg.FieldList()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Customer Name", list[1].Label)
	assert.True(t, list[1].Searchable)
	assert.True(t, list[2].Hidden)

	kinds, err := cfg.Actions()
	require.NoError(t, err)
	assert.Equal(t, []actions.Kind{actions.New, actions.Show, actions.Delete}, kinds)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("fields:\n  - key: name\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPerPage, cfg.PerPage)
	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Empty(t, cfg.ActionButtons)
}

func TestParseRejectsUnknownAction(t *testing.T) {
	_, err := Parse(strings.NewReader(`
action_buttons: [destroy]
fields:
  - key: name
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destroy")
}

func TestParseRejectsDuplicateFieldKeys(t *testing.T) {
	_, err := Parse(strings.NewReader(`
fields:
  - key: name
  - key: name
`))
	require.Error(t, err)
}

func TestParseRejectsEmptyFieldSet(t *testing.T) {
	_, err := Parse(strings.NewReader("title: Empty\n"))
	require.Error(t, err)
}

func TestParseRejectsNegativePerPage(t *testing.T) {
	_, err := Parse(strings.NewReader(`
per_page: -5
fields:
  - key: name
`))
	require.Error(t, err)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader(`
paginate: true
fields:
  - key: name
`))
	require.Error(t, err, "unknown top-level keys are configuration typos")
}
