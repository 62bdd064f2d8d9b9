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

// Package config loads declarative table definitions from YAML: the field
// set, pagination size, action buttons and the remaining table options.
// Loading produces validated values ready to seed a view state.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tabularium/tabularium/core/actions"
	"github.com/tabularium/tabularium/core/fields"
)

// Defaults applied when a table definition leaves an option unset.
const (
	DefaultPerPage  = 20
	DefaultDebounce = 300
)

// FieldConfig is one field entry of a table definition.
type FieldConfig struct {
	Key        string `yaml:"key"`
	Label      string `yaml:"label"`
	Hidden     bool   `yaml:"hidden"`
	Sortable   bool   `yaml:"sortable"`
	Searchable bool   `yaml:"searchable"`
}

// TableConfig is one declarative table definition.
type TableConfig struct {
	Title            string        `yaml:"title"`
	PerPage          int           `yaml:"per_page"`
	Debounce         int           `yaml:"debounce"`
	ShowFieldButtons bool          `yaml:"show_field_buttons"`
	ActionButtons    []string      `yaml:"action_buttons"`
	Fields           []FieldConfig `yaml:"fields"`
}

// Load reads and parses a table definition file.
func Load(path string) (*TableConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table config: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a table definition and applies defaults. The field set and
// action names are validated; a definition with no fields is rejected.
func Parse(r io.Reader) (*TableConfig, error) {
	var cfg TableConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing table config: %w", err)
	}

	if cfg.PerPage == 0 {
		cfg.PerPage = DefaultPerPage
	}
	if cfg.PerPage < 0 {
		return nil, fmt.Errorf("per_page must be positive, got %d", cfg.PerPage)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if len(cfg.Fields) == 0 {
		return nil, fmt.Errorf("table config has no fields")
	}

	if _, err := cfg.FieldList(); err != nil {
		return nil, err
	}
	if _, err := cfg.Actions(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FieldList converts the field entries into a validated fields.List.
func (c *TableConfig) FieldList() (fields.List, error) {
	specs := make([]fields.FieldSpec, 0, len(c.Fields))
	for _, f := range c.Fields {
		specs = append(specs, fields.FieldSpec{
			Key:        f.Key,
			Label:      f.Label,
			Hidden:     f.Hidden,
			Sortable:   f.Sortable,
			Searchable: f.Searchable,
		})
	}
	return fields.NewList(specs...)
}

// Actions converts the configured action names into kinds.
func (c *TableConfig) Actions() ([]actions.Kind, error) {
	kinds := make([]actions.Kind, 0, len(c.ActionButtons))
	for _, name := range c.ActionButtons {
		k, err := actions.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
