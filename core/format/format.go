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

// Package format supplies the default formatting collaborator: header
// labels derived from field keys and field values pulled out of entities.
// The composer positions formatted results but never formats anything
// itself, so callers can swap in their own Formatter.
package format

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tabularium/tabularium/core/fields"
)

// Formatter turns field configuration and entities into display strings.
type Formatter interface {
	// HeaderLabel returns the display label for a column header.
	HeaderLabel(f fields.FieldSpec) string
	// FieldValue returns the display value of one field of one entity.
	FieldValue(entity any, f fields.FieldSpec) string
}

var titleCaser = cases.Title(language.English)

// Default formats headers by title-casing the field key and resolves
// values from maps or exported struct fields. A per-field custom format
// function takes precedence and receives Extra, the caller's merged
// contextual state.
type Default struct {
	Extra map[string]any
}

// HeaderLabel returns the explicit label when set, otherwise the key with
// underscores replaced by spaces and each word title-cased, so
// "inserted_at" becomes "Inserted At".
func (d Default) HeaderLabel(f fields.FieldSpec) string {
	if f.Label != "" {
		return f.Label
	}
	return titleCaser.String(strings.ReplaceAll(f.Key, "_", " "))
}

// FieldValue resolves the value of f on entity. Custom format functions
// win; map entities are indexed by key; struct entities are matched on the
// exported field whose snake_cased name equals the key. Unresolvable
// values render as an empty string rather than failing the render.
func (d Default) FieldValue(entity any, f fields.FieldSpec) string {
	if f.Format != nil {
		return f.Format(entity, d.Extra)
	}
	if entity == nil {
		return ""
	}

	if m, ok := entity.(map[string]any); ok {
		if v, ok := m[f.Key]; ok {
			return display(v)
		}
		return ""
	}

	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if snakeCase(sf.Name) == f.Key {
			return display(v.Field(i).Interface())
		}
	}
	return ""
}

// display renders one resolved value. Times get a stable layout so renders
// are deterministic across locales.
func display(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// snakeCase converts an exported Go field name to its snake_case field key,
// so "InsertedAt" matches "inserted_at" and "ID" matches "id".
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
