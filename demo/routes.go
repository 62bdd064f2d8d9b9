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

	"github.com/tabularium/tabularium/core/actions"
)

// OrderRoutes resolves action destinations with conventional REST paths
// under a base path: /orders/new, /orders/42, /orders/42/edit. The nested
// arities prefix the parent's path segment.
type OrderRoutes struct {
	Base string // e.g. "/orders"
}

var _ actions.RouteResolver = OrderRoutes{}
var _ actions.NestedRouteResolver = OrderRoutes{}

// CollectionPath resolves the collection-scoped actions.
func (r OrderRoutes) CollectionPath(kind actions.Kind) (string, error) {
	if kind != actions.New {
		return "", fmt.Errorf("action %s needs an entity", kind)
	}
	return r.Base + "/new", nil
}

// EntityPath resolves the row-scoped actions.
func (r OrderRoutes) EntityPath(kind actions.Kind, entity any) (string, error) {
	id, err := orderID(entity)
	if err != nil {
		return "", err
	}
	switch kind {
	case actions.Show, actions.Delete:
		return fmt.Sprintf("%s/%d", r.Base, id), nil
	case actions.Edit:
		return fmt.Sprintf("%s/%d/edit", r.Base, id), nil
	default:
		return "", fmt.Errorf("action %s is collection-scoped", kind)
	}
}

// NestedCollectionPath resolves collection actions under a parent entity.
func (r OrderRoutes) NestedCollectionPath(kind actions.Kind, parent any) (string, error) {
	prefix, err := parentPrefix(parent)
	if err != nil {
		return "", err
	}
	path, err := r.CollectionPath(kind)
	if err != nil {
		return "", err
	}
	return prefix + path, nil
}

// NestedEntityPath resolves row actions under a parent entity.
func (r OrderRoutes) NestedEntityPath(kind actions.Kind, parent any, entity any) (string, error) {
	prefix, err := parentPrefix(parent)
	if err != nil {
		return "", err
	}
	path, err := r.EntityPath(kind, entity)
	if err != nil {
		return "", err
	}
	return prefix + path, nil
}

func orderID(entity any) (int, error) {
	switch e := entity.(type) {
	case Order:
		return e.ID, nil
	case *Order:
		return e.ID, nil
	default:
		return 0, fmt.Errorf("unexpected entity type %T", entity)
	}
}

// parentPrefix maps a parent entity to its path segment. The demo only
// nests orders under customers given as plain path segments.
func parentPrefix(parent any) (string, error) {
	switch p := parent.(type) {
	case string:
		return "/" + p, nil
	default:
		return "", fmt.Errorf("unexpected parent type %T", parent)
	}
}
