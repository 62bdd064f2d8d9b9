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

// Package demo wires the view composition engine into a runnable reference
// application: an in-memory order store standing in for the data-fetch
// collaborator, a path-template route resolver, and an HTTP server that
// treats every click as a discrete state transition.
package demo

import (
	"fmt"
	"time"
)

// Order is the demo entity.
type Order struct {
	ID         int
	Customer   string
	Status     string
	Amount     float64
	InsertedAt time.Time
}

var demoStatuses = []string{"pending", "paid", "shipped", "cancelled"}

var demoCustomers = []string{
	"Acme Corp", "Globex", "Initech", "Umbrella", "Stark Industries",
	"Wayne Enterprises", "Tyrell", "Cyberdyne", "Wonka Industries", "Soylent",
}

// SeedOrders builds n deterministic demo orders, so every run of the demo
// pages and sorts identically.
func SeedOrders(n int) []Order {
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	orders := make([]Order, 0, n)
	for i := 1; i <= n; i++ {
		orders = append(orders, Order{
			ID:         i,
			Customer:   fmt.Sprintf("%s #%d", demoCustomers[i%len(demoCustomers)], i),
			Status:     demoStatuses[(i*7)%len(demoStatuses)],
			Amount:     float64((i*137)%9000) / 100,
			InsertedAt: base.Add(time.Duration(i) * 37 * time.Minute),
		})
	}
	return orders
}
