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

// Package cmd holds the tabularium command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCommand is the base command of the tabularium CLI.
var RootCommand = &cobra.Command{
	Use:   "tabularium",
	Short: "Tabularium renders declarative, interactive data tables",
	Long: `Tabularium turns a declarative table definition plus interaction state
(sort order, page, visible columns, search term) into a deterministic tree
of markup nodes, served here by a demo application.`,
}

func init() {
	RootCommand.AddCommand(serveCommand())
}
