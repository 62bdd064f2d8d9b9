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

package cmd

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tabularium/tabularium/core/config"
	"github.com/tabularium/tabularium/demo"
)

func serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		seedCount  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo order table",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			store := demo.NewStore(demo.SeedOrders(seedCount))
			server, err := demo.NewServer(cfg, store, log)
			if err != nil {
				return err
			}

			log.WithField("addr", addr).Info("serving table")
			return http.ListenAndServe(addr, server.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML table definition (built-in demo table when empty)")
	cmd.Flags().IntVar(&seedCount, "rows", 137, "number of demo rows to seed")
	return cmd
}

func loadConfig(path string) (*config.TableConfig, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfig is the built-in orders table definition used when no
// config file is given.
func defaultConfig() *config.TableConfig {
	return &config.TableConfig{
		Title:         "Orders",
		PerPage:       10,
		Debounce:      config.DefaultDebounce,
		ActionButtons: []string{"new", "show", "edit", "delete"},
		Fields: []config.FieldConfig{
			{Key: "id", Sortable: true},
			{Key: "customer", Sortable: true, Searchable: true},
			{Key: "status", Sortable: true, Searchable: true},
			{Key: "amount", Sortable: true},
			{Key: "inserted_at", Label: "Created", Sortable: true, Hidden: true},
		},
	}
}
