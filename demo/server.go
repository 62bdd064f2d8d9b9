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
	"crypto/rand"
	"embed"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/sirupsen/logrus"

	"github.com/tabularium/tabularium/core/compose"
	"github.com/tabularium/tabularium/core/config"
	"github.com/tabularium/tabularium/core/render"
	"github.com/tabularium/tabularium/core/state"
)

//go:embed templates/*
var templateFS embed.FS

// Server serves the demo order table. Every interactive click arrives as
// an event parameter, is applied as a pure state transition, and redirects
// to the canonical URL of the successor state.
type Server struct {
	cfg      *config.TableConfig
	store    *Store
	composer *compose.Composer
	log      *logrus.Logger
	token    string
	pageTpl  *template.Template
}

// NewServer wires the store, composer and page template together.
func NewServer(cfg *config.TableConfig, store *Store, log *logrus.Logger) (*Server, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)
	pageTpl, err := template.New("page.html").ParseFS(trustedFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	routes := OrderRoutes{Base: "/orders"}
	composer := compose.New(nil, routes)
	composer.SetNestedRoutes(routes)

	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("generating csrf token: %w", err)
	}

	return &Server{
		cfg:      cfg,
		store:    store,
		composer: composer,
		log:      log,
		token:    hex.EncodeToString(tokenBytes),
		pageTpl:  pageTpl,
	}, nil
}

// Handler returns the demo's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/orders", http.StatusFound)
	})
	mux.HandleFunc("/orders", s.handleTable)
	mux.HandleFunc("/orders.txt", s.handleText)
	return s.logged(mux)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v, err := ViewStateFromURL(q, s.cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A click: apply the transition and redirect to the successor state.
	if event := q.Get(paramEvent); event != "" {
		next := ApplyEvent(v, event, q.Get(paramPayload))
		http.Redirect(w, r, "/orders?"+EncodeQuery(next).Encode(), http.StatusSeeOther)
		return
	}

	v, err = s.materialize(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	tree, err := s.composer.Compose(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	body, err := render.HTML(tree)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		Title string
		Body  safehtml.HTML
	}{Title: s.cfg.Title, Body: body}
	if err := s.pageTpl.Execute(w, data); err != nil {
		s.log.WithError(err).Error("rendering page")
	}
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	v, err := ViewStateFromURL(r.URL.Query(), s.cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v, err = s.materialize(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	tree, err := s.composer.Compose(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := render.Text(w, tree); err != nil {
		s.log.WithError(err).Error("rendering text table")
	}
}

// materialize asks the store for the snapshot's page of rows, clamping the
// page number when a narrowed search leaves it past the end.
func (s *Server) materialize(v state.ViewState) (state.ViewState, error) {
	rows, total, err := s.store.Fetch(v)
	if err != nil {
		return v, err
	}
	v.Rows = rows
	v.Page.TotalCount = total
	v.CSRFToken = s.token

	if tp := v.Page.TotalPages(); tp > 0 && v.Page.CurrentPage > tp {
		v = v.WithPage(tp)
		rows, _, err = s.store.Fetch(v)
		if err != nil {
			return v, err
		}
		v.Rows = rows
	}
	return v, nil
}

// logged wraps a handler with request logging.
func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
