// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fixture serves a local copy of the daily reward event page with
// the markup the bot's locators expect. Scenario options switch on the
// awkward cases seen on the live site.
package fixture

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
)

// EventPath is where the event page is served.
const EventPath = "/event/"

// ServerOption is one entry of the server dropdown.
type ServerOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// DefaultServers is the dropdown used when Options.Servers is empty.
var DefaultServers = []ServerOption{
	{Value: "38", Text: "Server 38 - KONOHA"},
	{Value: "39", Text: "Server 39 - SSINJAA"},
	{Value: "139", Text: "Server 139 - SSINJAA"},
}

// Options selects the page variant.
type Options struct {
	// LoggedIn renders the page without a login button.
	LoggedIn bool `json:"loggedIn"`
	// ModalNeverShows makes the login button do nothing.
	ModalNeverShows bool `json:"modalNeverShows"`
	// NoReward renders every day as claimed or locked.
	NoReward bool `json:"noReward"`
	// OverlaySubmit covers both submit buttons with a transparent div so a
	// real click lands on the overlay.
	OverlaySubmit bool `json:"overlaySubmit"`
	// NoAlert skips the confirmation alert after a claim.
	NoAlert bool `json:"noAlert"`
	// NoNotice skips the success notice after a claim.
	NoNotice bool `json:"noNotice"`

	Servers []ServerOption `json:"-"`

	// Host is the host name put in URL. Use the name a remote Chrome can
	// reach this process by. Defaults to localhost.
	Host string `json:"-"`
	// Listen is the listen address. Defaults to 127.0.0.1:0, or 0.0.0.0:0
	// when Host is not localhost.
	Listen string `json:"-"`
}

// Scenario is a named page variant.
type Scenario struct {
	Name    string
	Options Options
}

// Scenarios lists the variants worth driving end to end.
var Scenarios = []Scenario{
	{Name: "claim", Options: Options{}},
	{Name: "already_logged_in", Options: Options{LoggedIn: true}},
	{Name: "no_reward", Options: Options{NoReward: true}},
	{Name: "overlay", Options: Options{OverlaySubmit: true}},
	{Name: "no_alert", Options: Options{NoAlert: true, NoNotice: true}},
	{Name: "modal_never_shows", Options: Options{ModalNeverShows: true}},
}

// Credentials is one login form submission.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Claim is one server form submission.
type Claim struct {
	Server string `json:"server"`
}

// Server is a running fixture.
type Server struct {
	// URL is the event page address, with the same query the live page uses.
	URL string

	opts Options
	l    net.Listener
	srv  *http.Server

	mu     sync.Mutex
	logins []Credentials
	claims []Claim
}

// Start serves the page described by opts until Close is called.
func Start(opts Options) (*Server, error) {
	if len(opts.Servers) == 0 {
		opts.Servers = DefaultServers
	}
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	if opts.Listen == "" {
		opts.Listen = "127.0.0.1:0"
		if opts.Host != "localhost" && opts.Host != "127.0.0.1" {
			opts.Listen = "0.0.0.0:0"
		}
	}
	l, err := net.Listen("tcp", opts.Listen)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", opts.Listen, err)
	}
	_, port, _ := net.SplitHostPort(l.Addr().String())

	s := &Server{
		URL:  fmt.Sprintf("http://%s:%s%s?event=daily", opts.Host, port, EventPath),
		opts: opts,
		l:    l,
	}
	s.srv = &http.Server{Handler: s.Handler()}
	go func() {
		if err := s.srv.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Printf("fixture: serve: %v", err)
		}
	}()
	return s, nil
}

// Handler returns the fixture's routes without starting a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+EventPath, s.handlePage)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/claim", s.handleClaim)
	return mux
}

// Close stops the server.
func (s *Server) Close() error {
	return s.srv.Close()
}

// Logins returns the login submissions received so far.
func (s *Server) Logins() []Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Credentials(nil), s.logins...)
}

// Claims returns the server form submissions received so far.
func (s *Server) Claims() []Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Claim(nil), s.claims...)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTmpl.Execute(w, s.opts); err != nil {
		log.Printf("fixture: render: %v", err)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var c Credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if c.Email == "" || c.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.logins = append(s.logins, c)
	s.mu.Unlock()
	log.Printf("fixture: login %s", c.Email)
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var c Claim
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if c.Server == "" {
		http.Error(w, "Must be chosen", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.claims = append(s.claims, c)
	s.mu.Unlock()
	log.Printf("fixture: claim on server %s", c.Server)
	writeJSON(w, map[string]string{"status": "ok", "message": "Reward claimed"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("fixture: encode: %v", err)
	}
}
