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

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrServerNotListed means no dropdown option matched the configured server.
var ErrServerNotListed = errors.New("server not listed")

// ParseServerChoice splits "Server 39 - SSINJAA" into "39" and "SSINJAA".
// Strings without " - " yield no components; the number is empty when the
// first part does not mention "Server".
func ParseServerChoice(choice string) (number, name string) {
	parts := strings.Split(choice, " - ")
	if len(parts) < 2 {
		return "", ""
	}
	server := strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if _, after, ok := strings.Cut(server, "Server"); ok {
		number = strings.TrimSpace(after)
	}
	return number, name
}

// MatchesServer reports whether an option text names the chosen server.
func MatchesServer(choice, optionText string) bool {
	number, name := ParseServerChoice(choice)
	switch {
	case number != "" && name != "":
		return (strings.Contains(optionText, number) || strings.Contains(optionText, "Server "+number)) &&
			strings.Contains(optionText, name)
	case name != "":
		return strings.Contains(optionText, name)
	default:
		return strings.Contains(optionText, choice)
	}
}

// FindServerOption returns the first option matching choice.
func FindServerOption(choice string, opts []Option) (Option, bool) {
	for _, o := range opts {
		if MatchesServer(choice, o.Text) {
			return o, true
		}
	}
	return Option{}, false
}

// SelectMethod is one way of making a <select> show an option.
type SelectMethod struct {
	Name string
	Do   func(ctx context.Context, p Page, el Element, opt Option) error
}

// DefaultSelectPlan marks the option selected first and falls back to
// forcing the select's value.
var DefaultSelectPlan = []SelectMethod{
	{Name: SelectOption, Do: func(ctx context.Context, p Page, el Element, opt Option) error {
		return p.SelectOption(ctx, el, opt.Index)
	}},
	{Name: SelectForce, Do: func(ctx context.Context, p Page, el Element, opt Option) error {
		return p.ForceValue(ctx, el, opt.Value)
	}},
}

// selectServer picks the configured server in the dropdown.
func (s *Session) selectServer(ctx context.Context) error {
	s.logf("Select server: waiting for dropdown")
	dropdown, err := FindElement(ctx, s.page, TargetServerDropdown, serverDropdownLocators, s.cfg.Timeouts.ServerDropdown)
	if err != nil {
		s.capture(ctx, ShotServerDropdownMissing)
		return err
	}
	s.logf("Select server: dropdown found with %s", dropdown.Locator)
	if err := s.page.ScrollIntoView(ctx, dropdown); err != nil {
		s.logf("Select server: scroll: %v", err)
	}
	s.pause(ctx)

	number, name := ParseServerChoice(s.cfg.Server)
	s.logf("Select server: target %q (number %q, name %q)", s.cfg.Server, number, name)

	opts, err := s.page.Options(ctx, dropdown)
	if err != nil {
		s.capture(ctx, ShotServerSelectionError)
		return fmt.Errorf("read server options: %w", err)
	}
	for _, o := range opts {
		s.logf("Select server: option value=%q text=%q", o.Value, o.Text)
	}
	opt, ok := FindServerOption(s.cfg.Server, opts)
	if !ok {
		s.capture(ctx, ShotServerSelectionFailed)
		return fmt.Errorf("%w: %q", ErrServerNotListed, s.cfg.Server)
	}

	var errs []error
	for _, m := range DefaultSelectPlan {
		if err := m.Do(ctx, s.page, dropdown, opt); err != nil {
			s.logf("Select server: %s failed: %v", m.Name, err)
			errs = append(errs, fmt.Errorf("%s: %w", m.Name, err))
			continue
		}
		s.logf("Select server: selected %q with %s", opt.Text, m.Name)
		s.report.Event("select %s: %s (%s)", TargetServerDropdown, m.Name, opt.Text)
		s.pause(ctx)
		return nil
	}
	s.capture(ctx, ShotServerSelectionFailed)
	return fmt.Errorf("select server %q: %w", opt.Text, errors.Join(errs...))
}
