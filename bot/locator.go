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
	"time"
)

// ErrElementNotFound is returned when no locator in a set resolves to a
// present and interactable element.
var ErrElementNotFound = errors.New("element not found")

// LocatorKind tells the page how to evaluate a locator expression.
type LocatorKind int

const (
	CSS LocatorKind = iota
	XPath
)

func (k LocatorKind) String() string {
	if k == XPath {
		return "xpath"
	}
	return "css"
}

// Locator is one strategy for finding a page element.
type Locator struct {
	Kind LocatorKind
	Expr string
}

func (l Locator) String() string {
	return l.Kind.String() + ":" + l.Expr
}

// ParseLocator classifies expr. Path expressions start with "//" or "(//".
func ParseLocator(expr string) Locator {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "//") || strings.HasPrefix(expr, "(//") {
		return Locator{Kind: XPath, Expr: expr}
	}
	return Locator{Kind: CSS, Expr: expr}
}

// Locators parses an ordered list of expressions.
func Locators(exprs ...string) []Locator {
	out := make([]Locator, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, ParseLocator(e))
	}
	return out
}

// Element is a node resolved by FindElement. It is addressed through the
// ref attribute the page wrote onto it.
type Element struct {
	Target  string
	Ref     string
	Locator Locator
}

// Selector returns the CSS selector matching exactly this element.
func (e Element) Selector() string {
	return RefSelector(e.Ref)
}

// RefSelector returns the CSS selector for a ref value.
func RefSelector(ref string) string {
	return fmt.Sprintf(`[%s=%q]`, RefAttribute, ref)
}

// FindElement scans locs in order and returns the first element that is
// present and interactable. The whole list is rescanned every pollInterval
// until timeout elapses; a zero timeout makes a single pass.
func FindElement(ctx context.Context, p Page, target string, locs []Locator, timeout time.Duration) (Element, error) {
	ref := refFor(target)
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		for _, loc := range locs {
			ok, err := p.Resolve(ctx, loc, ref)
			if err != nil {
				// Bad expressions and transient evaluation errors count as misses.
				if ctx.Err() != nil {
					return Element{}, ctx.Err()
				}
				continue
			}
			if ok {
				return Element{Target: target, Ref: ref, Locator: loc}, nil
			}
		}
		if !time.Now().Before(deadline) {
			return Element{}, fmt.Errorf("%s: %w", target, ErrElementNotFound)
		}
		select {
		case <-ctx.Done():
			return Element{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// refFor turns a target name into an attribute-safe ref.
func refFor(target string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(target) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
