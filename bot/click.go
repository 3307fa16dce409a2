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
)

// ErrClickFailed is returned when every method of a click plan failed.
var ErrClickFailed = errors.New("all click methods failed")

// ClickMethod is one way of clicking an element.
type ClickMethod struct {
	Name string
	Do   func(ctx context.Context, p Page, el Element) error
}

// DefaultClickPlan tries a real input click, then el.click(), then a
// synthesized mouse event at the element centre.
var DefaultClickPlan = []ClickMethod{
	{Name: ClickNative, Do: func(ctx context.Context, p Page, el Element) error {
		if err := p.HitTest(ctx, el); err != nil {
			return err
		}
		return p.NativeClick(ctx, el)
	}},
	{Name: ClickScript, Do: func(ctx context.Context, p Page, el Element) error {
		return p.ScriptClick(ctx, el)
	}},
	{Name: ClickPointer, Do: func(ctx context.Context, p Page, el Element) error {
		return p.PointerClick(ctx, el)
	}},
}

// Click runs plan against el until one method succeeds and returns its name.
func Click(ctx context.Context, p Page, el Element, plan []ClickMethod, l Logger) (string, error) {
	var errs []error
	for _, m := range plan {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		err := m.Do(ctx, p, el)
		if err == nil {
			return m.Name, nil
		}
		if l != nil {
			l.Logf("Click %s: %s failed: %v", el.Target, m.Name, err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", m.Name, err))
	}
	return "", fmt.Errorf("%s: %w: %w", el.Target, ErrClickFailed, errors.Join(errs...))
}
