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
	"encoding/json"
	"fmt"
	"strings"
)

// Option is one entry of a <select> element.
type Option struct {
	Index int    `json:"index"`
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Page is what the session drives: semantic operations on resolved elements.
type Page interface {
	Navigate(ctx context.Context, url string) error
	// Resolve tags the first present and interactable match of loc with ref.
	// It reports false when nothing qualifies.
	Resolve(ctx context.Context, loc Locator, ref string) (bool, error)
	// HitTest fails with ErrClickIntercepted when the element's centre is
	// covered by another element.
	HitTest(ctx context.Context, el Element) error
	NativeClick(ctx context.Context, el Element) error
	ScriptClick(ctx context.Context, el Element) error
	PointerClick(ctx context.Context, el Element) error
	ScrollIntoView(ctx context.Context, el Element) error
	Highlight(ctx context.Context, el Element) error
	Fill(ctx context.Context, el Element, text string) error
	Options(ctx context.Context, el Element) ([]Option, error)
	SelectOption(ctx context.Context, el Element, index int) error
	ForceValue(ctx context.Context, el Element, value string) error
	Text(ctx context.Context, el Element) (string, error)
	Screenshot(ctx context.Context) ([]byte, error)
	Dialogs() <-chan Dialog
	Close() error
}

// NewPage builds a Page on top of a driver's primitives.
func NewPage(b Browser) Page {
	return &domPage{b: b}
}

type domPage struct {
	b Browser
}

// jsCall renders fn applied to JSON-encoded args as a JS expression.
func jsCall(fn string, args ...any) string {
	enc := make([]string, 0, len(args))
	for _, a := range args {
		buf, err := json.Marshal(a)
		if err != nil {
			buf = []byte("null")
		}
		enc = append(enc, string(buf))
	}
	return "(" + fn + ")(" + strings.Join(enc, ", ") + ")"
}

const resolveJS = `function(kind, expr, attr, ref) {
	var stale = document.querySelectorAll('[' + attr + '="' + ref + '"]');
	for (var s = 0; s < stale.length; s++) stale[s].removeAttribute(attr);
	var nodes = [];
	try {
		if (kind === 'xpath') {
			var r = document.evaluate(expr, document, null, XPathResult.ORDERED_NODE_SNAPSHOT_TYPE, null);
			for (var i = 0; i < r.snapshotLength; i++) nodes.push(r.snapshotItem(i));
		} else {
			nodes = Array.prototype.slice.call(document.querySelectorAll(expr));
		}
	} catch (e) {
		return 'invalid: ' + e.message;
	}
	for (var j = 0; j < nodes.length; j++) {
		var el = nodes[j];
		if (!(el instanceof Element)) continue;
		var style = window.getComputedStyle(el);
		if (el.getClientRects().length === 0 || style.display === 'none' || style.visibility === 'hidden' || style.opacity === '0') continue;
		if (el.disabled) continue;
		el.setAttribute(attr, ref);
		return 'found';
	}
	return 'missing';
}`

func (p *domPage) Navigate(ctx context.Context, url string) error {
	return p.b.Navigate(ctx, url)
}

func (p *domPage) Resolve(ctx context.Context, loc Locator, ref string) (bool, error) {
	var res string
	if err := p.b.Eval(ctx, jsCall(resolveJS, loc.Kind.String(), loc.Expr, RefAttribute, ref), &res); err != nil {
		return false, err
	}
	switch {
	case res == "found":
		return true, nil
	case res == "missing":
		return false, nil
	default:
		return false, fmt.Errorf("locator %s: %s", loc, res)
	}
}

const hitTestJS = `function(sel) {
	var el = document.querySelector(sel);
	if (!el) return 'missing';
	var r = el.getBoundingClientRect();
	var hit = document.elementFromPoint(r.left + r.width / 2, r.top + r.height / 2);
	if (!hit) return 'offscreen';
	if (hit === el || el.contains(hit)) return 'ok';
	return hit.tagName.toLowerCase() + (hit.id ? '#' + hit.id : '');
}`

func (p *domPage) HitTest(ctx context.Context, el Element) error {
	var res string
	if err := p.b.Eval(ctx, jsCall(hitTestJS, el.Selector()), &res); err != nil {
		return err
	}
	switch res {
	case "ok":
		return nil
	case "missing":
		return fmt.Errorf("%s: %w", el.Target, ErrElementNotFound)
	default:
		return fmt.Errorf("%w: %s covered by %s", ErrClickIntercepted, el.Target, res)
	}
}

func (p *domPage) NativeClick(ctx context.Context, el Element) error {
	return p.b.Click(ctx, el.Selector())
}

const scriptClickJS = `function(sel) {
	var el = document.querySelector(sel);
	if (!el) throw new Error('element not found: ' + sel);
	el.click();
	return true;
}`

func (p *domPage) ScriptClick(ctx context.Context, el Element) error {
	return p.b.Eval(ctx, jsCall(scriptClickJS, el.Selector()), nil)
}

const pointerClickJS = `function(sel) {
	var el = document.querySelector(sel);
	if (!el) throw new Error('element not found: ' + sel);
	var r = el.getBoundingClientRect();
	var init = {
		view: window,
		bubbles: true,
		cancelable: true,
		button: 0,
		clientX: r.left + r.width / 2,
		clientY: r.top + r.height / 2
	};
	el.dispatchEvent(new MouseEvent('mousedown', init));
	el.dispatchEvent(new MouseEvent('mouseup', init));
	el.dispatchEvent(new MouseEvent('click', init));
	return true;
}`

func (p *domPage) PointerClick(ctx context.Context, el Element) error {
	return p.b.Eval(ctx, jsCall(pointerClickJS, el.Selector()), nil)
}

const scrollJS = `function(sel) {
	var el = document.querySelector(sel);
	if (!el) throw new Error('element not found: ' + sel);
	el.scrollIntoView({block: 'center', inline: 'center'});
	return true;
}`

func (p *domPage) ScrollIntoView(ctx context.Context, el Element) error {
	return p.b.Eval(ctx, jsCall(scrollJS, el.Selector()), nil)
}

const highlightJS = `function(sel) {
	var el = document.querySelector(sel);
	if (!el) throw new Error('element not found: ' + sel);
	el.style.border = '3px solid red';
	return true;
}`

func (p *domPage) Highlight(ctx context.Context, el Element) error {
	return p.b.Eval(ctx, jsCall(highlightJS, el.Selector()), nil)
}

func (p *domPage) Fill(ctx context.Context, el Element, text string) error {
	return p.b.Fill(ctx, el.Selector(), text)
}

const optionsJS = `function(sel) {
	var el = document.querySelector(sel);
	if (!el || !el.options) throw new Error('select not found: ' + sel);
	var out = [];
	for (var i = 0; i < el.options.length; i++) {
		out.push({index: i, value: el.options[i].value, text: el.options[i].text.trim()});
	}
	return out;
}`

func (p *domPage) Options(ctx context.Context, el Element) ([]Option, error) {
	var opts []Option
	if err := p.b.Eval(ctx, jsCall(optionsJS, el.Selector()), &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

const selectOptionJS = `function(sel, index) {
	var el = document.querySelector(sel);
	if (!el || !el.options || index >= el.options.length) throw new Error('option ' + index + ' not found in ' + sel);
	el.focus();
	el.options[index].selected = true;
	el.selectedIndex = index;
	el.dispatchEvent(new Event('change', {bubbles: true}));
	return el.selectedIndex === index;
}`

func (p *domPage) SelectOption(ctx context.Context, el Element, index int) error {
	var ok bool
	if err := p.b.Eval(ctx, jsCall(selectOptionJS, el.Selector(), index), &ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: option %d did not stay selected", el.Target, index)
	}
	return nil
}

const forceValueJS = `function(sel, value) {
	var el = document.querySelector(sel);
	if (!el) throw new Error('element not found: ' + sel);
	el.value = value;
	el.dispatchEvent(new Event('input', {bubbles: true}));
	el.dispatchEvent(new Event('change', {bubbles: true}));
	return el.value === value;
}`

func (p *domPage) ForceValue(ctx context.Context, el Element, value string) error {
	var ok bool
	if err := p.b.Eval(ctx, jsCall(forceValueJS, el.Selector(), value), &ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: value %q was not accepted", el.Target, value)
	}
	return nil
}

const textJS = `function(sel) {
	var el = document.querySelector(sel);
	if (!el) throw new Error('element not found: ' + sel);
	return (el.innerText || el.textContent || '').trim();
}`

func (p *domPage) Text(ctx context.Context, el Element) (string, error) {
	var s string
	err := p.b.Eval(ctx, jsCall(textJS, el.Selector()), &s)
	return s, err
}

func (p *domPage) Screenshot(ctx context.Context) ([]byte, error) {
	return p.b.Screenshot(ctx)
}

func (p *domPage) Dialogs() <-chan Dialog {
	return p.b.Dialogs()
}

func (p *domPage) Close() error {
	return p.b.Close()
}
