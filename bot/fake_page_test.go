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
	"testing"
	"time"
)

// fakeEl is one element of the in-memory page.
type fakeEl struct {
	visible  bool
	disabled bool
	// hiddenFor makes the element invisible for that many Resolve calls.
	hiddenFor int
	covered   bool
	// resolveErr fails every lookup, as a bad expression would.
	resolveErr error
	optionsErr error

	nativeErr  error
	scriptErr  error
	pointerErr error
	selectErr  error
	onClick    func()

	value   string
	options []Option
	text    string
}

// fakePage implements Page over a map from locator expression to element.
type fakePage struct {
	els     map[string]*fakeEl
	refs    map[string]*fakeEl
	dialogs chan Dialog

	resolved  []string
	clicks    []string
	filled    map[string]string
	navigated []string
	closes    int
	shotErr   error
	// navigateStalls makes Navigate wait for ctx, like a page that never loads.
	navigateStalls bool
}

func newFakePage() *fakePage {
	return &fakePage{
		els:     map[string]*fakeEl{},
		refs:    map[string]*fakeEl{},
		dialogs: make(chan Dialog, 4),
		filled:  map[string]string{},
	}
}

func (p *fakePage) add(expr string, el *fakeEl) *fakeEl {
	p.els[expr] = el
	return el
}

func (p *fakePage) el(e Element) (*fakeEl, error) {
	el, ok := p.refs[e.Ref]
	if !ok {
		return nil, fmt.Errorf("%s: %w", e.Target, ErrElementNotFound)
	}
	return el, nil
}

func (p *fakePage) Navigate(ctx context.Context, url string) error {
	p.navigated = append(p.navigated, url)
	if p.navigateStalls {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (p *fakePage) Resolve(ctx context.Context, loc Locator, ref string) (bool, error) {
	p.resolved = append(p.resolved, loc.Expr)
	delete(p.refs, ref)
	el, ok := p.els[loc.Expr]
	if !ok {
		return false, nil
	}
	if el.resolveErr != nil {
		return false, el.resolveErr
	}
	if el.hiddenFor > 0 {
		el.hiddenFor--
		return false, nil
	}
	if !el.visible || el.disabled {
		return false, nil
	}
	p.refs[ref] = el
	return true, nil
}

func (p *fakePage) HitTest(ctx context.Context, e Element) error {
	el, err := p.el(e)
	if err != nil {
		return err
	}
	if el.covered {
		return fmt.Errorf("%w: %s covered by div#overlay", ErrClickIntercepted, e.Target)
	}
	return nil
}

func (p *fakePage) click(e Element, method string, fail error) error {
	el, err := p.el(e)
	if err != nil {
		return err
	}
	if fail != nil {
		return fail
	}
	p.clicks = append(p.clicks, e.Target+":"+method)
	if el.onClick != nil {
		el.onClick()
	}
	return nil
}

func (p *fakePage) NativeClick(ctx context.Context, e Element) error {
	el, err := p.el(e)
	if err != nil {
		return err
	}
	return p.click(e, ClickNative, el.nativeErr)
}

func (p *fakePage) ScriptClick(ctx context.Context, e Element) error {
	el, err := p.el(e)
	if err != nil {
		return err
	}
	return p.click(e, ClickScript, el.scriptErr)
}

func (p *fakePage) PointerClick(ctx context.Context, e Element) error {
	el, err := p.el(e)
	if err != nil {
		return err
	}
	return p.click(e, ClickPointer, el.pointerErr)
}

func (p *fakePage) ScrollIntoView(ctx context.Context, e Element) error {
	_, err := p.el(e)
	return err
}

func (p *fakePage) Highlight(ctx context.Context, e Element) error {
	_, err := p.el(e)
	return err
}

func (p *fakePage) Fill(ctx context.Context, e Element, text string) error {
	if _, err := p.el(e); err != nil {
		return err
	}
	p.filled[e.Target] = text
	return nil
}

func (p *fakePage) Options(ctx context.Context, e Element) ([]Option, error) {
	el, err := p.el(e)
	if err != nil {
		return nil, err
	}
	if el.optionsErr != nil {
		return nil, el.optionsErr
	}
	return el.options, nil
}

func (p *fakePage) SelectOption(ctx context.Context, e Element, index int) error {
	el, err := p.el(e)
	if err != nil {
		return err
	}
	if el.selectErr != nil {
		return el.selectErr
	}
	el.value = el.options[index].Value
	return nil
}

func (p *fakePage) ForceValue(ctx context.Context, e Element, value string) error {
	el, err := p.el(e)
	if err != nil {
		return err
	}
	el.value = value
	return nil
}

func (p *fakePage) Text(ctx context.Context, e Element) (string, error) {
	el, err := p.el(e)
	if err != nil {
		return "", err
	}
	return el.text, nil
}

func (p *fakePage) Screenshot(ctx context.Context) ([]byte, error) {
	if p.shotErr != nil {
		return nil, p.shotErr
	}
	return []byte("\x89PNG fake"), nil
}

func (p *fakePage) Dialogs() <-chan Dialog { return p.dialogs }

func (p *fakePage) Close() error {
	p.closes++
	return nil
}

// rewardPageOpts shapes the fake daily event page.
type rewardPageOpts struct {
	loggedIn        bool
	modalNeverShows bool
	noReward        bool
	overlaySubmit   bool
	noAlert         bool
	rejectAlert     bool
	selectFails     bool
	optionsFail     bool
	servers         []Option
}

// fakeRewardPage mirrors the markup the live page uses for each step.
type fakeRewardPage struct {
	*fakePage
	trigger, modal, email, password, loginSubmit *fakeEl
	marker, reward, dropdown, serverSubmit       *fakeEl
	notice                                       *fakeEl
}

func newFakeRewardPage(o rewardPageOpts) *fakeRewardPage {
	if o.servers == nil {
		o.servers = []Option{
			{Index: 0, Value: "", Text: "-- Select Server --"},
			{Index: 1, Value: "38", Text: "Server 38 - KONOHA"},
			{Index: 2, Value: "39", Text: "Server 39 - SSINJAA"},
		}
	}
	f := &fakeRewardPage{fakePage: newFakePage()}
	f.add("body", &fakeEl{visible: true})
	f.trigger = f.add("a.btn.btn-login.login-shinobi.loginMethod", &fakeEl{visible: !o.loggedIn})
	f.modal = f.add("#LoginForm", &fakeEl{})
	f.email = f.add("#LoginForm input[name='email']", &fakeEl{})
	f.password = f.add("#LoginForm input[type='password']", &fakeEl{})
	f.loginSubmit = f.add("#LoginForm #form-login-btnSubmit", &fakeEl{covered: o.overlaySubmit})
	f.marker = f.add("#post-login-marker", &fakeEl{visible: o.loggedIn})
	f.reward = f.add(".reward-star", &fakeEl{visible: !o.noReward})
	f.dropdown = f.add("select[name='selserver']", &fakeEl{options: o.servers})
	if o.selectFails {
		f.dropdown.selectErr = errors.New("element is not a select")
	}
	if o.optionsFail {
		f.dropdown.optionsErr = errors.New("execution context was destroyed")
	}
	f.serverSubmit = f.add("#form-server-btnSubmit", &fakeEl{covered: o.overlaySubmit})
	f.notice = f.add(".alert-success", &fakeEl{text: "Reward claimed successfully"})

	f.trigger.onClick = func() {
		if o.modalNeverShows {
			return
		}
		for _, el := range []*fakeEl{f.modal, f.email, f.password, f.loginSubmit} {
			el.visible = true
		}
	}
	f.loginSubmit.onClick = func() {
		for _, el := range []*fakeEl{f.modal, f.email, f.password, f.loginSubmit, f.trigger} {
			el.visible = false
		}
		f.marker.visible = true
	}
	f.reward.onClick = func() {
		f.dropdown.visible = true
		f.serverSubmit.visible = true
	}
	f.serverSubmit.onClick = func() {
		if f.dropdown.value == "" {
			return
		}
		if !o.noAlert {
			d := Dialog{Type: "alert", Message: "Reward claimed", Accepted: true}
			if o.rejectAlert {
				d.Accepted, d.Err = false, errors.New("dialog vanished")
			}
			f.dialogs <- d
		}
		f.reward.visible = false
		f.notice.visible = true
	}
	return f
}

// testConfig returns a valid config with timeouts short enough for the fake.
func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Email = "ninja@example.com"
	cfg.Password = "hunter2"
	cfg.Server = "Server 39 - SSINJAA"
	cfg.URL = "http://fixture.test/event/?event=daily"
	cfg.ScreenshotDir = t.TempDir()
	cfg.Timeouts = Timeouts{Alert: 50 * time.Millisecond}
	return cfg
}

// launcherFor returns a Launcher handing out p and counting launches.
func launcherFor(p Page, calls *int) Launcher {
	return func(ctx context.Context, cfg Config) (Page, error) {
		*calls++
		return p, nil
	}
}
