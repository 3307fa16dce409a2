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
	"time"
)

var (
	// ErrClickIntercepted means another element sits on top of the target.
	ErrClickIntercepted = errors.New("click intercepted")
	// ErrNoDialog means no JS dialog appeared within the wait window.
	ErrNoDialog = errors.New("no dialog")
	// ErrUnknownDriver is returned by Launch for an unsupported driver name.
	ErrUnknownDriver = errors.New("unknown browser driver")
)

// Dialog is a JS dialog (alert, confirm, prompt) the browser opened. Drivers
// accept every dialog as soon as it opens; Accepted and Err report how that
// went.
type Dialog struct {
	Type     string
	Message  string
	Accepted bool
	Err      error
}

// Browser is the small set of primitives a driver must provide. Everything
// else is built on Eval in NewPage.
type Browser interface {
	Navigate(ctx context.Context, url string) error
	// Eval evaluates a JS expression and decodes its JSON result into res.
	// res may be nil.
	Eval(ctx context.Context, script string, res any) error
	// Click clicks the element matching the CSS selector through the
	// browser's input pipeline.
	Click(ctx context.Context, sel string) error
	// Fill clears the input matching sel and types text into it.
	Fill(ctx context.Context, sel, text string) error
	Screenshot(ctx context.Context) ([]byte, error)
	Dialogs() <-chan Dialog
	Close() error
}

// BrowserOptions configures a browser launch.
type BrowserOptions struct {
	Headless     bool
	RemoteURL    string
	UserAgent    string
	WindowWidth  int
	WindowHeight int
}

// Launcher starts a browser and returns the page the session drives.
type Launcher func(ctx context.Context, cfg Config) (Page, error)

// Launch is the default Launcher. It picks the driver named in cfg.Driver.
func Launch(ctx context.Context, cfg Config) (Page, error) {
	opts := cfg.BrowserOptions()
	var (
		b   Browser
		err error
	)
	switch cfg.Driver {
	case "", DriverChromedp:
		b, err = NewChromedpBrowser(ctx, opts)
	case DriverPlaywright:
		b, err = NewPlaywrightBrowser(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("launch %s: %w", cfg.Driver, err)
	}
	return NewPage(b), nil
}

// WaitDialog returns the next dialog from ch, or ErrNoDialog when none
// arrives within timeout.
func WaitDialog(ctx context.Context, ch <-chan Dialog, timeout time.Duration) (Dialog, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case d := <-ch:
		return d, nil
	case <-t.C:
		return Dialog{}, ErrNoDialog
	case <-ctx.Done():
		return Dialog{}, ctx.Err()
	}
}

// offerDialog hands d to the reader without ever blocking the driver.
func offerDialog(ch chan Dialog, d Dialog) {
	select {
	case ch <- d:
	default:
	}
}
