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
	"time"

	"github.com/playwright-community/playwright-go"
)

// playwrightBrowser drives Chromium through the playwright driver.
type playwrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	dialogs chan Dialog
}

// NewPlaywrightBrowser starts the playwright driver and a Chromium page.
// The driver must already be installed (see InstallPlaywright).
func NewPlaywrightBrowser(opts BrowserOptions) (Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}
	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: opts.WindowWidth, Height: opts.WindowHeight},
	}
	if opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(opts.UserAgent)
	}
	bctx, err := browser.NewContext(ctxOpts)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	b := &playwrightBrowser{
		pw:      pw,
		browser: browser,
		page:    page,
		dialogs: make(chan Dialog, 8),
	}
	// Playwright dismisses dialogs nobody handles, so every one is accepted here.
	page.OnDialog(func(d playwright.Dialog) {
		err := d.Accept()
		offerDialog(b.dialogs, Dialog{
			Type:     d.Type(),
			Message:  d.Message(),
			Accepted: err == nil,
			Err:      err,
		})
	})
	return b, nil
}

// InstallPlaywright downloads the driver and Chromium.
func InstallPlaywright() error {
	return playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
	})
}

// timeoutMS converts ctx's remaining time into a playwright timeout.
func timeoutMS(ctx context.Context) *float64 {
	d, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	left := time.Until(d)
	if left < time.Millisecond {
		left = time.Millisecond
	}
	return playwright.Float(float64(left.Milliseconds()))
}

func (b *playwrightBrowser) Navigate(ctx context.Context, url string) error {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   timeoutMS(ctx),
	})
	return err
}

func (b *playwrightBrowser) Eval(ctx context.Context, script string, res any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v, err := b.page.Evaluate("() => " + script)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("eval result: %w", err)
	}
	return json.Unmarshal(buf, res)
}

func (b *playwrightBrowser) Click(ctx context.Context, sel string) error {
	return b.page.Locator(sel).Click(playwright.LocatorClickOptions{
		Timeout: timeoutMS(ctx),
	})
}

func (b *playwrightBrowser) Fill(ctx context.Context, sel, text string) error {
	return b.page.Locator(sel).Fill(text, playwright.LocatorFillOptions{
		Timeout: timeoutMS(ctx),
	})
}

func (b *playwrightBrowser) Screenshot(ctx context.Context) ([]byte, error) {
	return b.page.Screenshot(playwright.PageScreenshotOptions{
		Timeout: timeoutMS(ctx),
	})
}

func (b *playwrightBrowser) Dialogs() <-chan Dialog {
	return b.dialogs
}

func (b *playwrightBrowser) Close() error {
	err := b.browser.Close()
	if stopErr := b.pw.Stop(); err == nil {
		err = stopErr
	}
	return err
}
