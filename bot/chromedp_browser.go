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
	"log"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromedpBrowser drives one Chrome tab over CDP.
type chromedpBrowser struct {
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
	dialogs     chan Dialog
}

// NewChromedpBrowser starts Chrome, or attaches to opts.RemoteURL when set,
// and opens a tab. The tab lives until Close, independent of ctx.
func NewChromedpBrowser(ctx context.Context, opts BrowserOptions) (Browser, error) {
	var (
		allocCtx    context.Context
		cancelAlloc context.CancelFunc
	)
	base := context.WithoutCancel(ctx)
	if opts.RemoteURL != "" {
		allocCtx, cancelAlloc = chromedp.NewRemoteAllocator(base, opts.RemoteURL)
	} else {
		allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.NoSandbox,
			chromedp.DisableGPU,
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight),
		)
		if opts.UserAgent != "" {
			allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
		}
		allocCtx, cancelAlloc = chromedp.NewExecAllocator(base, allocOpts...)
	}

	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(log.Printf),
		chromedp.WithLogf(log.Printf),
	)
	b := &chromedpBrowser{
		ctx:         tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
		dialogs:     make(chan Dialog, 8),
	}
	chromedp.ListenTarget(tabCtx, b.onEvent)

	// The first Run starts the browser and binds it to the tab context, so it
	// must not carry ctx's deadline.
	if err := chromedp.Run(tabCtx); err != nil {
		b.Close()
		return nil, err
	}
	if opts.RemoteURL != "" && opts.WindowWidth > 0 && opts.WindowHeight > 0 {
		err := b.run(ctx, chromedp.EmulateViewport(int64(opts.WindowWidth), int64(opts.WindowHeight)))
		if err != nil {
			log.Printf("chromedp: viewport: %v", err)
		}
	}
	return b, nil
}

// onEvent must not block: CDP calls are made from a new goroutine.
func (b *chromedpBrowser) onEvent(ev any) {
	switch ev := ev.(type) {
	case *page.EventJavascriptDialogOpening:
		go func() {
			err := chromedp.Run(b.ctx, page.HandleJavaScriptDialog(true))
			offerDialog(b.dialogs, Dialog{
				Type:     string(ev.Type),
				Message:  ev.Message,
				Accepted: err == nil,
				Err:      err,
			})
		}()
	}
}

// scope derives a context bound to the tab that also honours ctx's deadline
// and cancellation.
func (b *chromedpBrowser) scope(ctx context.Context) (context.Context, context.CancelFunc) {
	c, cancel := context.WithCancel(b.ctx)
	if d, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		c, cancelDeadline = context.WithDeadline(c, d)
		prev := cancel
		cancel = func() { cancelDeadline(); prev() }
	}
	stop := context.AfterFunc(ctx, cancel)
	return c, func() {
		stop()
		cancel()
	}
}

func (b *chromedpBrowser) run(ctx context.Context, actions ...chromedp.Action) error {
	c, cancel := b.scope(ctx)
	defer cancel()
	return chromedp.Run(c, actions...)
}

func (b *chromedpBrowser) Navigate(ctx context.Context, url string) error {
	return b.run(ctx, chromedp.Navigate(url))
}

func (b *chromedpBrowser) Eval(ctx context.Context, script string, res any) error {
	return b.run(ctx, chromedp.Evaluate(script, res))
}

func (b *chromedpBrowser) Click(ctx context.Context, sel string) error {
	return b.run(ctx, chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible))
}

func (b *chromedpBrowser) Fill(ctx context.Context, sel, text string) error {
	return b.run(ctx,
		chromedp.Clear(sel, chromedp.ByQuery),
		chromedp.SendKeys(sel, text, chromedp.ByQuery),
	)
}

func (b *chromedpBrowser) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := b.run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (b *chromedpBrowser) Dialogs() <-chan Dialog {
	return b.dialogs
}

// Close closes the tab (and the browser when it was started here).
func (b *chromedpBrowser) Close() error {
	err := chromedp.Cancel(b.ctx)
	b.cancelTab()
	b.cancelAlloc()
	return err
}
