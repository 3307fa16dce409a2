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

package e2e

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/ttbt-io/dailyreward/bot"
	"github.com/ttbt-io/dailyreward/tools/fixture"
)

var (
	withChromeDP   = flag.String("with-chromedp", "", "The url of the remote debugging port")
	fixtureHost    = flag.String("fixture-host", "localhost", "Host name the browser uses to reach the fixture page")
	withPlaywright = flag.Bool("with-playwright", false, "Also run the scenarios with the playwright driver")
)

const (
	testEmail    = "ninja@example.com"
	testPassword = "hunter2"
	testServer   = "Server 39 - SSINJAA"
)

func TestMain(m *testing.M) {
	flag.Parse()
	exitCode := m.Run()
	os.Exit(exitCode)
}

func startFixture(t *testing.T, opts fixture.Options) *fixture.Server {
	t.Helper()
	opts.Host = *fixtureHost
	s, err := fixture.Start(opts)
	if err != nil {
		t.Fatalf("Failed to start fixture: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// e2eConfig returns a config pointed at url with timeouts sized for a local
// page.
func e2eConfig(t *testing.T, url string) bot.Config {
	cfg := bot.DefaultConfig()
	cfg.Email = testEmail
	cfg.Password = testPassword
	cfg.Server = testServer
	cfg.URL = url
	cfg.ChromeURL = *withChromeDP
	cfg.Headless = true
	cfg.ScreenshotDir = t.TempDir()
	cfg.Timeouts = bot.Timeouts{
		PageLoad:       10 * time.Second,
		LoginTrigger:   2 * time.Second,
		LoginModal:     3 * time.Second,
		FormField:      3 * time.Second,
		LoginSettle:    3 * time.Second,
		Reward:         3 * time.Second,
		ServerDropdown: 3 * time.Second,
		SubmitButton:   3 * time.Second,
		Alert:          3 * time.Second,
		Notification:   2 * time.Second,
		Pause:          50 * time.Millisecond,
	}
	return cfg
}

func runBot(t *testing.T, cfg bot.Config) *bot.Result {
	t.Helper()
	ctx, cancel := context.WithTimeout(t.Context(), 90*time.Second)
	defer cancel()

	res, err := bot.Run(ctx, cfg, nil, t)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	t.Logf("Run %s finished in state %s, outcome %s, err %v", res.Report.ShortID(), res.State, res.Outcome, res.Err)
	return res
}

func assertScreenshot(t *testing.T, cfg bot.Config, name string) {
	t.Helper()
	info, err := os.Stat(filepath.Join(cfg.ScreenshotDir, name))
	if err != nil {
		t.Errorf("Screenshot %s: %v", name, err)
		return
	}
	if info.Size() == 0 {
		t.Errorf("Screenshot %s is empty", name)
	}
}

// TestFixturePage loads the fixture directly and fails on any script error,
// so scenario failures point at the bot rather than the page.
func TestFixturePage(t *testing.T) {
	if *withChromeDP == "" {
		t.Skip("--with-chromedp not set")
	}
	s := startFixture(t, fixture.Options{})

	ctx, cancel := chromedp.NewRemoteAllocator(t.Context(), *withChromeDP)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx,
		chromedp.WithErrorf(log.Printf),
		chromedp.WithLogf(log.Printf),
	)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedp.ListenTarget(ctx, func(ev interface{}) {
		switch ev := ev.(type) {
		case *runtime.EventConsoleAPICalled:
			if ev.Type == runtime.APITypeError {
				args := make([]string, len(ev.Args))
				for i, arg := range ev.Args {
					args[i] = string(arg.Value)
				}
				t.Logf("JS CONSOLE ERROR: %s", strings.Join(args, " "))
				t.Fail()
				cancel()
			}
		case *runtime.EventExceptionThrown:
			t.Logf("JS EXCEPTION: %s", ev.ExceptionDetails.Text)
			t.Fail()
			cancel()
		}
	})

	var options int
	if err := chromedp.Run(ctx,
		chromedp.Navigate(s.URL),
		chromedp.WaitVisible(`#login-link`, chromedp.ByQuery),
		chromedp.Click(`#login-link`, chromedp.ByQuery),
		chromedp.WaitVisible(`#LoginForm`, chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelectorAll("select[name='selserver'] option").length`, &options),
	); err != nil {
		t.Fatalf("Fixture page: %v", err)
	}
	if want := len(fixture.DefaultServers) + 1; options != want {
		t.Errorf("Server dropdown has %d options, want %d", options, want)
	}
}
