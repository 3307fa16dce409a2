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

// Command screenshots runs the bot against every fixture scenario and keeps
// the screenshots each run leaves behind, one directory per scenario.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ttbt-io/dailyreward/bot"
	"github.com/ttbt-io/dailyreward/tools/fixture"
)

var (
	chromeURL   = flag.String("chrome-url", "", "The url of the remote debugging port")
	outputDir   = flag.String("output-dir", "/screenshots", "Directory to save screenshots")
	fixtureHost = flag.String("fixture-host", "localhost", "Host name the browser uses to reach the fixture page")
	driver      = flag.String("driver", bot.DriverChromedp, "Browser driver: chromedp or playwright")
	only        = flag.String("scenario", "", "Run only this scenario")
)

func main() {
	flag.Parse()

	if *chromeURL == "" && *driver == bot.DriverChromedp {
		log.Fatal("--chrome-url must be set")
	}

	// Ensure output dir exists
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("Starting screenshot generation...")
	failed := 0
	for _, sc := range fixture.Scenarios {
		if *only != "" && sc.Name != *only {
			continue
		}
		if err := runScenario(ctx, sc); err != nil {
			log.Printf("Scenario %s: %v", sc.Name, err)
			failed++
		}
	}
	if failed > 0 {
		log.Fatalf("%d scenarios could not be run", failed)
	}
	log.Println("Screenshots generated successfully.")
}

// runScenario serves sc, runs the bot once against it and writes the run's
// screenshots and transcript under outputDir/sc.Name.
func runScenario(ctx context.Context, sc fixture.Scenario) error {
	opts := sc.Options
	opts.Host = *fixtureHost
	s, err := fixture.Start(opts)
	if err != nil {
		return err
	}
	defer s.Close()
	log.Printf("Scenario %s: fixture at %s", sc.Name, s.URL)

	dir := filepath.Join(*outputDir, sc.Name)
	cfg := bot.DefaultConfig()
	cfg.Email = "ninja@example.com"
	cfg.Password = "screenshots"
	cfg.Server = "Server 39 - SSINJAA"
	cfg.URL = s.URL
	cfg.Driver = *driver
	cfg.ChromeURL = *chromeURL
	cfg.Headless = true
	cfg.ScreenshotDir = dir
	cfg.Timeouts.LoginTrigger = 2 * time.Second
	cfg.Timeouts.LoginModal = 3 * time.Second
	cfg.Timeouts.Reward = 3 * time.Second
	cfg.Timeouts.Alert = 3 * time.Second

	res, err := bot.Run(ctx, cfg, nil, nil)
	if err != nil {
		return err
	}
	log.Printf("Scenario %s: success=%v outcome=%s state=%s err=%v", sc.Name, res.Success, res.Outcome, res.State, res.Err)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	transcript := filepath.Join(dir, "transcript.txt")
	if err := os.WriteFile(transcript, []byte(res.Report.Transcript()+"\n"), 0644); err != nil {
		return err
	}
	log.Printf("Saved transcript to %s", transcript)
	return nil
}
