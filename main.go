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

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/ttbt-io/dailyreward/bot"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

func ok(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

var (
	cfg     = bot.DefaultConfig()
	envFile string
)

// loadConfig overlays config.env and the process environment onto the flags.
func loadConfig() error {
	return cfg.LoadEnv(envFile, os.LookupEnv)
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dailyreward",
		Short:         "Log in to the Ninja Heroes event page and claim today's reward",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := bot.Run(ctx, cfg, nil, nil)
			if err != nil {
				return err
			}
			if res.Success {
				log.Printf("Outcome: %s", res.Outcome)
				ok("Bot finished successfully")
				return nil
			}
			log.Printf("Run failed in state %s: %v", res.State, res.Err)
			fail("Bot failed, check the log for details")
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&envFile, "env-file", bot.DefaultEnvFile, "File with EMAIL, PASSWORD and SERVER")
	f.StringVar(&cfg.URL, "url", cfg.URL, "Event page URL")
	f.StringVar(&cfg.Driver, "driver", cfg.Driver, "Browser driver: chromedp or playwright")
	f.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run the browser without a window")
	f.StringVar(&cfg.ChromeURL, "chrome-url", "", "Remote Chrome DevTools URL, e.g. ws://127.0.0.1:9222 (chromedp only)")
	f.StringVar(&cfg.ScreenshotDir, "screenshot-dir", cfg.ScreenshotDir, "Directory for screenshots")
	f.DurationVar(&cfg.Timeouts.LoginSettle, "login-settle", cfg.Timeouts.LoginSettle, "How long to wait for the login form to close")
	f.DurationVar(&cfg.Timeouts.Alert, "alert-timeout", cfg.Timeouts.Alert, "How long to wait for the confirmation alert")

	root.AddCommand(checkCmd(), installCmd())
	return root
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration without starting a browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			for _, w := range cfg.Warnings() {
				fmt.Println(mutedStyle.Render("warning: " + w))
			}
			number, name := bot.ParseServerChoice(cfg.Server)
			fmt.Printf("email:  %s\nserver: %q (number %q, name %q)\ndriver: %s\nurl:    %s\n", cfg.Email, cfg.Server, number, name, cfg.Driver, cfg.URL)
			ok("Configuration looks good")
			return nil
		},
	}
}

func installCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install-playwright",
		Short: "Download the browsers used by the playwright driver",
		// No credentials needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bot.InstallPlaywright(); err != nil {
				return err
			}
			ok("Playwright browsers installed")
			return nil
		},
	}
}

// main runs the bot once.
func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		var ce *bot.ConfigError
		if errors.As(err, &ce) {
			fail("Configuration error: " + ce.Msg)
			if ce.Hint != "" {
				fmt.Fprintln(os.Stderr, mutedStyle.Render("  "+ce.Hint))
			}
		} else {
			fail(err.Error())
		}
		os.Exit(1)
	}
}
