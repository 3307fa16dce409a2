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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys holding the operator's credentials.
const (
	EnvEmail    = "EMAIL"
	EnvPassword = "PASSWORD"
	EnvServer   = "SERVER"
)

// DefaultEnvFile is read when no other env file is named.
const DefaultEnvFile = "config.env"

// Config is everything one run needs.
type Config struct {
	Email    string
	Password string
	Server   string

	URL           string
	Driver        string
	Headless      bool
	ChromeURL     string
	ScreenshotDir string
	UserAgent     string
	WindowWidth   int
	WindowHeight  int
	Timeouts      Timeouts
}

// DefaultConfig returns a config for the live site with empty credentials.
func DefaultConfig() Config {
	return Config{
		URL:           DefaultURL,
		Driver:        DriverChromedp,
		ScreenshotDir: ".",
		UserAgent:     DefaultUserAgent,
		WindowWidth:   DefaultWindowWidth,
		WindowHeight:  DefaultWindowHeight,
		Timeouts:      DefaultTimeouts(),
	}
}

// BrowserOptions returns the launch options derived from c.
func (c Config) BrowserOptions() BrowserOptions {
	return BrowserOptions{
		Headless:     c.Headless,
		RemoteURL:    c.ChromeURL,
		UserAgent:    c.UserAgent,
		WindowWidth:  c.WindowWidth,
		WindowHeight: c.WindowHeight,
	}
}

// LoadEnv fills the credentials from envFile and the process environment.
// A non-empty environment value wins over the file. A missing file is not an
// error; lookup is usually os.LookupEnv.
func (c *Config) LoadEnv(envFile string, lookup func(string) (string, bool)) error {
	fileVals := map[string]string{}
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVals = vals
		case errors.Is(err, os.ErrNotExist):
		default:
			return fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}
	get := func(key string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(fileVals[key])
	}
	c.Email = get(EnvEmail)
	c.Password = get(EnvPassword)
	c.Server = get(EnvServer)
	return nil
}
