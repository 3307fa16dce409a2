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
	"fmt"
	"net/mail"
	"strings"
)

// ConfigError is a configuration problem found before any browser work.
type ConfigError struct {
	Msg  string
	Hint string
}

func (e *ConfigError) Error() string {
	if e.Hint == "" {
		return e.Msg
	}
	return e.Msg + " (" + e.Hint + ")"
}

// placeholders are the example values shipped in config.env.example.
var placeholders = map[string]string{
	EnvEmail:    "your_email@example.com",
	EnvPassword: "your_password",
	EnvServer:   "server xx - your_name",
}

// isValidEmail checks if the string is a valid email address.
func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isPlaceholder(key, value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), placeholders[key])
}

// Validate rejects missing or placeholder credentials and unknown drivers.
func (c Config) Validate() error {
	var missing []string
	for _, kv := range [][2]string{{EnvEmail, c.Email}, {EnvPassword, c.Password}, {EnvServer, c.Server}} {
		if strings.TrimSpace(kv[1]) == "" {
			missing = append(missing, kv[0])
		}
	}
	if len(missing) > 0 {
		return &ConfigError{
			Msg:  fmt.Sprintf("%s must be set in %s", strings.Join(missing, ", "), DefaultEnvFile),
			Hint: "copy config.env.example to config.env and fill in your account",
		}
	}
	for _, kv := range [][2]string{{EnvEmail, c.Email}, {EnvPassword, c.Password}, {EnvServer, c.Server}} {
		if isPlaceholder(kv[0], kv[1]) {
			return &ConfigError{
				Msg:  fmt.Sprintf("%s still has the example value", kv[0]),
				Hint: fmt.Sprintf("replace %s in %s with your real value", kv[0], DefaultEnvFile),
			}
		}
	}
	switch c.Driver {
	case "", DriverChromedp, DriverPlaywright:
	default:
		return &ConfigError{Msg: fmt.Sprintf("unknown driver %q", c.Driver), Hint: "use chromedp or playwright"}
	}
	if c.URL == "" {
		return &ConfigError{Msg: "target URL is empty"}
	}
	return nil
}

// Warnings lists suspicious but allowed values.
func (c Config) Warnings() []string {
	var w []string
	if c.Email != "" && !isValidEmail(c.Email) {
		w = append(w, fmt.Sprintf("EMAIL %q does not look like an email address", c.Email))
	}
	if _, name := ParseServerChoice(c.Server); c.Server != "" && name == "" {
		w = append(w, fmt.Sprintf("SERVER %q is not in the \"Server <n> - <name>\" form; matching on the whole string", c.Server))
	}
	return w
}
