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
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadEnv(t *testing.T) {
	path := writeEnv(t, `# account
EMAIL=ninja@example.com
PASSWORD="p@ss word"
SERVER=Server 39 - SSINJAA
`)

	tests := []struct {
		name  string
		file  string
		env   map[string]string
		email string
		pass  string
		srv   string
	}{
		{
			name:  "File only",
			file:  path,
			email: "ninja@example.com",
			pass:  "p@ss word",
			srv:   "Server 39 - SSINJAA",
		},
		{
			name:  "Process env wins",
			file:  path,
			env:   map[string]string{EnvServer: "Server 38 - KONOHA"},
			email: "ninja@example.com",
			pass:  "p@ss word",
			srv:   "Server 38 - KONOHA",
		},
		{
			name:  "Blank env value is ignored",
			file:  path,
			env:   map[string]string{EnvEmail: "   "},
			email: "ninja@example.com",
			pass:  "p@ss word",
			srv:   "Server 39 - SSINJAA",
		},
		{
			name:  "Missing file",
			file:  filepath.Join(t.TempDir(), "nope.env"),
			env:   map[string]string{EnvEmail: " a@b.c ", EnvPassword: "x", EnvServer: "Server 1 - A"},
			email: "a@b.c",
			pass:  "x",
			srv:   "Server 1 - A",
		},
		{
			name: "No file and no env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			if err := c.LoadEnv(tt.file, lookupMap(tt.env)); err != nil {
				t.Fatalf("LoadEnv: %v", err)
			}
			if c.Email != tt.email || c.Password != tt.pass || c.Server != tt.srv {
				t.Errorf("got (%q, %q, %q), want (%q, %q, %q)", c.Email, c.Password, c.Server, tt.email, tt.pass, tt.srv)
			}
		})
	}
}

func TestLoadEnvUnreadable(t *testing.T) {
	c := DefaultConfig()
	// A directory exists but cannot be read as an env file.
	if err := c.LoadEnv(t.TempDir(), lookupMap(nil)); err == nil {
		t.Fatal("LoadEnv on a directory succeeded, want error")
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.URL != DefaultURL {
		t.Errorf("URL = %q", c.URL)
	}
	if c.Driver != DriverChromedp {
		t.Errorf("Driver = %q", c.Driver)
	}
	o := c.BrowserOptions()
	if o.WindowWidth != 1920 || o.WindowHeight != 1080 || o.UserAgent == "" {
		t.Errorf("BrowserOptions() = %+v", o)
	}
}
