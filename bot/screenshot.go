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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Screenshotter writes page screenshots into Dir without overwriting.
type Screenshotter struct {
	Dir string
}

// NextPath returns the first free path for name: name, then name_1, name_2…
// A Stat error other than not-exist is returned as is.
func (s Screenshotter) NextPath(name string) (string, error) {
	dir := s.dirOrDot()
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	path := filepath.Join(dir, name)
	for i := 1; ; i++ {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check screenshot path: %w", err)
		}
		path = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
}

// Capture takes a screenshot of p and saves it under name. It returns the
// path written.
func (s Screenshotter) Capture(ctx context.Context, p Page, name string) (string, error) {
	buf, err := p.Screenshot(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if err := os.MkdirAll(s.dirOrDot(), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for screenshot: %w", err)
	}
	path, err := s.NextPath(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return "", fmt.Errorf("failed to write screenshot to file: %w", err)
	}
	return path, nil
}

func (s Screenshotter) dirOrDot() string {
	if s.Dir == "" {
		return "."
	}
	return s.Dir
}
