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

import "testing"

func TestParseServerChoice(t *testing.T) {
	tests := []struct {
		choice string
		number string
		name   string
	}{
		{"Server 39 - SSINJAA", "39", "SSINJAA"},
		{"  Server 7 -  Leaf  ", "7", "Leaf"},
		{"Kage - SSINJAA", "", "SSINJAA"},
		{"SSINJAA", "", ""},
		{"", "", ""},
		{"Server 39 - SSINJAA - extra", "39", "SSINJAA"},
	}
	for _, tt := range tests {
		number, name := ParseServerChoice(tt.choice)
		if number != tt.number || name != tt.name {
			t.Errorf("ParseServerChoice(%q) = (%q, %q), want (%q, %q)", tt.choice, number, name, tt.number, tt.name)
		}
	}
}

func TestMatchesServer(t *testing.T) {
	tests := []struct {
		name   string
		choice string
		option string
		want   bool
	}{
		{"Exact", "Server 39 - SSINJAA", "Server 39 - SSINJAA", true},
		{"Different layout", "Server 39 - SSINJAA", "S39 SSINJAA (Lv 80)", true},
		{"Wrong name", "Server 39 - SSINJAA", "Server 39 - KONOHA", false},
		{"Wrong number", "Server 39 - SSINJAA", "Server 38 - SSINJAA", false},
		{"Name only", "Kage - SSINJAA", "Server 12 - SSINJAA", true},
		{"Whole string", "SSINJAA", "Server 39 - SSINJAA", true},
		{"Whole string miss", "SSINJAA", "Server 39 - KONOHA", false},
		{"Placeholder option", "Server 39 - SSINJAA", "-- Select Server --", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesServer(tt.choice, tt.option); got != tt.want {
				t.Errorf("MatchesServer(%q, %q) = %v, want %v", tt.choice, tt.option, got, tt.want)
			}
		})
	}
}

func TestFindServerOption(t *testing.T) {
	opts := []Option{
		{Index: 0, Value: "", Text: "-- Select Server --"},
		{Index: 1, Value: "38", Text: "Server 38 - SSINJAA"},
		{Index: 2, Value: "39", Text: "Server 39 - SSINJAA"},
		{Index: 3, Value: "139", Text: "Server 139 - SSINJAA"},
	}
	got, ok := FindServerOption("Server 39 - SSINJAA", opts)
	if !ok || got.Value != "39" {
		t.Errorf("FindServerOption() = %+v, %v, want value 39", got, ok)
	}
	if _, ok := FindServerOption("Server 40 - SSINJAA", opts); ok {
		t.Error("FindServerOption() matched an unlisted server")
	}
}
