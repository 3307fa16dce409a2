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
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const LatencyBuckets = 61
const LatencyBucketSize = 500 * time.Millisecond

// Histogram buckets step durations. The last bucket collects everything
// slower than the rest.
type Histogram struct {
	Buckets [LatencyBuckets]uint64
	Count   uint64
	Sum     float64 // milliseconds
}

func (h *Histogram) Add(d time.Duration) {
	idx := int(d / LatencyBucketSize)
	if idx >= LatencyBuckets {
		idx = LatencyBuckets - 1
	}
	if idx < 0 {
		idx = 0
	}
	h.Buckets[idx]++
	h.Count++
	h.Sum += float64(d.Milliseconds())
}

// Mean returns the average duration added so far.
func (h *Histogram) Mean() time.Duration {
	if h.Count == 0 {
		return 0
	}
	return time.Duration(h.Sum/float64(h.Count)) * time.Millisecond
}

// StepRecord is one timed step of a run.
type StepRecord struct {
	Name     string
	Duration time.Duration
	Err      error
}

// Transition is one state change.
type Transition struct {
	From State
	To   State
}

// Report is what a run leaves behind besides screenshots.
type Report struct {
	RunID        string
	Started      time.Time
	Transitions  []Transition
	Steps        []StepRecord
	Events       []string
	Screenshots  map[string][]string // purpose name -> paths written
	Notification string
	Latency      Histogram
}

// NewReport starts a report with a fresh run id.
func NewReport() *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Started:     time.Now(),
		Screenshots: map[string][]string{},
	}
}

// ShortID is the run id prefix used in log lines.
func (r *Report) ShortID() string {
	if len(r.RunID) < 8 {
		return r.RunID
	}
	return r.RunID[:8]
}

// Event appends a line to the transcript.
func (r *Report) Event(format string, args ...any) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

func (r *Report) transition(from, to State) {
	r.Transitions = append(r.Transitions, Transition{From: from, To: to})
	r.Event("state %s -> %s", from, to)
}

func (r *Report) screenshot(name, path string) {
	r.Screenshots[name] = append(r.Screenshots[name], path)
	r.Event("screenshot %s", name)
}

// Step starts timing a step; call the returned func with the step's error.
func (r *Report) Step(name string) func(error) {
	start := time.Now()
	return func(err error) {
		d := time.Since(start)
		r.Steps = append(r.Steps, StepRecord{Name: name, Duration: d, Err: err})
		r.Latency.Add(d)
	}
}

// Transcript is the ordered event list, one per line. It has no timings so
// it can be compared across runs.
func (r *Report) Transcript() string {
	return strings.Join(r.Events, "\n")
}

// Summary renders step timings for the log.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d steps, mean %v", r.ShortID(), len(r.Steps), r.Latency.Mean())
	for _, st := range r.Steps {
		status := "ok"
		if st.Err != nil {
			status = st.Err.Error()
		}
		fmt.Fprintf(&b, "\n  %-8s %8v  %s", st.Name, st.Duration.Round(time.Millisecond), status)
	}
	if len(r.Screenshots) > 0 {
		names := make([]string, 0, len(r.Screenshots))
		for n := range r.Screenshots {
			names = append(names, n)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "\n  screenshots: %s", strings.Join(names, ", "))
	}
	return b.String()
}
