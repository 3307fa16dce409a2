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
	"fmt"
)

// Result is the outcome of one Run.
type Result struct {
	Success bool
	Outcome ClaimOutcome
	// Err is the step failure that ended the run, if any.
	Err    error
	State  State
	Report *Report
}

// Run validates cfg, launches a browser with launch, logs in, claims the
// daily reward and always tears the browser down exactly once. The error
// return is reserved for configuration problems, found before any browser
// is started; step failures are reported in Result.
func Run(ctx context.Context, cfg Config, launch Launcher, l Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if launch == nil {
		launch = Launch
	}

	page, err := launch(ctx, cfg)
	if err != nil {
		r := NewReport()
		r.transition(NotStarted, Failed)
		return &Result{Err: fmt.Errorf("driver setup: %w", err), State: Failed, Report: r}, nil
	}

	s := NewSession(cfg, page, l)
	for _, w := range cfg.Warnings() {
		s.logf("Warning: %s", w)
	}
	res := &Result{Report: s.report}
	shot := ShotErrorGeneral
	defer func() {
		s.Close(ctx, shot)
		res.State = s.State()
		s.logf("%s", s.report.Summary())
	}()

	if err := s.Login(ctx); err != nil {
		s.logf("Login failed: %v", err)
		s.fail()
		shot, res.Err = ShotErrorLogin, err
		return res, nil
	}
	s.pause(ctx)

	outcome, err := s.ClaimDailyReward(ctx)
	res.Outcome = outcome
	switch outcome {
	case NoClaimableReward:
		s.logf("No reward to claim today")
		shot, res.Success = ShotNoReward, true
	case ClaimSucceeded:
		s.logf("Daily reward claimed")
		shot, res.Success = ShotSuccess, true
	default:
		s.logf("Claim failed: %v", err)
		s.fail()
		shot, res.Err = ShotErrorClaim, err
	}
	return res, nil
}

func (s *Session) fail() {
	if err := s.transition(Failed); err != nil {
		s.logf("%v", err)
	}
}
