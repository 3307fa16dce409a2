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
	"log"
	"time"
)

// Logger interface allows passing *testing.T or a log.Printf wrapper.
type Logger interface {
	Logf(format string, args ...any)
}

type stdLogger struct {
	prefix string
}

func (l stdLogger) Logf(format string, args ...any) {
	log.Printf(l.prefix+format, args...)
}

// teardownTimeout bounds the final screenshot and browser close.
const teardownTimeout = 15 * time.Second

// Session owns one browser page for the length of a run.
type Session struct {
	cfg    Config
	page   Page
	shots  Screenshotter
	log    Logger
	report *Report
	state  State
	closed bool
}

// NewSession wraps page. A nil logger logs through the standard logger with
// the run id as prefix.
func NewSession(cfg Config, page Page, l Logger) *Session {
	r := NewReport()
	if l == nil {
		l = stdLogger{prefix: "[" + r.ShortID() + "] "}
	}
	return &Session{
		cfg:    cfg,
		page:   page,
		shots:  Screenshotter{Dir: cfg.ScreenshotDir},
		log:    l,
		report: r,
		state:  NotStarted,
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) Report() *Report { return s.report }

func (s *Session) logf(format string, args ...any) { s.log.Logf(format, args...) }

func (s *Session) transition(to State) error {
	if !CanTransition(s.state, to) {
		return fmt.Errorf("invalid transition %s -> %s", s.state, to)
	}
	s.report.transition(s.state, to)
	s.state = to
	return nil
}

// pause waits Timeouts.Pause or until ctx is done.
func (s *Session) pause(ctx context.Context) {
	sleep(ctx, s.cfg.Timeouts.Pause)
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// capture saves a diagnostic screenshot. Failures are logged only.
func (s *Session) capture(ctx context.Context, name string) {
	path, err := s.shots.Capture(ctx, s.page, name)
	if err != nil {
		s.logf("Screenshot %s: %v", name, err)
		return
	}
	s.logf("Saved screenshot to %s", path)
	s.report.screenshot(name, path)
}

// click runs the default click plan and records the method that worked.
func (s *Session) click(ctx context.Context, el Element) error {
	method, err := Click(ctx, s.page, el, DefaultClickPlan, s.log)
	if err != nil {
		return err
	}
	s.logf("Click %s: ok with %s", el.Target, method)
	s.report.Event("click %s: %s", el.Target, method)
	return nil
}

// Login opens the event page and signs in unless the page shows no login
// button, in which case the account is taken to be signed in already.
func (s *Session) Login(ctx context.Context) (err error) {
	done := s.report.Step("login")
	defer func() { done(err) }()

	s.logf("Login: opening %s", s.cfg.URL)
	if err := s.navigate(ctx); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	if _, err := FindElement(ctx, s.page, TargetBody, bodyLocators, s.cfg.Timeouts.PageLoad); err != nil {
		return fmt.Errorf("page did not load: %w", err)
	}
	s.pause(ctx)

	trigger, err := FindElement(ctx, s.page, TargetLoginTrigger, loginTriggerLocators, s.cfg.Timeouts.LoginTrigger)
	if errors.Is(err, ErrElementNotFound) {
		s.logf("Login: login button not found, assuming already logged in")
		s.capture(ctx, ShotLoginButtonNotFound)
		s.report.Event("login: already logged in")
		return s.transition(LoggedIn)
	}
	if err != nil {
		return err
	}
	s.logf("Login: login button found with %s", trigger.Locator)
	if err := s.click(ctx, trigger); err != nil {
		return err
	}
	s.pause(ctx)

	s.logf("Login: waiting for login form")
	if _, err := FindElement(ctx, s.page, TargetLoginModal, loginModalLocators, s.cfg.Timeouts.LoginModal); err != nil {
		s.capture(ctx, ShotLoginModalNotFound)
		return fmt.Errorf("login form did not appear: %w", err)
	}
	if err := s.fillLoginForm(ctx); err != nil {
		s.capture(ctx, ShotLoginFormError)
		return err
	}
	s.waitLoginClosed(ctx)
	s.logf("Login: done")
	return s.transition(LoggedIn)
}

// navigate opens the event page, giving up after Timeouts.PageLoad. Drivers
// wait for the load event, which a stalled page never fires.
func (s *Session) navigate(ctx context.Context) error {
	if d := s.cfg.Timeouts.PageLoad; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	return s.page.Navigate(ctx, s.cfg.URL)
}

func (s *Session) fillLoginForm(ctx context.Context) error {
	email, err := FindElement(ctx, s.page, TargetEmail, emailLocators, s.cfg.Timeouts.FormField)
	if err != nil {
		return fmt.Errorf("email field: %w", err)
	}
	password, err := FindElement(ctx, s.page, TargetPassword, passwordLocators, s.cfg.Timeouts.FormField)
	if err != nil {
		return fmt.Errorf("password field: %w", err)
	}

	for _, f := range []struct {
		el    Element
		value string
	}{{email, s.cfg.Email}, {password, s.cfg.Password}} {
		s.logf("Login: filling %s", f.el.Target)
		if err := s.page.ScrollIntoView(ctx, f.el); err != nil {
			s.logf("Login: scroll %s: %v", f.el.Target, err)
		}
		s.pause(ctx)
		if err := s.page.Fill(ctx, f.el, f.value); err != nil {
			return fmt.Errorf("fill %s: %w", f.el.Target, err)
		}
		s.pause(ctx)
	}

	submit, err := FindElement(ctx, s.page, TargetLoginSubmit, loginSubmitLocators, s.cfg.Timeouts.FormField)
	if err != nil {
		return fmt.Errorf("submit button: %w", err)
	}
	s.logf("Login: submit button found with %s", submit.Locator)
	s.scrollAndHighlight(ctx, submit)
	return s.click(ctx, submit)
}

func (s *Session) scrollAndHighlight(ctx context.Context, el Element) {
	if err := s.page.ScrollIntoView(ctx, el); err != nil {
		s.logf("Scroll %s: %v", el.Target, err)
	}
	if err := s.page.Highlight(ctx, el); err != nil {
		s.logf("Highlight %s: %v", el.Target, err)
	}
	s.pause(ctx)
}

// waitLoginClosed waits up to LoginSettle for the login form to go away.
// A form that stays open is only logged; the claim step decides the run.
func (s *Session) waitLoginClosed(ctx context.Context) {
	deadline := time.Now().Add(s.cfg.Timeouts.LoginSettle)
	for {
		if _, err := FindElement(ctx, s.page, TargetLoginModal, loginModalLocators, 0); err != nil {
			s.logf("Login: form closed")
			return
		}
		if !time.Now().Before(deadline) || ctx.Err() != nil {
			s.logf("Login: form still open after %v", s.cfg.Timeouts.LoginSettle)
			return
		}
		sleep(ctx, pollInterval)
	}
}

// ClaimDailyReward claims today's reward. It returns NoClaimableReward with
// a nil error when nothing is claimable.
func (s *Session) ClaimDailyReward(ctx context.Context) (outcome ClaimOutcome, err error) {
	done := s.report.Step("claim")
	defer func() { done(err) }()

	if s.state != LoggedIn {
		return ClaimFailed, fmt.Errorf("claim needs state %s, session is %s", LoggedIn, s.state)
	}

	s.logf("Claim: looking for a claimable reward")
	reward, err := FindElement(ctx, s.page, TargetReward, rewardLocators, s.cfg.Timeouts.Reward)
	if errors.Is(err, ErrElementNotFound) {
		s.logf("Claim: no claimable reward, already claimed today or nothing available")
		if err := s.transition(NoRewardAvailable); err != nil {
			return ClaimFailed, err
		}
		return NoClaimableReward, nil
	}
	if err != nil {
		return ClaimFailed, err
	}
	s.logf("Claim: reward found with %s", reward.Locator)
	if err := s.page.ScrollIntoView(ctx, reward); err != nil {
		s.logf("Claim: scroll: %v", err)
	}
	s.pause(ctx)
	if err := s.click(ctx, reward); err != nil {
		return ClaimFailed, err
	}
	s.pause(ctx)

	if err := s.selectServer(ctx); err != nil {
		return ClaimFailed, err
	}
	if err := s.submitServerForm(ctx); err != nil {
		return ClaimFailed, err
	}
	s.pause(ctx)
	if err := s.handleAlert(ctx); err != nil {
		return ClaimFailed, err
	}
	s.pause(ctx)
	s.checkSuccessNotification(ctx)

	if err := s.transition(RewardClaimed); err != nil {
		return ClaimFailed, err
	}
	s.logf("Claim: done")
	return ClaimSucceeded, nil
}

func (s *Session) submitServerForm(ctx context.Context) error {
	s.logf("Submit: looking for the server form button")
	submit, err := FindElement(ctx, s.page, TargetServerSubmit, serverSubmitLocators, s.cfg.Timeouts.SubmitButton)
	if errors.Is(err, ErrElementNotFound) {
		s.capture(ctx, ShotSubmitButtonNotFound)
		return err
	}
	if err != nil {
		s.capture(ctx, ShotSubmitServerError)
		return err
	}
	s.logf("Submit: button found with %s", submit.Locator)
	s.scrollAndHighlight(ctx, submit)
	s.drainDialogs()
	if err := s.click(ctx, submit); err != nil {
		s.capture(ctx, ShotSubmitAllFailed)
		return err
	}
	return nil
}

// drainDialogs drops dialogs raised before the server form was submitted so
// the alert step only sees the confirmation.
func (s *Session) drainDialogs() {
	for {
		select {
		case d := <-s.page.Dialogs():
			s.logf("Dialog before submit (%s): %q", d.Type, d.Message)
		default:
			return
		}
	}
}

// handleAlert waits for the confirmation dialog. Drivers accept dialogs as
// they open; a missing dialog counts as success.
func (s *Session) handleAlert(ctx context.Context) error {
	s.logf("Alert: waiting up to %v", s.cfg.Timeouts.Alert)
	d, err := WaitDialog(ctx, s.page.Dialogs(), s.cfg.Timeouts.Alert)
	if errors.Is(err, ErrNoDialog) {
		s.logf("Alert: none appeared")
		s.report.Event("alert: none")
		return nil
	}
	if err != nil {
		return err
	}
	s.logf("Alert text: %q", d.Message)
	if !d.Accepted {
		return fmt.Errorf("accept %s dialog: %w", d.Type, d.Err)
	}
	s.logf("Alert: accepted")
	s.report.Event("alert accepted: %s", d.Message)
	return nil
}

// checkSuccessNotification looks for a success notice. The claim was already
// submitted, so the result is informational.
func (s *Session) checkSuccessNotification(ctx context.Context) {
	el, err := FindElement(ctx, s.page, TargetNotification, notificationLocators, s.cfg.Timeouts.Notification)
	if err != nil {
		s.logf("Notification: none detected, the claim was submitted anyway")
		return
	}
	text, err := s.page.Text(ctx, el)
	if err != nil {
		s.logf("Notification: found but unreadable: %v", err)
		return
	}
	s.logf("Notification: %q", text)
	s.report.Notification = text
	s.report.Event("notification found")
}

// Close captures the closing screenshot (when shot is set) and closes the
// browser. Only the first call does anything.
func (s *Session) Close(ctx context.Context, shot string) error {
	if s.closed {
		return nil
	}
	s.closed = true
	tctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), teardownTimeout)
	defer cancel()
	if shot != "" {
		s.capture(tctx, shot)
	}
	err := s.page.Close()
	if err != nil {
		s.logf("Close: %v", err)
	} else {
		s.logf("Browser closed")
	}
	if terr := s.transition(Closed); terr != nil {
		s.logf("Close: %v", terr)
	}
	return err
}
