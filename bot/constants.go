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

import "time"

// DefaultURL is the daily event page the bot logs into.
const DefaultURL = "https://kageherostudio.com/event/?event=daily"

// Browser drivers
const (
	DriverChromedp   = "chromedp"
	DriverPlaywright = "playwright"
)

const (
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultWindowWidth  = 1920
	DefaultWindowHeight = 1080
)

// RefAttribute is written onto every element the locator resolves so later
// interactions can address exactly that node with a CSS selector.
const RefAttribute = "data-reward-ref"

// pollInterval is how often a locator list is rescanned while waiting.
const pollInterval = 200 * time.Millisecond

// Screenshot names
const (
	ShotLoginButtonNotFound   = "login_button_not_found.png"
	ShotLoginModalNotFound    = "login_modal_not_found.png"
	ShotLoginFormError        = "login_form_error.png"
	ShotServerDropdownMissing = "server_dropdown_not_found.png"
	ShotServerSelectionFailed = "server_selection_all_failed.png"
	ShotServerSelectionError  = "server_selection_error.png"
	ShotSubmitButtonNotFound  = "submit_button_not_found.png"
	ShotSubmitServerError     = "submit_server_error.png"
	ShotSubmitAllFailed       = "submit_all_methods_failed.png"
	ShotSuccess               = "success.png"
	ShotNoReward              = "no_reward.png"
	ShotErrorClaim            = "error_claim.png"
	ShotErrorLogin            = "error_login.png"
	ShotErrorGeneral          = "error_general.png"
)

// Click method names
const (
	ClickNative  = "native"
	ClickScript  = "script"
	ClickPointer = "pointer"
)

// Server selection method names
const (
	SelectOption = "select-option"
	SelectForce  = "force-value"
)

// Timeouts bounds every wait the session performs against the page.
type Timeouts struct {
	PageLoad       time.Duration
	LoginTrigger   time.Duration
	LoginModal     time.Duration
	FormField      time.Duration
	LoginSettle    time.Duration
	Reward         time.Duration
	ServerDropdown time.Duration
	SubmitButton   time.Duration
	Alert          time.Duration
	Notification   time.Duration
	// Pause is the short settle time after scrolling or typing.
	Pause time.Duration
}

// DefaultTimeouts returns the timeouts used against the live site.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		PageLoad:       15 * time.Second,
		LoginTrigger:   5 * time.Second,
		LoginModal:     10 * time.Second,
		FormField:      10 * time.Second,
		LoginSettle:    8 * time.Second,
		Reward:         5 * time.Second,
		ServerDropdown: 5 * time.Second,
		SubmitButton:   10 * time.Second,
		Alert:          10 * time.Second,
		Notification:   2 * time.Second,
		Pause:          300 * time.Millisecond,
	}
}
