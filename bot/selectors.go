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

// Target names. They double as the ref written onto resolved elements.
const (
	TargetBody           = "body"
	TargetLoginTrigger   = "login-trigger"
	TargetLoginModal     = "login-modal"
	TargetEmail          = "login-email"
	TargetPassword       = "login-password"
	TargetLoginSubmit    = "login-submit"
	TargetReward         = "claimable-reward"
	TargetServerDropdown = "server-dropdown"
	TargetServerSubmit   = "server-submit"
	TargetNotification   = "success-notification"
)

var bodyLocators = Locators("body")

var loginTriggerLocators = Locators(
	"a.btn.btn-login.login-shinobi.loginMethod",
	"a[class='btn btn-login login-shinobi loginMethod']",
	".btn.btn-login.login-shinobi.loginMethod",
	".loginMethod",
	".login-shinobi",
	"a.btn-login.loginMethod",
	"a.login-shinobi",
	"a[href='#'].btn-login",
	"a[href='#'].loginMethod",
	"//a[contains(@class, 'loginMethod') and text()='LOGIN']",
	"//a[contains(@class, 'btn-login') and text()='LOGIN']",
	"//a[contains(@class, 'login-shinobi') and text()='LOGIN']",
	"//a[contains(text(), 'LOGIN') and contains(@class, 'btn')]",
	"//a[@href='#' and contains(text(), 'LOGIN')]",
	"//a[contains(@class, 'btn') and contains(text(), 'LOGIN')]",
	"a[href*='login']",
	"//a[contains(text(), 'Login')]",
	"//button[contains(text(), 'Login')]",
	".login-btn",
	"#login-btn",
	"[data-toggle='modal'][data-target*='login']",
	"//a[@href='#' and contains(@onclick, 'login')]",
)

var loginModalLocators = Locators(
	"#LoginForm",
	".modal.fade.in[role='dialog']",
	".modal[style*='display: block']",
)

var emailLocators = Locators(
	"#LoginForm input[name='email']",
	"#LoginForm input[type='email']",
	"#LoginForm input[placeholder*='email']",
	"#LoginForm input[placeholder*='Email']",
	"#LoginForm #email",
	".modal input[name='email']",
	".modal input[type='email']",
)

var passwordLocators = Locators(
	"#LoginForm input[type='password']",
	".modal input[type='password']",
)

var loginSubmitLocators = Locators(
	"#LoginForm #form-login-btnSubmit",
	"#form-login-btnSubmit",
	"#LoginForm button.btn-submit",
	"#LoginForm button[type='button']",
	".modal #form-login-btnSubmit",
	".modal button.btn-submit",
	".modal button[data-loading-text*='Processing']",
	"//div[@id='LoginForm']//button[@id='form-login-btnSubmit']",
	"//div[@id='LoginForm']//button[contains(@class, 'btn-submit')]",
	"//div[@id='LoginForm']//button[contains(text(), 'SUBMIT')]",
)

var rewardLocators = Locators(
	".reward-star",
	".fa-star",
	"//i[contains(@class, 'fa-star')]/..",
	"//div[contains(@class, 'reward-star')]",
	"[data-period='30'][data-id*='Day-']",
	"//div[contains(@class, 'reward-content') and contains(@class, 'dailyClaim')]//div[contains(@class, 'reward-star')]",
	".reward-content.dailyClaim .reward-star",
	"//div[@onclick and contains(@class, 'reward')]",
	"//div[contains(@class, 'reward-star') and not(contains(@style, 'display: none'))]",
)

var serverDropdownLocators = Locators(
	"select[name='selserver']",
	"select.form-control[name='selserver']",
	"select[data-parsley-required-message*='Must be chosen']",
)

var serverSubmitLocators = Locators(
	"#form-server-btnSubmit",
	"button#form-server-btnSubmit",
	"button[data-loading-text*='Processing']",
	".btn.btn-submit",
	"button.btn-submit",
	"//button[@id='form-server-btnSubmit']",
	"//button[contains(@class, 'btn-submit') and text()='SUBMIT']",
	"//button[contains(@data-loading-text, 'Processing')]",
)

var notificationLocators = Locators(
	".alert-success",
	".notification-success",
	".success-message",
	".toast-success",
	"//div[contains(@class, 'alert') and contains(@class, 'success')]",
	"//div[contains(text(), 'success') or contains(text(), 'Success')]",
	"//div[contains(text(), 'berhasil') or contains(text(), 'Berhasil')]",
	"//div[contains(text(), 'claimed') or contains(text(), 'Claimed')]",
)
