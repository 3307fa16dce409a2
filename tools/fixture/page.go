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

package fixture

import "html/template"

var pageTmpl = template.Must(template.New("event").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Ninja Heroes - Daily Reward</title>
<style>
* { transition-duration: 0s !important; animation-duration: 0s !important; }
body { font-family: sans-serif; margin: 0; padding: 20px; background: #1d1d2b; color: #eee; }
.btn { display: inline-block; padding: 8px 16px; border: 0; border-radius: 4px; background: #c0392b; color: #fff; text-decoration: none; cursor: pointer; }
.btn-wrap { position: relative; display: inline-block; }
.overlay { position: absolute; top: 0; left: 0; right: 0; bottom: 0; z-index: 50; }
.modal { display: none; position: fixed; top: 80px; left: 50%; width: 360px; margin-left: -180px; padding: 20px; background: #fff; color: #222; z-index: 10; }
.modal input { display: block; width: 100%; margin-bottom: 10px; padding: 6px; box-sizing: border-box; }
.rewards { display: flex; gap: 8px; margin-top: 40px; }
.reward-content { width: 90px; height: 90px; border: 1px solid #666; display: flex; align-items: center; justify-content: center; }
.reward-content.claimed { opacity: 0.4; }
.reward-star { width: 60px; height: 60px; background: gold; border-radius: 50%; cursor: pointer; }
#ServerForm { display: none; margin-top: 30px; }
#ServerForm select { padding: 6px; margin-right: 10px; }
.alert-success { display: none; margin-top: 20px; padding: 10px; background: #27ae60; }
#post-login-marker { display: none; }
</style>
</head>
<body>
<h1>Daily Login Reward</h1>
{{if not .LoggedIn}}<a href="#" id="login-link" class="btn btn-login login-shinobi loginMethod">LOGIN</a>{{end}}
<div id="post-login-marker"{{if .LoggedIn}} style="display: block"{{end}}>Welcome back, shinobi</div>

<div class="modal fade" id="LoginForm" role="dialog">
  <h2>Login</h2>
  <form onsubmit="return false">
    <input type="email" name="email" placeholder="Email">
    <input type="password" name="password" placeholder="Password">
    <span class="btn-wrap">
      <button type="button" id="form-login-btnSubmit" class="btn btn-submit" data-loading-text="Processing...">SUBMIT</button>
      {{if .OverlaySubmit}}<span class="overlay"></span>{{end}}
    </span>
  </form>
</div>

<section class="rewards">
  <div class="reward-content claimed" data-id="Day-1">Day 1</div>
  {{if .NoReward}}<div class="reward-content claimed" data-id="Day-2">Day 2</div>{{else}}<div class="reward-content dailyClaim" data-period="30" data-id="Day-2"><div class="reward-star"></div></div>{{end}}
  <div class="reward-content locked" data-id="Day-3">Day 3</div>
</section>

<div id="ServerForm">
  <select name="selserver" class="form-control" data-parsley-required-message="Must be chosen">
    <option value="">-- Select Server --</option>
    {{range .Servers}}<option value="{{.Value}}">{{.Text}}</option>
    {{end}}
  </select>
  <span class="btn-wrap">
    <button type="button" id="form-server-btnSubmit" class="btn btn-submit" data-loading-text="Processing...">SUBMIT</button>
    {{if .OverlaySubmit}}<span class="overlay"></span>{{end}}
  </span>
</div>
<div class="alert alert-success" id="claim-notice">Reward claimed successfully</div>

<script>
const opts = {{.}};
const $ = (sel) => document.querySelector(sel);
const post = (path, body) => fetch(path, {
  method: 'POST',
  headers: {'Content-Type': 'application/json'},
  body: JSON.stringify(body),
});

const loginLink = $('#login-link');
if (loginLink) {
  loginLink.addEventListener('click', (e) => {
    e.preventDefault();
    if (!opts.modalNeverShows) {
      $('#LoginForm').style.display = 'block';
    }
  });
}

$('#form-login-btnSubmit').addEventListener('click', async () => {
  const form = $('#LoginForm form');
  const resp = await post('/api/login', {email: form.email.value, password: form.password.value});
  if (!resp.ok) {
    return;
  }
  $('#LoginForm').style.display = 'none';
  loginLink.remove();
  $('#post-login-marker').style.display = 'block';
});

const star = $('.reward-star');
if (star) {
  star.addEventListener('click', () => {
    $('#ServerForm').style.display = 'block';
  });
}

$('#form-server-btnSubmit').addEventListener('click', async () => {
  const server = $("select[name='selserver']").value;
  if (!server) {
    return;
  }
  const resp = await post('/api/claim', {server: server});
  if (!resp.ok) {
    return;
  }
  const data = await resp.json();
  star.parentElement.className = 'reward-content claimed';
  star.remove();
  $('#ServerForm').style.display = 'none';
  if (!opts.noAlert) {
    alert(data.message);
  }
  if (!opts.noNotice) {
    $('#claim-notice').style.display = 'block';
  }
});
</script>
</body>
</html>
`))
