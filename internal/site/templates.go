package site

// listTemplate renders the <li> items of one sidebar.
const listTemplate = `{{define "list"}}{{$s := .}}{{range .Items}}<li data-id="{{.ID}}"{{if index $s.Hidden .ID}} class="hidden"{{end}}><a href="{{.Href}}" data-section="{{$s.Kind}}" data-id="{{.ID}}"{{if eq $s.Active .ID}} class="active"{{end}}>{{if .Code}}<code>{{.Label}}</code>{{else}}{{.Label}}{{end}}</a></li>{{end}}{{with .Placeholder}}<li class="no-results">{{.}}</li>{{end}}{{end}}`

// detailTemplate renders the detail pane of one entry.
const detailTemplate = `{{define "detail"}}<h2>{{.Title}}</h2>
{{if eq .Kind "commands"}}{{with .Description}}<p><strong>Description:</strong> {{.}}</p>
{{end}}{{with .Permissions}}<p><strong>Required Permissions:</strong> <code>{{.}}</code></p>
{{end}}{{end}}<div class="detail-body">{{safe .Body}}</div>{{end}}`

// emptyDetailTemplate is shown before anything is selected.
const emptyDetailTemplate = `{{define "empty-detail"}}<div class="welcome-message">{{if eq . "commands"}}<h2>Bot Commands</h2>
<p>Select a command from the list to see what it does and who can use it.</p>{{else}}<h2>Frequently Asked Questions</h2>
<p>Select a question from the list to read the answer.</p>{{end}}</div>{{end}}`

// conversationTemplate renders the showcase chat.
const conversationTemplate = `{{define "conversation"}}{{$meta := .Meta}}{{$base := .Base}}{{with .Conv}}<div class="command-message{{if not .Animated}} static{{end}}">
  <div class="command-avatar user-command-avatar">{{with $meta.User.Avatar}}<img src="{{asset $base .}}" alt="">{{end}}</div>
  <div class="command-content">
    <div class="command-header">
      <span class="command-author">{{$meta.User.Name}}</span>
      {{if $meta.User.Bot}}<span class="command-bot-badge">APP</span>{{end}}
      <span class="command-timestamp">{{$meta.Timestamp}}</span>
    </div>
    <div class="command-text">{{.Command}}</div>
  </div>
</div>
{{with .Response}}<div class="command-message{{if not $.Conv.Animated}} static{{end}}">
  <div class="bot-command-avatar">{{with $meta.Bot.Avatar}}<img src="{{asset $base .}}" alt="Bot Avatar">{{end}}</div>
  <div class="command-content">
    <div class="command-header">
      <span class="command-author">{{$meta.Bot.Name}}</span>
      {{if $meta.Bot.Bot}}<span class="command-bot-badge">APP</span>{{end}}
      <span class="command-timestamp">{{$meta.Timestamp}}</span>
    </div>
    <div class="command-embed">
      <div class="embed-title">{{.Title}}</div>
      {{with .Description}}<div class="embed-description">{{.}}</div>{{end}}
      {{range .Fields}}<div class="embed-field">
        <div class="embed-field-name">{{.Name}}</div>
        <div class="embed-field-value">{{.Value}}</div>
      </div>{{end}}
      {{with .Image}}<img src="{{asset $base .}}" alt="{{$.Conv.Response.Title}}" class="embed-image">{{end}}
    </div>
  </div>
</div>{{end}}{{end}}{{end}}`

// sectionTemplate renders one tab of the docs browser.
const sectionTemplate = `{{define "section"}}<div class="tab-content{{if .Shown}} active{{end}}" id="{{.Kind}}-tab" data-section="{{.Kind}}">
  <div class="browser">
    <aside class="browser-sidebar">
      <input type="search" class="browser-search" data-section="{{.Kind}}" placeholder="Search {{if eq .Kind "commands"}}commands{{else}}questions{{end}}..." autocomplete="off" value="{{.Query}}">
      <ul class="browser-list" id="{{.Kind}}-list" data-section="{{.Kind}}">{{template "list" .}}</ul>
    </aside>
    <article class="browser-detail" id="{{.Kind}}-detail">{{if .Detail}}{{template "detail" .Detail}}{{else}}{{template "empty-detail" .Kind}}{{end}}</article>
  </div>
</div>{{end}}`

// pageTemplate is the whole landing page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{with .Heading}}{{.}} | {{end}}{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  {{with .Canonical}}<link rel="canonical" href="{{.}}">
  {{end}}  <link rel="icon" href="{{asset .Base "/assets/img/logo.svg"}}">
  <link rel="stylesheet" href="{{asset .Base "/assets/style.css"}}">
</head>
<body data-base="{{.Base}}"{{if .Static}} data-static="true"{{end}} data-breakpoint="{{.Breakpoint}}" data-threshold="{{.Threshold}}">
  <header class="site-header">
    <a class="brand" href="{{asset .Base "/"}}"><img src="{{asset .Base "/assets/img/logo.svg"}}" alt="" class="brand-logo">{{.Title}}</a>
    <nav class="site-nav">
      <a href="#demo-section">Demo</a>
      <a href="#showcase">Commands</a>
      <a href="#docs">Docs</a>
    </nav>
  </header>

  <section class="hero">
    <h1>Verify your UChicago community</h1>
    <p>{{.Description}}</p>
    <button class="scroll-indicator" type="button" aria-label="See how it works">&#8595;</button>
  </section>

  <section class="demo-section" id="demo-section">
    <h2>How verification works</h2>
    <div class="demo-animation" id="demo-animation">
      <div class="demo-cursor" id="demo-cursor" style="left: {{.Scene.Cursor.X}}px; top: {{.Scene.Cursor.Y}}px; opacity: {{.Scene.Cursor.Opacity}}"></div>
      <div class="discord-embed" id="demo-embed" style="opacity: {{.Scene.Embed.Opacity}}">
        <div class="embed-title">Verify your UChicago affiliation</div>
        <div class="embed-description">Click the button below and sign in with your CNetID to get the verified role.</div>
        <button type="button" class="demo-verify-btn" id="demo-verify-btn" tabindex="-1">Verify Now</button>
      </div>
      <div class="uchicago-signin" id="demo-signin" style="opacity: {{.Scene.SignIn.Opacity}}">
        <div class="signin-header">The University of Chicago</div>
        <label for="demo-input">CNetID</label>
        <input type="text" id="demo-input" readonly tabindex="-1" value="{{.Scene.Input.Value}}">
        <button type="button" class="demo-signin-btn" id="demo-submit" tabindex="-1">Next</button>
      </div>
      <div class="discord-profile" id="demo-profile" style="opacity: {{.Scene.Profile.Opacity}}">
        <div class="profile-avatar"></div>
        <div class="profile-name">phil</div>
        <div class="profile-roles"><span class="role-pill">UChicago Verified</span></div>
      </div>
      <div class="confetti-container" id="demo-confetti"></div>
    </div>
    <button type="button" class="replay-btn" id="demo-replay">Replay</button>
  </section>

  <section class="showcase" id="showcase">
    <h2>Try the commands</h2>
    <div class="showcase-window">
      <div class="showcase-messages" id="showcase-messages">{{template "conversation" .Chat}}</div>
    </div>
    <div class="showcase-controls">
      <button type="button" id="showcase-prev" data-direction="prev" aria-label="Previous command">&#8592;</button>
      <button type="button" id="showcase-next" data-direction="next" aria-label="Next command">&#8594;</button>
    </div>
  </section>

  <section class="docs" id="docs">
    <div class="tabs">
      <button type="button" class="tab-btn{{if .Commands.Shown}} active{{end}}" data-tab="commands">Commands</button>
      <button type="button" class="tab-btn{{if .FAQ.Shown}} active{{end}}" data-tab="faq">FAQ</button>
    </div>
    {{template "section" .Commands}}
    {{template "section" .FAQ}}
  </section>

  <footer class="site-footer">
    <p>{{.Title}} is not affiliated with Discord.</p>
  </footer>
  <script src="{{asset .Base "/assets/app.js"}}"></script>
</body>
</html>`
