package pages

const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Page.Title}}</title>
<meta name="description" content="{{.Page.Description}}">
<link rel="canonical" href="{{.Canonical}}">
<meta property="og:title" content="{{.Page.Title}}">
<meta property="og:description" content="{{.Page.Description}}">
<meta property="og:url" content="{{.Canonical}}">
<meta property="og:type" content="website">
<link rel="stylesheet" href="/assets/site.css">
</head>
<body class="{{if .Page.Snap}}snap-page{{else}}plain-page{{end}}{{if .Page.Intro}} has-intro{{end}}" data-path="{{.Page.Path}}">
<nav class="navbar">
  <a class="brand" href="/">{{.Company}}</a>
  <button class="menu-toggle" aria-label="Menu" type="button">&#9776;</button>
  <ul class="nav-links">
  {{- range .Nav}}
    <li><a href="{{.Href}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Label}}</a></li>
  {{- end}}
  </ul>
</nav>
{{- if .Page.Intro}}
<div id="intro" class="intro-overlay" data-phase="hold">
  <div class="intro-inner">
    <p class="intro-company">{{.Company}}</p>
    <p class="intro-tagline">{{.Tagline}}</p>
    <p class="intro-hint">Scroll to enter</p>
  </div>
</div>
{{- end}}
<main id="container" class="{{if .Page.Snap}}snap-container{{else}}page-container{{end}}" data-sections="{{len .Sections}}">
{{- range .Sections}}
  <section id="{{.Key}}" class="{{if $.Page.Snap}}snap-section {{end}}theme-{{.Theme}}" data-index="{{.Index}}">
    <div class="section-inner">
      {{- if .Eyebrow}}
      <p class="eyebrow">{{.Eyebrow}}</p>
      {{- end}}
      {{- if .Heading}}
      {{- if eq .Index 0}}
      <h1>{{range $i, $l := lines .Heading}}{{if $i}}<br>{{end}}{{$l}}{{end}}</h1>
      {{- else}}
      <h2>{{range $i, $l := lines .Heading}}{{if $i}}<br>{{end}}{{$l}}{{end}}</h2>
      {{- end}}
      {{- end}}
      {{- if .Body}}
      <div class="prose">{{.Body}}</div>
      {{- end}}
      {{partial .Partial $}}
      {{- if .Links}}
      <div class="actions">
      {{- range .Links}}
        <a class="button" href="{{.Href}}"{{if .External}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Label}}</a>
      {{- end}}
      </div>
      {{- end}}
    </div>
  </section>
{{- end}}
</main>
{{- if not .Page.Snap}}
<footer class="footer">
  <p><a href="/">Home</a> · <a href="/breeding">Breeding</a> · <a href="/about">About</a> · <a href="/contact">Contact</a> · <a href="/careers">Careers</a> · <a href="/where-to-buy">Where to Buy</a></p>
  <p><a href="https://www.linkedin.com/company/california-berry-cultivars-llc" target="_blank" rel="noopener noreferrer" aria-label="LinkedIn">LinkedIn</a> · <a href="/privacy">Privacy</a></p>
  <p>&copy; {{.Year}} {{.Company}}, LLC</p>
</footer>
{{- end}}
<script src="/assets/site.js"></script>
</body>
</html>
{{end}}`

const partialTemplates = `
{{define "partial-services"}}<div class="cards">
  <a class="card reveal" href="/cultivar-development"><h3>Cultivar Development</h3><p>Premium berry varieties for short-day and day-neutral production. Superior fruit quality that drives grower profitability.</p></a>
  <a class="card reveal" href="/disease-testing"><h3>Disease &amp; Field Testing</h3><p>Rigorous screening for Fusarium, Macrophomina, and critical pathogens. Multi-site trials validate performance across diverse growing conditions.</p></a>
  <a class="card reveal" href="/grower-partnerships"><h3>Grower Partnerships</h3><p>Direct collaboration with commercial growers. On-farm trials and licensing programs ensure cultivars deliver real-world results.</p></a>
</div>{{end}}

{{define "partial-cultivars"}}<div class="cultivar-grid">
{{- range .Featured}}
  <a class="cultivar reveal" href="{{.ExplorerLink}}" target="_blank" rel="noopener noreferrer"><img src="{{.Banner}}" alt="{{.Name}}" loading="lazy"></a>
{{- end}}
</div>{{end}}

{{define "partial-partners"}}<div class="partner-grid">
{{- range .Partners}}
  <div class="partner reveal">
    {{- if .Website}}<a href="{{.Website}}" target="_blank" rel="noopener noreferrer"><h3>{{.Name}}</h3></a>{{else}}<h3>{{.Name}}</h3>{{end}}
    <p>{{.Blurb}}</p>
  </div>
{{- end}}
</div>{{end}}

{{define "partial-nurseries"}}<ul class="supplier-list">
{{- range .Nurseries}}
  <li class="reveal"><strong>{{.Name}}</strong> <span>{{.Location}}</span>{{if .Website}} <a href="{{.Website}}" target="_blank" rel="noopener noreferrer">Website</a>{{end}}</li>
{{- end}}
</ul>
{{- if .CanadaNurseries}}
<h3>🇨🇦 Canadian Nurseries</h3>
<ul class="supplier-list">
{{- range .CanadaNurseries}}
  <li><strong>{{.Name}}</strong> <span>{{.Location}}</span>{{if .Note}} <em>{{.Note}}</em>{{end}}</li>
{{- end}}
</ul>
{{- end}}{{end}}

{{define "partial-licensees"}}<div class="licensee-grid">
{{- range .Licensees}}
  <div class="licensee reveal">
    <h3>{{.Flag}} {{.Name}}</h3>
    <p class="region">{{.Region}}</p>
    <p>{{.Description}}</p>
    {{- if .Website}}<a href="{{.Website}}" target="_blank" rel="noopener noreferrer">Website</a>{{end}}
  </div>
{{- end}}
</div>{{end}}

{{define "partial-locations"}}<div class="location-grid">
{{- range .Locations}}
  <div class="location"><h3>{{.Name}}</h3><p class="type">{{.Type}}</p><p>{{.Description}}</p></div>
{{- end}}
</div>{{end}}

{{define "partial-jobs"}}
{{- range .JobGroups}}
<div class="job-group">
  <h3 style="color: {{.Info.Color}}">{{.Info.Title}}</h3>
  <ul>
  {{- range .Jobs}}
    <li><a href="{{.PDF}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a> <span>{{.Location}}</span></li>
  {{- end}}
  </ul>
</div>
{{- else}}
<p>No openings right now. General applications are always welcome.</p>
{{- end}}{{end}}

{{define "partial-contact-form"}}<form class="site-form" data-endpoint="/api/contact" data-kind="json" novalidate>
  <input type="hidden" name="source" value="{{.Page.Title}}">
  <input name="name" placeholder="Your name *" required>
  <input name="email" type="email" placeholder="your@email.com *" required>
  <input name="company" placeholder="Company name">
  <input name="phone" type="tel" placeholder="Phone number">
  <input name="region" placeholder="Growing region (e.g., California)">
  <textarea name="message" rows="5" placeholder="Your message *" required></textarea>
  <button type="submit">Send Message</button>
  <p class="form-status" role="status"></p>
</form>{{end}}

{{define "partial-apply-form"}}<form class="site-form" data-endpoint="/api/apply" data-kind="multipart" enctype="multipart/form-data" novalidate>
  <input name="name" placeholder="Full name *" required>
  <input name="email" type="email" placeholder="your@email.com *" required>
  <input name="phone" type="tel" placeholder="Phone number">
  <select name="position" required>
    <option value="">Select a position *</option>
    {{- range .Positions}}
    <option value="{{.}}">{{.}}</option>
    {{- end}}
  </select>
  <textarea name="message" rows="4" placeholder="Cover letter / message"></textarea>
  <label class="file">Resume (PDF, max 5MB) <input name="resume" type="file" accept=".pdf,application/pdf" data-max-bytes="5242880"></label>
  <button type="submit">Submit Application</button>
  <p class="form-status" role="status"></p>
</form>{{end}}
`
