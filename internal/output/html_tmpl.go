// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}" charset="utf-8"></script>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --accent: #0d6efd; --notice: #856404;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --muted: #adb5bd; --accent: #5b9aff; --notice: #ffc107;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.intro { margin-bottom: 1.5rem; }
.controls { display: flex; flex-wrap: wrap; gap: 1rem; margin-bottom: 1.5rem; align-items: center; background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; }
.controls select, .controls input { padding: .25rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--bg); color: var(--fg); }
.selection { color: var(--muted); margin-bottom: 1.5rem; }
.panel { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; margin-bottom: 1.5rem; }
.panel h2 { font-size: 1rem; margin-bottom: .5rem; }
.map { width: 100%; height: 520px; }
.notice { color: var(--notice); padding: 1rem 0; }
.prose { margin-top: .75rem; font-size: .9375rem; }
.ranking { margin-top: .75rem; max-width: 100%; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>{{.Byline}}</p>
</header>

<p class="intro">{{.Intro}}</p>

{{if .Interactive}}
<form id="controls" class="controls" method="get" action="/">
  <label>Year <output id="year-out">{{.Year}}</output>
    <input type="range" name="year" id="year" min="{{.MinYear}}" max="{{.MaxYear}}" value="{{.Year}}" oninput="document.getElementById('year-out').value=this.value" onchange="this.form.submit()">
  </label>
  <label>Area
    <select name="area" id="area" onchange="this.form.submit()">
      {{range .Areas}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
    </select>
  </label>
  <label><input type="checkbox" id="auto-advance"{{if .AutoAdvance}} checked{{end}}> Auto-advance year</label>
</form>
{{else}}
<p class="selection">{{.Year}} &middot; {{.AreaLabel}}</p>
{{end}}

{{range .Panels}}
<section class="panel" id="panel-{{.ID}}">
  {{if .HasFigure}}<div class="map" id="map-{{.ID}}"></div>{{else}}<h2>{{.Title}}</h2>
  <p class="notice">{{.Notice}}</p>{{end}}
  <p class="prose">{{.Prose}}</p>
  {{if .Ranking}}<img class="ranking" src="{{.Ranking}}" alt="Top locations: {{.Title}}">{{end}}
</section>
{{end}}

<script>
var figures = {{json .Figures}};
Object.keys(figures).forEach(function(id) {
  Plotly.newPlot("map-" + id, figures[id].data, figures[id].layout, {responsive: true});
});
{{if .Interactive}}
var tickMs = {{.TickIntervalMS}} || 2000;
var toggle = document.getElementById("auto-advance");
var timer = null;

function post(path, body) {
  return fetch(path, {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(body || {})
  }).then(function(r) { return r.json(); });
}

function schedule() {
  clearTimeout(timer);
  if (toggle.checked) timer = setTimeout(tick, tickMs);
}

function tick() {
  post("/api/tick").then(function(res) {
    if (res.advanced) {
      window.location.search = "?year=" + res.state.year + "&area=" + encodeURIComponent(res.state.area);
      return;
    }
    toggle.checked = false;
    post("/api/session", {auto_advance: false});
  });
}

toggle.addEventListener("change", function() {
  post("/api/session", {auto_advance: toggle.checked}).then(schedule);
});
schedule();
{{end}}
</script>
</body>
</html>
`
