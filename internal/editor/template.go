package editor

import "html/template"

type pageData struct {
	JSON    string
	HasPDF  bool
	Error   string
	Notice  string
	Blocked bool
}

var pageTemplate = template.Must(template.New("editor").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Resume Press</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
textarea { width: 100%; height: 28rem; font-family: monospace; font-size: 0.85rem; }
.error { background: #fde8e8; border: 1px solid #c0392b; padding: 0.6rem 1rem; }
.notice { background: #e8f6e8; border: 1px solid #27ae60; padding: 0.6rem 1rem; }
.actions { margin-top: 0.8rem; }
</style>
</head>
<body>
<h1>Resume Press</h1>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
{{if .Notice}}<div class="notice">{{.Notice}}</div>{{end}}
{{if .Blocked}}
<p>The resume data file could not be read. Restore it and reload this page.</p>
{{else}}
<form method="post" action="/generate">
<textarea name="resume" spellcheck="false">{{.JSON}}</textarea>
<div class="actions">
<button type="submit">Generate PDF</button>
{{if .HasPDF}}<a href="/resume.pdf">Download PDF</a>{{end}}
</div>
</form>
{{end}}
</body>
</html>
`))
