package proposal

import (
	"html/template"
	"io"
	"math"
	"time"
)

const progressRadius = 20.2

var funcs = template.FuncMap{
	"dash": func(value float64) float64 {
		return 2 * math.Pi * progressRadius * value / 100
	},
	"circumference": func() float64 {
		return 2 * math.Pi * progressRadius
	},
	"date": func(t time.Time) string {
		return t.UTC().Format("Jan 2, 2006 15:04 MST")
	},
}

var tmpl = template.Must(template.New("").Funcs(funcs).Parse(`
{{define "content"}}
<div class="card proposal">
	<div class="row space-between">
		<div class="stack">
			<h2>{{.Title}}</h2>
			{{template "stats" .Stats}}
		</div>
		{{with .Indicator}}
		<div class="quorum" title="{{.Label}}">
			<svg width="45" height="45" viewBox="22 22 44 44" role="progressbar" aria-valuenow="{{printf "%.1f" .Value}}">
				<circle cx="44" cy="44" r="20.2" fill="none" stroke-width="3.6" stroke="#e6e6e6"/>
				<circle cx="44" cy="44" r="20.2" fill="none" stroke-width="3.6" stroke="#46b955"
					stroke-dasharray="{{printf "%.3f" (dash .Value)}} {{printf "%.3f" circumference}}"
					transform="rotate(-90 44 44)"/>
			</svg>
			<div class="quorum-badge">{{.Badge}}</div>
		</div>
		{{end}}
	</div>
	<div class="markdown">{{.Body}}</div>
</div>
{{end}}

{{define "stats"}}
<div class="stats">
	<p class="state state-{{.State}}">{{.State}}</p>
	<p>
		{{if .VotingOver}}Voting ended {{.Remaining}}{{else}}Voting ends {{.Remaining}}{{end}}
		<span class="date">{{date .Start}} &ndash; {{date .End}}</span>
	</p>
	{{if .Choices}}
	<ul class="choices">
		{{range .Choices}}
		<li{{if .Leading}} class="leading"{{end}}>{{.Label}}: {{.Score}} Stalk ({{.Percent}})</li>
		{{end}}
	</ul>
	{{end}}
	<p>Total: {{.Votes}} Stalk{{with .Quorum}} &middot; Quorum: {{.}} Stalk{{end}}</p>
	{{if and .ShowLink .Link}}<a href="{{.Link}}" target="_blank" rel="noopener noreferrer">View on Snapshot</a>{{end}}
</div>
{{end}}

{{define "page"}}
<!doctype html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>{{.Title}}</title>
	<style>
		body { font-family: Futura, sans-serif; background: #f6fafe; margin: 0; padding: 16px; }
		.card { background: #fff; border-radius: 10px; padding: 16px; }
		.row { display: flex; flex-direction: row; align-items: flex-start; }
		.space-between { justify-content: space-between; }
		.stack { display: flex; flex-direction: column; gap: 8px; }
		.quorum { position: relative; text-align: center; width: 45px; height: 45px; }
		.quorum-badge { position: absolute; top: 0; right: 0; height: 45px; width: 45px;
			display: flex; align-items: center; justify-content: center; font-size: 12px; }
		.markdown { max-width: 100%; margin-top: 8px; overflow-wrap: break-word; }
		.leading { font-weight: bold; }
	</style>
</head>
<body>
{{template "content" .}}
</body>
</html>
{{end}}
`))

// Render writes the content card as html
func Render(w io.Writer, c Content) error {
	return execute(w, "content", c)
}

// RenderPage writes a standalone html document with the content card
func RenderPage(w io.Writer, c Content) error {
	return execute(w, "page", c)
}

func execute(w io.Writer, name string, c Content) error {
	if !c.rendered {
		body, err := Markdown(c.Markdown)
		if err != nil {
			return err
		}

		c.Body = body
	}

	return tmpl.ExecuteTemplate(w, name, c)
}
