package report

import (
	"fmt"
	"io"
	"text/template"
)

// WriteMarkdown renders the report as a standalone markdown document
// suitable for committing next to the audited artifacts.
func (r *Report) WriteMarkdown(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"pct":   func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"delta": func(v float64) string { return fmt.Sprintf("%+.1f%%", v) },
		"f1":    func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"f2":    func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).Parse(markdownTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}

const markdownTemplate = `# Governance Audit

- Run: {{.RunID}}
- Generated: {{.GeneratedAt.Format "2006-01-02 15:04"}} UTC
- Profile: {{.ProfileSource}} ({{.Profile.TotalSourceDocuments}} source documents)

## Artifacts

| Artifact | Kind | Tokens | Cognitive | Discipline | Resolution | Traceability |
|---|---|---|---|---|---|---|
{{range .Audits -}}
| {{.Name}} | {{.Kind}} | {{.TokenCount}} | {{f2 .CognitiveLoad}} | {{f2 .DisciplineScore}} | {{f2 .ResolutionPotential}} | {{f2 .TraceabilityScore}} |
{{end}}
{{- range .Audits}}{{if .Issues}}
### {{.Name}}
{{range .Issues}}- {{.}}
{{end}}{{end}}{{end}}
## Baseline ({{.Baseline.Sessions}} sessions)

- Duration: avg {{f1 .Baseline.AvgDuration}}m, p50 {{f1 .Baseline.P50Duration}}m, p95 {{f1 .Baseline.P95Duration}}m
- Tokens: {{f1 .Baseline.AvgTokens}}
- API calls: {{f1 .Baseline.AvgAPICalls}}
- Completion: {{pct .Baseline.CompletionRate}} (failure {{pct .Baseline.FailureRate}})
{{- if .Proposals}}

## Proposals

| Type | Target | Token reduction | Rationale |
|---|---|---|---|
{{range .Proposals -}}
| {{.Type}} | {{.Target}} | {{.TokenReduction}} | {{.Rationale}} |
{{end}}{{end}}
{{- if .Delta}}
## Delta

- Tokens: {{delta .Delta.TokensPct}}
- API calls: {{delta .Delta.APICallsPct}}
- Cognitive load: {{delta .Delta.CognitivePct}}
- Resolution: {{delta .Delta.ResolutionPct}}
{{end}}`
