// Package format renders analysis results for terminal output.
package format

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/msageha/gatecheck/internal/model"
)

const reportTemplate = `Quality gate: {{ .Gate.Status }}
{{- range .Gate.Conditions }}
  {{ printf "%-5s" .Status }} {{ .MetricName }}: {{ .Actual }}{{ with goal . }} (goal {{ . }}){{ end }}
{{- end }}

New issues: {{ len .Issues }}
{{- range .Issues }}
  {{ printf "%-8s" .Severity }} {{ location . }}  {{ .Message }} [{{ .RuleKey }}]
{{- end }}
{{- with severityCounts .Issues }}

Summary: {{ . }}
{{- end }}
`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"goal":           goal,
	"location":       location,
	"severityCounts": severityCounts,
}).Parse(reportTemplate))

type reportData struct {
	Gate   *model.QualityGate
	Issues []model.Issue
}

// Render formats the gate verdict and the issue list into a report block
// suitable for terminal output.
func Render(gate *model.QualityGate, issues []model.Issue) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, reportData{Gate: gate, Issues: issues}); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}

// goal renders the threshold a condition is measured against, preferring
// the threshold that matches its status.
func goal(cond model.Condition) string {
	if cond.Symbol == "" {
		return ""
	}
	threshold := cond.Error
	if cond.Status == model.GateWarn && cond.Warning != "" {
		threshold = cond.Warning
	}
	if threshold == "" {
		threshold = cond.Warning
	}
	if threshold == "" {
		return ""
	}
	return fmt.Sprintf("not %s %s", cond.Symbol, threshold)
}

// location renders file:line when the issue is anchored to a file, and
// falls back to the component key otherwise.
func location(issue model.Issue) string {
	if issue.File == "" {
		return issue.ComponentKey
	}
	if issue.Line == nil {
		return issue.File
	}
	return fmt.Sprintf("%s:%d", issue.File, *issue.Line)
}

// severityCounts renders "1 BLOCKER, 2 MAJOR" style counts, most severe
// first. Empty for an empty issue list.
func severityCounts(issues []model.Issue) string {
	counts := map[model.Severity]int{}
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	severities := make([]model.Severity, 0, len(counts))
	for s := range counts {
		severities = append(severities, s)
	}
	sort.Slice(severities, func(i, j int) bool {
		return severities[i].Rank() < severities[j].Rank()
	})

	parts := make([]string, 0, len(severities))
	for _, s := range severities {
		parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
	}
	return strings.Join(parts, ", ")
}
