package reporting

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"

	"github.com/shauryaa19/legallens/internal/contract"
)

func WriteHTML(analysisID, outDir string, a *contract.Analysis) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(outDir, analysisID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	totalIssues := a.TotalIssues()

	// Head + styles
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(analysisID))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace} .sev-HIGH{color:#b00020;font-weight:600} .sev-MEDIUM{color:#b26a00} .sev-LOW{color:#2e7d32}</style>")
	fmt.Fprint(f, "</head><body>")

	// Title + summary
	fmt.Fprintf(f, "<h1>legallens report – <span class='mono'>%s</span></h1>", html.EscapeString(analysisID))
	fmt.Fprintf(f, "<p>Documents: %d &nbsp; Issues: %d &nbsp; Max risk: %.2f (%s)</p>",
		len(a.Documents), totalIssues, a.MaxRisk(), contract.RiskBand(a.MaxRisk()))
	if a.Source != "" {
		fmt.Fprintf(f, "<p class='dim'>Source: <span class='mono'>%s</span> &nbsp; Engine: %s</p>",
			html.EscapeString(a.Source), html.EscapeString(a.EngineVersion))
	}

	// Highest risk documents (by score desc, then name)
	if len(a.Documents) > 0 {
		docs := make([]contract.Document, len(a.Documents))
		copy(docs, a.Documents)
		sort.Slice(docs, func(i, j int) bool {
			if docs[i].Result.RiskScore == docs[j].Result.RiskScore {
				return docs[i].Name < docs[j].Name
			}
			return docs[i].Result.RiskScore > docs[j].Result.RiskScore
		})
		fmt.Fprint(f, "<h2>Highest Risk Documents</h2><table><tr><th>Document</th><th>Risk</th><th>Band</th><th>Issues</th><th>Words</th><th>Review (min)</th></tr>")
		limit := len(docs)
		if limit > 20 {
			limit = 20
		}
		for i := 0; i < limit; i++ {
			d := docs[i]
			band := contract.RiskBand(d.Result.RiskScore)
			fmt.Fprintf(f, "<tr><td>%s</td><td>%.2f</td><td class='sev-%s'>%s</td><td>%d</td><td>%d</td><td>%.1f</td></tr>",
				html.EscapeString(d.Name),
				d.Result.RiskScore,
				band, band,
				d.Result.TotalIssues,
				d.Stats.Words,
				d.Stats.ReviewMinutes,
			)
		}
		fmt.Fprint(f, "</table>")
	}

	// Per-document issues, kept in catalog order
	if totalIssues > 0 {
		fmt.Fprint(f, "<h2>Issues</h2>")
		for _, d := range a.Documents {
			if d.Result.TotalIssues == 0 {
				continue
			}
			fmt.Fprintf(f, "<h3 class='mono'>%s</h3>", html.EscapeString(d.Name))
			fmt.Fprint(f, "<table><tr><th>Severity</th><th>Rule</th><th>Issue</th><th>Suggestion</th><th>Legal Basis</th><th>Matched Text</th></tr>")
			for _, iss := range d.Result.Issues {
				fmt.Fprintf(f, "<tr><td class='sev-%s'>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class='mono'>%s</td></tr>",
					iss.RiskLevel,
					iss.RiskLevel,
					html.EscapeString(iss.Name),
					html.EscapeString(iss.Description),
					html.EscapeString(iss.Suggestion),
					html.EscapeString(iss.LegalBasis),
					html.EscapeString(iss.MatchedText),
				)
			}
			fmt.Fprint(f, "</table>")
		}
	} else {
		fmt.Fprint(f, "<h2>Issues</h2><p class='dim'>No issues at or above the configured threshold.</p>")
	}

	fmt.Fprint(f, "</body></html>")
	return path, nil
}
