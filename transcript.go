package main

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"
)

// Read-only renderings of a final (or in-progress) game state: a plain
// text transcript and a printable report, both team-by-team listings of
// letter, score and spoken words.

type transcriptTeam struct {
	Name   string
	Letter string
	Score  int
	Words  []string
}

type transcriptView struct {
	Teams  []transcriptTeam
	Winner string
}

func newTranscriptView(g *GameState) transcriptView {
	return transcriptView{
		Teams: []transcriptTeam{
			{Name: "ટીમ 1", Letter: g.Team1.Letter, Score: g.Team1.Score, Words: g.Team1.Words},
			{Name: "ટીમ 2", Letter: g.Team2.Letter, Score: g.Team2.Score, Words: g.Team2.Words},
		},
		Winner: winnerText(g),
	}
}

var transcriptTmpl = texttemplate.Must(texttemplate.New("transcript").Parse(
	`શબ્દ સ્પર્ધા - બોલાયેલા શબ્દો
{{range .Teams}}
{{.Name}} (અક્ષર: {{if .Letter}}{{.Letter}}{{else}}?{{end}}) | {{.Score}} ગુણ
{{- if .Words}}
{{- range .Words}}
  - {{.}}
{{- end}}
{{- else}}
  કોઈ શબ્દ બોલાયો નથી
{{- end}}
{{end}}
{{.Winner}}
`))

func renderTranscript(g *GameState) string {
	var out strings.Builder
	if err := transcriptTmpl.Execute(&out, newTranscriptView(g)); err != nil {
		return err.Error()
	}
	return out.String()
}

var printTmpl = template.Must(template.New("print").Parse(
	`<html>
  <head><title>Word List Print</title>
    <style>
      body { font-family: 'Noto Sans Gujarati', Arial, sans-serif; padding: 20px; }
      h1 { color: #0056b3; text-align: center; }
      table { width: 100%; border-collapse: collapse; margin-top: 20px; }
      th, td { border: 1px solid #333; padding: 10px; text-align: left; }
      th { background: #f2f2f2; }
    </style>
  </head>
  <body>
    <h1>શબ્દ સ્પર્ધા - બોલાયેલા શબ્દો</h1>
    <table>
      <tr><th>ટીમ</th><th>ગુણ</th><th>શબ્દો</th></tr>
{{- range .Teams}}
      <tr><td>{{.Name}}</td><td>{{.Score}}</td><td>{{if .Words}}{{range $i, $w := .Words}}{{if $i}}, {{end}}{{$w}}{{end}}{{else}}કોઈ શબ્દ બોલાયો નથી{{end}}</td></tr>
{{- end}}
    </table>
    <p>{{.Winner}}</p>
  </body>
</html>
`))

func renderPrintReport(g *GameState) (string, error) {
	var out strings.Builder
	if err := printTmpl.Execute(&out, newTranscriptView(g)); err != nil {
		return "", err
	}
	return out.String(), nil
}

// writeTranscript saves the plain-text transcript under dir and returns
// the written path.
func writeTranscript(dir string, g *GameState) (string, error) {
	name := fmt.Sprintf("wordchain-%s.txt", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(renderTranscript(g)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}

	return path, nil
}
