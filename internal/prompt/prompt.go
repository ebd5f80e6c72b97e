// Package prompt turns computed charts and a few free-text fields into the
// instructions sent to the text-generation model.
package prompt

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"cosmicmatch/internal/ephemeris"
)

const defaultLanguage = "English"

// ErrMissingChart is returned when a subject has no computed chart
var ErrMissingChart = errors.New("subject has no chart")

// Mode selects the kind of reading requested
type Mode string

const (
	Natal         Mode = "natal"
	Compatibility Mode = "compatibility"
)

// Subject is one person whose chart is read
type Subject struct {
	Name      string
	BirthDate string
	BirthTime string
	Place     string
	Chart     *ephemeris.Result
}

// Input is everything a prompt is built from. Partner is optional; when
// present the reading compares both charts.
type Input struct {
	Self     Subject
	Partner  *Subject
	Focus    string
	Question string
	Language string
}

// Mode reports which reading the input asks for
func (in Input) Mode() Mode {
	if in.Partner != nil {
		return Compatibility
	}
	return Natal
}

// Prompt is a system/user message pair
type Prompt struct {
	System string
	User   string
}

const systemTemplate = `You are an experienced, warm and grounded astrologer writing a personal {{if eq .Mode "compatibility"}}compatibility (synastry) reading for two people{{else}}natal chart reading{{end}}.
Base every statement on the chart data you are given; do not invent placements.
Write in {{.Language}}.
Format the answer as Markdown: a single "#" title, "##" section headings, short paragraphs and "-" bullet lists. Do not use tables, images or code blocks.`

const userTemplate = `{{define "chart" -}}
### {{.Name}}
- Born: {{.BirthDate}} at {{.BirthTime}}{{if .Place}} in {{.Place}}{{end}}
- Time zone: {{.Timezone}}
- Ascendant: {{.Ascendant}}
- House system: {{.HouseSystem}}
{{- range .Bodies}}
- {{.Name}}: {{.Placement}}, house {{.House}}
{{- end}}
{{- end -}}

{{if eq .Mode "compatibility" -}}
Please write a compatibility reading for {{.Self.Name}} and {{.Partner.Name}}.
{{- else -}}
Please write a natal chart reading for {{.Self.Name}}.
{{- end}}

## Chart data

{{template "chart" .Self}}
{{- if .Partner}}

{{template "chart" .Partner}}
{{- end}}
{{- if .Focus}}

## Focus
{{.Focus}}
{{- end}}
{{- if .Question}}

## Question
{{.Question}}
{{- end}}

## Structure
{{if eq .Mode "compatibility" -}}
- Overview of the connection
- Emotional bond (Moon and Venus contacts)
- Communication (Mercury)
- Attraction and tension (Mars and Venus)
- Long-term potential (Saturn and the 7th house)
- Advice for both partners
{{- else -}}
- Core identity (Sun, Moon and Ascendant)
- Mind and communication (Mercury)
- Love and relationships (Venus and Mars)
- Growth and challenges (Jupiter and Saturn)
- Generational themes (Uranus, Neptune and Pluto)
- Summary
{{- end}}
{{- if .Question}}
- A direct answer to the question above
{{- end}}
`

var (
	systemTmpl = template.Must(template.New("system").Parse(systemTemplate))
	userTmpl   = template.Must(template.New("user").Parse(userTemplate))
)

type bodyView struct {
	Name      string
	Placement string
	House     int
}

type chartView struct {
	Name        string
	BirthDate   string
	BirthTime   string
	Place       string
	Timezone    string
	Ascendant   string
	HouseSystem string
	Bodies      []bodyView
}

type promptView struct {
	Mode     Mode
	Language string
	Focus    string
	Question string
	Self     chartView
	Partner  *chartView
}

// Build renders the system and user messages for in
func Build(in Input) (Prompt, error) {
	view := promptView{
		Mode:     in.Mode(),
		Language: strings.TrimSpace(in.Language),
		Focus:    strings.TrimSpace(in.Focus),
		Question: strings.TrimSpace(in.Question),
	}
	if view.Language == "" {
		view.Language = defaultLanguage
	}

	self, err := newChartView(in.Self, "You")
	if err != nil {
		return Prompt{}, err
	}
	view.Self = self

	if in.Partner != nil {
		partner, err := newChartView(*in.Partner, "Partner")
		if err != nil {
			return Prompt{}, err
		}
		view.Partner = &partner
	}

	system, err := execute(systemTmpl, view)
	if err != nil {
		return Prompt{}, err
	}
	user, err := execute(userTmpl, view)
	if err != nil {
		return Prompt{}, err
	}

	return Prompt{System: system, User: user}, nil
}

func newChartView(s Subject, fallbackName string) (chartView, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		name = fallbackName
	}
	if s.Chart == nil {
		return chartView{}, fmt.Errorf("%w: %s", ErrMissingChart, name)
	}

	bodies := make([]bodyView, 0, ephemeris.NumBodies)
	for _, b := range ephemeris.Bodies() {
		bodies = append(bodies, bodyView{
			Name:      b.String(),
			Placement: s.Chart.Placement(b).String(),
			House:     s.Chart.House(b),
		})
	}

	return chartView{
		Name:        name,
		BirthDate:   s.BirthDate,
		BirthTime:   s.BirthTime,
		Place:       strings.TrimSpace(s.Place),
		Timezone:    s.Chart.Timezone,
		Ascendant:   ephemeris.PlacementOf(s.Chart.Ascendant).String(),
		HouseSystem: string(s.Chart.HouseSystem),
		Bodies:      bodies,
	}, nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", tmpl.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
