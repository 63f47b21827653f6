// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package figure

import (
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/popvote/chart"
	"github.com/danielhkuo/popvote/models"
	"github.com/danielhkuo/popvote/votes"
)

// State is the view state of a figure
type State int

const (
	Loading State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "loading"
}

// DefaultChamber labels the vote chart when the record names no chamber
const DefaultChamber = "Senate"

// Canvas is one rendered chart slot in the view
type Canvas struct {
	Name     string
	Label    string
	SVG      template.HTML
	Drawn    bool
	Fallback []string
	Caption  string
}

// Pill is a coloured status badge
type Pill struct {
	Type string // "success" or "failure"
	Text string
}

// TallyRow is one line of the optional tally table
type TallyRow struct {
	Label      string
	Votes      string
	Population string
}

// View is everything the template needs to render a figure
type View struct {
	ID        string
	State     State
	Overlay   bool
	Title     string
	Number    string
	VoteType  string
	Outcome   Pill
	Popular   Pill
	Canvases  []Canvas
	ShowTable bool
	Table     []TallyRow
	ToggleURL string
}

// Loading reports whether only the loading indicator should render
func (v View) Loading() bool {
	return v.State == Loading
}

// Option configures a Presenter
type Option func(*Presenter)

func WithChamber(chamber string) Option {
	return func(p *Presenter) {
		if chamber != "" {
			p.chamber = chamber
		}
	}
}

func WithPalette(palette chart.Palette) Option {
	return func(p *Presenter) { p.palette = palette }
}

func WithTable(show bool) Option {
	return func(p *Presenter) { p.showTable = show }
}

func WithToggleURL(url string) Option {
	return func(p *Presenter) { p.toggleURL = url }
}

// Presenter turns a vote summary into a figure view. It starts Loading and
// draws nothing until Ready supplies the overlay preference.
type Presenter struct {
	id        string
	summary   models.VoteSummary
	chamber   string
	palette   chart.Palette
	showTable bool
	toggleURL string

	state   State
	overlay bool

	vote       *chart.Canvas
	population *chart.Canvas
	combined   *chart.Canvas
}

func NewPresenter(id string, summary models.VoteSummary, r chart.Renderer, opts ...Option) *Presenter {
	p := &Presenter{
		id:      id,
		summary: summary,
		chamber: DefaultChamber,
		palette: chart.DefaultPalette,
		state:   Loading,
	}
	if summary.Chamber != "" {
		p.chamber = summary.Chamber
	}
	for _, opt := range opts {
		opt(p)
	}

	p.vote = chart.NewCanvas(models.ChartVote, p.voteLabel(), r)
	p.population = chart.NewCanvas(models.ChartPopulation, "Represented Population Vote", r)
	p.combined = chart.NewCanvas(models.ChartOverlay, p.voteLabel()+" Overlaid with Population Vote", r)
	return p
}

// State returns the current view state
func (p *Presenter) State() State {
	return p.state
}

// Overlay returns the current overlay setting
func (p *Presenter) Overlay() bool {
	return p.overlay
}

// Ready moves Loading → Ready with the visitor's overlay preference and draws
func (p *Presenter) Ready(overlay bool) {
	p.state = Ready
	p.overlay = overlay
	p.redraw()
}

// SetOverlay switches views; visible charts are replaced, hidden ones released
func (p *Presenter) SetOverlay(overlay bool) {
	p.overlay = overlay
	if p.state == Ready {
		p.redraw()
	}
}

// Canvas returns the chart canvas for a chart name, or nil
func (p *Presenter) Canvas(name string) *chart.Canvas {
	switch name {
	case models.ChartVote:
		return p.vote
	case models.ChartPopulation:
		return p.population
	case models.ChartOverlay:
		return p.combined
	}
	return nil
}

func (p *Presenter) redraw() {
	if p.overlay {
		p.vote.Release()
		p.population.Release()
		p.draw(p.combined)
		return
	}
	p.combined.Release()
	p.draw(p.vote)
	p.draw(p.population)
}

// draw fills one canvas; on failure the view shows its fallback prose
func (p *Presenter) draw(c *chart.Canvas) {
	if _, err := c.Draw(p.Spec(c.Name)); err != nil {
		slog.Debug("chart not drawn, using fallback", "figure", p.id, "canvas", c.Name, "error", err)
	}
}

// Datasets returns the chamber vote and population rings
func (p *Presenter) Datasets() (vote, population chart.Dataset) {
	vote = chart.NewDataset(p.voteLabel(), votes.VoteBreakdown(p.summary.Totals), p.palette)
	population = chart.NewDataset("Population Represented", votes.PopulationBreakdown(p.summary.Population), p.palette)
	return vote, population
}

// Spec builds the chart spec for one of the three chart names
func (p *Presenter) Spec(name string) chart.Spec {
	vote, population := p.Datasets()
	switch name {
	case models.ChartPopulation:
		return chart.Spec{
			Kind:        chart.Pie,
			Title:       p.population.Label,
			Description: strings.Join(p.Fallback(name), " "),
			Datasets:    []chart.Dataset{population},
		}
	case models.ChartOverlay:
		return chart.Spec{
			Kind:        chart.Doughnut,
			Title:       p.combined.Label,
			Description: strings.Join(p.Fallback(name), " "),
			Datasets:    []chart.Dataset{population, vote},
		}
	default:
		return chart.Spec{
			Kind:        chart.Pie,
			Title:       p.vote.Label,
			Description: strings.Join(p.Fallback(models.ChartVote), " "),
			Datasets:    []chart.Dataset{vote},
		}
	}
}

// Fallback is the prose substitute for a chart, one paragraph per entry
func (p *Presenter) Fallback(name string) []string {
	pass := fmt.Sprintf("%d%% required to pass.", p.summary.PassPercent)
	switch name {
	case models.ChartPopulation:
		return []string{p.populationProse() + " " + pass}
	case models.ChartOverlay:
		return []string{p.voteProse(), p.populationProse(), pass}
	default:
		return []string{p.voteProse() + " " + pass}
	}
}

// Caption is the visible figure caption for a chart
func (p *Presenter) Caption(name string) string {
	switch name {
	case models.ChartPopulation:
		return "Population Represented"
	case models.ChartOverlay:
		return fmt.Sprintf("Inner: %s Vote. Outer: Population Represented. %d%% required to pass.", p.chamber, p.summary.PassPercent)
	default:
		return fmt.Sprintf("%s Vote. %d%% required to pass.", p.chamber, p.summary.PassPercent)
	}
}

// View snapshots the presenter for rendering
func (p *Presenter) View() View {
	passed := p.summary.Summary.Outcome == models.OutcomePass
	v := View{
		ID:        p.id,
		State:     p.state,
		Overlay:   p.overlay,
		Title:     p.summary.Title,
		Number:    p.summary.Number,
		VoteType:  p.summary.VoteType,
		Outcome:   pill(passed, "Pass", "Fail"),
		Popular:   pill(p.summary.Summary.Popular, "Popular Outcome", "Unpopular Outcome"),
		ShowTable: p.showTable,
		ToggleURL: p.toggleURL,
	}

	if p.state == Loading {
		return v
	}

	names := []string{models.ChartVote, models.ChartPopulation}
	if p.overlay {
		names = []string{models.ChartOverlay}
	}
	for _, name := range names {
		c := p.Canvas(name)
		cv := Canvas{
			Name:     name,
			Label:    c.Label,
			Fallback: p.Fallback(name),
			Caption:  p.Caption(name),
		}
		if inst := c.Current(); inst != nil {
			cv.SVG = template.HTML(inst.SVG)
			cv.Drawn = true
		}
		v.Canvases = append(v.Canvases, cv)
	}

	if p.showTable {
		t := p.summary.Totals
		pop := p.summary.Population
		v.Table = []TallyRow{
			{Label: votes.LabelYes, Votes: humanize.Comma(int64(t.Yes)), Population: humanize.Comma(pop.Yes)},
			{Label: votes.LabelNo, Votes: humanize.Comma(int64(t.No)), Population: humanize.Comma(pop.No)},
			{Label: "Present", Votes: humanize.Comma(int64(t.Present)), Population: "–"},
			{Label: "Not Voting", Votes: humanize.Comma(int64(t.NotVoting)), Population: "–"},
			{Label: "Present or Not Voting", Votes: humanize.Comma(int64(t.Abstain())), Population: humanize.Comma(pop.Neutral)},
		}
	}

	return v
}

func (p *Presenter) voteLabel() string {
	return p.chamber + " Vote"
}

func (p *Presenter) voteProse() string {
	t := p.summary.Totals
	return fmt.Sprintf("%s Yes votes, %s No votes, %s Present or Not Voting.",
		humanize.Comma(int64(t.Yes)), humanize.Comma(int64(t.No)), humanize.Comma(int64(t.Abstain())))
}

func (p *Presenter) populationProse() string {
	pop := p.summary.Population
	return fmt.Sprintf("%s people represented by Yes votes, %s people represented by No votes, %s people represented by Present votes or no vote cast.",
		humanize.Comma(pop.Yes), humanize.Comma(pop.No), humanize.Comma(pop.Neutral))
}

func pill(ok bool, yes, no string) Pill {
	if ok {
		return Pill{Type: "success", Text: yes}
	}
	return Pill{Type: "failure", Text: no}
}
