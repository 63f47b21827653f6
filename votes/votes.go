// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/danielhkuo/popvote/models"
)

var (
	ErrInvalidVote       = errors.New("invalid vote record")
	ErrInvalidPopulation = errors.New("invalid population record")
)

// Chart category labels, in legend order
const (
	LabelYes     = "Yes"
	LabelNo      = "No"
	LabelAbstain = "Abstain"
)

// DefaultPassFraction applies when vote_type carries no N/D fraction
const DefaultPassFraction = 0.5

var fractionPattern = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)

// Breakdown is a three-way split of one chart dataset
type Breakdown struct {
	Yes     int64
	No      int64
	Abstain int64
}

// Category is one non-empty slice of a Breakdown
type Category struct {
	Label string
	Value int64
}

// VoteBreakdown folds present and not-voting into Abstain
func VoteBreakdown(t models.VoteTotals) Breakdown {
	return Breakdown{Yes: int64(t.Yes), No: int64(t.No), Abstain: int64(t.Abstain())}
}

// PopulationBreakdown maps neutral population onto Abstain
func PopulationBreakdown(p models.PopulationVoteTotals) Breakdown {
	return Breakdown{Yes: p.Yes, No: p.No, Abstain: p.Neutral}
}

// Categories returns the non-zero categories in Yes, No, Abstain order
func (b Breakdown) Categories() []Category {
	var cats []Category
	if b.Yes > 0 {
		cats = append(cats, Category{Label: LabelYes, Value: b.Yes})
	}
	if b.No > 0 {
		cats = append(cats, Category{Label: LabelNo, Value: b.No})
	}
	if b.Abstain > 0 {
		cats = append(cats, Category{Label: LabelAbstain, Value: b.Abstain})
	}
	return cats
}

// Labels returns legend labels; zero-valued categories are omitted
func (b Breakdown) Labels() []string {
	labels := []string{}
	for _, c := range b.Categories() {
		labels = append(labels, c.Label)
	}
	return labels
}

// Total sums every category
func (b Breakdown) Total() int64 {
	return b.Yes + b.No + b.Abstain
}

// Validate checks a vote record at the boundary and reports every problem found
func Validate(rec models.VoteRecord) error {
	v := rec.Results.Votes.Vote
	var errs error

	if v.Total == nil {
		errs = multierr.Append(errs, errors.New("total is required"))
	} else {
		for _, f := range []struct {
			name  string
			value *int
		}{
			{"yes", v.Total.Yes},
			{"no", v.Total.No},
			{"present", v.Total.Present},
			{"not_voting", v.Total.NotVoting},
		} {
			if f.value == nil {
				errs = multierr.Append(errs, fmt.Errorf("total.%s is required", f.name))
			} else if *f.value < 0 {
				errs = multierr.Append(errs, fmt.Errorf("total.%s must not be negative (got %d)", f.name, *f.value))
			}
		}
	}

	if strings.TrimSpace(v.Result) == "" {
		errs = multierr.Append(errs, errors.New("result is required"))
	}

	if _, err := parseFraction(v.VoteType); err != nil {
		errs = multierr.Append(errs, err)
	}

	for i, p := range v.Positions {
		if strings.TrimSpace(p.VotePosition) == "" {
			errs = multierr.Append(errs, fmt.Errorf("positions[%d].vote_position is required", i))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVote, errs)
	}
	return nil
}

// ValidatePopulation rejects empty keys and negative figures
func ValidatePopulation(pop models.PopulationRecord) error {
	var errs error
	for key, n := range pop {
		if strings.TrimSpace(key) == "" {
			errs = multierr.Append(errs, errors.New("population key must not be empty"))
		}
		if n < 0 {
			errs = multierr.Append(errs, fmt.Errorf("population[%s] must not be negative (got %d)", key, n))
		}
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPopulation, errs)
	}
	return nil
}

// Totals reads the chamber tally. Call Validate first.
func Totals(rec models.VoteRecord) models.VoteTotals {
	t := rec.Results.Votes.Vote.Total
	if t == nil {
		return models.VoteTotals{}
	}
	return models.VoteTotals{
		Yes:       deref(t.Yes),
		No:        deref(t.No),
		Present:   deref(t.Present),
		NotVoting: deref(t.NotVoting),
	}
}

// PopulationTotals re-sums the vote by represented population.
// A member id entry takes precedence; otherwise the jurisdiction's population
// is split evenly across that jurisdiction's positions in this vote.
func PopulationTotals(rec models.VoteRecord, pop models.PopulationRecord) models.PopulationVoteTotals {
	positions := rec.Results.Votes.Vote.Positions

	seats := make(map[string]int64)
	for _, p := range positions {
		if _, ok := pop[p.MemberID]; ok && p.MemberID != "" {
			continue
		}
		seats[p.State]++
	}

	var totals models.PopulationVoteTotals
	seen := make(map[string]int64)
	for _, p := range positions {
		var share int64
		if n, ok := pop[p.MemberID]; ok && p.MemberID != "" {
			share = n
		} else if n, ok := pop[p.State]; ok && p.State != "" {
			// Spread the remainder over the first members so shares sum exactly
			count := seats[p.State]
			share = n / count
			if seen[p.State] < n%count {
				share++
			}
			seen[p.State]++
		} else {
			slog.Debug("no population for position", "member_id", p.MemberID, "state", p.State)
			continue
		}

		switch normalizePosition(p.VotePosition) {
		case models.PositionYes:
			totals.Yes += share
		case models.PositionNo:
			totals.No += share
		default:
			totals.Neutral += share
		}
	}

	return totals
}

// PassFraction returns the fraction of votes required to pass
func PassFraction(rec models.VoteRecord) float64 {
	f, err := parseFraction(rec.Results.Votes.Vote.VoteType)
	if err != nil {
		return DefaultPassFraction
	}
	return f
}

// PassPercentage rounds the pass fraction to a whole percentage in [0, 100]
func PassPercentage(rec models.VoteRecord) int {
	pct := int(math.Round(100 * PassFraction(rec)))
	return max(0, min(100, pct))
}

// IsResultSuccessful classifies a chamber result string
func IsResultSuccessful(result string) bool {
	r := strings.ToLower(result)
	for _, word := range []string{"rejected", "failed", "not sustained", "defeated", "not agreed"} {
		if strings.Contains(r, word) {
			return false
		}
	}
	for _, word := range []string{"passed", "agreed", "confirmed", "sustained", "adopted", "ratified"} {
		if strings.Contains(r, word) {
			return true
		}
	}
	return false
}

// IsPopular reports a strict population majority for yes; a tie is not popular
func IsPopular(pop models.PopulationVoteTotals) bool {
	return pop.Yes > pop.No
}

// TitleAndNumber picks the display title and number for a vote
func TitleAndNumber(rec models.VoteRecord) (title, number string) {
	v := rec.Results.Votes.Vote

	if v.Bill != nil && v.Bill.Number != "" {
		number = v.Bill.Number
	} else {
		number = "Roll Call " + strconv.Itoa(v.RollCall)
	}

	switch {
	case v.Bill != nil && v.Bill.Title != "":
		title = v.Bill.Title
	case v.Description != "":
		title = v.Description
	default:
		title = v.Question
	}

	return title, number
}

// Summarize validates both records and derives everything a figure needs
func Summarize(rec models.VoteRecord, pop models.PopulationRecord) (models.VoteSummary, error) {
	if err := Validate(rec); err != nil {
		return models.VoteSummary{}, err
	}
	if err := ValidatePopulation(pop); err != nil {
		return models.VoteSummary{}, err
	}

	v := rec.Results.Votes.Vote
	title, number := TitleAndNumber(rec)
	popTotals := PopulationTotals(rec, pop)
	passed := IsResultSuccessful(v.Result)

	outcome := models.OutcomeFail
	if passed {
		outcome = models.OutcomePass
	}

	return models.VoteSummary{
		Title:       title,
		Number:      number,
		Chamber:     v.Chamber,
		VoteType:    v.VoteType,
		Result:      v.Result,
		Totals:      Totals(rec),
		Population:  popTotals,
		PassPercent: PassPercentage(rec),
		Summary: models.Summary{
			Outcome: outcome,
			Popular: IsPopular(popTotals),
			Aligned: (passed && popTotals.Yes > popTotals.No) || (!passed && popTotals.No > popTotals.Yes),
		},
	}, nil
}

// parseFraction extracts N/D from a vote type; no fraction means simple majority
func parseFraction(voteType string) (float64, error) {
	m := fractionPattern.FindStringSubmatch(voteType)
	if m == nil {
		return DefaultPassFraction, nil
	}
	num, numErr := strconv.Atoi(m[1])
	den, denErr := strconv.Atoi(m[2])
	if numErr != nil || denErr != nil || den == 0 || num == 0 || num > den {
		return 0, fmt.Errorf("vote_type %q must be a fraction in (0, 1]", voteType)
	}
	return float64(num) / float64(den), nil
}

func normalizePosition(position string) string {
	switch strings.ToLower(strings.TrimSpace(position)) {
	case "yes", "yea", "aye", "guilty":
		return models.PositionYes
	case "no", "nay", "not guilty":
		return models.PositionNo
	default:
		return position
	}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
