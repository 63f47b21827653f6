package models

// Outcome constants
const (
	OutcomePass = "pass"
	OutcomeFail = "fail"
)

// Vote position constants as published in roll-call records
const (
	PositionYes       = "Yes"
	PositionNo        = "No"
	PositionPresent   = "Present"
	PositionNotVoting = "Not Voting"
	PositionGuilty    = "Guilty"
	PositionNotGuilty = "Not Guilty"
)

// Chart view constants
const (
	ChartVote       = "vote"
	ChartPopulation = "population"
	ChartOverlay    = "overlay"
)

// PreferenceOverlay is the preference key for the overlay toggle.
const PreferenceOverlay = "overlay"

// Vote record types

// VoteRecord mirrors the roll-call payload: {"results":{"votes":{"vote":{...}}}}
type VoteRecord struct {
	Results VoteResults `json:"results"`
}

type VoteResults struct {
	Votes VoteEnvelope `json:"votes"`
}

type VoteEnvelope struct {
	Vote Vote `json:"vote"`
}

type Vote struct {
	Chamber     string     `json:"chamber"`
	Congress    int        `json:"congress,omitempty"`
	Session     int        `json:"session,omitempty"`
	RollCall    int        `json:"roll_call"`
	Question    string     `json:"question"`
	Description string     `json:"description"`
	VoteType    string     `json:"vote_type"`
	Result      string     `json:"result"`
	Date        string     `json:"date,omitempty"`
	Bill        *Bill      `json:"bill,omitempty"`
	Total       *Tally     `json:"total"`
	Positions   []Position `json:"positions,omitempty"`
}

type Bill struct {
	BillID string `json:"bill_id,omitempty"`
	Number string `json:"number"`
	Title  string `json:"title"`
}

// Tally fields are pointers so a missing field can be told apart from zero.
type Tally struct {
	Yes       *int `json:"yes"`
	No        *int `json:"no"`
	Present   *int `json:"present"`
	NotVoting *int `json:"not_voting"`
}

type Position struct {
	MemberID     string `json:"member_id"`
	Name         string `json:"name,omitempty"`
	Party        string `json:"party,omitempty"`
	State        string `json:"state"`
	VotePosition string `json:"vote_position"`
}

// PopulationRecord maps a jurisdiction code or member id to a population figure.
type PopulationRecord map[string]int64

// Derived types

type VoteTotals struct {
	Yes       int `json:"yes"`
	No        int `json:"no"`
	Present   int `json:"present"`
	NotVoting int `json:"not_voting"`
}

// Abstain folds present and not-voting into one chart category.
func (t VoteTotals) Abstain() int {
	return t.Present + t.NotVoting
}

type PopulationVoteTotals struct {
	Yes     int64 `json:"yes"`
	No      int64 `json:"no"`
	Neutral int64 `json:"neutral"`
}

type Summary struct {
	Outcome string `json:"outcome"`
	Popular bool   `json:"popular"`
	Aligned bool   `json:"aligned"`
}

type VoteSummary struct {
	Title       string               `json:"title"`
	Number      string               `json:"number"`
	Chamber     string               `json:"chamber"`
	VoteType    string               `json:"vote_type"`
	Result      string               `json:"result"`
	Totals      VoteTotals           `json:"totals"`
	Population  PopulationVoteTotals `json:"population"`
	PassPercent int                  `json:"pass_percent"`
	Summary     Summary              `json:"summary"`
}

// Request types

type SetPreferenceRequest struct {
	Overlay *bool `json:"overlay"`
}

// Response types

type CreateVoteResponse struct {
	VoteID string `json:"vote_id"`
}

type PopulationResponse struct {
	Name       string           `json:"name"`
	Population PopulationRecord `json:"population"`
}

type PreferenceResponse struct {
	Overlay bool `json:"overlay"`
}

type ChartSegment struct {
	Label   string `json:"label"`
	Value   int64  `json:"value"`
	Tooltip string `json:"tooltip"`
}

type ChartDataset struct {
	Name     string         `json:"name"`
	Labels   []string       `json:"labels"`
	Segments []ChartSegment `json:"segments"`
}

type SummaryResponse struct {
	VoteID   string         `json:"vote_id"`
	Summary  VoteSummary    `json:"summary"`
	Datasets []ChartDataset `json:"datasets"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
