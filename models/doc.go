// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines input records, derived values, and API types.

# Input Records

Records ingested from the roll-call and census feeds:

  - VoteRecord: {"results":{"votes":{"vote":{...}}}} envelope
  - Vote: chamber, roll_call, question, vote_type, result, bill, total, positions
  - Tally: yes, no, present, not_voting (pointers, so missing != zero)
  - PopulationRecord: jurisdiction code or member id → population

# Derived Types

Recomputed on every request, never stored:

  - VoteTotals: chamber tally
  - PopulationVoteTotals: yes, no, neutral population sums
  - Summary: outcome (pass|fail), popular, aligned
  - VoteSummary: everything a figure needs

# Response Types

  - CreateVoteResponse: vote_id
  - PopulationResponse: name, population
  - PreferenceResponse: overlay
  - SummaryResponse: vote_id, summary, datasets
  - ErrorResponse: error, message

# Constants

Outcomes:

	OutcomePass = "pass"
	OutcomeFail = "fail"

Chart views:

	ChartVote       = "vote"
	ChartPopulation = "population"
	ChartOverlay    = "overlay"
*/
package models
