// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votes derives chart-ready summaries from a roll-call vote and a
population record.

# Summaries

Summarize validates both inputs, then computes every derived value:

	summary, err := votes.Summarize(record, population)

Invalid input wraps ErrInvalidVote or ErrInvalidPopulation. Every problem
is listed in the message.

# Population Weighting

Each position carries the population of its member id when the record has
one. Otherwise the jurisdiction's population is split evenly among that
jurisdiction's positions in the vote. Positions with no population entry
contribute nothing.

# Popularity

A vote is popular when the population behind Yes strictly exceeds the
population behind No. A tie is unpopular.

# Labels

Breakdown.Labels returns Yes, No, Abstain in that order, skipping zero
categories:

	votes.VoteBreakdown(totals).Labels() // ["Yes", "Abstain"]
*/
package votes
