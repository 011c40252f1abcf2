// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SelectCandidateRequest: candidate
  - MoveSlotRequest: from, to

# Response Types

Types for JSON responses:

  - HouseResponse: number, candidates
  - DraftResponse: house_number, slots, preferences
  - SubmitVoteResponse: vote_id, message
  - SessionResponse: email, authorized
  - MeResponse: email, authorized, has_voted, house_number
  - AdminVotesResponse: total, by_house, votes
  - ErrorResponse: error, message

# Domain Types

  - Vote: one submitted ballot (id, voter email, house, ranked preferences,
    submission time)
*/
package models
