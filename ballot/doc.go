// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot implements in-progress draft rankings.

# Drafts

A Draft is a fixed-length list of slots, one per possible rank. Selecting a
candidate fills the first empty slot; selecting again clears their slot,
leaving a hole the next selection fills:

	d := ballot.NewDraft(4)
	d.Select("Isha Singh")   // slot 0
	d.Select("Neha Sharma")  // slot 1
	d.Select("Isha Singh")   // slot 0 cleared
	d.Select("Nitya Jain")   // takes slot 0

Move repositions one slot, shifting the slots in between:

	d.Move(2, 0) // third choice becomes first

Out-of-range positions are ignored. A candidate never occupies two slots,
and the relative order of untouched candidates survives every operation.

OrderedPreferences returns the non-empty slots top to bottom; that list is
what gets persisted on submission.

# Registry

Drafts holds one draft per (voter, house) with a sliding expiry:

	drafts := ballot.NewDrafts(ballot.DefaultDraftTTL)
	d := drafts.Get("s@adypu.edu.in", 2, 4)
	drafts.Discard("s@adypu.edu.in", 2)

Get creates an empty draft of the given size on first access and refreshes
the expiry on every access. Untouched drafts disappear after 30 minutes.
*/
package ballot
