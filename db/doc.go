// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.
The SQL works unchanged on both SQLite and PostgreSQL.

# Tables

The schema is a single table:

  - vote: One submitted ballot per voter

Columns:

  - id: Random UUID, primary key
  - user_email: Verified voter email, UNIQUE
  - house_number: House voted in, CHECK 1-4
  - preferences: JSON array of candidate names in rank order
  - created_at: Submission timestamp

# One Vote Per Voter

The UNIQUE constraint on user_email is the real duplicate-vote guard.
Handler-level checks give friendly errors, but two concurrent submissions
both pass those checks; only one survives the constraint.

# Indexes

	idx_vote_created_at on vote(created_at)

Admin listings and exports read newest-first.
*/
package db
