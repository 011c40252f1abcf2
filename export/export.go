// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export renders the admin CSV snapshot of all ballots. Every field
// is quoted, matching what the existing downstream spreadsheets expect.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/evm-adypu/election-server/models"
	"github.com/evm-adypu/election-server/roster"
)

var header = []string{"Email", "House", "Rank 1", "Rank 2", "Rank 3", "Rank 4", "Rank 5", "Rank 6", "Submitted At"}

// Filename returns the dated attachment name for a CSV export.
func Filename(now time.Time) string {
	return fmt.Sprintf("hostel_election_votes_%s.csv", now.Format("2006-01-02"))
}

// Write renders votes as CSV: one header row, then one row per ballot with
// exactly 2 + MaxRanks + 1 quoted fields. Ranks beyond a ballot's length are
// empty strings.
func Write(w io.Writer, votes []models.Vote) error {
	rows := make([][]string, 0, len(votes)+1)
	rows = append(rows, header)
	for _, v := range votes {
		rows = append(rows, row(v))
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		quoted := make([]string, len(r))
		for j, field := range r {
			quoted[j] = quote(field)
		}
		lines[i] = strings.Join(quoted, ",")
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func row(v models.Vote) []string {
	r := make([]string, 0, len(header))
	r = append(r, v.UserEmail, strconv.Itoa(v.HouseNumber))
	for i := 0; i < roster.MaxRanks; i++ {
		if i < len(v.Preferences) {
			r = append(r, v.Preferences[i])
		} else {
			r = append(r, "")
		}
	}
	r = append(r, v.CreatedAt.Format("2006-01-02 15:04:05"))
	return r
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
