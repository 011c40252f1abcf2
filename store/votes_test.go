// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/evm-adypu/election-server/models"
	"github.com/evm-adypu/election-server/testutil"
)

func vote(email string, house int, prefs []string, at time.Time) models.Vote {
	return models.Vote{
		ID:          uuid.NewString(),
		UserEmail:   email,
		HouseNumber: house,
		Preferences: prefs,
		CreatedAt:   at,
	}
}

func TestInsertAndHasVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := NewVoteStore(db)

	has, err := s.HasVote("voter@adypu.edu.in")
	if err != nil {
		t.Fatalf("HasVote failed: %v", err)
	}
	if has {
		t.Error("Expected no vote before insert")
	}

	err = s.InsertVote(vote("voter@adypu.edu.in", 3, []string{"Devansh Saini", "Divyansh Choudhary"}, time.Now()))
	if err != nil {
		t.Fatalf("InsertVote failed: %v", err)
	}

	has, err = s.HasVote("voter@adypu.edu.in")
	if err != nil {
		t.Fatalf("HasVote failed: %v", err)
	}
	if !has {
		t.Error("Expected vote after insert")
	}
}

func TestInsertVoteDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := NewVoteStore(db)

	if err := s.InsertVote(vote("voter@adypu.edu.in", 1, []string{"Ayush Shukla"}, time.Now())); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := s.InsertVote(vote("voter@adypu.edu.in", 2, []string{"Ankit Singh"}, time.Now()))
	if !errors.Is(err, ErrDuplicateVote) {
		t.Errorf("Expected ErrDuplicateVote, got %v", err)
	}

	// The losing insert must not have replaced the original ballot.
	v, err := s.FindVote("voter@adypu.edu.in")
	if err != nil {
		t.Fatalf("FindVote failed: %v", err)
	}
	if v.HouseNumber != 1 {
		t.Errorf("Original ballot was replaced: house %d", v.HouseNumber)
	}
}

func TestFindVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := NewVoteStore(db)

	_, err := s.FindVote("missing@adypu.edu.in")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}

	want := []string{"Divyansh Choudhary", "Devansh Saini"}
	if err := s.InsertVote(vote("voter@adypu.edu.in", 3, want, time.Now())); err != nil {
		t.Fatalf("InsertVote failed: %v", err)
	}

	v, err := s.FindVote("voter@adypu.edu.in")
	if err != nil {
		t.Fatalf("FindVote failed: %v", err)
	}
	if !reflect.DeepEqual(v.Preferences, want) {
		t.Errorf("Preferences order lost: expected %v, got %v", want, v.Preferences)
	}
}

func TestListVotesNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := NewVoteStore(db)

	base := time.Date(2025, 9, 14, 9, 0, 0, 0, time.UTC)
	testutil.SeedVote(t, db, "early@adypu.edu.in", 1, []string{"Ayush Shukla"}, base)
	testutil.SeedVote(t, db, "late@adypu.edu.in", 2, []string{"Ankit Singh"}, base.Add(2*time.Hour))
	testutil.SeedVote(t, db, "mid@adypu.edu.in", 3, []string{"Devansh Saini"}, base.Add(time.Hour))

	votes, err := s.ListVotes()
	if err != nil {
		t.Fatalf("ListVotes failed: %v", err)
	}

	gotOrder := []string{}
	for _, v := range votes {
		gotOrder = append(gotOrder, v.UserEmail)
	}
	wantOrder := []string{"late@adypu.edu.in", "mid@adypu.edu.in", "early@adypu.edu.in"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("Expected order %v, got %v", wantOrder, gotOrder)
	}
}

func TestCountByHouse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	s := NewVoteStore(db)

	now := time.Now()
	testutil.SeedVote(t, db, "a@adypu.edu.in", 1, []string{"Ayush Shukla"}, now)
	testutil.SeedVote(t, db, "b@adypu.edu.in", 1, []string{"Sanket Jha"}, now)
	testutil.SeedVote(t, db, "c@adypu.edu.in", 4, []string{"Isha Singh"}, now)

	total, byHouse, err := s.CountByHouse()
	if err != nil {
		t.Fatalf("CountByHouse failed: %v", err)
	}

	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	want := map[int]int{1: 2, 2: 0, 3: 0, 4: 1}
	if !reflect.DeepEqual(byHouse, want) {
		t.Errorf("Expected %v, got %v", want, byHouse)
	}
}
