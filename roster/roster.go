// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package roster holds the fixed house and candidate lists for this election.
package roster

// MaxRanks is the widest ballot any house can produce. House 1 carries six
// candidates, so exports always reserve six rank columns.
const MaxRanks = 6

// candidatesByHouse is fixed at deploy time. Candidate order here is the
// display order, not a ranking.
var candidatesByHouse = map[int][]string{
	1: {"Ayush Shukla", "Sanket Jha", "Abhijeet", "Atharv Paharia", "Gopi Raman Thakur", "Shubh Arya"},
	2: {"Ankit Singh", "Ashu Choudhary", "Pushkar Sharma", "Siddharth Pareek"},
	3: {"Devansh Saini", "Divyansh Choudhary"},
	4: {"Giddalur Jaya Geethika", "Isha Singh", "Neha Sharma", "Nitya Jain"},
}

// Houses returns the house numbers in ascending order.
func Houses() []int {
	return []int{1, 2, 3, 4}
}

// IsValidHouse reports whether a house number exists in the roster.
func IsValidHouse(house int) bool {
	_, ok := candidatesByHouse[house]
	return ok
}

// Candidates returns a copy of the candidate list for a house, or nil for an
// unknown house.
func Candidates(house int) []string {
	names, ok := candidatesByHouse[house]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// HasCandidate reports whether name is on the ballot for the given house.
func HasCandidate(house int, name string) bool {
	for _, c := range candidatesByHouse[house] {
		if c == name {
			return true
		}
	}
	return false
}
