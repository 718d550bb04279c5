package models

import "sort"

// Ledger maps participant IDs to the number of queues they joined
type Ledger map[string]int

// Rankings holds one ledger per activity category
type Rankings map[ActivityCategory]Ledger

// RankingEntry is one line of a ranking
type RankingEntry struct {
	// ParticipantID is the Discord user ID
	ParticipantID string

	// Count is the number of successful joins
	Count int

	// Position is the 1-based place in the ranking
	Position int
}

// Increment bumps the participant's counter for the category and returns the new value
func (r Rankings) Increment(category ActivityCategory, participantID string) int {
	ledger, ok := r[category]
	if !ok {
		ledger = Ledger{}
		r[category] = ledger
	}
	ledger[participantID]++
	return ledger[participantID]
}

// Count returns the participant's counter for the category
func (r Rankings) Count(category ActivityCategory, participantID string) int {
	return r[category][participantID]
}

// Top returns up to n entries ordered by count descending, ties by ID ascending.
// A non-positive n returns every entry.
func (r Rankings) Top(category ActivityCategory, n int) []RankingEntry {
	ledger := r[category]
	entries := make([]RankingEntry, 0, len(ledger))
	for id, count := range ledger {
		entries = append(entries, RankingEntry{ParticipantID: id, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].ParticipantID < entries[j].ParticipantID
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// Clone returns a deep copy of all ledgers
func (r Rankings) Clone() Rankings {
	c := make(Rankings, len(r))
	for category, ledger := range r {
		lc := make(Ledger, len(ledger))
		for id, count := range ledger {
			lc[id] = count
		}
		c[category] = lc
	}
	return c
}
