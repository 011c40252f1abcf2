// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultDraftTTL is how long an untouched draft survives before the
// registry drops it. Matches a voter stepping away mid-ranking.
const DefaultDraftTTL = 30 * time.Minute

// Drafts holds in-progress rankings keyed by voter identity and house.
// Drafts are transient: they expire after the TTL and are discarded on
// submission or an explicit clear.
type Drafts struct {
	cache *gocache.Cache
}

// NewDrafts creates a registry whose entries expire after ttl.
func NewDrafts(ttl time.Duration) *Drafts {
	return &Drafts{cache: gocache.New(ttl, 2*ttl)}
}

func draftKey(email string, house int) string {
	return fmt.Sprintf("%s|%d", email, house)
}

// Get returns the draft for a voter and house, creating an empty one of the
// given size if none exists. Each access refreshes the TTL.
func (r *Drafts) Get(email string, house, size int) *Draft {
	key := draftKey(email, house)
	if v, ok := r.cache.Get(key); ok {
		d := v.(*Draft)
		r.cache.SetDefault(key, d)
		return d
	}
	d := NewDraft(size)
	r.cache.SetDefault(key, d)
	return d
}

// Discard drops a voter's draft for a house, if any.
func (r *Drafts) Discard(email string, house int) {
	r.cache.Delete(draftKey(email, house))
}
