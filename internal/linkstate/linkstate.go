// Package linkstate implements the client-held linking record that travels
// between the two provider callbacks. The record is opaque to transport but
// structurally significant: it folds two independent OAuth round trips into
// one origin-platform / added-platform pair without any server-side session
// storage.
package linkstate

import (
	"encoding/json"
	"net/url"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

// ProfileSummary is the per-platform slice of a linking record.
type ProfileSummary struct {
	Platform   string `json:"provider"`
	ExternalID string `json:"externalId"`
	Username   string `json:"displayName"`
	AvatarURL  string `json:"avatarUrl"`
}

// Record is the client-held linking record. The JSON field names, including
// the misspellings, are the wire format deployed clients already parse.
type Record struct {
	Origin       *ProfileSummary `json:"orginPlatform,omitempty"`
	Added        *ProfileSummary `json:"addedPlatform,omitempty"`
	InitialSetup bool            `json:"_initalSetup"`
}

// State classifies a record into one of its three valid shapes.
type State int

const (
	StateEmpty State = iota
	StateOriginOnly
	StateOriginAndAdded
)

// State returns the record's current state. An Added without an Origin
// cannot be produced by Merge and is treated as empty.
func (r Record) State() State {
	switch {
	case r.Origin == nil:
		return StateEmpty
	case r.Added == nil:
		return StateOriginOnly
	default:
		return StateOriginAndAdded
	}
}

// FromProfile builds the summary recorded for a freshly resolved profile.
func FromProfile(p domain.Profile) ProfileSummary {
	return ProfileSummary{
		Platform:   p.Platform,
		ExternalID: p.ExternalID,
		Username:   p.Username,
		AvatarURL:  p.AvatarURL,
	}
}

// Merge produces the next linking record from the previous client-held one
// and a newly resolved profile. It is pure: prev is never mutated.
//
// Policy, in order:
//  1. no origin yet: the incoming profile becomes the origin
//  2. incoming external id differs from the origin's: it becomes (or
//     remains) the added platform; the origin is carried unchanged
//  3. incoming external id equals the origin's: both halves carry forward
//     unchanged, including a stale display name
//
// InitialSetup is reasserted on every call; it signals "a profile was
// resolved this round trip", not first-ever login.
func Merge(prev Record, incoming ProfileSummary) Record {
	next := Record{InitialSetup: true}

	switch {
	case prev.Origin == nil:
		in := incoming
		next.Origin = &in

	case prev.Origin.ExternalID != incoming.ExternalID:
		next.Origin = prev.Origin
		if prev.Added == nil || prev.Added.ExternalID != incoming.ExternalID {
			in := incoming
			next.Added = &in
		} else {
			next.Added = prev.Added
		}

	default:
		next.Origin = prev.Origin
		next.Added = prev.Added
	}

	return next
}

// Decode parses a raw client-held record. Any failure (bad URL escaping,
// malformed JSON, wrong types) yields the empty record: a corrupted cookie
// must never block login.
func Decode(raw string) Record {
	if raw == "" {
		return Record{}
	}
	unescaped, err := url.QueryUnescape(raw)
	if err != nil {
		return Record{}
	}
	var r Record
	if err := json.Unmarshal([]byte(unescaped), &r); err != nil {
		return Record{}
	}
	return r
}

// Encode serializes a record for the readable client cookie: URL-escaped
// JSON, reversible by Decode.
func Encode(r Record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(data)), nil
}
