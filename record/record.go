// Package record defines the input data model for proposal metadata.
// Records are pure data containers: validation checks required fields and
// basic formats locally, never against other records.
package record

import (
	"net/url"
	"strconv"
	"time"
)

// Author is a proposal author. The name is the join key; two records with
// identical name strings refer to the same author.
type Author struct {
	Name string `json:"name"`
}

// Post is a significant discussion post about a proposal. Posts are owned
// by exactly one proposal and have no identity of their own.
type Post struct {
	Date time.Time `json:"date"`
	URL  string    `json:"url,omitempty"`
}

// Resolution is the resolution of a proposal. At most one per proposal.
type Resolution struct {
	Date time.Time `json:"date,omitempty"`
	URL  string    `json:"url,omitempty"`
}

// Record is one structured proposal record as produced by the input
// collaborator. Relation fields carry raw proposal ids; resolution into
// graph references happens in the graph package.
type Record struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	Type          string      `json:"type"`
	Status        string      `json:"status"`
	Topic         string      `json:"topic,omitempty"`
	PythonVersion string      `json:"python_version,omitempty"`
	Created       time.Time   `json:"created"`
	DiscussionsTo string      `json:"discussions_to,omitempty"`
	URL           string      `json:"url"`
	Authors       []Author    `json:"authors,omitempty"`
	Posts         []Post      `json:"posts,omitempty"`
	Resolution    *Resolution `json:"resolution,omitempty"`
	Replaces      []int       `json:"replaces,omitempty"`
	SupersededBy  *int        `json:"superseded_by,omitempty"`
	Requires      []int       `json:"requires,omitempty"`
}

// Validate checks required fields and basic formats. index is the record's
// position in the input batch, reported when the id itself is unusable.
func (r *Record) Validate(index int) error {
	fail := func(field, reason string) error {
		return &MalformedRecordError{ID: r.ID, Index: index, Field: field, Reason: reason}
	}

	if r.ID <= 0 {
		return fail("id", "must be a positive integer")
	}
	if r.Title == "" {
		return fail("title", "required")
	}
	if r.Type == "" {
		return fail("type", "required")
	}
	if r.Status == "" {
		return fail("status", "required")
	}
	if r.URL == "" {
		return fail("url", "required")
	}
	if !validURL(r.URL) {
		return fail("url", "not a valid absolute URL")
	}
	if r.Created.IsZero() {
		return fail("created", "required")
	}

	for i, p := range r.Posts {
		if p.Date.IsZero() {
			return fail("posts", "post "+strconv.Itoa(i)+" has no date")
		}
		if p.URL != "" && !validURL(p.URL) {
			return fail("posts", "post "+strconv.Itoa(i)+" has an invalid URL")
		}
	}
	if r.Resolution != nil && r.Resolution.URL != "" && !validURL(r.Resolution.URL) {
		return fail("resolution", "invalid URL")
	}

	return nil
}

// validURL accepts syntactically well-formed absolute URLs.
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
