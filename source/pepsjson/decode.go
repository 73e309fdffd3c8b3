// Package pepsjson decodes the peps.python.org JSON index into proposal
// records. The index is a map keyed by PEP number; several fields carry
// Sphinx RST markup (backtick hyperlinks) that is parsed into dates and
// URLs here so that downstream code only sees structured records.
package pepsjson

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/pepgraph/record"
)

// createdDateLayout matches the dd-MMM-yyyy dates used across the index.
const createdDateLayout = "02-Jan-2006"

var (
	// backtickHyperlinkRE matches Sphinx RST backtick hyperlinks of the
	// form `dd-MMM-yyyy <url>`__.
	backtickHyperlinkRE = regexp.MustCompile("`(\\d{2}-\\w{3}-\\d{4}) <([^>]+)>`__")

	// dateOnlyRE matches bare dd-MMM-yyyy dates.
	dateOnlyRE = regexp.MustCompile(`(\d{2}-\w{3}-\d{4})`)

	// urlRE matches standard URLs.
	urlRE = regexp.MustCompile(`^https?://\S+`)
)

// rawProposal mirrors one entry of the peps.json index.
type rawProposal struct {
	Number        int     `json:"number"`
	Title         string  `json:"title"`
	Authors       string  `json:"authors"`
	DiscussionsTo *string `json:"discussions_to"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	Topic         string  `json:"topic"`
	Created       *string `json:"created"`
	PythonVersion *string `json:"python_version"`
	PostHistory   *string `json:"post_history"`
	Resolution    *string `json:"resolution"`
	Requires      *string `json:"requires"`
	Replaces      *string `json:"replaces"`
	SupersededBy  *string `json:"superseded_by"`
	URL           string  `json:"url"`
}

// Decode parses a peps.json document into records ordered by ascending id.
// Structurally unparseable values (dates, id lists) are fatal and reported
// as MalformedRecordError.
func Decode(data []byte) ([]record.Record, error) {
	var index map[string]rawProposal
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parse peps index: %w", err)
	}

	keys := make([]string, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	records := make([]record.Record, 0, len(keys))
	for i, k := range keys {
		rec, err := toRecord(index[k], i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func toRecord(raw rawProposal, index int) (record.Record, error) {
	malformed := func(field, reason string) error {
		return &record.MalformedRecordError{ID: raw.Number, Index: index, Field: field, Reason: reason}
	}

	rec := record.Record{
		ID:     raw.Number,
		Title:  raw.Title,
		Type:   raw.Type,
		Status: raw.Status,
		Topic:  raw.Topic,
		URL:    raw.URL,
	}
	if raw.PythonVersion != nil {
		rec.PythonVersion = *raw.PythonVersion
	}
	if raw.DiscussionsTo != nil {
		rec.DiscussionsTo = *raw.DiscussionsTo
	}

	if raw.Created != nil && *raw.Created != "" {
		created, err := time.Parse(createdDateLayout, *raw.Created)
		if err != nil {
			return record.Record{}, malformed("created", "unparseable date "+strconv.Quote(*raw.Created))
		}
		rec.Created = created
	}

	for _, name := range splitList(raw.Authors) {
		rec.Authors = append(rec.Authors, record.Author{Name: name})
	}

	var err error
	if rec.Requires, err = parseIDList(raw.Requires); err != nil {
		return record.Record{}, malformed("requires", err.Error())
	}
	if rec.Replaces, err = parseIDList(raw.Replaces); err != nil {
		return record.Record{}, malformed("replaces", err.Error())
	}
	if raw.SupersededBy != nil && strings.TrimSpace(*raw.SupersededBy) != "" {
		id, convErr := strconv.Atoi(strings.TrimSpace(*raw.SupersededBy))
		if convErr != nil {
			return record.Record{}, malformed("superseded_by", "not a proposal id")
		}
		rec.SupersededBy = &id
	}

	if raw.Resolution != nil {
		res, resErr := parseResolution(*raw.Resolution)
		if resErr != nil {
			return record.Record{}, malformed("resolution", resErr.Error())
		}
		rec.Resolution = res
	}

	if raw.PostHistory != nil {
		posts, postErr := parsePostHistory(*raw.PostHistory)
		if postErr != nil {
			return record.Record{}, malformed("post_history", postErr.Error())
		}
		rec.Posts = posts
	}

	return rec, nil
}

// parseResolution parses a Sphinx RST resolution string. A backtick
// hyperlink yields date and URL; a bare URL yields only the URL. Anything
// else is treated as absent.
func parseResolution(s string) (*record.Resolution, error) {
	if m := backtickHyperlinkRE.FindStringSubmatch(s); m != nil {
		date, err := time.Parse(createdDateLayout, m[1])
		if err != nil {
			return nil, fmt.Errorf("unparseable resolution date %q", m[1])
		}
		return &record.Resolution{Date: date, URL: m[2]}, nil
	}
	if urlRE.MatchString(s) {
		return &record.Resolution{URL: s}, nil
	}
	return nil, nil
}

// parsePostHistory parses a Sphinx RST post-history string. Backtick
// hyperlinks yield dated, linked posts; otherwise bare dates yield posts
// without URLs.
func parsePostHistory(s string) ([]record.Post, error) {
	var posts []record.Post
	if matches := backtickHyperlinkRE.FindAllStringSubmatch(s, -1); matches != nil {
		for _, m := range matches {
			date, err := time.Parse(createdDateLayout, m[1])
			if err != nil {
				return nil, fmt.Errorf("unparseable post date %q", m[1])
			}
			posts = append(posts, record.Post{Date: date, URL: m[2]})
		}
		return posts, nil
	}
	for _, m := range dateOnlyRE.FindAllString(s, -1) {
		date, err := time.Parse(createdDateLayout, m)
		if err != nil {
			return nil, fmt.Errorf("unparseable post date %q", m)
		}
		posts = append(posts, record.Post{Date: date})
	}
	return posts, nil
}

// parseIDList parses a comma-separated list of proposal ids.
func parseIDList(s *string) ([]int, error) {
	if s == nil {
		return nil, nil
	}
	var ids []int
	for _, part := range splitList(*s) {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a proposal id", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// splitList splits a comma-separated field and trims whitespace.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
