package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		ID:      8,
		Title:   "Style Guide for Python Code",
		Type:    "Process",
		Status:  "Active",
		Created: time.Date(2001, 7, 5, 0, 0, 0, 0, time.UTC),
		URL:     "https://peps.python.org/pep-0008/",
		Authors: []Author{{Name: "Guido van Rossum"}},
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	r := validRecord()
	assert.NoError(t, r.Validate(0))
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Record)
		field  string
	}{
		{"zero id", func(r *Record) { r.ID = 0 }, "id"},
		{"negative id", func(r *Record) { r.ID = -3 }, "id"},
		{"missing title", func(r *Record) { r.Title = "" }, "title"},
		{"missing type", func(r *Record) { r.Type = "" }, "type"},
		{"missing status", func(r *Record) { r.Status = "" }, "status"},
		{"missing url", func(r *Record) { r.URL = "" }, "url"},
		{"relative url", func(r *Record) { r.URL = "/pep-0008/" }, "url"},
		{"zero created", func(r *Record) { r.Created = time.Time{} }, "created"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.modify(&r)
			err := r.Validate(4)

			var malformed *MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.field, malformed.Field)
			assert.Equal(t, 4, malformed.Index)
		})
	}
}

func TestValidate_Posts(t *testing.T) {
	r := validRecord()
	r.Posts = []Post{
		{Date: time.Date(2001, 7, 5, 0, 0, 0, 0, time.UTC), URL: "https://mail.python.org/archives/1"},
		{URL: "https://mail.python.org/archives/2"},
	}

	err := r.Validate(0)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "posts", malformed.Field)
}

func TestValidate_ResolutionURL(t *testing.T) {
	r := validRecord()
	r.Resolution = &Resolution{
		Date: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		URL:  "not a url",
	}

	err := r.Validate(0)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "resolution", malformed.Field)
}

func TestMalformedRecordError_Message(t *testing.T) {
	withID := &MalformedRecordError{ID: 8, Index: 2, Field: "title", Reason: "required"}
	assert.Contains(t, withID.Error(), "pep-8")

	withoutID := &MalformedRecordError{Index: 2, Field: "id", Reason: "must be a positive integer"}
	assert.Contains(t, withoutID.Error(), "index 2")

	var target *MalformedRecordError
	assert.True(t, errors.As(error(withID), &target))
}
