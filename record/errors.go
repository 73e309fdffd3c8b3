package record

import "fmt"

// MalformedRecordError reports a record that fails local validation.
// ID identifies the offending proposal when it is known; otherwise Index
// is the record's position in the raw input batch.
type MalformedRecordError struct {
	ID     int
	Index  int
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("malformed record pep-%d: field %q %s", e.ID, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed record at index %d: field %q %s", e.Index, e.Field, e.Reason)
}
