package graph

import "fmt"

// DuplicateIDError reports two input records sharing a proposal id. This is
// fatal: id uniqueness is the identity contract the whole graph depends on.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate proposal id %d in input batch", e.ID)
}
