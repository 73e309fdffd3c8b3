package export

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/pepgraph/projection"
)

// MarshalView serializes a projection view as indented JSON. Views already
// carry a deterministic node and edge order, so output is byte-identical
// across runs.
func MarshalView(v projection.View) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal view %s: %w", v.Name, err)
	}
	return append(data, '\n'), nil
}
