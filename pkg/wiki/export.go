package wiki

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/kpalwiki/pkg/types"
)

// Export file defaults offered to the user.
const (
	ExportFileName = "kpalwiki-export.json"
	ExportMIMEType = "application/json"
)

// ExportAll serializes the complete store as pretty-printed JSON with
// 2-space indentation. Pure; the store is not mutated.
func ExportAll(store types.Store) ([]byte, error) {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export store: %w", err)
	}
	return data, nil
}

// ParseImport parses raw import data into a store. The top-level JSON
// value must be an object keyed by page title; any other shape (array,
// scalar, null) is rejected with an error wrapping ErrInvalidImport and
// the parse failure reason. Nothing is merged here; a failed parse
// aborts the import entirely.
func ParseImport(raw []byte) (types.Store, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidImport, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: top-level value must be an object keyed by page title", types.ErrInvalidImport)
	}

	var imported types.Store
	if err := json.Unmarshal(raw, &imported); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidImport, err)
	}
	return imported, nil
}
