package domain

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another catalog entity. Upstream payloads carry
// references either as a bare id string or as an expanded embedded object;
// Ref reads the identifier uniformly from both forms and always marshals
// back to the bare id.
type Ref struct {
	ID string
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

// MarshalJSON emits the bare id, or null when unset.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// refObject covers the expanded form. The id may arrive under "id" or the
// document-store style "_id".
type refObject struct {
	ID    string `json:"id"`
	DocID string `json:"_id"`
}

// UnmarshalJSON accepts null, a bare id string, or an expanded object.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		r.ID = ""
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}

	var obj refObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	if r.ID == "" {
		r.ID = obj.DocID
	}
	return nil
}
