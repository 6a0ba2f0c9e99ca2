package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// User is a single directory record. Records are read-only once loaded.
type User struct {
	ID      Scalar   `json:"id"`
	Name    string   `json:"name"`
	Items   []string `json:"items"`
	Address string   `json:"address"`
	Pincode Scalar   `json:"pincode"`
}

// Scalar holds a JSON string or number as its literal text.
type Scalar string

// String returns the literal text.
func (s Scalar) String() string {
	return string(s)
}

// UnmarshalJSON accepts strings, numbers, and null.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*s = ""
		return nil
	case trimmed[0] == '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*s = Scalar(text)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return fmt.Errorf("scalar %s: %w", trimmed, err)
	}
	*s = Scalar(num.String())
	return nil
}

// DecodeUsers reads a JSON array of users. Records that fail to decode are
// skipped and reported in the returned count.
func DecodeUsers(r io.Reader) ([]User, int, error) {
	var raw []json.RawMessage
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("decode users: %w", err)
	}

	users := make([]User, 0, len(raw))
	skipped := 0
	for _, record := range raw {
		var u User
		if err := json.Unmarshal(record, &u); err != nil {
			skipped++
			continue
		}
		users = append(users, u)
	}
	return users, skipped, nil
}
