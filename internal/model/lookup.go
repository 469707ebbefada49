package model

import (
	"encoding/json"
	"fmt"
)

// LookupItem is one selectable option of a lookup entity. Identity is ID;
// any other attribute of the upstream payload lives in Flags untouched.
type LookupItem struct {
	ID    string
	Label string
	Flags map[string]any
}

// LookupID implements lookup.Identifiable.
func (i LookupItem) LookupID() string {
	return i.ID
}

// Flag returns a pass-through attribute.
func (i LookupItem) Flag(name string) (any, bool) {
	v, ok := i.Flags[name]
	return v, ok
}

// UnmarshalJSON keeps id/label as fields and everything else in Flags.
// Numeric ids are accepted and rendered as strings.
func (i *LookupItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("lookup item: %w", err)
	}

	item := LookupItem{}
	for key, value := range raw {
		switch key {
		case "id":
			id, err := decodeID(value)
			if err != nil {
				return err
			}
			item.ID = id
		case "label":
			if err := json.Unmarshal(value, &item.Label); err != nil {
				return fmt.Errorf("lookup item label: %w", err)
			}
		default:
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return fmt.Errorf("lookup item %s: %w", key, err)
			}
			if item.Flags == nil {
				item.Flags = make(map[string]any)
			}
			item.Flags[key] = v
		}
	}

	*i = item
	return nil
}

// MarshalJSON flattens Flags next to id and label.
func (i LookupItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(i.Flags)+2)
	for k, v := range i.Flags {
		out[k] = v
	}
	out["id"] = i.ID
	out["label"] = i.Label
	return json.Marshal(out)
}

func decodeID(value json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(value, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("lookup item id: unsupported value %s", string(value))
}
