package character

import (
	"bytes"
	"encoding/json"
	"sort"
)

// AbilityScores maps ability names to their score values.
type AbilityScores map[string]string

// MarshalJSON writes the six abilities in sheet order, then any other keys
// sorted.
func (a AbilityScores) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}

	keys := make([]string, 0, len(a))
	known := make(map[string]bool, len(Abilities))
	for _, k := range Abilities {
		known[k] = true
		if _, ok := a[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range a {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
