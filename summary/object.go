package summary

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object which keeps its fields in document order.
type Object struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
}

// Keys ...
func (o Object) Keys() []string {
	var keys []string
	for pair := o.oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len ...
func (o Object) Len() int {
	if o.fields == nil {
		return 0
	}
	return o.fields.Len()
}

// Get returns the raw JSON value stored under key.
func (o Object) Get(key string) (json.RawMessage, bool) {
	if o.fields == nil {
		return nil, false
	}
	return o.fields.Get(key)
}

// Set stores value under key. An existing key keeps its position.
func (o *Object) Set(key string, value json.RawMessage) {
	if o.fields == nil {
		o.fields = orderedmap.New[string, json.RawMessage]()
	}
	o.fields.Set(key, value)
}

// Merge copies every field of other into o, overwriting same-named fields.
func (o *Object) Merge(other Object) {
	for pair := other.oldest(); pair != nil; pair = pair.Next() {
		o.Set(pair.Key, pair.Value)
	}
}

// MarshalJSON writes the stored values verbatim, so the caller's encoder
// settings (indent, HTML escaping) apply to them unchanged.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for pair := o.oldest(); pair != nil; pair = pair.Next() {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON ...
func (o *Object) UnmarshalJSON(data []byte) error {
	parsed, err := parseObject(data)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o Object) oldest() *orderedmap.Pair[string, json.RawMessage] {
	if o.fields == nil {
		return nil
	}
	return o.fields.Oldest()
}

func parseObject(data []byte) (Object, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Object{}, fmt.Errorf("expected a JSON object, got %s", describeValue(trimmed))
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(trimmed); err != nil {
		return Object{}, err
	}
	return Object{fields: fields}, nil
}

func describeValue(data []byte) string {
	if len(data) == 0 {
		return "nothing"
	}
	switch data[0] {
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	}
	if bytes.Equal(data, []byte("null")) {
		return "null"
	}
	if data[0] == '-' || (data[0] >= '0' && data[0] <= '9') {
		return "a number"
	}
	return fmt.Sprintf("%q", string(data[:1]))
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
