package entities

import (
	"encoding/json"
	"strconv"
)

// Resource is an API resource kept in its wire form. Samples that read a
// resource, change a few fields and send it back use Resource so that fields
// this module does not model survive the round trip.
type Resource map[string]interface{}

// String returns the string stored under key, or "" when absent or not a string.
func (r Resource) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Uint returns the unsigned integer stored under key. The API encodes 64-bit
// integers as JSON strings, so both strings and numbers are accepted.
func (r Resource) Uint(key string) uint64 {
	switch v := r[key].(type) {
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case float64:
		if v < 0 {
			return 0
		}
		return uint64(v)
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// Map returns the nested object under key, or nil.
func (r Resource) Map(key string) Resource {
	switch v := r[key].(type) {
	case map[string]interface{}:
		return Resource(v)
	case Resource:
		return v
	}
	return nil
}

// List returns the objects of the array under key. Non-object elements are
// skipped.
func (r Resource) List(key string) []Resource {
	raw, ok := r[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]Resource, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case map[string]interface{}:
			out = append(out, Resource(v))
		case Resource:
			out = append(out, v)
		}
	}
	return out
}

// Append adds value to the array under key, creating the array if needed.
func (r Resource) Append(key string, value interface{}) {
	raw, _ := r[key].([]interface{})
	r[key] = append(raw, value)
}

// Filter keeps only the objects of the array under key for which keep
// returns true.
func (r Resource) Filter(key string, keep func(Resource) bool) {
	items := r.List(key)
	kept := make([]interface{}, 0, len(items))
	for _, item := range items {
		if keep(item) {
			kept = append(kept, map[string]interface{}(item))
		}
	}
	r[key] = kept
}

// Decode converts the resource into a typed view.
func (r Resource) Decode(v interface{}) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
