package zoho

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Record is a vendor record as decoded from JSON. Accessors return zero
// values for absent keys or unexpected types.
type Record map[string]interface{}

func (r Record) ID() string {
	return r.String("id")
}

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Ref reads a lookup field of the form {"id": ..., "name": ...}.
func (r Record) Ref(key string) (id, name string) {
	obj := r.Object(key)
	if obj == nil {
		return "", ""
	}
	return obj.ID(), obj.String("name")
}

func (r Record) RefID(key string) string {
	id, _ := r.Ref(key)
	return id
}

func (r Record) RefName(key string) string {
	_, name := r.Ref(key)
	return name
}

func (r Record) Number(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func (r Record) Int(key string) int {
	return int(r.Number(key))
}

// Bool returns nil unless the value is a JSON boolean.
func (r Record) Bool(key string) *bool {
	if v, ok := r[key].(bool); ok {
		return &v
	}
	return nil
}

func (r Record) Object(key string) Record {
	if v, ok := r[key].(map[string]interface{}); ok {
		return Record(v)
	}
	return nil
}

func (r Record) Records(key string) []Record {
	items, ok := r[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// Raw returns the value under key untouched.
func (r Record) Raw(key string) interface{} {
	return r[key]
}

// leadingInt parses the leading decimal digits of s, e.g. "15:00" is 15.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

// timeLayouts are the formats the API uses for timestamps; some fields omit
// the zone.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// epochMillis returns 0 for empty or unparseable timestamps.
func epochMillis(s string) int64 {
	t, ok := parseTime(s)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

func toValues(query map[string]string) url.Values {
	if len(query) == 0 {
		return nil
	}
	v := make(url.Values, len(query))
	for key, value := range query {
		v.Set(key, value)
	}
	return v
}
