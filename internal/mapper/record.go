// Package mapper is the anti-corruption layer between the ad server's
// loosely typed XML-RPC structs and the canonical domain records.
// Every function in this package is total: malformed or missing wire
// fields degrade to defaults instead of producing errors.
package mapper

// Record is a decoded XML-RPC struct.
type Record map[string]any

// Aliases maps a canonical field name to the wire keys that may carry it,
// in order of preference. The first key is the one written on requests.
// Fields without an entry use their canonical name on the wire.
type Aliases map[string][]string

// Keys returns the wire keys for field.
func (a Aliases) Keys(field string) []string {
	if keys, ok := a[field]; ok {
		return keys
	}
	return []string{field}
}

// WireKey returns the preferred wire key for field.
func (a Aliases) WireKey(field string) string {
	return a.Keys(field)[0]
}

// group returns the alias group containing wire key k.
func (a Aliases) group(k string) []string {
	for _, keys := range a {
		for _, key := range keys {
			if key == k {
				return keys
			}
		}
	}
	return nil
}

// Get returns the first non-nil value among the wire keys of field.
func (r Record) Get(a Aliases, field string) (any, bool) {
	for _, key := range a.Keys(field) {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// value is Get without the presence flag.
func (r Record) value(a Aliases, field string) any {
	v, _ := r.Get(a, field)
	return v
}

// set writes v under the preferred wire key of field.
func (r Record) set(a Aliases, field string, v any) {
	r[a.WireKey(field)] = v
}

// AsRecord converts a decoded XML-RPC value into a Record.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	case map[string]string:
		r := make(Record, len(m))
		for k, s := range m {
			r[k] = s
		}
		return r, true
	}
	return nil, false
}

// AsList converts a decoded XML-RPC array into records. Anything that is
// not a sequence yields an empty list; non-struct elements are skipped.
func AsList(v any) []Record {
	var items []any
	switch l := v.(type) {
	case []any:
		items = l
	case []Record:
		return l
	case []map[string]any:
		out := make([]Record, 0, len(l))
		for _, m := range l {
			out = append(out, Record(m))
		}
		return out
	default:
		return []Record{}
	}

	out := make([]Record, 0, len(items))
	for _, item := range items {
		if r, ok := AsRecord(item); ok {
			out = append(out, r)
		}
	}
	return out
}

// mapList applies fn to every record in v.
func mapList[T any](v any, fn func(Record) T) []T {
	records := AsList(v)
	out := make([]T, 0, len(records))
	for _, r := range records {
		out = append(out, fn(r))
	}
	return out
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge shallow-merges patch into a copy of existing. Each patched field is
// written onto whichever alias key existing already uses, so the write-back
// keeps the server's own naming and untouched keys survive unchanged.
func Merge(existing, patch Record, a Aliases) Record {
	out := existing.Clone()
	for key, v := range patch {
		target := key
		for _, alias := range a.group(key) {
			if _, ok := existing[alias]; ok {
				target = alias
				break
			}
		}
		out[target] = v
	}
	return out
}
