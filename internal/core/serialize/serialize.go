// Package serialize is the canonical projection of entities: a flat, ordered
// field mapping plus a deterministic Avro binary wire form. The field order is
// declared statically per entity kind (see descriptor.go), never derived from
// construction order or sorted alphabetically, so independent implementations
// of the schema produce interoperable output.
//
// Equal entities always encode to byte-identical output; downstream
// deduplication and idempotency keys depend on that property.
package serialize

import (
	"fmt"

	"github.com/playlake-lab/playlake/internal/core/entity"
)

// Field is one name/value pair of the flat projection. Value is nil (absent),
// string, int64, float64, or bool; timestamps are RFC 3339 UTC strings,
// decimals are canonical decimal strings, enumerants are wire values, and
// string lists are compact JSON array strings.
type Field struct {
	Name  string
	Value interface{}
}

// Record is the ordered flat projection of one entity.
type Record struct {
	Kind   entity.Kind
	Fields []Field
}

// Get returns the value for a field name and whether the field exists.
func (r Record) Get(name string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Map returns an unordered view of the record for callers that only need
// lookup semantics. The canonical order lives in Fields.
func (r Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.Fields))
	for _, f := range r.Fields {
		m[f.Name] = f.Value
	}
	return m
}

// DecodeError reports that an encoded byte sequence or flat mapping cannot be
// reconstructed into a valid record: unknown enumerant wire value, missing
// required field, or type mismatch. It signals a schema-version mismatch
// between producer and consumer and is never silently defaulted away.
type DecodeError struct {
	Kind   entity.Kind
	Field  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %s: %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("decode %s: %s", e.Kind, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Serialize projects an entity onto its statically declared field order.
func Serialize(e entity.Entity) (Record, error) {
	d, ok := descriptors[e.Kind()]
	if !ok {
		return Record{}, fmt.Errorf("serialize: no descriptor for kind %q", e.Kind())
	}
	fields := make([]Field, len(d.fields))
	for i, fd := range d.fields {
		fields[i] = Field{Name: fd.name, Value: fd.get(e)}
	}
	return Record{Kind: e.Kind(), Fields: fields}, nil
}
