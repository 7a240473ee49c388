package serialize

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"
	"golang.org/x/sync/singleflight"

	"github.com/playlake-lab/playlake/internal/core/entity"
)

const avroNamespace = "com.playlake.pipeline"

// Codec compilation is lazy and cached per kind. singleflight dedupes
// concurrent compilation of the same kind.
var codecCache = struct {
	mu    sync.RWMutex
	byKind map[entity.Kind]*goavro.Codec
	group singleflight.Group
}{byKind: make(map[entity.Kind]*goavro.Codec)}

// avroSchema renders the descriptor's field-order table as an Avro record
// schema. Optional fields become ["null", T] unions defaulting to null.
func (d *descriptor) avroSchema() (string, error) {
	type avroField struct {
		Name    string      `json:"name"`
		Type    interface{} `json:"type"`
		Default interface{} `json:"default,omitempty"`
	}
	fields := make([]avroField, len(d.fields))
	for i, fd := range d.fields {
		if fd.optional {
			fields[i] = avroField{Name: fd.name, Type: []interface{}{"null", string(fd.typ)}}
		} else {
			fields[i] = avroField{Name: fd.name, Type: string(fd.typ)}
		}
	}
	schema := map[string]interface{}{
		"type":      "record",
		"name":      string(d.kind),
		"namespace": avroNamespace,
		"fields":    fields,
	}
	b, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("render avro schema for %s: %w", d.kind, err)
	}
	return string(b), nil
}

// codecFor returns the compiled codec for a kind, compiling at most once.
func codecFor(kind entity.Kind) (*goavro.Codec, error) {
	codecCache.mu.RLock()
	if c, ok := codecCache.byKind[kind]; ok {
		codecCache.mu.RUnlock()
		return c, nil
	}
	codecCache.mu.RUnlock()

	result, err, _ := codecCache.group.Do(string(kind), func() (interface{}, error) {
		codecCache.mu.RLock()
		if c, ok := codecCache.byKind[kind]; ok {
			codecCache.mu.RUnlock()
			return c, nil
		}
		codecCache.mu.RUnlock()

		d, ok := descriptors[kind]
		if !ok {
			return nil, fmt.Errorf("no descriptor for kind %q", kind)
		}
		schema, err := d.avroSchema()
		if err != nil {
			return nil, err
		}
		codec, err := goavro.NewCodec(schema)
		if err != nil {
			return nil, fmt.Errorf("compile avro codec for %s: %w", kind, err)
		}

		codecCache.mu.Lock()
		codecCache.byKind[kind] = codec
		codecCache.mu.Unlock()
		return codec, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*goavro.Codec), nil
}

// Encode renders a flat record to its Avro binary wire form. Deterministic:
// equal records always produce byte-identical output.
func Encode(r Record) ([]byte, error) {
	d, ok := descriptors[r.Kind]
	if !ok {
		return nil, fmt.Errorf("encode: no descriptor for kind %q", r.Kind)
	}
	codec, err := codecFor(r.Kind)
	if err != nil {
		return nil, err
	}

	values := r.Map()
	native := make(map[string]interface{}, len(d.fields))
	for _, fd := range d.fields {
		v, present := values[fd.name]
		if !present {
			return nil, fmt.Errorf("encode %s: record is missing field %q", r.Kind, fd.name)
		}
		if fd.optional {
			if v == nil {
				native[fd.name] = nil
			} else {
				// goavro represents non-null union values as a
				// single-entry map keyed by the branch type name.
				native[fd.name] = map[string]interface{}{string(fd.typ): v}
			}
			continue
		}
		if v == nil {
			return nil, fmt.Errorf("encode %s: required field %q is nil", r.Kind, fd.name)
		}
		native[fd.name] = v
	}

	data, err := codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", r.Kind, err)
	}
	return data, nil
}

// Decode reconstructs the flat record, in canonical field order, from its
// Avro binary wire form. Unknown enumerant wire values, missing fields, and
// type mismatches yield a *DecodeError.
func Decode(kind entity.Kind, data []byte) (Record, error) {
	d, ok := descriptors[kind]
	if !ok {
		return Record{}, &DecodeError{Kind: kind, Reason: "unknown entity kind"}
	}
	codec, err := codecFor(kind)
	if err != nil {
		return Record{}, err
	}

	native, _, err := codec.NativeFromBinary(data)
	if err != nil {
		return Record{}, &DecodeError{Kind: kind, Reason: "malformed avro payload", Err: err}
	}
	values, ok := native.(map[string]interface{})
	if !ok {
		return Record{}, &DecodeError{Kind: kind, Reason: fmt.Sprintf("unexpected avro root type %T", native)}
	}

	fields := make([]Field, len(d.fields))
	for i, fd := range d.fields {
		raw, present := values[fd.name]
		if !present {
			return Record{}, &DecodeError{Kind: kind, Field: fd.name, Reason: "required field is missing"}
		}
		v, err := unwrap(kind, fd, raw)
		if err != nil {
			return Record{}, err
		}
		if fd.enum != nil && v != nil {
			wire, ok := v.(string)
			if !ok {
				return Record{}, &DecodeError{Kind: kind, Field: fd.name, Reason: fmt.Sprintf("expected string enumerant, got %T", v)}
			}
			if err := fd.enum(wire); err != nil {
				return Record{}, &DecodeError{Kind: kind, Field: fd.name, Reason: err.Error(), Err: err}
			}
		}
		fields[i] = Field{Name: fd.name, Value: v}
	}
	return Record{Kind: kind, Fields: fields}, nil
}

// unwrap normalizes a goavro native value back into the flat value domain,
// peeling union wrappers and checking the wire type.
func unwrap(kind entity.Kind, fd fieldDef, raw interface{}) (interface{}, error) {
	if fd.optional {
		if raw == nil {
			return nil, nil
		}
		branch, ok := raw.(map[string]interface{})
		if !ok {
			return nil, &DecodeError{Kind: kind, Field: fd.name, Reason: fmt.Sprintf("expected union value, got %T", raw)}
		}
		inner, ok := branch[string(fd.typ)]
		if !ok {
			return nil, &DecodeError{Kind: kind, Field: fd.name, Reason: "union branch does not match field type"}
		}
		raw = inner
	}
	switch fd.typ {
	case typeString:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case typeLong:
		if v, ok := raw.(int64); ok {
			return v, nil
		}
	case typeDouble:
		if v, ok := raw.(float64); ok {
			return v, nil
		}
	case typeBoolean:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	}
	return nil, &DecodeError{Kind: kind, Field: fd.name, Reason: fmt.Sprintf("expected %s, got %T", fd.typ, raw)}
}
