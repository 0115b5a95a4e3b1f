package apiclient

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Extra holds object fields the client does not model. They are kept on
// decode and written back on encode, so records round-trip unchanged.
type Extra map[string]json.RawMessage

// Decode unmarshals the extra field key into v.
func (e Extra) Decode(key string, v interface{}) error {
	raw, ok := e[key]
	if !ok {
		return fmt.Errorf("field %q not present", key)
	}
	return json.Unmarshal(raw, v)
}

// Set stores v under key.
func (e *Extra) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if *e == nil {
		*e = Extra{}
	}
	(*e)[key] = raw
	return nil
}

var knownFields sync.Map // reflect.Type -> map[string]struct{}

// fieldNames returns the JSON names of t's exported fields.
func fieldNames(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFields.Load(t); ok {
		return cached.(map[string]struct{})
	}
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names[name] = struct{}{}
	}
	knownFields.Store(t, names)
	return names
}

// decodeRecord fills known (a pointer to an alias struct) and returns the
// remaining fields.
func decodeRecord(data []byte, known interface{}) (Extra, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	names := fieldNames(reflect.TypeOf(known).Elem())
	var extra Extra
	for k, v := range all {
		if _, ok := names[k]; ok {
			continue
		}
		if extra == nil {
			extra = Extra{}
		}
		extra[k] = v
	}
	return extra, nil
}

// encodeRecord marshals known and merges extra underneath it; modelled
// fields win on conflict.
func encodeRecord(known interface{}, extra Extra) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := all[k]; !exists {
			all[k] = v
		}
	}
	return json.Marshal(all)
}
