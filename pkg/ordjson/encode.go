// SPDX-License-Identifier: MPL-2.0

package ordjson

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// MarshalIndent encodes o with indent spaces per nesting level. An indent of
// zero or less produces compact output. HTML characters are not escaped.
func MarshalIndent(o *Object, indent int) ([]byte, error) {
	compact, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if indent <= 0 {
		return compact, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler. Keys are written in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	e := newEncoder()
	if err := e.encodeObject(o); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// encoder writes compact JSON. Scalars that need escaping go through a
// goccy encoder with HTML escaping turned off.
type encoder struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
	scalar  *json.Encoder
}

func newEncoder() *encoder {
	e := &encoder{}
	e.scalar = json.NewEncoder(&e.scratch)
	e.scalar.SetEscapeHTML(false)
	return e
}

func (e *encoder) encodeValue(v any) error {
	switch t := v.(type) {
	case nil:
		e.buf.WriteString("null")
	case bool:
		if t {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case json.Number:
		if t == "" {
			e.buf.WriteByte('0')
		} else {
			e.buf.WriteString(string(t))
		}
	case *Object:
		if t == nil {
			e.buf.WriteString("null")
			return nil
		}
		return e.encodeObject(t)
	case []any:
		return e.encodeArray(t)
	default:
		return e.encodeScalar(t)
	}
	return nil
}

func (e *encoder) encodeObject(o *Object) error {
	e.buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.encodeScalar(k); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if err := e.encodeValue(o.values[k]); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) encodeArray(arr []any) error {
	e.buf.WriteByte('[')
	for i, v := range arr {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.encodeValue(v); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) encodeScalar(v any) error {
	e.scratch.Reset()
	if err := e.scalar.Encode(v); err != nil {
		return err
	}
	e.buf.Write(bytes.TrimSuffix(e.scratch.Bytes(), []byte{'\n'}))
	return nil
}
