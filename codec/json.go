package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/authcorp/optics/tree"
)

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

func (c *JSONCodec) Name() string { return "json" }

// Encode writes v; objects keep their key order.
func (c *JSONCodec) Encode(v tree.Value) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode parses a single JSON document. Integers that fit in int64 decode as
// int64, other numbers as float64.
func (c *JSONCodec) Decode(data []byte) (tree.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON: trailing data after document")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (tree.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		return normalizeNumber(t), nil
	default:
		return t, nil
	}
}

func decodeJSONObject(dec *json.Decoder) (tree.Value, error) {
	var fields []tree.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, tree.F(key, v))
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tree.NewObject(fields...), nil
}

func decodeJSONArray(dec *json.Decoder) (tree.Value, error) {
	items := []tree.Value{}
	for dec.More() {
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tree.NewArray(items...), nil
}

func normalizeNumber(n json.Number) tree.Value {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n
}
