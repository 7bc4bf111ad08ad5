package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	msgpack "github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned when no format is registered under a name.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrKeyNotFound is returned when a key path does not resolve in a document.
	ErrKeyNotFound = errors.New("key not found")
	// ErrKeyRequired is returned when a format cannot hold a sequence at the document root.
	ErrKeyRequired = errors.New("key is required")
	// ErrNotSequence is returned when the selected value is a table instead of a sequence.
	ErrNotSequence = errors.New("value is not a sequence")
	// ErrTrailingData is returned when a document is followed by more data.
	ErrTrailingData = errors.New("unexpected data after document")
)

// Codec is an interface for encoding and decoding values.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// Encoder is an interface for encoding values.
type Encoder[T any] interface {
	Encode(v T) ([]byte, error)
}

// Decoder is an interface for decoding values.
type Decoder[T any] interface {
	Decode(bz []byte) (T, error)
}

// JSONCodec is a codec for JSON documents. Integral numbers are decoded as int64 and
// the rest as float64. Numbers out of float64 range keep their text.
type JSONCodec struct{}

// Encode encodes the given value to JSON.
func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode decodes the given JSON document. An empty document decodes to nil.
func (JSONCodec) Decode(bz []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var extra any
	switch err := dec.Decode(&extra); err {
	case io.EOF:
	case nil:
		return nil, ErrTrailingData
	default:
		return nil, fmt.Errorf("%w: %w", ErrTrailingData, err)
	}

	return normalizeNumbers(v), nil
}

// normalizeNumbers replaces the json.Number values of a decoded document in place.
func normalizeNumbers(doc any) any {
	if n, ok := doc.(json.Number); ok {
		return number(n)
	}

	stack := []any{doc}
	visit := func(v any) any {
		switch v := v.(type) {
		case json.Number:
			return number(v)
		case []any, map[string]any:
			stack = append(stack, v)
		}
		return v
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node := node.(type) {
		case []any:
			for i, v := range node {
				node[i] = visit(v)
			}
		case map[string]any:
			for k, v := range node {
				node[k] = visit(v)
			}
		}
	}
	return doc
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// YAMLCodec is a codec for YAML documents.
type YAMLCodec struct{}

// Encode encodes the given value to YAML.
func (YAMLCodec) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Decode decodes the given YAML document. An empty document decodes to nil.
func (YAMLCodec) Decode(bz []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(bz, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// MsgpackCodec is a codec for MessagePack documents. Integers are decoded as int64 or uint64.
type MsgpackCodec struct{}

// Encode encodes the given value to MessagePack.
func (MsgpackCodec) Encode(v any) ([]byte, error) {
	enc := msgpack.GetEncoder()
	var buf bytes.Buffer
	enc.Reset(&buf)
	defer msgpack.PutEncoder(enc)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes the given MessagePack document. An empty document decodes to nil.
func (MsgpackCodec) Decode(bz []byte) (any, error) {
	if len(bz) == 0 {
		return nil, nil
	}

	r := bytes.NewReader(bz)
	dec := msgpack.GetDecoder()
	dec.Reset(r)
	defer msgpack.PutDecoder(dec)

	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return v, nil
}

// TOMLCodec is a codec for TOML documents. The root of a TOML document is always a table.
type TOMLCodec struct{}

// Encode encodes the given table to TOML.
func (TOMLCodec) Encode(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// Decode decodes the given TOML document.
func (TOMLCodec) Decode(bz []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(bz, &v); err != nil {
		return nil, err
	}
	return v, nil
}
