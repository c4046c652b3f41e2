package geometa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// ErrFormat marks input that cannot be decoded into a document at all. This is
// a format fault surfaced to the caller as an error, never as an empty
// violation list.
var ErrFormat = errors.New("geometa: malformed document")

// DecodeJSON decodes a JSON document into a Value, preserving object key order
// and carrying numbers as json.Number text.
func DecodeJSON(data []byte) (Value, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader decodes one JSON document from r. Trailing non-whitespace
// content after the document is a format fault.
func DecodeJSONReader(r io.Reader) (Value, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("%w: trailing data after document", ErrFormat)
	}
	return v, nil
}

// EncodeJSONIndent renders a Value as pretty-printed JSON with sorted object
// keys, the shape fixture files are written in.
func EncodeJSONIndent(v Value) ([]byte, error) {
	return j.MarshalIndent(v.Interface(), "", "  ")
}

func decodeValue(dec *j.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *j.Decoder, tok j.Token) (Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			var members []Member
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("object key is %T, not string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				members = append(members, F(key, val))
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Obj(members...), nil
		case '[':
			var items []Value
			for dec.More() {
				it, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, it)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Arr(items...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", string(rune(t)))
	case string:
		return Str(t), nil
	case j.Number:
		return numberValue(json.Number(t)), nil
	case float64:
		return Num(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %T", tok)
	}
}
