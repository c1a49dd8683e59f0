// Package json wraps the JSON codec used for chart documents.
package json

import (
	"bytes"
	"encoding/json" //nolint:depguard // this package wraps it
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Encoder represents an encoder for json
type Encoder interface {
	Encode(v any) error
}

// Decoder represents a decoder for json
type Decoder interface {
	Decode(v any) error
}

// Interface represents an interface to handle json data
type Interface interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	NewEncoder(writer io.Writer) Encoder
	NewDecoder(reader io.Reader) Decoder
	Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error
}

// DocumentJSONHandler encodes without HTML escaping so that formatter
// templates such as "{b}<br/>{c}" survive untouched, and sorts map keys so
// documents built from maps are stable.
type DocumentJSONHandler struct {
	api jsoniter.API
}

// NewDocumentJSONHandler returns the handler used for chart documents.
func NewDocumentJSONHandler() DocumentJSONHandler {
	return DocumentJSONHandler{
		api: jsoniter.Config{
			EscapeHTML:             false,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
		}.Froze(),
	}
}

func (h DocumentJSONHandler) Marshal(v any) ([]byte, error) {
	return h.api.Marshal(v)
}

func (h DocumentJSONHandler) Unmarshal(data []byte, v any) error {
	return h.api.Unmarshal(data, v)
}

func (h DocumentJSONHandler) NewEncoder(writer io.Writer) Encoder {
	return h.api.NewEncoder(writer)
}

func (h DocumentJSONHandler) NewDecoder(reader io.Reader) Decoder {
	return h.api.NewDecoder(reader)
}

func (DocumentJSONHandler) Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	return json.Indent(dst, src, prefix, indent)
}

var DefaultJSONHandler Interface = NewDocumentJSONHandler()

// Marshal converts object as bytes
func Marshal(v any) ([]byte, error) {
	return DefaultJSONHandler.Marshal(v)
}

// Unmarshal decodes object from bytes
func Unmarshal(data []byte, v any) error {
	return DefaultJSONHandler.Unmarshal(data, v)
}

// NewEncoder creates an encoder to write objects to writer
func NewEncoder(writer io.Writer) Encoder {
	return DefaultJSONHandler.NewEncoder(writer)
}

// NewDecoder creates a decoder to read objects from reader
func NewDecoder(reader io.Reader) Decoder {
	return DefaultJSONHandler.NewDecoder(reader)
}

// Indent appends to dst an indented form of the JSON-encoded src.
func Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	return DefaultJSONHandler.Indent(dst, src, prefix, indent)
}

// MarshalIndent copied from encoding/json
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = Indent(&buf, b, prefix, indent)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HTMLEscape appends to dst the JSON-encoded src with <, >, & and U+2028/U+2029
// inside string literals replaced by \u escapes.
func HTMLEscape(dst *bytes.Buffer, src []byte) {
	json.HTMLEscape(dst, src)
}

// Valid proxy to json.Valid
func Valid(data []byte) bool {
	return json.Valid(data)
}

// RawMessage is a raw encoded JSON value.
type RawMessage = json.RawMessage
