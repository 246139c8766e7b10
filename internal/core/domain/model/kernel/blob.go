package kernel

import (
	"bytes"
	"encoding/json"
	"errors"

	"negotiation/internal/pkg/errs"
)

var null = []byte("null")

// Blob is an opaque JSON document. Aggregates store and replace blobs without
// interpreting them; the only guarantee is that the content is well-formed JSON.
// The zero value is the empty blob.
type Blob struct {
	raw []byte
}

// NewBlob wraps raw JSON. Empty input and a bare null yield the empty blob.
func NewBlob(raw []byte) (Blob, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, null) {
		return Blob{}, nil
	}
	if !json.Valid(trimmed) {
		return Blob{}, errs.NewValueIsInvalidErrorWithCause("blob", errors.New("content is not valid JSON"))
	}
	return Blob{raw: bytes.Clone(trimmed)}, nil
}

// BlobFromValue marshals v into a blob.
func BlobFromValue(v any) (Blob, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Blob{}, errs.NewValueIsInvalidErrorWithCause("blob", err)
	}
	return NewBlob(raw)
}

// IsEmpty reports whether the blob holds no document.
func (b Blob) IsEmpty() bool {
	return len(b.raw) == 0
}

// Bytes returns a copy of the JSON document, or nil for the empty blob.
func (b Blob) Bytes() []byte {
	if b.IsEmpty() {
		return nil
	}
	return bytes.Clone(b.raw)
}

// Decode unmarshals the document into v. Decoding the empty blob is a no-op.
func (b Blob) Decode(v any) error {
	if b.IsEmpty() {
		return nil
	}
	return json.Unmarshal(b.raw, v)
}

// MarshalJSON emits the document verbatim, or null for the empty blob.
func (b Blob) MarshalJSON() ([]byte, error) {
	if b.IsEmpty() {
		return bytes.Clone(null), nil
	}
	return b.Bytes(), nil
}

// UnmarshalJSON accepts any JSON value; null yields the empty blob.
func (b *Blob) UnmarshalJSON(data []byte) error {
	blob, err := NewBlob(data)
	if err != nil {
		return err
	}
	*b = blob
	return nil
}
