// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/warebot/core"
)

// vectorMUS serializes embedding vectors as length-prefixed float32 slices.
var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

// DocumentMUS is the MUS serializer for core.Document.
var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v core.Document, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Text, bs[n:])
	n += vectorMUS.Marshal(v.Vector, bs[n:])
	n += ord.String.Marshal(v.Metadata.ProductID, bs[n:])
	n += ord.String.Marshal(v.Metadata.Category, bs[n:])
	n += ord.String.Marshal(v.Metadata.Warehouse, bs[n:])
	return
}

func (s documentMUS) Unmarshal(bs []byte) (v core.Document, n int, err error) {
	var n1 int
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata.ProductID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata.Warehouse, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v core.Document) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.Text)
	size += vectorMUS.Size(v.Vector)
	size += ord.String.Size(v.Metadata.ProductID)
	size += ord.String.Size(v.Metadata.Category)
	size += ord.String.Size(v.Metadata.Warehouse)
	return
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, DocumentMUS.Size(*doc))
	DocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	doc, _, err := DocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &doc, nil
}

// MarshalFingerprint serializes a dataset fingerprint to bytes.
func MarshalFingerprint(fp core.Fingerprint) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(fp)))
	varint.Uint64.Marshal(uint64(fp), buf)
	return buf
}

// UnmarshalFingerprint deserializes a dataset fingerprint from bytes.
func UnmarshalFingerprint(data []byte) (core.Fingerprint, error) {
	fp, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.Fingerprint(fp), nil
}
