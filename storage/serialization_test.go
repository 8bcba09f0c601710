package storage

import (
	"testing"

	"github.com/poiesic/warebot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := &core.Document{
		ID:     "42",
		Text:   "Product ID: 42. Product Name: Hydraulic Pump. Category: Pumps.",
		Vector: []float32{0.25, -0.5, 1.0, 0.0},
		Metadata: core.DocMetadata{
			ProductID: "42",
			Category:  "Pumps",
			Warehouse: "East",
		},
	}

	data := MarshalDocument(doc)
	got, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDocumentRoundTrip_EmptyVector(t *testing.T) {
	doc := &core.Document{
		ID:   "0",
		Text: "Product ID: 0. Product Name: Unknown.",
		Metadata: core.DocMetadata{
			ProductID: "0",
			Category:  "General",
			Warehouse: "Main",
		},
	}

	data := MarshalDocument(doc)
	got, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Text, got.Text)
	assert.Empty(t, got.Vector)
	assert.Equal(t, doc.Metadata, got.Metadata)
}

func TestUnmarshalDocument_Truncated(t *testing.T) {
	doc := &core.Document{
		ID:     "1",
		Text:   "Product ID: 1. Product Name: Bearing.",
		Vector: []float32{0.1, 0.2},
	}

	data := MarshalDocument(doc)
	_, err := UnmarshalDocument(data[:len(data)/2])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestFingerprintRoundTrip(t *testing.T) {
	fp := core.FingerprintFromContent("three rows of inventory")

	data := MarshalFingerprint(fp)
	got, err := UnmarshalFingerprint(data)
	require.NoError(t, err)
	assert.Equal(t, fp, got)
}
