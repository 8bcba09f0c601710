package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// Fingerprint identifies the content of an ingested dataset.
// Identical source content always produces the same fingerprint.
type Fingerprint uint64

// FingerprintFromContent generates a deterministic fingerprint from text content
// using BLAKE2b hashing.
func FingerprintFromContent(text string) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// Mode selects the assistant persona interpolated into the prompt.
// It does not change retrieval behavior.
type Mode string

const (
	// ModeInventory answers stock-level and reorder questions.
	ModeInventory Mode = "Inventory"
	// ModeShipment answers shipping and warehouse-location questions.
	ModeShipment Mode = "Shipment"
	// ModeMultiTask answers across both domains.
	ModeMultiTask Mode = "Multi-Task"
)

// Valid reports whether the mode is one of the known assistant modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeInventory, ModeShipment, ModeMultiTask:
		return true
	}
	return false
}

// ParseMode converts a string into a Mode.
// Returns ErrInvalidMode for unknown values.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Row is one record from a tabular inventory source.
// Field values are keyed by the source's column headers; Index is the
// zero-based position of the row within the source.
type Row struct {
	Index  int
	Fields map[string]string
}

// Field returns the named field value.
// Missing columns and blank cells both report absent.
func (r Row) Field(name string) (string, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// DocMetadata is the structured metadata stored alongside a document.
type DocMetadata struct {
	ProductID string
	Category  string
	Warehouse string
}

// Document is the stored unit of the semantic index: a canonical text
// rendering of one inventory row, its embedding, and its metadata.
// The ID is the source row's position and is unique within a collection.
type Document struct {
	ID       string
	Text     string
	Vector   []float32 // Embedding vector (populated before insertion)
	Metadata DocMetadata
}

// Role identifies the author of a conversation turn.
type Role int

const (
	// RoleUser represents the human asking questions.
	RoleUser Role = iota + 1
	// RoleAssistant represents the AI answerer.
	RoleAssistant
)

// Turn is one message in a conversation: a user question or an
// assistant reply (including error replies).
type Turn struct {
	Role    Role
	Content string
}

// SearchResult pairs a stored document with its similarity score for a query.
type SearchResult struct {
	Document *Document
	Score    float32
}
