package core

import (
	"errors"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				ID:   "0",
				Text: "Product ID: 0. Product Name: Widget.",
			},
			wantErr: nil,
		},
		{
			name: "valid document without vector",
			doc: &Document{
				ID:       "7",
				Text:     "Product ID: 7. Product Name: Unknown.",
				Metadata: DocMetadata{ProductID: "7", Category: "General", Warehouse: "Main"},
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "empty id",
			doc:     &Document{Text: "some text"},
			wantErr: ErrEmptyDocumentID,
		},
		{
			name:    "empty text",
			doc:     &Document{ID: "0"},
			wantErr: ErrEmptyDocumentText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTurn(t *testing.T) {
	tests := []struct {
		name    string
		turn    *Turn
		wantErr error
	}{
		{
			name:    "valid user turn",
			turn:    &Turn{Role: RoleUser, Content: "how many pumps are in stock?"},
			wantErr: nil,
		},
		{
			name:    "valid assistant turn",
			turn:    &Turn{Role: RoleAssistant, Content: "Data not available."},
			wantErr: nil,
		},
		{
			name:    "invalid role",
			turn:    &Turn{Role: 0, Content: "hello"},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "empty content",
			turn:    &Turn{Role: RoleUser},
			wantErr: ErrEmptyTurnContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTurn(tt.turn)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTurn() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTurn() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
