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


package core

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Text must not be empty
//
// NOT validated:
//   - Vector (may be empty until the embedder runs)
//   - Metadata (placeholder values are legal everywhere)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if doc.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentID)
	}
	if doc.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentText)
	}
	return nil
}

// ValidateTurn validates a conversation Turn.
//
// Validation rules:
//   - Role must be RoleUser or RoleAssistant
//   - Content must not be empty
func ValidateTurn(turn *Turn) error {
	if turn == nil {
		return fmt.Errorf("%w: turn is nil", ErrInvalidTurn)
	}
	if turn.Role != RoleUser && turn.Role != RoleAssistant {
		return fmt.Errorf("%w: %w: %d", ErrInvalidTurn, ErrInvalidRole, turn.Role)
	}
	if turn.Content == "" {
		return ErrEmptyTurnContent
	}
	return nil
}
