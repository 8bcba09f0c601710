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

import "errors"

// Domain validation errors
var (
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrEmptyDocumentID indicates the document ID field is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")

	// ErrEmptyDocumentText indicates the document Text field is empty.
	ErrEmptyDocumentText = errors.New("document text cannot be empty")

	// ErrInvalidMode indicates an unknown assistant mode value.
	ErrInvalidMode = errors.New("invalid assistant mode")

	// ErrInvalidTurn indicates a conversation Turn failed validation.
	ErrInvalidTurn = errors.New("invalid turn")

	// ErrInvalidRole indicates an invalid Role value on a conversation turn.
	ErrInvalidRole = errors.New("invalid turn role")

	// ErrEmptyTurnContent indicates the turn Content field is empty.
	ErrEmptyTurnContent = errors.New("turn content cannot be empty")
)
