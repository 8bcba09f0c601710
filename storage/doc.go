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


// Package storage provides the storage abstraction layer for warebot.
//
// This package defines the DocumentRepository interface that decouples the
// persistent semantic index from business logic, allowing different storage
// backends (BadgerDB, in-memory) to be used interchangeably.
//
// Public constructors return the interface type rather than a concrete
// backend type:
//
//	repo, backend, err := badger.NewDocumentRepository(path)
//
// so that ingestion, retrieval, and tests never couple to BadgerDB specifics.
//
// # Serialization
//
// Stored documents are encoded with the MUS binary format (mus-go). The
// serializers live in this package so every backend shares one wire layout.
//
// # Thread Safety
//
// Repository reads are safe for concurrent use. Ingestion writes once,
// before any query traffic begins; callers must serialize ingestion before
// the first query (documented precondition, not enforced by a lock).
package storage
