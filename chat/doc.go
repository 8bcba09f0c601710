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

// Package chat orchestrates retrieval-augmented conversation turns.
//
// An Assistant owns the turn loop: record the user question, retrieve
// context documents, assemble the prompt, complete, and record the reply.
// Session is the explicit conversation state; callers create one per
// conversation and pass it to every Ask. A failed turn is recovered into an
// error-text reply in the transcript, so one bad turn never ends the
// conversation or loses the question that caused it.
package chat
