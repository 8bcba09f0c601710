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


// Package ai provides abstractions for the AI services used in warebot.
//
// This package defines interfaces for text embeddings and answer completion,
// allowing the core domain and business logic to depend on abstractions
// rather than concrete implementations.
//
// Two implementation sub-packages exist:
//
//   - ai/openai: Production implementation against OpenAI-compatible APIs
//     (Ollama, LocalAI, vLLM, OpenAI itself)
//   - ai/mock: Test doubles for unit testing without external services
//
// Public production constructors (openai.NewProvider, openai.NewEmbedder,
// openai.NewCompleter) return INTERFACE types to enforce abstraction. Mock
// constructors return CONCRETE types so tests can inject behavior and assert
// on call counts.
package ai
