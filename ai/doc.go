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


// Package ai provides abstractions for the embedding services used in
// Storyvault.
//
// The package defines the Embedder and Provider interfaces so business
// logic depends on abstractions rather than concrete implementations.
// Two implementation sub-packages exist:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors (openai.NewProvider, openai.NewEmbedder) return
// interface types to enforce abstraction. Test utility constructors
// (mock.NewMockEmbedder) return concrete types to enable assertions and
// behavior injection through the mock's public fields.
//
// Credentials and hosts are carried in Config values passed in at
// construction time; nothing in this package reads ambient environment
// state, which keeps adapters testable with stub providers.
package ai
