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


// Package storyvault ingests uploaded documents into a vector-searchable
// story table. It wires the folder layout, the SQLite table sink, and
// the embedding provider into a ready-to-run ingestion pipeline.
package storyvault

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/poiesic/storyvault/ai"
	"github.com/poiesic/storyvault/ai/openai"
	"github.com/poiesic/storyvault/ingestion"
	"github.com/poiesic/storyvault/storage/sqlite"
)

// DefaultTimezone is the fixed named timezone stamped onto records.
const DefaultTimezone = "Asia/Kolkata"

// Vault owns the resources of an ingestion deployment: the directory
// layout under a base root, the story table, and the AI provider.
type Vault struct {
	folders  ingestion.Folders
	store    *sqlite.Store
	provider ai.Provider
	location *time.Location
	logger   *slog.Logger
}

// Option configures a Vault.
type Option func(*options)

type options struct {
	aiConfig *ai.Config
	dbPath   string
	timezone string
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(cfg *ai.Config) Option {
	return func(o *options) {
		o.aiConfig = cfg
	}
}

// WithDatabasePath overrides the database location.
// Default is stories.db under the base directory.
func WithDatabasePath(path string) Option {
	return func(o *options) {
		o.dbPath = path
	}
}

// WithTimezone sets the named timezone used for record timestamps.
func WithTimezone(name string) Option {
	return func(o *options) {
		o.timezone = name
	}
}

// New creates a Vault rooted at baseDir, creating the folder layout
// and the story table as needed.
func New(baseDir string, opts ...Option) (*Vault, error) {
	o := &options{
		aiConfig: ai.DefaultConfig(),
		timezone: DefaultTimezone,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.dbPath == "" {
		o.dbPath = filepath.Join(baseDir, "stories.db")
	}

	location, err := time.LoadLocation(o.timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", o.timezone, err)
	}

	folders := ingestion.Folders{Base: baseDir}
	if err := folders.Ensure(); err != nil {
		return nil, fmt.Errorf("preparing folders: %w", err)
	}

	store, err := sqlite.Open(o.dbPath)
	if err != nil {
		return nil, err
	}

	provider, err := openai.NewProvider(o.aiConfig)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Vault{
		folders:  folders,
		store:    store,
		provider: provider,
		location: location,
		logger:   slog.Default(),
	}, nil
}

// NewPipeline creates an ingestion pipeline over the vault's resources.
func (v *Vault) NewPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLocation(v.location)}, opts...)
	return ingestion.NewPipeline(v.folders, v.store, v.provider, opts...)
}

// Folders returns the directory layout of the vault.
func (v *Vault) Folders() ingestion.Folders {
	return v.folders
}

// Store returns the story table sink.
func (v *Vault) Store() *sqlite.Store {
	return v.store
}

// Close releases the vault's resources.
func (v *Vault) Close() error {
	if err := v.provider.Close(); err != nil {
		v.logger.Error("error closing AI provider", "err", err)
	}
	if err := v.store.Close(); err != nil {
		v.logger.Error("error closing story store", "err", err)
		return err
	}
	return nil
}
