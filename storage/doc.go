// Package storage defines the persistence boundary for story records.
//
// The StoryStore interface is the table sink of the pipeline: an
// append-only table with a fixed schema, written once per run in a
// single batch. The concrete backend lives in storage/sqlite.
//
// Vectors are stored as little-endian float32 blobs; EncodeVector and
// DecodeVector are shared by backends and tests.
package storage
