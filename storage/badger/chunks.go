// Copyright 2025 The ragmill Authors
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


package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/souravobl/ragmill/core"
	"github.com/souravobl/ragmill/storage"
)

// ChunkStore implements storage.ChunkStore for BadgerDB.
type ChunkStore struct {
	backend *Backend
}

var _ storage.ChunkStore = (*ChunkStore)(nil)

// NewChunkStore creates a ChunkStore on the given backend.
func NewChunkStore(backend *Backend) *ChunkStore {
	return &ChunkStore{backend: backend}
}

// Close closes the underlying backend.
func (s *ChunkStore) Close() error {
	return s.backend.Close()
}

// validCollection reports whether name is one of the fixed collections.
func validCollection(name string) bool {
	return slices.Contains(storage.Collections(), name)
}

// UpsertChunks applies a batch of chunks to one collection within a
// single transaction. The whole batch is validated first: invalid
// entries cause an *storage.UpsertError naming their ids and nothing is
// written. Existing entries with the same id are replaced, so repeated
// ingestion of the same documents cannot duplicate or drift entries.
func (s *ChunkStore) UpsertChunks(ctx context.Context, collection string, chunks ...*core.Chunk) error {
	if !validCollection(collection) {
		return storage.ErrUnknownCollection
	}
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if len(chunks) == 0 {
		return nil
	}

	// Validate before writing so a bad entry cannot half-apply the batch.
	var badIds []string
	var firstErr error
	for _, chunk := range chunks {
		err := core.ValidateChunk(chunk)
		if err == nil {
			var target string
			target, err = storage.CollectionForKind(chunk.Kind)
			if err == nil && target != collection {
				err = storage.ErrUnknownCollection
			}
		}
		if err != nil {
			id := ""
			if chunk != nil {
				id = chunk.Id
			}
			badIds = append(badIds, id)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return &storage.UpsertError{Collection: collection, ChunkIds: badIds, Err: firstErr}
	}

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			key := makeChunkKey(collection, chunk.Id)
			if err := tx.Set(key, storage.MarshalChunk(chunk)); err != nil {
				return err
			}

			// Per-document index, keyed by chunk index for ordered scans.
			docKey := makeChunkDocKey(collection, chunk.DocId, chunk.Index)
			if err := tx.Set(docKey, []byte(chunk.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		ids := make([]string, len(chunks))
		for i, chunk := range chunks {
			ids[i] = chunk.Id
		}
		return &storage.UpsertError{Collection: collection, ChunkIds: ids, Err: err}
	}

	return nil
}

// GetChunk retrieves a single chunk by id from a collection.
func (s *ChunkStore) GetChunk(ctx context.Context, collection, id string) (*core.Chunk, error) {
	if !validCollection(collection) {
		return nil, storage.ErrUnknownCollection
	}

	var chunk *core.Chunk
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkKey(collection, id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			chunk, err = storage.UnmarshalChunk(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// ListChunksByDocument retrieves a document's chunks from a collection
// in index order, using the per-document index.
func (s *ChunkStore) ListChunksByDocument(ctx context.Context, collection, docId string) ([]*core.Chunk, error) {
	if !validCollection(collection) {
		return nil, storage.ErrUnknownCollection
	}

	var chunks []*core.Chunk
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeChunkDocPrefix(collection, docId)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id string
			err := iter.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			})
			if err != nil {
				return err
			}

			item, err := tx.Get(makeChunkKey(collection, id))
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				chunk, err := storage.UnmarshalChunk(val)
				if err != nil {
					return err
				}
				chunks = append(chunks, chunk)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// CountChunks returns the number of entries in a collection.
func (s *ChunkStore) CountChunks(ctx context.Context, collection string) (int, error) {
	if !validCollection(collection) {
		return 0, storage.ErrUnknownCollection
	}

	count := 0
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeCollectionPrefix(collection)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}
