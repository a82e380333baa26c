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


package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates that the requested entry was not found.
	ErrNotFound = errors.New("entry not found")

	// ErrUnknownCollection indicates a collection name outside the two
	// fixed collections.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)

// UpsertError reports a failed upsert batch together with the chunk ids
// that caused it. No entries from the batch were applied.
type UpsertError struct {
	Collection string
	ChunkIds   []string
	Err        error
}

func (e *UpsertError) Error() string {
	return fmt.Sprintf("upsert to %s failed for chunks [%s]: %v",
		e.Collection, strings.Join(e.ChunkIds, ", "), e.Err)
}

func (e *UpsertError) Unwrap() error {
	return e.Err
}
