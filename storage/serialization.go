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
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/souravobl/ragmill/core"
)

// vectorMUS serializes embedding vectors.
var vectorMUS = ord.NewSliceSer[float32](varint.Float32)

// chunkMUS is the MUS serializer for core.Chunk. Fields are written in
// declaration order.
type chunkMUS struct{}

// ChunkMUS serializes chunk records for storage.
var ChunkMUS = chunkMUS{}

func (chunkMUS) Size(c core.Chunk) (size int) {
	size = ord.String.Size(c.Id)
	size += varint.Int.Size(int(c.Kind))
	size += ord.String.Size(c.DocId)
	size += varint.Int.Size(c.Index)
	size += ord.String.Size(c.Text)
	size += varint.Int.Size(c.WordCount)
	size += vectorMUS.Size(c.Vector)
	return
}

func (chunkMUS) Marshal(c core.Chunk, bs []byte) (n int) {
	n = ord.String.Marshal(c.Id, bs)
	n += varint.Int.Marshal(int(c.Kind), bs[n:])
	n += ord.String.Marshal(c.DocId, bs[n:])
	n += varint.Int.Marshal(c.Index, bs[n:])
	n += ord.String.Marshal(c.Text, bs[n:])
	n += varint.Int.Marshal(c.WordCount, bs[n:])
	n += vectorMUS.Marshal(c.Vector, bs[n:])
	return
}

func (chunkMUS) Unmarshal(bs []byte) (c core.Chunk, n int, err error) {
	var n1 int
	c.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var kind int
	kind, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Kind = core.ChunkKind(kind)
	c.DocId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Index, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.WordCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	buf := make([]byte, ChunkMUS.Size(*chunk))
	ChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk, _, err := ChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &chunk, nil
}
