package badger

import "encoding/binary"

// Key prefixes for the chunk collections
const (
	chunkPrefix    = "chk"
	chunkDocPrefix = "chkdoc"
)

// makeChunkKey generates the primary key for a chunk within a collection.
// Format: chk:collection:id
func makeChunkKey(collection, id string) []byte {
	return []byte(chunkPrefix + ":" + collection + ":" + id)
}

// makeCollectionPrefix generates the scan prefix for a collection's
// primary entries.
func makeCollectionPrefix(collection string) []byte {
	return []byte(chunkPrefix + ":" + collection + ":")
}

// makeChunkDocKey generates a composite key for the per-document index.
// Format: chkdoc:collection:docId:index
// The index is written in BigEndian order so lexicographic iteration
// yields chunks in index order.
func makeChunkDocKey(collection, docId string, index int) []byte {
	prefix := makeChunkDocPrefix(collection, docId)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(index))
	return buf
}

// makeChunkDocPrefix generates the scan prefix for one document's index
// entries within a collection.
func makeChunkDocPrefix(collection, docId string) []byte {
	return []byte(chunkDocPrefix + ":" + collection + ":" + docId + ":")
}
