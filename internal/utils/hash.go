// Package utils provides general-purpose helper utilities used across
// different parts of the application: content hashing for file identity,
// provisional id generation, and JWT subject extraction.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances,
// shared by all ContentHasher values.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// ContentHasher computes stable content digests for binary blobs. The digest
// depends only on the blob's bytes, never on its filename, so two files with
// identical content always hash identically regardless of how they are named.
type ContentHasher struct{}

// NewContentHasher returns a ready-to-use ContentHasher.
func NewContentHasher() *ContentHasher {
	return &ContentHasher{}
}

// Digest computes the SHA-256 digest of data and returns it hex-encoded.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// The result is deterministic: equal inputs always produce equal digests.
func (c *ContentHasher) Digest(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
