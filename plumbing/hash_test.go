package plumbing

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashObjectDeterministic(t *testing.T) {
	h1 := HashObject(BlobType, []byte("Hello World"))
	h2 := HashObject(BlobType, []byte("Hello World"))
	assert.Equal(t, h1, h2)
	assert.Len(t, string(h1), 40)
}

func TestHashObjectEmptyPayloadUsesLiteralZeroByte(t *testing.T) {
	// Preserved bit-exactly per spec.md open question 1: the empty-payload
	// length marker is the literal byte '0' (the same single byte as the
	// ASCII digit string for zero), so the digest covers "blob 0\x00".
	empty := HashObject(BlobType, []byte{})
	expectHeader := "blob 0\x00"
	sum := sha1.Sum([]byte(expectHeader))
	manual := Hash(hex.EncodeToString(sum[:]))
	require.Equal(t, empty, manual)
}

func TestHashObjectDiffersByType(t *testing.T) {
	blobHash := HashObject(BlobType, []byte("same"))
	treeHash := HashObject(TreeType, []byte("same"))
	assert.NotEqual(t, blobHash, treeHash)
}

func TestHashObjectDiffersByLengthMarkerBoundary(t *testing.T) {
	// Payloads of length 1 and 10 must not collide just because both
	// length markers ("1" and "10") begin with the same digit.
	h1 := HashObject(BlobType, []byte("a"))
	h2 := HashObject(BlobType, []byte("aaaaaaaaaa"))
	assert.NotEqual(t, h1, h2)
}
