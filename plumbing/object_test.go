package plumbing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBlobRoundTrip(t *testing.T) {
	b := NewBlob([]byte("Hello World"))
	decoded, err := DecodeBlob(b.Encode())
	require.NoError(t, err)
	require.Equal(t, b.Content, decoded.Content)
}

func TestBlobRoundTripEmpty(t *testing.T) {
	b := NewBlob(nil)
	decoded, err := DecodeBlob(b.Encode())
	require.NoError(t, err)
	require.Empty(t, decoded.Content)
}

func TestTreeRoundTrip(t *testing.T) {
	tree := &Tree{Entries: []TreeEntry{
		{ObjectType: BlobType, HashValue: Hash("a" + fortyCharFiller("blob")), Name: "file.txt"},
		{ObjectType: TreeType, HashValue: Hash("b" + fortyCharFiller("tree")), Name: "subdir"},
	}}
	decoded, err := DecodeTree(tree.Encode())
	require.NoError(t, err)
	require.Equal(t, tree.Entries, decoded.Entries)
}

func TestTreeRoundTripUnknownTag(t *testing.T) {
	// An entry with an unrecognized tag byte decodes with an empty
	// ObjectType, matching spec.md §4.3's '?' → None convention.
	tree := &Tree{Entries: []TreeEntry{{ObjectType: "", HashValue: "x", Name: "weird"}}}
	decoded, err := DecodeTree(tree.Encode())
	require.NoError(t, err)
	require.Equal(t, ObjectType(""), decoded.Entries[0].ObjectType)
}

func TestCommitRoundTrip(t *testing.T) {
	now := time.Now().Round(time.Nanosecond)
	c := &Commit{
		TreeHash:           "treehash",
		Author:             "A <a@example.com>",
		AuthorTimestamp:    now,
		Committer:          "A <a@example.com>",
		CommitterTimestamp: now,
		Message:            "initial commit",
		ParentHashes:       []Hash{"p1", "p2"},
	}
	decoded, err := DecodeCommit(c.Encode())
	require.NoError(t, err)
	require.Equal(t, c.TreeHash, decoded.TreeHash)
	require.Equal(t, c.Author, decoded.Author)
	require.True(t, c.AuthorTimestamp.Equal(decoded.AuthorTimestamp))
	require.Equal(t, c.Message, decoded.Message)
	require.Equal(t, c.ParentHashes, decoded.ParentHashes)
}

func TestCommitRoundTripNoParents(t *testing.T) {
	now := time.Now().Round(time.Nanosecond)
	c := &Commit{
		TreeHash:           "treehash",
		Author:             "A",
		AuthorTimestamp:    now,
		Committer:          "A",
		CommitterTimestamp: now,
		Message:            "root",
	}
	decoded, err := DecodeCommit(c.Encode())
	require.NoError(t, err)
	require.Empty(t, decoded.ParentHashes)
}

func fortyCharFiller(seed string) string {
	out := ""
	for len(out) < 39 {
		out += seed
	}
	return out[:39]
}
