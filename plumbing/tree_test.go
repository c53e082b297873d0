package plumbing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickster241/nanovc/content"
)

func TestWriteTreeClosure(t *testing.T) {
	store := NewObjectStore()
	staging := content.NewMutableArea()
	staging.PutContent("/a.txt", []byte("a"))
	staging.PutContent("/dir/b.txt", []byte("b"))
	staging.PutContent("/dir/sub/c.txt", []byte("c"))

	root := WriteTree(store, staging)

	obj, ok := store.Get(root)
	require.True(t, ok)
	tree, ok := obj.(*Tree)
	require.True(t, ok)

	assertTreeClosure(t, store, tree)
}

func assertTreeClosure(t *testing.T, store *ObjectStore, tree *Tree) {
	for _, e := range tree.Entries {
		obj, ok := store.Get(e.HashValue)
		require.True(t, ok, "entry %q hash %q must resolve", e.Name, e.HashValue)
		if sub, ok := obj.(*Tree); ok {
			assertTreeClosure(t, store, sub)
		}
	}
}

func TestWriteTreeSharesIdenticalSubtreesByHash(t *testing.T) {
	store := NewObjectStore()
	staging := content.NewMutableArea()
	staging.PutContent("/x/a.txt", []byte("same"))
	staging.PutContent("/y/a.txt", []byte("same"))

	root := WriteTree(store, staging)
	obj, _ := store.Get(root)
	tree := obj.(*Tree)
	require.Len(t, tree.Entries, 2)
	assert.Equal(t, tree.Entries[0].HashValue, tree.Entries[1].HashValue)
}

func TestReadTreeRoundTripsWriteTree(t *testing.T) {
	store := NewObjectStore()
	staging := content.NewMutableArea()
	staging.PutContent("/a.txt", []byte("hello"))
	staging.PutContent("/dir/b.txt", []byte("world"))

	root := WriteTree(store, staging)

	fresh := content.NewMutableArea()
	items, err := ReadTree(store, fresh, root, "/")
	require.NoError(t, err)
	require.Len(t, items, 2)

	a, ok := fresh.GetContent("/a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), a.Bytes)

	b, ok := fresh.GetContent("/dir/b.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("world"), b.Bytes)
}

func TestReadTreeInvalidTree(t *testing.T) {
	store := NewObjectStore()
	fresh := content.NewMutableArea()
	_, err := ReadTree(store, fresh, "does-not-exist", "/")
	assert.ErrorIs(t, err, ErrInvalidTree)
}

func TestReadTreeRejectsNonTreeHash(t *testing.T) {
	store := NewObjectStore()
	_, h := HashObjectWriteBlob(store, []byte("not a tree"))
	fresh := content.NewMutableArea()
	_, err := ReadTree(store, fresh, h, "/")
	assert.ErrorIs(t, err, ErrInvalidTree)
}
