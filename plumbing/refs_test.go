package plumbing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReferenceThroughHEAD(t *testing.T) {
	heads := NewReferenceCollection()
	heads.Update("master", "deadbeef")

	var head *SymbolicReference
	SymbolicRef(&head, "master")

	h, err := ResolveReference(head, heads, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, Hash("deadbeef"), h)
}

func TestResolveReferenceHEADCycleGuard(t *testing.T) {
	var head *SymbolicReference
	SymbolicRef(&head, "HEAD")
	heads := NewReferenceCollection()

	_, err := ResolveReference(head, heads, "HEAD")
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestResolveReferenceUnknownName(t *testing.T) {
	heads := NewReferenceCollection()
	var head *SymbolicReference
	_, err := ResolveReference(head, heads, "nonexistent")
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestResolveCommitFallsBackToHeads(t *testing.T) {
	store := NewObjectStore()
	heads := NewReferenceCollection()
	heads.Update("master", "commithash")

	var head *SymbolicReference
	SymbolicRef(&head, "master")

	h, err := ResolveCommit(store, head, heads, "master")
	require.NoError(t, err)
	assert.Equal(t, Hash("commithash"), h)
}

func TestResolveCommitPrefersObjectStore(t *testing.T) {
	store := NewObjectStore()
	c := &Commit{Message: "m"}
	h := HashObjectWrite(store, c)

	heads := NewReferenceCollection()
	var head *SymbolicReference

	got, err := ResolveCommit(store, head, heads, string(h))
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestResolveCommitUnresolvable(t *testing.T) {
	store := NewObjectStore()
	heads := NewReferenceCollection()
	var head *SymbolicReference
	_, err := ResolveCommit(store, head, heads, "nope")
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestUpdateRefCreatesOrOverwrites(t *testing.T) {
	heads := NewReferenceCollection()
	UpdateRef(heads, "master", "h1")
	h, ok := heads.Get("master")
	require.True(t, ok)
	assert.Equal(t, Hash("h1"), h)

	UpdateRef(heads, "master", "h2")
	h, _ = heads.Get("master")
	assert.Equal(t, Hash("h2"), h)
}

func TestReferenceCollectionRemoveIsSilentOnAbsent(t *testing.T) {
	heads := NewReferenceCollection()
	heads.Remove("nope") // must not panic
	assert.Equal(t, 0, heads.Len())
}
