package plumbing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T, store *ObjectStore, n int) []*Commit {
	t.Helper()
	var commits []*Commit
	var parent Hash
	for i := 0; i < n; i++ {
		var parents []Hash
		if parent != "" {
			parents = []Hash{parent}
		}
		c, h := CommitTree(store, "tree", "msg", "a", time.Now(), "a", time.Now(), parents...)
		commits = append(commits, c)
		parent = h
	}
	return commits
}

func TestRevListReachabilityAndOrder(t *testing.T) {
	store := NewObjectStore()
	commits := chain(t, store, 3) // root -> c1 -> c2

	got, err := RevList(store, commits[2].Hash())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, commits[2].Hash(), got[0].Hash())
	assert.Equal(t, commits[1].Hash(), got[1].Hash())
	assert.Equal(t, commits[0].Hash(), got[2].Hash())
}

func TestRevListDedupesDiamondHistory(t *testing.T) {
	store := NewObjectStore()
	root, rootHash := CommitTree(store, "tree", "root", "a", time.Now(), "a", time.Now())
	_, leftHash := CommitTree(store, "tree", "left", "a", time.Now(), "a", time.Now(), rootHash)
	_, rightHash := CommitTree(store, "tree", "right", "a", time.Now(), "a", time.Now(), rootHash)
	merge, _ := CommitTree(store, "tree", "merge", "a", time.Now(), "a", time.Now(), leftHash, rightHash)

	got, err := RevList(store, merge.Hash())
	require.NoError(t, err)

	seen := map[Hash]int{}
	for _, c := range got {
		seen[c.Hash()]++
	}
	assert.Equal(t, 1, seen[root.Hash()], "root must appear exactly once despite two paths to it")
	assert.Len(t, got, 4)
}

func TestRevListDepthBounds(t *testing.T) {
	store := NewObjectStore()
	commits := chain(t, store, 3)

	got, err := RevListDepth(store, commits[2].Hash(), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, commits[2].Hash(), got[0].Hash())

	got, err = RevListDepth(store, commits[2].Hash(), -1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRevListInvalidCommit(t *testing.T) {
	store := NewObjectStore()
	_, h := HashObjectWriteBlob(store, []byte("not a commit"))
	_, err := RevList(store, h)
	assert.ErrorIs(t, err, ErrInvalidCommit)
}

func TestLogDispatchesOnHashVsHeadName(t *testing.T) {
	store := NewObjectStore()
	heads := NewReferenceCollection()
	commits := chain(t, store, 2)
	heads.Update("master", commits[1].Hash())

	byHash, err := Log(store, heads, string(commits[1].Hash()))
	require.NoError(t, err)
	assert.Len(t, byHash, 2)

	byName, err := Log(store, heads, "master")
	require.NoError(t, err)
	assert.Len(t, byName, 2)
}

func TestLogFromReferenceNameUnknown(t *testing.T) {
	store := NewObjectStore()
	heads := NewReferenceCollection()
	_, err := LogFromReferenceName(store, heads, "nope")
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}
